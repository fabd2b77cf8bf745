// SPDX-FileCopyrightText : © 2014-2022 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package lin

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestNewVectorRejectsZero(t *testing.T) {
	if _, err := NewVector(0, 0, 0); err == nil {
		t.Error("expected zero vector construction to fail")
	}
	if _, err := NewVector(1e-20, -1e-20, 0); err == nil {
		t.Error("expected near-zero vector construction to fail")
	}
}

func TestNewVectorAccepts(t *testing.T) {
	v, err := NewVector(1, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.Eq(Vector{X: 1, Y: 2, Z: 3}) {
		t.Errorf("got %v, want (1,2,3)", v)
	}
}

func TestDotCrossAdd(t *testing.T) {
	a, _ := NewVector(1, 0, 0)
	b, _ := NewVector(0, 1, 0)
	if got := a.Dot(b); got != 0 {
		t.Errorf("a.Dot(b) = %v, want 0", got)
	}
	c := a.Cross(b)
	if !c.Eq(Vector{Z: 1}) {
		t.Errorf("a.Cross(b) = %v, want (0,0,1)", c)
	}
	sum := a.Add(b)
	if !sum.Eq(Vector{X: 1, Y: 1}) {
		t.Errorf("a.Add(b) = %v, want (1,1,0)", sum)
	}
}

func TestNormalizeFailsOnZero(t *testing.T) {
	v := Vector{} // zero-valued, bypassing the constructor
	if _, err := v.Normalize(); err == nil {
		t.Error("expected Normalize of the zero vector to fail")
	}
}

func TestReflectPreservesLengthAndFlipsSign(t *testing.T) {
	n := Vector{Y: 1, unit: true}
	d, _ := NewVector(1, -1, 0)
	unit, _ := d.Normalize()
	r := unit.Reflect(n)
	if math.Abs(r.Length()-unit.Length()) > 1e-9 {
		t.Errorf("reflect changed length: %v vs %v", r.Length(), unit.Length())
	}
	if (r.Dot(n) > 0) == (unit.Dot(n) > 0) {
		t.Errorf("reflect did not flip sign of component along normal")
	}
}

func TestPerpendicularIsOrthogonalAndUnit(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		x := rapid.Float64Range(-100, 100).Draw(rt, "x")
		y := rapid.Float64Range(-100, 100).Draw(rt, "y")
		z := rapid.Float64Range(-100, 100).Draw(rt, "z")
		v, err := NewVector(x, y, z)
		if err != nil {
			return // zero vector draw, skip
		}
		p := Perpendicular(v)
		if math.Abs(p.Length()-1) > 1e-6 {
			rt.Fatalf("Perpendicular(%v) has length %v, want 1", v, p.Length())
		}
		if !IsPerpendicular(v, p) {
			rt.Fatalf("Perpendicular(%v) = %v is not orthogonal", v, p)
		}
	})
}

func TestNormalizeLengthIsOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		x := rapid.Float64Range(-1000, 1000).Draw(rt, "x")
		y := rapid.Float64Range(-1000, 1000).Draw(rt, "y")
		z := rapid.Float64Range(-1000, 1000).Draw(rt, "z")
		v, err := NewVector(x, y, z)
		if err != nil {
			return
		}
		unit, err := v.Normalize()
		if err != nil {
			rt.Fatalf("Normalize of non-zero vector failed: %v", err)
		}
		if math.Abs(unit.Length()-1) > 1e-9 {
			rt.Fatalf("Normalize(%v).Length() = %v, want 1", v, unit.Length())
		}
	})
}
