// Copyright © 2013-2024 Galvanized Logic Inc.

package lin

import (
	"math"
	"testing"
)

func TestFromAxisAngleRejectsZeroAxis(t *testing.T) {
	if _, err := FromAxisAngle(Vector{}, math.Pi/2); err == nil {
		t.Error("expected zero axis to fail")
	}
}

func TestRotatePreservesLength(t *testing.T) {
	axis, _ := NewVector(0, 1, 0)
	q, err := FromAxisAngle(axis, math.Pi/2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := NewVector(1, 2, 3)
	rotated := q.Rotate(v)
	if math.Abs(rotated.Length()-v.Length()) > 1e-9 {
		t.Errorf("rotate changed length: %v vs %v", rotated.Length(), v.Length())
	}
}

func TestRotateAroundYMapsXToNegZ(t *testing.T) {
	axis, _ := NewVector(0, 1, 0)
	q, _ := FromAxisAngle(axis, math.Pi/2)
	x, _ := NewVector(1, 0, 0)
	rotated := q.Rotate(x)
	want, _ := NewVector(0, 0, -1)
	if !rotated.Eq(want) {
		t.Errorf("rotate(x, 90° around y) = %v, want %v", rotated, want)
	}
}

func TestMulIsAssociative(t *testing.T) {
	ax, _ := NewVector(1, 0, 0)
	ay, _ := NewVector(0, 1, 0)
	az, _ := NewVector(0, 0, 1)
	qx, _ := FromAxisAngle(ax, 0.3)
	qy, _ := FromAxisAngle(ay, 0.7)
	qz, _ := FromAxisAngle(az, 1.1)

	left := qx.Mul(qy).Mul(qz)
	right := qx.Mul(qy.Mul(qz))

	v, _ := NewVector(1, 2, 3)
	a := left.Rotate(v)
	b := right.Rotate(v)
	if math.Abs(a.X-b.X) > 1e-9 || math.Abs(a.Y-b.Y) > 1e-9 || math.Abs(a.Z-b.Z) > 1e-9 {
		t.Errorf("quaternion composition not associative: %v vs %v", a, b)
	}
}
