// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/galvanized/raytrace/math/lin"
)

func TestNewEllipsoidRejectsNonPositiveRadii(t *testing.T) {
	if _, err := NewEllipsoid(lin.Origin, lin.Vector{X: 0, Y: 1, Z: 1}, Material{}); err == nil {
		t.Fatal("expected error for zero radius")
	}
}

func TestEllipsoidIntersectStretchedSphere(t *testing.T) {
	el, err := NewEllipsoid(lin.Origin, lin.Vector{X: 2, Y: 1, Z: 1}, Material{})
	if err != nil {
		t.Fatal(err)
	}
	dir, _ := lin.NewVector(1, 0, 0)
	ray, _ := lin.NewRay(lin.NewPoint(-5, 0, 0), dir)
	hits, ok := el.Intersect(ray, 1e9)
	if !ok || len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d (ok=%v)", len(hits), ok)
	}
	if !lin.FloatEq(hits[0].Point.X, -2) || !lin.FloatEq(hits[1].Point.X, 2) {
		t.Errorf("expected hits at x=-2 and x=2, got %+v and %+v", hits[0].Point, hits[1].Point)
	}
}

func TestEllipsoidIntersectMisses(t *testing.T) {
	el, _ := NewEllipsoid(lin.Origin, lin.Vector{X: 2, Y: 1, Z: 1}, Material{})
	dir, _ := lin.NewVector(1, 0, 0)
	ray, _ := lin.NewRay(lin.NewPoint(-5, 5, 0), dir)
	if _, ok := el.Intersect(ray, 1e9); ok {
		t.Fatal("expected ray well outside the ellipsoid to miss")
	}
}

func TestEllipsoidNormalIsUnit(t *testing.T) {
	el, _ := NewEllipsoid(lin.Origin, lin.Vector{X: 2, Y: 1, Z: 1}, Material{})
	n := el.Normal(lin.NewPoint(2, 0, 0))
	if !lin.FloatEq(n.Length(), 1) {
		t.Fatalf("expected unit normal, got length %v", n.Length())
	}
}

func TestEllipsoidScaleIsNonUniform(t *testing.T) {
	el, _ := NewEllipsoid(lin.Origin, lin.Vector{X: 1, Y: 1, Z: 1}, Material{})
	scaled, err := el.Scale(2, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	r := scaled.(*Ellipsoid).Radii
	if !lin.FloatEq(r.X, 2) || !lin.FloatEq(r.Y, 3) || !lin.FloatEq(r.Z, 4) {
		t.Fatalf("unexpected radii %+v", r)
	}
}
