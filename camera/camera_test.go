// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package camera

import (
	"testing"

	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/sample"
)

func straightOnCamera(t *testing.T, nX, nY int) *Camera {
	t.Helper()
	forward, _ := lin.NewVector(0, 0, -1)
	up, _ := lin.NewVector(0, 1, 0)
	c, err := New(lin.Origin, forward, up, 1, 2, 2, nX, nY)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewRejectsNonPerpendicularBasis(t *testing.T) {
	forward, _ := lin.NewVector(0, 0, -1)
	up, _ := lin.NewVector(0, 1, 1)
	if _, err := New(lin.Origin, forward, up, 1, 2, 2, 10, 10); err == nil {
		t.Fatal("expected an error for a non-perpendicular basis")
	}
}

func TestNewRejectsNonPositiveResolution(t *testing.T) {
	forward, _ := lin.NewVector(0, 0, -1)
	up, _ := lin.NewVector(0, 1, 0)
	if _, err := New(lin.Origin, forward, up, 1, 2, 2, 0, 10); err == nil {
		t.Fatal("expected an error for zero resolution")
	}
}

func TestPrimaryRayAtCenterPixelPointsStraightForward(t *testing.T) {
	c := straightOnCamera(t, 11, 11)
	ray, err := c.PrimaryRay(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !ray.Direction.Eq(c.Forward) {
		t.Fatalf("expected the center pixel ray to point along forward, got %v", ray.Direction)
	}
}

func TestPrimaryRayOffCenterDeflectsTowardRight(t *testing.T) {
	c := straightOnCamera(t, 11, 11)
	ray, err := c.PrimaryRay(10, 5) // rightmost column
	if err != nil {
		t.Fatal(err)
	}
	if ray.Direction.Dot(c.Right) <= 0 {
		t.Fatalf("expected a rightward component, got direction %v", ray.Direction)
	}
}

func TestSubRaysProducesOneRayPerOffset(t *testing.T) {
	c := straightOnCamera(t, 11, 11)
	offsets := sample.Grid(4, fixedSource{v: 0.5})
	rays, err := c.SubRays(5, 5, offsets)
	if err != nil {
		t.Fatal(err)
	}
	if len(rays) != len(offsets) {
		t.Fatalf("expected %d rays, got %d", len(offsets), len(rays))
	}
}

type fixedSource struct{ v float64 }

func (f fixedSource) Float64() float64 { return f.v }
