// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package sample

import (
	"testing"

	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/rng"
)

func TestGridSingleSampleIsPixelCenter(t *testing.T) {
	got := Grid(1, rng.New(0, 0))
	if len(got) != 1 || got[0].U != 0.5 || got[0].V != 0.5 {
		t.Fatalf("expected a single centered offset, got %v", got)
	}
}

func TestGridCoversAllCellsWithinBounds(t *testing.T) {
	s := 4
	offsets := Grid(s, rng.New(1, 2))
	if len(offsets) != s*s {
		t.Fatalf("expected %d offsets, got %d", s*s, len(offsets))
	}
	cell := 1.0 / float64(s)
	for j := 0; j < s; j++ {
		for i := 0; i < s; i++ {
			o := offsets[j*s+i]
			loU, hiU := float64(i)*cell, float64(i+1)*cell
			loV, hiV := float64(j)*cell, float64(j+1)*cell
			if o.U < loU || o.U >= hiU || o.V < loV || o.V >= hiV {
				t.Fatalf("offset %v outside its cell [%v,%v)x[%v,%v)", o, loU, hiU, loV, hiV)
			}
		}
	}
}

func TestDiskSingleSampleIsCenter(t *testing.T) {
	c := lin.NewPoint(1, 2, 3)
	n, _ := lin.NewVector(0, 1, 0)
	got := Disk(c, n, 5, 1, rng.New(0, 0))
	if len(got) != 1 || !got[0].Eq(c) {
		t.Fatalf("expected a single point at center, got %v", got)
	}
}

func TestDiskSamplesStayWithinRadiusAndPlane(t *testing.T) {
	c := lin.NewPoint(0, 0, 0)
	n, _ := lin.NewVector(0, 0, 1)
	radius := 3.0
	points := Disk(c, n, radius, 64, rng.New(5, 9))
	if len(points) != 64 {
		t.Fatalf("expected 64 points, got %d", len(points))
	}
	for _, p := range points {
		if p.Z < -1e-9 || p.Z > 1e-9 {
			t.Fatalf("point %v left the plane perpendicular to normal", p)
		}
		d := p.DistanceTo(c)
		if d > radius+1e-9 {
			t.Fatalf("point %v outside radius %v (d=%v)", p, radius, d)
		}
	}
}
