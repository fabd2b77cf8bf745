// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package light

import (
	"math"
	"testing"

	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/rng"
)

func TestDirectionalIgnoresPositionAndHasInfiniteDistance(t *testing.T) {
	dir, _ := lin.NewVector(0, -1, 0)
	d, err := NewDirectional(lin.White, dir)
	if err != nil {
		t.Fatal(err)
	}
	p1 := lin.NewPoint(0, 0, 0)
	p2 := lin.NewPoint(100, 50, -20)
	if d.IntensityAt(p1) != d.IntensityAt(p2) {
		t.Fatal("expected uniform intensity regardless of position")
	}
	if !d.DirectionTo(p1).Eq(dir) || !d.DirectionTo(p2).Eq(dir) {
		t.Fatal("expected a fixed direction regardless of position")
	}
	if !math.IsInf(d.DistanceTo(p1), 1) {
		t.Fatal("expected +Inf distance")
	}
}

func TestPointAttenuationFollowsInverseSquarePlusLinearPlusConstant(t *testing.T) {
	p := NewPoint(lin.NewColor(1, 1, 1), lin.NewPoint(0, 0, 0), 1, 0, 1)
	near := p.IntensityAt(lin.NewPoint(1, 0, 0))  // d=1: 1/(1+0+1) = 0.5
	far := p.IntensityAt(lin.NewPoint(3, 0, 0))   // d=3: 1/(1+0+9) = 0.1
	if !lin.FloatEq(near.R, 0.5) {
		t.Fatalf("expected 0.5 at d=1, got %v", near.R)
	}
	if !lin.FloatEq(far.R, 0.1) {
		t.Fatalf("expected 0.1 at d=3, got %v", far.R)
	}
}

func TestPointDirectionToPointsAwayFromLight(t *testing.T) {
	p := NewPoint(lin.White, lin.NewPoint(0, 0, 0), 1, 0, 0)
	dir := p.DirectionTo(lin.NewPoint(5, 0, 0))
	want, _ := lin.NewVector(1, 0, 0)
	if !dir.Eq(want) {
		t.Fatalf("expected (1,0,0), got %v", dir)
	}
}

func TestPointSampleIsSinglePointWhenHard(t *testing.T) {
	p := NewPoint(lin.White, lin.NewPoint(2, 2, 2), 1, 0, 0)
	pts := p.Sample(lin.NewPoint(0, 0, 0), 16, rng.New(0, 0))
	if len(pts) != 1 || !pts[0].Eq(p.Position) {
		t.Fatalf("expected a single point at the light position, got %v", pts)
	}
}

func TestPointSampleReturnsDiskWhenAreaLight(t *testing.T) {
	p := NewPoint(lin.White, lin.NewPoint(0, 0, 5), 1, 0, 0)
	p.Radius = 1
	p.SampleQuality = 16
	pts := p.Sample(lin.NewPoint(0, 0, 0), 16, rng.New(1, 2))
	if len(pts) != 16 {
		t.Fatalf("expected 16 samples, got %d", len(pts))
	}
	for _, pt := range pts {
		if pt.DistanceTo(p.Position) > p.Radius+1e-9 {
			t.Fatalf("sample %v escaped the disk radius", pt)
		}
	}
}

func TestSpotNarrowsIntensityAwayFromAim(t *testing.T) {
	dir, _ := lin.NewVector(1, 0, 0)
	s, err := NewSpot(lin.White, lin.NewPoint(0, 0, 0), 1, 0, 0, dir, 8)
	if err != nil {
		t.Fatal(err)
	}
	onAxis := s.IntensityAt(lin.NewPoint(5, 0, 0))
	offAxis := s.IntensityAt(lin.NewPoint(0, 5, 0))
	if onAxis.R <= offAxis.R {
		t.Fatalf("expected on-axis intensity %v to exceed off-axis %v", onAxis.R, offAxis.R)
	}
	if offAxis.R != 0 {
		t.Fatalf("expected perpendicular direction to be fully outside the beam, got %v", offAxis.R)
	}
}

func TestSpotSatisfiesLightInterface(t *testing.T) {
	dir, _ := lin.NewVector(0, -1, 0)
	var _ Light = (*Directional)(nil)
	var _ Light = (*Point)(nil)
	s, _ := NewSpot(lin.White, lin.Origin, 1, 0, 0, dir, 1)
	var _ Light = s
}
