// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package bvh

import (
	"testing"

	"github.com/galvanized/raytrace/geom"
	"github.com/galvanized/raytrace/math/lin"
)

func sphereAt(t *testing.T, x float64) *geom.Sphere {
	t.Helper()
	s, err := geom.NewSphere(lin.NewPoint(x, 0, 0), 1, geom.Material{})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestBuildSeparatesUnboundedGeometry(t *testing.T) {
	n, _ := lin.NewVector(0, 1, 0)
	pl, _ := geom.NewPlane(lin.Origin, n, geom.Material{})
	s := sphereAt(t, 0)

	root, unbounded := Build([]geom.Geometry{s, pl}, DefaultOptions())
	if root == nil {
		t.Fatal("expected a root for the bounded sphere")
	}
	if len(unbounded) != 1 || unbounded[0] != geom.Geometry(pl) {
		t.Fatalf("expected the plane to be set aside as unbounded, got %v", unbounded)
	}
}

func TestBuildEmptyInputReturnsNilRoot(t *testing.T) {
	root, unbounded := Build(nil, DefaultOptions())
	if root != nil || unbounded != nil {
		t.Fatalf("expected nil/nil for empty input, got %v %v", root, unbounded)
	}
}

// Every geometry that a linear scan would hit must also be found via
// the BVH: the tree must never lose a hit regardless of split
// strategy.
func TestNearestMatchesLinearScanAcrossManySpheres(t *testing.T) {
	var geoms []geom.Geometry
	for i := 0; i < 40; i++ {
		geoms = append(geoms, sphereAt(t, float64(i)*3))
	}
	for _, strat := range []Strategy{Median, SAH} {
		opts := DefaultOptions()
		opts.Strategy = strat
		root, _ := Build(geoms, opts)

		dir, _ := lin.NewVector(1, 0, 0)
		ray, _ := lin.NewRay(lin.NewPoint(-100, 0, 0), dir)

		var linearClosest *geom.GeoPoint
		for _, g := range geoms {
			hits, ok := g.Intersect(ray, 1e9)
			if !ok {
				continue
			}
			for i := range hits {
				if linearClosest == nil || hits[i].T < linearClosest.T {
					h := hits[i]
					linearClosest = &h
				}
			}
		}
		got, ok := Nearest(root, ray, 1e9)
		if !ok || linearClosest == nil {
			t.Fatalf("strategy %v: expected a hit", strat)
		}
		if !lin.FloatEq(got.T, linearClosest.T) {
			t.Errorf("strategy %v: BVH nearest t=%v, linear scan t=%v", strat, got.T, linearClosest.T)
		}
	}
}

func TestAllFindsEveryBlockerBetweenSurfaceAndLight(t *testing.T) {
	var geoms []geom.Geometry
	for i := 1; i <= 4; i++ {
		geoms = append(geoms, sphereAt(t, float64(i)*3))
	}
	root, _ := Build(geoms, DefaultOptions())

	dir, _ := lin.NewVector(1, 0, 0)
	ray, _ := lin.NewRay(lin.NewPoint(0, 0, 0), dir)
	hits, ok := All(root, ray, 1e9)
	if !ok || len(hits) != 8 { // 4 spheres x 2 intersections each
		t.Fatalf("expected 8 hits across 4 spheres, got %d (ok=%v)", len(hits), ok)
	}
}

func TestNearestOnEmptyTreeMisses(t *testing.T) {
	dir, _ := lin.NewVector(1, 0, 0)
	ray, _ := lin.NewRay(lin.Origin, dir)
	if _, ok := Nearest(nil, ray, 1e9); ok {
		t.Fatal("expected a nil BVH to report no hit")
	}
}
