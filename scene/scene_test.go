// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/galvanized/raytrace/bvh"
	"github.com/galvanized/raytrace/geom"
	"github.com/galvanized/raytrace/light"
	"github.com/galvanized/raytrace/math/lin"
)

func TestGeometriesNearestFindsClosestAcrossBoundedAndUnbounded(t *testing.T) {
	s, err := geom.NewSphere(lin.NewPoint(5, 0, 0), 1, geom.Material{})
	if err != nil {
		t.Fatal(err)
	}
	n, _ := lin.NewVector(0, 1, 0)
	pl, err := geom.NewPlane(lin.NewPoint(0, 0, 0), n, geom.Material{})
	if err != nil {
		t.Fatal(err)
	}
	g := Build([]geom.Geometry{s, pl}, bvh.DefaultOptions())

	dir, _ := lin.NewVector(1, 0, 0)
	ray, _ := lin.NewRay(lin.NewPoint(0, 0, 0), dir)
	hit, ok := g.Nearest(ray, 1e9)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Geometry != geom.Geometry(s) {
		t.Fatalf("expected the sphere to be the closest hit, got %v", hit.Geometry)
	}
}

func TestSceneAmbientAtIsBlackWithoutAmbientLight(t *testing.T) {
	s := New(lin.Black, nil, nil, Geometries{})
	if got := s.AmbientAt(lin.Origin); got != lin.Black {
		t.Fatalf("expected black, got %v", got)
	}
}

func TestSceneAmbientAtUsesAmbientLight(t *testing.T) {
	down, _ := lin.NewVector(0, -1, 0)
	amb, _ := light.NewDirectional(lin.NewColor(0.1, 0.1, 0.1), down)
	s := New(lin.Black, amb, nil, Geometries{})
	if got := s.AmbientAt(lin.Origin); got != lin.NewColor(0.1, 0.1, 0.1) {
		t.Fatalf("expected (0.1,0.1,0.1), got %v", got)
	}
}
