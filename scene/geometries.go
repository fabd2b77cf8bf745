// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package scene aggregates a render's geometries and lights into the
// single immutable object the tracer queries per ray.
//
// Modeled on scene.go (vu.Scene: a flat collection of
// Povs, each owning drawable/physics state, built once and then walked
// read-only during a frame). This package keeps that "build once,
// shared read-only across workers" shape but replaces the Pov tree
// with a flat geometry slice plus an optional BVH root, per spec §3.
package scene

import (
	"github.com/galvanized/raytrace/bvh"
	"github.com/galvanized/raytrace/geom"
	"github.com/galvanized/raytrace/math/lin"
)

// Geometries is the scene's intersectable aggregate: every geometry
// the scene owns, plus an optional BVH root accelerating the subset
// with a finite AABB. Geometries reporting an empty (unbounded) AABB —
// infinite planes — are kept out of the tree and tested linearly on
// every query, per spec §3's BVH node description.
type Geometries struct {
	All       []geom.Geometry
	root      *bvh.Node
	unbounded []geom.Geometry
}

// Build partitions geoms into a BVH plus the linear unbounded list,
// per opts.
func Build(geoms []geom.Geometry, opts bvh.Options) Geometries {
	root, unbounded := bvh.Build(geoms, opts)
	return Geometries{All: geoms, root: root, unbounded: unbounded}
}

// Linear skips BVH construction entirely and tests every geometry on
// every query — the `bvh: Off` configuration option (spec §6).
func Linear(geoms []geom.Geometry) Geometries {
	return Geometries{All: geoms, unbounded: geoms}
}

// Nearest returns the closest intersection of ray with the scene
// within (0, tMax): the BVH's closest hit compared against a linear
// scan of the unbounded geometries.
func (g Geometries) Nearest(ray lin.Ray, tMax float64) (geom.GeoPoint, bool) {
	best, found := bvh.Nearest(g.root, ray, tMax)
	closest := tMax
	if found {
		closest = best.T
	}
	for _, u := range g.unbounded {
		hits, ok := u.Intersect(ray, closest)
		if !ok {
			continue
		}
		for _, h := range hits {
			if h.T < closest {
				closest = h.T
				best = h
				found = true
			}
		}
	}
	return best, found
}

// Root returns the scene's BVH root, or nil if the scene was built
// with Linear or has no bounded geometry. Exposed for tools (e.g.
// debugviz) that need to walk the tree structure itself rather than
// query it.
func (g Geometries) Root() *bvh.Node { return g.root }

// AllHits reports every intersection of ray with the scene within
// (0, tMax), unordered — used for shadow-transparency queries that
// need every blocker, not only the nearest.
func (g Geometries) AllHits(ray lin.Ray, tMax float64) ([]geom.GeoPoint, bool) {
	hits, _ := bvh.All(g.root, ray, tMax)
	for _, u := range g.unbounded {
		if uh, ok := u.Intersect(ray, tMax); ok {
			hits = append(hits, uh...)
		}
	}
	return hits, len(hits) > 0
}
