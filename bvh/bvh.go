// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package bvh builds and traverses a bounding-volume hierarchy over a
// scene's geometries, accelerating ray queries from O(n) to roughly
// O(log n).
//
// Grounded on other_examples' viamrobotics-rdk spatialmath/bvh.go
// (buildBVHNode: recursive median-split over sorted centroids, AABB
// union of children; aabbOverlap-gated traversal), restructured around
// this package's Geometry/AABB types and extended with the binned SAH
// cost evaluator spec §4.3 asks for.
package bvh

import (
	"github.com/galvanized/raytrace/geom"
	"github.com/galvanized/raytrace/math/lin"
)

// Strategy selects how Build chooses a split at each interior node.
type Strategy int

const (
	// Median splits at the midpoint of the set sorted by centroid on the
	// axis along which the node's bounding box is longest. The axis does
	// not rotate with tree depth.
	Median Strategy = iota
	// SAH evaluates a binned surface-area-heuristic cost per axis and
	// falls back to Median when no split beats the leaf cost.
	SAH
)

// Options configures Build.
type Options struct {
	Strategy Strategy
	LeafSize int // k in spec §4.3, clamped to [1,4]
	Bins     int // SAH bin count, e.g. 16
	CTrav    float64
	CIsect   float64
}

// DefaultOptions returns the options used when none are supplied:
// median split, leaf size 4, 16 SAH bins (SAH itself only runs when
// Strategy is explicitly SAH).
func DefaultOptions() Options {
	return Options{Strategy: Median, LeafSize: 4, Bins: 16, CTrav: 1, CIsect: 2}
}

// Node is a BVH tree node: either an interior node with two children,
// or a leaf holding between 1 and LeafSize geometries. Immutable after
// Build returns.
type Node struct {
	Box    geom.AABB
	Left   *Node
	Right  *Node
	Leaves []geom.Geometry // non-nil only for a leaf
	axis   int             // interior node's split axis, used to order traversal
}

// IsLeaf reports whether n holds geometries directly rather than
// children.
func (n *Node) IsLeaf() bool { return n.Leaves != nil }

// Build partitions geoms into a BVH over the subset with a bounded
// AABB, and a separate "unbounded" list (infinite planes and any other
// shape reporting an empty AABB) that the caller must test linearly on
// every ray. Returns a nil root when there are no bounded geometries.
func Build(geoms []geom.Geometry, opts Options) (root *Node, unbounded []geom.Geometry) {
	if opts.LeafSize < 1 {
		opts.LeafSize = 1
	}
	if opts.LeafSize > 4 {
		opts.LeafSize = 4
	}
	if opts.Bins < 1 {
		opts.Bins = 16
	}

	var bounded []geom.Geometry
	for _, g := range geoms {
		if g.AABB().IsEmpty() {
			unbounded = append(unbounded, g)
		} else {
			bounded = append(bounded, g)
		}
	}
	if len(bounded) == 0 {
		return nil, unbounded
	}
	return build(bounded, opts, 0), unbounded
}

// primInfo caches each geometry's AABB and centroid, computed once per
// build() call rather than re-derived on every sort comparison.
type primInfo struct {
	g      geom.Geometry
	box    geom.AABB
	center lin.Point
}

func build(geoms []geom.Geometry, opts Options, depth int) *Node {
	infos := make([]primInfo, len(geoms))
	box := geom.EmptyAABB()
	for i, g := range geoms {
		b := g.AABB()
		c := b.Center()
		infos[i] = primInfo{g: g, box: b, center: c}
		box = box.Union(b)
	}

	if len(geoms) <= opts.LeafSize {
		return &Node{Box: box, Leaves: geoms}
	}

	axis, split, ok := chooseSplit(infos, box, opts)
	if !ok {
		return &Node{Box: box, Leaves: geoms}
	}
	// chooseSplit leaves infos sorted by the axis it picked.
	left := make([]geom.Geometry, split)
	right := make([]geom.Geometry, len(infos)-split)
	for i := 0; i < split; i++ {
		left[i] = infos[i].g
	}
	for i := split; i < len(infos); i++ {
		right[i-split] = infos[i].g
	}

	node := &Node{Box: box, axis: axis}
	node.Left = build(left, opts, depth+1)
	node.Right = build(right, opts, depth+1)
	return node
}
