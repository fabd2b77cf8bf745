// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package bvh

import (
	"github.com/galvanized/raytrace/geom"
	"github.com/galvanized/raytrace/math/lin"
)

// stackEntry is one frame of the explicit traversal stack, grounded on
// other_examples' viamrobotics-rdk bvhCollidesWithGeometry's iterative
// stack-based descent (this package swaps its collision-pair query for
// a ray query and adds near-child-first ordering, which that function
// does not need).
type stackEntry struct {
	node *Node
}

// Nearest returns the closest intersection along ray within (0, tMax),
// or ok=false when the BVH has no hit in range. root may be nil (an
// empty scene, or one with only unbounded geometry).
func Nearest(root *Node, ray lin.Ray, tMax float64) (geom.GeoPoint, bool) {
	if root == nil {
		return geom.GeoPoint{}, false
	}
	best := geom.GeoPoint{}
	found := false
	closest := tMax

	stack := []stackEntry{{node: root}}
	for len(stack) > 0 {
		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := entry.node
		if n == nil || !n.Box.Hit(ray, closest) {
			continue
		}
		if n.IsLeaf() {
			for _, g := range n.Leaves {
				hits, ok := g.Intersect(ray, closest)
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
			continue
		}
		near, far := orderChildren(n, ray)
		// Push far first so near is popped and visited first.
		stack = append(stack, stackEntry{node: far}, stackEntry{node: near})
	}
	return best, found
}

// All returns every intersection of ray with the BVH within (0, tMax),
// unordered. Used by the shadow-transparency path, which needs every
// blocker between a surface point and a light rather than only the
// nearest one.
func All(root *Node, ray lin.Ray, tMax float64) ([]geom.GeoPoint, bool) {
	if root == nil {
		return nil, false
	}
	var hits []geom.GeoPoint
	stack := []stackEntry{{node: root}}
	for len(stack) > 0 {
		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := entry.node
		if n == nil || !n.Box.Hit(ray, tMax) {
			continue
		}
		if n.IsLeaf() {
			for _, g := range n.Leaves {
				if gh, ok := g.Intersect(ray, tMax); ok {
					hits = append(hits, gh...)
				}
			}
			continue
		}
		stack = append(stack, stackEntry{node: n.Left}, stackEntry{node: n.Right})
	}
	return hits, len(hits) > 0
}

// orderChildren returns n's children ordered near-first along the
// ray's travel direction on n's split axis, per spec §4.3: "ordered by
// the split axis' ray-direction sign". Left holds the lesser-centroid
// half, so a ray travelling in the positive direction on that axis
// reaches Left first.
func orderChildren(n *Node, ray lin.Ray) (near, far *Node) {
	if vectorAxis(ray.Direction, n.axis) >= 0 {
		return n.Left, n.Right
	}
	return n.Right, n.Left
}

func vectorAxis(v lin.Vector, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
