// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import (
	"math"

	"github.com/galvanized/raytrace/math/lin"
)

// AABB is an axis-aligned bounding box. Min.k <= Max.k is an invariant
// on every non-empty box; EmptyAABB violates it on purpose (+Inf <
// -Inf is false, so any Union with it is idempotent) to signal
// "unbounded, exclude from the BVH" the way an infinite plane's AABB
// does.
//
// Modeled on physics.Abox (Sx,Sy,Sz / Lx,Ly,Lz,
// Overlaps), renamed to Min/Max and given the empty sentinel
// Abox never needed.
type AABB struct {
	Min, Max lin.Point
	center   lin.Point
	hasCenter bool
}

// EmptyAABB returns the AABB that unions away to nothing: any finite
// box merged with it returns unchanged.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: lin.NewPoint(inf, inf, inf),
		Max: lin.NewPoint(-inf, -inf, -inf),
	}
}

// NewAABB builds an AABB from explicit min/max corners.
func NewAABB(min, max lin.Point) AABB { return AABB{Min: min, Max: max} }

// IsEmpty reports whether b is the empty sentinel (or otherwise
// degenerate: any axis where Min > Max).
func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Union returns the smallest AABB containing both b and c.
func (b AABB) Union(c AABB) AABB {
	return AABB{Min: b.Min.Min(c.Min), Max: b.Max.Max(c.Max)}
}

// Grow returns the smallest AABB containing b and point p.
func (b AABB) Grow(p lin.Point) AABB {
	return AABB{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Center returns the midpoint of b, lazily cached — repeated BVH build
// partitioning calls Center on the same box many times while sorting.
func (b *AABB) Center() lin.Point {
	if !b.hasCenter {
		b.center = lin.NewPoint(
			(b.Min.X+b.Max.X)/2,
			(b.Min.Y+b.Max.Y)/2,
			(b.Min.Z+b.Max.Z)/2,
		)
		b.hasCenter = true
	}
	return b.center
}

// SurfaceArea returns the total surface area of b, used by the SAH
// cost model. Returns 0 for an empty box.
func (b AABB) SurfaceArea() float64 {
	if b.IsEmpty() {
		return 0
	}
	dx := b.Max.X - b.Min.X
	dy := b.Max.Y - b.Min.Y
	dz := b.Max.Z - b.Min.Z
	return 2 * (dx*dy + dy*dz + dz*dx)
}

// Extent returns the box's size along the given axis (0=X,1=Y,2=Z).
func (b AABB) Extent(axis int) float64 {
	return b.Max.Axis(axis) - b.Min.Axis(axis)
}

// Hit performs the ray-AABB slab test described in spec §4.3: for each
// axis, intersect the ray's parametric range with the slab [min,max];
// a ray parallel to an axis (|d_i| < Epsilon) must already lie within
// that axis' slab. Returns true iff the ray hits the box within
// (0, tMax).
func (b AABB) Hit(r lin.Ray, tMax float64) bool {
	tmin, tmax := 0.0, tMax
	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for axis := 0; axis < 3; axis++ {
		d := dir[axis]
		if lin.IsZero(d) {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return false
			}
			continue
		}
		inv := 1 / d
		t0 := (lo[axis] - origin[axis]) * inv
		t1 := (hi[axis] - origin[axis]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmin > tmax {
			return false
		}
	}
	return true
}
