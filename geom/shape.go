// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "github.com/galvanized/raytrace/math/lin"

// Geometry is the contract every intersectable primitive satisfies.
// Modeled on physics.Shape's interface (Type/Aabb/Volume/
// Inertia), restructured around the ray tracer's needs: a normal at a
// surface point, a list of ray intersections, a lazily computed AABB,
// and value-returning transforms instead of in-place mutation.
type Geometry interface {
	// Material returns the geometry's surface material.
	Material() Material

	// Normal returns the unit outward normal at p. The caller
	// guarantees p lies on the surface; triangle/polygon may return
	// either face normal.
	Normal(p lin.Point) lin.Vector

	// Intersect returns every intersection of ray with this geometry
	// whose parametric distance t satisfies 0 < t < tMax, or ok=false
	// when there is no such hit (never an empty, non-nil slice with
	// ok=true).
	Intersect(ray lin.Ray, tMax float64) (hits []GeoPoint, ok bool)

	// AABB returns the geometry's axis-aligned bounding box. Unbounded
	// primitives (infinite planes) return EmptyAABB(), signalling
	// "exclude from the BVH, test this one linearly".
	AABB() AABB

	// Translate returns a copy of the geometry moved by v.
	Translate(v lin.Vector) Geometry

	// Rotate returns a copy of the geometry rotated by q around its
	// own reference point (center/point/axis origin, per shape).
	Rotate(q lin.Quaternion) Geometry

	// Scale returns a copy of the geometry scaled by (sx, sy, sz). It
	// fails with InvalidGeometry for shapes that cannot represent a
	// non-uniform scale (Sphere, Tube, Cylinder — see DESIGN.md Open
	// Question 1).
	Scale(sx, sy, sz float64) (Geometry, error)
}

// GeoPoint is an intersection record: the geometry that was hit, the
// world-space point of intersection, and the ray parameter t the point
// was found at (kept to make "closest hit" sorting and tMax shadow
// queries O(1) rather than requiring a re-derivation of t from Point).
//
// GeoPoint never owns the Geometry it points to: geometries are
// exclusively owned by the scene (spec §3), so GeoPoint.Geometry is a
// plain interface value pointing at scene-owned storage, valid only
// for the scene's lifetime.
type GeoPoint struct {
	Geometry Geometry
	Point    lin.Point
	T        float64
}
