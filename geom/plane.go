// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import "github.com/galvanized/raytrace/math/lin"

// Plane is an infinite flat surface through Point with unit Normal.
//
// Modeled on physics/caster.go's castRayPlane
// (t = n·(p0-o)/(n·d), rejecting a ray parallel to or behind the
// plane).
type Plane struct {
	Point lin.Point
	N     lin.Vector // unit normal
	Mat   Material
}

// NewPlane builds a plane. It fails with InvalidGeometry (via
// Vector.Normalize) when normal is the zero vector.
func NewPlane(point lin.Point, normal lin.Vector, mat Material) (*Plane, error) {
	n, err := normal.Normalize()
	if err != nil {
		return nil, err
	}
	return &Plane{Point: point, N: n, Mat: mat}, nil
}

// Material implements Geometry.
func (pl *Plane) Material() Material { return pl.Mat }

// Normal implements Geometry. The plane's normal does not depend on
// the surface point.
func (pl *Plane) Normal(_ lin.Point) lin.Vector { return pl.N }

// Intersect implements Geometry.
func (pl *Plane) Intersect(ray lin.Ray, tMax float64) ([]GeoPoint, bool) {
	denom := lin.AlignZero(pl.N.Dot(ray.Direction))
	if denom == 0 {
		return nil, false // ray parallel to plane
	}
	diff, err := pl.Point.Sub(ray.Origin)
	if err != nil {
		// ray origin lies exactly on the plane's reference point.
		return nil, false
	}
	t := lin.AlignZero(diff.Dot(pl.N) / denom)
	if t <= 0 || t >= tMax {
		return nil, false
	}
	return []GeoPoint{{Geometry: pl, Point: ray.At(t), T: t}}, true
}

// AABB implements Geometry. An infinite plane has no bounded extent;
// EmptyAABB() signals "keep this in the unbounded list, test it
// linearly" to the BVH builder.
func (pl *Plane) AABB() AABB { return EmptyAABB() }

// Translate implements Geometry.
func (pl *Plane) Translate(v lin.Vector) Geometry {
	return &Plane{Point: pl.Point.Add(v), N: pl.N, Mat: pl.Mat}
}

// Rotate implements Geometry. Rotates the normal about the plane's own
// reference point, which itself does not move.
func (pl *Plane) Rotate(q lin.Quaternion) Geometry {
	return &Plane{Point: pl.Point, N: q.Rotate(pl.N), Mat: pl.Mat}
}

// Scale implements Geometry. Scaling an infinite plane transforms its
// normal by the inverse of the scale (the standard normal-transform
// rule), re-normalized; position is unaffected since the plane passes
// through Point regardless of scale.
func (pl *Plane) Scale(sx, sy, sz float64) (Geometry, error) {
	scaled, err := lin.NewVector(pl.N.X/nonZero(sx), pl.N.Y/nonZero(sy), pl.N.Z/nonZero(sz))
	if err != nil {
		return nil, err
	}
	unit, err := scaled.Normalize()
	if err != nil {
		return nil, err
	}
	return &Plane{Point: pl.Point, N: unit, Mat: pl.Mat}, nil
}

func nonZero(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}
