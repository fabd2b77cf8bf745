// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import (
	"math"

	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/rterr"
)

// Sphere is a ball of radius R centered at Center.
//
// Modeled on physics/caster.go's castRaySphere (closest-
// approach distance test), generalized to report both roots in
// (0, tMax) per spec §4.2.
type Sphere struct {
	Center lin.Point
	R      float64
	Mat    Material
}

// NewSphere builds a sphere. It fails with InvalidGeometry when r is
// not strictly positive.
func NewSphere(center lin.Point, r float64, mat Material) (*Sphere, error) {
	if r <= 0 {
		return nil, rterr.New(rterr.InvalidGeometry, "NewSphere", "radius must be positive")
	}
	return &Sphere{Center: center, R: r, Mat: mat}, nil
}

// Material implements Geometry.
func (s *Sphere) Material() Material { return s.Mat }

// Normal implements Geometry. Returns the outward unit normal at p.
func (s *Sphere) Normal(p lin.Point) lin.Vector {
	v, err := p.Sub(s.Center)
	if err != nil {
		// p coincides with the center: not a valid surface point, but
		// normal must not panic — pick an arbitrary unit vector.
		return lin.Vector{X: 1}
	}
	n, _ := v.Normalize()
	return n
}

// Intersect implements Geometry. Solves ‖o + t·d − c‖² = r² for t.
func (s *Sphere) Intersect(ray lin.Ray, tMax float64) ([]GeoPoint, bool) {
	oc := lin.Vector{X: ray.Origin.X - s.Center.X, Y: ray.Origin.Y - s.Center.Y, Z: ray.Origin.Z - s.Center.Z}
	halfB := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.R*s.R
	discriminant := lin.AlignZero(halfB*halfB - c)
	if discriminant <= 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)
	t0, t1 := -halfB-sqrtD, -halfB+sqrtD

	var hits []GeoPoint
	for _, t := range []float64{t0, t1} {
		t = lin.AlignZero(t)
		if t > 0 && t < tMax {
			hits = append(hits, GeoPoint{Geometry: s, Point: ray.At(t), T: t})
		}
	}
	if len(hits) == 0 {
		return nil, false
	}
	return hits, true
}

// AABB implements Geometry.
func (s *Sphere) AABB() AABB {
	r := lin.Vector{X: s.R, Y: s.R, Z: s.R}
	return NewAABB(s.Center.Add(r.Negate()), s.Center.Add(r))
}

// Translate implements Geometry.
func (s *Sphere) Translate(v lin.Vector) Geometry {
	return &Sphere{Center: s.Center.Add(v), R: s.R, Mat: s.Mat}
}

// Rotate implements Geometry. A sphere is rotation-invariant about its
// own center.
func (s *Sphere) Rotate(q lin.Quaternion) Geometry { return s }

// Scale implements Geometry. Only uniform scaling is supported — a
// non-uniform scale would turn the sphere into an ellipsoid, a
// different Geometry type this method cannot return (see DESIGN.md
// Open Question 1 for the same policy applied to Tube/Cylinder).
func (s *Sphere) Scale(sx, sy, sz float64) (Geometry, error) {
	if !lin.FloatEq(sx, sy) || !lin.FloatEq(sy, sz) {
		return nil, rterr.New(rterr.InvalidGeometry, "Sphere.Scale", "non-uniform scale would produce an ellipsoid")
	}
	if sx <= 0 {
		return nil, rterr.New(rterr.InvalidGeometry, "Sphere.Scale", "scale factor must be positive")
	}
	return &Sphere{Center: s.Center, R: s.R * sx, Mat: s.Mat}, nil
}
