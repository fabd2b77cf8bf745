// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import (
	"math"

	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/rterr"
)

// Ellipsoid is a sphere stretched independently along each axis by
// Radii. Grounded on spec §4.2: "transform ray to unit-sphere space by
// diag(1/rᵢ), intersect, transform back" — since that diagonal scale
// is linear, the ray's t parameter is unchanged by the transform, so
// no inverse transform of t is needed, only of the normal.
type Ellipsoid struct {
	Center lin.Point
	Radii  lin.Vector // each component strictly positive; not a unit direction
	Mat    Material
}

// NewEllipsoid builds an ellipsoid. It fails with InvalidGeometry when
// any radius is not strictly positive.
func NewEllipsoid(center lin.Point, radii lin.Vector, mat Material) (*Ellipsoid, error) {
	if radii.X <= 0 || radii.Y <= 0 || radii.Z <= 0 {
		return nil, rterr.New(rterr.InvalidGeometry, "NewEllipsoid", "radii must be positive")
	}
	return &Ellipsoid{Center: center, Radii: radii, Mat: mat}, nil
}

// Material implements Geometry.
func (el *Ellipsoid) Material() Material { return el.Mat }

// Normal implements Geometry: the unit gradient of
// Σ (pᵢ-cᵢ)²/rᵢ² - 1 at p.
func (el *Ellipsoid) Normal(p lin.Point) lin.Vector {
	oc, err := p.Sub(el.Center)
	if err != nil {
		return lin.Vector{X: 1}
	}
	grad := lin.Vector{
		X: oc.X / (el.Radii.X * el.Radii.X),
		Y: oc.Y / (el.Radii.Y * el.Radii.Y),
		Z: oc.Z / (el.Radii.Z * el.Radii.Z),
	}
	n, err := grad.Normalize()
	if err != nil {
		return lin.Vector{X: 1}
	}
	return n
}

// Intersect implements Geometry.
func (el *Ellipsoid) Intersect(ray lin.Ray, tMax float64) ([]GeoPoint, bool) {
	oc, err := ray.Origin.Sub(el.Center)
	if err != nil {
		oc = lin.Vector{}
	}
	ox, oy, oz := oc.X/el.Radii.X, oc.Y/el.Radii.Y, oc.Z/el.Radii.Z
	dx, dy, dz := ray.Direction.X/el.Radii.X, ray.Direction.Y/el.Radii.Y, ray.Direction.Z/el.Radii.Z

	a := dx*dx + dy*dy + dz*dz
	b := 2 * (ox*dx + oy*dy + oz*dz)
	c := ox*ox + oy*oy + oz*oz - 1

	if lin.IsZero(a) {
		return nil, false
	}
	disc := lin.AlignZero(b*b - 4*a*c)
	if disc <= 0 {
		return nil, false
	}
	sq := math.Sqrt(disc)
	t0 := lin.AlignZero((-b - sq) / (2 * a))
	t1 := lin.AlignZero((-b + sq) / (2 * a))

	var hits []GeoPoint
	for _, t := range []float64{t0, t1} {
		if t > 0 && t < tMax {
			hits = append(hits, GeoPoint{Geometry: el, Point: ray.At(t), T: t})
		}
	}
	if len(hits) == 0 {
		return nil, false
	}
	return hits, true
}

// AABB implements Geometry.
func (el *Ellipsoid) AABB() AABB {
	return NewAABB(el.Center.Add(el.Radii.Negate()), el.Center.Add(el.Radii))
}

// Translate implements Geometry.
func (el *Ellipsoid) Translate(v lin.Vector) Geometry {
	return &Ellipsoid{Center: el.Center.Add(v), Radii: el.Radii, Mat: el.Mat}
}

// Rotate implements Geometry. Rotating an ellipsoid about its own
// center requires tracking the orientation of its principal axes,
// which this primitive does not model (it is always axis-aligned) —
// rotation is a no-op, matching the policy already applied to Sphere
// for rotation about a point of full symmetry; an ellipsoid is not
// fully symmetric, so this is a known limitation, not an equivalence.
func (el *Ellipsoid) Rotate(q lin.Quaternion) Geometry { return el }

// Scale implements Geometry. Unlike Sphere/Tube/Cylinder, Ellipsoid
// already models three independent radii, so non-uniform scale is
// its native case.
func (el *Ellipsoid) Scale(sx, sy, sz float64) (Geometry, error) {
	if sx <= 0 || sy <= 0 || sz <= 0 {
		return nil, rterr.New(rterr.InvalidGeometry, "Ellipsoid.Scale", "scale factors must be positive")
	}
	radii := lin.Vector{X: el.Radii.X * sx, Y: el.Radii.Y * sy, Z: el.Radii.Z * sz}
	return &Ellipsoid{Center: el.Center, Radii: radii, Mat: el.Mat}, nil
}
