// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import (
	"math"

	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/rterr"
)

// Tube is an infinite right-circular cylindrical surface around Axis
// with radius R. Modeled on physics/shape.go's primitive
// layout (a value type holding its defining parameters plus AABB/
// intersect), specialized to the quadratic-in-the-perpendicular-plane
// test named in spec §4.2.
type Tube struct {
	Axis lin.Ray // Axis.Direction is unit, per lin.Ray's invariant
	R    float64
	Mat  Material
}

// NewTube builds a tube. It fails with InvalidGeometry when r is not
// strictly positive.
func NewTube(axis lin.Ray, r float64, mat Material) (*Tube, error) {
	if r <= 0 {
		return nil, rterr.New(rterr.InvalidGeometry, "NewTube", "radius must be positive")
	}
	return &Tube{Axis: axis, R: r, Mat: mat}, nil
}

// Material implements Geometry.
func (tb *Tube) Material() Material { return tb.Mat }

// Normal implements Geometry: the outward unit normal is the
// component of (p - axis.Origin) perpendicular to the axis.
func (tb *Tube) Normal(p lin.Point) lin.Vector {
	return tb.perpNormal(p)
}

func (tb *Tube) perpNormal(p lin.Point) lin.Vector {
	oc, err := p.Sub(tb.Axis.Origin)
	if err != nil {
		return lin.Vector{X: 1}
	}
	along := oc.Dot(tb.Axis.Direction)
	perp := oc.Sub(tb.Axis.Direction.Scale(along))
	n, err := perp.Normalize()
	if err != nil {
		return lin.Vector{X: 1}
	}
	return n
}

// quadratic returns the coefficients of the tube's intersection
// quadratic At² + Bt + C = 0 for ray. Cylinder reuses it through its
// embedded tube.
func (tb *Tube) quadratic(ray lin.Ray) (a, b, c float64) {
	d := tb.Axis.Direction
	deltaP, err := ray.Origin.Sub(tb.Axis.Origin)
	if err != nil {
		deltaP = lin.Vector{}
	}
	dDotDir := ray.Direction.Dot(d)
	perpDir := ray.Direction.Sub(d.Scale(dDotDir))
	deltaPDotDir := deltaP.Dot(d)
	perpDelta := deltaP.Sub(d.Scale(deltaPDotDir))

	a = perpDir.LengthSquared()
	b = 2 * perpDir.Dot(perpDelta)
	c = perpDelta.LengthSquared() - tb.R*tb.R
	return a, b, c
}

// Intersect implements Geometry.
func (tb *Tube) Intersect(ray lin.Ray, tMax float64) ([]GeoPoint, bool) {
	hits := tb.rawHits(ray, tMax)
	if len(hits) == 0 {
		return nil, false
	}
	out := make([]GeoPoint, len(hits))
	for i, t := range hits {
		out[i] = GeoPoint{Geometry: tb, Point: ray.At(t), T: t}
	}
	return out, true
}

// rawHits returns the sorted in-range roots of the tube's quadratic,
// shared with Cylinder's clipping logic.
func (tb *Tube) rawHits(ray lin.Ray, tMax float64) []float64 {
	a, b, c := tb.quadratic(ray)
	if lin.IsZero(a) {
		return nil // ray parallel to the axis: never crosses the infinite tube
	}
	disc := lin.AlignZero(b*b - 4*a*c)
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	t0 := lin.AlignZero((-b - sq) / (2 * a))
	t1 := lin.AlignZero((-b + sq) / (2 * a))
	var hits []float64
	for _, t := range []float64{t0, t1} {
		if t > 0 && t < tMax {
			hits = append(hits, t)
		}
	}
	return hits
}

// AABB implements Geometry. An infinite tube has no bounded extent.
func (tb *Tube) AABB() AABB { return EmptyAABB() }

// Translate implements Geometry.
func (tb *Tube) Translate(v lin.Vector) Geometry {
	o := tb.Axis.Origin.Add(v)
	return &Tube{Axis: lin.Ray{Origin: o, Direction: tb.Axis.Direction}, R: tb.R, Mat: tb.Mat}
}

// Rotate implements Geometry. The axis rotates about its own origin.
func (tb *Tube) Rotate(q lin.Quaternion) Geometry {
	return &Tube{Axis: lin.Ray{Origin: tb.Axis.Origin, Direction: q.Rotate(tb.Axis.Direction)}, R: tb.R, Mat: tb.Mat}
}

// Scale implements Geometry. Only uniform scaling is supported: a
// non-uniform scale would turn the circular cross-section into an
// ellipse, a shape this package models separately via Ellipsoid, not
// via Tube (DESIGN.md Open Question 1).
func (tb *Tube) Scale(sx, sy, sz float64) (Geometry, error) {
	if !lin.FloatEq(sx, sy) || !lin.FloatEq(sy, sz) {
		return nil, rterr.New(rterr.InvalidGeometry, "Tube.Scale", "non-uniform scale would produce an elliptical cross-section")
	}
	if sx <= 0 {
		return nil, rterr.New(rterr.InvalidGeometry, "Tube.Scale", "scale factor must be positive")
	}
	return &Tube{Axis: tb.Axis, R: tb.R * sx, Mat: tb.Mat}, nil
}

// Cylinder is a Tube clipped to [0, Height] along its axis, capped by
// two disks. Grounded on spec §4.2: "tube-intersect clipped to
// 0 ≤ (p−axis.o)·axis.d ≤ h, plus two disk caps".
type Cylinder struct {
	tube   Tube
	Height float64
}

// NewCylinder builds a cylinder. It fails with InvalidGeometry when r
// or height is not strictly positive.
func NewCylinder(axis lin.Ray, r, height float64, mat Material) (*Cylinder, error) {
	if height <= 0 {
		return nil, rterr.New(rterr.InvalidGeometry, "NewCylinder", "height must be positive")
	}
	tb, err := NewTube(axis, r, mat)
	if err != nil {
		return nil, err
	}
	return &Cylinder{tube: *tb, Height: height}, nil
}

// Material implements Geometry.
func (cy *Cylinder) Material() Material { return cy.tube.Mat }

// Normal implements Geometry: the side's perpendicular normal, or
// ±axis.Direction on a cap.
func (cy *Cylinder) Normal(p lin.Point) lin.Vector {
	oc, err := p.Sub(cy.tube.Axis.Origin)
	if err != nil {
		return lin.Vector{X: 1}
	}
	along := lin.AlignZero(oc.Dot(cy.tube.Axis.Direction))
	if along <= 0 {
		return cy.tube.Axis.Direction.Negate()
	}
	if along >= cy.Height {
		return cy.tube.Axis.Direction
	}
	return cy.tube.perpNormal(p)
}

// Intersect implements Geometry.
func (cy *Cylinder) Intersect(ray lin.Ray, tMax float64) ([]GeoPoint, bool) {
	d := cy.tube.Axis.Direction
	var hits []GeoPoint

	for _, t := range cy.tube.rawHits(ray, tMax) {
		p := ray.At(t)
		oc, err := p.Sub(cy.tube.Axis.Origin)
		if err != nil {
			continue
		}
		along := oc.Dot(d)
		if along >= 0 && along <= cy.Height {
			hits = append(hits, GeoPoint{Geometry: cy, Point: p, T: t})
		}
	}

	for _, capOrigin := range []lin.Point{cy.tube.Axis.Origin, cy.tube.Axis.Origin.Add(d.Scale(cy.Height))} {
		denom := lin.AlignZero(d.Dot(ray.Direction))
		if denom == 0 {
			continue
		}
		diff, err := capOrigin.Sub(ray.Origin)
		if err != nil {
			continue
		}
		t := lin.AlignZero(diff.Dot(d) / denom)
		if t <= 0 || t >= tMax {
			continue
		}
		p := ray.At(t)
		fromCenter, err := p.Sub(capOrigin)
		if err != nil {
			hits = append(hits, GeoPoint{Geometry: cy, Point: p, T: t})
			continue
		}
		radial := fromCenter.Sub(d.Scale(fromCenter.Dot(d)))
		if radial.LengthSquared() <= cy.tube.R*cy.tube.R {
			hits = append(hits, GeoPoint{Geometry: cy, Point: p, T: t})
		}
	}

	if len(hits) == 0 {
		return nil, false
	}
	return hits, true
}

// AABB implements Geometry: the union of the two axis-aligned boxes
// conservatively bounding each cap disk (every point of a disk of
// radius r differs from its center by at most r along any world
// axis).
func (cy *Cylinder) AABB() AABB {
	d := cy.tube.Axis.Direction
	r := lin.Vector{X: cy.tube.R, Y: cy.tube.R, Z: cy.tube.R}
	c0 := cy.tube.Axis.Origin
	c1 := c0.Add(d.Scale(cy.Height))
	box := NewAABB(c0.Add(r.Negate()), c0.Add(r))
	box = box.Union(NewAABB(c1.Add(r.Negate()), c1.Add(r)))
	return box
}

// Translate implements Geometry.
func (cy *Cylinder) Translate(v lin.Vector) Geometry {
	tb := cy.tube.Translate(v).(*Tube)
	return &Cylinder{tube: *tb, Height: cy.Height}
}

// Rotate implements Geometry.
func (cy *Cylinder) Rotate(q lin.Quaternion) Geometry {
	tb := cy.tube.Rotate(q).(*Tube)
	return &Cylinder{tube: *tb, Height: cy.Height}
}

// Scale implements Geometry. All three factors must be equal (same
// constraint as Tube); the radius and the height both scale by that
// one factor.
func (cy *Cylinder) Scale(sx, sy, sz float64) (Geometry, error) {
	if !lin.FloatEq(sx, sy) || !lin.FloatEq(sy, sz) {
		return nil, rterr.New(rterr.InvalidGeometry, "Cylinder.Scale", "non-uniform scale would produce an elliptical cross-section")
	}
	if sx <= 0 {
		return nil, rterr.New(rterr.InvalidGeometry, "Cylinder.Scale", "scale factor must be positive")
	}
	return &Cylinder{tube: Tube{Axis: cy.tube.Axis, R: cy.tube.R * sx, Mat: cy.tube.Mat}, Height: cy.Height * sx}, nil
}
