// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import (
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/rterr"
)

// Triangle is a flat triangular facet with vertices A, B, C.
//
// Intersection uses the Möller–Trumbore formulation named in spec §4.2;
// the barycentric interior test is strict (u>0, v>0, u+v<1) so a ray
// that lands exactly on an edge is reported as a miss rather than a
// hit, matching the "triangle edge miss" case.
type Triangle struct {
	A, B, C lin.Point
	Mat     Material
}

// NewTriangle builds a triangle. It fails with InvalidGeometry when
// the three vertices are collinear (degenerate, zero area).
func NewTriangle(a, b, c lin.Point, mat Material) (*Triangle, error) {
	e1, err := b.Sub(a)
	if err != nil {
		return nil, rterr.New(rterr.InvalidGeometry, "NewTriangle", "A and B coincide")
	}
	e2, err := c.Sub(a)
	if err != nil {
		return nil, rterr.New(rterr.InvalidGeometry, "NewTriangle", "A and C coincide")
	}
	if e1.Cross(e2).LengthSquared() < lin.Epsilon*lin.Epsilon {
		return nil, rterr.New(rterr.InvalidGeometry, "NewTriangle", "vertices are collinear")
	}
	return &Triangle{A: a, B: b, C: c, Mat: mat}, nil
}

// Material implements Geometry.
func (tr *Triangle) Material() Material { return tr.Mat }

// Normal implements Geometry. The triangle's normal is uniform over
// its surface; p is accepted only to satisfy the Geometry contract.
func (tr *Triangle) Normal(_ lin.Point) lin.Vector {
	e1, _ := tr.B.Sub(tr.A)
	e2, _ := tr.C.Sub(tr.A)
	n, err := e1.Cross(e2).Normalize()
	if err != nil {
		return lin.Vector{X: 1}
	}
	return n
}

// Intersect implements Geometry via Möller–Trumbore.
func (tr *Triangle) Intersect(ray lin.Ray, tMax float64) ([]GeoPoint, bool) {
	e1, err := tr.B.Sub(tr.A)
	if err != nil {
		return nil, false
	}
	e2, err := tr.C.Sub(tr.A)
	if err != nil {
		return nil, false
	}

	pvec := ray.Direction.Cross(e2)
	det := lin.AlignZero(e1.Dot(pvec))
	if det == 0 {
		return nil, false // ray parallel to the triangle's plane
	}
	invDet := 1 / det

	tvec, err := ray.Origin.Sub(tr.A)
	if err != nil {
		return nil, false
	}
	u := lin.AlignZero(tvec.Dot(pvec) * invDet)
	if u <= 0 || u >= 1 {
		return nil, false
	}

	qvec := tvec.Cross(e1)
	v := lin.AlignZero(ray.Direction.Dot(qvec) * invDet)
	if v <= 0 || lin.AlignZero(u+v) >= 1 {
		return nil, false
	}

	t := lin.AlignZero(e2.Dot(qvec) * invDet)
	if t <= 0 || t >= tMax {
		return nil, false
	}
	return []GeoPoint{{Geometry: tr, Point: ray.At(t), T: t}}, true
}

// AABB implements Geometry.
func (tr *Triangle) AABB() AABB {
	box := NewAABB(tr.A, tr.A)
	box = box.Grow(tr.B)
	box = box.Grow(tr.C)
	return box
}

func (tr *Triangle) centroid() lin.Point {
	return lin.NewPoint(
		(tr.A.X+tr.B.X+tr.C.X)/3,
		(tr.A.Y+tr.B.Y+tr.C.Y)/3,
		(tr.A.Z+tr.B.Z+tr.C.Z)/3,
	)
}

// Translate implements Geometry.
func (tr *Triangle) Translate(v lin.Vector) Geometry {
	return &Triangle{A: tr.A.Add(v), B: tr.B.Add(v), C: tr.C.Add(v), Mat: tr.Mat}
}

// Rotate implements Geometry. Vertices rotate about the triangle's own
// centroid.
func (tr *Triangle) Rotate(q lin.Quaternion) Geometry {
	c := tr.centroid()
	rotateAbout := func(p lin.Point) lin.Point {
		v, err := p.Sub(c)
		if err != nil {
			return p
		}
		return c.Add(q.Rotate(v))
	}
	return &Triangle{A: rotateAbout(tr.A), B: rotateAbout(tr.B), C: rotateAbout(tr.C), Mat: tr.Mat}
}

// Scale implements Geometry. Unlike Sphere/Tube, a triangle's vertex
// representation supports non-uniform scaling directly: it stays a
// flat triangle for any (sx,sy,sz), so no Open Question applies here.
func (tr *Triangle) Scale(sx, sy, sz float64) (Geometry, error) {
	c := tr.centroid()
	scaleAbout := func(p lin.Point) (lin.Point, error) {
		v, err := p.Sub(c)
		if err != nil {
			return p, nil
		}
		return c.Add(lin.Vector{X: v.X * sx, Y: v.Y * sy, Z: v.Z * sz}), nil
	}
	a, err := scaleAbout(tr.A)
	if err != nil {
		return nil, err
	}
	b, err := scaleAbout(tr.B)
	if err != nil {
		return nil, err
	}
	cc, err := scaleAbout(tr.C)
	if err != nil {
		return nil, err
	}
	return NewTriangle(a, b, cc, tr.Mat)
}
