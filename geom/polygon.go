// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package geom

import (
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/rterr"
)

// Polygon is a planar convex polygon with three or more vertices,
// wound consistently so that Normal points outward.
//
// Modeled on physics/gjk.go's support-function style: the
// inside test below walks the edges exactly as gjk.go's support
// function walks a convex hull, checking that the query point never
// lies outside any edge's half-plane.
type Polygon struct {
	Vertices []lin.Point
	Mat      Material
}

// NewPolygon builds a polygon. It fails with InvalidGeometry when
// fewer than three vertices are given, when consecutive vertices
// coincide, when a vertex is not coplanar with the first three, or
// when the polygon is not convex (a turn against the winding of the
// first three vertices).
func NewPolygon(vertices []lin.Point, mat Material) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, rterr.New(rterr.InvalidGeometry, "NewPolygon", "need at least 3 vertices")
	}
	e1, err := vertices[1].Sub(vertices[0])
	if err != nil {
		return nil, rterr.New(rterr.InvalidGeometry, "NewPolygon", "coincident vertices")
	}
	e2, err := vertices[2].Sub(vertices[0])
	if err != nil {
		return nil, rterr.New(rterr.InvalidGeometry, "NewPolygon", "coincident vertices")
	}
	normal, err := e1.Cross(e2).Normalize()
	if err != nil {
		return nil, rterr.New(rterr.InvalidGeometry, "NewPolygon", "first three vertices are collinear")
	}
	for i := 3; i < len(vertices); i++ {
		d, err := vertices[i].Sub(vertices[0])
		if err != nil {
			return nil, rterr.New(rterr.InvalidGeometry, "NewPolygon", "coincident vertices")
		}
		if !lin.IsZero(d.Dot(normal)) {
			return nil, rterr.New(rterr.InvalidGeometry, "NewPolygon", "vertices are not coplanar")
		}
	}
	count := len(vertices)
	for i := 0; i < count; i++ {
		a, err := vertices[(i+1)%count].Sub(vertices[i])
		if err != nil {
			return nil, rterr.New(rterr.InvalidGeometry, "NewPolygon", "coincident vertices")
		}
		b, err := vertices[(i+2)%count].Sub(vertices[(i+1)%count])
		if err != nil {
			return nil, rterr.New(rterr.InvalidGeometry, "NewPolygon", "coincident vertices")
		}
		if lin.AlignZero(a.Cross(b).Dot(normal)) < 0 {
			return nil, rterr.New(rterr.InvalidGeometry, "NewPolygon", "polygon is not convex")
		}
	}
	cp := make([]lin.Point, len(vertices))
	copy(cp, vertices)
	return &Polygon{Vertices: cp, Mat: mat}, nil
}

func (pg *Polygon) normal() lin.Vector {
	e1, _ := pg.Vertices[1].Sub(pg.Vertices[0])
	e2, _ := pg.Vertices[2].Sub(pg.Vertices[0])
	n, err := e1.Cross(e2).Normalize()
	if err != nil {
		return lin.Vector{X: 1}
	}
	return n
}

// Material implements Geometry.
func (pg *Polygon) Material() Material { return pg.Mat }

// Normal implements Geometry.
func (pg *Polygon) Normal(_ lin.Point) lin.Vector { return pg.normal() }

// Intersect implements Geometry: first solves the supporting plane,
// then confirms the hit point lies within every edge's half-plane
// (valid for convex polygons only).
func (pg *Polygon) Intersect(ray lin.Ray, tMax float64) ([]GeoPoint, bool) {
	n := pg.normal()
	denom := lin.AlignZero(n.Dot(ray.Direction))
	if denom == 0 {
		return nil, false
	}
	diff, err := pg.Vertices[0].Sub(ray.Origin)
	if err != nil {
		return nil, false
	}
	t := lin.AlignZero(diff.Dot(n) / denom)
	if t <= 0 || t >= tMax {
		return nil, false
	}
	p := ray.At(t)

	count := len(pg.Vertices)
	for i := 0; i < count; i++ {
		a, b := pg.Vertices[i], pg.Vertices[(i+1)%count]
		edge, err := b.Sub(a)
		if err != nil {
			return nil, false
		}
		toP, err := p.Sub(a)
		if err != nil {
			continue // p coincides with a vertex: on the boundary, so this edge does not reject it
		}
		if lin.AlignZero(edge.Cross(toP).Dot(n)) < 0 {
			return nil, false // p lies outside this edge's half-plane
		}
	}
	return []GeoPoint{{Geometry: pg, Point: p, T: t}}, true
}

// AABB implements Geometry.
func (pg *Polygon) AABB() AABB {
	box := NewAABB(pg.Vertices[0], pg.Vertices[0])
	for _, v := range pg.Vertices[1:] {
		box = box.Grow(v)
	}
	return box
}

func (pg *Polygon) centroid() lin.Point {
	var x, y, z float64
	for _, v := range pg.Vertices {
		x += v.X
		y += v.Y
		z += v.Z
	}
	n := float64(len(pg.Vertices))
	return lin.NewPoint(x/n, y/n, z/n)
}

// Translate implements Geometry.
func (pg *Polygon) Translate(v lin.Vector) Geometry {
	out := make([]lin.Point, len(pg.Vertices))
	for i, p := range pg.Vertices {
		out[i] = p.Add(v)
	}
	return &Polygon{Vertices: out, Mat: pg.Mat}
}

// Rotate implements Geometry. Vertices rotate about the polygon's own
// centroid.
func (pg *Polygon) Rotate(q lin.Quaternion) Geometry {
	c := pg.centroid()
	out := make([]lin.Point, len(pg.Vertices))
	for i, p := range pg.Vertices {
		v, err := p.Sub(c)
		if err != nil {
			out[i] = p
			continue
		}
		out[i] = c.Add(q.Rotate(v))
	}
	return &Polygon{Vertices: out, Mat: pg.Mat}
}

// Scale implements Geometry. An affine scale of coplanar points stays
// coplanar for any (sx,sy,sz), so non-uniform scale is well-defined
// here (unlike Sphere/Tube — see DESIGN.md Open Question 1).
func (pg *Polygon) Scale(sx, sy, sz float64) (Geometry, error) {
	c := pg.centroid()
	out := make([]lin.Point, len(pg.Vertices))
	for i, p := range pg.Vertices {
		v, err := p.Sub(c)
		if err != nil {
			out[i] = p
			continue
		}
		out[i] = c.Add(lin.Vector{X: v.X * sx, Y: v.Y * sy, Z: v.Z * sz})
	}
	return NewPolygon(out, pg.Mat)
}
