// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// Point is a location in 3D space.
type Point struct {
	X, Y, Z float64
}

// Origin is the point at (0, 0, 0).
var Origin = Point{0, 0, 0}

// NewPoint builds a point from its coordinates.
func NewPoint(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }

// Eq (~=) reports whether p and q are the same point to within Epsilon
// on each axis.
func (p Point) Eq(q Point) bool {
	return FloatEq(p.X, q.X) && FloatEq(p.Y, q.Y) && FloatEq(p.Z, q.Z)
}

// Add translates p by vector v.
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the vector from q to p (p - q). It fails with
// InvalidGeometry when p and q coincide, since the zero triple is not
// a valid Vector — this is the path that rejects degenerate geometry
// such as a triangle with two equal vertices.
func (p Point) Sub(q Point) (Vector, error) {
	return newVector("Point.Sub", p.X-q.X, p.Y-q.Y, p.Z-q.Z)
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Lerp linearly interpolates between p and q by ratio (0 at p, 1 at q).
func (p Point) Lerp(q Point, ratio float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*ratio,
		Y: p.Y + (q.Y-p.Y)*ratio,
		Z: p.Z + (q.Z-p.Z)*ratio,
	}
}

// Min returns the per-axis minimum of p and q. Used to grow AABBs.
func (p Point) Min(q Point) Point {
	return Point{min(p.X, q.X), min(p.Y, q.Y), min(p.Z, q.Z)}
}

// Max returns the per-axis maximum of p and q. Used to grow AABBs.
func (p Point) Max(q Point) Point {
	return Point{max(p.X, q.X), max(p.Y, q.Y), max(p.Z, q.Z)}
}

// Axis returns the coordinate of p along the given axis (0=X, 1=Y, 2=Z).
func (p Point) Axis(axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}
