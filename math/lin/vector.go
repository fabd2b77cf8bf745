// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import (
	"math"

	"github.com/galvanized/raytrace/rterr"
)

// Vector is a direction and magnitude in 3D space — a Point excluding
// the zero triple. unit records whether the vector is already known to
// be unit length so repeated Normalize calls (common along a shading
// path: a normal is normalized once at intersection time and then
// reused by every light loop iteration) can short-circuit the sqrt.
type Vector struct {
	X, Y, Z float64
	unit    bool
}

// NewVector builds a vector from its components. It fails with
// InvalidGeometry when x, y, z are all within Epsilon of zero — the
// zero triple carries no direction and is never a valid Vector.
func NewVector(x, y, z float64) (Vector, error) { return newVector("NewVector", x, y, z) }

func newVector(op string, x, y, z float64) (Vector, error) {
	if x*x+y*y+z*z < Epsilon*Epsilon {
		return Vector{}, rterr.New(rterr.InvalidGeometry, op, "zero vector")
	}
	return Vector{X: x, Y: y, Z: z}, nil
}

// Eq (~=) reports whether v and u are the same vector to within
// Epsilon on each axis.
func (v Vector) Eq(u Vector) bool {
	return FloatEq(v.X, u.X) && FloatEq(v.Y, u.Y) && FloatEq(v.Z, u.Z)
}

// Dot returns the dot product of v and u.
func (v Vector) Dot(u Vector) float64 { return v.X*u.X + v.Y*u.Y + v.Z*u.Z }

// Cross returns the cross product v × u. The result may be the zero
// vector when v and u are parallel; that is a valid intermediate value
// here (only explicit construction and Normalize reject the zero
// triple), so Cross never fails.
func (v Vector) Cross(u Vector) Vector {
	return Vector{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// Scale returns v scaled by s. A negative s flips direction; unit
// length is only preserved for s == ±1.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s, unit: v.unit && math.Abs(s) == 1}
}

// Add returns v + u.
func (v Vector) Add(u Vector) Vector {
	return Vector{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Sub returns v - u.
func (v Vector) Sub(u Vector) Vector {
	return Vector{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// Negate returns -v. Unit length is preserved.
func (v Vector) Negate() Vector { return Vector{X: -v.X, Y: -v.Y, Z: -v.Z, unit: v.unit} }

// LengthSquared returns the squared magnitude of v, avoiding a sqrt
// when only a magnitude comparison is needed (as in the sphere
// intersection discriminant).
func (v Vector) LengthSquared() float64 { return v.Dot(v) }

// Length returns the magnitude of v.
func (v Vector) Length() float64 {
	if v.unit {
		return 1
	}
	return math.Sqrt(v.LengthSquared())
}

// IsUnit reports whether v is already known to be unit length.
func (v Vector) IsUnit() bool { return v.unit }

// Normalize returns v scaled to unit length. It fails with
// InvalidGeometry (kind: the "ZeroVector" case of the spec's vector
// algebra — construction validation, not a recoverable shading
// condition) when v has zero magnitude, since there is no direction to
// normalize.
func (v Vector) Normalize() (Vector, error) {
	if v.unit {
		return v, nil
	}
	lenSq := v.LengthSquared()
	if lenSq < Epsilon*Epsilon {
		return Vector{}, rterr.New(rterr.InvalidGeometry, "Vector.Normalize", "zero vector")
	}
	inv := 1 / math.Sqrt(lenSq)
	return Vector{X: v.X * inv, Y: v.Y * inv, Z: v.Z * inv, unit: true}, nil
}

// Reflect returns v reflected about unit normal n: v - 2(v·n)n. The
// result preserves ‖v‖ and flips the sign of the component along n.
func (v Vector) Reflect(n Vector) Vector {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// IsParallel reports whether u and v point along the same line, in
// either direction, to within Epsilon.
func IsParallel(u, v Vector) bool {
	return u.Cross(v).LengthSquared() < Epsilon*Epsilon
}

// IsPerpendicular reports whether u and v are orthogonal to within
// Epsilon.
func IsPerpendicular(u, v Vector) bool { return IsZero(u.Dot(v)) }

// Perpendicular deterministically returns a unit vector orthogonal to
// v. It picks the world axis least aligned with v before crossing, so
// the cross product never degenerates into a near-zero vector: if v
// were crossed with the axis it is most aligned with, the result would
// itself be close to zero and normalizing it would amplify rounding
// error.
func Perpendicular(v Vector) Vector {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	var axis Vector
	switch {
	case ax <= ay && ax <= az:
		axis = Vector{X: 1}
	case ay <= ax && ay <= az:
		axis = Vector{Y: 1}
	default:
		axis = Vector{Z: 1}
	}
	result, err := v.Cross(axis).Normalize()
	if err != nil {
		// v itself was (numerically) zero; any unit vector will do.
		return Vector{X: 1, unit: true}
	}
	return result
}
