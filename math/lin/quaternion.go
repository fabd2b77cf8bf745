// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import (
	"github.com/galvanized/raytrace/rterr"
	"github.com/go-gl/mathgl/mgl64"
)

// Quaternion represents a 3D rotation. Composition (Mul) is
// associative and Rotate preserves vector length to within Epsilon.
//
// Unlike the rest of this package, Quaternion is a thin wrapper around
// mathgl's mgl64.Quat rather than a hand-rolled implementation: a
// correct, well-exercised axis-angle quaternion is exactly what
// mathgl provides, and the ray tracer has no rotation need (e.g. dual
// quaternions, non-unit quaternions) that mathgl's Quat doesn't already
// cover.
type Quaternion struct {
	q mgl64.Quat
}

// IdentityQuaternion is the no-rotation quaternion.
func IdentityQuaternion() Quaternion { return Quaternion{q: mgl64.QuatIdent()} }

// FromAxisAngle builds the quaternion that rotates by theta radians
// around axis. It fails with InvalidGeometry when axis is the zero
// vector.
func FromAxisAngle(axis Vector, theta float64) (Quaternion, error) {
	unit, err := axis.Normalize()
	if err != nil {
		return Quaternion{}, rterr.New(rterr.InvalidGeometry, "FromAxisAngle", "zero rotation axis")
	}
	return Quaternion{q: mgl64.QuatRotate(theta, toMgl(unit))}, nil
}

// Rotate applies the quaternion's rotation to v.
func (q Quaternion) Rotate(v Vector) Vector {
	rotated := q.q.Rotate(mgl64.Vec3{v.X, v.Y, v.Z})
	return Vector{X: rotated[0], Y: rotated[1], Z: rotated[2], unit: v.unit}
}

// Mul composes q then r: (q.Mul(r)).Rotate(v) == r.Rotate(q.Rotate(v)).
func (q Quaternion) Mul(r Quaternion) Quaternion { return Quaternion{q: r.q.Mul(q.q)} }

// Normalize returns q rescaled to a unit quaternion.
func (q Quaternion) Normalize() Quaternion { return Quaternion{q: q.q.Normalize()} }

func toMgl(v Vector) mgl64.Vec3 { return mgl64.Vec3{v.X, v.Y, v.Z} }
