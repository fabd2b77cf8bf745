// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lin provides the linear math primitives needed by the ray
// tracer: points, vectors, colors, rays, and quaternion rotations.
// Unlike a general purpose 3D engine's math library, every type here
// is an immutable value: operations return new values instead of
// mutating through a pointer receiver. The ray tracer's scheduler runs
// many goroutines tracing independent rays through the same immutable
// scene concurrently (see package render); value semantics mean no
// vector can ever be aliased across workers by accident.
package lin

import "math"

// Epsilon is the tolerance used for float comparisons and for the
// surface-offset nudge applied to spawned rays. 2⁻⁴⁰ is small enough
// to never mask a genuine geometric difference at normal scene scales
// while still absorbing the rounding error accumulated by a handful
// of float64 operations.
const Epsilon = 1.0 / 1099511627776.0 // 2^-40

// AlignZero snaps x to exactly zero when it is within Epsilon of zero.
// Intersection routines must run tie variables (determinants,
// barycentric coordinates, dot products used as sign tests) through
// AlignZero before comparing against zero, otherwise grazing rays
// flicker between hit and miss from one frame to the next.
func AlignZero(x float64) float64 {
	if math.Abs(x) < Epsilon {
		return 0
	}
	return x
}

// FloatEq (~=) reports whether a and b differ by less than Epsilon.
func FloatEq(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// IsZero reports whether x is within Epsilon of zero.
func IsZero(x float64) bool { return math.Abs(x) < Epsilon }
