// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package geom implements the ray tracer's intersectable primitives:
// sphere, plane, triangle, polygon, tube, cylinder and ellipsoid, each
// exposing normal/intersect/aabb/transform per the Geometry interface.
package geom

import "github.com/galvanized/raytrace/math/lin"

// Material holds the Phong coefficients and emission color of a
// geometry's surface. Every coefficient channel is expected to lie in
// [0,1]; the zero value is fully black/non-reflective/opaque/diffuse,
// which matches the spec's "defaults are zero/black".
type Material struct {
	Diffuse      lin.Color // kD
	Specular     lin.Color // kS
	Transparency lin.Color // kT
	Reflectance  lin.Color // kR
	Shininess    int       // >= 0
	Emission     lin.Color
}

// WithShininess returns a copy of m with Shininess set to s. Material
// is small and immutable by convention (like every other value type in
// this package), so geometries build one with field literals or these
// small "With*" copy helpers rather than mutating a shared value.
func (m Material) WithShininess(s int) Material {
	m.Shininess = s
	return m
}
