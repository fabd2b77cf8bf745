// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package light implements the scene's light sources: directional
// (parallel rays, no position), point (inverse-square-ish falloff),
// and spot (point plus a narrow directional beam).
//
// Modeled on light.go, whose vu.Light is a minimal
// color-only attachment with no positional or directional behavior of
// its own (that lived in the Pov it was attached to). This package
// keeps that separation of "a light is a color plus an attenuation
// law" but gives each kind its own position/direction fields directly,
// since this tracer has no scene-graph node to attach them to, and
// adds the sampling behavior spec §4.4 requires for soft shadows.
package light

import (
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/rng"
)

// Light is the interface the shading path queries for every light in
// the scene, per spec §4.4.
type Light interface {
	// IntensityAt returns the light's contribution at p, attenuation
	// included. Directional ignores p.
	IntensityAt(p lin.Point) lin.Color
	// DirectionTo returns the unit vector from the light toward p.
	// Directional returns its fixed direction regardless of p.
	DirectionTo(p lin.Point) lin.Vector
	// DistanceTo returns the distance used as the shadow ray's tMax.
	// Directional returns +Inf.
	DistanceTo(p lin.Point) float64
	// Sample returns n points on the light as seen from p: one point
	// for a hard light, or a jittered disk of n points for an area
	// light's soft shadows.
	Sample(p lin.Point, n int, src rng.Source) []lin.Point
}

// attenuate applies the inverse-square-plus-linear-plus-constant law
// spec §4.4 gives for Point/Spot: 1 / (kC + kL·d + kQ·d²).
func attenuate(intensity lin.Color, kC, kL, kQ, d float64) lin.Color {
	denom := kC + kL*d + kQ*d*d
	if denom <= 0 {
		return lin.Black
	}
	return intensity.Scale(1 / denom)
}
