// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package light

import (
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/rng"
	"github.com/galvanized/raytrace/sample"
)

// Point is a light radiating from a single position, attenuated by
// distance. Radius > 0 makes it an area light for soft-shadow
// sampling; Radius == 0 makes it a hard point light. The number of
// samples comes from Sample's n argument; SampleQuality is stored on
// the light and is not read by Sample.
type Point struct {
	Intensity     lin.Color
	Position      lin.Point
	KC, KL, KQ    float64 // constant, linear, quadratic attenuation
	Radius        float64 // area-light disk radius, 0 for a hard light
	SampleQuality int     // configured sample count; Sample uses its n argument instead
}

// NewPoint builds a point light with the given attenuation
// coefficients. kC, kL, kQ follow spec §4.4: 1/(kC + kL·d + kQ·d²).
func NewPoint(intensity lin.Color, position lin.Point, kC, kL, kQ float64) *Point {
	return &Point{Intensity: intensity, Position: position, KC: kC, KL: kL, KQ: kQ}
}

// IntensityAt returns the light's color attenuated by distance to p.
func (l *Point) IntensityAt(p lin.Point) lin.Color {
	return attenuate(l.Intensity, l.KC, l.KL, l.KQ, l.Position.DistanceTo(p))
}

// DirectionTo returns the unit vector from the light's position toward
// p. Falls back to the zero vector on the degenerate case of p
// coinciding with the light (a shadow ray toward itself has no
// meaningful direction, and should not arise for a point not emitting
// from inside its own geometry).
func (l *Point) DirectionTo(p lin.Point) lin.Vector {
	v, err := p.Sub(l.Position)
	if err != nil {
		return lin.Vector{}
	}
	unit, _ := v.Normalize()
	return unit
}

// DistanceTo returns the distance from the light to p.
func (l *Point) DistanceTo(p lin.Point) float64 { return l.Position.DistanceTo(p) }

// Sample returns a single point at the light's position when it is a
// hard light (Radius == 0 or n <= 1); otherwise a jittered disk of n
// points around Position, oriented toward p, per spec §4.4.
func (l *Point) Sample(p lin.Point, n int, src rng.Source) []lin.Point {
	if l.Radius <= 0 || n <= 1 {
		return []lin.Point{l.Position}
	}
	normal := l.DirectionTo(p) // along (p - light.position): the disk is perpendicular to it
	return sample.Disk(l.Position, normal, l.Radius, n, src)
}
