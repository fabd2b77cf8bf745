// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package light

import (
	"math"

	"github.com/galvanized/raytrace/math/lin"
)

// Spot is a Point light narrowed into a cone: its contribution falls
// off by max(0, dir·l)^exponent away from its aim direction, per spec
// §4.4, on top of the usual distance attenuation.
type Spot struct {
	Point
	Direction          lin.Vector // the cone's aim, light -> scene
	NarrowBeamExponent float64
}

// NewSpot builds a spot light, normalizing direction.
func NewSpot(intensity lin.Color, position lin.Point, kC, kL, kQ float64, direction lin.Vector, exponent float64) (*Spot, error) {
	unit, err := direction.Normalize()
	if err != nil {
		return nil, err
	}
	return &Spot{
		Point:              Point{Intensity: intensity, Position: position, KC: kC, KL: kL, KQ: kQ},
		Direction:          unit,
		NarrowBeamExponent: exponent,
	}, nil
}

// IntensityAt applies the Point distance attenuation and then narrows
// it by the cosine of the angle between the spot's aim and the
// direction toward p, raised to NarrowBeamExponent.
func (s *Spot) IntensityAt(p lin.Point) lin.Color {
	base := s.Point.IntensityAt(p)
	toP := s.Point.DirectionTo(p)
	cos := s.Direction.Dot(toP)
	if cos <= 0 {
		return lin.Black
	}
	return base.Scale(math.Pow(cos, s.NarrowBeamExponent))
}
