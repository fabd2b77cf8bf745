// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package light

import (
	"math"

	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/rng"
)

// farDistance stands in for +Inf as a point offset when a caller needs
// an actual Point rather than a direction (Sample's return type). It
// only has to be far enough that nothing in a scene sits beyond it.
const farDistance = 1e6

// Directional is a light with no position: every ray it casts travels
// in the same fixed direction, as if the source were infinitely far
// away (e.g. sunlight). Unattenuated.
type Directional struct {
	Intensity lin.Color
	Direction lin.Vector // direction the light travels, light -> scene
}

// NewDirectional builds a directional light, normalizing direction.
func NewDirectional(intensity lin.Color, direction lin.Vector) (*Directional, error) {
	unit, err := direction.Normalize()
	if err != nil {
		return nil, err
	}
	return &Directional{Intensity: intensity, Direction: unit}, nil
}

// IntensityAt ignores p: a directional light floods the whole scene
// uniformly.
func (d *Directional) IntensityAt(p lin.Point) lin.Color { return d.Intensity }

// DirectionTo ignores p and returns the light's fixed direction.
func (d *Directional) DirectionTo(p lin.Point) lin.Vector { return d.Direction }

// DistanceTo is always +Inf: a directional light has no position to
// be a finite distance from.
func (d *Directional) DistanceTo(p lin.Point) float64 { return math.Inf(1) }

// Sample returns a single point far along -Direction from p, standing
// in for "the light" at a position a shadow ray can aim at. Directional
// is a hard light: n is ignored.
func (d *Directional) Sample(p lin.Point, n int, src rng.Source) []lin.Point {
	return []lin.Point{p.Add(d.Direction.Negate().Scale(farDistance))}
}
