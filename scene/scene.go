// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package scene

import (
	"github.com/galvanized/raytrace/light"
	"github.com/galvanized/raytrace/math/lin"
)

// Scene is everything a render needs to trace a frame: the background
// color shown when a ray escapes, an ambient light added unattenuated
// and unshadowed to every hit, the light list, and the geometry
// aggregate. Immutable once built and shared read-only across every
// worker (spec §5).
type Scene struct {
	Background lin.Color
	Ambient    light.Light // may be nil: no ambient term
	Lights     []light.Light
	Geometries Geometries
}

// New builds a Scene from its parts.
func New(background lin.Color, ambient light.Light, lights []light.Light, geoms Geometries) Scene {
	return Scene{Background: background, Ambient: ambient, Lights: lights, Geometries: geoms}
}

// AmbientAt returns the scene's ambient contribution at p, or black
// when the scene has no ambient light.
func (s Scene) AmbientAt(p lin.Point) lin.Color {
	if s.Ambient == nil {
		return lin.Black
	}
	return s.Ambient.IntensityAt(p)
}
