// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package sample generates the jittered point sets the camera and
// shading paths use to integrate over an area: sub-pixel offsets for
// SSAA, and disk points on an area light for soft shadows.
//
// Modeled on eg/rt.go's sampling loop, which perturbs
// both the camera origin and the shadow ray direction by rnd(seed)-0.5
// before casting (see rt.go's "Add randomness to the camera origin"
// and "add randomness to light for soft shadows" comments). This
// package generalizes that single-purpose inline jitter into reusable
// N-point generators shared by camera and light.
package sample

import (
	"math"

	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/rng"
)

// Offset is a jittered sub-pixel sample, each component in [0, 1).
type Offset struct {
	U, V float64
}

// Grid returns an s×s jittered grid of sub-pixel offsets: the pixel
// is divided into an s×s lattice of cells and one sample is drawn
// uniformly at random within each cell, so the samples stay spread out
// (stratified) rather than clumping the way s² fully independent draws
// can. s must be ≥ 1; s == 1 returns the pixel center.
func Grid(s int, src rng.Source) []Offset {
	if s < 1 {
		s = 1
	}
	if s == 1 {
		return []Offset{{U: 0.5, V: 0.5}}
	}
	cell := 1 / float64(s)
	offsets := make([]Offset, 0, s*s)
	for j := 0; j < s; j++ {
		for i := 0; i < s; i++ {
			offsets = append(offsets, Offset{
				U: (float64(i) + src.Float64()) * cell,
				V: (float64(j) + src.Float64()) * cell,
			})
		}
	}
	return offsets
}

// Disk returns n points jittered across a disk of the given radius,
// centered on center and oriented perpendicular to normal — the area
// light shape spec §4.4 describes for Point/Spot soft-shadow sampling.
// n == 1 returns just center (the hard-shadow/point-light case).
func Disk(center lin.Point, normal lin.Vector, radius float64, n int, src rng.Source) []lin.Point {
	if n <= 1 {
		return []lin.Point{center}
	}
	u := lin.Perpendicular(normal)
	v := normal.Cross(u)
	if vn, err := v.Normalize(); err == nil {
		v = vn
	}

	points := make([]lin.Point, n)
	for i := 0; i < n; i++ {
		// Concentric-disk-style jitter: uniform radius by sqrt(r) so
		// samples don't bunch near the center, uniform angle over the
		// full circle.
		r := radius * math.Sqrt(src.Float64())
		theta := 2 * math.Pi * src.Float64()
		offset := u.Scale(r * math.Cos(theta)).Add(v.Scale(r * math.Sin(theta)))
		points[i] = center.Add(offset)
	}
	return points
}
