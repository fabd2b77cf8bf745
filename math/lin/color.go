// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// Color is an RGB triplet of non-negative channel values. Values above
// 1 (or, depending on convention, above 255) are expected during
// shading accumulation — only the pixel sink clamps on output (spec
// §6), so Color never clamps itself.
type Color struct {
	R, G, B float64
}

// Black is the additive identity color.
var Black = Color{}

// White is the RGB triple (1, 1, 1).
var White = Color{R: 1, G: 1, B: 1}

// NewColor builds a color from its channels.
func NewColor(r, g, b float64) Color { return Color{R: r, G: g, B: b} }

// Add returns c + d, channel-wise.
func (c Color) Add(d Color) Color {
	return Color{R: c.R + d.R, G: c.G + d.G, B: c.B + d.B}
}

// Scale returns c scaled by s, channel-wise.
func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Mul returns the Hadamard (channel-wise) product of c and d — the
// "⊗" operator the shading model uses to combine an attenuation color
// with a transparency factor or a material coefficient.
func (c Color) Mul(d Color) Color {
	return Color{R: c.R * d.R, G: c.G * d.G, B: c.B * d.B}
}

// MaxChannel returns the largest of the three channels.
func (c Color) MaxChannel() float64 { return math.Max(c.R, math.Max(c.G, c.B)) }

// AllBelow reports whether every channel is strictly less than
// threshold — the MIN_K attenuation-cutoff test used to prune
// negligible reflection/refraction/shadow contributions.
func (c Color) AllBelow(threshold float64) bool {
	return c.R < threshold && c.G < threshold && c.B < threshold
}

// IsFinite reports whether every channel is a finite, non-NaN number.
// A shading contribution that fails this check must collapse to black
// rather than propagate (spec §4.5, §7 NumericalDegeneracy).
func (c Color) IsFinite() bool {
	return isFiniteNumber(c.R) && isFiniteNumber(c.G) && isFiniteNumber(c.B)
}

func isFiniteNumber(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
