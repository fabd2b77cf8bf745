// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package output turns a completed render into image bytes: a
// render.PixelSink backed by an in-memory buffer, PNG encoding, and a
// downsampled preview thumbnail.
//
// Modeled on eg/rt.go, which accumulates a color per pixel and writes
// it into an *image.NRGBA with img.SetNRGBA once the color is final.
package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/galvanized/raytrace/math/lin"
)

// ImageSink is a render.PixelSink backed by an *image.NRGBA. Every
// channel is scaled and clamped to [0,255] the way rt.go's row.render
// does before assigning into the NRGBA buffer; no gamma correction is
// applied.
type ImageSink struct {
	img *image.NRGBA
}

// NewImageSink allocates a sink for a nX by nY image.
func NewImageSink(nX, nY int) *ImageSink {
	return &ImageSink{img: image.NewNRGBA(image.Rect(0, 0, nX, nY))}
}

// WritePixel implements render.PixelSink.
func (s *ImageSink) WritePixel(x, y int, c lin.Color) {
	s.img.SetNRGBA(x, y, toNRGBA(c))
}

// Image returns the underlying buffer. Safe to call once the render
// that's writing to this sink has finished.
func (s *ImageSink) Image() *image.NRGBA { return s.img }

// WritePNG encodes the sink's current buffer as a PNG to w.
func (s *ImageSink) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("output: encode png: %w", err)
	}
	return nil
}

// toNRGBA clamps each channel to [0,1] before scaling to a byte, the
// same clamp-then-scale rt.go performs with byte(color.X) after
// accumulating 64 samples.
func toNRGBA(c lin.Color) color.NRGBA {
	return color.NRGBA{
		R: clampByte(c.R),
		G: clampByte(c.G),
		B: clampByte(c.B),
		A: 255,
	}
}

func clampByte(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	return uint8(v*255 + 0.5)
}
