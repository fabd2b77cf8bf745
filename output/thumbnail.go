// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package output

import (
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail returns a Catmull-Rom downsampled copy of img scaled to
// fit within maxDim on its longest side, for a quick preview next to
// the full render.
func Thumbnail(img image.Image, maxDim int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 || maxDim <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}

	scale := float64(maxDim) / float64(w)
	if h > w {
		scale = float64(maxDim) / float64(h)
	}
	if scale > 1 {
		scale = 1
	}
	dw, dh := int(float64(w)*scale), int(float64(h)*scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
