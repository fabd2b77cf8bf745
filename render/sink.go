// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import "github.com/galvanized/raytrace/math/lin"

// PixelSink receives one finished pixel at a time (spec §6). Pixel
// writes never overlap between workers, so an implementation needs no
// internal locking of its own — only to be safe for concurrent use by
// distinct (x, y) pairs.
type PixelSink interface {
	WritePixel(x, y int, c lin.Color)
}
