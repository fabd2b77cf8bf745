// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"sync"
	"sync/atomic"

	"github.com/galvanized/raytrace/camera"
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/rng"
	"github.com/galvanized/raytrace/sample"
	"github.com/galvanized/raytrace/scene"
)

// CancelFunc is polled at pixel boundaries (never mid-shading, per
// spec §5); returning true stops the render early, leaving the
// remaining pixels unwritten.
type CancelFunc func() bool

// Render drives a whole image through cam/sc into sink, per
// cfg.Scheduling. Grounded on eg/rt.go's rayTrace/worker: one goroutine
// per worker reading off a shared channel/counter, joined with a
// sync.WaitGroup, generalized into spec §4.7's three named modes.
func Render(cam *camera.Camera, sc scene.Scene, cfg Config, sink PixelSink, cancel CancelFunc) {
	nX, nY := cam.Resolution()
	switch cfg.Scheduling {
	case WorkerPool:
		renderWorkerPool(cam, sc, cfg, sink, nX, nY, cancel)
	case DataParallel:
		renderDataParallel(cam, sc, cfg, sink, nX, nY, cancel)
	default:
		renderSequential(cam, sc, cfg, sink, nX, nY, cancel)
	}
}

func renderSequential(cam *camera.Camera, sc scene.Scene, cfg Config, sink PixelSink, nX, nY int, cancel CancelFunc) {
	for y := 0; y < nY; y++ {
		for x := 0; x < nX; x++ {
			if cancel != nil && cancel() {
				return
			}
			sink.WritePixel(x, y, renderPixel(cam, sc, cfg, 0, x, y, nX))
		}
	}
}

// renderWorkerPool spawns cfg.Threads workers sharing a single
// atomically incremented "next pixel" counter — eg/rt.go's worker()/rows-channel
// pattern, with the channel swapped for an atomic counter since pixel
// indices (unlike that example's image rows) need no per-item payload.
func renderWorkerPool(cam *camera.Camera, sc scene.Scene, cfg Config, sink PixelSink, nX, nY int, cancel CancelFunc) {
	total := nX * nY
	threads := cfg.Threads
	if threads < 1 {
		threads = 1
	}
	var next int64
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func(workerID int) {
			defer wg.Done()
			for {
				i := atomic.AddInt64(&next, 1) - 1
				if i >= int64(total) {
					return
				}
				if cancel != nil && cancel() {
					return
				}
				x, y := int(i)%nX, int(i)/nX
				sink.WritePixel(x, y, renderPixel(cam, sc, cfg, workerID, x, y, nX))
			}
		}(w)
	}
	wg.Wait()
}

// renderDataParallel partitions the pixel index range into one
// contiguous chunk per worker, rather than WorkerPool's shared counter
// — a static parallel map over the range instead of dynamic work
// stealing, per spec §4.7.
func renderDataParallel(cam *camera.Camera, sc scene.Scene, cfg Config, sink PixelSink, nX, nY int, cancel CancelFunc) {
	total := nX * nY
	threads := cfg.Threads
	if threads < 1 {
		threads = 1
	}
	if threads > total {
		threads = total
	}
	chunk := (total + threads - 1) / threads

	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		start := w * chunk
		end := start + chunk
		if end > total {
			end = total
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(workerID, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				if cancel != nil && cancel() {
					return
				}
				x, y := i%nX, i/nX
				sink.WritePixel(x, y, renderPixel(cam, sc, cfg, workerID, x, y, nX))
			}
		}(w, start, end)
	}
	wg.Wait()
}

// renderPixel computes one pixel's final color per cfg.AAMode. Its RNG
// is seeded from the pixel index on worker stream 0 whichever worker
// runs it, so a pixel draws the same samples under every scheduling
// mode and thread count.
func renderPixel(cam *camera.Camera, sc scene.Scene, cfg Config, workerID, x, y, nX int) lin.Color {
	src := rng.New(0, y*nX+x)
	switch cfg.AAMode {
	case AASSAA:
		offsets := sample.Grid(cfg.SSAASamples, src)
		rays, err := cam.SubRays(x, y, offsets)
		if err != nil {
			return lin.Black
		}
		sum := lin.Black
		for _, ray := range rays {
			sum = sum.Add(TraceRay(sc, ray, cfg, src))
		}
		return sum.Scale(1 / float64(len(rays)))
	case AAAdaptive:
		return adaptiveRect(cam, sc, cfg, src, float64(x)-0.5, float64(x)+0.5, float64(y)-0.5, float64(y)+0.5, 0)
	default:
		ray, err := cam.PrimaryRay(x, y)
		if err != nil {
			return lin.Black
		}
		return TraceRay(sc, ray, cfg, src)
	}
}

// adaptiveRect implements spec §4.6's adaptive SSAA: sample the
// rectangle's 4 corners, and only recurse into its 4 quadrants when
// their colors disagree by more than cfg.AdaptiveThreshold, down to
// cfg.AdaptiveMaxDepth levels.
func adaptiveRect(cam *camera.Camera, sc scene.Scene, cfg Config, src rng.Source, x0, x1, y0, y1 float64, depth int) lin.Color {
	c00 := sampleAt(cam, sc, cfg, src, x0, y0)
	c10 := sampleAt(cam, sc, cfg, src, x1, y0)
	c01 := sampleAt(cam, sc, cfg, src, x0, y1)
	c11 := sampleAt(cam, sc, cfg, src, x1, y1)

	if depth >= cfg.AdaptiveMaxDepth || !cornersDisagree(c00, c10, c01, c11, cfg.AdaptiveThreshold) {
		return c00.Add(c10).Add(c01).Add(c11).Scale(0.25)
	}

	xm, ym := (x0+x1)/2, (y0+y1)/2
	q1 := adaptiveRect(cam, sc, cfg, src, x0, xm, y0, ym, depth+1)
	q2 := adaptiveRect(cam, sc, cfg, src, xm, x1, y0, ym, depth+1)
	q3 := adaptiveRect(cam, sc, cfg, src, x0, xm, ym, y1, depth+1)
	q4 := adaptiveRect(cam, sc, cfg, src, xm, x1, ym, y1, depth+1)
	return q1.Add(q2).Add(q3).Add(q4).Scale(0.25)
}

func sampleAt(cam *camera.Camera, sc scene.Scene, cfg Config, src rng.Source, fx, fy float64) lin.Color {
	ray, err := cam.RayAt(fx, fy)
	if err != nil {
		return lin.Black
	}
	return TraceRay(sc, ray, cfg, src)
}

// cornersDisagree reports whether the 4 corner samples' variance
// exceeds threshold², i.e. whether they disagree enough to warrant
// subdividing further.
func cornersDisagree(c00, c10, c01, c11 lin.Color, threshold float64) bool {
	mean := c00.Add(c10).Add(c01).Add(c11).Scale(0.25)
	variance := sqDist(c00, mean) + sqDist(c10, mean) + sqDist(c01, mean) + sqDist(c11, mean)
	return variance/4 > threshold*threshold
}

func sqDist(a, b lin.Color) float64 {
	dr, dg, db := a.R-b.R, a.G-b.G, a.B-b.B
	return dr*dr + dg*dg + db*db
}
