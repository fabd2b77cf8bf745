// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"sync"
	"testing"

	"github.com/galvanized/raytrace/bvh"
	"github.com/galvanized/raytrace/camera"
	"github.com/galvanized/raytrace/geom"
	"github.com/galvanized/raytrace/light"
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/scene"
)

type bufferSink struct {
	mu     sync.Mutex
	pixels map[[2]int]lin.Color
}

func newBufferSink() *bufferSink { return &bufferSink{pixels: make(map[[2]int]lin.Color)} }

func (b *bufferSink) WritePixel(x, y int, c lin.Color) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pixels[[2]int{x, y}] = c
}

func testScene(t *testing.T) (*camera.Camera, scene.Scene) {
	t.Helper()
	s, err := geom.NewSphere(lin.NewPoint(0, 0, -5), 1, geom.Material{Diffuse: lin.White})
	if err != nil {
		t.Fatal(err)
	}
	g := scene.Build([]geom.Geometry{s}, bvh.DefaultOptions())
	p := light.NewPoint(lin.White, lin.NewPoint(3, 3, 0), 1, 0, 0)
	sc := scene.New(lin.NewColor(0.05, 0.05, 0.05), nil, []light.Light{p}, g)

	forward, _ := lin.NewVector(0, 0, -1)
	up, _ := lin.NewVector(0, 1, 0)
	cam, err := camera.New(lin.Origin, forward, up, 1, 2, 2, 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	return cam, sc
}

func TestRenderSequentialAndWorkerPoolAgreeWithAAOff(t *testing.T) {
	cam, sc := testScene(t)
	cfg := DefaultConfig()

	seq := newBufferSink()
	Render(cam, sc, cfg, seq, nil)

	cfg.Scheduling = WorkerPool
	cfg.Threads = 4
	pooled := newBufferSink()
	Render(cam, sc, cfg, pooled, nil)

	if len(seq.pixels) != len(pooled.pixels) {
		t.Fatalf("expected the same pixel count, got %d vs %d", len(seq.pixels), len(pooled.pixels))
	}
	for k, v := range seq.pixels {
		if pooled.pixels[k] != v {
			t.Fatalf("pixel %v differs: sequential=%v workerpool=%v", k, v, pooled.pixels[k])
		}
	}
}

func TestRenderDataParallelAgreesWithSequential(t *testing.T) {
	cam, sc := testScene(t)
	cfg := DefaultConfig()

	seq := newBufferSink()
	Render(cam, sc, cfg, seq, nil)

	cfg.Scheduling = DataParallel
	cfg.Threads = 3
	parallel := newBufferSink()
	Render(cam, sc, cfg, parallel, nil)

	for k, v := range seq.pixels {
		if parallel.pixels[k] != v {
			t.Fatalf("pixel %v differs: sequential=%v dataparallel=%v", k, v, parallel.pixels[k])
		}
	}
}

func TestRenderCancelStopsEarly(t *testing.T) {
	cam, sc := testScene(t)
	cfg := DefaultConfig()
	sink := newBufferSink()
	var count int
	cancel := func() bool {
		count++
		return count > 5
	}
	Render(cam, sc, cfg, sink, cancel)
	if len(sink.pixels) >= 64 {
		t.Fatalf("expected cancellation to stop before the full 8x8 image, got %d pixels", len(sink.pixels))
	}
}
