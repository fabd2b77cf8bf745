// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package render drives the image: it turns a camera and a scene into
// a finished pixel buffer by spawning primary rays, recursively
// shading their intersections, and writing the results to a sink.
//
// Modeled on vu/config.go (a flat options struct with documented
// defaults consumed by the engine's setup path) for the shape of
// RenderConfig, and on eg/rt.go's sample/trace pair for the recursive
// shading model.
package render

import "github.com/galvanized/raytrace/bvh"

// BVHMode selects whether and how the scene's geometries are indexed.
type BVHMode int

const (
	// BVHOff tests every geometry linearly on every ray.
	BVHOff BVHMode = iota
	BVHMedian
	BVHSAH
)

// AAMode selects the anti-aliasing strategy.
type AAMode int

const (
	// AAOff traces a single ray through each pixel's center.
	AAOff AAMode = iota
	// AASSAA traces a fixed SSAASamples² grid per pixel and averages.
	AASSAA
	// AAAdaptive starts at a 2x2 corner grid and subdivides only where
	// the corner colors disagree, to AdaptiveMaxDepth levels.
	AAAdaptive
)

// Scheduling selects how pixel work is distributed across goroutines.
type Scheduling int

const (
	// Sequential renders (x, y) in row-major order on one goroutine.
	Sequential Scheduling = iota
	// WorkerPool spawns Threads workers sharing an atomically
	// incremented pixel counter.
	WorkerPool
	// DataParallel treats the image as a flat range and maps each
	// index to a trace+write, without a shared counter.
	DataParallel
)

// Config holds every tunable named in spec §6: recursion limits,
// anti-aliasing, shadow sampling, BVH construction, and the
// parallelism strategy. Defaults match the table there.
type Config struct {
	MaxDepth int     // recursion cap for reflect/refract
	MinK     float64 // attenuation cutoff below which recursion stops
	Epsilon  float64 // zero-comparison tolerance

	SoftShadows   bool
	ShadowSamples int // N jittered samples per light when soft

	AAMode            AAMode
	SSAASamples       int // k, for AASSAA: k² sub-rays per pixel
	AdaptiveMaxDepth  int // subdivision depth cap for AAAdaptive
	AdaptiveThreshold float64

	BVH      BVHMode
	LeafSize int

	Scheduling Scheduling
	Threads    int // worker count for WorkerPool and DataParallel
}

// DefaultConfig returns the configuration spec §6 lists as defaults:
// maxDepth 5, minK 1e-3, hard shadows, BVH off, sequential scheduling.
func DefaultConfig() Config {
	return Config{
		MaxDepth:          5,
		MinK:              1e-3,
		Epsilon:           1.0 / 1099511627776.0, // 2^-40
		SoftShadows:       false,
		ShadowSamples:     9,
		AAMode:            AAOff,
		SSAASamples:       2,
		AdaptiveMaxDepth:  3,
		AdaptiveThreshold: 0.02,
		BVH:               BVHOff,
		LeafSize:          4,
		Scheduling:        Sequential,
		Threads:           1,
	}
}

// bvhOptions translates the render-facing BVH/LeafSize knobs into
// bvh.Options for scene construction.
func (c Config) bvhOptions() bvh.Options {
	opts := bvh.DefaultOptions()
	opts.LeafSize = c.LeafSize
	if c.BVH == BVHSAH {
		opts.Strategy = bvh.SAH
	} else {
		opts.Strategy = bvh.Median
	}
	return opts
}

// BVHOptions exposes bvhOptions to callers building a scene.Geometries
// from this Config (scene construction happens outside this package,
// but shares its BVH knobs).
func (c Config) BVHOptions() bvh.Options { return c.bvhOptions() }
