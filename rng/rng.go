// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package rng provides the deterministic random sources consumed by
// sub-pixel jitter and soft-shadow sampling.
//
// Modeled on eg/rt.go's rnd(seed *uint32) — a hand-rolled
// xorshift PRNG seeded once per frame and threaded through every
// sample call by pointer. That shape (one small, cheaply-seedable
// generator per independent unit of work) is kept; the generator
// itself is swapped for math/rand/v2's PCG so seeding is well-mixed
// and reproducible across worker counts (spec §5's "identical output
// up to SSAA jitter stability" requirement — a pixel must render the
// same regardless of which worker goroutine traces it, so the seed
// must be a function of pixel identity, never of scheduling order).
package rng

import "math/rand/v2"

// Source is the random-number interface the sampling and shading
// paths draw from. Satisfied by *rand.Rand (math/rand/v2).
type Source interface {
	// Float64 returns a pseudo-random number in [0, 1).
	Float64() float64
}

// New returns a Source deterministically seeded from a worker
// identifier and a pixel index, so the same (workerID, pixelIndex)
// pair always reproduces the same sample sequence.
func New(workerID, pixelIndex int) Source {
	return rand.New(rand.NewPCG(seedMix(workerID), seedMix(pixelIndex)))
}

// seedMix spreads a small integer across a 64-bit seed so that
// consecutive pixel indices (the common case) don't produce
// near-identical PCG states. Splitmix64's finalizer.
func seedMix(x int) uint64 {
	z := uint64(x) + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
