// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import (
	"math"
	"testing"
)

func TestColorMulIsChannelwise(t *testing.T) {
	c := NewColor(0.5, 1, 0.25)
	d := NewColor(2, 0, 4)
	got := c.Mul(d)
	want := NewColor(1, 0, 1)
	if got != want {
		t.Errorf("Mul = %v, want %v", got, want)
	}
}

func TestColorAllBelow(t *testing.T) {
	c := NewColor(0.0001, 0.0002, 0.0003)
	if !c.AllBelow(1e-3) {
		t.Error("expected all channels below 1e-3")
	}
	if NewColor(1, 0, 0).AllBelow(1e-3) {
		t.Error("expected channel 1.0 to not be below 1e-3")
	}
}

func TestColorIsFinite(t *testing.T) {
	if !White.IsFinite() {
		t.Error("expected White to be finite")
	}
	if NewColor(math.NaN(), 0, 0).IsFinite() {
		t.Error("expected NaN channel to be non-finite")
	}
	if NewColor(math.Inf(1), 0, 0).IsFinite() {
		t.Error("expected +Inf channel to be non-finite")
	}
}
