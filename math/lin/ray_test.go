// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestNewRayNormalizesDirection(t *testing.T) {
	r, err := NewRay(Origin, Vector{X: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Direction.Length() != 1 {
		t.Errorf("direction length = %v, want 1", r.Direction.Length())
	}
}

func TestRayAt(t *testing.T) {
	r, _ := NewRay(NewPoint(1, 0, 0), Vector{X: 1})
	got := r.At(2)
	if !got.Eq(NewPoint(3, 0, 0)) {
		t.Errorf("At(2) = %v, want (3,0,0)", got)
	}
}

func TestOffsetLeavesSurfaceInTravelDirection(t *testing.T) {
	surface := NewPoint(0, 0, 0)
	normal := Vector{Y: 1, unit: true}
	outward := Vector{Y: 1, unit: true}
	offsetOut := Offset(surface, outward, normal)
	if offsetOut.Y <= 0 {
		t.Errorf("expected offset to move along +normal for outward ray, got %v", offsetOut)
	}

	inward := Vector{Y: -1, unit: true}
	offsetIn := Offset(surface, inward, normal)
	if offsetIn.Y >= 0 {
		t.Errorf("expected offset to move along -normal for inward ray, got %v", offsetIn)
	}
}
