// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package camera maps pixel indices to primary rays.
//
// Modeled on camera.go (an orthonormal forward/up/right
// basis backing a view transform) and eg/rt.go's row.render, which
// builds a manual a, b, c basis (a/b spanning the view plane, c the
// forward direction) and perturbs x/y per sub-ray for its 64-sample
// stochastic blur. This package keeps that basis-plus-perturbation
// shape but replaces the ad hoc rnd()-based jitter with the sample
// package's stratified grid, and the fixed 64-sample loop with spec
// §4.6's configurable SSAA.
package camera

import (
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/rterr"
	"github.com/galvanized/raytrace/sample"
)

// Camera holds the orthonormal view basis and view-plane geometry used
// to turn an (x, y) pixel index into a world-space primary ray.
type Camera struct {
	Position lin.Point
	Forward  lin.Vector // unit, into the scene
	Up       lin.Vector // unit
	Right    lin.Vector // unit, forward × up

	viewDistance float64
	pxW, pxH     float64 // world-space size of one pixel on the view plane
	nX, nY       int
	centerX      float64 // (nX-1)/2
	centerY      float64 // (nY-1)/2
}

// New builds a Camera. forward and up must be perpendicular (spec
// §4.6); it fails with InvalidConfiguration otherwise, and with
// InvalidGeometry if either has zero length and cannot be normalized.
// Both are normalized, so they need not be unit vectors. viewWidth/viewHeight are the view plane's world-space
// dimensions; nX/nY are the output image resolution.
func New(position lin.Point, forward, up lin.Vector, viewDistance, viewWidth, viewHeight float64, nX, nY int) (*Camera, error) {
	f, err := forward.Normalize()
	if err != nil {
		return nil, err
	}
	u, err := up.Normalize()
	if err != nil {
		return nil, err
	}
	if !lin.IsPerpendicular(f, u) {
		return nil, rterr.New(rterr.InvalidConfiguration, "camera.New", "forward and up must be perpendicular")
	}
	if nX <= 0 || nY <= 0 || viewWidth <= 0 || viewHeight <= 0 {
		return nil, rterr.New(rterr.InvalidConfiguration, "camera.New", "resolution and view-plane size must be positive")
	}
	right, err := f.Cross(u).Normalize()
	if err != nil {
		return nil, rterr.New(rterr.InvalidConfiguration, "camera.New", "forward and up must not be parallel")
	}
	return &Camera{
		Position:     position,
		Forward:      f,
		Up:           u,
		Right:        right,
		viewDistance: viewDistance,
		pxW:          viewWidth / float64(nX),
		pxH:          viewHeight / float64(nY),
		nX:           nX,
		nY:           nY,
		centerX:      float64(nX-1) / 2,
		centerY:      float64(nY-1) / 2,
	}, nil
}

// Resolution returns the image dimensions the camera was built for.
func (c *Camera) Resolution() (nX, nY int) { return c.nX, c.nY }

// pixelCenter maps a (possibly fractional, for sub-pixel sampling)
// image-space coordinate to its world-space point on the view plane,
// per spec §4.6: center + (x − (nX−1)/2)·pxW·right − (y − (nY−1)/2)·pxH·up.
func (c *Camera) pixelCenter(fx, fy float64) lin.Point {
	planeCenter := c.Position.Add(c.Forward.Scale(c.viewDistance))
	dx := (fx - c.centerX) * c.pxW
	dy := (fy - c.centerY) * c.pxH
	return planeCenter.Add(c.Right.Scale(dx)).Add(c.Up.Scale(-dy))
}

// PrimaryRay returns the ray from the camera's position through the
// view-plane point for image coordinate (x, y).
func (c *Camera) PrimaryRay(x, y int) (lin.Ray, error) {
	return c.raySampleAt(float64(x), float64(y))
}

// RayAt returns the ray through the view-plane point at fractional
// image coordinates (fx, fy), for callers that need finer-than-pixel
// placement — the adaptive-SSAA corner/quadrant samples.
func (c *Camera) RayAt(fx, fy float64) (lin.Ray, error) {
	return c.raySampleAt(fx, fy)
}

func (c *Camera) raySampleAt(fx, fy float64) (lin.Ray, error) {
	target := c.pixelCenter(fx, fy)
	dir, err := target.Sub(c.Position)
	if err != nil {
		return lin.Ray{}, err
	}
	return lin.NewRay(c.Position, dir)
}

// SubRays returns one primary ray per offset in offsets (see
// sample.Grid), each aimed through a jittered point within pixel
// (x, y) rather than its exact center — the SSAA path spec §4.6
// describes.
func (c *Camera) SubRays(x, y int, offsets []sample.Offset) ([]lin.Ray, error) {
	rays := make([]lin.Ray, 0, len(offsets))
	for _, o := range offsets {
		fx := float64(x) + o.U - 0.5
		fy := float64(y) + o.V - 0.5
		ray, err := c.raySampleAt(fx, fy)
		if err != nil {
			return nil, err
		}
		rays = append(rays, ray)
	}
	return rays, nil
}
