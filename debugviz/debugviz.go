// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package debugviz renders a scene's BVH as a 2D SVG projection, a
// quick way to eyeball whether the tree's boxes nest the way
// spec.md §4.3's "BVH must not lose any hit" invariant assumes.
//
// No direct analogue upstream (vu has no offline debugging output);
// modeled on dshills-dungo's use of github.com/ajstarks/svgo for
// procedural SVG generation, repurposed here to draw nested axis
// rectangles per BVH depth instead of a dungeon map.
package debugviz

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/galvanized/raytrace/bvh"
	"github.com/galvanized/raytrace/scene"
)

// Axis selects which two coordinates of a 3D AABB are projected onto
// the SVG's x/y plane.
type Axis int

const (
	AxisXY Axis = iota
	AxisXZ
	AxisYZ
)

var depthColors = []string{"#1b9e77", "#d95f02", "#7570b3", "#e7298a", "#66a61e", "#e6ab02"}

// WriteSVG draws g's BVH, projected onto axis, as nested rectangles
// color-coded by depth, scaled into a width x height canvas.
func WriteSVG(w io.Writer, g scene.Geometries, axis Axis, width, height int) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	root := g.Root()
	if root == nil {
		return
	}
	minX, minY, maxX, maxY := projectedBounds(root, axis)
	scaleX := float64(width) / (maxX - minX)
	scaleY := float64(height) / (maxY - minY)
	if maxX <= minX {
		scaleX = 1
	}
	if maxY <= minY {
		scaleY = 1
	}

	draw(canvas, root, axis, minX, minY, scaleX, scaleY, 0)
}

func draw(canvas *svg.SVG, n *bvh.Node, axis Axis, minX, minY, scaleX, scaleY float64, depth int) {
	if n == nil {
		return
	}
	x0, y0 := project(n.Box.Min.X, n.Box.Min.Y, n.Box.Min.Z, axis)
	x1, y1 := project(n.Box.Max.X, n.Box.Max.Y, n.Box.Max.Z, axis)

	px := int((x0 - minX) * scaleX)
	py := int((y0 - minY) * scaleY)
	pw := int((x1 - x0) * scaleX)
	ph := int((y1 - y0) * scaleY)
	if pw < 1 {
		pw = 1
	}
	if ph < 1 {
		ph = 1
	}

	color := depthColors[depth%len(depthColors)]
	canvas.Rect(px, py, pw, ph, "fill:none;stroke:"+color+";stroke-width:1")

	if n.IsLeaf() {
		return
	}
	draw(canvas, n.Left, axis, minX, minY, scaleX, scaleY, depth+1)
	draw(canvas, n.Right, axis, minX, minY, scaleX, scaleY, depth+1)
}

func project(x, y, z float64, axis Axis) (a, b float64) {
	switch axis {
	case AxisXZ:
		return x, z
	case AxisYZ:
		return y, z
	default:
		return x, y
	}
}

func projectedBounds(n *bvh.Node, axis Axis) (minX, minY, maxX, maxY float64) {
	x0, y0 := project(n.Box.Min.X, n.Box.Min.Y, n.Box.Min.Z, axis)
	x1, y1 := project(n.Box.Max.X, n.Box.Max.Y, n.Box.Max.Z, axis)
	return x0, y0, x1, y1
}
