// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package meshload turns a binary glTF model into triangle geometry a
// scene can trace.
//
// Modeled on load/glb.go, which walks a single-mesh glTF document (one
// Scene, one Node, one Mesh, one Mesh.Primitive — "these conform to a
// single model exported from Blender") and copies its POSITION/NORMAL/
// TEXCOORD_0 accessors out of their buffer views. This package keeps
// that single-model simplification and the same accessor walk, but
// assembles geom.Triangle values instead of GPU vertex buffers, since
// the core has no renderer to hand vertex data to. internal/load/gltf
// isn't carried forward here (only its tests made it into this tree,
// not a decoder implementation); github.com/qmuntal/gltf is used
// instead, the public equivalent of that same glTF document shape.
package meshload

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/galvanized/raytrace/geom"
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/rterr"
	"github.com/qmuntal/gltf"
)

// Load reads a binary glTF (.glb) model from r and returns its
// triangles with the given material applied uniformly, in the same
// "single model exported from Blender" shape load/glb.go expects. It
// requires exactly one mesh with one primitive; the scene and node
// counts are not checked.
func Load(r io.Reader, mat geom.Material) ([]geom.Triangle, error) {
	var doc gltf.Document
	if err := gltf.NewDecoder(r).Decode(&doc); err != nil {
		return nil, rterr.New(rterr.InvalidConfiguration, "meshload.Load", fmt.Sprintf("decode: %v", err))
	}
	if len(doc.Meshes) != 1 {
		return nil, rterr.New(rterr.InvalidConfiguration, "meshload.Load", "expecting one gltf Mesh")
	}
	if len(doc.Meshes[0].Primitives) != 1 {
		return nil, rterr.New(rterr.InvalidConfiguration, "meshload.Load", "expecting one gltf Mesh.Primitive")
	}
	prim := doc.Meshes[0].Primitives[0]

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, rterr.New(rterr.InvalidConfiguration, "meshload.Load", "expecting a POSITION attribute")
	}
	positions, err := readVec3(&doc, posIdx)
	if err != nil {
		return nil, rterr.New(rterr.InvalidConfiguration, "meshload.Load", fmt.Sprintf("positions: %v", err))
	}

	indices, err := meshIndices(&doc, prim)
	if err != nil {
		return nil, rterr.New(rterr.InvalidConfiguration, "meshload.Load", fmt.Sprintf("indices: %v", err))
	}

	triangles := make([]geom.Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := positions[indices[i]], positions[indices[i+1]], positions[indices[i+2]]
		tri, err := geom.NewTriangle(a, b, c, mat)
		if err != nil {
			// A degenerate triangle in the source model is skipped
			// rather than failing the whole load.
			continue
		}
		triangles = append(triangles, *tri)
	}
	return triangles, nil
}

// meshIndices returns sequential triangles when the primitive has no
// index buffer, matching load/glb.go's fallback.
func meshIndices(doc *gltf.Document, prim *gltf.Primitive) ([]int, error) {
	if prim.Indices == nil {
		posIdx := prim.Attributes[gltf.POSITION]
		count := doc.Accessors[posIdx].Count
		seq := make([]int, count)
		for i := range seq {
			seq[i] = i
		}
		return seq, nil
	}
	return readIndices(doc, *prim.Indices)
}

func readVec3(doc *gltf.Document, accessorIdx uint32) ([]lin.Point, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expecting vec3:float32, got %v:%v", accessor.Type, accessor.ComponentType)
	}
	buf, offset, stride := bufferFor(doc, accessor, 12)

	points := make([]lin.Point, accessor.Count)
	for i := 0; i < int(accessor.Count); i++ {
		base := offset + i*stride
		x := math.Float32frombits(binary.LittleEndian.Uint32(buf[base:]))
		y := math.Float32frombits(binary.LittleEndian.Uint32(buf[base+4:]))
		z := math.Float32frombits(binary.LittleEndian.Uint32(buf[base+8:]))
		points[i] = lin.NewPoint(float64(x), float64(y), float64(z))
	}
	return points, nil
}

func readIndices(doc *gltf.Document, accessorIdx uint32) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expecting scalar indices, got %v", accessor.Type)
	}

	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		buf, offset, stride := bufferFor(doc, accessor, 1)
		out := make([]int, accessor.Count)
		for i := range out {
			out[i] = int(buf[offset+i*stride])
		}
		return out, nil
	case gltf.ComponentUshort:
		buf, offset, stride := bufferFor(doc, accessor, 2)
		out := make([]int, accessor.Count)
		for i := range out {
			out[i] = int(binary.LittleEndian.Uint16(buf[offset+i*stride:]))
		}
		return out, nil
	case gltf.ComponentUint:
		buf, offset, stride := bufferFor(doc, accessor, 4)
		out := make([]int, accessor.Count)
		for i := range out {
			out[i] = int(binary.LittleEndian.Uint32(buf[offset+i*stride:]))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported index component type %v", accessor.ComponentType)
	}
}

// bufferFor returns the raw buffer, the accessor's byte offset, and
// its effective stride (falling back to defaultStride when the view
// is tightly packed), the same lookup load/glb.go does by hand.
func bufferFor(doc *gltf.Document, accessor *gltf.Accessor, defaultStride int) ([]byte, int, int) {
	view := doc.BufferViews[*accessor.BufferView]
	buf := doc.Buffers[view.Buffer].Data
	stride := int(view.ByteStride)
	if stride == 0 {
		stride = defaultStride
	}
	offset := int(view.ByteOffset) + int(accessor.ByteOffset)
	return buf, offset, stride
}
