// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package config loads a scene, camera, and render configuration from
// a YAML document.
//
// Modeled on load/shd.go's approach: a string-keyed YAML document
// unmarshaled into a tagged "doc" struct, each string field resolved
// through a lookup map into the real domain type, with an error
// surfaced immediately on an unrecognized name. This package keeps
// that "validate while converting" shape for geometry/light kinds
// instead of shader stages/uniforms.
package config

// SceneDoc is the YAML-decodable mirror of a render: camera placement,
// lights, geometries, background, and render options.
type SceneDoc struct {
	Camera     CameraDoc     `yaml:"camera"`
	Render     RenderDoc     `yaml:"render"`
	Background ColorDoc      `yaml:"background"`
	Ambient    *LightDoc     `yaml:"ambient"`
	Lights     []LightDoc    `yaml:"lights"`
	Geometries []GeometryDoc `yaml:"geometries"`
}

// PointDoc is a 3-vector, used for both points and directions.
type PointDoc struct {
	X, Y, Z float64
}

// ColorDoc is an RGB triple.
type ColorDoc struct {
	R, G, B float64
}

// CameraDoc mirrors camera.New's parameters.
type CameraDoc struct {
	Position    PointDoc `yaml:"position"`
	Forward     PointDoc `yaml:"forward"`
	Up          PointDoc `yaml:"up"`
	Distance    float64  `yaml:"distance"`
	ViewWidth   float64  `yaml:"viewWidth"`
	ViewHeight  float64  `yaml:"viewHeight"`
	ImageWidth  int      `yaml:"imageWidth"`
	ImageHeight int      `yaml:"imageHeight"`
}

// RenderDoc mirrors the subset of render.Config spec §6 names as
// configuration options.
type RenderDoc struct {
	MaxDepth          int     `yaml:"maxDepth"`
	MinK              float64 `yaml:"minK"`
	Epsilon           float64 `yaml:"epsilon"`
	SoftShadows       bool    `yaml:"softShadows"`
	ShadowSamples     int     `yaml:"shadowSamples"`
	AAMode            string  `yaml:"aaMode"` // off | ssaa | adaptive
	SSAASamples       int     `yaml:"ssaaSamples"`
	AdaptiveMaxDepth  int     `yaml:"adaptiveMaxDepth"`
	AdaptiveThreshold float64 `yaml:"adaptiveThreshold"`
	BVH               string  `yaml:"bvh"` // off | median | sah
	LeafSize          int     `yaml:"leafSize"`
	Scheduling        string  `yaml:"scheduling"` // sequential | workerpool | dataparallel
	Threads           int     `yaml:"threads"`
}

// MaterialDoc mirrors geom.Material.
type MaterialDoc struct {
	Diffuse      ColorDoc `yaml:"diffuse"`
	Specular     ColorDoc `yaml:"specular"`
	Transparency ColorDoc `yaml:"transparency"`
	Reflectance  ColorDoc `yaml:"reflectance"`
	Shininess    int      `yaml:"shininess"`
	Emission     ColorDoc `yaml:"emission"`
}

// GeometryDoc is a tagged union over every geom.Geometry kind. Kind
// selects which of the remaining fields are read; unused fields for
// the selected kind are ignored.
type GeometryDoc struct {
	Kind     string      `yaml:"kind"` // sphere | plane | triangle | polygon | tube | cylinder | ellipsoid
	Material MaterialDoc `yaml:"material"`

	Center PointDoc `yaml:"center"` // sphere, ellipsoid
	Radius float64  `yaml:"radius"` // sphere, tube, cylinder

	Point  PointDoc `yaml:"point"`  // plane
	Normal PointDoc `yaml:"normal"` // plane

	A PointDoc `yaml:"a"` // triangle vertices
	B PointDoc `yaml:"b"`
	C PointDoc `yaml:"c"`

	Vertices []PointDoc `yaml:"vertices"` // polygon

	AxisOrigin    PointDoc `yaml:"axisOrigin"`    // tube, cylinder
	AxisDirection PointDoc `yaml:"axisDirection"` // tube, cylinder
	Height        float64  `yaml:"height"`         // cylinder

	Radii PointDoc `yaml:"radii"` // ellipsoid
}

// LightDoc is a tagged union over every light.Light kind.
type LightDoc struct {
	Kind      string   `yaml:"kind"` // directional | point | spot
	Intensity ColorDoc `yaml:"intensity"`

	Direction PointDoc `yaml:"direction"` // directional, spot

	Position PointDoc `yaml:"position"` // point, spot
	KC       float64  `yaml:"kc"`
	KL       float64  `yaml:"kl"`
	KQ       float64  `yaml:"kq"`
	Radius        float64 `yaml:"radius"`        // point, spot: area-light disk
	SampleQuality int     `yaml:"sampleQuality"` // point, spot

	NarrowBeamExponent float64 `yaml:"narrowBeamExponent"` // spot
}
