// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package config

import (
	"strings"
	"testing"

	"github.com/galvanized/raytrace/render"
	"github.com/stretchr/testify/require"
)

const minimalScene = `
camera:
  position: {x: 0, y: 0, z: 0}
  forward: {x: 0, y: 0, z: -1}
  up: {x: 0, y: 1, z: 0}
  distance: 1
  viewWidth: 2
  viewHeight: 2
  imageWidth: 4
  imageHeight: 4
render:
  aaMode: off
  bvh: off
  scheduling: sequential
background: {r: 0.1, g: 0.2, b: 0.3}
lights:
  - kind: point
    intensity: {r: 1, g: 1, b: 1}
    position: {x: 0, y: 5, z: 0}
    kc: 1
geometries:
  - kind: sphere
    center: {x: 0, y: 0, z: -5}
    radius: 1
    material:
      diffuse: {r: 1, g: 1, b: 1}
`

func TestLoadBuildsCameraSceneAndConfig(t *testing.T) {
	loaded, err := Load([]byte(minimalScene))
	require.NoError(t, err)

	nX, nY := loaded.Camera.Resolution()
	require.Equal(t, 4, nX)
	require.Equal(t, 4, nY)
	require.Len(t, loaded.Scene.Geometries.All, 1)
	require.Len(t, loaded.Scene.Lights, 1)
	require.Equal(t, render.AAOff, loaded.Render.AAMode)
	require.Equal(t, render.BVHOff, loaded.Render.BVH)
}

func TestLoadRejectsUnknownGeometryKind(t *testing.T) {
	doc := strings.Replace(minimalScene, "kind: sphere", "kind: dodecahedron", 1)
	_, err := Load([]byte(doc))
	require.Error(t, err)
	require.Contains(t, err.Error(), "dodecahedron")
}

func TestLoadRejectsUnknownAAMode(t *testing.T) {
	doc := strings.Replace(minimalScene, "aaMode: off", "aaMode: blurry", 1)
	_, err := Load([]byte(doc))
	require.Error(t, err)
}

func TestLoadRejectsDegenerateCameraBasis(t *testing.T) {
	doc := strings.Replace(minimalScene, "up: {x: 0, y: 1, z: 0}", "up: {x: 0, y: 0, z: -1}", 1)
	_, err := Load([]byte(doc))
	require.Error(t, err)
}

func TestLoadDefaultsUnsetRenderOptions(t *testing.T) {
	const doc = `
camera:
  position: {x: 0, y: 0, z: 0}
  forward: {x: 0, y: 0, z: -1}
  up: {x: 0, y: 1, z: 0}
  distance: 1
  viewWidth: 2
  viewHeight: 2
  imageWidth: 1
  imageHeight: 1
background: {r: 0, g: 0, b: 0}
`
	loaded, err := Load([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, render.DefaultConfig(), loaded.Render)
}
