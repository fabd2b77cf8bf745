// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package meshload

import (
	"bytes"
	"testing"

	"github.com/galvanized/raytrace/geom"
)

func TestLoadRejectsCorruptData(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte("not a gltf file")), geom.Material{})
	if err == nil {
		t.Fatal("expected an error decoding corrupt data")
	}
}

func TestLoadRejectsMultiMeshDocument(t *testing.T) {
	doc := []byte(`{"asset":{"version":"2.0"},"meshes":[{"primitives":[{}]},{"primitives":[{}]}]}`)
	_, err := Load(bytes.NewReader(doc), geom.Material{})
	if err == nil {
		t.Fatal("expected an error for a document with more than one mesh")
	}
}

func TestLoadRejectsMissingPosition(t *testing.T) {
	doc := []byte(`{"asset":{"version":"2.0"},"meshes":[{"primitives":[{"attributes":{}}]}]}`)
	_, err := Load(bytes.NewReader(doc), geom.Material{})
	if err == nil {
		t.Fatal("expected an error for a primitive with no POSITION attribute")
	}
}
