// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package config

import (
	"fmt"

	"github.com/galvanized/raytrace/camera"
	"github.com/galvanized/raytrace/geom"
	"github.com/galvanized/raytrace/light"
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/render"
	"github.com/galvanized/raytrace/rterr"
	"github.com/galvanized/raytrace/scene"
	"gopkg.in/yaml.v3"
)

var aaModes = map[string]render.AAMode{
	"":         render.AAOff,
	"off":      render.AAOff,
	"ssaa":     render.AASSAA,
	"adaptive": render.AAAdaptive,
}

var bvhModes = map[string]render.BVHMode{
	"":       render.BVHOff,
	"off":    render.BVHOff,
	"median": render.BVHMedian,
	"sah":    render.BVHSAH,
}

var schedulingModes = map[string]render.Scheduling{
	"":            render.Sequential,
	"sequential":  render.Sequential,
	"workerpool":  render.WorkerPool,
	"dataparallel": render.DataParallel,
}

// Loaded holds everything Load constructs from a document: a scene
// ready to trace, the camera that generates its primary rays, and the
// render options that were requested.
type Loaded struct {
	Scene  scene.Scene
	Camera *camera.Camera
	Render render.Config
}

// Load unmarshals a YAML scene document and constructs the domain
// objects it describes, or returns a configuration error naming the
// first field that could not be converted.
//
// Grounded on load/shd.go's Shd: unmarshal into a tagged document
// struct, then convert field by field, wrapping the first failure
// with the name of the thing being built.
func Load(data []byte) (Loaded, error) {
	var doc SceneDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Loaded{}, rterr.New(rterr.InvalidConfiguration, "config.Load", fmt.Sprintf("yaml: %v", err))
	}

	cam, err := buildCamera(doc.Camera)
	if err != nil {
		return Loaded{}, err
	}

	cfg, err := buildRenderConfig(doc.Render)
	if err != nil {
		return Loaded{}, err
	}

	geoms := make([]geom.Geometry, 0, len(doc.Geometries))
	for i, gd := range doc.Geometries {
		g, err := buildGeometry(gd)
		if err != nil {
			return Loaded{}, rterr.New(rterr.InvalidConfiguration, "config.Load",
				fmt.Sprintf("geometries[%d]: %v", i, err))
		}
		geoms = append(geoms, g)
	}
	var geometries scene.Geometries
	if cfg.BVH == render.BVHOff {
		geometries = scene.Linear(geoms)
	} else {
		geometries = scene.Build(geoms, cfg.BVHOptions())
	}

	lights := make([]light.Light, 0, len(doc.Lights))
	for i, ld := range doc.Lights {
		l, err := buildLight(ld)
		if err != nil {
			return Loaded{}, rterr.New(rterr.InvalidConfiguration, "config.Load",
				fmt.Sprintf("lights[%d]: %v", i, err))
		}
		lights = append(lights, l)
	}

	var ambient light.Light
	if doc.Ambient != nil {
		ambient, err = buildLight(*doc.Ambient)
		if err != nil {
			return Loaded{}, rterr.New(rterr.InvalidConfiguration, "config.Load", fmt.Sprintf("ambient: %v", err))
		}
	}

	sc := scene.New(buildColor(doc.Background), ambient, lights, geometries)
	return Loaded{Scene: sc, Camera: cam, Render: cfg}, nil
}

func buildColor(c ColorDoc) lin.Color { return lin.NewColor(c.R, c.G, c.B) }

func buildPoint(p PointDoc) lin.Point { return lin.NewPoint(p.X, p.Y, p.Z) }

func buildVector(p PointDoc) (lin.Vector, error) { return lin.NewVector(p.X, p.Y, p.Z) }

func buildCamera(d CameraDoc) (*camera.Camera, error) {
	forward, err := buildVector(d.Forward)
	if err != nil {
		return nil, rterr.New(rterr.InvalidConfiguration, "config.buildCamera", fmt.Sprintf("forward: %v", err))
	}
	up, err := buildVector(d.Up)
	if err != nil {
		return nil, rterr.New(rterr.InvalidConfiguration, "config.buildCamera", fmt.Sprintf("up: %v", err))
	}
	cam, err := camera.New(buildPoint(d.Position), forward, up, d.Distance, d.ViewWidth, d.ViewHeight, d.ImageWidth, d.ImageHeight)
	if err != nil {
		return nil, rterr.New(rterr.InvalidConfiguration, "config.buildCamera", err.Error())
	}
	return cam, nil
}

func buildRenderConfig(d RenderDoc) (render.Config, error) {
	cfg := render.DefaultConfig()

	aa, ok := aaModes[d.AAMode]
	if !ok {
		return render.Config{}, rterr.New(rterr.InvalidConfiguration, "config.buildRenderConfig",
			fmt.Sprintf("unsupported aaMode %q", d.AAMode))
	}
	bvhMode, ok := bvhModes[d.BVH]
	if !ok {
		return render.Config{}, rterr.New(rterr.InvalidConfiguration, "config.buildRenderConfig",
			fmt.Sprintf("unsupported bvh %q", d.BVH))
	}
	scheduling, ok := schedulingModes[d.Scheduling]
	if !ok {
		return render.Config{}, rterr.New(rterr.InvalidConfiguration, "config.buildRenderConfig",
			fmt.Sprintf("unsupported scheduling %q", d.Scheduling))
	}

	if d.MaxDepth > 0 {
		cfg.MaxDepth = d.MaxDepth
	}
	if d.MinK > 0 {
		cfg.MinK = d.MinK
	}
	if d.Epsilon > 0 {
		cfg.Epsilon = d.Epsilon
	}
	cfg.SoftShadows = d.SoftShadows
	if d.ShadowSamples > 0 {
		cfg.ShadowSamples = d.ShadowSamples
	}
	cfg.AAMode = aa
	if d.SSAASamples > 0 {
		cfg.SSAASamples = d.SSAASamples
	}
	if d.AdaptiveMaxDepth > 0 {
		cfg.AdaptiveMaxDepth = d.AdaptiveMaxDepth
	}
	if d.AdaptiveThreshold > 0 {
		cfg.AdaptiveThreshold = d.AdaptiveThreshold
	}
	cfg.BVH = bvhMode
	if d.LeafSize > 0 {
		cfg.LeafSize = d.LeafSize
	}
	cfg.Scheduling = scheduling
	if d.Threads > 0 {
		cfg.Threads = d.Threads
	}
	return cfg, nil
}

func buildMaterial(d MaterialDoc) geom.Material {
	return geom.Material{
		Diffuse:      buildColor(d.Diffuse),
		Specular:     buildColor(d.Specular),
		Transparency: buildColor(d.Transparency),
		Reflectance:  buildColor(d.Reflectance),
		Shininess:    d.Shininess,
		Emission:     buildColor(d.Emission),
	}
}

func buildGeometry(d GeometryDoc) (geom.Geometry, error) {
	mat := buildMaterial(d.Material)
	switch d.Kind {
	case "sphere":
		return geom.NewSphere(buildPoint(d.Center), d.Radius, mat)
	case "plane":
		n, err := buildVector(d.Normal)
		if err != nil {
			return nil, err
		}
		return geom.NewPlane(buildPoint(d.Point), n, mat)
	case "triangle":
		return geom.NewTriangle(buildPoint(d.A), buildPoint(d.B), buildPoint(d.C), mat)
	case "polygon":
		verts := make([]lin.Point, 0, len(d.Vertices))
		for _, v := range d.Vertices {
			verts = append(verts, buildPoint(v))
		}
		return geom.NewPolygon(verts, mat)
	case "tube":
		axis, err := buildAxis(d)
		if err != nil {
			return nil, err
		}
		return geom.NewTube(axis, d.Radius, mat)
	case "cylinder":
		axis, err := buildAxis(d)
		if err != nil {
			return nil, err
		}
		return geom.NewCylinder(axis, d.Radius, d.Height, mat)
	case "ellipsoid":
		radii, err := buildVector(d.Radii)
		if err != nil {
			return nil, err
		}
		return geom.NewEllipsoid(buildPoint(d.Center), radii, mat)
	default:
		return nil, rterr.New(rterr.InvalidConfiguration, "config.buildGeometry", fmt.Sprintf("unsupported kind %q", d.Kind))
	}
}

func buildAxis(d GeometryDoc) (lin.Ray, error) {
	dir, err := buildVector(d.AxisDirection)
	if err != nil {
		return lin.Ray{}, err
	}
	return lin.NewRay(buildPoint(d.AxisOrigin), dir)
}

func buildLight(d LightDoc) (light.Light, error) {
	intensity := buildColor(d.Intensity)
	switch d.Kind {
	case "directional":
		dir, err := buildVector(d.Direction)
		if err != nil {
			return nil, err
		}
		return light.NewDirectional(intensity, dir)
	case "point":
		p := light.NewPoint(intensity, buildPoint(d.Position), d.KC, d.KL, d.KQ)
		p.Radius = d.Radius
		p.SampleQuality = d.SampleQuality
		return p, nil
	case "spot":
		dir, err := buildVector(d.Direction)
		if err != nil {
			return nil, err
		}
		s, err := light.NewSpot(intensity, buildPoint(d.Position), d.KC, d.KL, d.KQ, dir, d.NarrowBeamExponent)
		if err != nil {
			return nil, err
		}
		s.Radius = d.Radius
		s.SampleQuality = d.SampleQuality
		return s, nil
	default:
		return nil, rterr.New(rterr.InvalidConfiguration, "config.buildLight", fmt.Sprintf("unsupported kind %q", d.Kind))
	}
}
