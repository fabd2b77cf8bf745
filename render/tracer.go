// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package render

import (
	"math"

	"github.com/galvanized/raytrace/geom"
	"github.com/galvanized/raytrace/light"
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/rng"
	"github.com/galvanized/raytrace/scene"
)

// TraceRay is the top-level entry point (spec §4.5): find the closest
// hit, shade it starting at full attenuation and the configured
// recursion budget, and add the scene's ambient term. Grounded on
// eg/rt.go's sample(), generalized from its fixed sky/floor/sphere
// scene into the Phong local+global model spec §4.5 specifies.
func TraceRay(sc scene.Scene, ray lin.Ray, cfg Config, src rng.Source) lin.Color {
	hit, ok := sc.Geometries.Nearest(ray, math.Inf(1))
	if !ok {
		return sc.Background
	}
	return calcColor(sc, hit, ray, cfg.MaxDepth, lin.White, cfg, src).Add(sc.AmbientAt(hit.Point))
}

// traceRecursive is TraceRay's re-entry point for reflection/
// refraction rays: it skips the ambient term (only the primary ray's
// hit collects ambient) and bottoms out at level 0 rather than
// re-deriving MaxDepth.
func traceRecursive(sc scene.Scene, ray lin.Ray, level int, k lin.Color, cfg Config, src rng.Source) lin.Color {
	if level <= 0 {
		return lin.Black
	}
	hit, ok := sc.Geometries.Nearest(ray, math.Inf(1))
	if !ok {
		return sc.Background
	}
	return calcColor(sc, hit, ray, level, k, cfg, src)
}

// calcColor implements spec §4.5's recursive shader.
func calcColor(sc scene.Scene, gp geom.GeoPoint, ray lin.Ray, level int, k lin.Color, cfg Config, src rng.Source) lin.Color {
	n := gp.Geometry.Normal(gp.Point)
	v := ray.Direction
	nv := n.Dot(v)
	if math.Abs(nv) < cfg.Epsilon {
		return lin.Black
	}

	mat := gp.Geometry.Material()
	local := mat.Emission
	for _, lt := range sc.Lights {
		local = local.Add(localContribution(sc, gp, mat, lt, v, n, nv, k, cfg, src))
	}
	if !local.IsFinite() {
		local = lin.Black
	}
	if level <= 1 {
		return local
	}
	return local.Add(globalContribution(sc, gp, v, n, mat, level, k, cfg, src))
}

// localContribution computes one light's diffuse+specular term,
// attenuated by its shadow factor, or black if the light sits behind
// the surface or its contribution is negligible.
func localContribution(sc scene.Scene, gp geom.GeoPoint, mat geom.Material, lt light.Light, v, n lin.Vector, nv float64, k lin.Color, cfg Config, src rng.Source) lin.Color {
	l := lt.DirectionTo(gp.Point)
	nl := n.Dot(l)
	if nl*nv <= 0 {
		return lin.Black
	}

	ktr := transparency(sc, gp, n, lt, cfg, src)
	if k.Mul(ktr).AllBelow(cfg.MinK) {
		return lin.Black
	}

	diffuse := mat.Diffuse.Scale(math.Abs(nl))
	r := l.Sub(n.Scale(2 * nl))
	spec := 0.0
	if s := -v.Dot(r); s > 0 {
		spec = math.Pow(s, float64(mat.Shininess))
	}
	specular := mat.Specular.Scale(spec)

	return lt.IntensityAt(gp.Point).Mul(ktr).Mul(diffuse.Add(specular))
}

// globalContribution spawns the reflection and refraction rays and
// folds their recursively-traced color back in, weighted and pruned
// per spec §4.5's attenuation cutoff.
func globalContribution(sc scene.Scene, gp geom.GeoPoint, v, n lin.Vector, mat geom.Material, level int, k lin.Color, cfg Config, src rng.Source) lin.Color {
	color := lin.Black
	color = color.Add(spawn(sc, gp, v.Reflect(n), n, mat.Reflectance, level, k, cfg, src))
	color = color.Add(spawn(sc, gp, v, n, mat.Transparency, level, k, cfg, src))
	return color
}

func spawn(sc scene.Scene, gp geom.GeoPoint, dir, n lin.Vector, weight lin.Color, level int, k lin.Color, cfg Config, src rng.Source) lin.Color {
	newK := k.Mul(weight)
	if newK.AllBelow(cfg.MinK) {
		return lin.Black
	}
	origin := lin.Offset(gp.Point, dir, n)
	ray, err := lin.NewRay(origin, dir)
	if err != nil {
		return lin.Black
	}
	return traceRecursive(sc, ray, level-1, newK, cfg, src).Mul(weight)
}

// transparency is the shadow factor from gp to lt (spec §4.5): one
// sample for a hard light, or the average of cfg.ShadowSamples jittered
// samples for a soft one. Each sample casts a ray toward its own point
// and multiplies the Transparency of every blocker it passes through.
func transparency(sc scene.Scene, gp geom.GeoPoint, n lin.Vector, lt light.Light, cfg Config, src rng.Source) lin.Color {
	nSamples := 1
	if cfg.SoftShadows {
		nSamples = cfg.ShadowSamples
	}
	samples := lt.Sample(gp.Point, nSamples, src)
	if len(samples) == 0 {
		return lin.White
	}

	sum := lin.Black
	for _, sp := range samples {
		sum = sum.Add(shadowFactor(sc, gp, n, sp))
	}
	return sum.Scale(1 / float64(len(samples)))
}

func shadowFactor(sc scene.Scene, gp geom.GeoPoint, n lin.Vector, target lin.Point) lin.Color {
	toTarget, err := target.Sub(gp.Point)
	if err != nil {
		return lin.White
	}
	dist := toTarget.Length()
	dir, err := toTarget.Normalize()
	if err != nil {
		return lin.White
	}
	origin := lin.Offset(gp.Point, dir, n)
	ray, err := lin.NewRay(origin, dir)
	if err != nil {
		return lin.White
	}
	hits, ok := sc.Geometries.AllHits(ray, dist)
	if !ok {
		return lin.White
	}
	factor := lin.White
	for _, h := range hits {
		factor = factor.Mul(h.Geometry.Material().Transparency)
	}
	return factor
}
