// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command raytrace renders a YAML scene document to a PNG file.
//
// Running "raytrace scene.yaml out.png" loads scene.yaml, renders it
// per its embedded render options, and writes out.png (plus a
// downsampled "_thumb" preview next to it).
//
// Modeled on tools/sdf (a package main driven by os.Args positional
// filenames rather than a service/flag-heavy CLI) for the "convert one
// file to another" shape, extended with the flag package for render
// overrides since a render has more open options than sdf's fixed
// scale/spread pair.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/galvanized/raytrace/config"
	"github.com/galvanized/raytrace/debugviz"
	"github.com/galvanized/raytrace/math/lin"
	"github.com/galvanized/raytrace/output"
	"github.com/galvanized/raytrace/progress"
	"github.com/galvanized/raytrace/render"
	"github.com/galvanized/raytrace/scene"
)

func main() {
	threads := flag.Int("threads", 0, "worker count for scheduling modes that use one (0 keeps the document's value)")
	bvhSVG := flag.String("bvh-svg", "", "write a debug SVG of the scene's BVH to this path")
	quiet := flag.Bool("quiet", false, "suppress progress reporting")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: raytrace <scene.yaml> <out.png>")
		os.Exit(2)
	}
	scenePath, outPath := flag.Arg(0), flag.Arg(1)

	if err := run(scenePath, outPath, *threads, *bvhSVG, *quiet); err != nil {
		log.Fatal(err)
	}
}

func run(scenePath, outPath string, threads int, bvhSVG string, quiet bool) error {
	data, err := os.ReadFile(scenePath)
	if err != nil {
		return fmt.Errorf("raytrace: read scene: %w", err)
	}
	loaded, err := config.Load(data)
	if err != nil {
		return fmt.Errorf("raytrace: load scene: %w", err)
	}
	cfg := loaded.Render
	if threads > 0 {
		cfg.Threads = threads
	}

	if bvhSVG != "" {
		if err := writeBVHDebug(loaded.Scene, bvhSVG); err != nil {
			return err
		}
	}

	nX, nY := loaded.Camera.Resolution()
	sink := output.NewImageSink(nX, nY)
	reporter := progress.New(nX * nY)

	start := time.Now()
	render.Render(loaded.Camera, loaded.Scene, cfg, progressSink{sink, reporter}, nil)
	if !quiet {
		reporter.WriteStatus(os.Stderr)
		fmt.Fprintf(os.Stderr, "rendered %dx%d in %s\n", nX, nY, time.Since(start).Round(time.Millisecond))
	}

	if err := writePNG(sink, outPath); err != nil {
		return err
	}
	return writeThumbnail(sink, outPath)
}

// progressSink wraps an output.ImageSink so every pixel write also
// advances a progress.Reporter, without render.Render itself
// knowing progress reporting exists (spec §4.7/§5: progress is a
// separate concern from the render path).
type progressSink struct {
	sink     *output.ImageSink
	reporter *progress.Reporter
}

func (p progressSink) WritePixel(x, y int, c lin.Color) {
	p.sink.WritePixel(x, y, c)
	p.reporter.Advance(1)
}

func writePNG(sink *output.ImageSink, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("raytrace: create output: %w", err)
	}
	defer f.Close()
	if err := sink.WritePNG(f); err != nil {
		return fmt.Errorf("raytrace: write png: %w", err)
	}
	return nil
}

func writeThumbnail(sink *output.ImageSink, outPath string) error {
	path := withSuffix(outPath, "_thumb")
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raytrace: create thumbnail: %w", err)
	}
	defer f.Close()
	thumb := output.Thumbnail(sink.Image(), 256)
	if err := png.Encode(f, thumb); err != nil {
		return fmt.Errorf("raytrace: write thumbnail: %w", err)
	}
	return nil
}

func writeBVHDebug(sc scene.Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raytrace: create bvh svg: %w", err)
	}
	defer f.Close()
	debugviz.WriteSVG(f, sc.Geometries, debugviz.AxisXY, 800, 800)
	return nil
}

func withSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}
	return strings.TrimSuffix(path, ext) + suffix + ext
}
