package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tobyv/go-whitted-raytracer/pkg/renderer"
	"github.com/tobyv/go-whitted-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	scenePath := flag.String("scene", "", "Path to a TOML scene file (built-in demo scene when empty)")
	output := flag.String("output", "", "Output PNG path (default output/render_<timestamp>.png)")
	width := flag.Int("width", 0, "Override image width")
	height := flag.Int("height", 0, "Override image height")
	workers := flag.Int("workers", 0, "Render worker count (0 = one per CPU)")
	samples := flag.Int("samples", 0, "Override rays per pixel")
	maxDepth := flag.Int("max-depth", 0, "Override reflection/refraction depth")
	seed := flag.Int64("seed", 0, "Override sampling seed")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "raytracer",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	// Load the scene description
	var desc *scene.Description
	if *scenePath != "" {
		logger.Info("loading scene", "path", *scenePath)
		var err error
		desc, err = scene.Load(*scenePath)
		if err != nil {
			logger.Fatal("scene load failed", "error", err)
		}
	} else {
		logger.Info("using built-in demo scene")
		desc = scene.Default()
	}

	// Flag overrides on top of the scene's render settings
	if *width > 0 {
		desc.Render.Width = *width
	}
	if *height > 0 {
		desc.Render.Height = *height
	}
	if *samples > 0 {
		desc.Render.Samples = *samples
	}
	if *maxDepth > 0 {
		desc.Render.MaxDepth = *maxDepth
	}
	if *seed != 0 {
		desc.Render.Seed = *seed
	}
	if *workers > 0 {
		desc.Render.Workers = *workers
	}

	w, camera, config, err := desc.Build()
	if err != nil {
		logger.Fatal("scene build failed", "error", err)
	}

	logger.Info("rendering",
		"size", fmt.Sprintf("%dx%d", camera.HSize(), camera.VSize()),
		"objects", len(w.Objects),
		"lights", len(w.Lights),
		"samples", config.Samples,
		"depth", config.MaxDepth)

	startTime := time.Now()
	lastReport := 0
	canvas := renderer.NewRenderer(config).Render(w, camera, func(p renderer.Progress) {
		// Report at every 10% boundary
		pct := p.RowsDone * 100 / p.TotalRows
		if pct >= lastReport+10 {
			lastReport = pct - pct%10
			logger.Debug("progress", "rows", p.RowsDone, "total", p.TotalRows, "pct", lastReport)
		}
	})
	logger.Info("render complete", "elapsed", time.Since(startTime).Round(time.Millisecond))

	filename := *output
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join("output", fmt.Sprintf("render_%s.png", timestamp))
	}
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Fatal("creating output directory", "error", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		logger.Fatal("creating output file", "error", err)
	}
	defer file.Close()

	if err := png.Encode(file, canvas.ToRGBA()); err != nil {
		logger.Fatal("encoding PNG", "error", err)
	}

	logger.Info("render saved", "path", filename)
}
