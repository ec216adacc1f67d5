package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"glyphraster/internal/batch"
	"glyphraster/internal/config"
	"glyphraster/internal/raster"
	"glyphraster/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Surface width in cells (default: 64)")
	height := flag.Int("height", 0, "Surface height in cells (default: 32)")
	frames := flag.Int("frames", 0, "Number of spin frames to render (default: 1)")
	outputDir := flag.String("output", "", "Write frames as images to this directory")
	format := flag.String("format", "", "Image format: webp, tga or png (default: webp)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	printFrame := flag.Bool("print", true, "Print the first frame to stdout")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Width:     *width,
		Height:    *height,
		Frames:    *frames,
		OutputDir: *outputDir,
		Format:    *format,
		Workers:   *workers,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model, _ := scene.Build(cfg.Transform)
	sc := raster.Scene{
		Transform: model,
		Triangles: cfg.Triangles,
		Fit:       cfg.Fit,
		Margin:    cfg.Margin,
	}
	if cfg.Shade {
		sc.Shader = raster.DefaultShader()
	}

	batchCfg := batch.Config{
		Scene:      sc,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fill:       cfg.FillGlyph(),
		Background: cfg.BackgroundGlyph(),
		Frames:     cfg.Frames,
		SpinAxis:   cfg.SpinAxis,
		SpinStep:   cfg.SpinStep,
		SpinTo:     cfg.SpinTo,
		OutputDir:  cfg.OutputDir,
		Format:     cfg.Format,
		CellSize:   cfg.CellSize,
		Workers:    cfg.Workers,
	}

	if *printFrame {
		grid, stats, err := batch.RenderFrame(batchCfg, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(grid.String())
		if stats.Skipped > 0 {
			fmt.Fprintf(os.Stderr, "Warning: %d zero-area triangle(s) skipped\n", stats.Skipped)
		}
	}

	if cfg.OutputDir == "" {
		return
	}

	fmt.Printf("Triangles: %d, Frames: %d, Workers: %d\n", len(cfg.Triangles), cfg.Frames, cfg.Workers)
	fmt.Printf("Output: %s (%s, %dpx cells)\n", cfg.OutputDir, cfg.Format, cfg.CellSize)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	results := batch.Run(batchCfg)
	elapsed := time.Since(start)

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
