package batch

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/floats"

	"glyphraster/internal/mathutil"
	"glyphraster/internal/raster"
)

func testConfig() Config {
	return Config{
		Scene: raster.Scene{
			Transform: mathutil.Mat4Identity(),
			Triangles: [][3]mathutil.Vec3{{{0, 0, 0}, {4, 0, 0}, {0, 4, 0}}},
		},
		Width:      5,
		Height:     5,
		Fill:       '#',
		Background: '.',
		Frames:     3,
		SpinAxis:   mathutil.Vec3{0, 0, 1},
		Format:     "png",
		CellSize:   2,
		Workers:    2,
	}
}

func TestFrameTransform(t *testing.T) {
	cfg := testConfig()
	cfg.Scene.Transform = mathutil.Mat4Identity().Translate(mathutil.Vec3{1, 0, 0})
	cfg.SpinStep = 90

	m, err := FrameTransform(cfg, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Model transform first, then the spin.
	p := m.MulPoint(mathutil.Vec3{})
	if !floats.EqualApprox(p[:], []float64{0, 1, 0}, 1e-9) {
		t.Errorf("frame 1 origin\nhave %v\nwant [0 1 0]", p)
	}

	m, _ = FrameTransform(cfg, 0)
	if !floats.EqualApprox(m[:], cfg.Scene.Transform[:], 1e-12) {
		t.Errorf("frame 0\nhave %v\nwant %v", m, cfg.Scene.Transform)
	}

	cfg.SpinAxis = mathutil.Vec3{}
	if _, err := FrameTransform(cfg, 1); err == nil {
		t.Error("zero spin axis: want error")
	}
}

func TestFrameTransformSpinTo(t *testing.T) {
	cfg := testConfig()
	to := mathutil.Quat{0, 0, 1, 1} // 90° about z, not normalized
	cfg.SpinTo = &to

	last, err := FrameTransform(cfg, cfg.Frames-1)
	if err != nil {
		t.Fatal(err)
	}
	p := last.MulPoint(mathutil.Vec3{1, 0, 0})
	if !floats.EqualApprox(p[:], []float64{0, 1, 0}, 1e-9) {
		t.Errorf("last frame\nhave %v\nwant [0 1 0]", p)
	}
	mid, _ := FrameTransform(cfg, 1)
	p = mid.MulPoint(mathutil.Vec3{1, 0, 0})
	s := math.Sqrt(0.5)
	if !floats.EqualApprox(p[:], []float64{s, s, 0}, 1e-9) {
		t.Errorf("middle frame\nhave %v\nwant [%v %v 0]", p, s, s)
	}
}

func TestRenderFrame(t *testing.T) {
	grid, stats, err := RenderFrame(testConfig(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Drawn != 1 || stats.Skipped != 0 {
		t.Errorf("Stats\nhave %+v\nwant {Drawn:1 Skipped:0}", stats)
	}
	if n := grid.Count('#'); n != 15 {
		t.Errorf("filled cells: have %d, want 15\n%s", n, grid)
	}
	if n := grid.Count('.'); n != 10 {
		t.Errorf("background cells: have %d, want 10\n%s", n, grid)
	}
}

func TestRunInMemory(t *testing.T) {
	results := Run(testConfig())
	if len(results) != 3 {
		t.Fatalf("results: have %d, want 3", len(results))
	}
	for i, r := range results {
		if r.Frame != i || !r.Success || r.Path != "" || r.Drawn != 1 {
			t.Errorf("result %d: %+v", i, r)
		}
	}
}

func TestRunWritesFrames(t *testing.T) {
	cfg := testConfig()
	cfg.OutputDir = t.TempDir()
	cfg.SpinStep = 30

	results := Run(cfg)
	for i, r := range results {
		if !r.Success {
			t.Fatalf("frame %d: %s", i, r.Error)
		}
		if r.Path != FramePath(cfg, i) {
			t.Errorf("frame %d path: have %s, want %s", i, r.Path, FramePath(cfg, i))
		}
		if _, err := os.Stat(r.Path); err != nil {
			t.Error(err)
		}
	}

	manifest := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := WriteManifest(manifest, results); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("manifest entries: have %d, want 3", len(entries))
	}
	if entries[2].Image != "frame_002.png" || entries[2].Frame != 2 {
		t.Errorf("manifest entry 2: %+v", entries[2])
	}
}

func TestWriteManifestSkipsFailures(t *testing.T) {
	dir := t.TempDir()
	results := []Result{
		{Frame: 0, Path: filepath.Join(dir, "a", "frame_000.webp"), Success: true, Drawn: 2},
		{Frame: 1, Error: "boom"},
		{Frame: 2, Success: true},
	}
	path := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(path, results); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Image != "a/frame_000.webp" || entries[0].Drawn != 2 {
		t.Errorf("entries: %+v", entries)
	}
}
