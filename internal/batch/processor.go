package batch

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"glyphraster/internal/export"
	"glyphraster/internal/mathutil"
	"glyphraster/internal/raster"
	"glyphraster/internal/scene"
)

// Config holds all shared settings for a batch run.
type Config struct {
	Scene      raster.Scene // base scene; Transform is the model transform
	Width      int
	Height     int
	Fill       rune
	Background rune

	Frames   int
	SpinAxis mathutil.Vec3
	SpinStep float64        // degrees per frame
	SpinTo   *mathutil.Quat // when set, frames blend from identity to this orientation

	OutputDir string // empty: frames are rendered but not written
	Format    string
	CellSize  int
	Workers   int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Drawn   int
	Skipped int
	Success bool
	Error   string
}

// Run renders all frames using a worker pool.
func Run(cfg Config) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, idx)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// FrameTransform returns the world transform of frame i: the frame's spin
// applied after the scene's model transform.
func FrameTransform(cfg Config, i int) (mathutil.Mat4, error) {
	var spin mathutil.Mat4
	if cfg.SpinTo != nil {
		to := *cfg.SpinTo
		to.Normalize()
		t := 0.0
		if cfg.Frames > 1 {
			t = float64(i) / float64(cfg.Frames-1)
		}
		spin = scene.SpinBetween(mathutil.QuatIdentity(), to, t)
	} else {
		var err error
		spin, err = scene.Spin(cfg.SpinAxis, float64(i)*cfg.SpinStep)
		if err != nil {
			return mathutil.Mat4Identity(), err
		}
	}
	return spin.Mul(cfg.Scene.Transform), nil
}

// RenderFrame draws frame i onto a fresh grid.
func RenderFrame(cfg Config, i int) (*raster.Grid, raster.Stats, error) {
	m, err := FrameTransform(cfg, i)
	if err != nil {
		return nil, raster.Stats{}, err
	}

	grid := raster.NewGrid(cfg.Width, cfg.Height, cfg.Background)
	r := raster.NewRasterizer(grid)
	r.Fill = cfg.Fill
	r.Background = cfg.Background

	sc := cfg.Scene
	sc.Transform = m
	return grid, raster.Render(r, sc), nil
}

// FramePath returns the output file of frame i.
func FramePath(cfg Config, i int) string {
	return filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%03d.%s", i, cfg.Format))
}

func processFrame(cfg Config, i int) Result {
	res := Result{Frame: i}

	grid, stats, err := RenderFrame(cfg, i)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Drawn = stats.Drawn
	res.Skipped = stats.Skipped

	if cfg.OutputDir == "" {
		res.Success = true
		return res
	}

	var ramp []rune
	if cfg.Scene.Shader != nil {
		ramp = cfg.Scene.Shader.Ramp
	}
	img := export.Upscale(grid.Image(cfg.Background, ramp), cfg.CellSize)

	res.Path = FramePath(cfg, i)
	if err := export.Save(res.Path, img); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
