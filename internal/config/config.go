package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	"glyphraster/internal/mathutil"
	"glyphraster/internal/scene"
)

// Config holds the scene description and the render/output settings.
type Config struct {
	// Surface
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Fill       string `json:"fill"`
	Background string `json:"background"`

	// Scene
	Triangles [][3]mathutil.Vec3 `json:"triangles"`
	Transform []scene.Step       `json:"transform"`
	Fit       bool               `json:"fit"`
	Margin    int                `json:"margin"`
	Shade     bool               `json:"shade"`

	// Animation: frame i adds a spin of i*SpinStep degrees about SpinAxis,
	// or, when SpinTo is set, a Slerp blend towards that orientation.
	Frames   int            `json:"frames"`
	SpinAxis mathutil.Vec3  `json:"spin_axis"`
	SpinStep float64        `json:"spin_step"`
	SpinTo   *mathutil.Quat `json:"spin_to,omitempty"`

	// Output
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"`
	CellSize  int    `json:"cell_size"`
	Workers   int    `json:"workers"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults
	if c.Width <= 0 {
		c.Width = 64
	}
	if c.Height <= 0 {
		c.Height = 32
	}
	if c.Fill == "" {
		c.Fill = "#"
	}
	if c.Background == "" {
		c.Background = " "
	}
	if len(c.Triangles) == 0 {
		c.Triangles = DefaultTriangles()
	}
	if c.Frames <= 0 {
		c.Frames = 1
	}
	if c.SpinAxis == (mathutil.Vec3{}) {
		c.SpinAxis = mathutil.Vec3{0, 0, 1}
	}
	c.Format = strings.ToLower(strings.TrimPrefix(c.Format, "."))
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.CellSize <= 0 {
		c.CellSize = 8
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings that cannot be rendered.
func (c *Config) Validate() error {
	switch c.Format {
	case "webp", "tga", "png":
	default:
		return fmt.Errorf("config: unsupported format %q", c.Format)
	}
	if _, err := scene.Build(c.Transform); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// FillGlyph returns the first rune of Fill.
func (c *Config) FillGlyph() rune { return firstRune(c.Fill, '#') }

// BackgroundGlyph returns the first rune of Background.
func (c *Config) BackgroundGlyph() rune { return firstRune(c.Background, ' ') }

func firstRune(s string, def rune) rune {
	for _, r := range s {
		return r
	}
	return def
}

// DefaultTriangles is the triangle drawn when the config names none.
func DefaultTriangles() [][3]mathutil.Vec3 {
	return [][3]mathutil.Vec3{
		{{10, 10, 1}, {20, 10, 1}, {15, 20, 1}},
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width     int
	Height    int
	Frames    int
	OutputDir string
	Format    string
	Workers   int
}
