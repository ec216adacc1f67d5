package raster

import (
	"math"

	"glyphraster/internal/mathutil"
)

// DefaultRamp orders glyphs from dimmest to brightest.
const DefaultRamp = ".:-=+*#%@"

// Shader picks a flat-shading glyph for a whole triangle from its normal.
type Shader struct {
	LightDir mathutil.Vec3 // unit vector towards the light
	Ramp     []rune
}

// DefaultShader returns a shader lit from the upper left, in front of the
// scene.
func DefaultShader() *Shader {
	dir, _ := mathutil.Vec3{-0.4, 0.6, -1}.Normalized()
	return &Shader{
		LightDir: dir,
		Ramp:     []rune(DefaultRamp),
	}
}

// Glyph returns the ramp entry for a face normal. Lighting is double-sided
// (|n·l|). A zero normal maps to the dimmest glyph.
func (s *Shader) Glyph(normal mathutil.Vec3) rune {
	if len(s.Ramp) == 0 {
		return '#'
	}
	n, err := normal.Normalized()
	if err != nil {
		return s.Ramp[0]
	}
	ndl := math.Abs(n.Dot(s.LightDir))
	i := int(ndl*float64(len(s.Ramp)-1) + 0.5)
	return s.Ramp[mathutil.Clamp(i, 0, len(s.Ramp)-1)]
}

// FaceNormal returns the unnormalized normal of triangle a b c
// (counter-clockwise winding faces +Z).
func FaceNormal(a, b, c mathutil.Vec3) mathutil.Vec3 {
	return b.Sub(a).Cross(c.Sub(a))
}
