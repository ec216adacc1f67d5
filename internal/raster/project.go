package raster

import (
	"math"

	"glyphraster/internal/mathutil"
)

// Project maps a transformed homogeneous point to screen space by keeping
// x and y. When w is neither 0 nor 1 the point is first brought back to
// w=1; there is no perspective divide by depth.
func Project(v mathutil.Vec4) mathutil.Vec2 {
	if w := v[3]; w != 0 && w != 1 {
		return mathutil.Vec2{v[0] / w, v[1] / w}
	}
	return mathutil.Vec2{v[0], v[1]}
}

// Fit scales and centers pts into a w×h surface, keeping a margin of cells
// on every side. Y is flipped so +Y points up on screen. The same scale is
// used on both axes.
func Fit(pts []mathutil.Vec2, w, h, margin int) []mathutil.Vec2 {
	if len(pts) == 0 {
		return nil
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p[0])
		maxX = math.Max(maxX, p[0])
		minY = math.Min(minY, p[1])
		maxY = math.Max(maxY, p[1])
	}

	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	spanX := math.Max(maxX-minX, 0.001)
	spanY := math.Max(maxY-minY, 0.001)

	availX := math.Max(float64(w-1-2*margin), 1)
	availY := math.Max(float64(h-1-2*margin), 1)
	scale := math.Min(availX/spanX, availY/spanY)

	halfX := float64(w-1) / 2
	halfY := float64(h-1) / 2

	out := make([]mathutil.Vec2, len(pts))
	for i, p := range pts {
		out[i] = mathutil.Vec2{
			(p[0]-cx)*scale + halfX,
			-(p[1]-cy)*scale + halfY,
		}
	}
	return out
}
