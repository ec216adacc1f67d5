package raster

import (
	"math"

	"glyphraster/internal/mathutil"
)

// insideTolerance lets cells sitting a hair outside an edge count as
// covered, absorbing rounding on the edge itself. It is not an
// edge-ownership rule: two triangles sharing an edge may both claim the
// cells along it.
const insideTolerance = -0.001

// Rasterizer fills triangles into a Surface. The surface size is captured
// at construction and never changes afterwards.
type Rasterizer struct {
	surface Surface
	width   int
	height  int

	// Fill is written to covered cells, Background to uncovered cells inside
	// the triangle's bounding box.
	Fill       rune
	Background rune

	// Transparent leaves uncovered cells untouched instead of writing
	// Background, so several triangles can share one surface.
	Transparent bool
}

// NewRasterizer returns a rasterizer drawing '#' on ' ' into s.
func NewRasterizer(s Surface) *Rasterizer {
	return &Rasterizer{
		surface:    s,
		width:      s.Width(),
		height:     s.Height(),
		Fill:       '#',
		Background: ' ',
	}
}

func (r *Rasterizer) Width() int  { return r.width }
func (r *Rasterizer) Height() int { return r.height }

// RasterizeTriangle fills the screen-space triangle v1 v2 v3 with r.Fill.
// It reports false when the triangle has zero area (or non-finite
// coordinates) and nothing was written.
func (r *Rasterizer) RasterizeTriangle(v1, v2, v3 mathutil.Vec2) bool {
	return r.RasterizeTriangleGlyph(v1, v2, v3, r.Fill)
}

// RasterizeTriangleGlyph is RasterizeTriangle with an explicit fill glyph.
//
// Every integer cell (i, j) in the triangle's bounding box, clamped to the
// surface, is classified by its barycentric weights and written exactly once.
func (r *Rasterizer) RasterizeTriangleGlyph(v1, v2, v3 mathutil.Vec2, glyph rune) bool {
	x1, y1 := v1[0], v1[1]
	x2, y2 := v2[0], v2[1]
	x3, y3 := v3[0], v3[1]

	for _, c := range [...]float64{x1, y1, x2, y2, x3, y3} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	// Barycentric setup. det is twice the signed area; a subnormal det
	// overflows its reciprocal and is rejected with the zero-area case.
	det := (y2-y3)*(x1-x3) + (x3-x2)*(y1-y3)
	if det == 0 {
		return false
	}
	invDet := 1.0 / det
	if math.IsInf(invDet, 0) {
		return false
	}

	// Bounding box, upper edge inclusive of the cell holding the max coordinate
	minX := math.Max(math.Floor(math.Min(math.Min(x1, x2), x3)), 0)
	maxX := math.Min(math.Floor(math.Max(math.Max(x1, x2), x3)), float64(r.width-1))
	minY := math.Max(math.Floor(math.Min(math.Min(y1, y2), y3)), 0)
	maxY := math.Min(math.Floor(math.Max(math.Max(y1, y2), y3)), float64(r.height-1))
	if minX > maxX || minY > maxY {
		return true
	}

	// Precompute edge deltas
	dy23 := y2 - y3
	dx32 := x3 - x2
	dy31 := y3 - y1
	dx13 := x1 - x3

	for sy := int(minY); sy <= int(maxY); sy++ {
		dsy := float64(sy) - y3
		for sx := int(minX); sx <= int(maxX); sx++ {
			dsx := float64(sx) - x3
			w1 := (dy23*dsx + dx32*dsy) * invDet
			w2 := (dy31*dsx + dx13*dsy) * invDet
			w3 := 1.0 - w1 - w2

			switch {
			case inside(w1, w2, w3):
				r.surface.WriteCell(sx, sy, glyph)
			case !r.Transparent:
				r.surface.WriteCell(sx, sy, r.Background)
			}
		}
	}
	return true
}

// inside reports whether the three weights agree in sign, within tolerance.
func inside(w1, w2, w3 float64) bool {
	n1 := w1 < insideTolerance
	n2 := w2 < insideTolerance
	n3 := w3 < insideTolerance
	return n1 == n2 && n2 == n3
}
