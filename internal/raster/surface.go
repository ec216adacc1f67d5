package raster

import "strings"

// Surface is a rectangular grid of character cells the rasterizer writes
// into. The rasterizer never reads cells back.
type Surface interface {
	Width() int
	Height() int
	WriteCell(x, y int, glyph rune)
}

// Grid is an in-memory Surface, stored as a flat row-major slice for cache
// locality.
type Grid struct {
	width  int
	height int
	cells  []rune
}

// NewGrid allocates a w×h grid filled with bg.
func NewGrid(w, h int, bg rune) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid{
		width:  w,
		height: h,
		cells:  make([]rune, w*h),
	}
	g.Clear(bg)
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// WriteCell stores glyph at (x, y). Writes outside the grid are dropped.
func (g *Grid) WriteCell(x, y int, glyph rune) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = glyph
}

// Cell returns the glyph at (x, y), or 0 outside the grid.
func (g *Grid) Cell(x, y int) rune {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0
	}
	return g.cells[y*g.width+x]
}

// Clear sets every cell to bg.
func (g *Grid) Clear(bg rune) {
	for i := range g.cells {
		g.cells[i] = bg
	}
}

// Count returns how many cells hold glyph.
func (g *Grid) Count(glyph rune) int {
	n := 0
	for _, c := range g.cells {
		if c == glyph {
			n++
		}
	}
	return n
}

// String renders the grid one row per line, top row first.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for _, c := range g.cells[y*g.width : (y+1)*g.width] {
			b.WriteRune(c)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
