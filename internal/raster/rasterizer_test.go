package raster

import (
	"math"
	"testing"

	"glyphraster/internal/mathutil"
)

// recorder is a Surface that fails the test on out-of-bounds writes and
// counts how often each cell is written.
type recorder struct {
	t      *testing.T
	w, h   int
	writes map[[2]int]int
	cells  map[[2]int]rune
}

func newRecorder(t *testing.T, w, h int) *recorder {
	return &recorder{t: t, w: w, h: h, writes: map[[2]int]int{}, cells: map[[2]int]rune{}}
}

func (r *recorder) Width() int  { return r.w }
func (r *recorder) Height() int { return r.h }

func (r *recorder) WriteCell(x, y int, glyph rune) {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		r.t.Errorf("write outside surface at (%d, %d)", x, y)
	}
	r.writes[[2]int{x, y}]++
	r.cells[[2]int{x, y}] = glyph
}

func v2(x, y float64) mathutil.Vec2 { return mathutil.Vec2{x, y} }

func TestRasterizeStaircase(t *testing.T) {
	g := NewGrid(5, 5, '.')
	r := NewRasterizer(g)
	if !r.RasterizeTriangle(v2(0, 0), v2(4, 0), v2(0, 4)) {
		t.Fatal("RasterizeTriangle reported degenerate")
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := ' '
			if x+y <= 4 {
				want = '#'
			}
			if c := g.Cell(x, y); c != want {
				t.Errorf("cell (%d, %d): have %q, want %q", x, y, c, want)
			}
		}
	}
	if n := g.Count('#'); n != 15 {
		t.Errorf("filled cells: have %d, want 15", n)
	}
}

func TestRasterizeWindingIndependent(t *testing.T) {
	cw := NewGrid(5, 5, ' ')
	ccw := NewGrid(5, 5, ' ')
	NewRasterizer(cw).RasterizeTriangle(v2(0, 0), v2(4, 0), v2(0, 4))
	NewRasterizer(ccw).RasterizeTriangle(v2(0, 0), v2(0, 4), v2(4, 0))
	if cw.String() != ccw.String() {
		t.Errorf("winding changed coverage\n%s\n%s", cw, ccw)
	}
}

func TestRasterizeDegenerate(t *testing.T) {
	rec := newRecorder(t, 5, 5)
	r := NewRasterizer(rec)
	if r.RasterizeTriangle(v2(1, 1), v2(1, 1), v2(1, 1)) {
		t.Error("coincident vertices: have true, want false")
	}
	if r.RasterizeTriangle(v2(0, 0), v2(2, 2), v2(4, 4)) {
		t.Error("collinear vertices: have true, want false")
	}
	if len(rec.writes) != 0 {
		t.Errorf("degenerate triangle wrote %d cells", len(rec.writes))
	}
}

func TestRasterizeTinyTriangle(t *testing.T) {
	g := NewGrid(3, 3, '.')
	r := NewRasterizer(g)
	if !r.RasterizeTriangle(v2(0, 0), v2(1e-7, 0), v2(0, 1e-7)) {
		t.Fatal("tiny triangle reported degenerate")
	}
	if c := g.Cell(0, 0); c != '#' {
		t.Errorf("cell (0, 0): have %q, want '#'", c)
	}
	if n := g.Count('#'); n != 1 {
		t.Errorf("filled cells: have %d, want 1", n)
	}
}

func TestRasterizeNonFinite(t *testing.T) {
	rec := newRecorder(t, 5, 5)
	r := NewRasterizer(rec)
	if r.RasterizeTriangle(v2(0, 0), v2(math.Inf(1), 0), v2(0, 4)) {
		t.Error("infinite vertex: have true, want false")
	}
	if r.RasterizeTriangle(v2(0, 0), v2(4, 0), v2(0, math.NaN())) {
		t.Error("NaN vertex: have true, want false")
	}
	if len(rec.writes) != 0 {
		t.Errorf("non-finite triangle wrote %d cells", len(rec.writes))
	}
}

func TestRasterizeClipped(t *testing.T) {
	rec := newRecorder(t, 10, 10)
	r := NewRasterizer(rec)
	if !r.RasterizeTriangle(v2(-5, -5), v2(20, 0), v2(0, 20)) {
		t.Fatal("RasterizeTriangle reported degenerate")
	}
	for cell, n := range rec.writes {
		if n != 1 {
			t.Errorf("cell %v written %d times", cell, n)
		}
	}
	if len(rec.writes) != 100 {
		t.Errorf("cells written: have %d, want 100", len(rec.writes))
	}
	if c := rec.cells[[2]int{0, 0}]; c != '#' {
		t.Errorf("cell (0, 0): have %q, want '#'", c)
	}
}

func TestRasterizeOffSurface(t *testing.T) {
	rec := newRecorder(t, 4, 4)
	r := NewRasterizer(rec)
	if !r.RasterizeTriangle(v2(10, 10), v2(12, 10), v2(10, 12)) {
		t.Error("off-surface triangle reported degenerate")
	}
	if len(rec.writes) != 0 {
		t.Errorf("off-surface triangle wrote %d cells", len(rec.writes))
	}
}

func TestRasterizeTransparent(t *testing.T) {
	g := NewGrid(5, 5, '.')
	r := NewRasterizer(g)
	r.Transparent = true
	r.RasterizeTriangleGlyph(v2(0, 0), v2(4, 0), v2(0, 4), '*')
	if n := g.Count('*'); n != 15 {
		t.Errorf("filled cells: have %d, want 15", n)
	}
	if n := g.Count('.'); n != 10 {
		t.Errorf("untouched cells: have %d, want 10", n)
	}
}

func TestGrid(t *testing.T) {
	g := NewGrid(3, 2, '.')
	g.WriteCell(1, 0, '#')
	g.WriteCell(3, 0, '#')
	g.WriteCell(-1, 1, '#')
	if have, want := g.String(), ".#.\n...\n"; have != want {
		t.Errorf("String\nhave %q\nwant %q", have, want)
	}
	if c := g.Cell(5, 5); c != 0 {
		t.Errorf("Cell outside grid: have %q, want 0", c)
	}
	g.Clear('x')
	if n := g.Count('x'); n != 6 {
		t.Errorf("Clear: have %d cells, want 6", n)
	}
}

func TestGridImage(t *testing.T) {
	g := NewGrid(3, 1, ' ')
	g.WriteCell(0, 0, '@')
	g.WriteCell(1, 0, 'a')
	img := g.Image(' ', []rune(".@"))
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 1 {
		t.Fatalf("bounds: have %v, want 3x1", b)
	}
	if c := img.NRGBAAt(0, 0); c.R != 255 || c.A != 255 {
		t.Errorf("ramp top: have %v, want opaque 255", c)
	}
	if c := img.NRGBAAt(1, 0); c.R != 255 || c.A != 255 {
		t.Errorf("unknown glyph: have %v, want opaque white", c)
	}
	if c := img.NRGBAAt(2, 0); c.A != 0 {
		t.Errorf("background: have %v, want transparent", c)
	}
}
