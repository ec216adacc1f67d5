package raster

import (
	"image"
	"image/color"
)

// Image converts the grid to an NRGBA image with one pixel per cell.
// Cells holding bg are transparent. Glyphs found in ramp get a gray level by
// their position in it; any other glyph is drawn white.
func (g *Grid) Image(bg rune, ramp []rune) *image.NRGBA {
	levels := make(map[rune]uint8, len(ramp))
	for i, r := range ramp {
		levels[r] = uint8((i + 1) * 255 / len(ramp))
	}

	img := image.NewNRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			if c == bg {
				continue
			}
			v, ok := levels[c]
			if !ok {
				v = 255
			}
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}
