package raster

import (
	"glyphraster/internal/mathutil"
)

// Scene is a set of model-space triangles and the transform that places
// them.
type Scene struct {
	Transform mathutil.Mat4
	Triangles [][3]mathutil.Vec3

	// Fit rescales the projected triangles to fill the surface.
	Fit    bool
	Margin int

	// Shader, when set, picks a glyph per triangle from its transformed
	// normal; otherwise the rasterizer's Fill glyph is used.
	Shader *Shader
}

// Stats summarizes one Render call.
type Stats struct {
	Drawn   int
	Skipped int // zero-area triangles
}

// Render clears the surface to the rasterizer's background, then
// transforms, projects and fills every triangle of sc. Triangles are drawn
// in order; later ones overwrite earlier ones where they overlap.
func Render(r *Rasterizer, sc Scene) Stats {
	var stats Stats
	if len(sc.Triangles) == 0 {
		clearSurface(r)
		return stats
	}

	world := make([]mathutil.Vec3, 0, len(sc.Triangles)*3)
	screen := make([]mathutil.Vec2, 0, len(sc.Triangles)*3)
	for _, tri := range sc.Triangles {
		for _, v := range tri {
			h := sc.Transform.MulVec(v.Vec4(1))
			world = append(world, h.Vec3())
			screen = append(screen, Project(h))
		}
	}
	if sc.Fit {
		screen = Fit(screen, r.width, r.height, sc.Margin)
	}

	clearSurface(r)
	transparent := r.Transparent
	r.Transparent = true
	defer func() { r.Transparent = transparent }()

	for i := 0; i < len(screen); i += 3 {
		glyph := r.Fill
		if sc.Shader != nil {
			glyph = sc.Shader.Glyph(FaceNormal(world[i], world[i+1], world[i+2]))
		}
		if r.RasterizeTriangleGlyph(screen[i], screen[i+1], screen[i+2], glyph) {
			stats.Drawn++
		} else {
			stats.Skipped++
		}
	}
	return stats
}

func clearSurface(r *Rasterizer) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.surface.WriteCell(x, y, r.Background)
		}
	}
}
