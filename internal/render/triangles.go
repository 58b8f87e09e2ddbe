package render

import (
	"image/color"

	"dmscreen/internal/scene"
)

// maxBatchVertices keeps index values within uint16.
const maxBatchVertices = 1<<16 - 1

// vertex is a device-space vertex with a colour scale in [0, 1].
type vertex struct {
	x, y       float32
	r, g, b, a float32
}

// colorScale converts c into per-channel scale factors for a white source.
func colorScale(c color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}

// batches splits projected triangles into runs small enough to be indexed
// with uint16. Each run is returned as flat vertices, three per triangle, in
// input order.
func batches(tris []scene.Triangle, limit int) [][]vertex {
	if limit < 3 {
		limit = 3
	}
	perBatch := limit / 3 * 3
	var out [][]vertex
	var cur []vertex
	for _, t := range tris {
		if len(cur)+3 > perBatch {
			out = append(out, cur)
			cur = nil
		}
		r, g, b, a := colorScale(t.Color)
		for _, p := range t.Points {
			cur = append(cur, vertex{x: float32(p.X()), y: float32(p.Y()), r: r, g: g, b: b, a: a})
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
