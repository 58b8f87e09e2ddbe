//go:build ebiten

package render

import (
	"image"
	"image/color"

	"dmscreen/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter rasterises a scene with flat-shaded triangles.
type Painter struct {
	white   *ebiten.Image
	tris    []scene.Triangle
	verts   []ebiten.Vertex
	indices []uint16
}

// NewPainter allocates the solid source image used for every triangle.
func NewPainter() *Painter {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Painter{white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

// Draw clears the viewport to the scene background and paints every visible
// triangle back to front.
func (p *Painter) Draw(dst *ebiten.Image, sc *scene.Scene, vp scene.Viewport) {
	rect := image.Rect(int(vp.X), int(vp.Y), int(vp.X+vp.W), int(vp.Y+vp.H))
	dst.SubImage(rect).(*ebiten.Image).Fill(sc.Background)

	p.tris = sc.Project(vp, p.tris)
	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.FillAll
	for _, batch := range batches(p.tris, maxBatchVertices) {
		p.verts = p.verts[:0]
		p.indices = p.indices[:0]
		for i, v := range batch {
			p.verts = append(p.verts, ebiten.Vertex{
				DstX:   v.x,
				DstY:   v.y,
				SrcX:   1,
				SrcY:   1,
				ColorR: v.r,
				ColorG: v.g,
				ColorB: v.b,
				ColorA: v.a,
			})
			p.indices = append(p.indices, uint16(i))
		}
		dst.DrawTriangles(p.verts, p.indices, p.white, op)
	}
}
