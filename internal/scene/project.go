package scene

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Triangle is a flat-shaded triangle in device pixels.
type Triangle struct {
	Points [3]mgl64.Vec2
	Color  color.RGBA
	// Depth is the mean NDC depth; larger is farther away.
	Depth float64
	Mesh  *Mesh
}

// Project converts every front-facing mesh triangle to screen space and shades
// it, returned back to front so painting in order yields correct occlusion.
func (s *Scene) Project(vp Viewport, dst []Triangle) []Triangle {
	dst = dst[:0]
	if s.Camera == nil {
		return dst
	}
	viewProj := s.Camera.ViewProjection()
	forward := s.Camera.Forward()
	light := s.Directional.Position.Normalize()

	var verts []mgl64.Vec3
	for _, m := range s.meshes {
		if m.Geometry == nil {
			continue
		}
		verts = m.worldVertices(verts)
		for _, f := range m.Geometry.Faces {
			a, b, c := verts[f[0]], verts[f[1]], verts[f[2]]
			n := b.Sub(a).Cross(c.Sub(a))
			if n.Len() == 0 || n.Dot(forward) >= 0 {
				continue
			}
			n = n.Normalize()
			var tri Triangle
			for k, v := range [3]mgl64.Vec3{a, b, c} {
				ndc := mgl64.TransformCoordinate(v, viewProj)
				tri.Points[k] = vp.ToScreen(mgl64.Vec2{ndc.X(), ndc.Y()})
				tri.Depth += ndc.Z() / 3
			}
			tri.Color = s.shade(m, math.Max(0, n.Dot(light)))
			tri.Mesh = m
			dst = append(dst, tri)
		}
	}
	sort.SliceStable(dst, func(i, j int) bool { return dst[i].Depth > dst[j].Depth })
	return dst
}

// shade applies ambient plus Lambert lighting and adds the emissive tint.
func (s *Scene) shade(m *Mesh, lambert float64) color.RGBA {
	amb := s.Ambient
	dir := s.Directional.Light
	channel := func(base, ambC, dirC, emissive uint8) uint8 {
		lit := float64(base) / 255 * (amb.Intensity*float64(ambC)/255 + dir.Intensity*lambert*float64(dirC)/255)
		v := lit + float64(emissive)/255
		return uint8(math.Round(255 * math.Min(1, math.Max(0, v))))
	}
	return color.RGBA{
		R: channel(m.Color.R, amb.Color.R, dir.Color.R, m.Emissive.R),
		G: channel(m.Color.G, amb.Color.G, dir.Color.G, m.Emissive.G),
		B: channel(m.Color.B, amb.Color.B, dir.Color.B, m.Emissive.B),
		A: 255,
	}
}
