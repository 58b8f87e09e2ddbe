package scene

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// Hit is the nearest intersection of a ray with one mesh.
type Hit struct {
	Mesh     *Mesh
	Distance float64
	Point    mgl64.Vec3
}

// Intersect returns the nearest hit on every mesh the ray crosses, sorted by
// distance. Triangles are tested from both sides.
func (s *Scene) Intersect(r Ray) []Hit {
	var hits []Hit
	var verts []mgl64.Vec3
	for _, m := range s.meshes {
		if m.Geometry == nil || !raySphere(r, m.Position, m.boundingRadius()) {
			continue
		}
		verts = m.worldVertices(verts)
		best := math.Inf(1)
		for _, f := range m.Geometry.Faces {
			if t, ok := rayTriangle(r, verts[f[0]], verts[f[1]], verts[f[2]]); ok && t < best {
				best = t
			}
		}
		if !math.IsInf(best, 1) {
			hits = append(hits, Hit{Mesh: m, Distance: best, Point: r.At(best)})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}

// Pick returns the nearest hit, or false when the ray misses every mesh.
func (s *Scene) Pick(r Ray) (Hit, bool) {
	hits := s.Intersect(r)
	if len(hits) == 0 {
		return Hit{}, false
	}
	return hits[0], true
}

// PickAt casts from the camera through a device pixel inside vp.
func (s *Scene) PickAt(vp Viewport, px, py float64) (Hit, bool) {
	if s.Camera == nil {
		return Hit{}, false
	}
	ndc, ok := vp.NDC(px, py)
	if !ok {
		return Hit{}, false
	}
	return s.Pick(s.Camera.Ray(ndc))
}

func raySphere(r Ray, centre mgl64.Vec3, radius float64) bool {
	oc := centre.Sub(r.Origin)
	along := oc.Dot(r.Direction)
	dist2 := oc.LenSqr() - along*along
	return dist2 <= radius*radius
}

// rayTriangle is the Möller–Trumbore intersection test.
func rayTriangle(r Ray, a, b, c mgl64.Vec3) (float64, bool) {
	const eps = 1e-12
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := r.Direction.Cross(e2)
	det := e1.Dot(p)
	if math.Abs(det) < eps {
		return 0, false
	}
	inv := 1 / det
	tv := r.Origin.Sub(a)
	u := tv.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := tv.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}
