package ui

import (
	"math"

	"dmscreen/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
)

// circleSegments is how many chords approximate a sphere outline.
const circleSegments = 24

// Segment is a line in device pixels.
type Segment struct {
	A, B mgl64.Vec2
}

// boxEdges pairs corner indices of a box whose corners are numbered by the
// sign bits of their x, y and z offsets.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Wireframe outlines a body's collision shape. Spheres become a horizontal
// circle and boxes their twelve edges. Planes have no outline.
func Wireframe(b *physics.Body, project func(mgl64.Vec3) mgl64.Vec2) []Segment {
	switch b.Shape.Kind {
	case physics.ShapeSphere:
		out := make([]Segment, 0, circleSegments)
		r := b.Shape.Radius
		prev := project(b.Position.Add(mgl64.Vec3{r, 0, 0}))
		for i := 1; i <= circleSegments; i++ {
			a := 2 * math.Pi * float64(i) / circleSegments
			next := project(b.Position.Add(mgl64.Vec3{r * math.Cos(a), 0, r * math.Sin(a)}))
			out = append(out, Segment{A: prev, B: next})
			prev = next
		}
		return out
	case physics.ShapeBox:
		h := b.Shape.HalfExtents
		var pts [8]mgl64.Vec2
		for i := range pts {
			local := mgl64.Vec3{h.X(), h.Y(), h.Z()}
			if i&1 == 0 {
				local[0] = -local[0]
			}
			if i&2 == 0 {
				local[1] = -local[1]
			}
			if i&4 == 0 {
				local[2] = -local[2]
			}
			pts[i] = project(b.Position.Add(b.Orientation.Rotate(local)))
		}
		out := make([]Segment, 0, len(boxEdges))
		for _, e := range boxEdges {
			out = append(out, Segment{A: pts[e[0]], B: pts[e[1]]})
		}
		return out
	}
	return nil
}
