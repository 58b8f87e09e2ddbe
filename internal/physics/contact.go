package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// contact is one touching point between two bodies. normal points from a to b.
type contact struct {
	a, b   *Body
	normal mgl64.Vec3
	point  mgl64.Vec3
	depth  float64

	// share spreads positional correction over the contacts of one pair.
	share float64

	ra, rb      mgl64.Vec3
	tangents    [2]mgl64.Vec3
	massNormal  float64
	massTangent [2]float64
	friction    float64
	bounce      float64
	accNormal   float64
	accTangent  [2]float64
}

const epsilon = 1e-9

// collide appends the contacts between a and b to dst.
func collide(dst []contact, a, b *Body) []contact {
	if a.Shape.Kind > b.Shape.Kind {
		start := len(dst)
		dst = collide(dst, b, a)
		for i := start; i < len(dst); i++ {
			c := &dst[i]
			c.a, c.b = c.b, c.a
			c.normal = c.normal.Mul(-1)
		}
		return dst
	}
	if !boundsOverlap(a, b) {
		return dst
	}
	start := len(dst)
	switch {
	case a.Shape.Kind == ShapeSphere && b.Shape.Kind == ShapeSphere:
		dst = sphereSphere(dst, a, b)
	case a.Shape.Kind == ShapeSphere && b.Shape.Kind == ShapeBox:
		dst = sphereBox(dst, a, b)
	case a.Shape.Kind == ShapeSphere && b.Shape.Kind == ShapePlane:
		dst = spherePlane(dst, a, b)
	case a.Shape.Kind == ShapeBox && b.Shape.Kind == ShapeBox:
		dst = boxBox(dst, a, b)
	case a.Shape.Kind == ShapeBox && b.Shape.Kind == ShapePlane:
		dst = boxPlane(dst, a, b)
	}
	if n := len(dst) - start; n > 0 {
		for i := start; i < len(dst); i++ {
			dst[i].share = 1 / float64(n)
		}
	}
	return dst
}

func boundsOverlap(a, b *Body) bool {
	ra, rb := a.Shape.BoundingRadius(), b.Shape.BoundingRadius()
	if math.IsInf(ra, 1) || math.IsInf(rb, 1) {
		return true
	}
	reach := ra + rb
	return b.Position.Sub(a.Position).LenSqr() <= reach*reach
}

func sphereSphere(dst []contact, a, b *Body) []contact {
	d := b.Position.Sub(a.Position)
	dist := d.Len()
	reach := a.Shape.Radius + b.Shape.Radius
	if dist >= reach {
		return dst
	}
	n := mgl64.Vec3{0, 1, 0}
	if dist > epsilon {
		n = d.Mul(1 / dist)
	}
	return append(dst, contact{
		a: a, b: b,
		normal: n,
		point:  a.Position.Add(n.Mul(a.Shape.Radius)),
		depth:  reach - dist,
	})
}

func sphereBox(dst []contact, a, b *Body) []contact {
	h := b.Shape.HalfExtents
	local := b.toLocal(a.Position)
	closest := mgl64.Vec3{
		mgl64.Clamp(local.X(), -h.X(), h.X()),
		mgl64.Clamp(local.Y(), -h.Y(), h.Y()),
		mgl64.Clamp(local.Z(), -h.Z(), h.Z()),
	}
	delta := local.Sub(closest)
	dist := delta.Len()
	r := a.Shape.Radius
	if dist >= r {
		return dst
	}
	if dist > epsilon {
		n := b.Orientation.Rotate(delta.Mul(-1 / dist))
		return append(dst, contact{
			a: a, b: b,
			normal: n,
			point:  b.Position.Add(b.Orientation.Rotate(closest)),
			depth:  r - dist,
		})
	}
	// Centre inside the box: leave through the face the centre came in by,
	// or through the nearest face when it has never been outside.
	a.buried = true
	axis, dir, pen := entryFace(local, b.toLocal(a.prev), h)
	if axis < 0 {
		pen = math.Inf(1)
		for i := 0; i < 3; i++ {
			if p := h[i] - math.Abs(local[i]); p < pen {
				axis, pen = i, p
			}
		}
		dir = sign(local[axis])
	}
	var out mgl64.Vec3
	out[axis] = dir
	return append(dst, contact{
		a: a, b: b,
		normal: b.Orientation.Rotate(out).Mul(-1),
		point:  a.Position,
		depth:  r + pen,
	})
}

// entryFace finds the face of a box with half extents h that prev lay
// furthest outside of. It returns the axis, the outward sign on that axis and
// how deep local sits below that face, or axis -1 when prev is inside.
func entryFace(local, prev, h mgl64.Vec3) (int, float64, float64) {
	axis, outside := -1, 0.0
	for i := 0; i < 3; i++ {
		if d := math.Abs(prev[i]) - h[i]; d > outside {
			axis, outside = i, d
		}
	}
	if axis < 0 {
		return -1, 0, 0
	}
	dir := sign(prev[axis])
	return axis, dir, h[axis] - dir*local[axis]
}

func spherePlane(dst []contact, a, b *Body) []contact {
	n := b.planeNormal()
	dist := a.Position.Sub(b.Position).Dot(n) - a.Shape.Radius
	if dist >= 0 {
		return dst
	}
	return append(dst, contact{
		a: a, b: b,
		normal: n.Mul(-1),
		point:  a.Position.Sub(n.Mul(a.Shape.Radius)),
		depth:  -dist,
	})
}

func boxPlane(dst []contact, a, b *Body) []contact {
	n := b.planeNormal()
	for _, c := range a.corners() {
		dist := c.Sub(b.Position).Dot(n)
		if dist >= 0 {
			continue
		}
		dst = append(dst, contact{
			a: a, b: b,
			normal: n.Mul(-1),
			point:  c,
			depth:  -dist,
		})
	}
	return dst
}

// boxBox reports every corner of one box that lies inside the other, pushed
// out through the nearest face of the containing box.
func boxBox(dst []contact, a, b *Body) []contact {
	for _, c := range a.corners() {
		if out, pen, ok := cornerInside(b, c); ok {
			dst = append(dst, contact{a: a, b: b, normal: out.Mul(-1), point: c, depth: pen})
		}
	}
	for _, c := range b.corners() {
		if out, pen, ok := cornerInside(a, c); ok {
			dst = append(dst, contact{a: a, b: b, normal: out, point: c, depth: pen})
		}
	}
	return dst
}

// cornerInside reports whether p lies inside box body, returning the world
// normal of the nearest face and the penetration depth.
func cornerInside(box *Body, p mgl64.Vec3) (mgl64.Vec3, float64, bool) {
	h := box.Shape.HalfExtents
	local := box.toLocal(p)
	axis, pen := -1, math.Inf(1)
	for i := 0; i < 3; i++ {
		d := h[i] - math.Abs(local[i])
		if d <= 0 {
			return mgl64.Vec3{}, 0, false
		}
		if d < pen {
			axis, pen = i, d
		}
	}
	var out mgl64.Vec3
	out[axis] = sign(local[axis])
	return box.Orientation.Rotate(out), pen, true
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
