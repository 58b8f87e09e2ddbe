package physics

import "github.com/go-gl/mathgl/mgl64"

// BodyID identifies a body inside a World. Zero means the body has never been
// added to a world.
type BodyID uint64

// Pose is the authoritative placement of a body.
type Pose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// Body is a rigid body with a single collision shape.
type Body struct {
	id BodyID

	Shape    Shape
	Material *Material

	Position        mgl64.Vec3
	Orientation     mgl64.Quat
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3

	LinearDamping  float64
	AngularDamping float64

	mass       float64
	invMass    float64
	invInertia mgl64.Vec3

	// prev is the last position at which the centre was outside every box.
	prev   mgl64.Vec3
	buried bool
	// shift accumulates positional correction until the step applies it.
	shift  mgl64.Vec3
}

// NewBody constructs a body at the origin with identity orientation. A mass of
// zero or less makes the body static.
func NewBody(mass float64, shape Shape) *Body {
	b := &Body{
		Shape:       shape,
		Orientation: mgl64.QuatIdent(),
	}
	b.setMass(mass)
	return b
}

func (b *Body) setMass(mass float64) {
	if mass <= 0 || b.Shape.Kind == ShapePlane {
		b.mass, b.invMass, b.invInertia = 0, 0, mgl64.Vec3{}
		return
	}
	b.mass = mass
	b.invMass = 1 / mass
	in := b.Shape.inertia(mass)
	for i := 0; i < 3; i++ {
		if in[i] > 0 {
			b.invInertia[i] = 1 / in[i]
		}
	}
}

// ID reports the identifier assigned by the world, or zero.
func (b *Body) ID() BodyID { return b.id }

// Mass reports the body mass. Static bodies report zero.
func (b *Body) Mass() float64 { return b.mass }

// Static reports whether the body is immovable.
func (b *Body) Static() bool { return b.invMass == 0 }

// Pose projects the body's current placement.
func (b *Body) Pose() Pose {
	return Pose{Position: b.Position, Orientation: b.Orientation}
}

// Stop zeroes linear and angular velocity.
func (b *Body) Stop() {
	b.Velocity = mgl64.Vec3{}
	b.AngularVelocity = mgl64.Vec3{}
}

// velocityAt returns the velocity of a point at world offset r from the body
// position.
func (b *Body) velocityAt(r mgl64.Vec3) mgl64.Vec3 {
	if b.Static() {
		return mgl64.Vec3{}
	}
	return b.Velocity.Add(b.AngularVelocity.Cross(r))
}

// invInertiaWorld applies the world-space inverse inertia tensor to v.
func (b *Body) invInertiaWorld(v mgl64.Vec3) mgl64.Vec3 {
	if b.Static() {
		return mgl64.Vec3{}
	}
	local := b.Orientation.Conjugate().Rotate(v)
	return b.Orientation.Rotate(mulElem(local, b.invInertia))
}

// applyImpulse changes momentum by p applied at world offset r.
func (b *Body) applyImpulse(p, r mgl64.Vec3) {
	if b.Static() {
		return
	}
	b.Velocity = b.Velocity.Add(p.Mul(b.invMass))
	b.AngularVelocity = b.AngularVelocity.Add(b.invInertiaWorld(r.Cross(p)))
}

// planeNormal is the outward normal of a plane body in world space.
func (b *Body) planeNormal() mgl64.Vec3 {
	return b.Orientation.Rotate(mgl64.Vec3{0, 0, 1})
}

// corners returns the eight world-space vertices of a box body.
func (b *Body) corners() [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	h := b.Shape.HalfExtents
	i := 0
	for _, sx := range [2]float64{-1, 1} {
		for _, sy := range [2]float64{-1, 1} {
			for _, sz := range [2]float64{-1, 1} {
				local := mgl64.Vec3{sx * h.X(), sy * h.Y(), sz * h.Z()}
				out[i] = b.Position.Add(b.Orientation.Rotate(local))
				i++
			}
		}
	}
	return out
}

// toLocal expresses a world point in the body frame.
func (b *Body) toLocal(p mgl64.Vec3) mgl64.Vec3 {
	return b.Orientation.Conjugate().Rotate(p.Sub(b.Position))
}

func mulElem(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
