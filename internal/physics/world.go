package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	defaultIterations = 10
	// Closing speeds below this do not bounce, so resting contacts settle.
	bounceThreshold = 0.5
	// Penetration allowed before positional correction kicks in.
	slop = 0.005
	// Fraction of the remaining penetration removed per step.
	correctionRate = 0.8
	// maxCorrection bounds how far correction may move one body in a step.
	maxCorrection = 0.2
)

// World owns the active bodies and the contact rules between materials.
type World struct {
	Gravity mgl64.Vec3
	// Iterations is the number of solver passes per step.
	Iterations int
	// DefaultContact applies to material pairs without an explicit rule.
	DefaultContact ContactMaterial

	bodies   []*Body
	rules    map[materialPair]ContactMaterial
	nextID   BodyID
	contacts []contact
}

// NewWorld constructs an empty world with the given gravity.
func NewWorld(gravity mgl64.Vec3) *World {
	return &World{
		Gravity:        gravity,
		Iterations:     defaultIterations,
		DefaultContact: ContactMaterial{Friction: defaultFriction, Restitution: defaultRestitution},
		rules:          map[materialPair]ContactMaterial{},
	}
}

// AddContactMaterial registers the interaction between cm.A and cm.B,
// replacing any earlier rule for the same pair.
func (w *World) AddContactMaterial(cm ContactMaterial) {
	w.rules[materialPair{cm.A, cm.B}] = cm
	w.rules[materialPair{cm.B, cm.A}] = cm
}

// ContactMaterial returns the rule governing contacts between a and b.
func (w *World) ContactMaterial(a, b *Material) ContactMaterial {
	if cm, ok := w.rules[materialPair{a, b}]; ok {
		return cm
	}
	cm := w.DefaultContact
	cm.A, cm.B = a, b
	return cm
}

// AddBody inserts b into the world. It reports false when b is already
// present.
func (w *World) AddBody(b *Body) bool {
	if b == nil || w.index(b) >= 0 {
		return false
	}
	if b.id == 0 {
		w.nextID++
		b.id = w.nextID
	}
	b.prev = b.Position
	w.bodies = append(w.bodies, b)
	return true
}

// RemoveBody deletes b from the world. Removing an absent body is a no-op that
// reports false.
func (w *World) RemoveBody(b *Body) bool {
	i := w.index(b)
	if i < 0 {
		return false
	}
	w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
	return true
}

// Has reports whether b is part of the world.
func (w *World) Has(b *Body) bool { return w.index(b) >= 0 }

func (w *World) index(b *Body) int {
	if b == nil {
		return -1
	}
	for i, other := range w.bodies {
		if other == b {
			return i
		}
	}
	return -1
}

// Bodies returns a copy of the active body list in insertion order.
func (w *World) Bodies() []*Body {
	return append([]*Body(nil), w.bodies...)
}

// Len reports the number of bodies, static ones included.
func (w *World) Len() int { return len(w.bodies) }

// DynamicCount reports the number of bodies that can move.
func (w *World) DynamicCount() int {
	n := 0
	for _, b := range w.bodies {
		if !b.Static() {
			n++
		}
	}
	return n
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		if b.Static() {
			continue
		}
		b.Velocity = b.Velocity.Add(w.Gravity.Mul(dt))
	}

	w.contacts = w.detect(w.contacts[:0])
	for _, b := range w.bodies {
		if !b.buried {
			b.prev = b.Position
		}
		b.buried = false
	}
	for i := range w.contacts {
		w.prepare(&w.contacts[i])
	}
	iterations := w.Iterations
	if iterations <= 0 {
		iterations = defaultIterations
	}
	for it := 0; it < iterations; it++ {
		for i := range w.contacts {
			solve(&w.contacts[i])
		}
	}
	for i := range w.contacts {
		correct(&w.contacts[i])
	}
	for _, b := range w.bodies {
		if l := b.shift.Len(); l > maxCorrection {
			b.shift = b.shift.Mul(maxCorrection / l)
		}
		b.Position = b.Position.Add(b.shift)
		b.shift = mgl64.Vec3{}
	}

	for _, b := range w.bodies {
		if b.Static() {
			continue
		}
		b.Velocity = b.Velocity.Mul(math.Pow(1-b.LinearDamping, dt))
		b.AngularVelocity = b.AngularVelocity.Mul(math.Pow(1-b.AngularDamping, dt))

		b.Position = b.Position.Add(b.Velocity.Mul(dt))
		spin := mgl64.Quat{W: 0, V: b.AngularVelocity}
		b.Orientation = b.Orientation.Add(spin.Mul(b.Orientation).Scale(0.5 * dt)).Normalize()
	}
}

func (w *World) detect(dst []contact) []contact {
	for i := 0; i < len(w.bodies); i++ {
		a := w.bodies[i]
		for j := i + 1; j < len(w.bodies); j++ {
			b := w.bodies[j]
			if a.Static() && b.Static() {
				continue
			}
			dst = collide(dst, a, b)
		}
	}
	return dst
}

func (w *World) prepare(c *contact) {
	cm := w.ContactMaterial(c.a.Material, c.b.Material)
	c.friction = cm.Friction
	c.ra = c.point.Sub(c.a.Position)
	c.rb = c.point.Sub(c.b.Position)
	c.tangents = tangentBasis(c.normal)
	c.massNormal = effectiveMass(c, c.normal)
	for k := range c.tangents {
		c.massTangent[k] = effectiveMass(c, c.tangents[k])
	}
	vn := relativeVelocity(c).Dot(c.normal)
	c.bounce = 0
	if vn < -bounceThreshold {
		c.bounce = -cm.Restitution * vn
	}
}

func effectiveMass(c *contact, dir mgl64.Vec3) float64 {
	k := c.a.invMass + c.b.invMass
	ia := c.a.invInertiaWorld(c.ra.Cross(dir)).Cross(c.ra)
	ib := c.b.invInertiaWorld(c.rb.Cross(dir)).Cross(c.rb)
	k += dir.Dot(ia.Add(ib))
	if k <= epsilon {
		return 0
	}
	return 1 / k
}

func relativeVelocity(c *contact) mgl64.Vec3 {
	return c.b.velocityAt(c.rb).Sub(c.a.velocityAt(c.ra))
}

func solve(c *contact) {
	if c.massNormal == 0 {
		return
	}
	vn := relativeVelocity(c).Dot(c.normal)
	lambda := (c.bounce - vn) * c.massNormal
	prev := c.accNormal
	c.accNormal = math.Max(prev+lambda, 0)
	lambda = c.accNormal - prev
	push(c, c.normal.Mul(lambda))

	limit := c.friction * c.accNormal
	for k, t := range c.tangents {
		if c.massTangent[k] == 0 {
			continue
		}
		vt := relativeVelocity(c).Dot(t)
		lt := -vt * c.massTangent[k]
		prev := c.accTangent[k]
		c.accTangent[k] = mgl64.Clamp(prev+lt, -limit, limit)
		lt = c.accTangent[k] - prev
		push(c, t.Mul(lt))
	}
}

// push applies p to b and -p to a.
func push(c *contact, p mgl64.Vec3) {
	c.b.applyImpulse(p, c.rb)
	c.a.applyImpulse(p.Mul(-1), c.ra)
}

func correct(c *contact) {
	inv := c.a.invMass + c.b.invMass
	if inv == 0 {
		return
	}
	depth := c.depth - slop
	if depth <= 0 {
		return
	}
	shift := c.normal.Mul(depth * correctionRate * c.share / inv)
	c.a.shift = c.a.shift.Sub(shift.Mul(c.a.invMass))
	c.b.shift = c.b.shift.Add(shift.Mul(c.b.invMass))
}

// tangentBasis returns two unit vectors orthogonal to n and to each other.
func tangentBasis(n mgl64.Vec3) [2]mgl64.Vec3 {
	ref := mgl64.Vec3{1, 0, 0}
	if math.Abs(n.X()) > 0.9 {
		ref = mgl64.Vec3{0, 1, 0}
	}
	t1 := n.Cross(ref).Normalize()
	t2 := n.Cross(t1)
	return [2]mgl64.Vec3{t1, t2}
}
