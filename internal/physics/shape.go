package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ShapeKind enumerates the supported collision shapes.
type ShapeKind int

const (
	// ShapeSphere is a ball of Radius around the body position.
	ShapeSphere ShapeKind = iota
	// ShapeBox is an oriented box with HalfExtents along the body axes.
	ShapeBox
	// ShapePlane is an infinite half-space whose surface passes through the
	// body position. Its outward normal is the body's local +Z axis.
	ShapePlane
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeSphere:
		return "sphere"
	case ShapeBox:
		return "box"
	case ShapePlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Shape describes the collision geometry of a body in its local frame.
type Shape struct {
	Kind        ShapeKind
	Radius      float64
	HalfExtents mgl64.Vec3
}

// Sphere returns a sphere shape.
func Sphere(radius float64) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

// Box returns a box shape with the given half extents.
func Box(halfExtents mgl64.Vec3) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: halfExtents}
}

// Plane returns a plane shape facing local +Z.
func Plane() Shape {
	return Shape{Kind: ShapePlane}
}

// BoundingRadius is the radius of a sphere around the body position that
// encloses the shape. Planes are unbounded.
func (s Shape) BoundingRadius() float64 {
	switch s.Kind {
	case ShapeSphere:
		return s.Radius
	case ShapeBox:
		return s.HalfExtents.Len()
	default:
		return math.Inf(1)
	}
}

// inertia returns the diagonal of the local inertia tensor for the given mass.
func (s Shape) inertia(mass float64) mgl64.Vec3 {
	switch s.Kind {
	case ShapeSphere:
		i := 2.0 / 5.0 * mass * s.Radius * s.Radius
		return mgl64.Vec3{i, i, i}
	case ShapeBox:
		x, y, z := 2*s.HalfExtents.X(), 2*s.HalfExtents.Y(), 2*s.HalfExtents.Z()
		k := mass / 12.0
		return mgl64.Vec3{k * (y*y + z*z), k * (x*x + z*z), k * (x*x + y*y)}
	default:
		return mgl64.Vec3{}
	}
}
