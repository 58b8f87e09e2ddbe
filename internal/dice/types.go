package dice

import (
	"errors"
	"fmt"
	"strings"

	"dmscreen/internal/physics"
	"dmscreen/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrUnknownDieType is returned for die names outside d4, d6, d8, d10, d12,
// d20 and d100.
var ErrUnknownDieType = errors.New("unknown die type")

// Type is one of the supported polyhedral dice.
type Type int

const (
	D4 Type = iota + 1
	D6
	D8
	D10
	D12
	D20
	D100
)

type typeSpec struct {
	name  string
	faces int
	scale float64
	// geometry builds the render mesh for the given scale.
	geometry func(scale float64) *scene.Geometry
	// collider builds the collision shape for the given scale.
	collider func(scale float64) physics.Shape
}

func sphereCollider(scale float64) physics.Shape { return physics.Sphere(scale) }

func cubeCollider(scale float64) physics.Shape {
	h := scale / 2
	return physics.Box(mgl64.Vec3{h, h, h})
}

var typeTable = [...]typeSpec{
	D4:   {name: "d4", faces: 4, scale: 0.5, geometry: scene.Tetrahedron, collider: sphereCollider},
	D6:   {name: "d6", faces: 6, scale: 1.0, geometry: scene.Cube, collider: cubeCollider},
	D8:   {name: "d8", faces: 8, scale: 0.8, geometry: scene.Octahedron, collider: sphereCollider},
	D10:  {name: "d10", faces: 10, scale: 0.9, geometry: func(s float64) *scene.Geometry { return scene.Dodecahedron(s * 0.8) }, collider: sphereCollider},
	D12:  {name: "d12", faces: 12, scale: 0.85, geometry: scene.Dodecahedron, collider: sphereCollider},
	D20:  {name: "d20", faces: 20, scale: 1.2, geometry: scene.Icosahedron, collider: sphereCollider},
	D100: {name: "d100", faces: 100, scale: 1.5, geometry: func(s float64) *scene.Geometry { return scene.UVSphere(s, 16, 16) }, collider: sphereCollider},
}

// Types lists every supported die in ascending face order.
func Types() []Type {
	return []Type{D4, D6, D8, D10, D12, D20, D100}
}

// ParseType resolves a die name such as "d20". Matching ignores case and
// surrounding space.
func ParseType(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, t := range Types() {
		if typeTable[t].name == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDieType, name)
}

// Valid reports whether t is a supported die.
func (t Type) Valid() bool {
	return t >= D4 && t <= D100
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeTable[t].name
}

// Faces reports the number of faces, which is also the highest roll.
func (t Type) Faces() int {
	if !t.Valid() {
		return 0
	}
	return typeTable[t].faces
}

// Scale reports the nominal size of the die in world units.
func (t Type) Scale() float64 {
	if !t.Valid() {
		return 0
	}
	return typeTable[t].scale
}

// Geometry builds the render mesh geometry for the die.
func (t Type) Geometry() *scene.Geometry {
	if !t.Valid() {
		return nil
	}
	row := typeTable[t]
	return row.geometry(row.scale)
}

// Collider builds the collision shape for the die.
func (t Type) Collider() physics.Shape {
	if !t.Valid() {
		return physics.Shape{}
	}
	row := typeTable[t]
	return row.collider(row.scale)
}
