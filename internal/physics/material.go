package physics

// Material names a surface for contact lookups.
type Material struct {
	Name string
}

// NewMaterial returns a named material.
func NewMaterial(name string) *Material {
	return &Material{Name: name}
}

// ContactMaterial defines how two materials interact when they touch. The
// pairing is unordered.
type ContactMaterial struct {
	A, B        *Material
	Friction    float64
	Restitution float64
}

const (
	defaultFriction    = 0.3
	defaultRestitution = 0.0
)

type materialPair struct {
	a, b *Material
}
