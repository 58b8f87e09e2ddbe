package scene

import (
	"image/color"

	"dmscreen/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
)

// MeshID identifies a mesh inside a Scene. Zero means never added.
type MeshID uint64

// Mesh is a renderable proxy: geometry, surface colour and placement.
type Mesh struct {
	id MeshID

	Geometry *Geometry
	Color    color.RGBA
	Emissive color.RGBA
	Scale    float64

	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// NewMesh constructs a mesh at the origin with unit scale.
func NewMesh(g *Geometry, c color.RGBA) *Mesh {
	return &Mesh{
		Geometry:    g,
		Color:       c,
		Emissive:    color.RGBA{A: 255},
		Scale:       1,
		Orientation: mgl64.QuatIdent(),
	}
}

// ID reports the identifier assigned by the scene, or zero.
func (m *Mesh) ID() MeshID { return m.id }

// SetPose copies a body placement onto the mesh. Scale and colours are
// visual-only and left alone.
func (m *Mesh) SetPose(p physics.Pose) {
	m.Position = p.Position
	m.Orientation = p.Orientation
}

// Model returns the model-to-world matrix.
func (m *Mesh) Model() mgl64.Mat4 {
	s := m.Scale
	return mgl64.Translate3D(m.Position.X(), m.Position.Y(), m.Position.Z()).
		Mul4(m.Orientation.Mat4()).
		Mul4(mgl64.Scale3D(s, s, s))
}

// worldVertices transforms every geometry vertex into world space.
func (m *Mesh) worldVertices(dst []mgl64.Vec3) []mgl64.Vec3 {
	model := m.Model()
	dst = dst[:0]
	for _, v := range m.Geometry.Vertices {
		dst = append(dst, mgl64.TransformCoordinate(v, model))
	}
	return dst
}

// boundingRadius is the world-space radius around Position.
func (m *Mesh) boundingRadius() float64 {
	return m.Geometry.Radius() * m.Scale
}
