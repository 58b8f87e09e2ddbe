// Package scene mirrors the physics world as renderable meshes: an
// orthographic camera, two lights and one mesh per dynamic body. It also
// answers pointer queries by casting rays against the meshes and projects
// them to flat-shaded screen triangles for a renderer to draw.
package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Light is a coloured light source.
type Light struct {
	Color     color.RGBA
	Intensity float64
}

// DirectionalLight shines from Position towards the origin.
type DirectionalLight struct {
	Light
	Position mgl64.Vec3
}

// Scene holds the camera, lights and meshes in insertion order.
type Scene struct {
	Camera      *Camera
	Ambient     Light
	Directional DirectionalLight
	Background  color.RGBA

	meshes []*Mesh
	nextID MeshID
}

// New constructs an empty scene viewed through cam, lit by a white ambient
// light and a white key light.
func New(cam *Camera) *Scene {
	return &Scene{
		Camera:  cam,
		Ambient: Light{Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}, Intensity: 0.8},
		Directional: DirectionalLight{
			Light:    Light{Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}, Intensity: 0.6},
			Position: mgl64.Vec3{5, 10, 7.5},
		},
		Background: color.RGBA{R: 22, G: 24, B: 30, A: 255},
	}
}

// Add inserts m. It reports false when m is already present.
func (s *Scene) Add(m *Mesh) bool {
	if m == nil || s.index(m) >= 0 {
		return false
	}
	if m.id == 0 {
		s.nextID++
		m.id = s.nextID
	}
	s.meshes = append(s.meshes, m)
	return true
}

// Remove deletes m. Removing an absent mesh is a no-op that reports false.
func (s *Scene) Remove(m *Mesh) bool {
	i := s.index(m)
	if i < 0 {
		return false
	}
	s.meshes = append(s.meshes[:i], s.meshes[i+1:]...)
	return true
}

// Has reports whether m is part of the scene.
func (s *Scene) Has(m *Mesh) bool { return s.index(m) >= 0 }

func (s *Scene) index(m *Mesh) int {
	if m == nil {
		return -1
	}
	for i, other := range s.meshes {
		if other == m {
			return i
		}
	}
	return -1
}

// Meshes returns a copy of the mesh list in insertion order.
func (s *Scene) Meshes() []*Mesh {
	return append([]*Mesh(nil), s.meshes...)
}

// Len reports the number of meshes.
func (s *Scene) Len() int { return len(s.meshes) }
