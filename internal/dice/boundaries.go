package dice

import (
	"errors"
	"fmt"
	"math"

	"dmscreen/internal/core"
	"dmscreen/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidCanvas is returned when the tray canvas has no area.
var ErrInvalidCanvas = errors.New("canvas must have positive width and height")

const (
	// canvasUnits is how many world units the canvas height spans.
	canvasUnits   = 10.0
	wallThickness = 6.0
	ceilingHeight = 20.0
)

// Bounds is the static enclosure of the tray: a floor, four walls and a
// ceiling. The footprint spans [-HalfWidth, HalfWidth] on X and
// [-HalfDepth, HalfDepth] on Z.
type Bounds struct {
	UnitsPerPixel float64
	HalfWidth     float64
	HalfDepth     float64
	Height        float64

	Floor   *physics.Body
	Ceiling *physics.Body
	// Walls are ordered north (-Z), south (+Z), west (-X), east (+X).
	Walls [4]*physics.Body
}

// BuildBoundaries lays out the enclosure for a canvas of the given pixel size.
// The result depends only on the inputs.
func BuildBoundaries(canvas core.Size, ground *physics.Material) (Bounds, error) {
	if canvas.Empty() {
		return Bounds{}, fmt.Errorf("build boundaries %dx%d: %w", canvas.W, canvas.H, ErrInvalidCanvas)
	}
	upp := canvasUnits / float64(canvas.H)
	b := Bounds{
		UnitsPerPixel: upp,
		HalfWidth:     float64(canvas.W) * upp,
		HalfDepth:     float64(canvas.H) * upp,
		Height:        ceilingHeight,
	}

	b.Floor = staticBody(physics.Plane(), ground)
	b.Floor.Orientation = mgl64.QuatRotate(-math.Pi/2, mgl64.Vec3{1, 0, 0})

	b.Ceiling = staticBody(physics.Plane(), ground)
	b.Ceiling.Position = mgl64.Vec3{0, b.Height, 0}
	b.Ceiling.Orientation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0})

	midY := b.Height / 2
	northSouth := mgl64.Vec3{b.HalfWidth + wallThickness, midY, wallThickness}
	eastWest := mgl64.Vec3{wallThickness, midY, b.HalfDepth + wallThickness}
	offsetZ := b.HalfDepth + wallThickness
	offsetX := b.HalfWidth + wallThickness
	placements := [4]struct {
		half mgl64.Vec3
		pos  mgl64.Vec3
	}{
		{northSouth, mgl64.Vec3{0, midY, -offsetZ}},
		{northSouth, mgl64.Vec3{0, midY, offsetZ}},
		{eastWest, mgl64.Vec3{-offsetX, midY, 0}},
		{eastWest, mgl64.Vec3{offsetX, midY, 0}},
	}
	for i, p := range placements {
		wall := staticBody(physics.Box(p.half), ground)
		wall.Position = p.pos
		b.Walls[i] = wall
	}
	return b, nil
}

// Bodies lists every boundary body.
func (b Bounds) Bodies() []*physics.Body {
	out := []*physics.Body{b.Floor}
	out = append(out, b.Walls[:]...)
	return append(out, b.Ceiling)
}

// Contains reports whether a point lies inside the enclosure.
func (b Bounds) Contains(p mgl64.Vec3) bool {
	return math.Abs(p.X()) <= b.HalfWidth && math.Abs(p.Z()) <= b.HalfDepth &&
		p.Y() >= 0 && p.Y() <= b.Height
}

func staticBody(shape physics.Shape, m *physics.Material) *physics.Body {
	body := physics.NewBody(0, shape)
	body.Material = m
	return body
}
