//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"dmscreen/internal/dice"
	"dmscreen/internal/physics"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	dynamicOutline = color.RGBA{R: 90, G: 220, B: 140, A: 200}
	restingOutline = color.RGBA{R: 90, G: 130, B: 170, A: 160}
	staticOutline  = color.RGBA{R: 255, G: 120, B: 40, A: 160}
)

// Overlay draws collision shapes and timing information on top of the tray.
type Overlay struct {
	tray    *dice.Tray
	visible bool
}

// NewOverlay constructs an overlay for the tray, optionally shown from start.
func NewOverlay(tray *dice.Tray, visible bool) *Overlay {
	return &Overlay{tray: tray, visible: visible}
}

// Update toggles the overlay with the D key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.visible = !o.visible
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	vp := o.tray.Viewport()
	cam := o.tray.Scene().Camera
	project := func(p mgl64.Vec3) mgl64.Vec2 { return cam.ScreenPoint(vp, p) }

	for _, b := range o.tray.World().Bodies() {
		col := outlineColor(b)
		for _, s := range Wireframe(b, project) {
			vector.StrokeLine(screen,
				float32(s.A.X()), float32(s.A.Y()), float32(s.B.X()), float32(s.B.Y()),
				1, col, true)
		}
	}

	msg := fmt.Sprintf("TPS %.1f  FPS %.1f  t=%.1fs  bodies %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), o.tray.Now().Seconds(), o.tray.World().Len())
	ebitenutil.DebugPrintAt(screen, msg, int(vp.X)+4, int(vp.Y)+4)
}

func outlineColor(b *physics.Body) color.RGBA {
	switch {
	case b.Static():
		return staticOutline
	case b.Velocity.Len() < 0.05 && b.AngularVelocity.Len() < 0.05:
		return restingOutline
	default:
		return dynamicOutline
	}
}
