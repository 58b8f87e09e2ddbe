//go:build ebiten

package app

import (
	"log"
	"sync/atomic"

	"dmscreen/internal/core"
	"dmscreen/internal/dice"
	"dmscreen/internal/render"
	"dmscreen/internal/scene"
	"dmscreen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a dice tray to the ebiten.Game interface. The tray fills the
// left of the window and the control panel the right.
type Game struct {
	tray    *dice.Tray
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay

	canvas     core.Size
	panelWidth int
	tps        int

	paused   bool
	tickOnce bool
	running  atomic.Bool
}

// New constructs a Game from the configuration.
func New(c *Config) (*Game, error) {
	tray, err := NewTray(c, log.Default())
	if err != nil {
		return nil, err
	}
	log.Printf("[app] seed %d", c.Seed)
	return &Game{
		tray:       tray,
		painter:    render.NewPainter(),
		hud:        ui.NewHUD(tray, c.PanelWidth),
		overlay:    ui.NewOverlay(tray, c.Debug),
		canvas:     c.Canvas(),
		panelWidth: c.PanelWidth,
		tps:        c.TPS,
	}, nil
}

// Tray exposes the underlying dice tray.
func (g *Game) Tray() *dice.Tray { return g.tray }

// Update handles per-frame input and advances the tray by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.tray.Roll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.tray.Clear()
	}

	g.overlay.Update()
	g.hud.Update(g.canvas.W)
	g.handlePointer()

	if !g.paused || g.tickOnce {
		g.tray.Tick()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	px, py := float64(mx), float64(my)
	if !g.tray.Viewport().Contains(px, py) {
		g.tray.Unhover()
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.tray.Click(px, py)
	}
	g.tray.Hover(px, py)
}

// Draw renders the tray, the overlay and the panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.tray.Scene(), g.tray.Viewport())
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.canvas.W, g.canvas.H)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.canvas.W + g.panelWidth, g.canvas.H
}

// Run opens the window and blocks until it is closed. A second call while the
// loop is active returns ErrAlreadyRunning.
func (g *Game) Run(title string) error {
	if !g.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer g.running.Store(false)

	g.tray.SetViewport(scene.Viewport{W: float64(g.canvas.W), H: float64(g.canvas.H)})
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(g.tps)
	ebiten.SetWindowSize(g.canvas.W+g.panelWidth, g.canvas.H)
	return ebiten.RunGame(g)
}
