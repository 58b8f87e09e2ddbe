//go:build !ebiten

package app

import (
	"errors"

	"dmscreen/internal/dice"
)

var errNoGUI = errors.New("app.Game requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New reports that the GUI build tag is missing.
func New(*Config) (*Game, error) { return nil, errNoGUI }

// Tray returns nil in the headless build.
func (g *Game) Tray() *dice.Tray { return nil }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return errNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

// Run always reports that the GUI build tag is missing.
func (g *Game) Run(string) error { return errNoGUI }
