package app

import (
	"errors"
	"io"
	"log"
	"math"
	"testing"

	"dmscreen/internal/dice"
)

func TestNewTraySpawnsStartingDice(t *testing.T) {
	c := NewConfig()
	c.Seed = 7
	c.Dice = []string{"d20", "d6"}
	tray, err := NewTray(c, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("new tray: %v", err)
	}
	if tray.Len() != 2 {
		t.Fatalf("dice = %d, want 2", tray.Len())
	}
	if got := tray.Dice()[0].Type; got != dice.D20 {
		t.Fatalf("first die = %v, want d20", got)
	}
}

func TestNewTrayRejectsBadInput(t *testing.T) {
	c := NewConfig()
	c.Seed = 7
	c.Dice = []string{"d13"}
	if _, err := NewTray(c, log.New(io.Discard, "", 0)); !errors.Is(err, dice.ErrUnknownDieType) {
		t.Fatalf("err = %v, want ErrUnknownDieType", err)
	}

	c = NewConfig()
	c.Height = 0
	if _, err := NewTray(c, log.New(io.Discard, "", 0)); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestTickStepIndependentOfTPS(t *testing.T) {
	c := NewConfig()
	c.Seed = 7
	c.TPS = 30
	c.Dice = []string{"d20"}
	tray, err := NewTray(c, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("new tray: %v", err)
	}
	body := tray.Dice()[0].Body
	y0 := body.Position.Y()
	tray.Tick()

	const step = 1.0 / 60
	vy := -9.81 * step * math.Pow(1-0.4, step)
	if got := body.Velocity.Y(); math.Abs(got-vy) > 1e-12 {
		t.Fatalf("velocity after one tick = %v, want %v", got, vy)
	}
	if got := body.Position.Y(); math.Abs(got-(y0+vy*step)) > 1e-12 {
		t.Fatalf("height after one tick = %v, want %v", got, y0+vy*step)
	}
}
