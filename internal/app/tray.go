package app

import (
	"fmt"
	"log"

	"dmscreen/internal/dice"
)

// NewTray validates c and builds a tray with the configured starting dice.
func NewTray(c *Config, logger *log.Logger) (*dice.Tray, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	seed, err := c.ResolveSeed()
	if err != nil {
		return nil, fmt.Errorf("new tray: %w", err)
	}
	tray, err := dice.New(dice.Config{
		Canvas: c.Canvas(),
		Seed:   seed,
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("new tray: %w", err)
	}
	for _, name := range c.Dice {
		if _, err := tray.Spawn(name); err != nil {
			return nil, fmt.Errorf("starting dice: %w", err)
		}
	}
	return tray, nil
}
