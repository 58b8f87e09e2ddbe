package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"dmscreen/internal/core"

	"github.com/caarlos0/env/v11"
)

var (
	// ErrAlreadyRunning is returned when Run is called on a game whose loop is
	// already active.
	ErrAlreadyRunning = errors.New("game loop already running")
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config represents the command-line and environment parameters for the
// application. Flags override the environment, which overrides the defaults.
type Config struct {
	Width      int      `env:"DMSCREEN_WIDTH"`
	Height     int      `env:"DMSCREEN_HEIGHT"`
	PanelWidth int      `env:"DMSCREEN_PANEL_WIDTH"`
	TPS        int      `env:"DMSCREEN_TPS"`
	Seed       int64    `env:"DMSCREEN_SEED"`
	Debug      bool     `env:"DMSCREEN_DEBUG"`
	Dice       []string `env:"DMSCREEN_DICE" envSeparator:","`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 600, Height: 400, PanelWidth: 220, TPS: 60}
}

// ParseEnv overlays environment variables onto c.
func ParseEnv(c *Config) error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadConfig returns the defaults with the environment applied.
func LoadConfig() (*Config, error) {
	c := NewConfig()
	if err := ParseEnv(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "tray canvas width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "tray canvas height in pixels")
	fs.IntVar(&c.PanelWidth, "panel", c.PanelWidth, "control panel width in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks a fresh one)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "start with the collision overlay visible")
	fs.Func("dice", "comma separated dice to place at start, e.g. d20,d6", func(s string) error {
		c.Dice = splitList(s)
		return nil
	})
}

// Canvas reports the tray drawing surface size.
func (c *Config) Canvas() core.Size {
	return core.Size{W: c.Width, H: c.Height}
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.PanelWidth < 0:
		return fmt.Errorf("%w: panel width %d", ErrInvalidConfig, c.PanelWidth)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	}
	return nil
}

// ResolveSeed returns the configured seed, drawing a fresh one when it is 0.
func (c *Config) ResolveSeed() (int64, error) {
	if c.Seed != 0 {
		return c.Seed, nil
	}
	seed, err := core.NewSeed()
	if err != nil {
		return 0, err
	}
	c.Seed = seed
	return seed, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
