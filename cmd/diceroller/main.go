//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"dmscreen/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game, err := app.New(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	if err := game.Run("dmscreen - dice tray"); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
