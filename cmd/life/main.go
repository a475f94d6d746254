//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"golife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := app.BuildSim(cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("golife — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
