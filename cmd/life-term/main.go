package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"golife/internal/app"
	"golife/internal/render"
	"golife/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := app.BuildSim(cfg)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	t := term.New(screen, sim, term.Options{
		TPS:         cfg.TPS,
		Seed:        cfg.Seed,
		Generations: cfg.Generations,
		Palette:     render.PaletteByName(cfg.Palette),
	})
	err = t.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
