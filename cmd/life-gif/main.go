package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"golife/internal/app"
	"golife/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Frames <= 0 {
		log.Fatalf("frames must be positive, got %d", cfg.Frames)
	}
	sim, err := app.BuildSim(cfg)
	if err != nil {
		log.Fatal(err)
	}

	size := sim.Size()
	rec := render.NewGIFRecorder(size.W, size.H, cfg.Scale, cfg.FPS, render.PaletteByName(cfg.Palette))
	if err := render.Record(sim, rec, cfg.Frames); err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(cfg.Out)
	if err != nil {
		log.Fatal(err)
	}
	w := bufio.NewWriter(f)
	if err := rec.Encode(w); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d frames of %dx%d %s to %s (seed %d)", rec.Len(), size.W, size.H, sim.Name(), cfg.Out, cfg.Seed)
}
