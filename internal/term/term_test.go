package term

import (
	"context"
	"testing"
	"time"

	"golife/internal/render"
	"golife/pkg/life"
	"golife/pkg/sims/conway"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func blinker(t *testing.T) *conway.Life {
	t.Helper()
	cfg := conway.DefaultConfig()
	cfg.Rows, cfg.Cols = 5, 5
	cfg.Pattern = life.Blinker
	sim, err := conway.NewWithConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	sim.Reset(0)
	return sim
}

func background(t *testing.T, screen tcell.SimulationScreen, x, y int) tcell.Color {
	t.Helper()
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestDrawColoursCells(t *testing.T) {
	screen := newScreen(t, 20, 8)
	sim := blinker(t)
	term := New(screen, sim, Options{TPS: 10, Palette: render.Cividis})
	term.Draw()

	on := tcell.NewRGBColor(254, 232, 56)
	off := tcell.NewRGBColor(0, 34, 78)

	// Cell (x=1, y=2) is alive and spans columns 2 and 3.
	if bg := background(t, screen, 2, 2); bg != on {
		t.Fatalf("alive cell background=%v, expected %v", bg, on)
	}
	if bg := background(t, screen, 3, 2); bg != on {
		t.Fatalf("alive cell second column background=%v, expected %v", bg, on)
	}
	if bg := background(t, screen, 4, 1); bg != off {
		t.Fatalf("dead cell background=%v, expected %v", bg, off)
	}

	mainc, _, _, _ := screen.GetContent(0, 5)
	if mainc != 'l' {
		t.Fatalf("status line starts with %q, expected 'l'", mainc)
	}
}

func TestHandleKey(t *testing.T) {
	screen := newScreen(t, 20, 8)
	sim := blinker(t)
	term := New(screen, sim, Options{TPS: 10, Seed: 3, Palette: render.Mono})

	if term.HandleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("space should not quit")
	}
	if !term.Paused() {
		t.Fatal("space should pause")
	}
	term.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone))
	if !term.advance() {
		t.Fatal("n should step once while paused")
	}
	if sim.Generation() != 1 {
		t.Fatalf("generation=%d, expected 1", sim.Generation())
	}
	term.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if sim.Generation() != 0 {
		t.Fatalf("generation=%d after reset, expected 0", sim.Generation())
	}
	term.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if term.Paused() {
		t.Fatal("enter should resume")
	}

	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		if !term.HandleKey(ev) {
			t.Fatalf("key %v should quit", ev.Name())
		}
	}
}

func TestRunStopsAtGenerationLimit(t *testing.T) {
	screen := newScreen(t, 20, 8)
	sim := blinker(t)
	term := New(screen, sim, Options{TPS: 1000, Generations: 4, Palette: render.Cividis})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := term.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if sim.Generation() != 4 {
		t.Fatalf("generation=%d, expected 4", sim.Generation())
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	screen := newScreen(t, 20, 8)
	sim := blinker(t)
	term := New(screen, sim, Options{TPS: 1, Palette: render.Cividis})

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := term.Run(ctx); err != nil {
		t.Fatalf("run returned %v, expected a clean quit", err)
	}
}

func TestRunHonoursContext(t *testing.T) {
	screen := newScreen(t, 20, 8)
	term := New(screen, blinker(t), Options{TPS: 1, Palette: render.Cividis})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := term.Run(ctx); err != context.Canceled {
		t.Fatalf("run returned %v, expected context.Canceled", err)
	}
}
