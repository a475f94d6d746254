// Package term renders a simulation in a terminal using tcell.
package term

import (
	"context"
	"time"

	"golife/internal/render"
	"golife/internal/ui"
	"golife/pkg/core"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond

// Options controls the terminal frontend.
type Options struct {
	TPS         int
	Seed        int64
	Generations int
	Palette     render.Palette
}

// Terminal draws each cell as two character cells coloured by state.
type Terminal struct {
	screen tcell.Screen
	sim    core.Sim
	opts   Options
	ticker *core.FixedStep

	alive tcell.Style
	dead  tcell.Style
	text  tcell.Style

	paused   bool
	tickOnce bool
	steps    int
}

// New binds sim to an initialised screen.
func New(screen tcell.Screen, sim core.Sim, opts Options) *Terminal {
	on, off := opts.Palette.On, opts.Palette.Off
	return &Terminal{
		screen: screen,
		sim:    sim,
		opts:   opts,
		ticker: core.NewFixedStep(opts.TPS),
		alive:  tcell.StyleDefault.Background(tcell.NewRGBColor(int32(on.R), int32(on.G), int32(on.B))),
		dead:   tcell.StyleDefault.Background(tcell.NewRGBColor(int32(off.R), int32(off.G), int32(off.B))),
		text:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
}

// Run drives the simulation until the user quits, ctx is done or the
// generation limit is reached.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	frames := time.NewTicker(min(frameInterval, t.ticker.Interval()))
	defer frames.Stop()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if t.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
			t.Draw()
		case <-frames.C:
			if !t.advance() {
				continue
			}
			t.Draw()
			if t.opts.Generations > 0 && t.steps >= t.opts.Generations {
				return nil
			}
		}
	}
}

// advance steps the sim when due and reports whether it changed.
func (t *Terminal) advance() bool {
	due := t.ticker.ShouldStep()
	if t.tickOnce || (!t.paused && due) {
		t.sim.Step()
		t.steps++
		t.tickOnce = false
		return true
	}
	return false
}

// HandleKey applies a key press and reports whether the user asked to quit.
func (t *Terminal) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		t.paused = false
		return false
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case ' ':
		t.paused = !t.paused
	case 'n', 'N':
		t.tickOnce = true
	case 'r', 'R':
		t.reset(t.opts.Seed)
	case 's', 'S':
		t.reset(time.Now().UnixNano())
	}
	return false
}

// Paused reports whether automatic stepping is suspended.
func (t *Terminal) Paused() bool { return t.paused }

func (t *Terminal) reset(seed int64) {
	t.opts.Seed = seed
	t.sim.Reset(seed)
	t.steps = 0
	t.tickOnce = false
}

// Draw paints the current generation and a status line below it.
func (t *Terminal) Draw() {
	t.screen.Clear()
	size := t.sim.Size()
	cells := t.sim.Cells()
	sw, sh := t.screen.Size()
	for y := 0; y < size.H && y < sh; y++ {
		for x := 0; x < size.W && 2*x+1 < sw; x++ {
			style := t.dead
			if cells[y*size.W+x] != 0 {
				style = t.alive
			}
			t.screen.SetContent(2*x, y, ' ', nil, style)
			t.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}
	if size.H < sh {
		for i, r := range ui.StatusLine(t.sim, t.paused) {
			if i >= sw {
				break
			}
			t.screen.SetContent(i, size.H, r, nil, t.text)
		}
	}
	t.screen.Show()
}
