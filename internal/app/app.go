//go:build ebiten

package app

import (
	"time"

	"golife/internal/render"
	"golife/internal/ui"
	"golife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette render.Palette

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	limit    int
	steps    int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		sim:     sim,
		painter: gp,
		overlay: ui.NewOverlay(sim, cfg.Scale),
		hud:     ui.NewHUD(sim),
		palette: render.PaletteByName(cfg.Palette),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
		limit:   cfg.Generations,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.steps = 0
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	if g.limit > 0 && g.steps >= g.limit {
		g.paused = true
	}
	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.steps++
		g.tickOnce = false
	}
	g.hud.Update(g.paused)
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette.On, g.palette.Off, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
