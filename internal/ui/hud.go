//go:build ebiten

package ui

import (
	"image/color"

	"golife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudHeight  = 18
	hudPadding = 4
)

// HUD renders a status strip with the generation and population counters.
type HUD struct {
	sim   core.Sim
	pixel *ebiten.Image
	line  string
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update refreshes the status text.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.line = StatusLine(h.sim, paused)
}

// Draw paints the HUD strip across the top of the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.line == "" {
		return
	}
	width := screen.Bounds().Dx()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), hudHeight)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	screen.DrawImage(h.pixel, op)
	text.Draw(screen, h.line, basicfont.Face7x13, hudPadding, hudHeight-hudPadding-1, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}
