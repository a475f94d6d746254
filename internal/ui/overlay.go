//go:build ebiten

package ui

import (
	"image/color"

	"golife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional cell grid lines on top of the simulation.
type Overlay struct {
	sim       core.Sim
	scale     int
	showLines bool
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the grid lines with the G key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showLines = !o.showLines
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showLines || o.scale < 3 {
		return
	}
	size := o.sim.Size()
	w, h := float64(size.W*o.scale), float64(size.H*o.scale)
	line := color.RGBA{R: 40, G: 40, B: 48, A: 160}

	for x := 0; x <= size.W; x++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1, h)
		op.GeoM.Translate(float64(x*o.scale), 0)
		op.ColorScale.ScaleWithColor(line)
		screen.DrawImage(o.pixel, op)
	}
	for y := 0; y <= size.H; y++ {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w, 1)
		op.GeoM.Translate(0, float64(y*o.scale))
		op.ColorScale.ScaleWithColor(line)
		screen.DrawImage(o.pixel, op)
	}
}
