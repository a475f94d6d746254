package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"math"

	"golife/pkg/core"
)

// ErrNoFrames is returned when encoding a recording without frames.
var ErrNoFrames = errors.New("render: no frames recorded")

// GIFRecorder collects generations as frames of a looping animated GIF.
type GIFRecorder struct {
	w, h    int
	scale   int
	delay   int
	palette color.Palette
	anim    gif.GIF
}

// NewGIFRecorder prepares a recorder for a w×h grid. Every cell becomes a
// scale×scale block and frames play at fps.
func NewGIFRecorder(w, h, scale, fps int, pal Palette) *GIFRecorder {
	if scale <= 0 {
		scale = 1
	}
	if fps <= 0 {
		fps = 15
	}
	delay := int(math.Round(100 / float64(fps)))
	if delay < 2 {
		delay = 2
	}
	return &GIFRecorder{
		w:       w,
		h:       h,
		scale:   scale,
		delay:   delay,
		palette: color.Palette{pal.Off, pal.On},
	}
}

// Delay returns the per-frame delay in hundredths of a second.
func (r *GIFRecorder) Delay() int { return r.delay }

// Len returns the number of recorded frames.
func (r *GIFRecorder) Len() int { return len(r.anim.Image) }

// AddFrame appends the given 0/1 cells as a frame.
func (r *GIFRecorder) AddFrame(cells []uint8) error {
	if len(cells) != r.w*r.h {
		return fmt.Errorf("render: frame has %d cells, want %d", len(cells), r.w*r.h)
	}
	img := image.NewPaletted(image.Rect(0, 0, r.w*r.scale, r.h*r.scale), r.palette)
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			if cells[y*r.w+x] == 0 {
				continue
			}
			for py := y * r.scale; py < (y+1)*r.scale; py++ {
				row := img.Pix[py*img.Stride:]
				for px := x * r.scale; px < (x+1)*r.scale; px++ {
					row[px] = 1
				}
			}
		}
	}
	r.anim.Image = append(r.anim.Image, img)
	r.anim.Delay = append(r.anim.Delay, r.delay)
	return nil
}

// Encode writes the animation to w. The GIF loops forever.
func (r *GIFRecorder) Encode(w io.Writer) error {
	if len(r.anim.Image) == 0 {
		return ErrNoFrames
	}
	r.anim.LoopCount = 0
	if err := gif.EncodeAll(w, &r.anim); err != nil {
		return fmt.Errorf("render: encode gif: %w", err)
	}
	return nil
}

// Record captures frames generations of sim: the current state first, then
// one frame after each step.
func Record(sim core.Sim, rec *GIFRecorder, frames int) error {
	for i := 0; i < frames; i++ {
		if i > 0 {
			sim.Step()
		}
		if err := rec.AddFrame(sim.Cells()); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}
