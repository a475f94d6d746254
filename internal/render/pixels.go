package render

import "image/color"

// Palette maps the two cell states to colours.
type Palette struct {
	On  color.RGBA
	Off color.RGBA
}

// Cividis approximates the two ends of matplotlib's cividis colour map.
var Cividis = Palette{
	On:  color.RGBA{R: 254, G: 232, B: 56, A: 255},
	Off: color.RGBA{R: 0, G: 34, B: 78, A: 255},
}

// Mono draws live cells white on black.
var Mono = Palette{
	On:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Off: color.RGBA{A: 255},
}

// PaletteByName resolves a palette name, falling back to Cividis.
func PaletteByName(name string) Palette {
	if name == "mono" {
		return Mono
	}
	return Cividis
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
