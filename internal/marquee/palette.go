package marquee

import (
	"fmt"
	"image/color"
)

// Color is a named palette entry.
type Color struct {
	Name string
	RGBA color.RGBA
}

// Hex returns the colour as #RRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.RGBA.R, c.RGBA.G, c.RGBA.B)
}

// Palette is a fixed, ordered list of colours. The zero value is empty;
// use DefaultPalette or NewPalette.
type Palette struct {
	colors []Color
}

// NewPalette copies colors into a new palette. It panics on an empty list
// since rotation over zero colours is undefined.
func NewPalette(colors ...Color) Palette {
	if len(colors) == 0 {
		panic("marquee: empty palette")
	}
	return Palette{colors: append([]Color(nil), colors...)}
}

// Len returns the number of colours.
func (p Palette) Len() int { return len(p.colors) }

// At returns the colour at index i.
func (p Palette) At(i int) Color { return p.colors[i] }

// Colors returns a copy of the palette entries.
func (p Palette) Colors() []Color {
	return append([]Color(nil), p.colors...)
}

var defaultPalette = NewPalette(
	Color{Name: "red", RGBA: color.RGBA{R: 0xFF, A: 0xFF}},
	Color{Name: "blue", RGBA: color.RGBA{B: 0xFF, A: 0xFF}},
	Color{Name: "green", RGBA: color.RGBA{G: 0x80, A: 0xFF}},
	Color{Name: "yellow", RGBA: color.RGBA{R: 0xFF, G: 0xFF, A: 0xFF}},
	Color{Name: "violet", RGBA: color.RGBA{R: 0xEE, G: 0x82, B: 0xEE, A: 0xFF}},
	Color{Name: "orange", RGBA: color.RGBA{R: 0xFF, G: 0xA5, A: 0xFF}},
)

// DefaultPalette returns red, blue, green, yellow, violet, orange with
// their CSS values.
func DefaultPalette() Palette { return defaultPalette }
