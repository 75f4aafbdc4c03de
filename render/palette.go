// Package render draws a universe with ebiten.
package render

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/plus3/tetris/tetris"
)

// GhostAlpha is the opacity of the landing preview.
const GhostAlpha = 0.4

// Palette assigns a color to the board and to every shape.
type Palette struct {
	Background color.RGBA
	Line       color.RGBA
	Shapes     [len(tetris.Shapes)]color.RGBA
}

// DefaultPalette is the stock color scheme.
var DefaultPalette = Palette{
	Background: mustHex("211A1E"),
	Line:       mustHex("3A5683"),
	Shapes: [len(tetris.Shapes)]color.RGBA{
		tetris.ShapeI: mustHex("34344A"),
		tetris.ShapeJ: mustHex("5BC0EB"),
		tetris.ShapeL: mustHex("FDE74C"),
		tetris.ShapeO: mustHex("D4BEBE"),
		tetris.ShapeS: mustHex("9BC53D"),
		tetris.ShapeT: mustHex("C3423F"),
		tetris.ShapeZ: mustHex("4C6085"),
	},
}

// For returns the color of a shape.
func (p Palette) For(s tetris.Shape) color.RGBA {
	return p.Shapes[s]
}

// Fade scales a color's opacity. The result is premultiplied, as ebiten expects.
func Fade(c color.RGBA, alpha float64) color.RGBA {
	alpha = min(max(alpha, 0), 1)
	scale := func(v uint8) uint8 { return uint8(float64(v)*alpha + 0.5) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}

// ParseHex parses an opaque "RRGGBB" color, with or without a leading '#'.
func ParseHex(s string) (color.RGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func mustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
