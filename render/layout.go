package render

import (
	"github.com/plus3/tetris/tetris"
)

// LetterboxRatio is the share of the screen width given to the board.
const LetterboxRatio = 9.0 / 32.0

// Layout maps board cells to screen pixels. The board is centered
// horizontally inside a letterbox and fills the screen height when it can.
type Layout struct {
	ScreenW, ScreenH float32
	// Left and Top are the board's top-left corner in pixels.
	Left, Top float32
	Cell      float32
	dims      tetris.Dimensions
}

// NewLayout computes the layout of a board of dims on a screen.
func NewLayout(screenW, screenH int, dims tetris.Dimensions) Layout {
	w, h := float32(screenW), float32(screenH)
	boxW := w * LetterboxRatio

	cell := min(boxW/float32(dims.Width), h/float32(dims.Height))
	boardW := cell * float32(dims.Width)
	boardH := cell * float32(dims.Height)

	return Layout{
		ScreenW: w,
		ScreenH: h,
		Left:    (w - boardW) / 2,
		Top:     (h - boardH) / 2,
		Cell:    cell,
		dims:    dims,
	}
}

// Width returns the board width in pixels.
func (l Layout) Width() float32 {
	return l.Cell * float32(l.dims.Width)
}

// Height returns the board height in pixels.
func (l Layout) Height() float32 {
	return l.Cell * float32(l.dims.Height)
}

// CellRect returns the top-left corner of a cell. Cells in the spawn buffer
// above the visible board are not drawn and report false.
func (l Layout) CellRect(c tetris.Coord) (x, y float32, visible bool) {
	if c.Y >= l.dims.Height || c.X >= l.dims.Width {
		return 0, 0, false
	}
	x = l.Left + float32(c.X)*l.Cell
	y = l.Top + float32(l.dims.Height-1-c.Y)*l.Cell
	return x, y, true
}
