package main

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/render"
	"github.com/plus3/tetris/tetris"
)

// cellWidth is the number of terminal columns per board cell.
const cellWidth = 2

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

type board struct {
	screen  tcell.Screen
	palette render.Palette
}

// origin centres the framed board on screen.
func (b *board) origin(dims tetris.Dimensions) (int, int) {
	w, h := b.screen.Size()
	left := (w - int(dims.Width)*cellWidth - 2) / 2
	top := (h - int(dims.Height) - 2) / 2
	return max(left, 0), max(top, 0)
}

func (b *board) draw(v render.View) {
	dims := v.Dimensions()
	bg := tcell.StyleDefault.Background(rgb(b.palette.Background))
	frame := bg.Foreground(rgb(b.palette.Line))

	b.screen.Fill(' ', bg)
	left, top := b.origin(dims)
	width, height := int(dims.Width)*cellWidth, int(dims.Height)

	for x := 0; x <= width+1; x++ {
		b.screen.SetContent(left+x, top, '─', nil, frame)
		b.screen.SetContent(left+x, top+height+1, '─', nil, frame)
	}
	for y := 0; y <= height+1; y++ {
		b.screen.SetContent(left, top+y, '│', nil, frame)
		b.screen.SetContent(left+width+1, top+y, '│', nil, frame)
	}
	b.screen.SetContent(left, top, '┌', nil, frame)
	b.screen.SetContent(left+width+1, top, '┐', nil, frame)
	b.screen.SetContent(left, top+height+1, '└', nil, frame)
	b.screen.SetContent(left+width+1, top+height+1, '┘', nil, frame)

	for _, cell := range render.Cells(v, b.palette) {
		if cell.Coord.Y >= dims.Height {
			continue
		}
		style := bg.Background(rgb(cell.Color))
		row := top + 1 + height - 1 - int(cell.Coord.Y)
		col := left + 1 + int(cell.Coord.X)*cellWidth
		for i := range cellWidth {
			b.screen.SetContent(col+i, row, ' ', nil, style)
		}
	}

	g := v.Game()
	hud := frame
	if !g.Running() {
		hud = hud.Foreground(rgb(b.palette.For(tetris.ShapeT))).Bold(true)
	}
	for i, line := range render.HUD(g) {
		b.text(left+width+4, top+1+2*i, line, hud)
	}
	b.text(left, top+height+3, "←/→ move  ↓ drop  z/c rotate  space hard drop  m mute  q quit", frame.Dim(true))

	b.screen.Show()
}

func (b *board) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		b.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
