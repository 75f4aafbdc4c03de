package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetris/tetris"
	"golang.org/x/image/font/basicfont"
)

// View is the read-only state a renderer needs. *tetris.Universe implements it.
type View interface {
	Dimensions() tetris.Dimensions
	Focused() tetris.Tetromino
	Ghost() tetris.Tetromino
	Locked() []tetris.Tetromino
	Game() tetris.Game
}

// Layer orders cells from back to front.
type Layer uint8

const (
	LayerLocked Layer = iota
	LayerGhost
	LayerFocused
)

// Cell is one filled square to draw.
type Cell struct {
	Coord tetris.Coord
	Color color.RGBA
	Layer Layer
}

// Cells lists everything to draw, back to front: the locked stack, the
// ghost, then the focused piece.
func Cells(v View, p Palette) []Cell {
	locked := v.Locked()
	out := make([]Cell, 0, 4*len(locked)+8)
	for _, t := range locked {
		for _, c := range t.Cells() {
			out = append(out, Cell{Coord: c, Color: p.For(t.Shape()), Layer: LayerLocked})
		}
	}

	ghost := v.Ghost()
	for _, c := range ghost.Cells() {
		out = append(out, Cell{Coord: c, Color: Fade(p.For(ghost.Shape()), GhostAlpha), Layer: LayerGhost})
	}

	focused := v.Focused()
	for _, c := range focused.Cells() {
		out = append(out, Cell{Coord: c, Color: p.For(focused.Shape()), Layer: LayerFocused})
	}
	return out
}

// HUD returns the status lines shown next to the board.
func HUD(g tetris.Game) []string {
	if !g.Running() {
		return []string{"GAME OVER", `Press "r" to restart`, fmt.Sprintf("score: %d", g.Score())}
	}
	return []string{
		fmt.Sprintf("LEVEL: %d", g.Level()),
		fmt.Sprintf("score: %d", g.Score()),
		fmt.Sprintf("lines: %d", g.LinesCleared()),
	}
}

// Renderer draws a View onto an ebiten image.
type Renderer struct {
	Palette Palette
	face    text.Face
}

// NewRenderer creates a renderer with the given palette.
func NewRenderer(p Palette) *Renderer {
	return &Renderer{
		Palette: p,
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw renders the whole frame.
func (r *Renderer) Draw(screen *ebiten.Image, v View) {
	bounds := screen.Bounds()
	layout := NewLayout(bounds.Dx(), bounds.Dy(), v.Dimensions())

	screen.Fill(r.Palette.Background)
	vector.StrokeRect(screen, layout.Left-1, layout.Top-1, layout.Width()+2, layout.Height()+2, 2, r.Palette.Line, false)

	inset := max(layout.Cell/16, 1)
	for _, cell := range Cells(v, r.Palette) {
		x, y, ok := layout.CellRect(cell.Coord)
		if !ok {
			continue
		}
		vector.DrawFilledRect(screen, x+inset, y+inset, layout.Cell-2*inset, layout.Cell-2*inset, cell.Color, false)
	}

	r.drawHUD(screen, layout, v.Game())
}

func (r *Renderer) drawHUD(screen *ebiten.Image, layout Layout, g tetris.Game) {
	scale := float64(max(layout.Cell/16, 1))
	lineHeight := 16 * scale

	x := float64(layout.Left+layout.Width()) + lineHeight
	y := float64(layout.Top)
	if !g.Running() {
		x = float64(layout.Left) + lineHeight
		y = float64(layout.Top+layout.Height()/2) - lineHeight
	}

	for i, line := range HUD(g) {
		opts := &text.DrawOptions{}
		opts.GeoM.Scale(scale, scale)
		opts.GeoM.Translate(x, y+float64(i)*lineHeight*1.5)
		clr := r.Palette.Line
		if !g.Running() && i == 0 {
			clr = r.Palette.For(tetris.ShapeT)
		}
		opts.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, line, r.face, opts)
	}
}
