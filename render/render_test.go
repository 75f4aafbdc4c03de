package render

import (
	"image/color"
	"testing"

	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#C3423F")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xc3, G: 0x42, B: 0x3f, A: 0xff}, c)

	_, err = ParseHex("12345")
	assert.Error(t, err)
	_, err = ParseHex("zzzzzz")
	assert.Error(t, err)
}

func TestDefaultPaletteIsDistinct(t *testing.T) {
	seen := map[color.RGBA]tetris.Shape{}
	for _, s := range tetris.Shapes {
		c := DefaultPalette.For(s)
		assert.Equal(t, uint8(0xff), c.A, s.String())
		if prev, dup := seen[c]; dup {
			t.Errorf("%s and %s share a color", prev, s)
		}
		seen[c] = s
	}
}

func TestFade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 0, A: 255}
	assert.Equal(t, color.RGBA{R: 80, G: 40, B: 0, A: 102}, Fade(c, GhostAlpha))
	assert.Equal(t, c, Fade(c, 2))
	assert.Equal(t, color.RGBA{}, Fade(c, -1))
}

func TestLayout(t *testing.T) {
	dims := tetris.StandardDimensions

	t.Run("wide screen is height bound", func(t *testing.T) {
		l := NewLayout(1600, 900, dims)
		assert.InDelta(t, 45, l.Cell, 1e-4)
		assert.InDelta(t, 575, l.Left, 1e-3)
		assert.InDelta(t, 0, l.Top, 1e-3)
	})

	t.Run("narrow screen is letterbox bound", func(t *testing.T) {
		l := NewLayout(320, 900, dims)
		assert.InDelta(t, 9, l.Cell, 1e-4)
		assert.InDelta(t, 360, l.Top, 1e-3)
	})

	t.Run("cells", func(t *testing.T) {
		l := NewLayout(1600, 900, dims)

		x, y, ok := l.CellRect(tetris.Coord{X: 0, Y: 0})
		require.True(t, ok)
		assert.InDelta(t, l.Left, x, 1e-3)
		assert.InDelta(t, l.Top+19*l.Cell, y, 1e-3, "row 0 is at the bottom")

		x, y, ok = l.CellRect(tetris.Coord{X: 9, Y: 19})
		require.True(t, ok)
		assert.InDelta(t, l.Left+9*l.Cell, x, 1e-3)
		assert.InDelta(t, l.Top, y, 1e-3)

		_, _, ok = l.CellRect(tetris.Coord{X: 3, Y: 20})
		assert.False(t, ok, "spawn buffer rows are hidden")
	})
}

func TestCells(t *testing.T) {
	u := tetris.NewUniverse(tetris.WithSeed(3))
	u.Tick([]tetris.Action{tetris.HardDrop}, false)

	cells := Cells(u, DefaultPalette)
	require.Len(t, cells, 12)

	for i, c := range cells {
		switch {
		case i < 4:
			assert.Equal(t, LayerLocked, c.Layer)
			assert.Equal(t, DefaultPalette.For(u.Locked()[0].Shape()), c.Color)
		case i < 8:
			assert.Equal(t, LayerGhost, c.Layer)
			assert.Equal(t, Fade(DefaultPalette.For(u.Ghost().Shape()), GhostAlpha), c.Color)
		default:
			assert.Equal(t, LayerFocused, c.Layer)
			assert.Equal(t, DefaultPalette.For(u.Focused().Shape()), c.Color)
		}
	}
}

func TestHUD(t *testing.T) {
	g := tetris.NewGame()
	g.AddClearedRows(2)
	assert.Equal(t, []string{"LEVEL: 0", "score: 100", "lines: 2"}, HUD(g))

	g.End()
	assert.Equal(t, "GAME OVER", HUD(g)[0])
	assert.Contains(t, HUD(g)[1], "restart")
}
