package debugui

import (
	"fmt"
	"strings"

	"github.com/plus3/tetris/tetris"
)

// PieceRow is one line of the locked piece table.
type PieceRow struct {
	Index int
	Shape string
	Cells string
}

// Snapshot is a text rendering of a universe for the inspector window.
type Snapshot struct {
	Running      bool
	Score        uint
	Level        uint
	LinesCleared uint
	Ticks        uint
	FallEvery    uint

	Focused  string
	Rotation uint
	Ghost    string
	Drop     uint

	Pieces    []PieceRow
	CellCount int
	// RowFill is the share of each visible row that is occupied, bottom row first.
	RowFill []float32
	// Problem is the stack validation error, if any.
	Problem string
}

// TakeSnapshot captures everything the inspector shows.
func TakeSnapshot(u *tetris.Universe) Snapshot {
	g := u.Game()
	dims := u.Dimensions()
	focused, ghost := u.Focused(), u.Ghost()

	s := Snapshot{
		Running:      g.Running(),
		Score:        g.Score(),
		Level:        g.Level(),
		LinesCleared: g.LinesCleared(),
		Ticks:        g.Ticks(),
		FallEvery:    tetris.FramesPerRow(g.Level()),
		Focused:      focused.Shape().String() + " " + formatCells(focused.Cells()),
		Rotation:     focused.Rotation(),
		Ghost:        formatCells(ghost.Cells()),
		Drop:         focused.Pivot().Y - ghost.Pivot().Y,
	}

	for i, t := range u.Locked() {
		s.Pieces = append(s.Pieces, PieceRow{Index: i, Shape: t.Shape().String(), Cells: formatCells(t.Cells())})
		s.CellCount += t.Len()
	}

	counts := u.RowCounts()
	s.RowFill = make([]float32, dims.Height)
	for y := range s.RowFill {
		s.RowFill[y] = float32(counts[y]) / float32(dims.Width)
	}

	if err := u.Validate(); err != nil {
		s.Problem = err.Error()
	}
	return s
}

func formatCells(cells []tetris.Coord) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprintf("(%d,%d)", c.X, c.Y)
	}
	return strings.Join(parts, " ")
}
