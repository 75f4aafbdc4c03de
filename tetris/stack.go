package tetris

import (
	"errors"
	"fmt"
	"slices"

	"github.com/kamstrup/intmap"
)

var (
	// ErrOutOfBounds is reported by Validate for a locked cell outside the board.
	ErrOutOfBounds = errors.New("locked cell out of bounds")
	// ErrOverlap is reported by Validate when two locked cells share a coordinate.
	ErrOverlap = errors.New("locked cells overlap")
)

// Stack is the collection of locked pieces together with an occupancy index
// used for constant time collision lookups.
type Stack struct {
	pieces   []Tetromino
	occupied *intmap.Map[uint64, Shape]
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{
		occupied: intmap.New[uint64, Shape](256),
	}
}

// Pieces returns a copy of the locked pieces, oldest first.
func (s *Stack) Pieces() []Tetromino {
	return slices.Clone(s.pieces)
}

// Len returns the number of locked pieces that still have cells.
func (s *Stack) Len() int {
	return len(s.pieces)
}

// CellCount returns the number of occupied cells.
func (s *Stack) CellCount() int {
	return s.occupied.Len()
}

// ShapeAt returns the shape of the piece occupying c, if any.
func (s *Stack) ShapeAt(c Coord) (Shape, bool) {
	return s.occupied.Get(c.key())
}

func (s *Stack) occupiedAt(p point) bool {
	if p.x < 0 || p.y < 0 {
		return false
	}
	_, ok := s.occupied.Get(p.coord().key())
	return ok
}

// Lock appends a piece to the stack.
func (s *Stack) Lock(t Tetromino) {
	s.pieces = append(s.pieces, t)
	for _, c := range t.Cells() {
		s.occupied.Put(c.key(), t.shape)
	}
}

// Reset removes every locked piece.
func (s *Stack) Reset() {
	s.pieces = s.pieces[:0]
	s.occupied.Clear()
}

func (s *Stack) rebuild() {
	s.occupied.Clear()
	for _, t := range s.pieces {
		for _, c := range t.Cells() {
			s.occupied.Put(c.key(), t.shape)
		}
	}
}

// RowCounts returns the number of locked cells on every row of the board,
// spawn buffer included.
func (s *Stack) RowCounts(dims Dimensions) []uint {
	counts := make([]uint, dims.Rows())
	for _, t := range s.pieces {
		for _, c := range t.Cells() {
			if c.Y < uint(len(counts)) {
				counts[c.Y]++
			}
		}
	}
	return counts
}

// FullRows returns, in ascending order, the rows holding dims.Width locked cells.
func (s *Stack) FullRows(dims Dimensions) []uint {
	var full []uint
	for y, n := range s.RowCounts(dims) {
		if n == dims.Width {
			full = append(full, uint(y))
		}
	}
	return full
}

// Validate checks that every locked cell is on the board and that no two
// locked cells share a coordinate.
func (s *Stack) Validate(dims Dimensions) error {
	seen := intmap.New[uint64, struct{}](s.occupied.Len())
	for i, t := range s.pieces {
		if t.n == 0 {
			return fmt.Errorf("piece %d (%s): empty piece kept in stack", i, t.shape)
		}
		for _, c := range t.Cells() {
			if !dims.Contains(int(c.X), int(c.Y)) {
				return fmt.Errorf("piece %d (%s) at (%d,%d): %w", i, t.shape, c.X, c.Y, ErrOutOfBounds)
			}
			if _, dup := seen.Get(c.key()); dup {
				return fmt.Errorf("piece %d (%s) at (%d,%d): %w", i, t.shape, c.X, c.Y, ErrOverlap)
			}
			seen.Put(c.key(), struct{}{})
		}
	}
	if seen.Len() != s.occupied.Len() {
		return fmt.Errorf("occupancy index holds %d cells, pieces hold %d", s.occupied.Len(), seen.Len())
	}
	return nil
}
