package tetris

import (
	"math/rand/v2"
	"strconv"
)

// Shape identifies one of the seven tetromino variants.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// Shapes lists every variant in declaration order.
var Shapes = [...]Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}

func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	}
	return "Shape(" + strconv.Itoa(int(s)) + ")"
}

// Family groups shapes that share a wall kick table.
type Family uint8

const (
	FamilyJLSTZ Family = iota
	FamilyI
	FamilyO
)

// Family returns the wall kick family of the shape.
func (s Shape) Family() Family {
	switch s {
	case ShapeJ, ShapeL, ShapeS, ShapeT, ShapeZ:
		return FamilyJLSTZ
	case ShapeI:
		return FamilyI
	case ShapeO:
		return FamilyO
	}
	panic("unknown shape " + s.String())
}

// ReferenceCells returns the shape's cells in rotation 0. The first cell is the pivot.
func (s Shape) ReferenceCells() [4]Coord {
	switch s {
	case ShapeI:
		return [4]Coord{{1, 0}, {0, 0}, {2, 0}, {3, 0}}
	case ShapeJ:
		return [4]Coord{{1, 0}, {0, 0}, {2, 0}, {0, 1}}
	case ShapeL:
		return [4]Coord{{1, 0}, {0, 0}, {2, 0}, {2, 1}}
	case ShapeO:
		return [4]Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	case ShapeS:
		return [4]Coord{{1, 0}, {0, 0}, {1, 1}, {2, 1}}
	case ShapeT:
		return [4]Coord{{1, 0}, {0, 0}, {1, 1}, {2, 0}}
	case ShapeZ:
		return [4]Coord{{1, 0}, {2, 0}, {0, 1}, {1, 1}}
	}
	panic("unknown shape " + s.String())
}

// SpawnAnchor returns where the pivot of a freshly spawned piece is placed.
// I and O pieces share one anchor, the JLSTZ family another, both on the
// first hidden row above the visible board.
func (s Shape) SpawnAnchor(dims Dimensions) Coord {
	y := dims.Height + 1
	switch s.Family() {
	case FamilyI, FamilyO:
		return Coord{X: dims.Width/2 - 2, Y: y}
	case FamilyJLSTZ:
		return Coord{X: dims.Width/2 - 1, Y: y}
	}
	panic("unknown shape family")
}

// RandomShape picks a shape uniformly.
func RandomShape(rng *rand.Rand) Shape {
	return Shapes[rng.IntN(len(Shapes))]
}
