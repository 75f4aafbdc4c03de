package tetris

// RotationDirection selects a quarter turn.
type RotationDirection int8

const (
	Clockwise        RotationDirection = 1
	CounterClockwise RotationDirection = -1
)

// Flip returns the opposite direction.
func (d RotationDirection) Flip() RotationDirection {
	return -d
}

// Offset is an (x, y) entry of a wall kick table.
type Offset [2]int

// Wall kick offsets, one row per test and one column per rotation state.
// The kick for a rotation from state a to state b is row[a] - row[b].
var (
	jlstzOffsets = [][orientations]Offset{
		{{0, 0}, {0, 0}, {0, 0}, {0, 0}},
		{{0, 0}, {1, 0}, {0, 0}, {-1, 0}},
		{{0, 0}, {1, -1}, {0, 0}, {-1, -1}},
		{{0, 0}, {0, 2}, {0, 0}, {0, 2}},
		{{0, 0}, {1, 2}, {0, 0}, {-1, 2}},
	}

	iOffsets = [][orientations]Offset{
		{{0, 0}, {-1, 0}, {-1, 1}, {0, 1}},
		{{-1, 0}, {0, 0}, {1, 1}, {0, 1}},
		{{2, 0}, {0, 0}, {-2, 1}, {0, -1}},
		{{-1, 0}, {0, 1}, {1, 0}, {0, -1}},
		{{2, 0}, {0, -2}, {-2, 0}, {0, 2}},
	}

	oOffsets = [][orientations]Offset{
		{{0, 0}, {0, -1}, {-1, -1}, {-1, 0}},
	}
)

// maxKickTests bounds the wall kick search.
const maxKickTests = 5

// KickTable returns the wall kick table of a shape family.
func KickTable(f Family) [][orientations]Offset {
	switch f {
	case FamilyJLSTZ:
		return jlstzOffsets
	case FamilyI:
		return iOffsets
	case FamilyO:
		return oOffsets
	}
	panic("unknown shape family")
}

// rotateAboutPivot turns every cell a quarter turn about cell 0.
func rotateAboutPivot(t Tetromino, dir RotationDirection) []point {
	ps := t.points()
	pivot := ps[0]
	for i := 1; i < len(ps); i++ {
		x, y := ps[i].x-pivot.x, ps[i].y-pivot.y
		if dir == Clockwise {
			x, y = y, -x
		} else {
			x, y = -y, x
		}
		ps[i] = point{x: pivot.x + x, y: pivot.y + y}
	}
	return ps
}

// placeable reports whether every point, moved by kick, is on the board and free.
func placeable(ps []point, kick Offset, dims Dimensions, locked *Stack) bool {
	for _, p := range ps {
		q := p.add(kick[0], kick[1])
		if !dims.Contains(q.x, q.y) || locked.occupiedAt(q) {
			return false
		}
	}
	return true
}

// Rotate turns t a quarter turn in dir and resolves wall kicks against the
// board and the locked stack. The first kick that yields a legal placement is
// used. When every kick fails the rotation is rejected: t is returned
// unchanged with ok set to false.
func Rotate(t Tetromino, dir RotationDirection, dims Dimensions, locked *Stack) (rotated Tetromino, ok bool) {
	if t.n == 0 {
		return t, false
	}

	ps := rotateAboutPivot(t, dir)
	from := t.rotation.Value()
	to := t.rotation.Peek(int(dir))

	table := KickTable(t.shape.Family())
	if len(table) > maxKickTests {
		panic("wall kick table for " + t.shape.String() + " has too many tests")
	}

	for _, row := range table {
		kick := Offset{row[from][0] - row[to][0], row[from][1] - row[to][1]}
		if !placeable(ps, kick, dims, locked) {
			continue
		}
		rotated = t
		for i, p := range ps {
			rotated.cells[i] = p.add(kick[0], kick[1]).coord()
		}
		rotated.rotation.Increment(int(dir))
		return rotated, true
	}

	return t, false
}
