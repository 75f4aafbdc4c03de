package tetris

// Tetromino is a piece on the board. A focused piece always has four cells;
// a locked piece loses cells as rows are cleared. Cell 0 is the rotation pivot.
//
// Tetromino is a value type: copies never share cells.
type Tetromino struct {
	cells    [4]Coord
	n        uint8
	shape    Shape
	rotation CircularNum
}

// Spawn places a piece so that its pivot sits on anchor and every other cell
// keeps its offset from reference cell 0.
func Spawn(shape Shape, refs [4]Coord, anchor Coord) Tetromino {
	t := Tetromino{n: 4, shape: shape}
	origin := pointOf(refs[0])
	base := pointOf(anchor)
	for i, ref := range refs {
		p := pointOf(ref)
		t.cells[i] = base.add(p.x-origin.x, p.y-origin.y).coord()
	}
	return t
}

// SpawnShape spawns a shape at its standard anchor for dims.
func SpawnShape(shape Shape, dims Dimensions) Tetromino {
	return Spawn(shape, shape.ReferenceCells(), shape.SpawnAnchor(dims))
}

// NewTetromino builds a piece from explicit cells. It is mostly useful for
// constructing boards in tests and tools.
func NewTetromino(shape Shape, cells ...Coord) Tetromino {
	if len(cells) > 4 {
		panic("a tetromino has at most four cells")
	}
	t := Tetromino{n: uint8(len(cells)), shape: shape}
	copy(t.cells[:], cells)
	return t
}

// Cells returns the piece's live cells.
func (t Tetromino) Cells() []Coord {
	return t.cells[:t.n]
}

// Len returns the number of live cells.
func (t Tetromino) Len() int {
	return int(t.n)
}

// Pivot returns cell 0.
func (t Tetromino) Pivot() Coord {
	return t.cells[0]
}

// Shape returns the shape tag.
func (t Tetromino) Shape() Shape {
	return t.shape
}

// Rotation returns the current rotation index.
func (t Tetromino) Rotation() uint {
	return t.rotation.Value()
}

// Translated returns the piece moved by (dx, dy). It reports false and
// leaves the piece unchanged when any cell would leave dims.
func (t Tetromino) Translated(dx, dy int, dims Dimensions) (Tetromino, bool) {
	if !WithinBoundary(t, dx, dy, dims) {
		return t, false
	}
	for i := range t.cells[:t.n] {
		t.cells[i] = pointOf(t.cells[i]).add(dx, dy).coord()
	}
	return t, true
}

// points returns the live cells as signed points.
func (t Tetromino) points() []point {
	ps := make([]point, t.n)
	for i, c := range t.cells[:t.n] {
		ps[i] = pointOf(c)
	}
	return ps
}

// retain keeps only the cells for which keep returns true, preserving order.
func (t Tetromino) retain(keep func(Coord) bool) Tetromino {
	var out Tetromino
	out.shape = t.shape
	out.rotation = t.rotation
	for _, c := range t.cells[:t.n] {
		if keep(c) {
			out.cells[out.n] = c
			out.n++
		}
	}
	return out
}
