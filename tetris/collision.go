package tetris

// WithinBoundary reports whether every cell of t, moved by (dx, dy), lies in
// [0, Width) x [0, Height+SpawnBuffer).
func WithinBoundary(t Tetromino, dx, dy int, dims Dimensions) bool {
	for _, c := range t.Cells() {
		p := pointOf(c).add(dx, dy)
		if !dims.Contains(p.x, p.y) {
			return false
		}
	}
	return true
}

// Collides reports whether any cell of t, moved by (dx, dy), is occupied by a
// locked cell. Cells that would leave the board never collide; pair this with
// WithinBoundary.
func Collides(t Tetromino, dx, dy int, locked *Stack) bool {
	for _, c := range t.Cells() {
		p := pointOf(c).add(dx, dy)
		if locked.occupiedAt(p) {
			return true
		}
	}
	return false
}

// canPlace is the combined legality test used for every move.
func canPlace(t Tetromino, dx, dy int, dims Dimensions, locked *Stack) bool {
	return WithinBoundary(t, dx, dy, dims) && !Collides(t, dx, dy, locked)
}
