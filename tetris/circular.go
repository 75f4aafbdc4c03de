package tetris

// orientations is the number of distinct rotation states of a piece.
const orientations = 4

// CircularNum is a rotation index in [0, 4) that wraps in both directions.
// The zero value is rotation 0.
type CircularNum struct {
	n uint8
}

// Value returns the current index.
func (c CircularNum) Value() uint {
	return uint(c.n)
}

// Peek returns the index that Increment(d) would produce without changing c.
func (c CircularNum) Peek(d int) uint {
	return uint(((int(c.n)+d)%orientations + orientations) % orientations)
}

// Increment moves the index by d, wrapping around.
func (c *CircularNum) Increment(d int) {
	c.n = uint8(c.Peek(d))
}
