package tetris

// SpawnBuffer is the number of hidden rows above the visible board in which
// pieces may spawn and rotate.
const SpawnBuffer = 4

// Coord is a grid cell. The origin is the bottom-left corner and y grows upwards.
type Coord struct {
	X, Y uint
}

// key packs a coordinate into a single integer, x in the upper 32 bits and y in the lower 32 bits
func (c Coord) key() uint64 {
	return uint64(uint32(c.X))<<32 | uint64(uint32(c.Y))
}

// Dimensions is the size of the visible board.
type Dimensions struct {
	Width  uint
	Height uint
}

// StandardDimensions is the classic 10x20 board.
var StandardDimensions = Dimensions{Width: 10, Height: 20}

// Rows returns the number of rows cells may occupy, including the spawn buffer.
func (d Dimensions) Rows() uint {
	return d.Height + SpawnBuffer
}

// Contains reports whether the signed cell (x, y) lies inside the board and its spawn buffer.
func (d Dimensions) Contains(x, y int) bool {
	return x >= 0 && x < int(d.Width) && y >= 0 && y < int(d.Rows())
}

// point is a signed cell used for intermediate arithmetic before it is
// checked against the board and committed to a Coord.
type point struct {
	x, y int
}

func pointOf(c Coord) point {
	return point{x: int(c.X), y: int(c.Y)}
}

func (p point) add(dx, dy int) point {
	return point{x: p.x + dx, y: p.y + dy}
}

// coord converts a point that has already been bounds checked.
func (p point) coord() Coord {
	return Coord{X: uint(p.x), Y: uint(p.y)}
}
