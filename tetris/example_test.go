package tetris_test

import (
	"fmt"
	"testing"

	"github.com/plus3/tetris/tetris"
)

func ExampleSpawn() {
	refs := tetris.ShapeT.ReferenceCells()
	piece := tetris.Spawn(tetris.ShapeT, refs, tetris.Coord{X: 5, Y: 22})
	fmt.Println(piece.Cells())
	// Output: [{5 22} {4 22} {5 23} {6 22}]
}

func ExampleRotate() {
	piece := tetris.Spawn(tetris.ShapeT, tetris.ShapeT.ReferenceCells(), tetris.Coord{X: 5, Y: 10})
	rotated, ok := tetris.Rotate(piece, tetris.Clockwise, tetris.StandardDimensions, tetris.NewStack())
	fmt.Println(rotated.Cells(), rotated.Rotation(), ok)
	// Output: [{5 10} {5 11} {6 10} {5 9}] 1 true
}

func ExampleIncrementFrom() {
	shift := []uint{0, 0, 0, 0, 0}
	tetris.IncrementFrom(shift, 1, 1)
	fmt.Println(shift)
	// Output: [0 1 1 1 1]
}

func ExampleUniverse_Tick() {
	u := tetris.NewUniverse(tetris.WithSeed(1))
	for _, e := range u.Tick([]tetris.Action{tetris.HardDrop}, false) {
		fmt.Println(e.Kind)
	}
	fmt.Println(len(u.Locked()), u.Game().Running())
	// Output:
	// hard-drop
	// piece-locked
	// 1 true
}

func BenchmarkTick(b *testing.B) {
	u := tetris.NewUniverse(tetris.WithSeed(1))
	script := [][]tetris.Action{
		{tetris.MoveLeft},
		{tetris.RotateCW},
		nil,
		{tetris.MoveRight, tetris.MoveRight},
		{tetris.SoftDrop},
		nil,
		{tetris.HardDrop},
	}

	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		u.Tick(script[i%len(script)], !u.Game().Running())
	}
}
