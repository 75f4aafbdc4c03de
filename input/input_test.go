package input

import (
	"testing"

	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fires holds d down for n ticks and returns the ticks on which it fired.
func fires(d *Debouncer, n int) []int {
	var out []int
	for tick := range n {
		if d.Tick(true) {
			out = append(out, tick)
		}
	}
	return out
}

func TestDebouncerDelayThenRepeat(t *testing.T) {
	d := NewDebouncer(Repeat{Delay: 8, Rate: 4})

	assert.Equal(t, []int{0, 10, 15, 20}, fires(&d, 21))
	assert.Equal(t, Held, d.State())
	assert.True(t, d.Pressed())
}

func TestDebouncerNoDelay(t *testing.T) {
	d := NewDebouncer(Repeat{Delay: 0, Rate: 4})
	assert.Equal(t, []int{0, 5, 10}, fires(&d, 11))
}

func TestDebouncerStates(t *testing.T) {
	d := NewDebouncer(Repeat{Delay: 2, Rate: 1})
	assert.False(t, d.Pressed())

	require.True(t, d.Tick(true))
	assert.Equal(t, Initiation, d.State())
	assert.Equal(t, uint(0), d.Buffer())

	require.False(t, d.Tick(true))
	require.False(t, d.Tick(true))
	assert.Equal(t, Initiation, d.State())
	require.False(t, d.Tick(true))
	assert.Equal(t, Held, d.State())
	assert.Equal(t, uint(3), d.Buffer())

	require.True(t, d.Tick(true))
	assert.Equal(t, uint(0), d.Buffer())
}

func TestDebouncerRelease(t *testing.T) {
	d := NewDebouncer(Repeat{Delay: 8, Rate: 4})
	fires(&d, 12)
	require.Equal(t, Held, d.State())

	assert.False(t, d.Tick(false))
	assert.False(t, d.Pressed())
	assert.Equal(t, Initiation, d.State())
	assert.Equal(t, uint(0), d.Buffer())

	assert.True(t, d.Tick(true), "a fresh press fires immediately")
	assert.False(t, d.Tick(true))
}

func TestDebouncerTapping(t *testing.T) {
	d := NewDebouncer(Repeat{Delay: 8, Rate: 4})
	count := 0
	for tick := range 10 {
		if d.Tick(tick%2 == 0) {
			count++
		}
	}
	assert.Equal(t, 5, count, "every press fires once")
}

func TestDefaultRepeat(t *testing.T) {
	assert.Equal(t, Repeat{Delay: 8, Rate: 4}, DefaultRepeat(tetris.MoveLeft))
	assert.Equal(t, Repeat{Delay: 8, Rate: 4}, DefaultRepeat(tetris.MoveRight))
	assert.Equal(t, Repeat{Delay: 0, Rate: 4}, DefaultRepeat(tetris.SoftDrop))
	assert.Equal(t, Repeat{Delay: 8, Rate: 8}, DefaultRepeat(tetris.RotateCW))
	assert.Equal(t, Repeat{Delay: 8, Rate: 8}, DefaultRepeat(tetris.HardDrop))
}

func TestControls(t *testing.T) {
	c := NewControls(
		Binding[string]{Key: "left", Action: tetris.MoveLeft, Repeat: DefaultRepeat(tetris.MoveLeft)},
		Binding[string]{Key: "z", Action: tetris.RotateCCW, Repeat: DefaultRepeat(tetris.RotateCCW)},
		Binding[string]{Key: "space", Action: tetris.HardDrop, Repeat: DefaultRepeat(tetris.HardDrop)},
	)
	down := map[string]bool{}
	isDown := func(k string) bool { return down[k] }

	assert.Empty(t, c.Tick(isDown))

	down["space"] = true
	down["left"] = true
	assert.Equal(t, []tetris.Action{tetris.MoveLeft, tetris.HardDrop}, c.Tick(isDown))
	assert.Empty(t, c.Tick(isDown))

	down["space"] = false
	down["z"] = true
	assert.Equal(t, []tetris.Action{tetris.RotateCCW}, c.Tick(isDown))

	keys := c.Keys()
	require.Len(t, keys, 3)
	assert.True(t, keys[0].Pressed())
	assert.False(t, keys[2].Pressed())

	c.Reset()
	for _, k := range c.Keys() {
		assert.False(t, k.Pressed())
	}
	assert.Equal(t, []tetris.Action{tetris.MoveLeft, tetris.RotateCCW}, c.Tick(isDown))
}

func TestControlsDrivesUniverse(t *testing.T) {
	u := tetris.NewUniverse(tetris.WithSeed(4))
	c := NewControls(Binding[string]{Key: "right", Action: tetris.MoveRight, Repeat: DefaultRepeat(tetris.MoveRight)})
	start := u.Focused().Pivot().X

	// Held for 11 ticks: the press and one repeat.
	for range 11 {
		u.Tick(c.Tick(func(string) bool { return true }), false)
	}
	assert.Equal(t, start+2, u.Focused().Pivot().X)
}
