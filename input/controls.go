// Package input converts raw per-tick key levels into the discrete actions
// consumed by tetris.Universe.Tick.
package input

import (
	"github.com/plus3/tetris/tetris"
)

// DefaultRepeat returns the stock repeat timing for an action. Sideways
// movement repeats quickly after a short delay, soft drop repeats without a
// delay, rotations and hard drop repeat slowly.
func DefaultRepeat(a tetris.Action) Repeat {
	switch a {
	case tetris.MoveLeft, tetris.MoveRight:
		return Repeat{Delay: 8, Rate: 4}
	case tetris.SoftDrop:
		return Repeat{Delay: 0, Rate: 4}
	default:
		return Repeat{Delay: 8, Rate: 8}
	}
}

// Binding maps a key to the action it fires.
type Binding[K comparable] struct {
	Key    K
	Action tetris.Action
	Repeat Repeat
}

// ControlledKey is a bound key together with its debounce state.
type ControlledKey[K comparable] struct {
	Key    K
	Action tetris.Action
	Debouncer
}

// Controls debounces a fixed set of bindings. Bindings are polled in the
// order they were given, so the returned actions follow that order too.
type Controls[K comparable] struct {
	keys  []ControlledKey[K]
	queue []tetris.Action
}

// NewControls creates controls for the given bindings.
func NewControls[K comparable](bindings ...Binding[K]) *Controls[K] {
	c := &Controls[K]{
		keys: make([]ControlledKey[K], len(bindings)),
	}
	for i, b := range bindings {
		c.keys[i] = ControlledKey[K]{
			Key:       b.Key,
			Action:    b.Action,
			Debouncer: NewDebouncer(b.Repeat),
		}
	}
	return c
}

// Tick polls every bound key once and returns the actions that fired.
// The returned slice is reused by the next call.
func (c *Controls[K]) Tick(isDown func(K) bool) []tetris.Action {
	c.queue = c.queue[:0]
	for i := range c.keys {
		k := &c.keys[i]
		if k.Debouncer.Tick(isDown(k.Key)) {
			c.queue = append(c.queue, k.Action)
		}
	}
	return c.queue
}

// Reset releases every key.
func (c *Controls[K]) Reset() {
	for i := range c.keys {
		c.keys[i].release()
	}
	c.queue = c.queue[:0]
}

// Keys returns a snapshot of the bound keys and their state.
func (c *Controls[K]) Keys() []ControlledKey[K] {
	out := make([]ControlledKey[K], len(c.keys))
	copy(out, c.keys)
	return out
}
