// Package engine drives a tetris.Universe at a fixed timestep through an
// ordered list of systems.
package engine

import "github.com/plus3/tetris/tetris"

// System is one step of a frame. Systems run in registration order and
// communicate through the shared Frame.
type System interface {
	Execute(frame *Frame)
}

// Frame is the per-tick scratch state handed to every system.
type Frame struct {
	// Tick counts frames since the scheduler was created, starting at 1.
	Tick      uint64
	DeltaTime float64

	// Actions and Restart are filled by input systems and consumed by the simulation.
	Actions []tetris.Action
	Restart bool

	// Events holds what the simulation raised this frame.
	Events []tetris.Event

	defers []func()
}

func newFrame(tick uint64, dt float64) *Frame {
	return &Frame{
		Tick:      tick,
		DeltaTime: dt,
	}
}

// Defer queues fn to run after every system has executed.
func (f *Frame) Defer(fn func()) {
	f.defers = append(f.defers, fn)
}

// flush runs the deferred functions in the order they were queued.
func (f *Frame) flush() {
	for _, fn := range f.defers {
		fn()
	}
	f.defers = f.defers[:0]
}
