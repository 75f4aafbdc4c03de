package engine

import (
	"github.com/plus3/tetris/input"
	"github.com/plus3/tetris/tetris"
)

// InputSystem polls a frontend's keys through debounced controls and adds the
// resulting actions to the frame.
type InputSystem[K comparable] struct {
	Controls *input.Controls[K]
	IsDown   func(K) bool
	// Restart reports whether the restart key was pressed this frame. Optional.
	Restart func() bool
	// Enabled gates polling, e.g. while a debug window has keyboard focus. Optional.
	Enabled func() bool
}

func (s *InputSystem[K]) Execute(frame *Frame) {
	if s.Enabled != nil && !s.Enabled() {
		s.Controls.Reset()
		return
	}
	frame.Actions = append(frame.Actions, s.Controls.Tick(s.IsDown)...)
	if s.Restart != nil && s.Restart() {
		frame.Restart = true
	}
}

// ScriptSystem feeds a fixed sequence of per-frame actions, looping forever.
// Useful for demos and benchmarks.
type ScriptSystem struct {
	Script [][]tetris.Action
	next   int
}

func (s *ScriptSystem) Execute(frame *Frame) {
	if len(s.Script) == 0 {
		return
	}
	frame.Actions = append(frame.Actions, s.Script[s.next]...)
	s.next = (s.next + 1) % len(s.Script)
}

// SimulationSystem ticks the universe with the frame's input.
type SimulationSystem struct {
	Universe *tetris.Universe
	// Enabled gates ticking, e.g. while paused from a debug window. Optional.
	Enabled func() bool
}

func (s *SimulationSystem) Execute(frame *Frame) {
	if s.Enabled != nil && !s.Enabled() {
		return
	}
	frame.Events = append(frame.Events, s.Universe.Tick(frame.Actions, frame.Restart)...)
}

// EventSystem hands every event of the frame to Handle after all systems ran.
type EventSystem struct {
	Handle tetris.Listener
}

func (s *EventSystem) Execute(frame *Frame) {
	frame.Defer(func() {
		for _, e := range frame.Events {
			s.Handle(e)
		}
	})
}
