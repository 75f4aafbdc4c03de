package engine_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/input"
	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFeedsSimulation(t *testing.T) {
	u := tetris.NewUniverse(tetris.WithSeed(8))
	down := map[string]bool{}
	restart := false

	scheduler := engine.NewScheduler(time.Second / 60)
	scheduler.Register(&engine.InputSystem[string]{
		Controls: input.NewControls(
			input.Binding[string]{Key: "space", Action: tetris.HardDrop, Repeat: input.DefaultRepeat(tetris.HardDrop)},
		),
		IsDown:  func(k string) bool { return down[k] },
		Restart: func() bool { return restart },
	})
	scheduler.Register(&engine.SimulationSystem{Universe: u})

	var handled []tetris.EventKind
	scheduler.Register(&engine.EventSystem{Handle: func(e tetris.Event) { handled = append(handled, e.Kind) }})

	frame := scheduler.Once(1.0 / 60)
	assert.Empty(t, frame.Actions)
	assert.Empty(t, handled)

	down["space"] = true
	frame = scheduler.Once(1.0 / 60)
	assert.Equal(t, []tetris.Action{tetris.HardDrop}, frame.Actions)
	assert.Equal(t, []tetris.EventKind{tetris.EventHardDrop, tetris.EventPieceLocked}, handled)
	assert.Len(t, u.Locked(), 1)

	restart = true
	frame = scheduler.Once(1.0 / 60)
	assert.True(t, frame.Restart)
	assert.Len(t, u.Locked(), 1, "restart is ignored while the game runs")
}

func TestInputSystemDisabled(t *testing.T) {
	enabled := true
	sys := &engine.InputSystem[string]{
		Controls: input.NewControls(
			input.Binding[string]{Key: "left", Action: tetris.MoveLeft, Repeat: input.DefaultRepeat(tetris.MoveLeft)},
		),
		IsDown:  func(string) bool { return true },
		Enabled: func() bool { return enabled },
	}

	frame := &engine.Frame{}
	sys.Execute(frame)
	require.Equal(t, []tetris.Action{tetris.MoveLeft}, frame.Actions)

	enabled = false
	frame = &engine.Frame{}
	sys.Execute(frame)
	assert.Empty(t, frame.Actions)

	enabled = true
	frame = &engine.Frame{}
	sys.Execute(frame)
	assert.Equal(t, []tetris.Action{tetris.MoveLeft}, frame.Actions, "disabling releases held keys")
}

func TestSimulationSystemPaused(t *testing.T) {
	u := tetris.NewUniverse(tetris.WithSeed(3))
	paused := true
	sys := &engine.SimulationSystem{Universe: u, Enabled: func() bool { return !paused }}

	frame := &engine.Frame{Actions: []tetris.Action{tetris.HardDrop}}
	sys.Execute(frame)
	assert.Empty(t, frame.Events)
	assert.Empty(t, u.Locked())

	paused = false
	sys.Execute(frame)
	assert.Len(t, frame.Events, 2)
	assert.Len(t, u.Locked(), 1)
}

func TestScriptSystemLoops(t *testing.T) {
	sys := &engine.ScriptSystem{Script: [][]tetris.Action{{tetris.MoveLeft}, nil, {tetris.RotateCW, tetris.HardDrop}}}

	var got [][]tetris.Action
	for range 4 {
		frame := &engine.Frame{}
		sys.Execute(frame)
		got = append(got, frame.Actions)
	}

	assert.Equal(t, []tetris.Action{tetris.MoveLeft}, got[0])
	assert.Empty(t, got[1])
	assert.Equal(t, []tetris.Action{tetris.RotateCW, tetris.HardDrop}, got[2])
	assert.Equal(t, []tetris.Action{tetris.MoveLeft}, got[3])
}

// ExampleScheduler wires a scripted player to a universe and replays a
// quarter second of simulated time.
func ExampleScheduler() {
	u := tetris.NewUniverse(tetris.WithSeed(1))

	scheduler := engine.NewScheduler(engine.StepForRate(60))
	scheduler.SetMaxCatchUp(60)
	scheduler.Register(&engine.ScriptSystem{Script: [][]tetris.Action{{tetris.HardDrop}, nil, nil}})
	scheduler.Register(&engine.SimulationSystem{Universe: u})

	steps := scheduler.Advance(250 * time.Millisecond)
	fmt.Println(steps, len(u.Locked()))
	// Output: 15 5
}
