// Package debugui provides Dear ImGui debug windows for a running game.
// Windows are plain render functions collected by ImguiSystem, which runs
// them after the simulation has finished its frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/engine"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function to the end of the frame
// and refreshes the input capture state.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState ImguiInputState
	Hidden     bool
}

// Add registers a window.
func (i *ImguiSystem) Add(render func()) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

// Toggle flips the overlay's visibility.
func (i *ImguiSystem) Toggle() {
	i.Hidden = !i.Hidden
}

// KeyboardFree reports whether the game may read the keyboard.
func (i *ImguiSystem) KeyboardFree() bool {
	return i.Hidden || !i.InputState.WantCaptureKeyboard
}

func (i *ImguiSystem) Execute(frame *engine.Frame) {
	if i.Hidden {
		i.InputState = ImguiInputState{}
		return
	}

	io := imgui.CurrentIO()
	i.InputState.WantCaptureMouse = io.WantCaptureMouse()
	i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range i.Items {
		frame.Defer(item.Render)
	}
}
