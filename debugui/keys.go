package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/input"
)

// KeysWindow shows the debounce state of every bound key.
type KeysWindow[K comparable] struct {
	Controls *input.Controls[K]
	// Name formats a key for display. Defaults to %v.
	Name func(K) string
}

func (w *KeysWindow[K]) name(k K) string {
	if w.Name != nil {
		return w.Name(k)
	}
	return fmt.Sprintf("%v", k)
}

func (w *KeysWindow[K]) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(380, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 200), imgui.CondOnce)

	if !imgui.BeginV("Keys", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("KeysTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Key")
		imgui.TableSetupColumn("Action")
		imgui.TableSetupColumn("Delay/Rate")
		imgui.TableSetupColumn("State")
		imgui.TableSetupColumn("Buffer")
		imgui.TableHeadersRow()

		for _, k := range w.Controls.Keys() {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(w.name(k.Key))
			imgui.TableNextColumn()
			imgui.Text(k.Action.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d/%d", k.Repeat.Delay, k.Repeat.Rate))
			imgui.TableNextColumn()
			if k.Pressed() {
				imgui.Text(k.State().String())
			} else {
				imgui.TextDisabled("up")
			}
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", k.Buffer()))
		}
		imgui.EndTable()
	}

	imgui.End()
}
