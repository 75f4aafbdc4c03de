package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/tetris"
)

// SimulationControl lets the overlay pause and single-step the simulation.
// The frontend reads it before ticking.
type SimulationControl struct {
	Paused bool
	step   bool
}

// ShouldTick reports whether the simulation should advance this frame and
// consumes a pending single step.
func (c *SimulationControl) ShouldTick() bool {
	if !c.Paused {
		return true
	}
	if c.step {
		c.step = false
		return true
	}
	return false
}

// Step requests one tick while paused.
func (c *SimulationControl) Step() {
	c.step = true
}

// UniverseInspector shows the score state, the focused piece, the locked
// stack and the result of stack validation.
type UniverseInspector struct {
	Universe *tetris.Universe
	Control  *SimulationControl
}

func (w *UniverseInspector) Render() {
	s := TakeSnapshot(w.Universe)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 460), imgui.CondOnce)

	if !imgui.BeginV("Universe", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if w.Control != nil {
		imgui.Checkbox("Paused", &w.Control.Paused)
		imgui.SameLine()
		if imgui.Button("Step") {
			w.Control.Step()
		}
		imgui.Separator()
	}

	if s.Running {
		imgui.Text("State: running")
	} else {
		imgui.PushStyleColorVec4(imgui.ColText, imgui.NewVec4(1, 0.3, 0.3, 1))
		imgui.Text("State: game over")
		imgui.PopStyleColor()
	}
	imgui.Text(fmt.Sprintf("Score: %d", s.Score))
	imgui.Text(fmt.Sprintf("Level: %d (fall every %d ticks)", s.Level, s.FallEvery))
	imgui.Text(fmt.Sprintf("Lines: %d", s.LinesCleared))
	imgui.Text(fmt.Sprintf("Fall timer: %d/%d", s.Ticks, s.FallEvery))

	imgui.Separator()
	imgui.Text("Focused: " + s.Focused)
	imgui.Text(fmt.Sprintf("Rotation: %d", s.Rotation))
	imgui.Text("Ghost: " + s.Ghost)
	imgui.Text(fmt.Sprintf("Hard drop distance: %d", s.Drop))

	imgui.Separator()
	if s.Problem != "" {
		imgui.PushStyleColorVec4(imgui.ColText, imgui.NewVec4(1, 0.3, 0.3, 1))
		imgui.TextWrapped("Stack invalid: " + s.Problem)
		imgui.PopStyleColor()
	} else {
		imgui.Text("Stack valid")
	}

	imgui.Text("Row fill")
	if len(s.RowFill) > 0 {
		imgui.PlotHistogramFloatPtr("##rowfill", &s.RowFill[0], int32(len(s.RowFill)))
	}

	if imgui.TreeNodeStr(fmt.Sprintf("Locked pieces (%d, %d cells)", len(s.Pieces), s.CellCount)) {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("LockedTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("#")
			imgui.TableSetupColumn("Shape")
			imgui.TableSetupColumn("Cells")
			imgui.TableHeadersRow()

			for _, p := range s.Pieces {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", p.Index))
				imgui.TableNextColumn()
				imgui.Text(p.Shape)
				imgui.TableNextColumn()
				imgui.Text(p.Cells)
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
