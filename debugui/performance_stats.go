package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetris/engine"
)

// SchedulerStatsWindow plots frame times and lists per-system timings.
type SchedulerStatsWindow struct {
	Scheduler *engine.Scheduler

	clock        frameClock
	frameHistory []float32
	frameIndex   int
}

// NewSchedulerStatsWindow keeps historyFrames frame times for the graph.
func NewSchedulerStatsWindow(s *engine.Scheduler, historyFrames int) *SchedulerStatsWindow {
	return &SchedulerStatsWindow{
		Scheduler:    s,
		clock:        frameClock{last: time.Now()},
		frameHistory: make([]float32, max(historyFrames, 1)),
	}
}

// Record adds a frame time in milliseconds to the history.
func (w *SchedulerStatsWindow) Record(ms float32) {
	w.frameHistory[w.frameIndex] = ms
	w.frameIndex = (w.frameIndex + 1) % len(w.frameHistory)
}

// AverageFrameTime returns the mean of the recorded frame times in milliseconds.
func (w *SchedulerStatsWindow) AverageFrameTime() float32 {
	var sum float32
	for _, ft := range w.frameHistory {
		sum += ft
	}
	return sum / float32(len(w.frameHistory))
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d.Microseconds())/1000.0)
}

func (w *SchedulerStatsWindow) Render() {
	w.Record(w.clock.lap())

	imgui.SetNextWindowPosV(imgui.NewVec2(380, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)

	if !imgui.BeginV("Scheduler", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := w.Scheduler.GetStats()
	avg := w.AverageFrameTime()

	imgui.Text(fmt.Sprintf("Step: %v", w.Scheduler.Step()))
	imgui.Text(fmt.Sprintf("Frames: %d (dropped steps: %d)", stats.Frames, stats.DroppedSteps))
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &w.frameHistory[0], int32(len(w.frameHistory)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg (ms)")
		imgui.TableSetupColumn("Min (ms)")
		imgui.TableSetupColumn("Max (ms)")
		imgui.TableHeadersRow()

		for _, sys := range stats.Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(millis(sys.AvgDuration))
			imgui.TableNextColumn()
			imgui.Text(millis(sys.MinDuration))
			imgui.TableNextColumn()
			imgui.Text(millis(sys.MaxDuration))
		}
		imgui.EndTable()
	}

	imgui.End()
}

// frameClock measures the wall time between renders.
type frameClock struct {
	last time.Time
}

// lap returns the milliseconds since the previous lap.
func (c *frameClock) lap() float32 {
	now := time.Now()
	ms := float32(now.Sub(c.last).Microseconds()) / 1000
	c.last = now
	return ms
}
