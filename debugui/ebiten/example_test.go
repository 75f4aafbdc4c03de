package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetris/debugui"
	debugui_ebiten "github.com/plus3/tetris/debugui/ebiten"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/tetris"
)

// Game runs the scheduler inside an ImGui frame and draws the overlay last.
type Game struct {
	scheduler *engine.Scheduler
	overlay   *debugui.ImguiSystem
	imgui     *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	g.imgui.BeginFrame()
	g.scheduler.Once(g.scheduler.Step().Seconds())
	g.imgui.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board here.
	g.imgui.Overlay(screen, g.overlay.Hidden)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imgui.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	backend := debugui_ebiten.NewImguiBackend("Overlay Example", 1280, 720)

	universe := tetris.NewUniverse()
	overlay := &debugui.ImguiSystem{}
	overlay.Add((&debugui.UniverseInspector{Universe: universe}).Render)
	overlay.Add(func() {
		imgui.Begin("Debug Window")
		imgui.Text("Hello from the overlay!")
		imgui.End()
	})

	scheduler := engine.NewScheduler(engine.StepForRate(60))
	scheduler.Register(&engine.SimulationSystem{Universe: universe})
	scheduler.Register(overlay)

	game := &Game{scheduler: scheduler, overlay: overlay, imgui: backend}
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
