// Command tetris plays the game in a window.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/tetris/audio"
	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/debugui"
	debugui_ebiten "github.com/plus3/tetris/debugui/ebiten"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/input"
	"github.com/plus3/tetris/render"
	"github.com/plus3/tetris/tetris"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

var keyMap = map[tetris.Action]ebiten.Key{
	tetris.MoveLeft:  ebiten.KeyArrowLeft,
	tetris.MoveRight: ebiten.KeyArrowRight,
	tetris.SoftDrop:  ebiten.KeyArrowDown,
	tetris.RotateCW:  ebiten.KeyC,
	tetris.RotateCCW: ebiten.KeyZ,
	tetris.HardDrop:  ebiten.KeySpace,
}

type Game struct {
	Universe  *tetris.Universe
	Scheduler *engine.Scheduler
	Renderer  *render.Renderer
	Overlay   *debugui.ImguiSystem
	Control   *debugui.SimulationControl
	Audio     *audio.Player

	imgui *debugui_ebiten.ImguiBackend
	dt    float64
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	seed := flag.Uint64("seed", 0, "Piece sequence seed. Overrides the config file when non-zero.")
	mute := flag.Bool("mute", false, "Disable sound.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	cfg.Mute = cfg.Mute || *mute

	backend := debugui_ebiten.NewImguiBackend("Tetris", ScreenWidth, ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	opts := []tetris.Option{tetris.WithDimensions(cfg.Dimensions())}
	if cfg.Seed != 0 {
		opts = append(opts, tetris.WithSeed(cfg.Seed))
	}
	universe := tetris.NewUniverse(opts...)

	player := audio.NewPlayer()
	player.SetMuted(cfg.Mute)
	if err := player.Init(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer player.Close()

	controls := input.NewControls(config.Bindings(cfg, keyMap)...)
	control := &debugui.SimulationControl{}
	overlay := &debugui.ImguiSystem{Hidden: true}

	scheduler := engine.NewScheduler(engine.StepForRate(cfg.TickRate))
	scheduler.Register(&engine.InputSystem[ebiten.Key]{
		Controls: controls,
		IsDown:   ebiten.IsKeyPressed,
		Restart:  func() bool { return inpututil.IsKeyJustPressed(ebiten.KeyR) },
		Enabled:  overlay.KeyboardFree,
	})
	scheduler.Register(&engine.SimulationSystem{Universe: universe, Enabled: control.ShouldTick})
	scheduler.Register(&engine.EventSystem{Handle: player.Handle})
	scheduler.Register(overlay)

	overlay.Add((&debugui.UniverseInspector{Universe: universe, Control: control}).Render)
	overlay.Add(debugui.NewSchedulerStatsWindow(scheduler, 240).Render)
	overlay.Add((&debugui.KeysWindow[ebiten.Key]{Controls: controls}).Render)

	game := &Game{
		Universe:  universe,
		Scheduler: scheduler,
		Renderer:  render.NewRenderer(render.DefaultPalette),
		Overlay:   overlay,
		Control:   control,
		Audio:     player,
		imgui:     backend,
		dt:        scheduler.Step().Seconds(),
	}

	log.Printf("Starting %dx%d board at %d Hz", cfg.Width, cfg.Height, cfg.TickRate)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func (g *Game) Update() error {
	if g.Overlay.KeyboardFree() {
		if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyM) {
			g.Audio.SetMuted(!g.Audio.Muted())
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.Overlay.Toggle()
	}

	g.imgui.BeginFrame()
	g.Scheduler.Once(g.dt)
	g.imgui.EndFrame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen, g.Universe)
	g.imgui.Overlay(screen, g.Overlay.Hidden)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imgui.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
