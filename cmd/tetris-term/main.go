// Command tetris-term plays the game in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetris/audio"
	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/input"
	"github.com/plus3/tetris/render"
	"github.com/plus3/tetris/tetris"
)

// keyHold is how long a key stays down after its last press or auto-repeat.
// It has to outlast the gap between auto-repeats, not the initial repeat
// delay, or released keys would keep moving the piece.
const keyHold = 100 * time.Millisecond

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	seed := flag.Uint64("seed", 0, "Piece sequence seed. Overrides the config file when non-zero.")
	mute := flag.Bool("mute", false, "Disable sound.")
	logPath := flag.String("log", "", "Write log output to this file instead of discarding it.")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	cfg.Mute = cfg.Mute || *mute

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	player := audio.NewPlayer()
	player.SetMuted(cfg.Mute)
	if err := player.Init(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer player.Close()

	opts := []tetris.Option{tetris.WithDimensions(cfg.Dimensions())}
	if cfg.Seed != 0 {
		opts = append(opts, tetris.WithSeed(cfg.Seed))
	}
	universe := tetris.NewUniverse(opts...)

	held := newHeldKeys(keyHold)
	restart := false
	now := time.Now()

	scheduler := engine.NewScheduler(engine.StepForRate(cfg.TickRate))
	scheduler.Register(&engine.InputSystem[termKey]{
		Controls: input.NewControls(config.Bindings(cfg, keyMap)...),
		IsDown:   func(k termKey) bool { return held.isDown(k, now) },
		Restart: func() bool {
			r := restart
			restart = false
			return r
		},
	})
	scheduler.Register(&engine.SimulationSystem{Universe: universe})
	scheduler.Register(&engine.EventSystem{Handle: player.Handle})

	b := &board{screen: screen, palette: render.DefaultPalette}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(scheduler.Step())
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				k := keyOf(ev)
				switch {
				case k.Code == tcell.KeyEscape || k.Code == tcell.KeyCtrlC || k == runeKey('q'):
					stats := scheduler.GetStats()
					log.Printf("Quit after %d frames, %d steps dropped", stats.Frames, stats.DroppedSteps)
					return nil
				case k == runeKey('r'):
					restart = true
				case k == runeKey('m'):
					player.SetMuted(!player.Muted())
				default:
					held.press(k, ev.When())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case t := <-ticker.C:
			now = t
			scheduler.Advance(t.Sub(last))
			last = t
			b.draw(universe)
		}
	}
}
