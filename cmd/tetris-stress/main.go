// Command tetris-stress plays random games at full speed and reports
// timings, game statistics and any stack invariant violation.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/tetris"
)

// RandomPlayer presses random keys and restarts as soon as a game ends.
type RandomPlayer struct {
	Rand *rand.Rand
	// Density is the chance of pressing a key on any frame.
	Density float64
}

func (p *RandomPlayer) Execute(frame *engine.Frame) {
	frame.Restart = true
	if p.Rand.Float64() >= p.Density {
		return
	}
	frame.Actions = append(frame.Actions, tetris.Actions[p.Rand.IntN(len(tetris.Actions))])
}

// Tally counts events and checks the universe after every frame.
type Tally struct {
	Universe *tetris.Universe
	// ValidateEvery checks the stack every n frames. Zero disables it.
	ValidateEvery uint64

	Counts    map[tetris.EventKind]int
	Games     int
	BestScore uint
	MaxLevel  uint
	Rows      uint
	Failures  []string
}

func (t *Tally) Execute(frame *engine.Frame) {
	for _, e := range frame.Events {
		t.Counts[e.Kind]++
		switch e.Kind {
		case tetris.EventRowsCleared:
			t.Rows += e.Rows
		case tetris.EventGameOver:
			t.Games++
		}
	}

	g := t.Universe.Game()
	t.BestScore = max(t.BestScore, g.Score())
	t.MaxLevel = max(t.MaxLevel, g.Level())

	if t.ValidateEvery == 0 || frame.Tick%t.ValidateEvery != 0 {
		return
	}
	if err := t.Universe.Validate(); err != nil && len(t.Failures) < 10 {
		t.Failures = append(t.Failures, fmt.Sprintf("tick %d: %v", frame.Tick, err))
	}
}

func main() {
	ticks := flag.Int("ticks", 1_000_000, "The number of simulation ticks to run.")
	seed := flag.Uint64("seed", 1, "Seed for both the piece sequence and the random player.")
	density := flag.Float64("density", 0.3, "Chance of a key press per tick.")
	validateEvery := flag.Uint64("validate-every", 1, "Validate the stack every n ticks, 0 to disable.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting tetris stress test...")

	universe := tetris.NewUniverse(tetris.WithRand(rand.New(rand.NewPCG(*seed, *seed))))
	tally := &Tally{
		Universe:      universe,
		ValidateEvery: *validateEvery,
		Counts:        make(map[tetris.EventKind]int),
	}

	scheduler := engine.NewScheduler(engine.StepForRate(60))
	scheduler.Register(&RandomPlayer{Rand: rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15)), Density: *density})
	scheduler.Register(&engine.SimulationSystem{Universe: universe})
	scheduler.Register(tally)

	universe.Subscribe(func(e tetris.Event) {
		if e.Kind == tetris.EventLevelUp {
			log.Printf("Reached level %d", e.Level)
		}
	})

	report := &Report{
		Ticks:          *ticks,
		Seed:           *seed,
		Density:        *density,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0, *ticks),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %d ticks...\n", *ticks)
	startTime := time.Now()
	for range *ticks {
		tickStart := time.Now()
		scheduler.Once(scheduler.Step().Seconds())
		report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
	}
	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Scheduler = scheduler.GetStats()
	report.Events = tally.Counts
	report.Games = tally.Games
	report.BestScore = tally.BestScore
	report.MaxLevel = tally.MaxLevel
	report.Rows = tally.Rows
	report.Failures = tally.Failures

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if len(report.Failures) > 0 {
		log.Fatalf("Stress test found %d invariant violations", len(report.Failures))
	}
	log.Println("Stress test complete.")
}
