package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/tetris"
)

type Report struct {
	// Configuration
	Ticks   int
	Seed    uint64
	Density float64

	// Results
	TotalTime      time.Duration
	TickTime       Stats
	Scheduler      *engine.SchedulerStats
	Events         map[tetris.EventKind]int
	Games          int
	BestScore      uint
	MaxLevel       uint
	Rows           uint
	Failures       []string
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P99     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)

	var total time.Duration
	for _, sample := range sorted {
		total += sample
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Avg = total / time.Duration(len(sorted))
	s.P99 = sorted[(len(sorted)-1)*99/100]
}

type eventCount struct {
	Kind  tetris.EventKind
	Count int
}

// EventCounts lists the event tallies in kind order.
func (r *Report) EventCounts() []eventCount {
	out := make([]eventCount, 0, len(r.Events))
	for kind, n := range r.Events {
		out = append(out, eventCount{Kind: kind, Count: n})
	}
	slices.SortFunc(out, func(a, b eventCount) int { return int(a.Kind) - int(b.Kind) })
	return out
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Stress Test Report

## Test Configuration
- **Ticks:** {{.Ticks}}
- **Seed:** {{.Seed}}
- **Key Density:** {{printf "%.2f" .Density}}

## Performance Results
- **Total Test Time:** {{.TotalTime}}
- **Ticks Per Second:** {{rate .Ticks .TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **P99:** {{.TickTime.P99}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}
{{with .Scheduler}}
## Systems
| System | Runs | Avg | Min | Max |
|--------|------|-----|-----|-----|
{{range .Systems}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{end}}{{end}}
## Games
- **Games Over:** {{.Games}}
- **Rows Cleared:** {{.Rows}}
- **Best Score:** {{.BestScore}}
- **Highest Level:** {{.MaxLevel}}
{{range .EventCounts}}- {{.Kind}}: {{.Count}}
{{end}}
## Invariants
{{if .Failures}}{{range .Failures}}- {{.}}
{{end}}{{else}}No violations.
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"rate": func(n int, d time.Duration) string {
			if d <= 0 {
				return "N/A"
			}
			return fmt.Sprintf("%.0f", float64(n)/d.Seconds())
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
