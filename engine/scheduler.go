package engine

import (
	"context"
	"reflect"
	"strings"
	"time"
)

// DefaultMaxCatchUp bounds how many steps Advance runs for one call.
const DefaultMaxCatchUp = 5

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	Frames          uint64
	DroppedSteps    uint64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type timing struct {
	name  string
	count int64
	min   time.Duration
	max   time.Duration
	total time.Duration
	last  time.Duration
}

func (t *timing) observe(d time.Duration) {
	t.count++
	t.last = d
	t.total += d
	t.min = min(t.min, d)
	t.max = max(t.max, d)
}

func (t *timing) snapshot() SystemStats {
	s := SystemStats{
		Name:           t.name,
		ExecutionCount: t.count,
		MinDuration:    t.min,
		MaxDuration:    t.max,
		LastDuration:   t.last,
		TotalDuration:  t.total,
	}
	if t.count > 0 {
		s.AvgDuration = t.total / time.Duration(t.count)
	} else {
		s.MinDuration = 0
	}
	return s
}

// Scheduler runs systems once per fixed step.
type Scheduler struct {
	step       time.Duration
	maxCatchUp int

	systems []System
	timings []*timing

	frames  uint64
	dropped uint64
	acc     time.Duration
}

// StepForRate converts a tick rate in Hz into a step duration.
func StepForRate(hz int) time.Duration {
	return time.Second / time.Duration(hz)
}

// NewScheduler creates a scheduler with the given fixed step.
func NewScheduler(step time.Duration) *Scheduler {
	if step <= 0 {
		panic("scheduler step must be positive")
	}
	return &Scheduler{
		step:       step,
		maxCatchUp: DefaultMaxCatchUp,
	}
}

// SetMaxCatchUp changes how many steps one Advance call may run. Time beyond
// that is dropped rather than replayed later.
func (s *Scheduler) SetMaxCatchUp(n int) {
	s.maxCatchUp = max(n, 1)
}

// Step returns the fixed step duration.
func (s *Scheduler) Step() time.Duration {
	return s.step
}

// Register appends a system. Systems execute in registration order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)
	s.timings = append(s.timings, &timing{
		name: systemName(system),
		min:  time.Duration(1<<63 - 1),
	})
}

// systemName is the system's type name without package or type arguments.
func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	name, _, _ := strings.Cut(t.Name(), "[")
	return name
}

// Once executes all registered systems once with the given delta time and
// returns the finished frame.
func (s *Scheduler) Once(dt float64) *Frame {
	s.frames++
	frame := newFrame(s.frames, dt)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		s.timings[i].observe(time.Since(start))
	}

	frame.flush()
	return frame
}

// Advance adds elapsed wall clock time and runs as many fixed steps as have
// accumulated, up to the catch-up limit. It returns the number of steps run.
func (s *Scheduler) Advance(elapsed time.Duration) int {
	s.acc += elapsed

	steps := 0
	for s.acc >= s.step {
		if steps == s.maxCatchUp {
			s.dropped += uint64(s.acc / s.step)
			s.acc %= s.step
			break
		}
		s.acc -= s.step
		s.Once(s.step.Seconds())
		steps++
	}
	return steps
}

// Run advances the scheduler every interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			elapsed := now.Sub(lastTime)
			lastTime = now
			s.Advance(elapsed)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount:  len(s.systems),
		Frames:       s.frames,
		DroppedSteps: s.dropped,
		Systems:      make([]SystemStats, len(s.timings)),
	}

	for i, t := range s.timings {
		stats.Systems[i] = t.snapshot()
		stats.TotalExecutions += t.count
	}
	return stats
}
