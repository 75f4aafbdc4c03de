// Package audio plays synthesized cues for simulation events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/plus3/tetris/tetris"
)

// SampleRate is the rate every cue is generated at.
const SampleRate = beep.SampleRate(44100)

type note struct {
	freq float64 // 0 is a rest
	dur  time.Duration
}

// tone plays freq for d at the given linear volume.
func tone(sr beep.SampleRate, freq float64, d time.Duration, vol float64) beep.Streamer {
	n := sr.N(d)
	if freq <= 0 || vol <= 0 {
		return beep.Silence(n)
	}
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(n)
	}
	return &effects.Volume{
		Streamer: beep.Take(n, sine),
		Base:     2,
		Volume:   math.Log2(vol),
	}
}

func phrase(sr beep.SampleRate, vol float64, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = tone(sr, n.freq, n.dur, vol)
	}
	return beep.Seq(parts...)
}

// Cue returns the sound for an event, or nil when the event is silent.
func Cue(sr beep.SampleRate, e tetris.Event) beep.Streamer {
	switch e.Kind {
	case tetris.EventPieceLocked:
		return tone(sr, 196, 40*time.Millisecond, 0.3)
	case tetris.EventHardDrop:
		return phrase(sr, 0.35,
			note{330, 20 * time.Millisecond},
			note{165, 50 * time.Millisecond},
		)
	case tetris.EventRowsCleared:
		arpeggio := []float64{523.25, 659.25, 783.99, 1046.5}
		notes := make([]note, 0, len(arpeggio))
		for i := range min(int(e.Rows), len(arpeggio)) {
			notes = append(notes, note{arpeggio[i], 70 * time.Millisecond})
		}
		return phrase(sr, 0.4, notes...)
	case tetris.EventLevelUp:
		return phrase(sr, 0.4,
			note{659.25, 90 * time.Millisecond},
			note{0, 30 * time.Millisecond},
			note{1318.5, 150 * time.Millisecond},
		)
	case tetris.EventGameOver:
		return phrase(sr, 0.45,
			note{392, 160 * time.Millisecond},
			note{311.13, 160 * time.Millisecond},
			note{261.63, 400 * time.Millisecond},
		)
	}
	return nil
}

// theme is the opening phrase of Korobeiniki.
var theme = []struct {
	freq  float64
	beats float64
}{
	{659.25, 1}, {493.88, 0.5}, {523.25, 0.5}, {587.33, 1}, {523.25, 0.5}, {493.88, 0.5},
	{440, 1}, {440, 0.5}, {523.25, 0.5}, {659.25, 1}, {587.33, 0.5}, {523.25, 0.5},
	{493.88, 1.5}, {523.25, 0.5}, {587.33, 1}, {659.25, 1},
	{523.25, 1}, {440, 1}, {440, 1}, {0, 1},
}

// Music returns the background theme looping forever at the given tempo.
func Music(sr beep.SampleRate, bpm float64, vol float64) beep.Streamer {
	beat := time.Duration(float64(time.Minute) / bpm)
	return beep.Iterate(func() beep.Streamer {
		notes := make([]note, len(theme))
		for i, n := range theme {
			notes[i] = note{n.freq, time.Duration(n.beats * float64(beat))}
		}
		return phrase(sr, vol, notes...)
	})
}
