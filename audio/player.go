package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/tetris/tetris"
)

// Player mixes event cues and the background theme. Handle is safe to call
// from the simulation goroutine while the speaker pulls samples.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	sr          beep.SampleRate
	initialized bool
	muted       bool
}

// NewPlayer creates a player. Nothing is audible until Init.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
		sr:    SampleRate,
	}
}

// Init opens the audio device and starts mixing.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.sr, p.sr.N(time.Second/10)); err != nil {
		return fmt.Errorf("opening audio device: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all sound and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.music = nil
	p.initialized = false
}

// SetMuted silences new cues and pauses the theme.
func (p *Player) SetMuted(muted bool) {
	p.withMixer(func() {
		p.muted = muted
		if p.music != nil {
			p.music.Paused = muted
		}
	})
}

// Muted reports whether the player is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Handle plays the cue for an event. The theme starts with the first event
// of a game and stops when the game ends.
func (p *Player) Handle(e tetris.Event) {
	p.withMixer(func() {
		switch e.Kind {
		case tetris.EventGameOver:
			p.stopMusic()
		case tetris.EventRestarted:
			p.stopMusic()
			p.startMusic()
		default:
			p.startMusic()
		}

		if p.muted {
			return
		}
		if cue := Cue(p.sr, e); cue != nil {
			p.mixer.Add(cue)
		}
	})
}

// Active returns the number of streams being mixed.
func (p *Player) Active() int {
	var n int
	p.withMixer(func() { n = p.mixer.Len() })
	return n
}

// MusicPlaying reports whether the theme is running.
func (p *Player) MusicPlaying() bool {
	var playing bool
	p.withMixer(func() { playing = p.music != nil && !p.music.Paused })
	return playing
}

func (p *Player) startMusic() {
	if p.music != nil {
		return
	}
	p.music = &beep.Ctrl{Streamer: Music(p.sr, 144, 0.12), Paused: p.muted}
	p.mixer.Add(p.music)
}

func (p *Player) stopMusic() {
	if p.music == nil {
		return
	}
	p.music.Streamer = nil
	p.music = nil
}

// withMixer runs fn holding the player lock and, once the device is open,
// the speaker lock.
func (p *Player) withMixer(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}
