// Package sound synthesizes the wheel's boundary clicks and the chime that
// marks a finished spin, and plays them through the system speaker.
package sound

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// minClickGap keeps a fast wheel from stacking clicks into a buzz.
	minClickGap = 28 * time.Millisecond
)

// Player owns the speaker and a mixer the effects are queued on. Every
// method is safe to call before Init or after Release; sounds are simply
// dropped.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool

	volume int // 0..100
	muted  bool

	lastClick time.Time
	now       func() time.Time
	log       *slog.Logger
}

// NewPlayer constructs a Player at 70% volume. Call Init to open the
// speaker.
func NewPlayer(log *slog.Logger) *Player {
	if log == nil {
		log = slog.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: 70,
		now:    time.Now,
		log:    log,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Init opens the speaker and applies the initial volume and mute state.
// A machine without an audio device returns an error and the Player stays
// silent.
func (p *Player) Init(volume int, muted bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.volume = clamp(volume, 0, 100)
	p.muted = muted
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init failed: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Release stops queued sounds and closes the speaker.
func (p *Player) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// SetVolume sets the effect volume in percent.
func (p *Player) SetVolume(v int) {
	p.mu.Lock()
	p.volume = clamp(v, 0, 100)
	p.mu.Unlock()
}

// Volume returns the effect volume in percent.
func (p *Player) Volume() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetMuted silences or restores every effect.
func (p *Player) SetMuted(m bool) {
	p.mu.Lock()
	p.muted = m
	p.mu.Unlock()
}

// ToggleMute flips the mute state and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Muted reports whether effects are silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Click plays one boundary tick, at most once per minClickGap.
func (p *Player) Click() {
	p.mu.Lock()
	now := p.now()
	if now.Sub(p.lastClick) < minClickGap {
		p.mu.Unlock()
		return
	}
	p.lastClick = now
	p.mu.Unlock()

	if isTraceLoggingEnabled() {
		p.log.Debug("click")
	}
	p.play(NewClick(sampleRate))
}

// Chime plays the result chime.
func (p *Player) Chime() {
	if isTraceLoggingEnabled() {
		p.log.Debug("chime")
	}
	p.play(NewChime(sampleRate))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.muted || p.volume == 0 {
		return
	}
	v := withVolume(s, float64(p.volume)/100)
	speaker.Lock()
	p.mixer.Add(v)
	speaker.Unlock()
}
