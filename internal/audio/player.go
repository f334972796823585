// Package audio plays the background music through the system speaker.
package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferSize = 100 * time.Millisecond

	// MasterGain scales the whole mix.
	MasterGain = 0.3
)

// Player starts and stops the background track. Until Init succeeds every
// call is a silent no-op, so the game runs unchanged without a sound device.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	ctrl   *beep.Ctrl
	ready  bool
	logger *log.Logger
}

// NewPlayer creates an uninitialized player.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker. Calling it again after success does nothing.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	p.logger.Debug("audio ready", "sample_rate", int(sampleRate))
	return nil
}

// Start plays the track from the beginning unless it is already playing.
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || p.ctrl != nil {
		return
	}

	p.ctrl = &beep.Ctrl{Streamer: newVolume(NewTrack(sampleRate), MasterGain)}
	speaker.Lock()
	p.mixer.Add(p.ctrl)
	speaker.Unlock()
}

// Stop silences the track.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || p.ctrl == nil {
		return
	}

	speaker.Lock()
	p.ctrl.Paused = true
	p.mixer.Clear()
	speaker.Unlock()
	p.ctrl = nil
}

// Playing reports whether the track is currently audible.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctrl != nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.Stop()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		speaker.Close()
		p.ready = false
	}
}

// newVolume scales s by a linear gain.
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
