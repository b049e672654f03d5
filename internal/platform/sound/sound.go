// Package sound synthesizes the three audio cues: the timer tick, the
// win chime, and the mine explosion. Everything is generated in-process
// with beep streamers, no sample assets.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and mixes one-shot effect streamers into it.
// All methods are safe for concurrent use and are no-ops until
// Initialize succeeds, so frontends can call them unconditionally.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	enabled     bool
}

// NewManager creates a sound manager. Effects only play after
// Initialize has been called.
func NewManager(enabled bool) *Manager {
	return &Manager{
		mixer:   &beep.Mixer{},
		enabled: enabled,
	}
}

// Initialize opens the speaker and starts the mixer. Safe to call more
// than once; does nothing when sound is disabled.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || !m.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences all playing effects.
// beep has no speaker Close, clearing the mixer is the best we can do.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Clear()
	m.initialized = false
}

// SetEnabled toggles sound at runtime. Disabling silences anything
// still playing.
func (m *Manager) SetEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.enabled = enabled
	if !enabled && m.initialized {
		m.mixer.Clear()
	}
}

// Enabled reports whether effects are currently audible.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled && m.initialized
}

// play adds a one-shot streamer to the mixer. The mixer drops streamers
// when they drain, so nothing needs to be removed by hand.
func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || !m.enabled {
		return
	}
	m.mixer.Add(s)
}

// PlayTick plays the once-per-second timer click.
func (m *Manager) PlayTick() {
	m.play(tickSound(sampleRate))
}

// PlayWin plays the victory chime.
func (m *Manager) PlayWin() {
	m.play(winSound(sampleRate))
}

// PlayLose plays the mine explosion.
func (m *Manager) PlayLose() {
	m.play(loseSound(sampleRate))
}
