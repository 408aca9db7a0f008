// Package audio plays the game's synthesized music and sound effects
// through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/happy-bunny/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies a one-shot effect.
type Sound int

const (
	SoundBomb Sound = iota // Tapped bomb explodes
	SoundUh                // Bunny hit
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundBomb:
		return "bomb"
	case SoundUh:
		return "uh"
	default:
		return "unknown"
	}
}

// Manager owns the speaker mixer. A Manager that was never initialized,
// or whose speaker failed to open, accepts every call and stays silent.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicVolume *effects.Volume
	muted       bool
	initialized bool
	logger      *log.Logger
}

// NewManager creates a silent manager. Call Initialize to open the speaker.
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker. On failure the manager keeps working in
// silent mode and the error is returned for logging.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		m.logger.Warn("audio unavailable, continuing without sound", "error", err)
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(m.mixer)
	m.initialized = true
	m.logger.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Enabled reports whether sound actually reaches the speaker.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.initialized
}

// locked runs fn with the speaker locked when it is running, so streamers
// can be changed safely while audio plays.
func (m *Manager) locked(fn func()) {
	if m.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}

// PlayMusic starts the looping background melody if it is not playing.
func (m *Manager) PlayMusic() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || (m.music != nil && !m.music.Paused) {
		return
	}

	gain := 1.0
	if m.muted {
		gain = 0
	}
	m.musicVolume = newVolume(beep.Loop(-1, MusicStreamer(sampleRate)), gain)
	m.music = &beep.Ctrl{Streamer: m.musicVolume}

	m.locked(func() {
		m.mixer.Add(m.music)
	})
}

// SetMusicVolume changes the music gain; 0 mutes it. Effects are not
// affected.
func (m *Manager) SetMusicVolume(gain float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.muted = gain <= 0
	if m.musicVolume == nil {
		return
	}
	m.locked(func() {
		setGain(m.musicVolume, gain)
	})
}

// Muted reports whether the music is muted.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Play starts a one-shot sound effect.
func (m *Manager) Play(s Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	var streamer beep.Streamer
	switch s {
	case SoundBomb:
		streamer = BombStreamer(sampleRate)
	case SoundUh:
		streamer = UhStreamer(sampleRate)
	default:
		return
	}

	m.locked(func() {
		m.mixer.Add(streamer)
	})
}

// StopAll silences everything, music included.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.locked(func() {
		if m.music != nil {
			m.music.Paused = true
		}
		m.mixer.Clear()
	})
}

// Active returns the number of streamers in the mixer.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int
	m.locked(func() {
		n = m.mixer.Len()
	})
	return n
}

// HandleEvents turns game events into sounds: exploded bombs go boom, a
// hit stops the music and grunts unless muted, and mute toggles the music.
func (m *Manager) HandleEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventBombExploded:
			m.Play(SoundBomb)
		case core.EventPlayerHit:
			if !m.Muted() {
				m.StopAll()
				m.Play(SoundUh)
			}
		case core.EventMuteToggled:
			if e.Value == 1 {
				m.SetMusicVolume(0)
			} else {
				m.SetMusicVolume(1)
			}
		case core.EventSceneChanged:
			if e.Name == "main" {
				m.PlayMusic()
			}
		}
	}
}

// Cleanup stops all sounds and closes the speaker.
func (m *Manager) Cleanup() {
	m.StopAll()

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	speaker.Close()
	m.initialized = false
}
