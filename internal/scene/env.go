package scene

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/happy-bunny/internal/core"
)

// Preference keys shared with the SQLite store.
const (
	PrefScore = "score" // Score of the last finished run
	PrefMuted = "muted" // 1 while music is muted
)

// Flip durations in seconds.
const (
	GameOverFlip = 1.0
	RestartFlip  = 0.0
	MenuFlip     = 0.5
)

// Prefs is a small integer key/value store, the equivalent of an engine's
// user defaults. *storage.Store satisfies it.
type Prefs interface {
	Int(key string, def int) (int, error)
	SetInt(key string, value int) error
}

// Scores keeps the history of finished runs. *storage.Store satisfies it.
type Scores interface {
	// RecordGameOver stores the final score as the PrefScore preference
	// and adds it to the history.
	RecordGameOver(gameID string, score int) error
	HighScore(gameID string) (int, error)
}

// Env is the state shared by every scene of one session.
type Env struct {
	Runtime core.RuntimeConfig
	GameID  string // Variant started by the play button
	Prefs   Prefs
	Scores  Scores // Optional; nil keeps only the PrefScore preference
	Logger  *log.Logger
	Muted   bool

	// NewSeed seeds restarted runs. Nil uses the wall clock.
	NewSeed func() int64
}

// NewEnv creates an environment and restores the mute setting.
func NewEnv(runtime core.RuntimeConfig, gameID string, prefs Prefs, scores Scores, logger *log.Logger) *Env {
	if logger == nil {
		logger = log.Default()
	}
	if prefs == nil {
		prefs = NewMemoryPrefs()
	}

	env := &Env{
		Runtime: runtime,
		GameID:  gameID,
		Prefs:   prefs,
		Scores:  scores,
		Logger:  logger,
	}

	muted, err := prefs.Int(PrefMuted, 0)
	if err != nil {
		logger.Warn("could not read mute preference", "error", err)
	}
	env.Muted = muted == 1
	return env
}

func (e *Env) nextSeed() int64 {
	if e.NewSeed != nil {
		return e.NewSeed()
	}
	return time.Now().UnixNano()
}

// MemoryPrefs keeps preferences and score history in memory. Used when no
// database is available and in tests.
type MemoryPrefs struct {
	mu     sync.Mutex
	values map[string]int
	best   map[string]int
}

// NewMemoryPrefs creates an empty in-memory store.
func NewMemoryPrefs() *MemoryPrefs {
	return &MemoryPrefs{
		values: make(map[string]int),
		best:   make(map[string]int),
	}
}

// Int returns the stored value or def.
func (m *MemoryPrefs) Int(key string, def int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return def, nil
}

// SetInt stores a value.
func (m *MemoryPrefs) SetInt(key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// RecordGameOver stores the last score and tracks the best one per game.
func (m *MemoryPrefs) RecordGameOver(gameID string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[PrefScore] = score
	if score > m.best[gameID] {
		m.best[gameID] = score
	}
	return nil
}

// HighScore returns the best recorded score for a game.
func (m *MemoryPrefs) HighScore(gameID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best[gameID], nil
}
