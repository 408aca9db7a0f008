package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"golang.org/x/term"

	"github.com/vovakirdan/happy-bunny/internal/audio"
	"github.com/vovakirdan/happy-bunny/internal/core"
	"github.com/vovakirdan/happy-bunny/internal/scene"
	"github.com/vovakirdan/happy-bunny/internal/storage"
)

var (
	logger   = log.New(io.Discard)
	logFile  *os.File
	profiler interface{ Stop() }
)

// setupLogger builds the process logger. Full screen commands only log to
// --log-file; serve logs to stderr as well.
func setupLogger(toStderr bool) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = io.Discard
	if toStderr {
		out = os.Stderr
	}

	if flagLogFile != "" {
		path := expandHome(flagLogFile)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		if toStderr {
			out = io.MultiWriter(os.Stderr, f)
		} else {
			out = f
		}
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "bunny",
		Level:           level,
	})
	log.SetDefault(logger)
	return nil
}

func closeLogFile() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// startProfile starts pkg/profile for --profile.
func startProfile(mode string) error {
	var kind func(*profile.Profile)
	switch strings.ToLower(mode) {
	case "":
		return nil
	case "cpu":
		kind = profile.CPUProfile
	case "mem":
		kind = profile.MemProfile
	default:
		return fmt.Errorf("invalid --profile %q: want cpu or mem", mode)
	}

	profiler = profile.Start(kind, profile.ProfilePath("."), profile.Quiet, profile.NoShutdownHook)
	logger.Info("profiling", "mode", mode)
	return nil
}

func stopProfile() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}

// expandHome resolves a leading ~ like storage.Open does.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// openStore opens the database. A failure is logged and the game runs
// with in-memory preferences.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database, preferences will not persist", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// newEnv builds the scene environment. A nil store falls back to memory.
func newEnv(gameID string, store *storage.Store, width, height int) *scene.Env {
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if store == nil {
		mem := scene.NewMemoryPrefs()
		return scene.NewEnv(rt, gameID, mem, mem, logger)
	}
	return scene.NewEnv(rt, gameID, store, store, logger)
}

// newAudio opens the speaker. Without a sound device the manager stays
// silent.
func newAudio() *audio.Manager {
	m := audio.NewManager(logger)
	//nolint:errcheck // Initialize logs the failure and degrades to silence
	m.Initialize()
	return m
}

// syncMute applies the stored mute setting of env to the music.
func syncMute(m *audio.Manager, env *scene.Env) {
	if env.Muted {
		m.SetMusicVolume(0)
	} else {
		m.SetMusicVolume(1)
	}
}
