package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/happy-bunny/internal/games/bunny"
	"github.com/vovakirdan/happy-bunny/internal/storage"
)

func TestVariantArg(t *testing.T) {
	if got := variantArg(nil); got != bunny.IDClassic {
		t.Errorf("variantArg(nil) = %q, want %q", got, bunny.IDClassic)
	}
	if got := variantArg([]string{bunny.IDPhysics}); got != bunny.IDPhysics {
		t.Errorf("variantArg() = %q, want %q", got, bunny.IDPhysics)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := expandHome("~/.bunny/log"); got != filepath.Join(home, ".bunny/log") {
		t.Errorf("expandHome() = %q", got)
	}
	if got := expandHome("/tmp/x"); got != "/tmp/x" {
		t.Errorf("expandHome() changed an absolute path: %q", got)
	}
}

func TestSetupRejectsBadFlags(t *testing.T) {
	flagLogLevel = "loud"
	if err := setupLogger(false); err == nil {
		t.Error("unknown log level should fail")
	}
	flagLogLevel = "info"

	if err := startProfile("gpu"); err == nil {
		t.Error("unknown profile mode should fail")
	}
	if err := startProfile(""); err != nil {
		t.Errorf("empty profile mode should be a no-op, got %v", err)
	}
}

func TestSetupLoggerWritesFile(t *testing.T) {
	flagLogLevel = "debug"
	flagLogFile = filepath.Join(t.TempDir(), "logs", "bunny.log")
	t.Cleanup(func() {
		closeLogFile()
		flagLogFile = ""
		flagLogLevel = "info"
	})

	if err := setupLogger(false); err != nil {
		t.Fatalf("setupLogger() error = %v", err)
	}
	logger.Info("hello")

	data, err := os.ReadFile(flagLogFile)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("log file should not be empty")
	}
}

func TestNewEnvWithoutStore(t *testing.T) {
	flagFPS = 30
	flagSeed = 9
	env := newEnv(bunny.IDClassic, nil, 40, 20)
	if env.Runtime.TickRate != 30 || env.Runtime.Seed != 9 || env.Runtime.ScreenW != 40 {
		t.Errorf("runtime = %+v", env.Runtime)
	}
	if env.Prefs == nil || env.Scores == nil {
		t.Fatal("env should fall back to memory preferences")
	}
	if err := env.Scores.RecordGameOver(bunny.IDClassic, 30); err != nil {
		t.Fatal(err)
	}
	if v, _ := env.Prefs.Int(storage.PrefLastScore, 0); v != 30 {
		t.Errorf("last score = %d, want 30", v)
	}
}

func TestRenderTable(t *testing.T) {
	out := ansi.Strip(renderTable([]string{"Rank", "Score"}, [][]string{{"#1", "120"}, {"#2", "80"}}))

	for _, want := range []string{"Rank", "Score", "#1", "120", "#2", "80"} {
		if !strings.Contains(out, want) {
			t.Errorf("table is missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "╭") {
		t.Error("table should use a rounded border")
	}
}
