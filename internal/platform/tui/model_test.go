package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/happy-bunny/internal/core"
	"github.com/vovakirdan/happy-bunny/internal/games/bunny"
	"github.com/vovakirdan/happy-bunny/internal/scene"
)

type recordingSink struct {
	events []core.Event
}

func (s *recordingSink) HandleEvents(events []core.Event) {
	s.events = append(s.events, events...)
}

func newTestEnv(t *testing.T) *scene.Env {
	t.Helper()
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
	return scene.NewEnv(rt, bunny.IDClassic, scene.NewMemoryPrefs(), nil, log.New(io.Discard))
}

func newTestModel(t *testing.T) (Model, *recordingSink) {
	t.Helper()
	env := newTestEnv(t)
	dir, err := scene.NewGameDirector(env)
	if err != nil {
		t.Fatalf("NewGameDirector() error = %v", err)
	}
	sink := &recordingSink{}
	return NewModel(dir, env, sink), sink
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelTickDrivesDirector(t *testing.T) {
	m, sink := newTestModel(t)

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if m.Ended() {
		t.Fatal("model should keep running")
	}

	var sawMain, sawSpawn bool
	for _, e := range sink.events {
		if e.Kind == core.EventSceneChanged && e.Name == "main" {
			sawMain = true
		}
		if e.Kind == core.EventBombSpawned {
			sawSpawn = true
		}
	}
	if !sawMain {
		t.Error("sink should see the main scene start")
	}
	if !sawSpawn {
		t.Error("first tick should spawn a wave")
	}

	if view := m.View(); !strings.Contains(view, "Score:") {
		t.Errorf("view should show the score, got:\n%s", view)
	}
}

func TestModelBackEndsDirector(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, runeKey("b"))
	m, cmd := update(t, m, TickMsg(time.Now()))

	if !isQuit(cmd) {
		t.Error("ended director should quit the program")
	}
	if !m.Ended() || m.Interrupted() {
		t.Errorf("Ended() = %v, Interrupted() = %v, want true, false", m.Ended(), m.Interrupted())
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelCtrlCInterrupts(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit immediately")
	}
	if !m.Interrupted() {
		t.Error("ctrl+c should mark the model interrupted")
	}
}

func TestModelResizeUpdatesEnv(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.env.Runtime.ScreenW != 100 || m.env.Runtime.ScreenH != 30 {
		t.Errorf("env size = %dx%d, want 100x30", m.env.Runtime.ScreenW, m.env.Runtime.ScreenH)
	}
	if m.screen.Width() != 100 {
		t.Errorf("screen width = %d, want 100", m.screen.Width())
	}
}

func TestModelDefaultsTickRate(t *testing.T) {
	env := newTestEnv(t)
	env.Runtime.TickRate = 0
	dir, err := scene.NewGameDirector(env)
	if err != nil {
		t.Fatal(err)
	}
	NewModel(dir, env, nil)
	if env.Runtime.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", env.Runtime.TickRate)
	}
}

func TestSessionStoreWithoutDatabase(t *testing.T) {
	s := newSessionStore(nil)

	if err := s.RecordGameOver(bunny.IDClassic, 40); err != nil {
		t.Fatal(err)
	}
	if v, _ := s.Int(scene.PrefScore, 0); v != 40 {
		t.Errorf("last score = %d, want 40", v)
	}
	if best, _ := s.HighScore(bunny.IDClassic); best != 40 {
		t.Errorf("best = %d, want 40", best)
	}
}

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T, want SessionModel", next)
	}
	return nm, cmd
}

func TestSessionModelFlow(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewSessionModel(nil, cfg, log.New(io.Discard))

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateGame {
		t.Fatalf("state = %v, want game", m.state)
	}
	if isQuit(cmd) {
		t.Fatal("starting a game must not quit the session")
	}

	m, _ = updateSession(t, m, runeKey("b"))
	m, cmd = updateSession(t, m, TickMsg(time.Now()))
	if m.state != stateMenu {
		t.Fatalf("state = %v, want menu after leaving the game", m.state)
	}
	if isQuit(cmd) {
		t.Fatal("leaving a game must not quit the session")
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != stateScores {
		t.Fatalf("state = %v, want scores", m.state)
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard should render")
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.state != stateMenu {
		t.Fatalf("state = %v, want menu after the scoreboard", m.state)
	}

	m, cmd = updateSession(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) || m.View() != "" {
		t.Error("ctrl+c in the menu should end the session")
	}
}
