package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/happy-bunny/internal/core"
	"github.com/vovakirdan/happy-bunny/internal/scene"
)

// Model is the Bubble Tea model that drives a scene director.
type Model struct {
	director    *scene.Director
	env         *scene.Env
	screen      *core.Screen
	keyMapper   *KeyMapper
	inputFrame  core.InputFrame
	sink        core.EventSink
	logger      *log.Logger
	quitting    bool
	interrupted bool // ctrl+c, as opposed to the director ending
}

// NewModel creates a model for a director whose scenes share env.
// sink may be nil.
func NewModel(director *scene.Director, env *scene.Env, sink core.EventSink) Model {
	logger := env.Logger
	if logger == nil {
		logger = log.Default()
	}
	if env.Runtime.TickRate <= 0 {
		env.Runtime.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		director:   director,
		env:        env,
		screen:     core.NewScreen(env.Runtime.ScreenW, env.Runtime.ScreenH),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		sink:       sink,
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.env.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.interrupted = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The running game keeps its
// playfield; the next scene is built for the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.env.Resize(msg.Width, msg.Height)
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the director by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	events := m.director.Update(m.inputFrame, m.env.Runtime.TickDelta())
	m.dispatch(events)

	// Clear input for next frame
	m.inputFrame.Clear()

	if m.director.Ended() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.env.Runtime.TickRate)
}

// dispatch forwards events to the sink and logs the interesting ones.
func (m Model) dispatch(events []core.Event) {
	if len(events) == 0 {
		return
	}
	if m.sink != nil {
		m.sink.HandleEvents(events)
	}
	for _, e := range events {
		switch e.Kind {
		case core.EventSceneChanged:
			m.logger.Debug("scene changed", "scene", e.Name, "depth", e.Value)
		case core.EventPlayerHit:
			m.logger.Debug("player hit", "x", e.X, "y", e.Y, "score", e.Value)
		case core.EventMuteToggled:
			m.logger.Debug("mute toggled", "muted", e.Value == 1)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.director.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".bunny", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.env.GameID, timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Ended reports whether the model has stopped, either because the
// director finished or because of ctrl+c.
func (m Model) Ended() bool {
	return m.quitting
}

// Interrupted reports whether the model stopped on ctrl+c.
func (m Model) Interrupted() bool {
	return m.interrupted
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.director.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts a full screen Bubble Tea program around the director.
func Run(director *scene.Director, env *scene.Env, sink core.EventSink) error {
	model := NewModel(director, env, sink)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Taps and drags
	)

	_, err := p.Run()
	return err
}
