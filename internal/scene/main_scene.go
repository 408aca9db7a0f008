package scene

import (
	"fmt"

	"github.com/vovakirdan/happy-bunny/internal/core"
	"github.com/vovakirdan/happy-bunny/internal/registry"
)

// menuEnterer is implemented by games that can idle behind a menu.
type menuEnterer interface {
	EnterMenu(n int)
}

// MainScene runs one game until the bunny is hit.
type MainScene struct {
	dir      *Director
	env      *Env
	game     registry.Game
	pauseBtn button
	muteBtn  button
	finished bool
}

// NewMainScene creates and resets a game of the variant named by env.GameID.
// The first run of a session uses the configured seed, later runs reseed.
func NewMainScene(dir *Director, env *Env, seed int64) (*MainScene, error) {
	game, err := registry.Create(env.GameID)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	rt := env.Runtime
	rt.Seed = seed
	game.Reset(rt)

	w := rt.ScreenW
	return &MainScene{
		dir:      dir,
		env:      env,
		game:     game,
		pauseBtn: newButton("[||]", w-9, 0),
		muteBtn:  newButton("[♪]", w-4, 0),
	}, nil
}

// Name returns the scene name.
func (s *MainScene) Name() string {
	return "main"
}

// Game returns the running game.
func (s *MainScene) Game() registry.Game {
	return s.game
}

// Update steps the game and handles the scene-level buttons.
func (s *MainScene) Update(in core.InputFrame, dt float64) []core.Event {
	if in.Has(core.ActionQuit) || in.Has(core.ActionBack) {
		s.dir.End()
		return nil
	}

	var events []core.Event

	if in.Has(core.ActionMute) || s.muteBtn.tapped(in) {
		events = append(events, s.toggleMute())
	}

	if !s.finished && (in.Has(core.ActionPause) || s.pauseBtn.tapped(in)) {
		s.dir.Push(NewPauseScene(s.dir, s.env, s))
		return events
	}

	frame := without(in, []core.Action{core.ActionPause, core.ActionMute}, s.pauseBtn, s.muteBtn)
	res := s.game.Step(frame)
	events = append(events, res.Events...)

	if res.State.GameOver && !s.finished {
		s.finished = true
		s.finish(res.State.Score)
	}

	return events
}

// toggleMute flips the music setting and persists it.
func (s *MainScene) toggleMute() core.Event {
	s.env.Muted = !s.env.Muted
	v := 0
	if s.env.Muted {
		v = 1
	}
	if err := s.env.Prefs.SetInt(PrefMuted, v); err != nil {
		s.env.Logger.Warn("could not save mute preference", "error", err)
	}
	return core.Event{Kind: core.EventMuteToggled, Value: v}
}

// finish stores the score and flips to the game over scene.
func (s *MainScene) finish(score int) {
	var err error
	if s.env.Scores != nil {
		err = s.env.Scores.RecordGameOver(s.game.ID(), score)
	} else {
		err = s.env.Prefs.SetInt(PrefScore, score)
	}
	if err != nil {
		s.env.Logger.Warn("could not save score", "game", s.game.ID(), "score", score, "error", err)
	}

	s.env.Logger.Info("game over", "game", s.game.ID(), "score", score)
	s.dir.Replace(NewGameOverScene(s.dir, s.env, s.game), GameOverFlip)
}

// Render draws the game plus the pause and mute buttons.
func (s *MainScene) Render(dst *core.Screen) {
	s.game.Render(dst)

	s.pauseBtn.draw(dst, core.ColorBrightWhite)
	if s.env.Muted {
		s.muteBtn.label = "[×]"
		s.muteBtn.draw(dst, core.ColorGray)
	} else {
		s.muteBtn.label = "[♪]"
		s.muteBtn.draw(dst, core.ColorBrightWhite)
	}
}
