package scene

import (
	"strconv"

	"github.com/vovakirdan/happy-bunny/internal/core"
	"github.com/vovakirdan/happy-bunny/internal/registry"
)

// GameOverScene shows the stored score and offers another run.
type GameOverScene struct {
	dir      *Director
	env      *Env
	backdrop registry.Game
	score    int
	best     int
	playBtn  button
}

// NewGameOverScene reads the last score from preferences. The finished
// game, if given, stays visible behind the panel.
func NewGameOverScene(dir *Director, env *Env, backdrop registry.Game) *GameOverScene {
	score, err := env.Prefs.Int(PrefScore, 0)
	if err != nil {
		env.Logger.Warn("could not read last score", "error", err)
	}

	best := score
	if env.Scores != nil {
		if hs, err := env.Scores.HighScore(env.GameID); err != nil {
			env.Logger.Warn("could not read high score", "error", err)
		} else if hs > best {
			best = hs
		}
	}

	if m, ok := backdrop.(menuEnterer); ok {
		m.EnterMenu(2)
	}

	w, h := env.Runtime.ScreenW, env.Runtime.ScreenH
	return &GameOverScene{
		dir:      dir,
		env:      env,
		backdrop: backdrop,
		score:    score,
		best:     best,
		playBtn:  centeredButton("[ Play ]", w, h/2+3),
	}
}

// Name returns the scene name.
func (s *GameOverScene) Name() string {
	return "gameover"
}

// Score returns the score read from preferences.
func (s *GameOverScene) Score() int {
	return s.score
}

// Update restarts on play and leaves on back.
func (s *GameOverScene) Update(in core.InputFrame, dt float64) []core.Event {
	switch {
	case in.Has(core.ActionQuit), in.Has(core.ActionBack):
		s.dir.End()
	case in.Has(core.ActionConfirm), in.Has(core.ActionRestart), s.playBtn.tapped(in):
		main, err := NewMainScene(s.dir, s.env, s.env.nextSeed())
		if err != nil {
			s.env.Logger.Error("could not restart", "error", err)
			s.dir.End()
			return nil
		}
		s.dir.Replace(main, RestartFlip)
	}
	return nil
}

// Render draws the game over panel.
func (s *GameOverScene) Render(dst *core.Screen) {
	if s.backdrop != nil {
		s.backdrop.Render(dst)
	}
	drawPanel(dst, []string{
		"Game Over",
		"",
		"Your score is",
		strconv.Itoa(s.score),
		"Best: " + strconv.Itoa(s.best),
		"",
	}, core.ColorBrightWhite)
	s.playBtn.draw(dst, core.ColorBrightGreen)
}
