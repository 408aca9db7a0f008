package scene

import (
	"github.com/vovakirdan/happy-bunny/internal/core"
)

// PauseScene sits on top of a frozen MainScene until play is pressed.
type PauseScene struct {
	dir     *Director
	env     *Env
	under   Scene
	playBtn button
}

// NewPauseScene creates the pause overlay for the given scene.
func NewPauseScene(dir *Director, env *Env, under Scene) *PauseScene {
	w, h := env.Runtime.ScreenW, env.Runtime.ScreenH
	return &PauseScene{
		dir:     dir,
		env:     env,
		under:   under,
		playBtn: centeredButton("[ Play ]", w, h/2+1),
	}
}

// Name returns the scene name.
func (s *PauseScene) Name() string {
	return "pause"
}

// Update pops back to the game on play, pause or confirm.
func (s *PauseScene) Update(in core.InputFrame, dt float64) []core.Event {
	switch {
	case in.Has(core.ActionQuit):
		s.dir.End()
	case in.Has(core.ActionConfirm), in.Has(core.ActionPause), in.Has(core.ActionBack), s.playBtn.tapped(in):
		s.dir.Pop()
	}
	return nil
}

// Render draws the frozen game with the pause panel over it.
func (s *PauseScene) Render(dst *core.Screen) {
	if s.under != nil {
		s.under.Render(dst)
	}
	drawPanel(dst, []string{"PAUSE", "", ""}, core.ColorBrightYellow)
	s.playBtn.draw(dst, core.ColorBrightGreen)
}
