package scene

import (
	"fmt"

	"github.com/vovakirdan/happy-bunny/internal/core"
	"github.com/vovakirdan/happy-bunny/internal/registry"
)

// menuItem is one line of the title menu. An empty id means quit.
type menuItem struct {
	id    string
	label string
	best  int
}

// MenuScene is the title menu: pick a variant or quit.
type MenuScene struct {
	dir      *Director
	env      *Env
	items    []menuItem
	cursor   int
	backdrop registry.Game
}

// NewMenuScene lists the registered variants with their best scores. A
// demo game of the current variant idles behind the menu.
func NewMenuScene(dir *Director, env *Env) *MenuScene {
	s := &MenuScene{dir: dir, env: env}

	for i, g := range registry.List() {
		item := menuItem{id: g.ID, label: g.Title}
		if env.Scores != nil {
			if best, err := env.Scores.HighScore(g.ID); err == nil {
				item.best = best
			} else {
				env.Logger.Warn("could not read high score", "game", g.ID, "error", err)
			}
		}
		if g.ID == env.GameID {
			s.cursor = i
		}
		s.items = append(s.items, item)
	}
	s.items = append(s.items, menuItem{label: "Quit"})

	if len(s.items) > 1 {
		if g, err := registry.Create(s.items[s.cursor].id); err == nil {
			rt := env.Runtime
			g.Reset(rt)
			g.Step(core.NewInputFrame()) // drop the first wave
			if m, ok := g.(menuEnterer); ok {
				m.EnterMenu(1)
			}
			s.backdrop = g
		}
	}

	return s
}

// Name returns the scene name.
func (s *MenuScene) Name() string {
	return "menu"
}

// Selected returns the id under the cursor; empty for Quit.
func (s *MenuScene) Selected() string {
	return s.items[s.cursor].id
}

// Update moves the cursor and starts the chosen variant.
func (s *MenuScene) Update(in core.InputFrame, dt float64) []core.Event {
	if in.Has(core.ActionQuit) || in.Has(core.ActionBack) {
		s.dir.End()
		return nil
	}
	if in.Has(core.ActionUp) && s.cursor > 0 {
		s.cursor--
	}
	if in.Has(core.ActionDown) && s.cursor < len(s.items)-1 {
		s.cursor++
	}

	choose := in.Has(core.ActionConfirm)
	for _, p := range in.Taps() {
		if i := p.Y - s.firstRow(); i >= 0 && i < len(s.items) {
			s.cursor = i
			choose = true
		}
	}
	if !choose {
		return nil
	}

	item := s.items[s.cursor]
	if item.id == "" {
		s.dir.End()
		return nil
	}

	s.env.GameID = item.id
	seed := s.env.Runtime.Seed
	if seed == 0 {
		seed = s.env.nextSeed()
	}
	main, err := NewMainScene(s.dir, s.env, seed)
	if err != nil {
		s.env.Logger.Error("could not start game", "game", item.id, "error", err)
		return nil
	}
	s.dir.Replace(main, MenuFlip)
	return nil
}

func (s *MenuScene) firstRow() int {
	return s.env.Runtime.ScreenH/2 - len(s.items)/2
}

// Render draws the title, the variant list and the controls hint.
func (s *MenuScene) Render(dst *core.Screen) {
	if s.backdrop != nil {
		s.backdrop.Render(dst)
	}

	top := s.firstRow()
	dst.DrawTextCenteredColor(top-3, "H A P P Y   B U N N Y", core.ColorPink)

	for i, item := range s.items {
		cursor := "  "
		c := core.ColorWhite
		if i == s.cursor {
			cursor = "> "
			c = core.ColorBrightYellow
		}
		line := cursor + item.label
		if item.id != "" && item.best > 0 {
			line += fmt.Sprintf("  (best %d)", item.best)
		}
		dst.DrawTextCenteredColor(top+i, line, c)
	}

	dst.DrawTextCenteredColor(top+len(s.items)+2,
		"Up/Down: Navigate  |  Enter: Play  |  Q: Quit", core.ColorGray)
	dst.DrawTextCenteredColor(top+len(s.items)+3,
		"Full score table: bunny scores", core.ColorGray)
}
