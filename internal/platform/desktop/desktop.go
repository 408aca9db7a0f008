// Package desktop runs the scene director in an Ebitengine window. The
// window shows the same cell screen as the terminal, one basicfont glyph
// per cell; mouse clicks and touches become taps and drags.
package desktop

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/happy-bunny/internal/core"
	"github.com/vovakirdan/happy-bunny/internal/scene"
)

// Cell size in pixels, matching basicfont.Face7x13.
const (
	cellW      = 7
	cellH      = 13
	cellAscent = 11
)

// windowScale enlarges the logical cell grid on screen.
const windowScale = 2

var backgroundColor = color.RGBA{R: 0x10, G: 0x14, B: 0x1c, A: 0xff}

// Game adapts a scene director to ebiten.Game.
type Game struct {
	director *scene.Director
	env      *scene.Env
	screen   *core.Screen
	sink     core.EventSink
	logger   *log.Logger
	input    inputState
	frame    core.InputFrame
}

// NewGame creates a window game for a director whose scenes share env.
// sink may be nil.
func NewGame(director *scene.Director, env *scene.Env, sink core.EventSink) *Game {
	logger := env.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		director: director,
		env:      env,
		screen:   core.NewScreen(env.Runtime.ScreenW, env.Runtime.ScreenH),
		sink:     sink,
		logger:   logger,
		input:    newInputState(),
		frame:    core.NewInputFrame(),
	}
}

// Update reads input and advances the director by one tick.
func (g *Game) Update() error {
	g.input.collect(&g.frame)
	g.step()
	if g.director.Ended() {
		return ebiten.Termination
	}
	return nil
}

// step runs one director update with the collected frame.
func (g *Game) step() {
	events := g.director.Update(g.frame, g.env.Runtime.TickDelta())
	if len(events) > 0 {
		if g.sink != nil {
			g.sink.HandleEvents(events)
		}
		for _, e := range events {
			if e.Kind == core.EventSceneChanged {
				g.logger.Debug("scene changed", "scene", e.Name, "depth", e.Value)
			}
		}
	}
	g.frame.Clear()
}

// Draw renders the director into the cell buffer and paints it.
func (g *Game) Draw(dst *ebiten.Image) {
	dst.Fill(backgroundColor)
	g.director.Render(g.screen)

	for y := range g.screen.Height() {
		for x := range g.screen.Width() {
			c := g.screen.GetCell(x, y)
			if c.Rune == ' ' || c.Rune == 0 {
				continue
			}
			drawCell(dst, x, y, c)
		}
	}
}

// Layout keeps the logical size at the cell grid; ebiten scales it to the
// window.
func (g *Game) Layout(int, int) (int, int) {
	return g.screen.Width() * cellW, g.screen.Height() * cellH
}

// Run opens the window and blocks until the director ends or the window
// is closed.
func Run(director *scene.Director, env *scene.Env, sink core.EventSink, title string) error {
	rt := env.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
		env.Runtime.TickRate = rt.TickRate
	}

	ebiten.SetWindowSize(rt.ScreenW*cellW*windowScale, rt.ScreenH*cellH*windowScale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(rt.TickRate)

	if err := ebiten.RunGame(NewGame(director, env, sink)); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
