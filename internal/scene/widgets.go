package scene

import (
	"github.com/vovakirdan/happy-bunny/internal/core"
)

// button is a tappable label.
type button struct {
	label string
	rect  core.Rect
}

func newButton(label string, x, y int) button {
	return button{label: label, rect: core.NewRect(x, y, len([]rune(label)), 1)}
}

// centeredButton places a button horizontally centered on row y.
func centeredButton(label string, screenW, y int) button {
	return newButton(label, (screenW-len([]rune(label)))/2, y)
}

func (b button) draw(dst *core.Screen, c core.Color) {
	dst.DrawTextColor(b.rect.X, b.rect.Y, b.label, c)
}

// tapped reports whether any tap of the frame landed on the button.
func (b button) tapped(in core.InputFrame) bool {
	for _, p := range in.Taps() {
		if b.rect.Contains(p.X, p.Y) {
			return true
		}
	}
	return false
}

// drawPanel draws a boxed panel with centered lines in the middle of the
// screen and returns the panel rectangle.
func drawPanel(dst *core.Screen, lines []string, c core.Color) core.Rect {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	boxW := width + 6
	boxH := len(lines) + 4
	r := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	for i, l := range lines {
		x := r.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColor(x, r.Y+2+i, l, c)
	}
	return r
}

// without returns a copy of the frame minus the given actions and minus
// the taps that hit any of the buttons.
func without(in core.InputFrame, actions []core.Action, buttons ...button) core.InputFrame {
	out := core.NewInputFrame()
	for a, on := range in.Actions {
		if !on {
			continue
		}
		skip := false
		for _, drop := range actions {
			if a == drop {
				skip = true
				break
			}
		}
		if !skip {
			out.Set(a)
		}
	}

	for _, p := range in.Pointers {
		consumed := false
		if p.Kind == core.PointerDown {
			for _, b := range buttons {
				if b.rect.Contains(p.X, p.Y) {
					consumed = true
					break
				}
			}
		}
		if !consumed {
			out.AddPointer(p.Kind, p.X, p.Y)
		}
	}
	return out
}
