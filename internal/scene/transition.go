package scene

import (
	"math"

	"github.com/vovakirdan/happy-bunny/internal/core"
)

// flipTransition squeezes the old scene to a sliver, then widens the new
// one back out, like a card flipped around its vertical axis.
type flipTransition struct {
	from, to Scene
	duration float64
	elapsed  float64
}

func (f *flipTransition) done() bool {
	return f.elapsed >= f.duration
}

func (f *flipTransition) progress() float64 {
	if f.duration <= 0 {
		return 1
	}
	return core.ClampF(f.elapsed/f.duration, 0, 1)
}

func (f *flipTransition) render(dst, scratch *core.Screen) {
	p := f.progress()

	s, scale := f.from, 1-2*p
	if p >= 0.5 {
		s, scale = f.to, 2*p-1
	}

	scratch.Resize(dst.Width(), dst.Height())
	scratch.Clear()
	s.Render(scratch)
	squeeze(dst, scratch, scale)
}

// squeeze copies src into dst scaled horizontally around the center.
func squeeze(dst, src *core.Screen, scale float64) {
	w, h := dst.Width(), dst.Height()
	visible := int(math.Round(float64(w) * scale))
	if visible <= 0 {
		dst.DrawVLine(w/2, 0, h, '│')
		return
	}

	left := (w - visible) / 2
	for x := 0; x < visible; x++ {
		sx := x * src.Width() / visible
		for y := 0; y < h; y++ {
			c := src.GetCell(sx, y)
			dst.SetColor(left+x, y, c.Rune, c.Color)
		}
	}
}
