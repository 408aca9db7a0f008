package bunny

import "github.com/vovakirdan/happy-bunny/internal/core"

// Explosion is the short burst left behind by a tapped bomb.
type Explosion struct {
	X, Y int
	Age  float64
}

// burstDirs are the eight directions sparks fly in.
var burstDirs = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// updateExplosions ages the bursts and drops the finished ones.
func updateExplosions(list []Explosion, dt, duration float64) []Explosion {
	kept := list[:0]
	for _, e := range list {
		e.Age += dt
		if e.Age < duration {
			kept = append(kept, e)
		}
	}
	return kept
}

// drawExplosion renders a ring of sparks that grows with age.
func drawExplosion(dst *core.Screen, e Explosion, duration float64, radius int) {
	if duration <= 0 {
		return
	}
	progress := e.Age / duration
	r := 1 + int(progress*float64(radius))

	spark := '*'
	color := core.ColorBrightYellow
	if progress > 0.5 {
		spark = '·'
		color = core.ColorOrange
	}

	dst.SetColor(e.X, e.Y, '✸', core.ColorBrightRed)
	for _, d := range burstDirs {
		dst.SetColor(e.X+d[0]*r*2, e.Y+d[1]*r, spark, color)
	}
}
