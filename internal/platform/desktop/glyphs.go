package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/happy-bunny/internal/core"
)

// palette approximates the terminal colors.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
	core.ColorRed:           {R: 0xcd, G: 0x31, B: 0x31, A: 0xff},
	core.ColorGreen:         {R: 0x0d, G: 0xbc, B: 0x79, A: 0xff},
	core.ColorYellow:        {R: 0xe5, G: 0xe5, B: 0x10, A: 0xff},
	core.ColorBlue:          {R: 0x24, G: 0x72, B: 0xc8, A: 0xff},
	core.ColorMagenta:       {R: 0xbc, G: 0x3f, B: 0xbc, A: 0xff},
	core.ColorCyan:          {R: 0x11, G: 0xa8, B: 0xcd, A: 0xff},
	core.ColorWhite:         {R: 0xe5, G: 0xe5, B: 0xe5, A: 0xff},
	core.ColorBrightRed:     {R: 0xf1, G: 0x4c, B: 0x4c, A: 0xff},
	core.ColorBrightGreen:   {R: 0x23, G: 0xd1, B: 0x8b, A: 0xff},
	core.ColorBrightYellow:  {R: 0xf5, G: 0xf5, B: 0x43, A: 0xff},
	core.ColorBrightBlue:    {R: 0x3b, G: 0x8e, B: 0xea, A: 0xff},
	core.ColorBrightMagenta: {R: 0xd6, G: 0x70, B: 0xd6, A: 0xff},
	core.ColorBrightCyan:    {R: 0x29, G: 0xb8, B: 0xdb, A: 0xff},
	core.ColorBrightWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorOrange:        {R: 0xff, G: 0x87, B: 0x00, A: 0xff},
	core.ColorGray:          {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
	core.ColorPink:          {R: 0xff, G: 0x87, B: 0xff, A: 0xff},
}

func colorOf(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// substitutes replaces runes basicfont has no glyph for and that are not
// drawn as shapes.
var substitutes = map[rune]rune{
	'✸': '*',
	'┌': '+',
	'┐': '+',
	'└': '+',
	'┘': '+',
	'♪': 'd',
}

// glyphFor returns the rune to draw with basicfont, or 0 when the cell is
// drawn as a shape.
func glyphFor(r rune) rune {
	switch r {
	case '●', '•', '▔', '│', '─':
		return 0
	}
	if s, ok := substitutes[r]; ok {
		return s
	}
	if r > 0xff {
		return '?'
	}
	return r
}

// drawCell paints one screen cell at cell coordinates (x, y).
func drawCell(dst *ebiten.Image, x, y int, c core.Cell) {
	clr := colorOf(c.Color)
	px, py := float64(x*cellW), float64(y*cellH)

	switch c.Rune {
	case '●':
		ebitenutil.DrawCircle(dst, px+cellW/2.0, py+cellH/2.0, cellW/2.0, clr)
		return
	case '•':
		ebitenutil.DrawCircle(dst, px+cellW/2.0, py+cellH/2.0, cellW/4.0, clr)
		return
	case '▔':
		ebitenutil.DrawRect(dst, px, py, cellW, 2, clr)
		return
	case '│':
		ebitenutil.DrawRect(dst, px+cellW/2.0-0.5, py, 1, cellH, clr)
		return
	case '─':
		ebitenutil.DrawRect(dst, px, py+cellH/2.0-0.5, cellW, 1, clr)
		return
	}

	g := glyphFor(c.Rune)
	if g == 0 {
		return
	}
	text.Draw(dst, string(g), basicfont.Face7x13, x*cellW, y*cellH+cellAscent, clr)
}
