package core

import (
	"strings"
	"testing"
)

// rows returns the screen content split into lines.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	for y, row := range rows(s) {
		if row != strings.Repeat(" ", 12) {
			t.Errorf("row %d = %q, want blank", y, row)
		}
	}
}

func TestScreenCellAccess(t *testing.T) {
	s := NewScreen(5, 3)
	s.Set(1, 1, 'x')
	s.SetColor(2, 1, 'y', ColorPink)

	tests := []struct {
		name string
		x, y int
		want Cell
	}{
		{"plain", 1, 1, Cell{Rune: 'x', Color: ColorDefault}},
		{"colored", 2, 1, Cell{Rune: 'y', Color: ColorPink}},
		{"untouched", 0, 0, Cell{Rune: ' '}},
		{"left of screen", -1, 1, Cell{Rune: ' '}},
		{"below screen", 1, 3, Cell{Rune: ' '}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.GetCell(tt.x, tt.y); got != tt.want {
				t.Errorf("GetCell(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
			if got := s.Get(tt.x, tt.y); got != tt.want.Rune {
				t.Errorf("Get(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want.Rune)
			}
		})
	}
}

func TestScreenOutOfBoundsWritesAreDropped(t *testing.T) {
	s := NewScreen(3, 2)
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 2}} {
		s.SetColor(p[0], p[1], '#', ColorRed)
	}
	if strings.ContainsRune(s.String(), '#') {
		t.Errorf("out of bounds write leaked into:\n%s", s.String())
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawRectColor(NewRect(0, 0, 4, 2), '#', ColorOrange)
	s.Clear()

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("cell (%d,%d) = %+v after Clear", x, y, c)
			}
		}
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(3, 2)
	s.SetColor(0, 0, 'a', ColorGreen)
	s.Fill('.')

	if got := s.String(); got != "...\n..." {
		t.Errorf("String() = %q", got)
	}
	if c := s.GetCell(0, 0); c.Color != ColorDefault {
		t.Errorf("Fill should drop colors, got %v", c.Color)
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{"at origin", func(s *Screen) { s.DrawText(0, 0, "hop") }, "hop     "},
		{"clipped right", func(s *Screen) { s.DrawText(6, 0, "hop") }, "      ho"},
		{"clipped left", func(s *Screen) { s.DrawText(-2, 0, "hop") }, "p       "},
		{"centered", func(s *Screen) { s.DrawTextCentered(0, "hop") }, "  hop   "},
		{"multibyte", func(s *Screen) { s.DrawText(1, 0, "✸×") }, " ✸×     "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(8, 1)
			tt.draw(s)
			if got := s.Row(0); got != tt.want {
				t.Errorf("Row(0) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScreenDrawTextColor(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColor(1, 0, "ab", ColorYellow)
	s.DrawTextCenteredColor(1, "cd", ColorCyan)

	if c := s.GetCell(2, 0); c != (Cell{Rune: 'b', Color: ColorYellow}) {
		t.Errorf("cell (2,0) = %+v", c)
	}
	if c := s.GetCell(4, 1); c != (Cell{Rune: 'c', Color: ColorCyan}) {
		t.Errorf("cell (4,1) = %+v", c)
	}
	if c := s.GetCell(3, 0); c != blank {
		t.Errorf("text should not spill, got %+v", c)
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawRectColor(NewRect(1, 1, 3, 2), '=', ColorBlue)
	s.DrawRect(NewRect(4, 3, 5, 5), '+')

	want := []string{
		"     ",
		" === ",
		" === ",
		"    +",
	}
	for y, row := range rows(s) {
		if row != want[y] {
			t.Errorf("row %d = %q, want %q", y, row, want[y])
		}
	}
	if s.GetCell(2, 2).Color != ColorBlue {
		t.Error("rect should carry its color")
	}
}

func TestScreenDrawBoxAndLines(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 4, 3))
	s.DrawHLine(0, 3, 3, '~')
	s.DrawVLine(5, 0, 10, '|')

	want := []string{
		"┌──┐ |",
		"│  │ |",
		"└──┘ |",
		"~~~  |",
	}
	for y, row := range rows(s) {
		if row != want[y] {
			t.Errorf("row %d = %q, want %q", y, row, want[y])
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColor(0, 0, 'a', ColorPink)
	s.Set(3, 1, 'z')

	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", s.Width(), s.Height())
	}
	if c := s.GetCell(0, 0); c != (Cell{Rune: 'a', Color: ColorPink}) {
		t.Errorf("kept cell = %+v", c)
	}
	if got := s.String(); got != "a \n  \n  " {
		t.Errorf("String() = %q", got)
	}

	// Same size is a no-op
	s.Set(1, 2, 'q')
	s.Resize(2, 3)
	if s.Get(1, 2) != 'q' {
		t.Error("resize to the same size should keep content")
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, want blank row", got)
	}
}
