package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	if got, want := s.String(), "      \n      \n      "; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.SetColored(p[0], p[1], 'X', ColorGreen)
		if c := s.GetCell(p[0], p[1]); c.Rune != ' ' || c.Color != ColorDefault {
			t.Errorf("GetCell(%d, %d) = %+v, want blank", p[0], p[1], c)
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out of bounds write leaked into the buffer")
	}
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, want blank row", got)
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(5, 5)
	s.FillRect(NewRect(1, 1, 2, 3), '#', ColorGreen)

	for y := 1; y < 4; y++ {
		for x := 1; x < 3; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorGreen {
				t.Errorf("cell (%d, %d) = %+v after FillRect", x, y, c)
			}
		}
	}
	if s.Get(0, 0) != ' ' || s.Get(3, 1) != ' ' {
		t.Error("FillRect wrote outside its rect")
	}

	s.Clear()
	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("cell after Clear = %+v", c)
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name  string
		x     int
		text  string
		color Color
		want  string
	}{
		{"plain", 1, "hi", ColorDefault, " hi   "},
		{"clipped right", 4, "hello", ColorDefault, "    he"},
		{"clipped left", -2, "hello", ColorDefault, "llo   "},
		{"multibyte", 0, "éab", ColorYellow, "éab   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(6, 1)
			if tt.color == ColorDefault {
				s.DrawText(tt.x, 0, tt.text)
			} else {
				s.DrawTextColored(tt.x, 0, tt.text, tt.color)
			}
			if got := s.Row(0); got != tt.want {
				t.Errorf("Row(0) = %q, want %q", got, tt.want)
			}
			if tt.color != ColorDefault && s.GetCell(2, 0).Color != tt.color {
				t.Errorf("color = %d, want %d", s.GetCell(2, 0).Color, tt.color)
			}
		})
	}
}

func TestScreenBoxOverBlankRect(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawHLine(0, 2, 7, '=', ColorGray)

	r := NewRect(1, 1, 5, 3)
	s.DrawRect(r, ' ')
	s.DrawBox(r)

	want := []string{
		"       ",
		" ┌───┐ ",
		"=│   │=",
		" └───┘ ",
		"       ",
	}
	for y, row := range want {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, want %q", y, got, row)
		}
	}
	if s.GetCell(0, 2).Color != ColorGray {
		t.Error("DrawHLine lost its color")
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 9, "Gone")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 8x4", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("row 0 = %q after shrink", s.Row(0))
	}

	s.Resize(12, 6)
	if got := s.Row(0); got != "Hello       " {
		t.Errorf("row 0 = %q after grow", got)
	}
	if strings.Contains(s.String(), "Gone") {
		t.Error("cropped text came back after grow")
	}
}
