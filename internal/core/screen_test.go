package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, '*', ColorRed)
	cell := s.GetCell(3, 2)
	if cell.Rune != '*' || cell.Color != ColorRed {
		t.Errorf("GetCell(3, 2) = %+v, expected red '*'", cell)
	}
	if s.Get(3, 2) != '*' {
		t.Errorf("Get(3, 2) = %q, expected '*'", s.Get(3, 2))
	}

	// Plain Set uses the default color
	s.Set(4, 2, '#')
	if c := s.GetCell(4, 2); c.Color != ColorDefault {
		t.Errorf("Set should use ColorDefault, got %v", c.Color)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Should not panic
	s.SetCell(-1, 0, 'x', ColorRed)
	s.SetCell(0, -1, 'x', ColorRed)
	s.SetCell(10, 0, 'x', ColorRed)
	s.SetCell(0, 5, 'x', ColorRed)

	if c := s.GetCell(-1, -1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, expected uncolored space", c)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, 'x', ColorBlue)
	s.Clear()

	if c := s.GetCell(1, 1); c.Rune != ' ' || c.Color != ColorDefault {
		t.Errorf("cell after Clear = %+v, expected uncolored space", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(2, 1, "hi", ColorGreen)

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("row 1 = %q, expected text at x=2", s.Row(1))
	}
	if s.GetCell(2, 1).Color != ColorGreen {
		t.Error("DrawTextColored should carry the color")
	}

	// Clipped text must not panic
	s.DrawText(8, 1, "long text")
	if s.Get(9, 1) != 'o' {
		t.Errorf("clipped text: Get(9, 1) = %q, expected 'o'", s.Get(9, 1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	expected := strings.Join([]string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("box render:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.SetCell(2, 2, 'x', ColorCyan)

	s.Resize(10, 8)
	if c := s.GetCell(2, 2); c.Rune != 'x' || c.Color != ColorCyan {
		t.Errorf("cell after grow = %+v, expected cyan 'x'", c)
	}

	s.Resize(2, 2)
	if s.Width() != 2 || s.Height() != 2 {
		t.Errorf("size after shrink = %dx%d, expected 2x2", s.Width(), s.Height())
	}
	if c := s.GetCell(2, 2); c.Rune != ' ' {
		t.Errorf("out-of-bounds cell after shrink = %+v, expected space", c)
	}
}
