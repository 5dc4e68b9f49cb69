package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with default-colored spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("new screen cell at (%d, %d) = %q/%d, expected space/default", x, y, cell.Rune, cell.Color)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', PaletteSlot(3))
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' {
		t.Errorf("GetCell(5, 5).Rune = %q, expected 'X'", cell.Rune)
	}
	if cell.Color != PaletteSlot(3) {
		t.Errorf("GetCell(5, 5).Color = %d, expected palette slot 3", cell.Color)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return a default space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Color != ColorDefault {
		t.Error("Out of bounds GetCell should return default color")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, 'X', ColorAccent)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("after Clear, cell (%d, %d) = %q/%d", x, y, cell.Rune, cell.Color)
			}
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetCell(2, 3, 'Z', PaletteSlot(7))

	s.Resize(20, 5)
	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("size after resize = %dx%d, expected 20x5", s.Width(), s.Height())
	}
	cell := s.GetCell(2, 3)
	if cell.Rune != 'Z' || cell.Color != PaletteSlot(7) {
		t.Errorf("cell (2,3) after resize = %q/%d, expected Z/slot 7", cell.Rune, cell.Color)
	}

	s.Resize(3, 3)
	if s.Get(2, 3) != ' ' {
		t.Error("shrunk-away cell should read as space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColor(2, 1, "hello", ColorBright)

	if got := s.Row(1); !strings.Contains(got, "hello") {
		t.Errorf("row 1 = %q, expected to contain hello", got)
	}
	if s.GetCell(2, 1).Color != ColorBright {
		t.Error("drawn text should carry its color")
	}

	// Clipped text must not panic and must clip
	s.DrawText(18, 0, "overflow")
	if s.Get(19, 0) != 'v' {
		t.Errorf("clipped char = %q, expected 'v'", s.Get(19, 0))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDim)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("box corners wrong on top edge")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("box corners wrong on bottom edge")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges wrong")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestPaletteSlotHelpers(t *testing.T) {
	if !PaletteSlot(0).IsPaletteSlot() || !PaletteSlot(15).IsPaletteSlot() {
		t.Error("slots 0 and 15 should be palette slots")
	}
	if ColorDefault.IsPaletteSlot() || ColorCursor.IsPaletteSlot() {
		t.Error("UI colors should not be palette slots")
	}
	if PaletteSlot(9).SlotIndex() != 9 {
		t.Errorf("SlotIndex = %d, expected 9", PaletteSlot(9).SlotIndex())
	}
	if PaletteSlot(99) != ColorDefault || PaletteSlot(-1) != ColorDefault {
		t.Error("out-of-range palette indices should fall back to default")
	}
}
