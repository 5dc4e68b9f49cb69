package core

// Color identifies the display style of a screen cell. Values below
// PaletteSlots address grid palette colors directly; the named values
// are UI styles resolved by the platform renderer.
type Color uint8

// PaletteSlots is the number of reserved grid-palette slots (the
// extended palette's 16 colors).
const PaletteSlots = 16

const (
	ColorDefault Color = PaletteSlots + iota
	ColorDim
	ColorBright
	ColorAccent
	ColorWarn
	ColorCursor
)

// PaletteSlot returns the Color addressing grid palette index i.
// Indices outside the slot range fall back to the default style.
func PaletteSlot(i int) Color {
	if i < 0 || i >= PaletteSlots {
		return ColorDefault
	}
	return Color(i)
}

// IsPaletteSlot reports whether c addresses a grid palette color.
func (c Color) IsPaletteSlot() bool {
	return c < PaletteSlots
}

// SlotIndex returns the palette index for a palette-slot color. The
// result is meaningless for UI colors; check IsPaletteSlot first.
func (c Color) SlotIndex() int {
	return int(c)
}
