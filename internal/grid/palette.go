package grid

import "fmt"

// PaletteColor describes how one color index is displayed.
type PaletteColor struct {
	Index int
	Name  string
	Hex   string
	R     uint8
	G     uint8
	B     uint8
}

// Palette is an immutable lookup from color index to display color. The
// two package-level palettes are built once at init and shared by
// reference; renderers never copy or extend them.
type Palette struct {
	name   string
	colors []PaletteColor
}

// Base is the 10-color ARC palette (indices 0-9).
var Base = newPalette("base", []PaletteColor{
	{0, "black", "#000000", 0, 0, 0},
	{1, "blue", "#0074D9", 0, 116, 217},
	{2, "red", "#FF4136", 255, 65, 54},
	{3, "green", "#2ECC40", 46, 204, 64},
	{4, "yellow", "#FFDC00", 255, 220, 0},
	{5, "gray", "#AAAAAA", 170, 170, 170},
	{6, "magenta", "#F012BE", 240, 18, 190},
	{7, "orange", "#FF851B", 255, 133, 27},
	{8, "sky", "#7FDBFF", 127, 219, 255},
	{9, "maroon", "#870C25", 135, 12, 37},
})

// Extended is the 16-color palette (indices 0-15): the base ARC colors
// plus six extras used by the extended editor variant.
var Extended = newPalette("extended", append(Base.colors[:len(Base.colors):len(Base.colors)],
	PaletteColor{10, "teal", "#39CCCC", 57, 204, 204},
	PaletteColor{11, "olive", "#3D9970", 61, 153, 112},
	PaletteColor{12, "navy", "#001F3F", 0, 31, 63},
	PaletteColor{13, "lime", "#01FF70", 1, 255, 112},
	PaletteColor{14, "silver", "#DDDDDD", 221, 221, 221},
	PaletteColor{15, "white", "#FFFFFF", 255, 255, 255},
))

func newPalette(name string, colors []PaletteColor) *Palette {
	return &Palette{name: name, colors: colors}
}

// ForLimits returns the palette matching the color range of the given
// limits: Extended when colors above 9 are allowed, Base otherwise.
func ForLimits(l Limits) *Palette {
	if l.MaxColor > 9 {
		return Extended
	}
	return Base
}

// Name returns the palette's identifier ("base" or "extended").
func (p *Palette) Name() string {
	return p.name
}

// Size returns the number of colors in the palette.
func (p *Palette) Size() int {
	return len(p.colors)
}

// MaxColor returns the highest valid color index.
func (p *Palette) MaxColor() int {
	return len(p.colors) - 1
}

// Color returns the display color for an index.
func (p *Palette) Color(index int) (PaletteColor, error) {
	if index < 0 || index >= len(p.colors) {
		return PaletteColor{}, ValidationError{
			Code:    CodeBadColor,
			Message: fmt.Sprintf("color %d outside [0, %d]", index, len(p.colors)-1),
		}
	}
	return p.colors[index], nil
}

// Hex returns the hex code for an index, or black for invalid indices.
// Rendering paths use this after the grid has already validated values.
func (p *Palette) Hex(index int) string {
	if index < 0 || index >= len(p.colors) {
		return "#000000"
	}
	return p.colors[index].Hex
}

// Colors returns all palette entries in index order.
func (p *Palette) Colors() []PaletteColor {
	out := make([]PaletteColor, len(p.colors))
	copy(out, p.colors)
	return out
}
