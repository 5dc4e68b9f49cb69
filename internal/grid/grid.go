// Package grid provides the rectangular color-grid data model shared by
// the editor and the puzzle games. Cells hold small integer colors that
// index into a Palette; all operations are bounds-checked and total.
// This package is UI-agnostic and deterministic.
package grid

import (
	"fmt"
	"strings"
)

// Limits define the configurable bounds a grid enforces. Different call
// sites want different maxima (the editor allows 64x64, the task
// interchange format caps at 30x30), so the bound is explicit per grid
// rather than a package-wide constant.
type Limits struct {
	MaxWidth  int
	MaxHeight int
	MaxColor  int
}

// DefaultLimits returns the editor limits: 64x64 cells, base palette.
func DefaultLimits() Limits {
	return Limits{MaxWidth: 64, MaxHeight: 64, MaxColor: 9}
}

// ExtendedLimits returns the editor limits with the 16-color palette.
func ExtendedLimits() Limits {
	return Limits{MaxWidth: 64, MaxHeight: 64, MaxColor: 15}
}

// TaskLimits returns the bounds of the ARC task interchange format.
func TaskLimits() Limits {
	return Limits{MaxWidth: 30, MaxHeight: 30, MaxColor: 9}
}

// Grid is a rectangular matrix of integer colors.
// Cells are stored in row-major order: index = y*width + x.
// A Grid is a value owned by a single session or game instance; it is
// never mutated concurrently.
type Grid struct {
	limits Limits
	width  int
	height int
	cells  []int
}

// New creates a grid with DefaultLimits, every cell set to fill.
func New(width, height, fill int) (*Grid, error) {
	return NewWithLimits(DefaultLimits(), width, height, fill)
}

// NewWithLimits creates a grid with explicit bounds, every cell set to fill.
func NewWithLimits(limits Limits, width, height, fill int) (*Grid, error) {
	if width < 1 || width > limits.MaxWidth {
		return nil, ValidationError{
			Code:    CodeBadWidth,
			Message: fmt.Sprintf("width %d outside [1, %d]", width, limits.MaxWidth),
		}
	}
	if height < 1 || height > limits.MaxHeight {
		return nil, ValidationError{
			Code:    CodeBadHeight,
			Message: fmt.Sprintf("height %d outside [1, %d]", height, limits.MaxHeight),
		}
	}
	if err := limits.checkColor(fill); err != nil {
		return nil, err
	}

	g := &Grid{
		limits: limits,
		width:  width,
		height: height,
		cells:  make([]int, width*height),
	}
	if fill != 0 {
		for i := range g.cells {
			g.cells[i] = fill
		}
	}
	return g, nil
}

func (l Limits) checkColor(v int) error {
	if v < 0 || v > l.MaxColor {
		return ValidationError{
			Code:    CodeBadColor,
			Message: fmt.Sprintf("color %d outside [0, %d]", v, l.MaxColor),
		}
	}
	return nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// Limits returns the bounds this grid enforces.
func (g *Grid) Limits() Limits {
	return g.limits
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Get returns the color at (x, y). Out-of-range coordinates return an
// OutOfBoundsError.
func (g *Grid) Get(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, OutOfBoundsError{X: x, Y: y, Width: g.width, Height: g.height}
	}
	return g.cells[g.index(x, y)], nil
}

// Set overwrites the color at (x, y). Out-of-range coordinates return an
// OutOfBoundsError; out-of-range values a ValidationError.
func (g *Grid) Set(x, y, value int) error {
	if !g.InBounds(x, y) {
		return OutOfBoundsError{X: x, Y: y, Width: g.width, Height: g.height}
	}
	if err := g.limits.checkColor(value); err != nil {
		return err
	}
	g.cells[g.index(x, y)] = value
	return nil
}

// Fill sets every cell to the given color.
func (g *Grid) Fill(value int) error {
	if err := g.limits.checkColor(value); err != nil {
		return err
	}
	for i := range g.cells {
		g.cells[i] = value
	}
	return nil
}

// Resize changes the grid dimensions, preserving the overlapping region
// and initializing new cells to fill. Cells outside the new extent are
// discarded; the operation is not reversible from the grid's side.
func (g *Grid) Resize(width, height, fill int) error {
	resized, err := NewWithLimits(g.limits, width, height, fill)
	if err != nil {
		return err
	}

	copyW := min(g.width, width)
	copyH := min(g.height, height)
	for y := 0; y < copyH; y++ {
		for x := 0; x < copyW; x++ {
			resized.cells[resized.index(x, y)] = g.cells[g.index(x, y)]
		}
	}

	g.width = resized.width
	g.height = resized.height
	g.cells = resized.cells
	return nil
}

// Clone returns a deep copy of the grid. The copy shares no storage with
// the original.
func (g *Grid) Clone() *Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		limits: g.limits,
		width:  g.width,
		height: g.height,
		cells:  cells,
	}
}

// FloodFill recolors the 4-connected region of same-colored cells that
// contains (x, y). An out-of-bounds start is a silent no-op: fills are
// driven by cursor positions that may legitimately sit off-grid after a
// resize. Filling a region with its own color is also a no-op.
func (g *Grid) FloodFill(x, y, newColor int) error {
	if err := g.limits.checkColor(newColor); err != nil {
		return err
	}
	if !g.InBounds(x, y) {
		return nil
	}

	original := g.cells[g.index(x, y)]
	if original == newColor {
		return nil
	}

	// Iterative traversal; a recursive fill would risk stack growth on a
	// single-color 64x64 board. Neighbors are pushed unfiltered and
	// bounds-checked on pop.
	stack := [][2]int{{x, y}}
	visited := make(map[[2]int]bool)

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[c] {
			continue
		}
		cx, cy := c[0], c[1]
		if !g.InBounds(cx, cy) {
			continue
		}
		if g.cells[g.index(cx, cy)] != original {
			continue
		}

		visited[c] = true
		g.cells[g.index(cx, cy)] = newColor

		stack = append(stack,
			[2]int{cx, cy + 1},
			[2]int{cx, cy - 1},
			[2]int{cx + 1, cy},
			[2]int{cx - 1, cy},
		)
	}
	return nil
}

// ToList returns the cells as a nested array for persistence and
// interop. The result is a deep copy; mutating it does not affect the grid.
func (g *Grid) ToList() [][]int {
	rows := make([][]int, g.height)
	for y := 0; y < g.height; y++ {
		row := make([]int, g.width)
		copy(row, g.cells[y*g.width:(y+1)*g.width])
		rows[y] = row
	}
	return rows
}

// FromList replaces the grid's dimensions and cells wholesale from a
// nested array. Unlike Resize it preserves nothing. The input must be
// rectangular, non-empty, within the grid's limits, and hold only valid
// colors; the data is deep-copied.
func (g *Grid) FromList(data [][]int) error {
	if len(data) == 0 || len(data[0]) == 0 {
		return ValidationError{Code: CodeEmptyGrid, Message: "grid data cannot be empty"}
	}

	height := len(data)
	width := len(data[0])
	if width > g.limits.MaxWidth {
		return ValidationError{
			Code:    CodeBadWidth,
			Message: fmt.Sprintf("width %d exceeds maximum %d", width, g.limits.MaxWidth),
		}
	}
	if height > g.limits.MaxHeight {
		return ValidationError{
			Code:    CodeBadHeight,
			Message: fmt.Sprintf("height %d exceeds maximum %d", height, g.limits.MaxHeight),
		}
	}

	for i, row := range data {
		if len(row) != width {
			return ValidationError{
				Code:    CodeRaggedRow,
				Message: fmt.Sprintf("row %d has length %d, expected %d", i, len(row), width),
			}
		}
		for _, v := range row {
			if err := g.limits.checkColor(v); err != nil {
				return err
			}
		}
	}

	cells := make([]int, width*height)
	for y, row := range data {
		copy(cells[y*width:(y+1)*width], row)
	}

	g.width = width
	g.height = height
	g.cells = cells
	return nil
}

// Equal reports whether two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i, v := range g.cells {
		if v != other.cells[i] {
			return false
		}
	}
	return true
}

// Uniform reports whether every cell holds the same color.
func (g *Grid) Uniform() bool {
	for _, v := range g.cells {
		if v != g.cells[0] {
			return false
		}
	}
	return true
}

// IsAll reports whether every cell holds the given color.
func (g *Grid) IsAll(color int) bool {
	for _, v := range g.cells {
		if v != color {
			return false
		}
	}
	return true
}

// CountColor returns the number of cells holding the given color.
func (g *Grid) CountColor(color int) int {
	count := 0
	for _, v := range g.cells {
		if v == color {
			count++
		}
	}
	return count
}

// String renders the grid as digit rows for debugging.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", g.cells[g.index(x, y)])
		}
	}
	return sb.String()
}
