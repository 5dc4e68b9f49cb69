package grid

import "testing"

func gridFromRows(t *testing.T, rows [][]int) *Grid {
	t.Helper()
	g := mustNew(t, 1, 1, 0)
	if err := g.FromList(rows); err != nil {
		t.Fatalf("FromList failed: %v", err)
	}
	return g
}

func TestFloodFillBlock(t *testing.T) {
	g := mustNew(t, 3, 3, 0)
	mustSet(t, g, 0, 0, 1)
	mustSet(t, g, 1, 0, 1)
	mustSet(t, g, 0, 1, 1)
	mustSet(t, g, 1, 1, 1)

	if err := g.FloodFill(0, 0, 5); err != nil {
		t.Fatalf("FloodFill failed: %v", err)
	}

	for _, c := range []struct{ x, y int }{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if cellAt(t, g, c.x, c.y) != 5 {
			t.Errorf("cell (%d,%d) = %d, expected 5", c.x, c.y, cellAt(t, g, c.x, c.y))
		}
	}
	if cellAt(t, g, 2, 2) != 0 {
		t.Errorf("cell (2,2) = %d, should stay 0", cellAt(t, g, 2, 2))
	}
}

func TestFloodFillPlusSign(t *testing.T) {
	g := gridFromRows(t, [][]int{
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
		{1, 1, 1, 1, 1},
		{0, 0, 1, 0, 0},
		{0, 0, 1, 0, 0},
	})

	if err := g.FloodFill(2, 2, 8); err != nil {
		t.Fatalf("FloodFill failed: %v", err)
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			got := cellAt(t, g, x, y)
			onPlus := x == 2 || y == 2
			if onPlus && got != 8 {
				t.Errorf("plus cell (%d,%d) = %d, expected 8", x, y, got)
			}
			if !onPlus && got != 0 {
				t.Errorf("corner cell (%d,%d) = %d, expected 0", x, y, got)
			}
		}
	}
}

func TestFloodFillSameColorNoOp(t *testing.T) {
	g := mustNew(t, 3, 3, 0)
	mustSet(t, g, 1, 1, 3)
	before := g.Clone()

	if err := g.FloodFill(1, 1, 3); err != nil {
		t.Fatalf("FloodFill failed: %v", err)
	}
	if !g.Equal(before) {
		t.Error("same-color flood fill should leave grid unchanged")
	}
}

func TestFloodFillOutOfBoundsNoOp(t *testing.T) {
	g := mustNew(t, 3, 3, 0)
	mustSet(t, g, 1, 1, 2)
	before := g.Clone()

	starts := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {100, 100}, {-50, -50},
	}
	for _, s := range starts {
		if err := g.FloodFill(s.x, s.y, 5); err != nil {
			t.Errorf("FloodFill(%d,%d) should be a silent no-op, got %v", s.x, s.y, err)
		}
	}
	if !g.Equal(before) {
		t.Error("out-of-bounds flood fill modified the grid")
	}
}

func TestFloodFillRejectsBadColor(t *testing.T) {
	g := mustNew(t, 3, 3, 0)
	if err := g.FloodFill(0, 0, 10); err == nil {
		t.Error("FloodFill with color 10 should fail on base-palette grid")
	}
	if err := g.FloodFill(0, 0, -1); err == nil {
		t.Error("FloodFill with color -1 should fail")
	}
}

func TestFloodFillDisconnectedRegionsUntouched(t *testing.T) {
	// Two regions of color 1 separated by a column of color 2. Only the
	// left one may change.
	g := gridFromRows(t, [][]int{
		{1, 2, 1},
		{1, 2, 1},
		{1, 2, 1},
	})

	if err := g.FloodFill(0, 0, 7); err != nil {
		t.Fatalf("FloodFill failed: %v", err)
	}

	for y := 0; y < 3; y++ {
		if cellAt(t, g, 0, y) != 7 {
			t.Errorf("left column (0,%d) = %d, expected 7", y, cellAt(t, g, 0, y))
		}
		if cellAt(t, g, 1, y) != 2 {
			t.Errorf("barrier (1,%d) = %d, expected 2", y, cellAt(t, g, 1, y))
		}
		if cellAt(t, g, 2, y) != 1 {
			t.Errorf("right column (2,%d) = %d, expected unchanged 1", y, cellAt(t, g, 2, y))
		}
	}
}

func TestFloodFillNoDiagonalLeak(t *testing.T) {
	// Diagonal-only contact must not connect regions.
	g := gridFromRows(t, [][]int{
		{1, 0},
		{0, 1},
	})

	if err := g.FloodFill(0, 0, 5); err != nil {
		t.Fatalf("FloodFill failed: %v", err)
	}
	if cellAt(t, g, 0, 0) != 5 {
		t.Errorf("seed cell = %d, expected 5", cellAt(t, g, 0, 0))
	}
	if cellAt(t, g, 1, 1) != 1 {
		t.Errorf("diagonal cell = %d, expected unchanged 1", cellAt(t, g, 1, 1))
	}
}

func TestFloodFillWholeBoard(t *testing.T) {
	// Worst case: a single-color 64x64 board, one connected component.
	g := mustNew(t, 64, 64, 0)
	if err := g.FloodFill(31, 31, 9); err != nil {
		t.Fatalf("FloodFill failed: %v", err)
	}
	if !g.Uniform() {
		t.Error("full-board fill should leave a uniform grid")
	}
	if cellAt(t, g, 0, 0) != 9 || cellAt(t, g, 63, 63) != 9 {
		t.Error("corners not filled")
	}
}

func TestFloodFillSingleCell(t *testing.T) {
	g := mustNew(t, 1, 1, 0)
	if err := g.FloodFill(0, 0, 4); err != nil {
		t.Fatalf("FloodFill failed: %v", err)
	}
	if cellAt(t, g, 0, 0) != 4 {
		t.Errorf("1x1 fill: cell = %d, expected 4", cellAt(t, g, 0, 0))
	}
}
