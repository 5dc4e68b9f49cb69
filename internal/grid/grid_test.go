package grid

import (
	"errors"
	"testing"
)

func mustNew(t *testing.T, w, h, fill int) *Grid {
	t.Helper()
	g, err := New(w, h, fill)
	if err != nil {
		t.Fatalf("New(%d,%d,%d) failed: %v", w, h, fill, err)
	}
	return g
}

func mustSet(t *testing.T, g *Grid, x, y, v int) {
	t.Helper()
	if err := g.Set(x, y, v); err != nil {
		t.Fatalf("Set(%d,%d,%d) failed: %v", x, y, v, err)
	}
}

func cellAt(t *testing.T, g *Grid, x, y int) int {
	t.Helper()
	v, err := g.Get(x, y)
	if err != nil {
		t.Fatalf("Get(%d,%d) failed: %v", x, y, err)
	}
	return v
}

func TestNewValidation(t *testing.T) {
	testCases := []struct {
		name    string
		w, h    int
		fill    int
		code    string
		wantErr bool
	}{
		{"minimal", 1, 1, 0, "", false},
		{"default fill", 8, 8, 0, "", false},
		{"max size", 64, 64, 9, "", false},
		{"zero width", 0, 5, 0, CodeBadWidth, true},
		{"negative width", -1, 5, 0, CodeBadWidth, true},
		{"zero height", 5, 0, 0, CodeBadHeight, true},
		{"too wide", 65, 5, 0, CodeBadWidth, true},
		{"too tall", 5, 65, 0, CodeBadHeight, true},
		{"fill too large", 5, 5, 10, CodeBadColor, true},
		{"fill negative", 5, 5, -1, CodeBadColor, true},
	}

	for _, tc := range testCases {
		g, err := New(tc.w, tc.h, tc.fill)
		if tc.wantErr {
			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("%s: expected ValidationError, got %v", tc.name, err)
				continue
			}
			if ve.Code != tc.code {
				t.Errorf("%s: expected code %s, got %s", tc.name, tc.code, ve.Code)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if g.Width() != tc.w || g.Height() != tc.h {
			t.Errorf("%s: expected %dx%d, got %dx%d", tc.name, tc.w, tc.h, g.Width(), g.Height())
		}
		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				if cellAt(t, g, x, y) != tc.fill {
					t.Errorf("%s: cell (%d,%d) = %d, expected fill %d", tc.name, x, y, cellAt(t, g, x, y), tc.fill)
				}
			}
		}
	}
}

func TestExtendedLimitsAllowColor15(t *testing.T) {
	g, err := NewWithLimits(ExtendedLimits(), 4, 4, 15)
	if err != nil {
		t.Fatalf("NewWithLimits failed: %v", err)
	}
	if err := g.Set(0, 0, 15); err != nil {
		t.Errorf("Set(0,0,15) on extended grid failed: %v", err)
	}
	if err := g.Set(0, 0, 16); err == nil {
		t.Error("Set(0,0,16) should fail on extended grid")
	}
}

func TestGetSetBounds(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {3, 3}, {64, 64}}

	for _, size := range sizes {
		g := mustNew(t, size.w, size.h, 0)

		oob := []struct{ x, y int }{
			{-1, 0}, {0, -1}, {size.w, 0}, {0, size.h}, {size.w, size.h},
		}
		for _, c := range oob {
			if _, err := g.Get(c.x, c.y); err == nil {
				t.Errorf("%dx%d: Get(%d,%d) should fail", size.w, size.h, c.x, c.y)
			} else {
				var oobErr OutOfBoundsError
				if !errors.As(err, &oobErr) {
					t.Errorf("%dx%d: Get(%d,%d) returned %T, expected OutOfBoundsError", size.w, size.h, c.x, c.y, err)
				}
			}
			if err := g.Set(c.x, c.y, 1); err == nil {
				t.Errorf("%dx%d: Set(%d,%d) should fail", size.w, size.h, c.x, c.y)
			}
		}
	}
}

func TestSetRejectsBadColor(t *testing.T) {
	g := mustNew(t, 3, 3, 0)
	if err := g.Set(1, 1, 10); err == nil {
		t.Error("Set with color 10 should fail on base-palette grid")
	}
	if err := g.Set(1, 1, -1); err == nil {
		t.Error("Set with color -1 should fail")
	}
	// Failed set must not touch the cell
	if cellAt(t, g, 1, 1) != 0 {
		t.Errorf("cell (1,1) changed by rejected Set: %d", cellAt(t, g, 1, 1))
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	g := mustNew(t, 5, 5, 0)
	mustSet(t, g, 0, 0, 1)
	mustSet(t, g, 4, 4, 2)

	if err := g.Resize(3, 3, 0); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if g.Width() != 3 || g.Height() != 3 {
		t.Errorf("expected 3x3 after shrink, got %dx%d", g.Width(), g.Height())
	}
	if cellAt(t, g, 0, 0) != 1 {
		t.Errorf("cell (0,0) not preserved: %d", cellAt(t, g, 0, 0))
	}
	if _, err := g.Get(4, 4); err == nil {
		t.Error("Get(4,4) should fail after shrinking to 3x3")
	}

	// Grow back: new cells take the fill value, old data stays.
	if err := g.Resize(6, 6, 7); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if cellAt(t, g, 0, 0) != 1 {
		t.Errorf("cell (0,0) not preserved through grow: %d", cellAt(t, g, 0, 0))
	}
	if cellAt(t, g, 5, 5) != 7 {
		t.Errorf("new cell (5,5) = %d, expected fill 7", cellAt(t, g, 5, 5))
	}
	if cellAt(t, g, 4, 4) != 7 {
		t.Errorf("cell (4,4) = %d, expected fill 7 (discarded by shrink)", cellAt(t, g, 4, 4))
	}
}

func TestResizeValidation(t *testing.T) {
	g := mustNew(t, 5, 5, 0)
	if err := g.Resize(0, 3, 0); err == nil {
		t.Error("Resize(0,3) should fail")
	}
	if err := g.Resize(3, 65, 0); err == nil {
		t.Error("Resize(3,65) should fail")
	}
	if err := g.Resize(3, 3, 12); err == nil {
		t.Error("Resize with fill 12 should fail")
	}
	// Failed resize must leave the grid untouched.
	if g.Width() != 5 || g.Height() != 5 {
		t.Errorf("grid dimensions changed by rejected Resize: %dx%d", g.Width(), g.Height())
	}
}

func TestCloneIndependence(t *testing.T) {
	g := mustNew(t, 3, 3, 0)
	mustSet(t, g, 1, 1, 5)

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone should equal original")
	}

	mustSet(t, c, 0, 0, 9)
	if cellAt(t, g, 0, 0) != 0 {
		t.Error("mutating clone affected original")
	}

	mustSet(t, g, 2, 2, 3)
	if cellAt(t, c, 2, 2) != 0 {
		t.Error("mutating original affected clone")
	}
}

func TestToListFromListRoundTrip(t *testing.T) {
	g := mustNew(t, 4, 3, 0)
	mustSet(t, g, 0, 0, 1)
	mustSet(t, g, 3, 2, 9)
	mustSet(t, g, 2, 1, 4)

	data := g.ToList()
	restored := mustNew(t, 1, 1, 0)
	if err := restored.FromList(data); err != nil {
		t.Fatalf("FromList failed: %v", err)
	}
	if !g.Equal(restored) {
		t.Errorf("round trip mismatch:\n%s\nvs\n%s", g, restored)
	}
}

func TestToListIsDeepCopy(t *testing.T) {
	g := mustNew(t, 3, 3, 0)
	data := g.ToList()
	data[1][1] = 8
	if cellAt(t, g, 1, 1) != 0 {
		t.Error("mutating ToList result affected grid")
	}
}

func TestFromListValidation(t *testing.T) {
	wide := make([]int, 65)

	testCases := []struct {
		name string
		data [][]int
		code string
	}{
		{"nil", nil, CodeEmptyGrid},
		{"empty", [][]int{}, CodeEmptyGrid},
		{"empty row", [][]int{{}}, CodeEmptyGrid},
		{"ragged", [][]int{{1, 2}, {3, 4, 5}}, CodeRaggedRow},
		{"bad value", [][]int{{1, 2}, {3, 10}}, CodeBadColor},
		{"negative value", [][]int{{1, -1}}, CodeBadColor},
		{"too wide", [][]int{wide}, CodeBadWidth},
	}

	for _, tc := range testCases {
		g := mustNew(t, 2, 2, 3)
		err := g.FromList(tc.data)
		var ve ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: expected ValidationError, got %v", tc.name, err)
			continue
		}
		if ve.Code != tc.code {
			t.Errorf("%s: expected code %s, got %s", tc.name, tc.code, ve.Code)
		}
		// Rejected input must leave the grid untouched.
		if g.Width() != 2 || g.Height() != 2 || cellAt(t, g, 0, 0) != 3 {
			t.Errorf("%s: grid modified by rejected FromList", tc.name)
		}
	}
}

func TestFromListDeepCopiesInput(t *testing.T) {
	g := mustNew(t, 1, 1, 0)
	data := [][]int{{1, 2}, {3, 4}}
	if err := g.FromList(data); err != nil {
		t.Fatalf("FromList failed: %v", err)
	}
	data[0][0] = 9
	if cellAt(t, g, 0, 0) != 1 {
		t.Error("FromList retained a reference to caller's data")
	}
}

func TestFillAndUniform(t *testing.T) {
	g := mustNew(t, 3, 3, 0)
	if !g.Uniform() {
		t.Error("fresh grid should be uniform")
	}
	mustSet(t, g, 1, 1, 2)
	if g.Uniform() {
		t.Error("grid with two colors should not be uniform")
	}
	if err := g.Fill(5); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	if !g.Uniform() || cellAt(t, g, 2, 2) != 5 {
		t.Error("Fill(5) should leave a uniform grid of 5s")
	}
	if err := g.Fill(11); err == nil {
		t.Error("Fill(11) should fail on base-palette grid")
	}
}

func TestIsAll(t *testing.T) {
	g := mustNew(t, 3, 3, 4)
	if !g.IsAll(4) {
		t.Error("grid filled with 4 should be all 4")
	}
	if g.IsAll(5) {
		t.Error("grid filled with 4 should not be all 5")
	}
	mustSet(t, g, 0, 2, 7)
	if g.IsAll(4) {
		t.Error("grid with a stray cell should not be all 4")
	}
}

func TestCountColor(t *testing.T) {
	g := mustNew(t, 3, 3, 0)
	mustSet(t, g, 0, 0, 4)
	mustSet(t, g, 2, 2, 4)
	if got := g.CountColor(4); got != 2 {
		t.Errorf("CountColor(4) = %d, expected 2", got)
	}
	if got := g.CountColor(0); got != 7 {
		t.Errorf("CountColor(0) = %d, expected 7", got)
	}
}
