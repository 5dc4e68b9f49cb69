package flood

import (
	"testing"

	"github.com/vovakirdan/arc-studio/internal/config"
	platformcore "github.com/vovakirdan/arc-studio/internal/core"
	"github.com/vovakirdan/arc-studio/internal/grid"
)

func resetCampaign(t *testing.T) *Game {
	t.Helper()
	SetMode(ModeCampaign)
	SetStartLevel(0)
	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	if g.gameOver {
		t.Fatalf("campaign reset failed: %s", g.loadErr)
	}
	return g
}

func boardFromRows(t *testing.T, rows [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.New(1, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.FromList(rows); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestCampaignReset(t *testing.T) {
	g := resetCampaign(t)

	if len(g.allLevels) < 3 {
		t.Fatalf("embedded campaign has %d levels, expected at least 3", len(g.allLevels))
	}
	if g.levelIndex != 0 {
		t.Errorf("level index = %d, expected 0", g.levelIndex)
	}
	if g.moves != 10 {
		t.Errorf("warmup budget = %d, expected 10", g.moves)
	}
	if g.colors != 3 {
		t.Errorf("warmup colors = %d, expected 3", g.colors)
	}
	if g.selected == g.anchorColor() {
		t.Error("initial selection should not equal the anchor color")
	}
}

func TestCampaignStartLevel(t *testing.T) {
	SetMode(ModeCampaign)
	SetStartLevel(2)
	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	if g.levelIndex != 1 {
		t.Errorf("level index = %d, expected 1", g.levelIndex)
	}
}

func TestCampaignLevelClear(t *testing.T) {
	g := resetCampaign(t)

	// The warmup board falls to the anchor in four floods
	for _, c := range []int{1, 2, 0, 1} {
		g.selected = c
		g.applyFlood()
	}

	if g.cleared != 1 {
		t.Fatalf("cleared = %d, expected 1", g.cleared)
	}
	if g.levelIndex != 1 {
		t.Errorf("level index = %d, expected advance to 1", g.levelIndex)
	}
	if g.moves != 16 {
		t.Errorf("moves = %d, expected next level's budget 16", g.moves)
	}
	if g.score <= 0 {
		t.Error("clearing a level should score points")
	}
	if g.gameOver {
		t.Error("campaign should continue after one level")
	}
}

func TestSameColorFloodIsFree(t *testing.T) {
	g := resetCampaign(t)
	moves := g.moves

	g.selected = g.anchorColor()
	g.applyFlood()

	if g.moves != moves {
		t.Errorf("moves = %d, expected unchanged %d", g.moves, moves)
	}
}

func TestOutOfMoves(t *testing.T) {
	g := New()
	g.rng = nil
	g.mode = ModeEndless
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
	g.palette = grid.ForLimits(grid.DefaultLimits())
	g.board = boardFromRows(t, [][]int{{0, 1}, {2, 3}})
	g.colors = 4
	g.moves = 1

	g.selected = 1
	g.applyFlood()

	if !g.gameOver {
		t.Error("spending the last move without clearing should end the game")
	}
	if g.won {
		t.Error("running out of moves is not a win")
	}
}

func TestEndlessRegeneratesAfterClear(t *testing.T) {
	SetMode(ModeEndless)
	defer SetMode(ModeCampaign)

	g := New()
	g.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})
	if g.gameOver {
		t.Fatal("endless reset should produce a playable board")
	}
	if g.board.Width() != g.cfg.Board.Width || g.board.Height() != g.cfg.Board.Height {
		t.Errorf("board = %dx%d, expected %dx%d",
			g.board.Width(), g.board.Height(), g.cfg.Board.Width, g.cfg.Board.Height)
	}

	// Hand the game a trivially clearable board
	g.board = boardFromRows(t, [][]int{{0, 1}})
	g.colors = 2
	g.moves = 5
	g.selected = 1
	g.applyFlood()

	if g.cleared != 1 {
		t.Fatalf("cleared = %d, expected 1", g.cleared)
	}
	if g.board.Width() != g.cfg.Board.Width {
		t.Error("a fresh endless board should follow the configured size")
	}
	if g.gameOver {
		t.Error("endless mode never ends on a clear")
	}
}

func TestSelectionSkipsAnchorColor(t *testing.T) {
	g := resetCampaign(t)

	c := g.selected
	for i := 0; i < 10; i++ {
		c = g.nextColorFrom(c, 1)
		if c == g.anchorColor() {
			t.Fatal("cycling should never land on the anchor color")
		}
	}
}

func TestStepRestart(t *testing.T) {
	g := resetCampaign(t)
	g.gameOver = true
	g.score = 42

	in := platformcore.NewInputFrame()
	in.Set(platformcore.ActionRestart)
	g.Step(in)

	if g.gameOver {
		t.Error("restart should start a new game")
	}
	if g.score != 0 {
		t.Errorf("score = %d after restart, expected 0", g.score)
	}
}

func TestStepColorCycling(t *testing.T) {
	g := resetCampaign(t)
	before := g.selected

	in := platformcore.NewInputFrame()
	in.Set(platformcore.ActionRight)
	g.Step(in)

	if g.selected == before {
		t.Error("right should cycle the selected color")
	}

	in.Clear()
	in.Set(platformcore.ActionLeft)
	g.Step(in)

	if g.selected != before {
		t.Errorf("left should cycle back to %d, got %d", before, g.selected)
	}
}

func TestRenderSmoke(t *testing.T) {
	g := resetCampaign(t)
	dst := platformcore.NewScreen(80, 24)
	g.Render(dst)

	if dst.Row(0) == "" {
		t.Error("HUD row should not be empty")
	}

	// At least one board cell should land on screen as a colored block
	found := false
	for y := 0; y < dst.Height() && !found; y++ {
		for x := 0; x < dst.Width(); x++ {
			if dst.GetCell(x, y).Color.IsPaletteSlot() {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("rendered board should contain palette-colored cells")
	}
}
