package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsParse(t *testing.T) {
	ed, err := LoadEditor("")
	if err != nil {
		t.Fatalf("LoadEditor: %v", err)
	}
	if ed.Grid.Width != 10 || ed.Grid.Height != 10 {
		t.Errorf("editor grid = %dx%d, expected 10x10", ed.Grid.Width, ed.Grid.Height)
	}
	if ed.History.UndoDepth != 50 {
		t.Errorf("undo depth = %d, expected 50", ed.History.UndoDepth)
	}

	fl, err := LoadFlood("")
	if err != nil {
		t.Fatalf("LoadFlood: %v", err)
	}
	if fl.Board.Colors != 6 || fl.Moves.Base != 18 {
		t.Errorf("flood defaults = %d colors / %d moves", fl.Board.Colors, fl.Moves.Base)
	}

	rc, err := LoadRecall("")
	if err != nil {
		t.Fatalf("LoadRecall: %v", err)
	}
	if rc.Timing.RevealTicks != 90 {
		t.Errorf("reveal ticks = %d, expected 90", rc.Timing.RevealTicks)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flood.yaml")
	yaml := "board:\n  width: 8\n  height: 8\n  colors: 4\nmoves:\n  base: 12\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlood(path)
	if err != nil {
		t.Fatalf("LoadFlood(%s): %v", path, err)
	}
	if cfg.Board.Width != 8 || cfg.Moves.Base != 12 {
		t.Errorf("custom config = %dx board / %d moves", cfg.Board.Width, cfg.Moves.Base)
	}

	if _, err := LoadFlood(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should error")
	}
}

func TestEditorLimitsVariant(t *testing.T) {
	cfg := DefaultEditorConfig()
	if cfg.Limits().MaxColor != 9 {
		t.Errorf("base variant max color = %d, expected 9", cfg.Limits().MaxColor)
	}
	cfg.Palette.Variant = "extended"
	if cfg.Limits().MaxColor != 15 {
		t.Errorf("extended variant max color = %d, expected 15", cfg.Limits().MaxColor)
	}
}

func TestFloodPresets(t *testing.T) {
	cfg := DefaultFloodConfig()
	ApplyFloodPreset(&cfg, DifficultyHard)
	if cfg.Board.Colors != 8 {
		t.Errorf("hard preset colors = %d, expected 8", cfg.Board.Colors)
	}
	if cfg.Moves.Base != 13 {
		t.Errorf("hard preset moves = %d, expected 13", cfg.Moves.Base)
	}

	cfg = DefaultFloodConfig()
	ApplyFloodPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyManagerScaling(t *testing.T) {
	mgr := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{MoveReduction: 6, ColorIncrease: 2, RevealSpeedup: 50},
	})

	if lvl := mgr.Level(0, 0); lvl != 0.0 {
		t.Errorf("level at score 0 = %f", lvl)
	}
	if lvl := mgr.Level(20, 0); lvl != 1.0 {
		t.Errorf("level past max = %f, expected clamped 1.0", lvl)
	}

	if got := mgr.MoveBudget(18, 10, 0); got != 12 {
		t.Errorf("budget at max difficulty = %d, expected 12", got)
	}
	if got := mgr.MoveBudget(5, 10, 0); got != 3 {
		t.Errorf("budget floor = %d, expected 3", got)
	}
	if got := mgr.ColorCount(6, 8, 10, 0); got != 8 {
		t.Errorf("colors at max difficulty = %d, expected capped 8", got)
	}
	if got := mgr.RevealTicks(90, 10, 0); got != 40 {
		t.Errorf("reveal at max difficulty = %d, expected 40", got)
	}
}
