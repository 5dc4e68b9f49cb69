// Package config provides YAML-based configuration loading and
// difficulty management for the editor and the puzzle games.
package config

import "github.com/vovakirdan/arc-studio/internal/grid"

// EditorConfig contains all configuration for the grid editor.
type EditorConfig struct {
	Grid    EditorGrid    `yaml:"grid"`
	Palette EditorPalette `yaml:"palette"`
	History EditorHistory `yaml:"history"`
}

// EditorGrid defines the dimensions and fill of a freshly opened canvas.
type EditorGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Fill   int `yaml:"fill"`
}

// EditorPalette selects the color range available to the brush.
type EditorPalette struct {
	Variant string `yaml:"variant"` // "base" (colors 0-9) or "extended" (colors 0-15)
}

// EditorHistory defines undo behavior.
type EditorHistory struct {
	UndoDepth int `yaml:"undo_depth"`
}

// Limits maps the configured palette variant to grid limits.
func (c EditorConfig) Limits() grid.Limits {
	if c.Palette.Variant == "extended" {
		return grid.ExtendedLimits()
	}
	return grid.DefaultLimits()
}

// FloodConfig contains all configuration for the Color Flood game.
type FloodConfig struct {
	Board      FloodBoard       `yaml:"board"`
	Moves      FloodMoves       `yaml:"moves"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FloodBoard defines the board generated in endless mode.
type FloodBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Colors int `yaml:"colors"` // Number of distinct colors, 2-10
}

// FloodMoves defines the move budget formula.
type FloodMoves struct {
	Base    int `yaml:"base"`     // Flat budget added to every board
	PerArea int `yaml:"per_area"` // Extra move per this many cells (0 disables)
}

// RecallConfig contains all configuration for the Pattern Recall game.
type RecallConfig struct {
	Board      RecallBoard      `yaml:"board"`
	Timing     RecallTiming     `yaml:"timing"`
	Sequence   RecallSequence   `yaml:"sequence"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RecallBoard defines the pattern grid dimensions.
type RecallBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RecallTiming defines how long patterns stay visible, in ticks.
type RecallTiming struct {
	RevealTicks int `yaml:"reveal_ticks"`
	GraceTicks  int `yaml:"grace_ticks"` // Blank pause between reveal and answer phase
}

// RecallSequence defines how patterns grow round over round.
type RecallSequence struct {
	StartCells int `yaml:"start_cells"`
	Growth     int `yaml:"growth"` // Extra lit cells per round
	Colors     int `yaml:"colors"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	MoveReduction int `yaml:"move_reduction"` // Flood: moves removed from budget at max difficulty
	ColorIncrease int `yaml:"color_increase"` // Extra colors in play at max difficulty
	RevealSpeedup int `yaml:"reveal_speedup"` // Recall: ticks shaved off the reveal at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
