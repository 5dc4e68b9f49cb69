package config

import (
	_ "embed"
)

//go:embed defaults/editor.yaml
var defaultEditorYAML []byte

//go:embed defaults/flood.yaml
var defaultFloodYAML []byte

//go:embed defaults/recall.yaml
var defaultRecallYAML []byte

// DefaultEditorConfig returns the default editor configuration.
func DefaultEditorConfig() EditorConfig {
	return EditorConfig{
		Grid: EditorGrid{
			Width:  10,
			Height: 10,
			Fill:   0,
		},
		Palette: EditorPalette{
			Variant: "base",
		},
		History: EditorHistory{
			UndoDepth: 50,
		},
	}
}

// DefaultFloodConfig returns the default Color Flood configuration.
func DefaultFloodConfig() FloodConfig {
	return FloodConfig{
		Board: FloodBoard{
			Width:  14,
			Height: 14,
			Colors: 6,
		},
		Moves: FloodMoves{
			Base:    18,
			PerArea: 40, // One extra move per 40 cells
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10, // Boards cleared
			},
			Scaling: ScalingConfig{
				MoveReduction: 6,
				ColorIncrease: 2,
			},
		},
	}
}

// DefaultRecallConfig returns the default Pattern Recall configuration.
func DefaultRecallConfig() RecallConfig {
	return RecallConfig{
		Board: RecallBoard{
			Width:  6,
			Height: 6,
		},
		Timing: RecallTiming{
			RevealTicks: 90, // 3 seconds at 30fps
			GraceTicks:  15,
		},
		Sequence: RecallSequence{
			StartCells: 3,
			Growth:     1,
			Colors:     4,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 12, // Rounds survived
			},
			Scaling: ScalingConfig{
				ColorIncrease: 3,
				RevealSpeedup: 50,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a known config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "editor":
		return defaultEditorYAML
	case "flood":
		return defaultFloodYAML
	case "recall":
		return defaultRecallYAML
	default:
		return nil
	}
}
