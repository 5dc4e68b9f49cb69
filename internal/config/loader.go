package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadEditor loads the grid editor configuration.
// Search order: customPath -> ~/.arcstudio/configs/editor.yaml -> ./configs/editor.yaml -> embedded default
func LoadEditor(customPath string) (EditorConfig, error) {
	var cfg EditorConfig
	if err := load(customPath, "editor.yaml", defaultEditorYAML, &cfg); err != nil {
		return DefaultEditorConfig(), err
	}
	if cfg.Grid.Width <= 0 || cfg.Grid.Height <= 0 {
		d := DefaultEditorConfig()
		cfg.Grid = d.Grid
	}
	if cfg.History.UndoDepth <= 0 {
		cfg.History.UndoDepth = DefaultEditorConfig().History.UndoDepth
	}
	return cfg, nil
}

// LoadFlood loads the Color Flood configuration.
// Search order: customPath -> ~/.arcstudio/configs/flood.yaml -> ./configs/flood.yaml -> embedded default
func LoadFlood(customPath string) (FloodConfig, error) {
	var cfg FloodConfig
	if err := load(customPath, "flood.yaml", defaultFloodYAML, &cfg); err != nil {
		return DefaultFloodConfig(), err
	}
	return cfg, nil
}

// LoadRecall loads the Pattern Recall configuration.
// Search order: customPath -> ~/.arcstudio/configs/recall.yaml -> ./configs/recall.yaml -> embedded default
func LoadRecall(customPath string) (RecallConfig, error) {
	var cfg RecallConfig
	if err := load(customPath, "recall.yaml", defaultRecallYAML, &cfg); err != nil {
		return DefaultRecallConfig(), err
	}
	return cfg, nil
}

// load resolves a config through the standard search order into out.
// A customPath error is returned so the caller can surface it; failures
// in the fallback locations are silent and move on to the next source.
func load(customPath, filename string, embedded []byte, out interface{}) error {
	// Custom path is explicit: errors there must not be swallowed
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Use embedded default YAML
	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcstudio", "configs", filename)
}

// ApplyFloodPreset modifies the config based on a difficulty preset.
func ApplyFloodPreset(cfg *FloodConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Board.Colors = 4
		cfg.Moves.Base += 5
	case DifficultyHard:
		cfg.Board.Colors = 8
		if cfg.Moves.Base > 5 {
			cfg.Moves.Base -= 5
		}
	}
}

// ApplyRecallPreset modifies the config based on a difficulty preset.
func ApplyRecallPreset(cfg *RecallConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Timing.RevealTicks += 30
		cfg.Sequence.Growth = 1
	case DifficultyHard:
		if cfg.Timing.RevealTicks > 40 {
			cfg.Timing.RevealTicks -= 30
		}
		cfg.Sequence.Growth = 2
	}
}
