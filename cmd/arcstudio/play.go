package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arc-studio/internal/config"
	"github.com/vovakirdan/arc-studio/internal/core"
	"github.com/vovakirdan/arc-studio/internal/games/flood"
	"github.com/vovakirdan/arc-studio/internal/games/recall"
	"github.com/vovakirdan/arc-studio/internal/platform/tui"
	"github.com/vovakirdan/arc-studio/internal/registry"
	"github.com/vovakirdan/arc-studio/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move / cycle selection
  Space/Enter  - Apply / confirm
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcstudio play flood
  arcstudio play recall --difficulty easy
  arcstudio play flood --difficulty hard
  arcstudio play flood --levels ./my-levels
  arcstudio play recall --config ./my-recall.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory with campaign level YAML files")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcstudio list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early for the mode selector
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if !configureGame(gameID, cfg, config.DifficultyPreset(flagDifficulty), true) {
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// configureGame loads and applies per-game configuration. For Color Flood
// it shows the mode selector when interactive is true. Returns false when
// the user backed out.
func configureGame(gameID string, cfg core.RuntimeConfig, preset config.DifficultyPreset, interactive bool) bool {
	switch gameID {
	case "flood":
		floodCfg, err := config.LoadFlood(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading flood config: %v\n", err)
			return false
		}

		if interactive {
			sel, back, quit, selErr := tui.RunFloodMenu(cfg.ScreenW, cfg.ScreenH)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				return false
			}
			if back || quit {
				return false
			}
			preset = sel.Difficulty
			if sel.Endless {
				flood.SetMode(flood.ModeEndless)
			} else {
				flood.SetMode(flood.ModeCampaign)
				flood.SetStartLevel(sel.Level)
			}
		} else {
			flood.SetMode(flood.ModeCampaign)
		}

		if preset != "" {
			config.ApplyFloodPreset(&floodCfg, preset)
		}
		flood.SetConfig(floodCfg)
		flood.SetLevelsRoot(flagLevelsDir)

	case "recall":
		recallCfg, err := config.LoadRecall(flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading recall config: %v\n", err)
			return false
		}
		if preset != "" {
			config.ApplyRecallPreset(&recallCfg, preset)
		}
		recall.SetConfig(recallCfg)
	}

	return true
}
