package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arc-studio/internal/config"
	"github.com/vovakirdan/arc-studio/internal/core"
	"github.com/vovakirdan/arc-studio/internal/platform/tui"
	"github.com/vovakirdan/arc-studio/internal/registry"
	"github.com/vovakirdan/arc-studio/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the studio with a picker menu",
	Long: `Start the studio in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select the editor or a
game, Tab to view the scoreboard. After a game or editing session
ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select entry
  Tab          - Scoreboard
  Q            - Quit

Examples:
  arcstudio menu
  arcstudio menu --fps 60
  arcstudio menu --db ./studio.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		id := menuResult.ID
		if id == "" {
			break
		}

		if id == tui.EditorItemID {
			editorCfg, cfgErr := config.LoadEditor(flagEditorConfig)
			if cfgErr != nil {
				fmt.Fprintf(os.Stderr, "Error loading editor config: %v\n", cfgErr)
				continue
			}
			if editErr := tui.RunEditor(editorCfg, store, cfg, ""); editErr != nil {
				fmt.Fprintf(os.Stderr, "Error running editor: %v\n", editErr)
			}
			continue
		}

		if !configureGame(id, cfg, config.DifficultyPreset(flagDifficulty), id == "flood") {
			continue
		}

		game, err := registry.Create(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
