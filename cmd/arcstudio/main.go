// arcstudio is a terminal studio for ARC-style grid tasks: an editor for
// building train/test examples plus grid games played on the same boards.
//
// Usage:
//
//	arcstudio edit [task.json]   - Open the grid editor
//	arcstudio list               - List available games
//	arcstudio play <game>        - Play a game
//	arcstudio menu               - Start menu to pick the editor or a game
//	arcstudio serve              - Start SSH server for remote sessions
//	arcstudio scores <game>      - Show high scores for a game
//	arcstudio task <subcommand>  - Inspect and validate task files
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible play
//	--db <path>     - Set database path (default: ~/.arcstudio/studio.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/arc-studio/internal/games/flood"
	_ "github.com/vovakirdan/arc-studio/internal/games/recall"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcstudio",
	Short: "ARC Studio - Edit and play grid tasks in your terminal",
	Long: `ARC Studio is a terminal workbench for ARC-style grid puzzles.
It bundles a task editor with grid games built on the same engine.

Available commands:
  edit     - Open the grid editor
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive picker for the editor and games
  serve    - Start SSH server for remote sessions
  scores   - View high scores
  task     - Inspect and validate task files

Examples:
  arcstudio edit puzzle.json
  arcstudio list
  arcstudio play flood
  arcstudio menu
  arcstudio serve --ssh :2222
  arcstudio scores flood
  arcstudio task validate puzzle.json`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcstudio/studio.db", "Path to database")

	// Add subcommands
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(taskCmd)
}
