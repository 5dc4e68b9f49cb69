package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arc-studio/internal/config"
	"github.com/vovakirdan/arc-studio/internal/core"
	"github.com/vovakirdan/arc-studio/internal/platform/tui"
	"github.com/vovakirdan/arc-studio/internal/storage"
)

var (
	flagEditorConfig string
	flagExtended     bool
)

var editCmd = &cobra.Command{
	Use:   "edit [task.json]",
	Short: "Open the grid editor",
	Long: `Open the grid editor, optionally loading an existing task file.

Controls:
  Arrows       - Move cursor
  0-9          - Select brush color
  [ / ]        - Cycle brush color
  Space        - Apply the active tool
  p / f / i    - Paint, fill, pick tool
  u            - Undo
  Tab          - Switch between input and output grid
  , / .        - Previous / next example
  e / E        - Add train / test example
  r            - Resize canvas
  Ctrl+S       - Save task to JSON
  Ctrl+O       - Open task from JSON
  Ctrl+L       - Store task in the library database
  Q            - Quit

Examples:
  arcstudio edit
  arcstudio edit puzzle.json
  arcstudio edit --extended
  arcstudio edit --config ./my-editor.yaml puzzle.json`,
	Args: cobra.MaximumNArgs(1),
	Run:  runEdit,
}

func init() {
	editCmd.Flags().StringVar(&flagEditorConfig, "config", "", "Path to custom editor config YAML")
	editCmd.Flags().BoolVar(&flagExtended, "extended", false, "Use the 16-color extended palette")
}

func runEdit(cmd *cobra.Command, args []string) {
	taskPath := ""
	if len(args) > 0 {
		taskPath = args[0]
	}

	editorCfg, err := config.LoadEditor(flagEditorConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading editor config: %v\n", err)
		os.Exit(1)
	}
	if flagExtended {
		editorCfg.Palette.Variant = "extended"
	}

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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		store = nil
	}

	runErr := tui.RunEditor(editorCfg, store, cfg, taskPath)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", runErr)
		os.Exit(1)
	}
}
