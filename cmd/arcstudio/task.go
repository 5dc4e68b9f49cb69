package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arc-studio/internal/storage"
	"github.com/vovakirdan/arc-studio/internal/task"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Inspect and validate task files",
	Long: `Work with ARC task JSON files and the task library.

Subcommands:
  validate <file>        - Check that a task file is well-formed
  show <file>            - Print a task's grids to the terminal
  list                   - List tasks stored in the library
  export <name> <file>   - Write a library task to a JSON file
  delete <name>          - Remove a task from the library

Examples:
  arcstudio task validate puzzle.json
  arcstudio task show puzzle.json
  arcstudio task list
  arcstudio task export symmetry ./symmetry.json
  arcstudio task delete symmetry`,
}

var taskValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that a task file is well-formed",
	Args:  cobra.ExactArgs(1),
	Run:   runTaskValidate,
}

var taskShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a task's grids to the terminal",
	Args:  cobra.ExactArgs(1),
	Run:   runTaskShow,
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks stored in the library",
	Args:  cobra.NoArgs,
	Run:   runTaskList,
}

var taskExportCmd = &cobra.Command{
	Use:   "export <name> <file>",
	Short: "Write a library task to a JSON file",
	Args:  cobra.ExactArgs(2),
	Run:   runTaskExport,
}

var taskDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a task from the library",
	Args:  cobra.ExactArgs(1),
	Run:   runTaskDelete,
}

func init() {
	taskCmd.AddCommand(taskValidateCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskExportCmd)
	taskCmd.AddCommand(taskDeleteCmd)
}

func runTaskValidate(cmd *cobra.Command, args []string) {
	path := args[0]

	t, err := task.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := t.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid task: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s is valid: %d train, %d test\n", path, len(t.Train), len(t.Test))
}

func runTaskShow(cmd *cobra.Command, args []string) {
	path := args[0]

	t, err := task.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i, ex := range t.Train {
		fmt.Printf("Train %d\n", i+1)
		printPair(ex)
	}
	for i, ex := range t.Test {
		fmt.Printf("Test %d\n", i+1)
		printPair(ex)
	}
}

// printPair prints an example's input and output grids side by side
// using digit characters.
func printPair(ex task.Example) {
	in := gridLines(ex.Input)
	out := gridLines(ex.Output)

	rows := len(in)
	if len(out) > rows {
		rows = len(out)
	}

	inWidth := 0
	for _, line := range in {
		if len(line) > inWidth {
			inWidth = len(line)
		}
	}

	for i := 0; i < rows; i++ {
		left := ""
		if i < len(in) {
			left = in[i]
		}
		right := ""
		if i < len(out) {
			right = out[i]
		}
		sep := "    "
		if i == rows/2 {
			sep = " -> "
		}
		fmt.Printf("  %-*s%s%s\n", inWidth, left, sep, right)
	}
	fmt.Println()
}

// gridLines formats a grid as digit rows, one string per row.
func gridLines(data [][]int) []string {
	if len(data) == 0 {
		return []string{"(none)"}
	}

	lines := make([]string, len(data))
	for y, row := range data {
		var b strings.Builder
		for _, v := range row {
			if v >= 0 && v <= 9 {
				b.WriteByte(byte('0' + v))
			} else {
				// Extended colors 10-15 print as a-f
				b.WriteByte(byte('a' + v - 10))
			}
		}
		lines[y] = b.String()
	}
	return lines
}

func runTaskList(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	tasks, err := store.ListTasks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing tasks: %v\n", err)
		os.Exit(1)
	}

	if len(tasks) == 0 {
		fmt.Println("The task library is empty.")
		return
	}

	fmt.Printf("  %-24s  %-5s  %-4s  %s\n", "Name", "Train", "Test", "Updated")
	fmt.Printf("  %-24s  %-5s  %-4s  %s\n", "----", "-----", "----", "-------")
	for _, entry := range tasks {
		fmt.Printf("  %-24s  %-5d  %-4d  %s\n",
			entry.Name, entry.TrainCount, entry.TestCount,
			entry.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func runTaskExport(cmd *cobra.Command, args []string) {
	name, path := args[0], args[1]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	t, err := store.GetTask(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if t == nil {
		fmt.Fprintf(os.Stderr, "Error: no task named %q in the library\n", name)
		os.Exit(1)
	}

	if err := task.Save(t, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing task: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %q to %s\n", name, path)
}

func runTaskDelete(cmd *cobra.Command, args []string) {
	name := args[0]

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	deleted, err := store.DeleteTask(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting task: %v\n", err)
		os.Exit(1)
	}
	if !deleted {
		fmt.Fprintf(os.Stderr, "Error: no task named %q in the library\n", name)
		os.Exit(1)
	}

	fmt.Printf("Deleted %q from the library\n", name)
}
