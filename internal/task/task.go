// Package task implements the ARC task interchange format: JSON files
// holding train and test example pairs of color grids. It validates the
// envelope; grid-level validation is delegated to the grid package.
package task

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/arc-studio/internal/grid"
)

// Example is one input/output grid pair. Output is optional for test
// examples and omitted from JSON when absent.
type Example struct {
	Input  [][]int `json:"input"`
	Output [][]int `json:"output,omitempty"`
}

// Task is a full ARC task: training pairs plus test cases.
type Task struct {
	Train []Example `json:"train"`
	Test  []Example `json:"test"`
}

// New returns an empty task with allocated (non-nil) example lists, so
// a fresh task serializes as {"train":[],"test":[]} like the original
// editor's empty-task template.
func New() *Task {
	return &Task{
		Train: []Example{},
		Test:  []Example{},
	}
}

// Load reads and validates a task file.
func Load(path string) (*Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading task %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates task JSON.
func Parse(data []byte) (*Task, error) {
	// Decode through an aux struct with a pointer slice so a missing
	// "train" key is distinguishable from an empty list.
	var raw struct {
		Train *[]Example `json:"train"`
		Test  *[]Example `json:"test"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding task: %w", err)
	}
	if raw.Train == nil {
		return nil, grid.ValidationError{Code: "MISSING_TRAIN", Message: "task must contain a train key"}
	}

	t := &Task{Train: *raw.Train, Test: []Example{}}
	if raw.Test != nil {
		t.Test = *raw.Test
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Save validates the task and writes it as indented JSON, creating
// parent directories as needed.
func Save(t *Task, path string) error {
	if err := t.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding task: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing task %s: %w", path, err)
	}
	return nil
}

// Validate checks the task envelope and every contained grid against the
// interchange bounds (30x30, colors 0-9). Train examples need both
// grids; test outputs are optional.
func (t *Task) Validate() error {
	for i, ex := range t.Train {
		// A present-but-empty array counts as missing, matching the
		// omitempty serialization which drops empty grids.
		if len(ex.Input) == 0 {
			return grid.ValidationError{
				Code:    "MISSING_INPUT",
				Message: fmt.Sprintf("train example %d has no input grid", i),
			}
		}
		if len(ex.Output) == 0 {
			return grid.ValidationError{
				Code:    "MISSING_OUTPUT",
				Message: fmt.Sprintf("train example %d has no output grid", i),
			}
		}
		if err := checkGrid(ex.Input, fmt.Sprintf("train example %d input", i)); err != nil {
			return err
		}
		if err := checkGrid(ex.Output, fmt.Sprintf("train example %d output", i)); err != nil {
			return err
		}
	}
	for i, ex := range t.Test {
		if len(ex.Input) == 0 {
			return grid.ValidationError{
				Code:    "MISSING_INPUT",
				Message: fmt.Sprintf("test example %d has no input grid", i),
			}
		}
		if err := checkGrid(ex.Input, fmt.Sprintf("test example %d input", i)); err != nil {
			return err
		}
		if len(ex.Output) > 0 {
			if err := checkGrid(ex.Output, fmt.Sprintf("test example %d output", i)); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkGrid validates one nested array by loading it into a
// task-bounded grid, wrapping any failure with the example's position.
func checkGrid(data [][]int, context string) error {
	g, err := grid.NewWithLimits(grid.TaskLimits(), 1, 1, 0)
	if err != nil {
		return err
	}
	if err := g.FromList(data); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// AddTrain validates and appends a training pair.
func (t *Task) AddTrain(input, output [][]int) error {
	if err := checkGrid(input, "input grid"); err != nil {
		return err
	}
	if err := checkGrid(output, "output grid"); err != nil {
		return err
	}
	t.Train = append(t.Train, Example{Input: input, Output: output})
	return nil
}

// AddTest validates and appends a test case. Output may be nil.
func (t *Task) AddTest(input, output [][]int) error {
	if err := checkGrid(input, "input grid"); err != nil {
		return err
	}
	if output != nil {
		if err := checkGrid(output, "output grid"); err != nil {
			return err
		}
	}
	t.Test = append(t.Test, Example{Input: input, Output: output})
	return nil
}

// InputGrid loads a train or test input into a new task-bounded grid.
func (ex Example) InputGrid() (*grid.Grid, error) {
	return toGrid(ex.Input)
}

// OutputGrid loads the example's output into a new grid, or returns nil
// when the example has none.
func (ex Example) OutputGrid() (*grid.Grid, error) {
	if ex.Output == nil {
		return nil, nil
	}
	return toGrid(ex.Output)
}

func toGrid(data [][]int) (*grid.Grid, error) {
	g, err := grid.NewWithLimits(grid.TaskLimits(), 1, 1, 0)
	if err != nil {
		return nil, err
	}
	if err := g.FromList(data); err != nil {
		return nil, err
	}
	return g, nil
}
