package task

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/arc-studio/internal/grid"
)

func validTask() *Task {
	t := New()
	t.Train = append(t.Train, Example{
		Input:  [][]int{{0, 1}, {1, 0}},
		Output: [][]int{{1, 0}, {0, 1}},
	})
	t.Test = append(t.Test, Example{
		Input: [][]int{{0, 0}, {0, 0}},
	})
	return t
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "task.json")

	orig := validTask()
	if err := Save(orig, path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(loaded.Train) != 1 || len(loaded.Test) != 1 {
		t.Fatalf("expected 1 train + 1 test example, got %d + %d", len(loaded.Train), len(loaded.Test))
	}
	if loaded.Train[0].Input[0][1] != 1 {
		t.Errorf("train input cell mismatch: %v", loaded.Train[0].Input)
	}
	if loaded.Test[0].Output != nil {
		t.Errorf("test output should stay absent, got %v", loaded.Test[0].Output)
	}
}

func TestSaveOmitsAbsentTestOutput(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "task.json")

	if err := Save(validTask(), path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	// The single test example has no output; the key must not appear in
	// its serialized form. The train example contributes the only one.
	if got := strings.Count(string(data), `"output"`); got != 1 {
		t.Errorf("expected exactly 1 output key in JSON, found %d:\n%s", got, data)
	}
}

func TestParseValidation(t *testing.T) {
	testCases := []struct {
		name string
		json string
		code string
	}{
		{"missing train", `{"test": []}`, "MISSING_TRAIN"},
		{"train example without input", `{"train": [{"output": [[1]]}]}`, "MISSING_INPUT"},
		{"train example without output", `{"train": [{"input": [[1]]}]}`, "MISSING_OUTPUT"},
		{"test example without input", `{"train": [], "test": [{"output": [[1]]}]}`, "MISSING_INPUT"},
		{"ragged grid", `{"train": [{"input": [[1,2],[3]], "output": [[1]]}]}`, grid.CodeRaggedRow},
		{"value out of range", `{"train": [{"input": [[10]], "output": [[1]]}]}`, grid.CodeBadColor},
		{"empty grid", `{"train": [{"input": [], "output": [[1]]}]}`, "MISSING_INPUT"},
		{"empty train output", `{"train": [{"input": [[1]], "output": []}]}`, "MISSING_OUTPUT"},
		{"empty test input", `{"train": [], "test": [{"input": []}]}`, "MISSING_INPUT"},
	}

	for _, tc := range testCases {
		_, err := Parse([]byte(tc.json))
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		var ve grid.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: expected ValidationError, got %v", tc.name, err)
			continue
		}
		if ve.Code != tc.code {
			t.Errorf("%s: expected code %s, got %s (%v)", tc.name, tc.code, ve.Code, err)
		}
	}
}

func TestParseRejectsNonArrayTrain(t *testing.T) {
	if _, err := Parse([]byte(`{"train": "nope"}`)); err == nil {
		t.Error("expected decode error for non-array train")
	}
}

func TestParseRejectsOversizedGrid(t *testing.T) {
	// Interchange bound is 30x30 even though the editor allows 64x64.
	var sb strings.Builder
	sb.WriteString(`{"train": [{"input": [`)
	for i := 0; i < 31; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString("[0]")
	}
	sb.WriteString(`], "output": [[0]]}]}`)

	_, err := Parse([]byte(sb.String()))
	var ve grid.ValidationError
	if !errors.As(err, &ve) || ve.Code != grid.CodeBadHeight {
		t.Errorf("expected BAD_HEIGHT for 31-row grid, got %v", err)
	}
}

func TestAddTrainValidates(t *testing.T) {
	tk := New()
	if err := tk.AddTrain([][]int{{1, 2}}, [][]int{{3}}); err != nil {
		t.Fatalf("AddTrain failed: %v", err)
	}
	if len(tk.Train) != 1 {
		t.Fatalf("expected 1 train example, got %d", len(tk.Train))
	}
	if err := tk.AddTrain([][]int{{1, 2}, {3}}, [][]int{{0}}); err == nil {
		t.Error("AddTrain should reject ragged input")
	}
	if len(tk.Train) != 1 {
		t.Error("rejected AddTrain must not append")
	}
}

func TestAddTestOptionalOutput(t *testing.T) {
	tk := New()
	if err := tk.AddTest([][]int{{0}}, nil); err != nil {
		t.Fatalf("AddTest without output failed: %v", err)
	}
	if err := tk.AddTest([][]int{{0}}, [][]int{{1}}); err != nil {
		t.Fatalf("AddTest with output failed: %v", err)
	}
	if len(tk.Test) != 2 {
		t.Errorf("expected 2 test examples, got %d", len(tk.Test))
	}
}

func TestExampleGrids(t *testing.T) {
	ex := Example{Input: [][]int{{1, 2}, {3, 4}}}

	in, err := ex.InputGrid()
	if err != nil {
		t.Fatalf("InputGrid failed: %v", err)
	}
	if in.Width() != 2 || in.Height() != 2 {
		t.Errorf("input grid %dx%d, expected 2x2", in.Width(), in.Height())
	}
	v, err := in.Get(1, 0)
	if err != nil || v != 2 {
		t.Errorf("input cell (1,0) = %d err=%v, expected 2", v, err)
	}

	out, err := ex.OutputGrid()
	if err != nil {
		t.Fatalf("OutputGrid failed: %v", err)
	}
	if out != nil {
		t.Error("OutputGrid should be nil for example without output")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Load of missing file should fail")
	}
}
