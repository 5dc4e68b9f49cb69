// Package levels provides campaign level loading for Color Flood.
// Levels are YAML files describing a starting board and a move budget.
package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/arc-studio/internal/grid"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// yamlLevel is the on-disk YAML structure. Rows are digit strings, one
// character per cell, so small boards stay readable in the file.
type yamlLevel struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Moves int      `yaml:"moves"`
	Rows  []string `yaml:"rows"`
}

// Level is a parsed campaign level ready to play.
type Level struct {
	ID       string
	Name     string
	Moves    int
	Cells    [][]int
	FilePath string
}

// ToGrid builds a playable board from the level cells.
func (l *Level) ToGrid() (*grid.Grid, error) {
	g, err := grid.New(1, 1, 0)
	if err != nil {
		return nil, err
	}
	if err := g.FromList(l.Cells); err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return g, nil
}

// Colors returns how many distinct colors the board starts with.
func (l *Level) Colors() int {
	max := 0
	for _, row := range l.Cells {
		for _, v := range row {
			if v > max {
				max = v
			}
		}
	}
	return max + 1
}

// Parse decodes one YAML level definition.
func Parse(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}
	if yl.Moves <= 0 {
		return Level{}, fmt.Errorf("level %s: moves must be positive", yl.ID)
	}
	if len(yl.Rows) == 0 {
		return Level{}, fmt.Errorf("level %s: no rows", yl.ID)
	}

	cells := make([][]int, len(yl.Rows))
	width := len(yl.Rows[0])
	for y, row := range yl.Rows {
		if len(row) != width {
			return Level{}, fmt.Errorf("level %s: row %d has %d cells, expected %d", yl.ID, y, len(row), width)
		}
		cells[y] = make([]int, len(row))
		for x, ch := range row {
			if ch < '0' || ch > '9' {
				return Level{}, fmt.Errorf("level %s: bad cell %q at (%d,%d)", yl.ID, ch, x, y)
			}
			cells[y][x] = int(ch - '0')
		}
	}

	return Level{
		ID:    yl.ID,
		Name:  yl.Name,
		Moves: yl.Moves,
		Cells: cells,
	}, nil
}

// Loader loads levels from a directory, falling back to the embedded
// campaign when the directory has none.
type Loader struct {
	Root string
}

// NewLoader creates a level loader. An empty root uses only the
// embedded campaign.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll returns all available levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var out []Level

	if l.Root != "" {
		err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isYAML(path) {
				return nil
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return nil // Skip unreadable files
			}
			lvl, err := Parse(data)
			if err != nil {
				return nil // Skip invalid files
			}
			lvl.FilePath = path
			out = append(out, lvl)
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
		}
	}

	if len(out) == 0 {
		out = Embedded()
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadByID returns a single level by its ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	all, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(all))
	for i, lvl := range all {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Embedded returns the built-in campaign levels sorted by ID.
func Embedded() []Level {
	entries, err := defaultsFS.ReadDir("defaults")
	if err != nil {
		return nil
	}

	var out []Level
	for _, e := range entries {
		data, err := defaultsFS.ReadFile("defaults/" + e.Name())
		if err != nil {
			continue
		}
		lvl, err := Parse(data)
		if err != nil {
			continue
		}
		out = append(out, lvl)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
