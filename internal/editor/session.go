// Package editor implements the grid editing session: brush state, undo
// history, and the task being edited. It contains pure logic with no
// terminal dependencies; the TUI layer maps keys onto these operations.
package editor

import (
	"fmt"

	"github.com/vovakirdan/arc-studio/internal/config"
	"github.com/vovakirdan/arc-studio/internal/grid"
	"github.com/vovakirdan/arc-studio/internal/task"
)

// Tool selects what a brush application does.
type Tool int

const (
	// ToolPaint writes the active color into a single cell.
	ToolPaint Tool = iota
	// ToolFill flood-fills the 4-connected region under the brush.
	ToolFill
	// ToolPick reads the cell under the brush into the active color.
	ToolPick
)

func (t Tool) String() string {
	switch t {
	case ToolPaint:
		return "paint"
	case ToolFill:
		return "fill"
	case ToolPick:
		return "pick"
	default:
		return "unknown"
	}
}

// Section identifies which half of a task an example belongs to.
type Section int

const (
	SectionTrain Section = iota
	SectionTest
)

func (s Section) String() string {
	if s == SectionTest {
		return "test"
	}
	return "train"
}

// Side identifies which grid of an example pair is on the canvas.
type Side int

const (
	SideInput Side = iota
	SideOutput
)

func (s Side) String() string {
	if s == SideOutput {
		return "output"
	}
	return "input"
}

// Session holds the full state of one editing session.
type Session struct {
	cfg     config.EditorConfig
	limits  grid.Limits
	palette *grid.Palette

	canvas *grid.Grid
	color  int
	tool   Tool

	tsk      *task.Task
	taskPath string
	section  Section
	example  int
	side     Side

	dirty     bool
	undo      []*grid.Grid
	undoDepth int
}

// NewSession creates a session with a blank canvas sized per the config.
func NewSession(cfg config.EditorConfig) (*Session, error) {
	limits := cfg.Limits()
	canvas, err := grid.NewWithLimits(limits, cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.Fill)
	if err != nil {
		return nil, fmt.Errorf("editor: bad initial grid: %w", err)
	}
	return &Session{
		cfg:       cfg,
		limits:    limits,
		palette:   grid.ForLimits(limits),
		canvas:    canvas,
		color:     1, // Black background, blue brush out of the box
		tool:      ToolPaint,
		tsk:       task.New(),
		undoDepth: cfg.History.UndoDepth,
	}, nil
}

// Canvas returns the grid currently being edited.
func (s *Session) Canvas() *grid.Grid { return s.canvas }

// Palette returns the active color palette.
func (s *Session) Palette() *grid.Palette { return s.palette }

// Color returns the active brush color.
func (s *Session) Color() int { return s.color }

// Tool returns the active brush tool.
func (s *Session) Tool() Tool { return s.tool }

// Dirty reports whether there are unsaved edits.
func (s *Session) Dirty() bool { return s.dirty }

// TaskPath returns the file the task was loaded from or saved to, if any.
func (s *Session) TaskPath() string { return s.taskPath }

// Task returns the task being edited.
func (s *Session) Task() *task.Task { return s.tsk }

// Slot returns which example grid is on the canvas.
func (s *Session) Slot() (Section, int, Side) { return s.section, s.example, s.side }

// SetColor changes the active brush color.
func (s *Session) SetColor(c int) error {
	if _, err := s.palette.Color(c); err != nil {
		return err
	}
	s.color = c
	return nil
}

// SetTool changes the active brush tool.
func (s *Session) SetTool(t Tool) {
	s.tool = t
}

// Apply performs the active tool at (x, y). Out-of-bounds applications
// are ignored. Returns true when the canvas changed.
func (s *Session) Apply(x, y int) (bool, error) {
	if !s.canvas.InBounds(x, y) {
		return false, nil
	}

	switch s.tool {
	case ToolPaint:
		current, err := s.canvas.Get(x, y)
		if err != nil {
			return false, err
		}
		if current == s.color {
			return false, nil
		}
		s.pushUndo()
		if err := s.canvas.Set(x, y, s.color); err != nil {
			s.popUndo()
			return false, err
		}
		s.dirty = true
		return true, nil

	case ToolFill:
		current, err := s.canvas.Get(x, y)
		if err != nil {
			return false, err
		}
		if current == s.color {
			return false, nil
		}
		s.pushUndo()
		if err := s.canvas.FloodFill(x, y, s.color); err != nil {
			s.popUndo()
			return false, err
		}
		s.dirty = true
		return true, nil

	case ToolPick:
		picked, err := s.canvas.Get(x, y)
		if err != nil {
			return false, err
		}
		s.color = picked
		return false, nil

	default:
		return false, fmt.Errorf("editor: unknown tool %d", s.tool)
	}
}

// Resize changes the canvas dimensions, preserving the overlapping region.
func (s *Session) Resize(width, height, fill int) error {
	s.pushUndo()
	if err := s.canvas.Resize(width, height, fill); err != nil {
		s.popUndo()
		return err
	}
	s.dirty = true
	return nil
}

// Clear repaints the whole canvas with the given color.
func (s *Session) Clear(fill int) error {
	s.pushUndo()
	if err := s.canvas.Fill(fill); err != nil {
		s.popUndo()
		return err
	}
	s.dirty = true
	return nil
}

// Undo restores the most recent snapshot. Returns false when the
// history is empty.
func (s *Session) Undo() bool {
	if len(s.undo) == 0 {
		return false
	}
	s.canvas = s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.dirty = true
	return true
}

// UndoDepth returns how many snapshots are available.
func (s *Session) UndoDepth() int { return len(s.undo) }

func (s *Session) pushUndo() {
	if s.undoDepth <= 0 {
		return
	}
	if len(s.undo) >= s.undoDepth {
		// Drop the oldest snapshot
		copy(s.undo, s.undo[1:])
		s.undo = s.undo[:len(s.undo)-1]
	}
	s.undo = append(s.undo, s.canvas.Clone())
}

func (s *Session) popUndo() {
	if len(s.undo) > 0 {
		s.undo = s.undo[:len(s.undo)-1]
	}
}

// NewTask discards the current task and starts a fresh one with a
// single train example: the canvas as its input and a blank output.
func (s *Session) NewTask() {
	s.tsk = task.New()
	s.tsk.Train = append(s.tsk.Train, task.Example{
		Input:  s.canvas.ToList(),
		Output: blankList(s.canvas.Width(), s.canvas.Height()),
	})
	s.taskPath = ""
	s.section = SectionTrain
	s.example = 0
	s.side = SideInput
	s.dirty = true
}

// LoadTask reads a task from disk and puts its first train input on the
// canvas. Any unsaved canvas state is lost.
func (s *Session) LoadTask(path string) error {
	t, err := task.Load(path)
	if err != nil {
		return err
	}
	s.tsk = t
	s.taskPath = path
	s.section = SectionTrain
	s.example = 0
	s.side = SideInput
	s.undo = nil
	s.dirty = false
	if len(t.Train) > 0 {
		return s.loadSlot()
	}
	return nil
}

// SaveTask stores the canvas into its slot and writes the task to path.
// An empty path reuses the path from the last load or save.
func (s *Session) SaveTask(path string) error {
	if path == "" {
		path = s.taskPath
	}
	if path == "" {
		return fmt.Errorf("editor: no task path set")
	}
	if err := s.StoreCanvas(); err != nil {
		return err
	}
	if err := task.Save(s.tsk, path); err != nil {
		return err
	}
	s.taskPath = path
	s.dirty = false
	return nil
}

// StoreCanvas writes the canvas back into the selected example slot.
// With no examples in the selected section, a new one is appended.
func (s *Session) StoreCanvas() error {
	examples := s.sectionExamples()
	if s.example >= len(*examples) {
		*examples = append(*examples, s.freshExample(s.section))
		s.example = len(*examples) - 1
	}
	ex := &(*examples)[s.example]
	if s.side == SideOutput {
		ex.Output = s.canvas.ToList()
	} else {
		ex.Input = s.canvas.ToList()
	}
	return nil
}

// SelectSlot stores the canvas, then loads the requested example grid.
func (s *Session) SelectSlot(section Section, index int, side Side) error {
	if err := s.StoreCanvas(); err != nil {
		return err
	}
	examples := s.examplesFor(section)
	if index < 0 || index >= len(examples) {
		return fmt.Errorf("editor: no %s example %d", section, index)
	}
	s.section = section
	s.example = index
	s.side = side
	return s.loadSlot()
}

// AddExample stores the canvas, appends a blank example to the given
// section, and selects its input side with a cleared canvas.
func (s *Session) AddExample(section Section) error {
	if err := s.StoreCanvas(); err != nil {
		return err
	}
	blank, err := grid.NewWithLimits(s.limits, s.cfg.Grid.Width, s.cfg.Grid.Height, s.cfg.Grid.Fill)
	if err != nil {
		return err
	}
	examples := s.sectionExamplesFor(section)
	*examples = append(*examples, s.freshExample(section))
	s.section = section
	s.example = len(*examples) - 1
	s.side = SideInput
	s.canvas = blank
	s.undo = nil
	s.dirty = true
	return nil
}

// freshExample builds an empty example for the section. Train examples
// get a blank output so the task still validates; test outputs stay
// absent until the author fills them in.
func (s *Session) freshExample(section Section) task.Example {
	ex := task.Example{Input: blankList(s.cfg.Grid.Width, s.cfg.Grid.Height)}
	if section == SectionTrain {
		ex.Output = blankList(s.cfg.Grid.Width, s.cfg.Grid.Height)
	}
	return ex
}

// blankList returns a zero-filled nested array of the given dimensions.
func blankList(width, height int) [][]int {
	rows := make([][]int, height)
	for i := range rows {
		rows[i] = make([]int, width)
	}
	return rows
}

// loadSlot replaces the canvas with the selected example grid. A slot
// with no grid yet (e.g. a pending test output) yields a blank canvas.
func (s *Session) loadSlot() error {
	examples := s.examplesFor(s.section)
	ex := examples[s.example]
	data := ex.Input
	if s.side == SideOutput {
		data = ex.Output
	}
	s.undo = nil
	if len(data) == 0 {
		blank, err := grid.NewWithLimits(s.limits, s.cfg.Grid.Width, s.cfg.Grid.Height, s.cfg.Grid.Fill)
		if err != nil {
			return err
		}
		s.canvas = blank
		return nil
	}
	fresh, err := grid.NewWithLimits(s.limits, 1, 1, 0)
	if err != nil {
		return err
	}
	if err := fresh.FromList(data); err != nil {
		return fmt.Errorf("editor: %s example %d %s: %w", s.section, s.example, s.side, err)
	}
	s.canvas = fresh
	return nil
}

func (s *Session) examplesFor(section Section) []task.Example {
	if section == SectionTest {
		return s.tsk.Test
	}
	return s.tsk.Train
}

func (s *Session) sectionExamples() *[]task.Example {
	return s.sectionExamplesFor(s.section)
}

func (s *Session) sectionExamplesFor(section Section) *[]task.Example {
	if section == SectionTest {
		return &s.tsk.Test
	}
	return &s.tsk.Train
}
