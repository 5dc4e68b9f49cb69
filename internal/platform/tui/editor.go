package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arc-studio/internal/config"
	"github.com/vovakirdan/arc-studio/internal/core"
	"github.com/vovakirdan/arc-studio/internal/editor"
	"github.com/vovakirdan/arc-studio/internal/storage"
)

// editorPrompt identifies which text prompt is active, if any.
type editorPrompt int

const (
	promptNone editorPrompt = iota
	promptSave
	promptLoad
	promptResize
	promptLibrary
)

// EditorModel is the Bubble Tea model for the grid editor.
type EditorModel struct {
	session *editor.Session
	store   *storage.Store
	screen  *core.Screen

	cursorX int
	cursorY int
	width   int
	height  int

	prompt   editorPrompt
	input    textinput.Model
	status   string
	quitting bool
}

// NewEditorModel creates an editor model. A non-empty taskPath is
// loaded immediately.
func NewEditorModel(cfg config.EditorConfig, store *storage.Store, rt core.RuntimeConfig, taskPath string) (EditorModel, error) {
	session, err := editor.NewSession(cfg)
	if err != nil {
		return EditorModel{}, err
	}

	status := "New canvas. 0-9: color, space: apply, ?: see footer"
	if taskPath != "" {
		if err := session.LoadTask(taskPath); err != nil {
			return EditorModel{}, err
		}
		status = fmt.Sprintf("Loaded %s", taskPath)
	} else {
		session.NewTask()
	}

	ti := textinput.New()
	ti.CharLimit = 256

	return EditorModel{
		session: session,
		store:   store,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		width:   rt.ScreenW,
		height:  rt.ScreenH,
		input:   ti,
		status:  status,
	}, nil
}

// Init initializes the editor model.
func (m EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	}

	if m.prompt != promptNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handlePromptKey routes keys while a text prompt is open.
func (m EditorModel) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompt = promptNone
		m.status = "Cancelled"
		return m, nil
	case "enter":
		return m.commitPrompt()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commitPrompt applies the entered text for the active prompt.
func (m EditorModel) commitPrompt() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	prompt := m.prompt
	m.prompt = promptNone

	switch prompt {
	case promptSave:
		if err := m.session.SaveTask(value); err != nil {
			m.status = fmt.Sprintf("Save failed: %v", err)
		} else {
			m.status = fmt.Sprintf("Saved %s", m.session.TaskPath())
		}

	case promptLoad:
		if err := m.session.LoadTask(value); err != nil {
			m.status = fmt.Sprintf("Load failed: %v", err)
		} else {
			m.status = fmt.Sprintf("Loaded %s", value)
			m.clampCursor()
		}

	case promptResize:
		var w, h int
		if _, err := fmt.Sscanf(value, "%dx%d", &w, &h); err != nil {
			m.status = "Resize needs WxH, e.g. 12x8"
		} else if err := m.session.Resize(w, h, 0); err != nil {
			m.status = fmt.Sprintf("Resize failed: %v", err)
		} else {
			m.status = fmt.Sprintf("Resized to %dx%d", w, h)
			m.clampCursor()
		}

	case promptLibrary:
		if m.store == nil {
			m.status = "No database configured"
			break
		}
		if err := m.session.StoreCanvas(); err != nil {
			m.status = fmt.Sprintf("Store failed: %v", err)
			break
		}
		if _, err := m.store.SaveTask(value, m.session.Task()); err != nil {
			m.status = fmt.Sprintf("Store failed: %v", err)
		} else {
			m.status = fmt.Sprintf("Stored %q in the library", value)
		}
	}

	return m, nil
}

// openPrompt shows a text prompt with the given label and preset value.
func (m *EditorModel) openPrompt(p editorPrompt, placeholder, preset string) {
	m.prompt = p
	m.input.Placeholder = placeholder
	m.input.SetValue(preset)
	m.input.CursorEnd()
	m.input.Focus()
}

// handleKey processes editor keys.
func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Digits select the brush color directly
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		c := int(key[0] - '0')
		if err := m.session.SetColor(c); err != nil {
			m.status = fmt.Sprintf("Color %d not in palette", c)
		} else {
			m.status = fmt.Sprintf("Color %d (%s)", c, m.session.Palette().Name())
		}
		return m, nil
	}

	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "up":
		m.cursorY = core.Clamp(m.cursorY-1, 0, m.session.Canvas().Height()-1)
	case "down":
		m.cursorY = core.Clamp(m.cursorY+1, 0, m.session.Canvas().Height()-1)
	case "left":
		m.cursorX = core.Clamp(m.cursorX-1, 0, m.session.Canvas().Width()-1)
	case "right":
		m.cursorX = core.Clamp(m.cursorX+1, 0, m.session.Canvas().Width()-1)

	case " ":
		if _, err := m.session.Apply(m.cursorX, m.cursorY); err != nil {
			m.status = fmt.Sprintf("%v", err)
		} else if m.session.Tool() == editor.ToolPick {
			m.status = fmt.Sprintf("Picked color %d", m.session.Color())
		}

	case "[":
		m.cycleColor(-1)
	case "]":
		m.cycleColor(1)

	case "p":
		m.session.SetTool(editor.ToolPaint)
		m.status = "Paint tool"
	case "f":
		m.session.SetTool(editor.ToolFill)
		m.status = "Fill tool"
	case "i":
		m.session.SetTool(editor.ToolPick)
		m.status = "Pick tool"

	case "u":
		if m.session.Undo() {
			m.status = "Undid last change"
			m.clampCursor()
		} else {
			m.status = "Nothing to undo"
		}

	case "c":
		if err := m.session.Clear(0); err != nil {
			m.status = fmt.Sprintf("%v", err)
		} else {
			m.status = "Cleared canvas"
		}

	case "n":
		m.session.NewTask()
		m.status = "Started a new task"
		m.clampCursor()

	case "tab":
		m.toggleSide()
	case ",":
		m.stepExample(-1)
	case ".":
		m.stepExample(1)
	case "e":
		section, _, _ := m.session.Slot()
		if err := m.session.AddExample(section); err != nil {
			m.status = fmt.Sprintf("%v", err)
		} else {
			m.status = fmt.Sprintf("Added %s example", section)
			m.clampCursor()
		}
	case "E":
		if err := m.session.AddExample(editor.SectionTest); err != nil {
			m.status = fmt.Sprintf("%v", err)
		} else {
			m.status = "Added test example"
			m.clampCursor()
		}

	case "r":
		canvas := m.session.Canvas()
		m.openPrompt(promptResize, "WxH", fmt.Sprintf("%dx%d", canvas.Width(), canvas.Height()))
	case "ctrl+s":
		m.openPrompt(promptSave, "path/to/task.json", m.session.TaskPath())
	case "ctrl+o":
		m.openPrompt(promptLoad, "path/to/task.json", "")
	case "ctrl+l":
		m.openPrompt(promptLibrary, "task name", "")
	}

	return m, nil
}

// cycleColor moves the brush through the palette in either direction.
func (m *EditorModel) cycleColor(dir int) {
	size := m.session.Palette().Size()
	c := (m.session.Color() + dir + size) % size
	if err := m.session.SetColor(c); err == nil {
		m.status = fmt.Sprintf("Color %d", c)
	}
}

// toggleSide flips between the input and output grid of the example.
func (m *EditorModel) toggleSide() {
	section, index, side := m.session.Slot()
	next := editor.SideOutput
	if side == editor.SideOutput {
		next = editor.SideInput
	}
	if err := m.session.SelectSlot(section, index, next); err != nil {
		m.status = fmt.Sprintf("%v", err)
		return
	}
	m.status = fmt.Sprintf("Editing %s %d %s", section, index+1, next)
	m.clampCursor()
}

// stepExample moves to the previous or next example, wrapping between
// the train and test sections.
func (m *EditorModel) stepExample(dir int) {
	section, index, side := m.session.Slot()
	tsk := m.session.Task()

	index += dir
	if index < 0 {
		// Wrap to the other section's tail
		if section == editor.SectionTrain && len(tsk.Test) > 0 {
			section, index = editor.SectionTest, len(tsk.Test)-1
		} else {
			index = 0
		}
	}
	limit := len(tsk.Train)
	if section == editor.SectionTest {
		limit = len(tsk.Test)
	}
	if index >= limit {
		if section == editor.SectionTrain && len(tsk.Test) > 0 {
			section, index = editor.SectionTest, 0
		} else {
			index = limit - 1
		}
	}

	if err := m.session.SelectSlot(section, index, side); err != nil {
		m.status = fmt.Sprintf("%v", err)
		return
	}
	m.status = fmt.Sprintf("Editing %s %d %s", section, index+1, side)
	m.clampCursor()
}

// clampCursor keeps the cursor on the canvas after loads and resizes.
func (m *EditorModel) clampCursor() {
	m.cursorX = core.Clamp(m.cursorX, 0, m.session.Canvas().Width()-1)
	m.cursorY = core.Clamp(m.cursorY, 0, m.session.Canvas().Height()-1)
}

// View renders the editor.
func (m EditorModel) View() string {
	if m.quitting {
		return ""
	}

	m.renderScreen()
	out := RenderScreen(m.screen)

	if m.prompt != promptNone {
		label := map[editorPrompt]string{
			promptSave:    "Save task to",
			promptLoad:    "Load task from",
			promptResize:  "Resize canvas to",
			promptLibrary: "Store in library as",
		}[m.prompt]
		out += fmt.Sprintf("\n%s: %s", label, m.input.View())
	}

	return out
}

// renderScreen draws the whole editor into the screen buffer.
func (m *EditorModel) renderScreen() {
	s := m.screen
	s.Clear()

	canvas := m.session.Canvas()
	section, index, side := m.session.Slot()

	// HUD
	name := m.session.TaskPath()
	if name == "" {
		name = "(unsaved task)"
	}
	dirty := ""
	if m.session.Dirty() {
		dirty = " *"
	}
	hud := fmt.Sprintf(" %s%s | %s %d/%d %s | %dx%d",
		name, dirty, section, index+1, m.sectionLen(section), side,
		canvas.Width(), canvas.Height())
	s.DrawTextColor(0, 0, hud, core.ColorBright)
	s.DrawHLine(0, 1, s.Width(), '─', core.ColorDim)

	// Canvas, centered between HUD and palette strip
	offX := (s.Width() - canvas.Width()*2) / 2
	offY := 2 + (s.Height()-2-canvas.Height()-4)/2
	if offX < 1 {
		offX = 1
	}
	if offY < 2 {
		offY = 2
	}

	for y := 0; y < canvas.Height(); y++ {
		for x := 0; x < canvas.Width(); x++ {
			v, err := canvas.Get(x, y)
			if err != nil {
				continue
			}
			r := '█'
			c := core.PaletteSlot(v)
			if v == 0 {
				r = '·'
				c = core.ColorDim
			}
			s.SetCell(offX+x*2, offY+y, r, c)
			s.SetCell(offX+x*2+1, offY+y, r, c)
		}
	}

	// Cursor brackets
	s.SetCell(offX+m.cursorX*2-1, offY+m.cursorY, '[', core.ColorCursor)
	s.SetCell(offX+m.cursorX*2+2, offY+m.cursorY, ']', core.ColorCursor)

	// Palette strip with the active color marked
	m.renderPalette(s)

	// Status and controls
	s.DrawTextColor(0, s.Height()-2, " "+m.status, core.ColorDefault)
	controls := " Arrows: Move | Space: Apply | p/f/i: Tool | u: Undo | r: Resize | ^S: Save | ^O: Open | ^L: Library | q: Quit"
	s.DrawTextColor(0, s.Height()-1, controls, core.ColorDim)
}

// renderPalette draws the color strip under the canvas.
func (m *EditorModel) renderPalette(s *core.Screen) {
	palette := m.session.Palette()
	y := s.Height() - 4
	total := palette.Size() * 4
	offX := (s.Width() - total) / 2
	if offX < 0 {
		offX = 0
	}

	for c := 0; c < palette.Size(); c++ {
		x := offX + c*4
		slot := core.PaletteSlot(c)
		s.SetCell(x, y, '█', slot)
		s.SetCell(x+1, y, '█', slot)
		label := core.ColorDim
		if c == m.session.Color() {
			label = core.ColorCursor
		}
		s.DrawTextColor(x, y+1, fmt.Sprintf("%-2d", c), label)
	}

	tool := fmt.Sprintf(" Tool: %s | Color: %d", m.session.Tool(), m.session.Color())
	s.DrawTextColor(0, y, tool, core.ColorDefault)
}

// sectionLen returns how many examples the section has.
func (m *EditorModel) sectionLen(section editor.Section) int {
	if section == editor.SectionTest {
		return len(m.session.Task().Test)
	}
	return len(m.session.Task().Train)
}

// RunEditor starts the grid editor.
func RunEditor(cfg config.EditorConfig, store *storage.Store, rt core.RuntimeConfig, taskPath string) error {
	model, err := NewEditorModel(cfg, store, rt, taskPath)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
