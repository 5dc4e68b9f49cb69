package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arc-studio/internal/config"
	"github.com/vovakirdan/arc-studio/internal/games/flood/levels"
)

// FloodSelection holds the user's choices from the Color Flood menu.
type FloodSelection struct {
	Endless    bool
	Level      int // 0 = start from the beginning, 1-N = specific level
	Difficulty config.DifficultyPreset
}

var floodDifficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// FloodMenuModel is the mode and level picker for Color Flood.
type FloodMenuModel struct {
	cursor       int
	diffCursor   int
	width        int
	height       int
	keyMapper    *KeyMapper
	levelNames   []string
	selection    FloodSelection
	chosen       bool
	quitting     bool
	back         bool
	scrollOffset int
}

// NewFloodMenuModel creates a new Color Flood menu model.
func NewFloodMenuModel(width, height int) FloodMenuModel {
	var names []string
	for _, lvl := range levels.Embedded() {
		names = append(names, lvl.Name)
	}

	return FloodMenuModel{
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		levelNames: names,
		diffCursor: 1, // normal
	}
}

// items returns the selectable rows: campaign start, each level, endless.
func (m FloodMenuModel) items() []string {
	items := []string{"Campaign (from the start)"}
	for i, name := range m.levelNames {
		items = append(items, fmt.Sprintf("Campaign - Level %d: %s", i+1, name))
	}
	items = append(items, "Endless (random boards)")
	return items
}

// Init initializes the model.
func (m FloodMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m FloodMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m FloodMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Difficulty cycles on left/right, independent of the row cursor
	switch msg.String() {
	case "left", "h":
		m.diffCursor--
		if m.diffCursor < 0 {
			m.diffCursor = len(floodDifficulties) - 1
		}
		return m, nil
	case "right", "l":
		m.diffCursor = (m.diffCursor + 1) % len(floodDifficulties)
		return m, nil
	}

	action := m.keyMapper.MapKeyToMenuAction(msg)
	items := m.items()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(items)-1 {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		m.chosen = true
		m.selection = FloodSelection{
			Endless:    m.cursor == len(items)-1,
			Level:      0,
			Difficulty: floodDifficulties[m.diffCursor],
		}
		if !m.selection.Endless {
			m.selection.Level = m.cursor // Row 0 is "from the start"
		}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *FloodMenuModel) updateScroll() {
	visibleItems := m.height - 10 // Account for header and footer
	if visibleItems < 3 {
		visibleItems = 3
	}

	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visibleItems {
		m.scrollOffset = m.cursor - visibleItems + 1
	}
}

// View renders the mode picker.
func (m FloodMenuModel) View() string {
	if m.quitting || m.chosen || m.back {
		return ""
	}

	theme := GetTheme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("COLOR FLOOD", m.width))
	b.WriteString("\n\n")

	items := m.items()
	visibleItems := m.height - 10
	if visibleItems < 3 {
		visibleItems = 3
	}
	end := m.scrollOffset + visibleItems
	if end > len(items) {
		end = len(items)
	}

	for i := m.scrollOffset; i < end; i++ {
		cursor := "  "
		style := theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = theme.MenuItemActive
		}
		b.WriteString(style.Render(centerText(cursor+items[i], m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	diff := fmt.Sprintf("Difficulty: < %s >", floodDifficulties[m.diffCursor])
	b.WriteString(centerText(diff, m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Play  |  Esc: Back"
	b.WriteString(theme.MenuHint.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// RunFloodMenu runs the Color Flood picker.
// The back flag means return to the main menu rather than quit.
func RunFloodMenu(width, height int) (sel FloodSelection, back bool, quit bool, err error) {
	p := tea.NewProgram(
		NewFloodMenuModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return FloodSelection{}, false, true, err
	}

	m, ok := finalModel.(FloodMenuModel)
	if !ok || m.quitting {
		return FloodSelection{}, false, true, nil
	}
	if m.back {
		return FloodSelection{}, true, false, nil
	}
	return m.selection, false, false, nil
}
