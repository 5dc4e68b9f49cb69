package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arc-studio/internal/core"
	"github.com/vovakirdan/arc-studio/internal/grid"
)

// Theme contains the configurable visual styles for the studio.
type Theme struct {
	// Palette slot styles, indexed by grid color 0-15
	Slots [core.PaletteSlots]lipgloss.Style

	// UI styles
	Default lipgloss.Style
	Dim     lipgloss.Style
	Bright  lipgloss.Style
	Accent  lipgloss.Style
	Warn    lipgloss.Style
	Cursor  lipgloss.Style

	// Menu styles
	MenuTitle      lipgloss.Style
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuHint       lipgloss.Style
}

// DefaultTheme builds the standard theme. Grid colors use the extended
// palette's true hex values so cells match the saved task data.
func DefaultTheme() Theme {
	t := Theme{
		Default: lipgloss.NewStyle(),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Bright:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Cursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),

		MenuTitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuHint:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}

	for i := 0; i < core.PaletteSlots; i++ {
		t.Slots[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(grid.Extended.Hex(i)))
	}

	return t
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	t := DefaultTheme()
	shades := []string{
		"232", "255", "250", "245", "252", "243", "248", "247",
		"253", "238", "246", "241", "239", "244", "249", "254",
	}
	for i := 0; i < core.PaletteSlots; i++ {
		t.Slots[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(shades[i]))
	}
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	t.Cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	return t
}

// styleFor maps a screen color to its lipgloss style.
func (t Theme) styleFor(c core.Color) lipgloss.Style {
	if c.IsPaletteSlot() {
		return t.Slots[c.SlotIndex()]
	}
	switch c {
	case core.ColorDim:
		return t.Dim
	case core.ColorBright:
		return t.Bright
	case core.ColorAccent:
		return t.Accent
	case core.ColorWarn:
		return t.Warn
	case core.ColorCursor:
		return t.Cursor
	default:
		return t.Default
	}
}

// Global theme variable (can be changed at runtime)
var activeTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	activeTheme = t
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return activeTheme
}
