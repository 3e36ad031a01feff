package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used by the lipgloss parts of the UI (inputs, footer). The
// compose widgets use the matching basic ANSI colors.
const (
	ColorAccent = "4"   // Blue - focused input borders, key names
	ColorMuted  = "241" // Gray - hints, unfocused borders
)

// Styles contains shared style definitions used across pages.
var Styles = struct {
	Input        lipgloss.Style // Unfocused text input box
	InputFocused lipgloss.Style // Focused text input box
	Muted        lipgloss.Style // Footer status
	HelpKey      lipgloss.Style // Key names in the help footer
	HelpDesc     lipgloss.Style // Descriptions in the help footer
}{
	Input: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	InputFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	HelpKey: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	HelpDesc: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}
