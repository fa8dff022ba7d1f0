package ui

import "github.com/charmbracelet/lipgloss"

// Adaptive colors for light and dark terminals.
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#C7761A", Dark: "#F2B33D"}
	colorValue  = lipgloss.AdaptiveColor{Light: "#1B7F3B", Dark: "#58D68D"}
)

// Styles holds the lipgloss styles used for terminal output.
type Styles struct {
	Header lipgloss.Style
	Type   lipgloss.Style
	Source lipgloss.Style
	Muted  lipgloss.Style
	Warn   lipgloss.Style
	Value  lipgloss.Style
}

// TerminalStyles returns the styles for FormatTerminal.
func TerminalStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Underline(true),
		Type:   lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Source: lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		Muted:  lipgloss.NewStyle().Foreground(colorMuted),
		Warn:   lipgloss.NewStyle().Foreground(colorWarn),
		Value:  lipgloss.NewStyle().Foreground(colorValue),
	}
}

// PlainStyles returns styles that add no escape codes.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Header: plain,
		Type:   plain,
		Source: plain,
		Muted:  plain,
		Warn:   plain,
		Value:  plain,
	}
}
