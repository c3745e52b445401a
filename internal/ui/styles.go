// Package ui holds the shared terminal styling for pidplot's CLI output.
package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for status indication, using ANSI codes for terminal
// compatibility.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	mutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Success renders a green check-marked status line.
func Success(message string) string {
	return successStyle.Render(SymbolSuccess) + " " + message
}

// Failure renders a red cross-marked status line.
func Failure(message string) string {
	return errorStyle.Render(SymbolFail) + " " + message
}

// Muted renders secondary detail text in gray.
func Muted(message string) string {
	return mutedStyle.Render(message)
}
