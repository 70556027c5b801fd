package cli

import "github.com/charmbracelet/lipgloss"

// Shared output palette. Lipgloss downgrades the colors automatically on
// terminals without truecolor support.
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// Status markers used by doctor and the verbose command output.
func okMark() string   { return successStyle.Render("[ OK ]") }
func missMark() string { return warningStyle.Render("[MISS]") }
func warnMark() string { return warningStyle.Render("[WARN]") }
func failMark() string { return errorStyle.Render("[FAIL]") }
func infoMark() string { return mutedStyle.Render("[INFO]") }
