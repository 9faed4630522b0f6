package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Core colors
var (
	primaryColor   = lipgloss.Color("#39ff14") // Bright digital green
	secondaryColor = lipgloss.Color("#FFFFFF") // Pure white for text
	noticeColor    = lipgloss.Color("#ffb000") // Amber for notices
	errorColor     = lipgloss.Color("#ff3131") // Red for failures
)

// Styles holds all the application styles
type Styles struct {
	Banner  lipgloss.Style
	Section lipgloss.Style
	Command lipgloss.Style
	Text    lipgloss.Style
	Notice  lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles creates a new Styles instance
func NewStyles() *Styles {
	s := &Styles{}

	s.Banner = lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor)

	s.Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(secondaryColor)

	s.Command = lipgloss.NewStyle().
		Foreground(primaryColor)

	s.Text = lipgloss.NewStyle().
		Foreground(secondaryColor)

	s.Notice = lipgloss.NewStyle().
		Foreground(noticeColor)

	s.Error = lipgloss.NewStyle().
		Bold(true).
		Foreground(errorColor)

	return s
}
