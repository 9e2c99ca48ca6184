package display

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Styles for the report view.
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	SkipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	FailStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Faint(true)
)

// ColorEnabled reports whether styled output makes sense for stdout:
// a real terminal with some color capability and no NO_COLOR override.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

func init() {
	if !ColorEnabled() {
		plain := lipgloss.NewStyle()
		TitleStyle = plain.Bold(true)
		SuccessStyle = plain
		SkipStyle = plain
		FailStyle = plain
		MutedStyle = plain
	}
}
