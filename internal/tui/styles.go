package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ishaan812/gitstory/internal/memory"
)

// Shared TUI styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	activeBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("86"))

	inactiveBorderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("241"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Padding(0, 1)
)

// categoryStyles color the commit list badges the same way the commits
// command colors its output.
var categoryStyles = map[memory.Category]lipgloss.Style{
	memory.CategorySetup:    lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
	memory.CategoryFeature:  lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	memory.CategoryFix:      lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	memory.CategoryRefactor: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	memory.CategoryTest:     lipgloss.NewStyle().Foreground(lipgloss.Color("177")),
	memory.CategoryOther:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
}
