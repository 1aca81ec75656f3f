package tui

import "github.com/charmbracelet/lipgloss"

// Style definitions for the dashboard UI
// These styles follow Lipgloss conventions for composable terminal styling

var (
	highlight = lipgloss.Color("#874BFD")
	subtle    = lipgloss.Color("240")

	// TabStyle defines inactive tabs
	TabStyle = lipgloss.NewStyle().
			Foreground(subtle).
			Padding(0, 2)

	// ActiveTabStyle defines the selected tab
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(highlight).
			Bold(true).
			Padding(0, 2)

	// CardStyle defines the overview metric cards
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 2).
			Width(22).
			Align(lipgloss.Center)

	// CardValueStyle renders the big number inside a card
	CardValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlight)

	// ColumnStyle defines the appearance of board columns
	ColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Width(28)

	// ColumnTitleStyle renders a board column header
	ColumnTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(highlight)

	// ProjectCardStyle renders one project inside a board column
	ProjectCardStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(subtle)

	// HelpStyle renders the bottom key hints
	HelpStyle = lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0, 0, 1)

	// ErrorStyle renders load or save failures
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true)
)
