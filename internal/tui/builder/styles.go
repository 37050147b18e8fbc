package builder

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	accentColor  = lipgloss.Color("212") // Pink
	mutedColor   = lipgloss.Color("245") // Gray
	warningColor = lipgloss.Color("226") // Yellow
	successColor = lipgloss.Color("42")  // Green

	// Title style
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	// Step indicator styles
	stepActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	stepInactiveStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	// Pane styles
	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	paneFocusedStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor).
				Padding(0, 1)

	paneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// List item styles
	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(accentColor).
				Bold(true)

	requiredMarkStyle = lipgloss.NewStyle().
				Foreground(warningColor)

	insertionPointStyle = lipgloss.NewStyle().
				Foreground(successColor).
				Bold(true)

	// Transient banner styles
	warningStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true).
			PaddingLeft(2)

	statusStyle = lipgloss.NewStyle().
			Foreground(successColor).
			PaddingLeft(2)

	// Help style
	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(2).
			MarginTop(1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)
