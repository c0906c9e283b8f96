package views

import "github.com/charmbracelet/lipgloss"

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#9A9A9A", Dark: "#6C6C6C"}
	Highlight = lipgloss.AdaptiveColor{Light: "#0A84FF", Dark: "#4FACFE"}
	Rise      = lipgloss.Color("34")
	Fall      = lipgloss.Color("196")

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 3).
			Align(lipgloss.Center)

	cardTitleStyle = lipgloss.NewStyle().Foreground(Highlight)

	currentPriceStyle = lipgloss.NewStyle().
				Bold(true).
				MarginTop(1).
				MarginBottom(1)

	labelStyle = lipgloss.NewStyle().Foreground(Subtle)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Highlight).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(Subtle).
				Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#007BFF")).
			Padding(0, 2)

	sectionTitleStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

	timeStyle    = lipgloss.NewStyle().Foreground(Subtle)
	currentStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	riseStyle    = lipgloss.NewStyle().Bold(true).Foreground(Rise)
	fallStyle    = lipgloss.NewStyle().Bold(true).Foreground(Fall)
	flatStyle    = lipgloss.NewStyle().Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().Foreground(Fall)
)
