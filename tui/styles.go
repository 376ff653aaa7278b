package tui

import "github.com/charmbracelet/lipgloss"

// Palette lifted from the app theme: dark green headers, vibrant green
// accents, soft red for warnings.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2E7D32")).
			Padding(0, 1)

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#66BB6A"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1B5E20")).
			Background(lipgloss.Color("#C8E6C9"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D32F2F"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#388E3C"))

	myMessageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1B5E20")).
			Background(lipgloss.Color("#DCF8C5")).
			Padding(0, 1)

	theirMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("235")).
				Background(lipgloss.Color("255")).
				Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)
)
