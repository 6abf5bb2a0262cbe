package cli

import (
	"github.com/charmbracelet/lipgloss"

	"procman/internal/config"
)

const appDescription = "interactive terminal process monitor"

// Headline - High-emphasis text for section headers
var (
	sectionHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginTop(1).MarginBottom(1)
)

// Body - Main content text
var (
	bodyLarge  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	bodyMedium = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
)

// Accents and highlights
var (
	commandName = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	exampleCode = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA726"))
)

// Title components
var (
	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render("procman") + appVersionStyle.Render(" v"+config.Version),
	)
	description := bodyLarge.Render(appDescription)

	return lipgloss.JoinVertical(lipgloss.Left, title, description)
}
