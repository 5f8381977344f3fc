package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/liftlab/swole/internal/render"
)

var (
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(render.ColorPrimary))

	PaneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(render.ColorSuccess))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(render.ColorSecondary))
)
