package tui

import "github.com/charmbracelet/lipgloss"

var (
	Regular = lipgloss.NewStyle()
	Bold    = Regular.Copy().Bold(true)
	Faint   = Regular.Copy().Faint(true)
	Padded  = Regular.Copy().Padding(0, 1)

	TitleStyle = Bold.Copy().Foreground(TitleColor)
)
