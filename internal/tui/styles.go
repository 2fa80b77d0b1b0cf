package tui

import "github.com/charmbracelet/lipgloss"

// Colours shared by the views.
const (
	colorAccent = lipgloss.Color("39")
	colorBorder = lipgloss.Color("240")
	colorSubtle = lipgloss.Color("245")
	colorError  = lipgloss.Color("196")
	colorGood   = lipgloss.Color("42")
)

// Styles used across the views.
//
//nolint:gochecknoglobals // Lip Gloss styles are immutable values shared by the views.
var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	TabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(colorSubtle)
	ActiveTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true).Foreground(colorAccent)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorBorder).
				BorderBottom(true).
				Padding(0, 1)
	TableSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	BoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	SubtleStyle = lipgloss.NewStyle().Foreground(colorSubtle)
	ErrorStyle  = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	GoodStyle   = lipgloss.NewStyle().Foreground(colorGood)
)
