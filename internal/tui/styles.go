package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorAccent    = lipgloss.Color("#F25C54")
	colorGreen     = lipgloss.Color("#3DDC84")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			MarginTop(1).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			MarginBottom(1)

	commandStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	commandDescStyle = lipgloss.NewStyle().
				Foreground(colorGray).
				PaddingLeft(1)

	inputStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorLightGray)

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorGray)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)

	// used by the one-shot CLI commands
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			PaddingRight(2)

	CellStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			PaddingRight(2)

	InfoStyle    = infoStyle
	SuccessStyle = successStyle
	ErrorStyle   = errorStyle
)

const logo = `
     ╦╦ ╦╔═╗╔╦╗╔═╗╔═╗╔═╗╦ ╦
     ║║ ║╚═╗ ║ ║  ║ ║╠═╝╚╦╝
    ╚╝╚═╝╚═╝ ╩ ╚═╝╚═╝╩   ╩ 
`
