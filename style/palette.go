package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mediabar/mediabar/color"
)

// Palette of the player interface.
var (
	Base    = lipgloss.Color("#1e1e2e")
	Text    = lipgloss.Color("#cdd6f4")
	Subtext = lipgloss.Color("#a6adc8")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")

	AccentColor    = color.Azure
	SecondaryColor = color.Turquoise
	SuccessColor   = color.Mint
	WarningColor   = lipgloss.Color("#f9e2af")
	ErrorColor     = lipgloss.Color("#f38ba8")
	FaintColor     = Overlay

	BorderColor       = Surface
	ActiveBorderColor = AccentColor
)
