// Package color provides a curated palette of colors.
package color

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mediabar/mediabar/waveform"
)

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// FromRGB converts a bar color to a lipgloss color.
func FromRGB(c waveform.RGB) lipgloss.Color {
	return New(c.Hex())
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// Accents taken from the default bar gradient.
var (
	Azure     = New("#29A6FF")
	Turquoise = New("#00D2ED")
	Mint      = New("#2DE2C0")
	Gray      = New("#808080")
)
