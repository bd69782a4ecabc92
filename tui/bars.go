package tui

import (
	"strings"

	"github.com/mediabar/mediabar/color"
	"github.com/mediabar/mediabar/style"
	"github.com/mediabar/mediabar/waveform"
)

const barBlock = "█"

// RenderBars draws bars bottom-aligned into rows lines. A bar of h percent fills ceil(h*rows/100) cells.
func RenderBars(bars []waveform.Bar, rows, barWidth, gap int) []string {
	if rows <= 0 {
		return nil
	}

	block := strings.Repeat(barBlock, barWidth)
	blank := strings.Repeat(" ", barWidth)
	spacer := strings.Repeat(" ", gap)

	lines := make([]string, rows)
	for r := range lines {
		var sb strings.Builder
		for i, bar := range bars {
			if i > 0 {
				sb.WriteString(spacer)
			}

			filled := (bar.HeightPercent*rows + 99) / 100
			if rows-r <= filled {
				sb.WriteString(style.Fg(color.FromRGB(bar.Color))(block))
			} else {
				sb.WriteString(blank)
			}
		}
		lines[r] = sb.String()
	}

	return lines
}

// RowWidth is the number of columns n bars occupy.
func RowWidth(n, barWidth, gap int) int {
	if n <= 0 {
		return 0
	}
	return n*barWidth + (n-1)*gap
}
