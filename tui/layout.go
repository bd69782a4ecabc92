package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mediabar/mediabar/visibility"
)

type zoneKind int

const (
	zoneSurface zoneKind = iota
	zoneSeek
	zoneSegment
	zoneVolumeLevel
	zoneSpeedChoice
)

// zone is a clickable span on one row, columns [from, to).
type zone struct {
	kind    zoneKind
	segment segment
	// index is the speed choice index for zoneSpeedChoice.
	index    int
	row      int
	from, to int
}

func (z zone) contains(col, row int) bool {
	return row == z.row && col >= z.from && col < z.to
}

// fraction maps a column inside the zone to [0,1].
func (z zone) fraction(col int) float64 {
	width := z.to - z.from
	if width <= 1 {
		return 0
	}

	f := float64(col-z.from) / float64(width-1)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// layout is recorded while rendering and consumed by mouse handling.
// Rows and columns are relative to the padded content area.
type layout struct {
	lines []string
	zones []zone
	// controlsFrom and controlsTo bound the control bar rows, [from, to); empty when hidden.
	controlsFrom, controlsTo int
}

func (l *layout) add(line string) int {
	l.lines = append(l.lines, line)
	return len(l.lines) - 1
}

func (l *layout) mark(kind zoneKind, row, from, width int) *zone {
	l.zones = append(l.zones, zone{kind: kind, row: row, from: from, to: from + width})
	return &l.zones[len(l.zones)-1]
}

// spans adds a row of rendered parts joined by sep and returns the starting column of each part.
func (l *layout) spans(parts []string, sep string) (row int, starts []int) {
	var line string
	col := 0
	sepWidth := lipgloss.Width(sep)

	for i, part := range parts {
		if i > 0 {
			line += sep
			col += sepWidth
		}
		starts = append(starts, col)
		line += part
		col += lipgloss.Width(part)
	}

	return l.add(line), starts
}

// at returns the topmost zone under the cell.
func (l *layout) at(col, row int) (zone, bool) {
	for i := len(l.zones) - 1; i >= 0; i-- {
		if l.zones[i].contains(col, row) {
			return l.zones[i], true
		}
	}
	return zone{}, false
}

// regions reports which visibility regions contain the cell.
func (l *layout) regions(col, row int) map[visibility.Region]bool {
	regions := map[visibility.Region]bool{
		visibility.RegionControls: row >= l.controlsFrom && row < l.controlsTo,
	}

	if z, ok := l.at(col, row); ok {
		switch {
		case z.kind == zoneVolumeLevel, z.kind == zoneSegment && z.segment == segVolume:
			regions[visibility.RegionVolume] = true
		case z.kind == zoneSpeedChoice, z.kind == zoneSegment && z.segment == segSpeed:
			regions[visibility.RegionSpeed] = true
		}
	}

	return regions
}

// cell translates terminal coordinates into content coordinates.
func cell(x, y int) (col, row int) {
	return x - paddingStyle.GetPaddingLeft(), y - paddingStyle.GetPaddingTop()
}
