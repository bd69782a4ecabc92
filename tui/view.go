package tui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mediabar/mediabar/icon"
	"github.com/mediabar/mediabar/player"
	"github.com/mediabar/mediabar/style"
	"github.com/mediabar/mediabar/util"
	"github.com/muesli/reflow/wrap"
)

const (
	// timeColumns is the width reserved for a time readout and its separating space.
	timeColumns = 8
	menuHeight  = 12
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case playerState:
		output = b.viewPlayer()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines(
		true,
		[]string{
			style.Title("Starting"),
			"",
			b.spinnerC.View() + " Launching the media engine for " + style.Bold(b.title()),
		},
	)
}

func (b *statefulBubble) viewError() string {
	errorStyle := lipgloss.NewStyle().Foreground(style.ErrorColor).Bold(true)
	errorBody := errorStyle.Render(b.lastError.Error())
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " The media engine could not be started:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) viewPlayer() string {
	var l layout

	l.add(b.viewTitle())
	l.add("")
	b.renderSurface(&l)

	hidden := b.controls.IsHidden()
	if !hidden {
		l.add("")
		l.controlsFrom = len(l.lines)
		b.renderControls(&l)
		l.controlsTo = len(l.lines)
	}

	b.layout = l
	return b.renderLines(!hidden, l.lines)
}

func (b *statefulBubble) viewTitle() string {
	kind := icon.Progress
	switch b.playback.Kind {
	case player.KindAudio:
		kind = icon.Audio
	case player.KindVideo:
		kind = icon.Video
	}

	return style.Title(icon.Get(kind)+" "+b.title()) + " " + style.Faint(b.playback.Kind.String())
}

func (b *statefulBubble) title() string {
	switch {
	case b.playback.Title != "":
		return b.playback.Title
	case b.options.Title != "":
		return b.options.Title
	default:
		return filepath.Base(b.options.Target)
	}
}

func (b *statefulBubble) renderSurface(l *layout) {
	rows := util.Max(b.options.BarRows, 1)

	var lines []string
	switch b.playback.Kind {
	case player.KindAudio:
		bars := b.animator.Bars()
		indent := strings.Repeat(" ", util.Max(b.width-RowWidth(len(bars), b.options.BarWidth, b.options.BarGap), 0)/2)
		for _, line := range RenderBars(bars, rows, b.options.BarWidth, b.options.BarGap) {
			lines = append(lines, indent+line)
		}
	case player.KindVideo:
		lines = make([]string, rows)
		lines[(rows-1)/2] = icon.Get(icon.Video) + " Playing in the engine window"
		if rows > 1 {
			lines[(rows-1)/2+1] = style.Faint("click to play or pause, double-click for fullscreen")
		}
	default:
		lines = make([]string, rows)
		lines[(rows-1)/2] = b.spinnerC.View() + " Probing media"
	}

	for _, line := range lines {
		row := l.add(line)
		l.mark(zoneSurface, row, 0, b.width)
	}
}

func (b *statefulBubble) renderControls(l *layout) {
	signals := b.controls.Signals()

	// seek bar
	seekRow := l.add(
		fmt.Sprintf("%*s ", timeColumns-1, util.FormatTime(b.playback.Position)) +
			b.seekC.ViewAs(b.playback.Progress()) +
			" " + util.FormatTime(b.playback.Duration),
	)
	l.mark(zoneSeek, seekRow, timeColumns, b.seekC.Width)

	// segments
	order := []segment{segPlay, segVolume, segTime, segSpeed, segCaptions, segSettings, segFullscreen}
	parts := make([]string, len(order))
	for i, s := range order {
		parts[i] = style.Segment(b.focus == s)(b.segmentLabel(s))
	}
	row, starts := l.spans(parts, " ")
	for i, s := range order {
		l.mark(zoneSegment, row, starts[i], lipgloss.Width(parts[i])).segment = s
	}

	if signals.UsingVolume {
		prefix := icon.Get(b.volumeIcon()) + " "
		row := l.add(prefix + b.volumeC.ViewAs(b.playback.Volume/100) + fmt.Sprintf(" %3.0f%%", b.playback.Volume))
		l.mark(zoneVolumeLevel, row, lipgloss.Width(prefix), b.volumeC.Width)
	}

	if signals.UsingSpeed {
		current := b.nearestSpeed(b.playback.Speed)
		choices := make([]string, len(b.speeds))
		for i, s := range b.speeds {
			choices[i] = style.Segment(i == current)(formatSpeed(s))
		}
		row, starts := l.spans(choices, " ")
		for i := range choices {
			l.mark(zoneSpeedChoice, row, starts[i], lipgloss.Width(choices[i])).index = i
		}
	}

	if b.controls.MenuOpen() {
		l.add("")
		for _, line := range strings.Split(b.menuC.View(), "\n") {
			l.add(line)
		}
	}
}

func (b *statefulBubble) segmentLabel(s segment) string {
	switch s {
	case segPlay:
		if b.playing() {
			return icon.Get(icon.Pause)
		}
		return icon.Get(icon.Play)
	case segVolume:
		return fmt.Sprintf("%s %.0f%%", icon.Get(b.volumeIcon()), b.playback.Volume)
	case segTime:
		return util.FormatTime(b.playback.Position) + " / " + util.FormatTime(b.playback.Duration)
	case segSpeed:
		return icon.Get(icon.Speed) + " " + formatSpeed(b.playback.Speed)
	case segCaptions:
		if b.playback.Captions {
			return icon.Get(icon.Captions)
		}
		return style.Faint(icon.Get(icon.Captions))
	case segSettings:
		return icon.Get(icon.Settings)
	case segFullscreen:
		return icon.Get(icon.Fullscreen)
	default:
		return ""
	}
}

func (b *statefulBubble) volumeIcon() icon.Icon {
	if b.playback.Muted || b.playback.Volume == 0 {
		return icon.Muted
	}
	return icon.Volume
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}

func formatSpeed(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "x"
}
