package tui

import (
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mediabar/mediabar/internal/ui"
	"github.com/mediabar/mediabar/log"
	"github.com/mediabar/mediabar/player"
	"github.com/mediabar/mediabar/util"
	"github.com/mediabar/mediabar/visibility"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{b.notifier.Update(msg)}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case timerFiredMsg:
		if b.loop != nil {
			b.loop.fire(msg.id)
			cmds = append(cmds, b.loop.wait())
		}
	case animationTickMsg:
		b.animator.Advance()
		cmds = append(cmds, b.tick())
	case spinner.TickMsg:
		if b.state == loadingState || b.playback.Kind == player.KindUnknown {
			var cmd tea.Cmd
			b.spinnerC, cmd = b.spinnerC.Update(msg)
			cmds = append(cmds, cmd)
		}
	case engineStartedMsg:
		b.events = msg.events
		b.setState(playerState)
		cmds = append(cmds, b.waitForEvent())
	case launchFailedMsg:
		log.Error(msg.err)
		b.raiseError(msg.err)
	case engineEventMsg:
		cmds = append(cmds, b.applyEvent(msg.event), b.waitForEvent())
	case engineErrMsg:
		log.Warn(msg.err)
		cmds = append(cmds, ui.Notify(msg.err.Error()))
	case engineClosedMsg:
		log.Info("engine exited")
		return b, tea.Quit
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		switch b.state {
		case loadingState:
		case errorState:
			if bubblesKey.Matches(msg, b.keymap.quit, b.keymap.back) {
				return b, tea.Quit
			}
		case playerState:
			cmds = append(cmds, b.updatePlayerKey(msg))
		}
	case tea.MouseMsg:
		if b.state == playerState {
			b.updatePlayerMouse(msg)
		}
	}

	b.syncCursor()
	return b, b.flush(cmds...)
}

func (b *statefulBubble) updatePlayerKey(msg tea.KeyMsg) tea.Cmd {
	b.controls.MarkInteraction()

	if b.controls.MenuOpen() {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back, b.keymap.settings):
			b.closeMenu()
		case bubblesKey.Matches(msg, b.keymap.confirm):
			b.applyMenuItem()
		case bubblesKey.Matches(msg, b.keymap.quit):
			return tea.Quit
		default:
			var cmd tea.Cmd
			b.menuC, cmd = b.menuC.Update(msg)
			return cmd
		}
		return nil
	}

	switch {
	case bubblesKey.Matches(msg, b.keymap.quit):
		return tea.Quit
	case bubblesKey.Matches(msg, b.keymap.togglePlay):
		b.do(player.Player.TogglePause)
	case bubblesKey.Matches(msg, b.keymap.mute):
		b.do(player.Player.ToggleMute)
	case bubblesKey.Matches(msg, b.keymap.fullscreen):
		b.do(player.Player.ToggleFullscreen)
	case bubblesKey.Matches(msg, b.keymap.seekBack):
		b.seekBy(-b.options.SeekStep)
	case bubblesKey.Matches(msg, b.keymap.seekForward):
		b.seekBy(b.options.SeekStep)
	case bubblesKey.Matches(msg, b.keymap.volumeUp):
		b.setVolume(b.playback.Volume + b.options.VolumeStep)
	case bubblesKey.Matches(msg, b.keymap.volumeDown):
		b.setVolume(b.playback.Volume - b.options.VolumeStep)
	case bubblesKey.Matches(msg, b.keymap.slower):
		b.setSpeed(b.stepSpeed(-1))
	case bubblesKey.Matches(msg, b.keymap.faster):
		b.setSpeed(b.stepSpeed(1))
	case bubblesKey.Matches(msg, b.keymap.captions):
		b.do(player.Player.ToggleCaptions)
	case bubblesKey.Matches(msg, b.keymap.settings):
		return b.openMenu()
	case bubblesKey.Matches(msg, b.keymap.focusNext):
		b.moveFocus(1)
	case bubblesKey.Matches(msg, b.keymap.focusPrev):
		b.moveFocus(-1)
	case bubblesKey.Matches(msg, b.keymap.confirm):
		return b.activate(b.focus)
	case bubblesKey.Matches(msg, b.keymap.back):
		b.setFocus(segNone)
	case bubblesKey.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	}

	return nil
}

func (b *statefulBubble) updatePlayerMouse(msg tea.MouseMsg) {
	b.controls.MarkInteraction()

	col, row := cell(msg.X, msg.Y)
	b.setHovered(b.layout.regions(col, row))

	z, ok := b.layout.at(col, row)
	if !ok {
		return
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if msg.Action != tea.MouseActionPress || (z.kind != zoneVolumeLevel && z.segment != segVolume) {
			return
		}
		step := b.options.VolumeStep
		if msg.Button == tea.MouseButtonWheelDown {
			step = -step
		}
		b.setVolume(b.playback.Volume + step)
		return
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return
		}
	default:
		return
	}

	switch z.kind {
	case zoneSurface:
		b.controls.RegisterClick(
			func() { b.do(player.Player.TogglePause) },
			func() { b.do(player.Player.ToggleFullscreen) },
		)
	case zoneSeek:
		if b.playback.Duration > 0 {
			target := z.fraction(col) * b.playback.Duration
			b.do(func(p player.Player) error { return p.Seek(target) })
		}
	case zoneSegment:
		if cmd := b.activate(z.segment); cmd != nil {
			b.pending = append(b.pending, cmd)
		}
	case zoneVolumeLevel:
		b.setVolume(z.fraction(col) * 100)
	case zoneSpeedChoice:
		b.setSpeed(b.speeds[z.index])
	}
}

// setHovered reports every region whose hover state changed to the controller.
// The control bar is entered before and left after its popovers.
func (b *statefulBubble) setHovered(regions map[visibility.Region]bool) {
	order := []visibility.Region{visibility.RegionControls, visibility.RegionVolume, visibility.RegionSpeed}
	if !regions[visibility.RegionControls] {
		order = []visibility.Region{visibility.RegionVolume, visibility.RegionSpeed, visibility.RegionControls}
	}

	for _, region := range order {
		if regions[region] != b.hovered[region] {
			b.hovered[region] = regions[region]
			b.controls.SetHovering(region, regions[region])
		}
	}
}

// activate triggers the action of a control bar segment.
func (b *statefulBubble) activate(s segment) tea.Cmd {
	switch s {
	case segPlay:
		b.do(player.Player.TogglePause)
	case segVolume:
		b.do(player.Player.ToggleMute)
	case segSpeed:
		next := b.nearestSpeed(b.playback.Speed) + 1
		b.setSpeed(b.speeds[next%len(b.speeds)])
	case segCaptions:
		b.do(player.Player.ToggleCaptions)
	case segSettings:
		if b.controls.MenuOpen() {
			b.closeMenu()
			return nil
		}
		return b.openMenu()
	case segFullscreen:
		b.do(player.Player.ToggleFullscreen)
	}
	return nil
}

func (b *statefulBubble) moveFocus(delta int) {
	index := -1
	for i, s := range focusOrder {
		if s == b.focus {
			index = i
		}
	}

	switch {
	case index < 0 && delta < 0:
		index = len(focusOrder) - 1
	case index < 0:
		index = 0
	default:
		index = (index + delta + len(focusOrder)) % len(focusOrder)
	}

	b.setFocus(focusOrder[index])
}

// setFocus moves keyboard focus, reporting popover focus changes to the controller.
func (b *statefulBubble) setFocus(s segment) {
	prev := b.focus
	b.focus = s

	for seg, region := range map[segment]visibility.Region{segVolume: visibility.RegionVolume, segSpeed: visibility.RegionSpeed} {
		if (prev == seg) != (s == seg) {
			b.controls.SetFocused(region, s == seg)
		}
	}
}

func (b *statefulBubble) seekBy(seconds float64) {
	b.do(func(p player.Player) error { return p.SeekRelative(seconds) })
}

func (b *statefulBubble) setVolume(percent float64) {
	percent = util.Clamp(percent, 0, 100)
	b.do(func(p player.Player) error { return p.SetVolume(percent) })
}

func (b *statefulBubble) setSpeed(speed float64) {
	b.do(func(p player.Player) error {
		if err := p.SetSpeed(speed); err != nil {
			return fmt.Errorf("speed %s: %w", formatSpeed(speed), err)
		}
		return nil
	})
}
