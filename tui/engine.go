package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mediabar/mediabar/log"
	"github.com/mediabar/mediabar/player"
	"github.com/mediabar/mediabar/visibility"
)

// engineOp is a single call into the engine.
type engineOp func(player.Player) error

type (
	engineStartedMsg struct {
		events <-chan player.Event
	}
	launchFailedMsg struct {
		err error
	}
	engineEventMsg struct {
		event player.Event
	}
	engineErrMsg struct {
		err error
	}
	engineClosedMsg  struct{}
	animationTickMsg struct{}
)

// runAsync runs op off the event loop. Failures come back as engineErrMsg.
func (b *statefulBubble) runAsync(op engineOp) tea.Cmd {
	engine := b.engine
	return func() tea.Msg {
		if err := op(engine); err != nil {
			return engineErrMsg{err: err}
		}
		return nil
	}
}

func (b *statefulBubble) launch() tea.Cmd {
	engine, target, title := b.engine, b.options.Target, b.options.Title
	return func() tea.Msg {
		if err := engine.Play(target, title); err != nil {
			return launchFailedMsg{err: err}
		}

		events, err := engine.Subscribe()
		if err != nil {
			return launchFailedMsg{err: err}
		}

		log.Infof("engine launched on socket %s", engine.Socket())
		return engineStartedMsg{events: events}
	}
}

func (b *statefulBubble) waitForEvent() tea.Cmd {
	events := b.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return engineClosedMsg{}
		}
		return engineEventMsg{event: event}
	}
}

func (b *statefulBubble) tick() tea.Cmd {
	return tea.Tick(b.options.TickPeriod, func(time.Time) tea.Msg {
		return animationTickMsg{}
	})
}

// applyEvent folds an engine event into the playback state and the visibility signals.
func (b *statefulBubble) applyEvent(event player.Event) tea.Cmd {
	switch event.Kind {
	case "property-change":
		kind := b.playback.Kind
		if !b.playback.Apply(event.Property, event.Data) {
			return nil
		}

		playing := b.playing()
		b.controls.SetPlaying(playing)
		b.animator.SetPlaying(playing)

		if b.playback.Kind != kind {
			b.controls.SetSourceType(sourceType(b.playback.Kind))
			if b.playback.Kind == player.KindUnknown {
				return b.spinnerC.Tick
			}
		}
	case "end-file":
		log.Debugf("engine: end of file (%s)", event.Reason)
	case "shutdown":
		return tea.Quit
	}

	return nil
}

func (b *statefulBubble) playing() bool {
	return !b.playback.Paused && !b.playback.EOF
}

// syncCursor tells the engine to hide its pointer whenever the controls are auto-hidden.
func (b *statefulBubble) syncCursor() {
	hidden := b.controls.CursorHidden()
	if hidden == b.cursorHidden || b.state != playerState {
		return
	}

	b.cursorHidden = hidden
	b.do(func(p player.Player) error {
		return p.HideCursor(hidden)
	})
}

func sourceType(k player.Kind) visibility.SourceType {
	switch k {
	case player.KindAudio:
		return visibility.SourceAudio
	case player.KindVideo:
		return visibility.SourceVideo
	default:
		return visibility.SourceUnknown
	}
}
