package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mediabar/mediabar/clock"
	"github.com/mediabar/mediabar/player"
	"github.com/mediabar/mediabar/waveform"
	. "github.com/smartystreets/goconvey/convey"
)

type fakePlayer struct {
	calls  []string
	seeks  []float64
	volume float64
	speed  float64
	cursor []bool
	fail   error
}

func (f *fakePlayer) record(call string) error {
	f.calls = append(f.calls, call)
	return f.fail
}

func (f *fakePlayer) Play(string, string) error { return f.record("play") }
func (f *fakePlayer) Subscribe() (<-chan player.Event, error) { return make(chan player.Event), nil }
func (f *fakePlayer) TogglePause() error { return f.record("pause") }
func (f *fakePlayer) SetPaused(bool) error { return f.record("set-pause") }
func (f *fakePlayer) Seek(seconds float64) error {
	f.seeks = append(f.seeks, seconds)
	return f.record("seek")
}
func (f *fakePlayer) SeekRelative(seconds float64) error {
	f.seeks = append(f.seeks, seconds)
	return f.record("seek-relative")
}
func (f *fakePlayer) SetVolume(percent float64) error {
	f.volume = percent
	return f.record("volume")
}
func (f *fakePlayer) ToggleMute() error { return f.record("mute") }
func (f *fakePlayer) SetSpeed(speed float64) error {
	f.speed = speed
	return f.record("speed")
}
func (f *fakePlayer) ToggleCaptions() error { return f.record("captions") }
func (f *fakePlayer) CycleCaptionTrack() error { return f.record("caption-track") }
func (f *fakePlayer) ToggleFullscreen() error { return f.record("fullscreen") }
func (f *fakePlayer) HideCursor(hidden bool) error {
	f.cursor = append(f.cursor, hidden)
	return f.record("cursor")
}
func (f *fakePlayer) Socket() string { return "/tmp/fake.sock" }
func (f *fakePlayer) Wait() <-chan struct{} { return nil }
func (f *fakePlayer) Close() error { return nil }

func testOptions() *Options {
	gradient, err := waveform.NewGradient(mustStops(), waveform.DefaultStart)
	if err != nil {
		panic(err)
	}

	return &Options{
		Target:            "/media/song.flac",
		HideDelay:         3 * time.Second,
		DoubleClickWindow: 500 * time.Millisecond,
		TickPeriod:        50 * time.Millisecond,
		Gradient:          gradient,
		BarWidth:          1,
		BarGap:            1,
		BarRows:           4,
		SeekStep:          5,
		VolumeStep:        5,
		Speeds:            []float64{2, 0.5, 1, 1.5},
	}
}

func mustStops() []waveform.Stop {
	stops, err := waveform.ParseStops(waveform.DefaultStops)
	if err != nil {
		panic(err)
	}
	return stops
}

// newTestBubble returns a started shell whose engine calls run synchronously.
func newTestBubble(options *Options) (*statefulBubble, *fakePlayer, *clock.Fake) {
	engine := &fakePlayer{}
	fake := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	b := newBubble(options, engine, fake)
	b.dispatch = func(op engineOp) tea.Cmd {
		_ = op(engine)
		return nil
	}
	b.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	b.Update(engineStartedMsg{events: make(chan player.Event)})

	return b, engine, fake
}

func property(name string, data any) tea.Msg {
	return engineEventMsg{event: player.Event{Kind: "property-change", Property: name, Data: data}}
}

var videoTracks = []any{
	map[string]any{"type": "video", "albumart": false},
	map[string]any{"type": "audio"},
}

var audioTracks = []any{
	map[string]any{"type": "video", "albumart": true},
	map[string]any{"type": "audio"},
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestUpdate(t *testing.T) {
	Convey("Given a started shell", t, func() {
		b, engine, fake := newTestBubble(testOptions())

		Convey("It is in the player state with the controls shown", func() {
			So(b.state, ShouldEqual, playerState)
			So(b.controls.IsHidden(), ShouldBeFalse)
			So(b.View(), ShouldContainSubstring, "Probing media")
		})

		Convey("Video that starts playing before any input hides at once", func() {
			b.Update(property("track-list", videoTracks))
			b.Update(property("pause", false))

			So(b.controls.IsHidden(), ShouldBeTrue)
			So(engine.cursor, ShouldResemble, []bool{true})
			So(engine.calls, ShouldResemble, []string{"cursor"})
		})

		Convey("When video plays and the user has interacted", func() {
			b.Update(property("track-list", videoTracks))
			b.Update(property("pause", false))
			b.Update(keyPress("?"))
			So(b.controls.IsHidden(), ShouldBeFalse)
			So(engine.cursor, ShouldResemble, []bool{true, false})

			Convey("The controls hide after the hide delay and the engine cursor follows", func() {
				fake.Advance(2900 * time.Millisecond)
				So(b.controls.IsHidden(), ShouldBeFalse)

				fake.Advance(100 * time.Millisecond)
				So(b.controls.IsHidden(), ShouldBeTrue)

				b.Update(animationTickMsg{})
				So(engine.cursor, ShouldResemble, []bool{true, false, true})
				So(b.View(), ShouldNotContainSubstring, "0:00 / 0:00")
			})

			Convey("Any key shows the controls again", func() {
				fake.Advance(3 * time.Second)
				b.Update(keyPress("up"))
				So(b.controls.IsHidden(), ShouldBeFalse)
				So(engine.volume, ShouldEqual, 100)
			})

			Convey("Pausing keeps the controls shown", func() {
				b.Update(property("pause", true))
				fake.Advance(10 * time.Second)
				So(b.controls.IsHidden(), ShouldBeFalse)
			})
		})

		Convey("Audio never hides and animates its bars", func() {
			b.Update(property("track-list", audioTracks))
			b.Update(property("pause", false))
			fake.Advance(10 * time.Second)
			So(b.controls.IsHidden(), ShouldBeFalse)

			offset := b.animator.Offset()
			b.Update(animationTickMsg{})
			So(b.animator.Offset(), ShouldNotEqual, offset)
			So(b.View(), ShouldContainSubstring, barBlock)
		})

		Convey("Transport keys reach the engine", func() {
			b.Update(keyPress("space"))
			b.Update(keyPress("m"))
			b.Update(keyPress("f"))
			b.Update(keyPress("c"))
			b.Update(keyPress("left"))
			So(engine.calls, ShouldResemble, []string{"pause", "mute", "fullscreen", "captions", "seek-relative"})
			So(engine.seeks, ShouldResemble, []float64{-5})
		})

		Convey("Speed keys step through the sorted speeds", func() {
			b.Update(keyPress("]"))
			So(engine.speed, ShouldEqual, 1.5)

			b.Update(property("speed", 2.0))
			b.Update(keyPress("]"))
			So(engine.speed, ShouldEqual, 2)

			b.Update(keyPress("["))
			So(engine.speed, ShouldEqual, 1.5)
		})

		Convey("Volume is clamped before it is sent", func() {
			b.Update(property("volume", 98.0))
			b.Update(keyPress("up"))
			So(engine.volume, ShouldEqual, 100)
		})

		Convey("The settings menu pins the controls and applies its selection", func() {
			b.Update(property("track-list", videoTracks))
			b.Update(property("pause", false))

			b.Update(keyPress("s"))
			So(b.controls.MenuOpen(), ShouldBeTrue)
			fake.Advance(time.Minute)
			So(b.controls.IsHidden(), ShouldBeFalse)

			// speeds are 0.5 1 1.5 2 and the cursor starts on the current speed
			b.Update(keyPress("down"))
			b.Update(keyPress("enter"))
			So(b.controls.MenuOpen(), ShouldBeFalse)
			So(engine.speed, ShouldEqual, 1.5)

			fake.Advance(3 * time.Second)
			So(b.controls.IsHidden(), ShouldBeTrue)
		})

		Convey("Tab focus on the volume segment pins the controls", func() {
			b.Update(property("track-list", videoTracks))
			b.Update(property("pause", false))

			b.Update(keyPress("tab"))
			So(b.focus, ShouldEqual, segPlay)
			b.Update(keyPress("tab"))
			So(b.focus, ShouldEqual, segVolume)
			So(b.controls.Signals().UsingVolume, ShouldBeTrue)

			fake.Advance(time.Minute)
			So(b.controls.IsHidden(), ShouldBeFalse)

			b.Update(keyPress("enter"))
			So(engine.calls, ShouldContain, "mute")

			b.Update(keyPress("esc"))
			So(b.controls.Signals().UsingVolume, ShouldBeFalse)
			fake.Advance(3 * time.Second)
			So(b.controls.IsHidden(), ShouldBeTrue)
		})

		Convey("Mouse input", func() {
			b.Update(property("track-list", videoTracks))
			b.Update(property("duration", 100.0))
			b.Update(property("pause", false))
			b.Update(keyPress("?"))
			b.View()
			engine.calls = nil

			surface := b.layout.zones[0]
			seek := zoneOf(b.layout, zoneSeek)
			x, y := surface.from+paddingStyle.GetPaddingLeft(), surface.row+paddingStyle.GetPaddingTop()

			Convey("A click on the surface toggles play, a double click also toggles fullscreen", func() {
				b.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
				So(engine.calls, ShouldResemble, []string{"pause"})

				fake.Advance(200 * time.Millisecond)
				b.Update(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
				So(engine.calls, ShouldResemble, []string{"pause", "pause", "fullscreen"})
			})

			Convey("Hovering the control bar pins the controls until the pointer leaves", func() {
				b.Update(tea.MouseMsg{X: seek.from + 2, Y: seek.row + 1, Action: tea.MouseActionMotion})
				So(b.controls.Signals().HoveringControls, ShouldBeTrue)
				fake.Advance(time.Minute)
				So(b.controls.IsHidden(), ShouldBeFalse)

				b.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
				So(b.controls.Signals().HoveringControls, ShouldBeFalse)
				fake.Advance(3 * time.Second)
				So(b.controls.IsHidden(), ShouldBeTrue)
			})

			Convey("A click on the seek bar seeks to that fraction", func() {
				b.Update(tea.MouseMsg{X: seek.to - 1 + 2, Y: seek.row + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
				So(engine.seeks, ShouldResemble, []float64{100})
			})
		})

		Convey("Engine errors become notifications", func() {
			_, cmd := b.Update(engineErrMsg{err: errors.New("socket gone")})
			So(cmd, ShouldNotBeNil)
		})

		Convey("The end of the event stream quits", func() {
			_, cmd := b.Update(engineClosedMsg{})
			So(cmd(), ShouldHaveSameTypeAs, tea.Quit())
		})
	})

	Convey("A failed launch shows the error", t, func() {
		b := newBubble(testOptions(), &fakePlayer{}, clock.NewFake(time.Now()))
		b.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
		b.Update(launchFailedMsg{err: errors.New("mpv not found")})

		So(b.state, ShouldEqual, errorState)
		So(b.View(), ShouldContainSubstring, "mpv not found")

		_, cmd := b.Update(keyPress("q"))
		So(cmd(), ShouldHaveSameTypeAs, tea.Quit())
	})

	Convey("Native controls hide the custom controls but not the engine cursor", t, func() {
		options := testOptions()
		options.NativeControls = true
		b, engine, _ := newTestBubble(options)
		b.Update(property("track-list", videoTracks))

		So(b.controls.IsHidden(), ShouldBeTrue)
		So(engine.cursor, ShouldBeEmpty)
	})
}

func zoneOf(l layout, kind zoneKind) zone {
	for _, z := range l.zones {
		if z.kind == kind {
			return z
		}
	}
	return zone{}
}
