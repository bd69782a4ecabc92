package visibility

import (
	"testing"
	"time"

	"github.com/mediabar/mediabar/clock"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestController(native bool) (*Controller, *clock.Fake) {
	fake := clock.NewFake(time.Unix(0, 0))
	c := NewController(fake, Options{
		HideDelay:         2000 * time.Millisecond,
		DoubleClickWindow: 500 * time.Millisecond,
		NativeControls:    native,
	})
	return c, fake
}

func TestSignalsHidden(t *testing.T) {
	Convey("Given a playing video with no interaction", t, func() {
		s := Signals{Playing: true, SourceType: SourceVideo}

		Convey("Controls are hidden", func() {
			So(s.Hidden(), ShouldBeTrue)
		})

		Convey("Any single blocking signal shows them", func() {
			for _, mutate := range []func(*Signals){
				func(s *Signals) { s.Playing = false },
				func(s *Signals) { s.RecentlyInteracted = true },
				func(s *Signals) { s.HoveringControls = true },
				func(s *Signals) { s.UsingVolume = true },
				func(s *Signals) { s.UsingSpeed = true },
				func(s *Signals) { s.UsingSettingsMenu = true },
				func(s *Signals) { s.SourceType = SourceAudio },
				func(s *Signals) { s.SourceType = SourceUnknown },
			} {
				copied := s
				mutate(&copied)
				So(copied.Hidden(), ShouldBeFalse)
			}
		})

		Convey("Native controls always hide the custom ones", func() {
			So(Signals{NativeControls: true}.Hidden(), ShouldBeTrue)
		})
	})
}

func TestController(t *testing.T) {
	Convey("Given a fresh controller", t, func() {
		c, fake := newTestController(false)

		Convey("Controls start visible", func() {
			So(c.IsHidden(), ShouldBeFalse)
			So(c.SourceType(), ShouldEqual, SourceUnknown)
		})

		Convey("When a video plays after an interaction", func() {
			c.SetSourceType(SourceVideo)
			c.SetPlaying(true)
			c.MarkInteraction()

			Convey("Controls stay visible before the delay and hide after it", func() {
				fake.Advance(1000 * time.Millisecond)
				So(c.IsHidden(), ShouldBeFalse)

				fake.Advance(1100 * time.Millisecond)
				So(c.IsHidden(), ShouldBeTrue)
				So(c.CursorHidden(), ShouldBeTrue)
			})

			Convey("A new interaction shows them immediately and restarts the countdown", func() {
				fake.Advance(2100 * time.Millisecond)
				So(c.IsHidden(), ShouldBeTrue)

				c.MarkInteraction()
				So(c.IsHidden(), ShouldBeFalse)

				fake.Advance(1500 * time.Millisecond)
				c.MarkInteraction()
				fake.Advance(1500 * time.Millisecond)
				So(c.IsHidden(), ShouldBeFalse)

				fake.Advance(600 * time.Millisecond)
				So(c.IsHidden(), ShouldBeTrue)
			})

			Convey("Switching to audio shows them at once and for good", func() {
				fake.Advance(2100 * time.Millisecond)
				So(c.IsHidden(), ShouldBeTrue)

				c.SetSourceType(SourceAudio)
				So(c.IsHidden(), ShouldBeFalse)

				c.MarkInteraction()
				fake.Advance(10 * time.Second)
				So(c.IsHidden(), ShouldBeFalse)
				So(fake.Pending(), ShouldEqual, 0)
			})

			Convey("Pausing shows them", func() {
				fake.Advance(2100 * time.Millisecond)
				c.SetPlaying(false)
				So(c.IsHidden(), ShouldBeFalse)
			})

			Convey("Hovering the control bar pins them", func() {
				c.SetHovering(RegionControls, true)
				fake.Advance(10 * time.Second)
				So(c.IsHidden(), ShouldBeFalse)

				Convey("Leaving restarts the countdown", func() {
					c.SetHovering(RegionControls, false)
					fake.Advance(1900 * time.Millisecond)
					So(c.IsHidden(), ShouldBeFalse)
					fake.Advance(200 * time.Millisecond)
					So(c.IsHidden(), ShouldBeTrue)
				})
			})

			Convey("An open popover pins them", func() {
				c.SetHovering(RegionVolume, true)
				fake.Advance(10 * time.Second)
				So(c.IsHidden(), ShouldBeFalse)

				c.SetFocused(RegionVolume, true)
				c.SetHovering(RegionVolume, false)
				fake.Advance(10 * time.Second)
				So(c.IsHidden(), ShouldBeFalse)

				c.SetFocused(RegionVolume, false)
				fake.Advance(2100 * time.Millisecond)
				So(c.IsHidden(), ShouldBeTrue)
			})

			Convey("Focus and hover on the same popover combine", func() {
				c.SetFocused(RegionSpeed, true)
				c.SetHovering(RegionSpeed, true)
				c.SetHovering(RegionSpeed, false)
				So(c.Signals().UsingSpeed, ShouldBeTrue)
			})

			Convey("An open settings menu pins them", func() {
				c.SetMenuOpen(true)
				So(c.MenuOpen(), ShouldBeTrue)
				fake.Advance(10 * time.Second)
				So(c.IsHidden(), ShouldBeFalse)

				c.SetMenuOpen(false)
				fake.Advance(2100 * time.Millisecond)
				So(c.IsHidden(), ShouldBeTrue)
			})
		})

		Convey("While the source type is unknown the controls never hide", func() {
			c.SetPlaying(true)
			c.MarkInteraction()
			fake.Advance(10 * time.Second)
			So(c.IsHidden(), ShouldBeFalse)
		})

		Convey("A paused video keeps its controls after the delay", func() {
			c.SetSourceType(SourceVideo)
			c.MarkInteraction()
			fake.Advance(10 * time.Second)
			So(c.IsHidden(), ShouldBeFalse)

			Convey("Resuming playback re-arms the countdown", func() {
				c.SetPlaying(true)
				So(c.IsHidden(), ShouldBeFalse)
				fake.Advance(2100 * time.Millisecond)
				So(c.IsHidden(), ShouldBeTrue)
			})
		})

		Convey("Surface clicks are routed through the click tracker", func() {
			var singles, doubles int
			c.RegisterClick(func() { singles++ }, func() { doubles++ })
			fake.Advance(100 * time.Millisecond)
			c.RegisterClick(func() { singles++ }, func() { doubles++ })

			So(singles, ShouldEqual, 2)
			So(doubles, ShouldEqual, 1)
		})

		Convey("After close pending timers do nothing", func() {
			c.SetSourceType(SourceVideo)
			c.SetPlaying(true)
			c.MarkInteraction()
			c.Close()

			fake.Advance(10 * time.Second)
			So(c.IsHidden(), ShouldBeFalse)
			So(fake.Pending(), ShouldEqual, 0)

			c.MarkInteraction()
			So(fake.Pending(), ShouldEqual, 0)
		})
	})

	Convey("Given a controller in native-controls mode", t, func() {
		c, _ := newTestController(true)

		Convey("Custom controls are hidden but the cursor is not", func() {
			So(c.IsHidden(), ShouldBeTrue)
			So(c.CursorHidden(), ShouldBeFalse)
		})
	})
}
