package player

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestState(t *testing.T) {
	Convey("Given a fresh state", t, func() {
		s := NewState()

		Convey("It starts paused at normal speed", func() {
			So(s.Paused, ShouldBeTrue)
			So(s.Speed, ShouldEqual, 1.0)
			So(s.Kind, ShouldEqual, KindUnknown)
		})

		Convey("Apply folds property changes and reports them", func() {
			So(s.Apply("pause", false), ShouldBeTrue)
			So(s.Paused, ShouldBeFalse)
			So(s.Apply("pause", false), ShouldBeFalse)

			So(s.Apply("time-pos", 30.0), ShouldBeTrue)
			So(s.Apply("duration", 120.0), ShouldBeTrue)
			So(s.Progress(), ShouldAlmostEqual, 0.25)

			So(s.Apply("mute", true), ShouldBeTrue)
			So(s.Apply("sub-visibility", true), ShouldBeTrue)
			So(s.Captions, ShouldBeTrue)
			So(s.Apply("media-title", "song.flac"), ShouldBeTrue)
			So(s.Title, ShouldEqual, "song.flac")
		})

		Convey("Unavailable values reset to zero", func() {
			s.Apply("duration", 120.0)
			s.Apply("duration", nil)
			So(s.Duration, ShouldEqual, 0)
			So(s.Progress(), ShouldEqual, 0)
		})

		Convey("A non-positive speed is ignored", func() {
			So(s.Apply("speed", 0.0), ShouldBeFalse)
			So(s.Speed, ShouldEqual, 1.0)
		})

		Convey("Unknown properties are ignored", func() {
			So(s.Apply("estimated-vf-fps", 24.0), ShouldBeFalse)
		})
	})
}

func TestKindOf(t *testing.T) {
	Convey("KindOf", t, func() {
		Convey("An empty or missing list is unknown", func() {
			So(KindOf(nil), ShouldEqual, KindUnknown)
			So(KindOf([]any{}), ShouldEqual, KindUnknown)
		})

		Convey("A real video track means video", func() {
			tracks := []any{
				map[string]any{"type": "audio"},
				map[string]any{"type": "video", "albumart": false},
			}
			So(KindOf(tracks), ShouldEqual, KindVideo)
		})

		Convey("Cover art alone means audio", func() {
			tracks := []any{
				map[string]any{"type": "audio"},
				map[string]any{"type": "video", "albumart": true},
			}
			So(KindOf(tracks), ShouldEqual, KindAudio)
		})

		Convey("Audio with subtitles is audio", func() {
			tracks := []any{
				map[string]any{"type": "audio"},
				map[string]any{"type": "sub"},
			}
			So(KindOf(tracks), ShouldEqual, KindAudio)
		})
	})
}
