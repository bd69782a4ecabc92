package player

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMPV(t *testing.T) {
	Convey("Given an mpv player", t, func() {
		const socket = "/tmp/mediabar-test.sock"
		mpv := NewMPV(Options{Autoplay: true, ExtraArgs: []string{"--volume=50"}})

		Convey("The command line ends with the target after --", func() {
			args := mpv.args(socket, "song.flac", "Song")
			So(args[len(args)-2:], ShouldResemble, []string{"--", "song.flac"})
			So(args, ShouldContain, "--input-ipc-server=/tmp/mediabar-test.sock")
			So(args, ShouldContain, "--keep-open=yes")
			So(args, ShouldContain, "--volume=50")
		})

		Convey("The on-screen controller is off unless native controls are requested", func() {
			So(mpv.args(socket, "a.mp4", "a"), ShouldContain, "--osc=no")

			native := NewMPV(Options{NativeControls: true})
			So(native.args(socket, "a.mp4", "a"), ShouldNotContain, "--osc=no")
		})

		Convey("Autoplay and loop map to --pause and --loop-file", func() {
			args := mpv.args(socket, "a.mp4", "a")
			So(args, ShouldNotContain, "--pause")
			So(args, ShouldNotContain, "--loop-file=inf")

			paused := NewMPV(Options{Autoplay: false, Loop: true})
			args = paused.args(socket, "a.mp4", "a")
			So(args, ShouldContain, "--pause")
			So(args, ShouldContain, "--loop-file=inf")
			So(args[len(args)-2:], ShouldResemble, []string{"--", "a.mp4"})
		})

		Convey("Play after Close starts nothing", func() {
			So(mpv.Close(), ShouldBeNil)
			So(errors.Is(mpv.Play("song.flac", ""), errPlayerClosed), ShouldBeTrue)
			So(mpv.Close(), ShouldBeNil)
		})

		Convey("Commands before Play fail cleanly", func() {
			So(errors.Is(mpv.TogglePause(), errNotStarted), ShouldBeTrue)
			_, err := mpv.Subscribe()
			So(errors.Is(err, errNotStarted), ShouldBeTrue)
		})

		Convey("Close before Play is a no-op", func() {
			So(mpv.Close(), ShouldBeNil)
		})
	})
}

func TestSanitize(t *testing.T) {
	Convey("sanitizeMediaTarget", t, func() {
		Convey("Accepts paths and web URLs", func() {
			target, err := sanitizeMediaTarget(" ./music//song.flac ")
			So(err, ShouldBeNil)
			So(target, ShouldEqual, "music/song.flac")

			target, err = sanitizeMediaTarget("https://example.com/a.mp4")
			So(err, ShouldBeNil)
			So(target, ShouldEqual, "https://example.com/a.mp4")
		})

		Convey("Rejects empty targets, control characters and odd schemes", func() {
			for _, bad := range []string{"", "a\nb", "javascript://x", "ftp://host/file"} {
				_, err := sanitizeMediaTarget(bad)
				So(err, ShouldNotBeNil)
			}
		})
	})

	Convey("sanitizeTitle flattens whitespace", t, func() {
		So(sanitizeTitle(" a\tb\nc\x00 "), ShouldEqual, "a b c")
	})
}
