package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mediabar/mediabar/filesystem"
	"github.com/mediabar/mediabar/key"
	"github.com/mediabar/mediabar/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Setup does nothing", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		Reset(func() {
			viper.Set(key.LogsWrite, false)
			_ = Close()
		})

		Convey("Setup creates today's file and messages land in it", func() {
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeTrue)

			Infof("hello %s", "log")

			path := filepath.Join(where.Logs(), Filename(time.Now()))
			contents, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(contents), ShouldContainSubstring, "hello log")
		})

		Convey("Messages below the level are dropped", func() {
			So(Setup(), ShouldBeNil)
			Tracef("too %s", "verbose")

			path := filepath.Join(where.Logs(), Filename(time.Now()))
			contents, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(contents), ShouldNotContainSubstring, "too verbose")
		})

		Convey("Close stops writing", func() {
			So(Setup(), ShouldBeNil)
			So(Close(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)

			Infof("after %s", "close")
			path := filepath.Join(where.Logs(), Filename(time.Now()))
			contents, _ := filesystem.API().ReadFile(path)
			So(string(contents), ShouldNotContainSubstring, "after close")
		})
	})

	Convey("Filename is dated", t, func() {
		So(Filename(time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)), ShouldEqual, "2024-03-09.log")
	})
}
