package tui

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoopClock(t *testing.T) {
	Convey("Given a loop clock", t, func() {
		c := newLoopClock()
		Reset(c.close)

		Convey("A due timer is reported as a message and runs only when fired on the loop", func() {
			fired := false
			c.AfterFunc(time.Millisecond, func() { fired = true })

			msg := c.wait()()
			So(msg, ShouldHaveSameTypeAs, timerFiredMsg{})
			So(fired, ShouldBeFalse)

			c.fire(msg.(timerFiredMsg).id)
			So(fired, ShouldBeTrue)
		})

		Convey("A timer stopped after its message was posted does not run", func() {
			fired := false
			timer := c.AfterFunc(time.Millisecond, func() { fired = true })

			msg := c.wait()()
			So(timer.Stop(), ShouldBeTrue)
			So(timer.Stop(), ShouldBeFalse)

			c.fire(msg.(timerFiredMsg).id)
			So(fired, ShouldBeFalse)
		})

		Convey("Firing twice runs the callback once", func() {
			count := 0
			c.AfterFunc(time.Millisecond, func() { count++ })

			id := c.wait()().(timerFiredMsg).id
			c.fire(id)
			c.fire(id)
			So(count, ShouldEqual, 1)
		})

		Convey("Closing releases a blocked wait", func() {
			c.AfterFunc(time.Hour, func() {})
			done := make(chan any)
			go func() { done <- c.wait()() }()

			c.close()
			So(<-done, ShouldBeNil)
			c.close()
		})
	})
}
