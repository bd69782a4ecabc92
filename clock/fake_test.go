package clock

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFake(t *testing.T) {
	Convey("Given a fake clock", t, func() {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		fake := NewFake(start)

		Convey("Timers fire in deadline order once their time is reached", func() {
			var order []int
			fake.AfterFunc(200*time.Millisecond, func() { order = append(order, 2) })
			fake.AfterFunc(100*time.Millisecond, func() { order = append(order, 1) })

			fake.Advance(150 * time.Millisecond)
			So(order, ShouldResemble, []int{1})

			fake.Advance(50 * time.Millisecond)
			So(order, ShouldResemble, []int{1, 2})
			So(fake.Now().Equal(start.Add(200*time.Millisecond)), ShouldBeTrue)
		})

		Convey("A stopped timer never fires", func() {
			fired := false
			timer := fake.AfterFunc(time.Second, func() { fired = true })

			So(timer.Stop(), ShouldBeTrue)
			So(timer.Stop(), ShouldBeFalse)
			fake.Advance(2 * time.Second)
			So(fired, ShouldBeFalse)
			So(fake.Pending(), ShouldEqual, 0)
		})

		Convey("Timers scheduled from a callback fire within the same advance", func() {
			count := 0
			var tick func()
			tick = func() {
				count++
				if count < 3 {
					fake.AfterFunc(10*time.Millisecond, tick)
				}
			}
			fake.AfterFunc(10*time.Millisecond, tick)

			fake.Advance(100 * time.Millisecond)
			So(count, ShouldEqual, 3)
		})

		Convey("The callback observes its own deadline as the current time", func() {
			var seen time.Time
			fake.AfterFunc(300*time.Millisecond, func() { seen = fake.Now() })

			fake.Advance(time.Second)
			So(seen.Equal(start.Add(300*time.Millisecond)), ShouldBeTrue)
		})
	})
}
