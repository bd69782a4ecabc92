package waveform

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func defaultGradient() *Gradient {
	stops, err := ParseStops(DefaultStops)
	if err != nil {
		panic(err)
	}
	g, err := NewGradient(stops, DefaultStart)
	if err != nil {
		panic(err)
	}
	return g
}

func TestAnimator(t *testing.T) {
	Convey("Given an animator laid out for 19 bars", t, func() {
		a := NewAnimator(defaultGradient(), nil)
		a.Resize(19)
		palette := a.Palette()

		Convey("The palette covers the widened population", func() {
			So(a.Population(), ShouldEqual, 24)
			So(len(a.Bars()), ShouldEqual, 19)
		})

		Convey("The rotation starts just past the visible window", func() {
			So(a.Offset(), ShouldEqual, 6)
			So(a.Bars()[0].Color, ShouldResemble, palette[6])
			So(a.Bars()[18].Color, ShouldResemble, palette[0])
		})

		Convey("Ticks while paused change nothing", func() {
			before := a.Bars()
			So(a.Advance(), ShouldBeFalse)
			So(a.Offset(), ShouldEqual, 6)
			So(a.Bars(), ShouldResemble, before)
		})

		Convey("Ticks while playing scroll the colors one position", func() {
			a.SetPlaying(true)
			So(a.Advance(), ShouldBeTrue)
			So(a.Offset(), ShouldEqual, 5)
			So(a.Bars()[0].Color, ShouldResemble, palette[5])
			So(a.Bars()[1].Color, ShouldResemble, palette[6])

			Convey("And wrap below zero", func() {
				for i := 0; i < 6; i++ {
					a.Advance()
				}
				So(a.Offset(), ShouldEqual, 23)
				So(a.Bars()[1].Color, ShouldResemble, palette[0])
			})
		})

		Convey("Heights come from the profile and survive ticks", func() {
			heights := ProfileHeights(19)
			a.SetPlaying(true)
			a.Advance()
			for i, bar := range a.Bars() {
				So(bar.HeightPercent, ShouldEqual, heights[i])
			}
		})

		Convey("Resizing to zero leaves nothing to animate", func() {
			a.SetPlaying(true)
			a.Resize(0)
			So(a.Population(), ShouldEqual, 0)
			So(a.Bars(), ShouldBeEmpty)
			So(a.Advance(), ShouldBeFalse)
		})
	})
}

func TestHeights(t *testing.T) {
	Convey("ProfileHeights", t, func() {
		Convey("Takes a centered slice when fewer bars fit", func() {
			h := ProfileHeights(93)
			So(len(h), ShouldEqual, 93)
			So(h[0], ShouldEqual, Profile[1])
			So(h[92], ShouldEqual, Profile[93])
		})

		Convey("Repeats the profile when more bars fit", func() {
			h := ProfileHeights(len(Profile) + 3)
			So(h[len(Profile)], ShouldEqual, Profile[0])
			So(h[len(Profile)+2], ShouldEqual, Profile[2])
		})

		Convey("Handles zero bars", func() {
			So(ProfileHeights(0), ShouldBeEmpty)
		})
	})

	Convey("RandomHeights", t, func() {
		h := RandomHeights(rand.New(rand.NewSource(1)))(500)
		So(len(h), ShouldEqual, 500)
		for _, v := range h {
			So(v, ShouldBeBetweenOrEqual, 30, 100)
		}
	})
}

func TestFitBars(t *testing.T) {
	Convey("FitBars", t, func() {
		So(FitBars(10, 1, 1), ShouldEqual, 5)
		So(FitBars(12, 1, 1), ShouldEqual, 5)
		So(FitBars(1, 1, 1), ShouldEqual, 1)
		So(FitBars(0, 1, 1), ShouldEqual, 0)
		So(FitBars(40, 2, 0), ShouldEqual, 19)
		So(FitBars(40, 0, 1), ShouldEqual, 0)
	})
}
