package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mediabar/mediabar/visibility"
	"github.com/mediabar/mediabar/waveform"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLayout(t *testing.T) {
	Convey("Given a recorded layout", t, func() {
		var l layout
		l.add("title")
		surface := l.add("surface")
		l.mark(zoneSurface, surface, 0, 40)

		l.controlsFrom = len(l.lines)
		row, starts := l.spans([]string{"aa", "bbbb", "c"}, " ")
		l.mark(zoneSegment, row, starts[0], 2).segment = segPlay
		l.mark(zoneSegment, row, starts[1], 4).segment = segVolume
		l.mark(zoneSegment, row, starts[2], 1).segment = segSpeed
		l.controlsTo = len(l.lines)

		Convey("Spans start after each separator", func() {
			So(starts, ShouldResemble, []int{0, 3, 8})
			So(l.lines[row], ShouldEqual, "aa bbbb c")
		})

		Convey("Cells resolve to their zone", func() {
			z, ok := l.at(4, row)
			So(ok, ShouldBeTrue)
			So(z.segment, ShouldEqual, segVolume)

			_, ok = l.at(2, row)
			So(ok, ShouldBeFalse)

			z, _ = l.at(39, surface)
			So(z.kind, ShouldEqual, zoneSurface)
		})

		Convey("Regions combine the control rows with popover segments", func() {
			regions := l.regions(4, row)
			So(regions[visibility.RegionControls], ShouldBeTrue)
			So(regions[visibility.RegionVolume], ShouldBeTrue)
			So(regions[visibility.RegionSpeed], ShouldBeFalse)

			regions = l.regions(8, row)
			So(regions[visibility.RegionSpeed], ShouldBeTrue)

			regions = l.regions(5, surface)
			So(regions[visibility.RegionControls], ShouldBeFalse)
		})

		Convey("Terminal coordinates are shifted by the padding", func() {
			col, r := cell(6, 3)
			So(col, ShouldEqual, 4)
			So(r, ShouldEqual, 2)
		})
	})

	Convey("Zone fractions span the first to the last column", t, func() {
		z := zone{from: 10, to: 21}
		So(z.fraction(10), ShouldEqual, 0)
		So(z.fraction(15), ShouldEqual, 0.5)
		So(z.fraction(20), ShouldEqual, 1)
		So(z.fraction(99), ShouldEqual, 1)
		So(zone{from: 3, to: 4}.fraction(3), ShouldEqual, 0)
	})
}

func TestRenderBars(t *testing.T) {
	Convey("Given bars of different heights", t, func() {
		bars := []waveform.Bar{
			{HeightPercent: 100, Color: waveform.RGB{R: 41, G: 166, B: 255}},
			{HeightPercent: 50, Color: waveform.RGB{R: 0, G: 210, B: 237}},
			{HeightPercent: 10, Color: waveform.RGB{R: 45, G: 226, B: 192}},
		}

		lines := RenderBars(bars, 4, 2, 1)

		Convey("Each line spans the whole row", func() {
			So(lines, ShouldHaveLength, 4)
			for _, line := range lines {
				So(lipgloss.Width(line), ShouldEqual, RowWidth(3, 2, 1))
			}
		})

		Convey("Bars are filled from the bottom", func() {
			So(strings.Count(lines[0], barBlock), ShouldEqual, 2)
			So(strings.Count(lines[2], barBlock), ShouldEqual, 4)
			So(strings.Count(lines[3], barBlock), ShouldEqual, 6)
		})

		Convey("No rows render nothing", func() {
			So(RenderBars(bars, 0, 1, 1), ShouldBeEmpty)
		})
	})

	Convey("RowWidth", t, func() {
		So(RowWidth(0, 1, 1), ShouldEqual, 0)
		So(RowWidth(5, 1, 1), ShouldEqual, 9)
		So(RowWidth(3, 2, 3), ShouldEqual, 12)
	})
}
