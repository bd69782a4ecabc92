package waveform

import "math/rand"

// Profile is the fixed artistic height sequence, in percent of the bar area.
var Profile = []int{
	35, 54, 65, 86, 81, 67, 100, 90, 100, 98, 75, 99, 98, 96, 96, 95, 65, 50, 50, 60,
	64, 54, 50, 44, 45, 46, 47, 45, 53, 67, 68, 76, 65, 63, 67, 91, 97, 86, 88, 86,
	84, 84, 82, 0, 0, 0, 0, 0, 0, 0, 0, 69, 70, 68, 67, 72, 76, 86, 81, 83,
	67, 65, 67, 21, 44, 45, 97, 86, 85, 81, 84, 70, 65, 67, 67, 72, 79, 76, 76, 63,
	44, 42, 50, 54, 49, 33, 42, 44, 33, 38, 38, 36, 37, 35, 34,
}

const (
	minRandomHeight = 30
	maxRandomHeight = 100
)

// HeightFunc returns n bar heights in percent.
type HeightFunc func(n int) []int

// ProfileHeights maps the profile onto n bars: a centered slice when fewer are
// needed, the profile repeated when more are.
func ProfileHeights(n int) []int {
	if n <= 0 {
		return nil
	}

	heights := make([]int, n)
	if n < len(Profile) {
		copy(heights, Profile[(len(Profile)-n)/2:])
		return heights
	}

	for i := range heights {
		heights[i] = Profile[i%len(Profile)]
	}
	return heights
}

// RandomHeights returns a HeightFunc drawing uniform heights in [30,100] from r.
func RandomHeights(r *rand.Rand) HeightFunc {
	return func(n int) []int {
		if n <= 0 {
			return nil
		}

		heights := make([]int, n)
		for i := range heights {
			heights[i] = minRandomHeight + r.Intn(maxRandomHeight-minRandomHeight+1)
		}
		return heights
	}
}
