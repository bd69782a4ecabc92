package waveform

// FitBars returns how many bars of barWidth columns separated by gap columns fit in width.
// The count is forced odd so the row stays symmetric around its center bar.
func FitBars(width, barWidth, gap int) int {
	if barWidth <= 0 || width < barWidth {
		return 0
	}
	if gap < 0 {
		gap = 0
	}

	n := (width + gap) / (barWidth + gap)
	if n%2 == 0 {
		n--
	}
	return n
}
