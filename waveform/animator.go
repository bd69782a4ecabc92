package waveform

// Bar is one rendered bar.
type Bar struct {
	HeightPercent int
	Color         RGB
}

// Animator scrolls gradient colors across a row of bars.
// The color of the bar at visual position v is palette[(v+offset) mod P].
type Animator struct {
	gradient *Gradient
	heights  HeightFunc

	palette []RGB
	bars    []Bar
	offset  int
	playing bool
}

// NewAnimator creates an animator with no bars. A nil heights func uses ProfileHeights.
func NewAnimator(g *Gradient, heights HeightFunc) *Animator {
	if heights == nil {
		heights = ProfileHeights
	}

	return &Animator{
		gradient: g,
		heights:  heights,
	}
}

// Resize lays out n visible bars: it samples a fresh palette, assigns heights
// and restarts the rotation.
func (a *Animator) Resize(n int) {
	if n < 0 {
		n = 0
	}

	p := a.gradient.Population(n)
	a.palette = a.gradient.Palette(p)

	heights := a.heights(n)
	a.bars = make([]Bar, n)
	for i := range a.bars {
		a.bars[i].HeightPercent = heights[i]
	}

	a.offset = 0
	if p > 0 {
		a.offset = ((p-n+1)%p + p) % p
	}

	a.recolor()
}

// SetPlaying freezes or resumes the animation.
func (a *Animator) SetPlaying(playing bool) {
	a.playing = playing
}

// Playing reports whether ticks currently advance the animation.
func (a *Animator) Playing() bool {
	return a.playing
}

// Advance performs one tick. It is a no-op while paused or when there is nothing to draw,
// and reports whether the bars changed.
func (a *Animator) Advance() bool {
	p := len(a.palette)
	if !a.playing || p == 0 {
		return false
	}

	if a.offset == 0 {
		a.offset = p - 1
	} else {
		a.offset--
	}

	a.recolor()
	return true
}

// Bars returns a copy of the current row.
func (a *Animator) Bars() []Bar {
	return append([]Bar(nil), a.bars...)
}

// Offset returns the current rotation offset.
func (a *Animator) Offset() int {
	return a.offset
}

// Population returns the size of the sampled palette.
func (a *Animator) Population() int {
	return len(a.palette)
}

// Palette returns a copy of the sampled colors.
func (a *Animator) Palette() []RGB {
	return append([]RGB(nil), a.palette...)
}

func (a *Animator) recolor() {
	p := len(a.palette)
	if p == 0 {
		return
	}

	for v := range a.bars {
		a.bars[v].Color = a.palette[(v+a.offset)%p]
	}
}
