package tui

type state int

const (
	loadingState state = iota
	playerState
	errorState
)

// segment is a control bar entry.
type segment int

const (
	segNone segment = iota
	segPlay
	segVolume
	segTime
	segSpeed
	segCaptions
	segSettings
	segFullscreen
)

// focusOrder lists the segments reachable with tab. The time readout is not focusable.
var focusOrder = []segment{segPlay, segVolume, segSpeed, segCaptions, segSettings, segFullscreen}
