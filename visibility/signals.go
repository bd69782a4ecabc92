// Package visibility decides whether the custom transport controls are shown and schedules their automatic disappearance.
package visibility

// SourceType is the media kind reported by the engine probe.
type SourceType int

const (
	SourceUnknown SourceType = iota
	SourceAudio
	SourceVideo
)

func (s SourceType) String() string {
	switch s {
	case SourceAudio:
		return "audio"
	case SourceVideo:
		return "video"
	default:
		return "unknown"
	}
}

// Region identifies a pointer or focus target inside the player.
type Region int

const (
	RegionControls Region = iota
	RegionVolume
	RegionSpeed
)

func (r Region) String() string {
	switch r {
	case RegionControls:
		return "controls"
	case RegionVolume:
		return "volume"
	case RegionSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// usage tracks a popover that counts as in use while hovered or focused.
type usage struct {
	hovered bool
	focused bool
}

func (u usage) active() bool {
	return u.hovered || u.focused
}

// Signals is a snapshot of the inputs that drive visibility.
type Signals struct {
	Playing            bool
	RecentlyInteracted bool
	HoveringControls   bool
	UsingVolume        bool
	UsingSpeed         bool
	UsingSettingsMenu  bool
	SourceType         SourceType
	NativeControls     bool
}

// Hidden is the pure visibility projection over a signal snapshot.
func (s Signals) Hidden() bool {
	if s.NativeControls {
		return true
	}

	return s.Playing &&
		!s.RecentlyInteracted &&
		!s.HoveringControls &&
		!s.UsingVolume &&
		!s.UsingSpeed &&
		!s.UsingSettingsMenu &&
		s.SourceType == SourceVideo
}

// pinned reports whether anything besides recent interaction holds the controls open.
func (s Signals) pinned() bool {
	return s.HoveringControls || s.UsingVolume || s.UsingSpeed || s.UsingSettingsMenu
}
