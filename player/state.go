package player

// Kind is the media kind derived from mpv's track list.
type Kind int

const (
	KindUnknown Kind = iota
	KindAudio
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindAudio:
		return "audio"
	case KindVideo:
		return "video"
	default:
		return "unknown"
	}
}

// Observed properties, in observe_property id order.
var ObservedProperties = []string{
	"pause",
	"time-pos",
	"duration",
	"volume",
	"mute",
	"speed",
	"fullscreen",
	"sub-visibility",
	"eof-reached",
	"track-list",
	"media-title",
}

// State mirrors the observed engine properties.
type State struct {
	Paused     bool
	Position   float64
	Duration   float64
	Volume     float64
	Muted      bool
	Speed      float64
	Fullscreen bool
	Captions   bool
	EOF        bool
	Kind       Kind
	Title      string
}

// NewState returns the state of a freshly started engine: paused until told otherwise.
func NewState() State {
	return State{
		Paused: true,
		Volume: 100,
		Speed:  1,
	}
}

// Apply folds a property change into the state and reports whether anything changed.
// Unavailable properties arrive as nil and reset numeric fields to zero.
func (s *State) Apply(property string, data any) bool {
	before := *s

	switch property {
	case "pause":
		s.Paused = asBool(data)
	case "time-pos":
		s.Position = asFloat(data)
	case "duration":
		s.Duration = asFloat(data)
	case "volume":
		s.Volume = asFloat(data)
	case "mute":
		s.Muted = asBool(data)
	case "speed":
		if v := asFloat(data); v > 0 {
			s.Speed = v
		}
	case "fullscreen":
		s.Fullscreen = asBool(data)
	case "sub-visibility":
		s.Captions = asBool(data)
	case "eof-reached":
		s.EOF = asBool(data)
	case "track-list":
		s.Kind = KindOf(data)
	case "media-title":
		s.Title, _ = data.(string)
	default:
		return false
	}

	return *s != before
}

// Progress is the played fraction in [0,1]; zero when the duration is unknown.
func (s State) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}

	p := s.Position / s.Duration
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

// KindOf classifies a decoded track-list: any video track that is not cover art means video.
// An empty or missing list means the engine has not loaded anything yet.
func KindOf(trackList any) Kind {
	tracks, ok := trackList.([]any)
	if !ok || len(tracks) == 0 {
		return KindUnknown
	}

	kind := KindUnknown
	for _, t := range tracks {
		track, ok := t.(map[string]any)
		if !ok {
			continue
		}

		switch track["type"] {
		case "video":
			if albumart, _ := track["albumart"].(bool); !albumart {
				return KindVideo
			}
			kind = KindAudio
		case "audio":
			kind = KindAudio
		}
	}

	return kind
}

func asBool(data any) bool {
	b, _ := data.(bool)
	return b
}

func asFloat(data any) float64 {
	switch v := data.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}
