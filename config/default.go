package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/mediabar/mediabar/color"
	"github.com/mediabar/mediabar/constant"
	"github.com/mediabar/mediabar/key"
	"github.com/mediabar/mediabar/style"
	"github.com/mediabar/mediabar/waveform"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a registered configuration setting.
type Field struct {
	Key         string
	Value       any
	Description string
	// Enum lists the accepted values of string fields, if restricted.
	Enum []string
}

// Pretty returns a colored multi-line description for terminal display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable bound to this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON includes the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Enum        []string `json:"enum,omitempty"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Enum:        f.Enum,
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed holds keys bound to environment variables.
var EnvExposed []string

// DefaultSpeeds are the playback speeds offered by the speed popover and the settings menu.
var DefaultSpeeds = []string{"0.25", "0.5", "0.75", "1", "1.25", "1.5", "2"}

func init() {
	register := func(k string, v any, desc string, enum ...string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc, Enum: enum}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.ControlsHideDelayMs, 3000, "Milliseconds without interaction before the controls hide during video playback")
	register(key.ControlsDoubleClickMs, 500, "Milliseconds within which a second click on the surface toggles fullscreen")
	register(key.ControlsNative, false, "Use mpv's own on-screen controller instead of the custom controls")

	register(key.WaveformTickMs, 50, "Milliseconds between two steps of the bar color animation")
	register(key.WaveformGradient, waveform.DefaultStops, "Gradient stops of the bar colors as hex:weight.\nThe gradient is cyclic: the last stop blends back into the first")
	register(key.WaveformGradientStart, waveform.DefaultStart, "Index of the first displayed gradient stop.\nEarlier stops only widen the scrolling palette")
	register(key.WaveformBarWidth, 1, "Columns per bar")
	register(key.WaveformBarGap, 1, "Columns between bars")
	register(key.WaveformHeight, 8, "Rows of the bar area")
	register(key.WaveformRandomHeights, false, "Use random bar heights instead of the fixed profile")

	register(key.Player, "mpv", "Media engine executable. Must speak the mpv JSON IPC protocol")
	register(key.PlayerAutoplay, true, "Start playing as soon as the media is loaded")
	register(key.PlayerLoop, false, "Restart the media when it ends")
	register(key.PlayerExtraArgs, []string{}, "Extra arguments passed to the media engine")
	register(key.PlayerSeekStep, 5, "Seconds per seek key press")
	register(key.PlayerVolumeStep, 5, "Percent per volume key press")
	register(key.PlayerSpeeds, DefaultSpeeds, "Playback speeds offered by the speed popover")

	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)", "emoji", "kaomoji", "plain", "squares", "nerd")

	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace", "panic", "fatal", "error", "warn", "info", "debug", "trace")
	register(key.LogsJson, false, "Use json format for logs")

	register(key.CliColored, true, "Enable colored CLI output")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"join":     strings.Join,
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}{{ if .Enum }}
{{ blue "Options:" }} {{ cyan (join .Enum ", ") }}{{ end }}`))
