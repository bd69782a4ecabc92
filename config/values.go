package config

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/mediabar/mediabar/key"
	"github.com/mediabar/mediabar/waveform"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var errNoSpeeds = errors.New("at least one playback speed is required")

// HideDelay is the auto-hide delay of the controls.
func HideDelay() time.Duration {
	return millis(key.ControlsHideDelayMs)
}

// DoubleClickWindow is the window in which a second click counts as a double click.
func DoubleClickWindow() time.Duration {
	return millis(key.ControlsDoubleClickMs)
}

// TickPeriod is the period of the bar animation.
func TickPeriod() time.Duration {
	return millis(key.WaveformTickMs)
}

// Gradient builds the bar gradient from its configured stops.
func Gradient() (*waveform.Gradient, error) {
	stops, err := waveform.ParseStops(viper.GetStringSlice(key.WaveformGradient))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key.WaveformGradient, err)
	}

	g, err := waveform.NewGradient(stops, viper.GetInt(key.WaveformGradientStart))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key.WaveformGradient, err)
	}
	return g, nil
}

// Heights returns the bar height source.
func Heights() waveform.HeightFunc {
	if viper.GetBool(key.WaveformRandomHeights) {
		return waveform.RandomHeights(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	return waveform.ProfileHeights
}

// Speeds parses the configured playback speeds.
func Speeds() ([]float64, error) {
	raw := viper.GetStringSlice(key.PlayerSpeeds)
	if len(raw) == 0 {
		return nil, errNoSpeeds
	}

	speeds := make([]float64, 0, len(raw))
	for _, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("%s: invalid speed %q", key.PlayerSpeeds, s)
		}
		speeds = append(speeds, v)
	}

	return lo.Uniq(speeds), nil
}

// Validate checks every setting whose type alone does not guarantee a usable value.
func Validate() error {
	if _, err := Gradient(); err != nil {
		return err
	}

	if _, err := Speeds(); err != nil {
		return err
	}

	for _, k := range []string{key.ControlsHideDelayMs, key.ControlsDoubleClickMs, key.WaveformTickMs, key.WaveformBarWidth, key.WaveformHeight} {
		if viper.GetInt(k) <= 0 {
			return fmt.Errorf("%s must be positive", k)
		}
	}

	for _, k := range []string{key.WaveformBarGap, key.PlayerSeekStep, key.PlayerVolumeStep} {
		if viper.GetInt(k) < 0 {
			return fmt.Errorf("%s must not be negative", k)
		}
	}

	for k, field := range Default {
		if len(field.Enum) > 0 && !lo.Contains(field.Enum, viper.GetString(k)) {
			return fmt.Errorf("%s must be one of %v", k, field.Enum)
		}
	}

	return nil
}

func millis(k string) time.Duration {
	return time.Duration(viper.GetInt(k)) * time.Millisecond
}
