// Package tui provides the terminal player shell.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mediabar/mediabar/config"
	"github.com/mediabar/mediabar/key"
	"github.com/mediabar/mediabar/log"
	"github.com/mediabar/mediabar/player"
	"github.com/mediabar/mediabar/waveform"
	"github.com/spf13/viper"
)

// Options encapsulates the runtime configuration of the player shell.
type Options struct {
	Target string
	Title  string

	HideDelay         time.Duration
	DoubleClickWindow time.Duration
	NativeControls    bool

	TickPeriod time.Duration
	Gradient   *waveform.Gradient
	Heights    waveform.HeightFunc
	BarWidth   int
	BarGap     int
	BarRows    int

	SeekStep   float64
	VolumeStep float64
	Speeds     []float64
}

// NewOptions reads the shell configuration for the given media target.
func NewOptions(target, title string) (*Options, error) {
	gradient, err := config.Gradient()
	if err != nil {
		return nil, err
	}

	speeds, err := config.Speeds()
	if err != nil {
		return nil, err
	}

	return &Options{
		Target:            target,
		Title:             title,
		HideDelay:         config.HideDelay(),
		DoubleClickWindow: config.DoubleClickWindow(),
		NativeControls:    viper.GetBool(key.ControlsNative),
		TickPeriod:        config.TickPeriod(),
		Gradient:          gradient,
		Heights:           config.Heights(),
		BarWidth:          viper.GetInt(key.WaveformBarWidth),
		BarGap:            viper.GetInt(key.WaveformBarGap),
		BarRows:           viper.GetInt(key.WaveformHeight),
		SeekStep:          viper.GetFloat64(key.PlayerSeekStep),
		VolumeStep:        viper.GetFloat64(key.PlayerVolumeStep),
		Speeds:            speeds,
	}, nil
}

// Run launches the engine and executes the Bubble Tea loop until the user quits or the engine exits.
func Run(options *Options) error {
	engine := player.NewMPV(player.Options{
		Binary:         viper.GetString(key.Player),
		NativeControls: options.NativeControls,
		Autoplay:       viper.GetBool(key.PlayerAutoplay),
		Loop:           viper.GetBool(key.PlayerLoop),
		ExtraArgs:      viper.GetStringSlice(key.PlayerExtraArgs),
	})

	loop := newLoopClock()
	bubble := newBubble(options, engine, loop)
	bubble.loop = loop

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()

	bubble.controls.Close()
	loop.close()
	if closeErr := engine.Close(); closeErr != nil {
		log.Warnf("closing engine: %v", closeErr)
	}

	if err != nil {
		return err
	}
	return bubble.lastError
}
