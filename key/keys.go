// Package key defines the canonical set of configuration identifiers.
package key

// DefinedFieldsCount is the number of registered configuration fields.
const DefinedFieldsCount = 22

// Controls - visibility timing of the transport controls.
const (
	ControlsHideDelayMs   = "controls.hide_delay_ms"
	ControlsDoubleClickMs = "controls.double_click_ms"
	ControlsNative        = "controls.native"
)

// Waveform - the decorative bar row shown for audio.
const (
	WaveformTickMs        = "waveform.tick_ms"
	WaveformGradient      = "waveform.gradient"
	WaveformGradientStart = "waveform.gradient_start"
	WaveformBarWidth      = "waveform.bar_width"
	WaveformBarGap        = "waveform.bar_gap"
	WaveformHeight        = "waveform.height"
	WaveformRandomHeights = "waveform.random_heights"
)

// Player - the external media engine.
const (
	Player           = "player.default"
	PlayerAutoplay   = "player.autoplay"
	PlayerLoop       = "player.loop"
	PlayerExtraArgs  = "player.extra_args"
	PlayerSeekStep   = "player.seek_step"
	PlayerVolumeStep = "player.volume_step"
	PlayerSpeeds     = "player.speeds"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI.
const (
	CliColored = "cli.colored"
)
