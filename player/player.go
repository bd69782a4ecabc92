// Package player drives the external media engine that does all decoding and timing.
// The implementation targets mpv through its JSON IPC interface.
package player

// Player is the transport surface the shell delegates to.
type Player interface {
	// Play launches the engine on the given file or URL.
	Play(target, title string) error

	// Subscribe starts observing engine properties. The channel is closed when the engine goes away.
	Subscribe() (<-chan Event, error)

	TogglePause() error
	SetPaused(paused bool) error

	// Seek moves to an absolute position in seconds.
	Seek(seconds float64) error
	// SeekRelative moves by a signed offset in seconds.
	SeekRelative(seconds float64) error

	SetVolume(percent float64) error
	ToggleMute() error
	SetSpeed(speed float64) error

	ToggleCaptions() error
	CycleCaptionTrack() error
	ToggleFullscreen() error

	// HideCursor hides the pointer over the engine's video window, or restores it.
	HideCursor(hidden bool) error

	// Socket returns the IPC socket path.
	Socket() string

	// Wait returns a channel that is closed when the engine process exits.
	Wait() <-chan struct{}

	// Close terminates the engine and releases its resources.
	Close() error
}
