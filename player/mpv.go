package player

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mediabar/mediabar/constant"
	"github.com/mediabar/mediabar/log"
	"github.com/mediabar/mediabar/util"
	"github.com/mediabar/mediabar/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	closeTimeout      = 3 * time.Second
)

var (
	errNotStarted     = errors.New("mpv is not running")
	errAlreadyStarted = errors.New("mpv is already running")
	errPlayerClosed   = errors.New("player is closed")
)

// Options configures the mpv process.
type Options struct {
	// Binary is the executable to launch.
	Binary string
	// NativeControls keeps mpv's on-screen controller enabled.
	NativeControls bool
	// Autoplay starts playback at once. Otherwise mpv opens the media paused.
	Autoplay bool
	// Loop restarts the media when it ends.
	Loop bool
	// ExtraArgs are appended before the media target.
	ExtraArgs []string
}

// MPV implements Player over mpv's JSON IPC.
// Fields after mu are guarded by it: Play and Close run on different goroutines.
type MPV struct {
	options Options
	exited  chan struct{}

	mu         sync.Mutex
	socketPath string
	cmd        *exec.Cmd
	client     *Client
	listener   *EventListener
	started    bool
	closed     bool
}

// NewMPV creates a player. Nothing is launched until Play.
func NewMPV(options Options) *MPV {
	if options.Binary == "" {
		options.Binary = "mpv"
	}

	return &MPV{
		options: options,
		exited:  make(chan struct{}),
	}
}

// Play launches mpv on target and connects to its IPC socket. It may be called once.
func (m *MPV) Play(target, title string) error {
	safeTarget, err := sanitizeMediaTarget(target)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	socket, err := m.reserveSocket()
	if err != nil {
		return err
	}

	if title == "" {
		title = filepath.Base(safeTarget)
	}

	cmd := exec.Command(m.options.Binary, m.args(socket, safeTarget, sanitizeTitle(title))...)
	cmd.SysProcAttr = sysProcAttr()

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", m.options.Binary, err)
	}
	log.Infof("started %s (pid %d) on %s", m.options.Binary, cmd.Process.Pid, socket)

	go func() {
		_ = cmd.Wait()
		close(m.exited)
	}()

	if !m.attach(func() { m.cmd = cmd }) {
		_ = killProcess(cmd)
		return errPlayerClosed
	}

	if err := m.waitForSocket(socket); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = killProcess(cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	client, err := Dial(socket)
	if err != nil {
		_ = killProcess(cmd)
		return fmt.Errorf("mpv ipc: %w", err)
	}

	if !m.attach(func() { m.client = client }) {
		_ = client.Close()
		return errPlayerClosed
	}
	return nil
}

// reserveSocket picks the socket path and marks the player as started.
func (m *MPV) reserveSocket() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case m.closed:
		return "", errPlayerClosed
	case m.started:
		return "", errAlreadyStarted
	}
	m.started = true

	if m.socketPath == "" {
		randomBytes := make([]byte, 4)
		if _, err := rand.Read(randomBytes); err != nil {
			return "", fmt.Errorf("generate socket name: %w", err)
		}
		m.socketPath = where.Socket(fmt.Sprintf("%s-%x", constant.App, randomBytes))
	}
	return m.socketPath, nil
}

// attach applies set unless Close already ran, in which case the caller owns the cleanup.
func (m *MPV) attach(set func()) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false
	}
	set()
	return true
}

// args builds the mpv command line. The user's mpv.conf is respected: no --vo, --profile or --hwdec.
func (m *MPV) args(socket, target, title string) []string {
	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", socket),
		fmt.Sprintf("--force-media-title=%s", title),
		fmt.Sprintf("--title=%s", title),
		"--keep-open=yes",
		"--idle=once",
	}

	if !m.options.NativeControls {
		args = append(args, "--osc=no")
	}
	if !m.options.Autoplay {
		args = append(args, "--pause")
	}
	if m.options.Loop {
		args = append(args, "--loop-file=inf")
	}

	args = append(args, m.options.ExtraArgs...)
	// Everything after -- is a file, never a flag.
	return append(args, "--", target)
}

// Wait returns a channel that is closed when the mpv process exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

func (m *MPV) waitForSocket(socket string) error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return errors.New("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", socket)
		if err == nil {
			_ = conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", socket, socketWaitRetries)
}

// Subscribe observes every property in ObservedProperties.
func (m *MPV) Subscribe() (<-chan Event, error) {
	m.mu.Lock()
	client := m.client
	m.mu.Unlock()

	if client == nil {
		return nil, errNotStarted
	}

	listener := NewEventListener(client)
	if err := listener.Start(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.listener = listener
	m.mu.Unlock()

	return listener.Events(), nil
}

func (m *MPV) TogglePause() error {
	return m.run("cycle", "pause")
}

func (m *MPV) SetPaused(paused bool) error {
	return m.Set("pause", paused)
}

func (m *MPV) Seek(seconds float64) error {
	if seconds < 0 {
		seconds = 0
	}
	return m.run("seek", seconds, "absolute")
}

func (m *MPV) SeekRelative(seconds float64) error {
	return m.run("seek", seconds, "relative")
}

func (m *MPV) SetVolume(percent float64) error {
	return m.Set("volume", util.Clamp(percent, 0, 100))
}

// ToggleMute flips mute. The volume level is kept, so unmuting restores it.
func (m *MPV) ToggleMute() error {
	return m.run("cycle", "mute")
}

func (m *MPV) SetSpeed(speed float64) error {
	if speed <= 0 {
		return fmt.Errorf("invalid speed %v", speed)
	}
	return m.Set("speed", speed)
}

func (m *MPV) ToggleCaptions() error {
	return m.run("cycle", "sub-visibility")
}

func (m *MPV) CycleCaptionTrack() error {
	return m.run("cycle", "sub")
}

func (m *MPV) ToggleFullscreen() error {
	return m.run("cycle", "fullscreen")
}

func (m *MPV) HideCursor(hidden bool) error {
	if hidden {
		return m.Set("cursor-autohide", "always")
	}
	return m.Set("cursor-autohide", "no")
}

// Set sets a property.
func (m *MPV) Set(property string, value any) error {
	return m.run("set_property", property, value)
}

// Socket returns the IPC socket path.
func (m *MPV) Socket() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.socketPath
}

// Close asks mpv to quit, kills it if it does not, and removes the socket.
// A Play still in progress sees the player closed and tears down what it started.
func (m *MPV) Close() error {
	m.mu.Lock()
	client, listener, cmd, socket := m.client, m.listener, m.cmd, m.socketPath
	m.client, m.listener = nil, nil
	m.closed = true
	m.mu.Unlock()

	if listener != nil {
		listener.Stop()
	}

	if client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), readDeadline)
		_, _ = client.Command(ctx, "quit")
		cancel()
		_ = client.Close()
	}

	if cmd == nil {
		return nil
	}

	select {
	case <-m.exited:
	case <-time.After(closeTimeout):
		log.Warn("mpv did not quit in time, killing it")
		_ = killProcess(cmd)
	}

	_ = os.Remove(socket)
	return nil
}

func (m *MPV) run(command ...any) error {
	_, err := m.sendCommand(command...)
	return err
}

// sendCommand retries transport failures. Errors reported by mpv are returned at once.
func (m *MPV) sendCommand(command ...any) (any, error) {
	m.mu.Lock()
	client := m.client
	m.mu.Unlock()

	if client == nil {
		return nil, errNotStarted
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryDelay)
		}

		ctx, cancel := context.WithTimeout(context.Background(), readDeadline)
		result, err := client.Command(ctx, command...)
		cancel()
		if err == nil {
			return result, nil
		}

		var mpvErr *CommandError
		if errors.As(err, &mpvErr) || errors.Is(err, ErrClosed) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("ipc command failed after %d attempts: %w", maxRetries, lastErr)
}

// sanitizeMediaTarget validates a file path or URL before it reaches mpv's command line.
func sanitizeMediaTarget(target string) (string, error) {
	t := strings.TrimSpace(target)
	if t == "" {
		return "", errors.New("empty target")
	}

	if strings.ContainsAny(t, "\x00\n\r") {
		return "", errors.New("invalid control characters in target")
	}

	if strings.Contains(t, "://") {
		u, err := url.Parse(t)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https", "file":
			return t, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(t), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
