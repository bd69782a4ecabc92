package player

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mediabar/mediabar/log"
)

const (
	maxRetries   = 3
	retryDelay   = 100 * time.Millisecond
	readDeadline = 1 * time.Second
	eventBuffer  = 64
)

// ErrClosed is returned for commands issued on, or pending when, the connection goes away.
var ErrClosed = errors.New("ipc connection closed")

// CommandError is an error reported by mpv itself, as opposed to a transport failure.
type CommandError struct {
	Command string
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("mpv %s: %s", e.Command, e.Message)
}

// ipcCommand is the JSON structure sent to mpv's IPC socket.
type ipcCommand struct {
	Command   []any `json:"command"`
	RequestID int64 `json:"request_id"`
}

// ipcMessage is anything mpv writes back: a command reply or an asynchronous event.
type ipcMessage struct {
	RequestID *int64 `json:"request_id,omitempty"`
	Error     string `json:"error,omitempty"`
	Data      any    `json:"data,omitempty"`

	Event  string `json:"event,omitempty"`
	ID     int    `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Event is an asynchronous mpv notification.
type Event struct {
	// Kind is the mpv event name, e.g. "property-change" or "end-file".
	Kind string
	// Property and Data are set for property changes.
	Property string
	Data     any
	// Reason is set for end-file.
	Reason string
}

// Client speaks mpv's newline-delimited JSON IPC over a single persistent connection.
// Replies are matched to commands by request_id, so events may interleave freely.
type Client struct {
	conn net.Conn

	writeMu sync.Mutex
	nextID  atomic.Int64

	mu      sync.Mutex
	pending map[int64]chan ipcMessage
	closed  bool

	events    chan Event
	done      chan struct{}
	quit      chan struct{}
	closeOnce sync.Once
}

// Dial connects to an mpv IPC socket.
func Dial(socketPath string) (*Client, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return NewClient(conn), nil
}

// NewClient wraps an established connection and starts its read loop.
func NewClient(conn net.Conn) *Client {
	c := &Client{
		conn:    conn,
		pending: make(map[int64]chan ipcMessage),
		events:  make(chan Event, eventBuffer),
		done:    make(chan struct{}),
		quit:    make(chan struct{}),
	}

	go c.readLoop()
	return c
}

// Events delivers asynchronous notifications. The channel is closed when the connection ends.
func (c *Client) Events() <-chan Event {
	return c.events
}

// Done is closed when the connection ends.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Command sends a command and waits for its reply.
func (c *Client) Command(ctx context.Context, command ...any) (any, error) {
	id := c.nextID.Add(1)
	reply := make(chan ipcMessage, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	c.pending[id] = reply
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	payload, err := json.Marshal(ipcCommand{Command: command, RequestID: id})
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	c.writeMu.Lock()
	_, err = c.conn.Write(append(payload, '\n'))
	c.writeMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	select {
	case msg, ok := <-reply:
		if !ok {
			return nil, ErrClosed
		}
		if msg.Error != "" && msg.Error != "success" {
			return nil, &CommandError{Command: fmt.Sprint(command[0]), Message: msg.Error}
		}
		return msg.Data, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Observe subscribes to changes of a property. mpv reports the current value immediately.
func (c *Client) Observe(ctx context.Context, id int, property string) error {
	if _, err := c.Command(ctx, "observe_property", id, property); err != nil {
		return fmt.Errorf("observe %s: %w", property, err)
	}
	return nil
}

// Close tears down the connection. Pending commands fail with ErrClosed.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.quit)
		err = c.conn.Close()
	})
	<-c.done
	return err
}

func (c *Client) readLoop() {
	defer c.shutdown()

	reader := bufio.NewReader(c.conn)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			c.dispatch(line)
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				log.Warnf("ipc read: %v", err)
			}
			return
		}
	}
}

func (c *Client) dispatch(line []byte) {
	var msg ipcMessage
	if err := json.Unmarshal(line, &msg); err != nil {
		log.Debugf("ipc: skipping unparseable line: %v", err)
		return
	}

	if msg.Event != "" {
		event := Event{
			Kind:     msg.Event,
			Property: msg.Name,
			Data:     msg.Data,
			Reason:   msg.Reason,
		}

		select {
		case c.events <- event:
		case <-c.quit:
		}
		return
	}

	if msg.RequestID == nil {
		return
	}

	c.mu.Lock()
	reply, ok := c.pending[*msg.RequestID]
	c.mu.Unlock()

	if ok {
		reply <- msg
	}
}

func (c *Client) shutdown() {
	c.mu.Lock()
	c.closed = true
	for id, reply := range c.pending {
		close(reply)
		delete(c.pending, id)
	}
	c.mu.Unlock()

	close(c.events)
	close(c.done)
}
