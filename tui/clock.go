package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mediabar/mediabar/clock"
)

// timerFiredMsg tells the loop that the timer with the given id is due.
type timerFiredMsg struct {
	id int
}

// loopClock is a clock.Clock whose callbacks run on the bubbletea event loop.
// Real timers only post a timerFiredMsg; the callback itself runs in Update through fire.
// AfterFunc, Stop and fire must all be called from the loop.
type loopClock struct {
	seq     int
	pending map[int]*loopTimer
	fired   chan int
	done    chan struct{}
}

type loopTimer struct {
	clock *loopClock
	id    int
	timer *time.Timer
	fn    func()
}

func newLoopClock() *loopClock {
	return &loopClock{
		pending: make(map[int]*loopTimer),
		fired:   make(chan int),
		done:    make(chan struct{}),
	}
}

func (c *loopClock) Now() time.Time {
	return time.Now()
}

func (c *loopClock) AfterFunc(d time.Duration, fn func()) clock.Timer {
	c.seq++
	t := &loopTimer{clock: c, id: c.seq, fn: fn}
	c.pending[t.id] = t

	id := t.id
	t.timer = time.AfterFunc(d, func() {
		select {
		case c.fired <- id:
		case <-c.done:
		}
	})

	return t
}

// wait blocks until a timer is due and reports it as a message.
func (c *loopClock) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case id := <-c.fired:
			return timerFiredMsg{id: id}
		case <-c.done:
			return nil
		}
	}
}

// fire runs the callback of a due timer unless it was stopped meanwhile.
func (c *loopClock) fire(id int) {
	t, ok := c.pending[id]
	if !ok {
		return
	}
	delete(c.pending, id)
	t.fn()
}

// close stops every real timer and releases a blocked wait.
func (c *loopClock) close() {
	select {
	case <-c.done:
		return
	default:
	}

	for _, t := range c.pending {
		t.timer.Stop()
	}
	c.pending = make(map[int]*loopTimer)
	close(c.done)
}

func (t *loopTimer) Stop() bool {
	if _, ok := t.clock.pending[t.id]; !ok {
		return false
	}
	delete(t.clock.pending, t.id)
	t.timer.Stop()
	return true
}
