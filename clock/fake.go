package clock

import (
	"sort"
	"time"
)

// Fake is a virtual Clock. Callbacks run synchronously inside Advance, in deadline order.
type Fake struct {
	now    time.Time
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	fake     *Fake
	deadline time.Time
	seq      int
	fn       func()
	done     bool
}

// NewFake returns a virtual clock starting at the given instant.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

func (f *Fake) Now() time.Time {
	return f.now
}

func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.seq++
	t := &fakeTimer{
		fake:     f,
		deadline: f.now.Add(d),
		seq:      f.seq,
		fn:       fn,
	}
	f.timers = append(f.timers, t)
	return t
}

// Advance moves virtual time forward, firing every timer whose deadline is reached.
// Timers scheduled by a callback fire too if their deadline falls within the window.
func (f *Fake) Advance(d time.Duration) {
	target := f.now.Add(d)

	for {
		next := f.nextDue(target)
		if next == nil {
			break
		}

		f.now = next.deadline
		next.done = true
		f.remove(next)
		next.fn()
	}

	f.now = target
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (f *Fake) Pending() int {
	return len(f.timers)
}

func (f *Fake) nextDue(target time.Time) *fakeTimer {
	if len(f.timers) == 0 {
		return nil
	}

	sort.SliceStable(f.timers, func(i, j int) bool {
		if f.timers[i].deadline.Equal(f.timers[j].deadline) {
			return f.timers[i].seq < f.timers[j].seq
		}
		return f.timers[i].deadline.Before(f.timers[j].deadline)
	})

	if first := f.timers[0]; !first.deadline.After(target) {
		return first
	}
	return nil
}

func (f *Fake) remove(t *fakeTimer) {
	for i, candidate := range f.timers {
		if candidate == t {
			f.timers = append(f.timers[:i], f.timers[i+1:]...)
			return
		}
	}
}

func (t *fakeTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.fake.remove(t)
	return true
}
