// Package toast provides the ephemeral notification channel: one visible
// message at a time, hidden automatically a fixed duration after the most
// recent Notify.
package toast

import (
	"sync"
	"time"
)

// DefaultDuration is how long a message stays visible.
const DefaultDuration = 3000 * time.Millisecond

// State is the observable toast.
type State struct {
	Visible bool
	Message string
}

// Timer is the part of *time.Timer the channel uses.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it via
// realAfterFunc; tests substitute a manual clock.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Channel.
type Option func(*Channel)

// WithAfterFunc replaces the timer source.
func WithAfterFunc(fn AfterFunc) Option {
	return func(c *Channel) { c.afterFunc = fn }
}

// WithOnChange registers a callback invoked after every state change,
// outside the channel lock. It may be called from a timer goroutine.
func WithOnChange(fn func(State)) Option {
	return func(c *Channel) { c.onChange = fn }
}

// Channel is safe for concurrent use.
type Channel struct {
	mu        sync.Mutex
	state     State
	duration  time.Duration
	timer     Timer
	gen       uint64
	afterFunc AfterFunc
	onChange  func(State)
}

// New creates a channel that hides messages after duration. A
// non-positive duration selects DefaultDuration.
func New(duration time.Duration, opts ...Option) *Channel {
	if duration <= 0 {
		duration = DefaultDuration
	}
	c := &Channel{
		duration:  duration,
		afterFunc: realAfterFunc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Notify shows message and restarts the dismiss timer. An earlier message
// still on screen is replaced.
func (c *Channel) Notify(message string) {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.state = State{Visible: true, Message: message}
	c.timer = c.afterFunc(c.duration, func() { c.expire(gen) })
	st := c.state
	c.mu.Unlock()

	c.changed(st)
}

// expire hides the toast unless a newer Notify has superseded gen.
func (c *Channel) expire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || !c.state.Visible {
		c.mu.Unlock()
		return
	}
	c.state = State{}
	c.timer = nil
	st := c.state
	c.mu.Unlock()

	c.changed(st)
}

// Dismiss hides the toast immediately.
func (c *Channel) Dismiss() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
	wasVisible := c.state.Visible
	c.state = State{}
	c.mu.Unlock()

	if wasVisible {
		c.changed(State{})
	}
}

// State returns the current toast.
func (c *Channel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close stops any pending timer without touching the visible state.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

func (c *Channel) changed(st State) {
	if c.onChange != nil {
		c.onChange(st)
	}
}
