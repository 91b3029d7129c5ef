// Package selection owns the selected location and the transition between the
// empty screen and the results screen.
package selection

import (
	"strings"
	"sync"
	"time"

	"github.com/kedare/dryspot/internal/logger"
)

// DefaultTransitionDelay is how long the empty screen plays its exit animation
// before the results screen is shown.
const DefaultTransitionDelay = 150 * time.Millisecond

// Phase is the screen the controller currently selects.
type Phase int

const (
	// PhaseIdle means no location has been selected yet.
	PhaseIdle Phase = iota
	// PhaseCommitting means a location was committed and the exit animation is playing.
	PhaseCommitting
	// PhaseShowing means a location is selected and results are shown.
	PhaseShowing
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCommitting:
		return "committing"
	case PhaseShowing:
		return "showing"
	default:
		return "unknown"
	}
}

// State is a read-only snapshot of the controller.
type State struct {
	Phase Phase
	// Location is the selected location, empty until the first transition completes.
	Location string
	// Pending is the committed location waiting for the transition to finish.
	Pending string
	// Transitioning is true only while the exit animation plays.
	Transitioning bool
	// Generation increases on every accepted commit.
	Generation uint64
}

// Selected reports whether a location has been selected.
func (s State) Selected() bool {
	return s.Location != ""
}

// Listener receives a snapshot after every state change.
type Listener func(State)

// Controller is the single owner of the selection state.
type Controller struct {
	mu        sync.Mutex
	state     State
	delay     time.Duration
	scheduler Scheduler
	pending   Timer
	listeners []Listener
	closed    bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithDelay overrides the transition delay. A delay of zero or less applies commits immediately.
func WithDelay(d time.Duration) Option {
	return func(c *Controller) {
		c.delay = d
	}
}

// WithScheduler replaces the wall clock used for the transition timer.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// NewController creates a controller in the idle phase.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		delay:     DefaultTransitionDelay,
		scheduler: wallClock{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Delay returns the configured transition delay.
func (c *Controller) Delay() time.Duration {
	return c.delay
}

// Subscribe registers fn to be called after every state change.
func (c *Controller) Subscribe(fn Listener) {
	if fn == nil {
		return
	}

	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// Commit hands a location to the controller. Blank locations are ignored and
// false is returned. From the idle phase the location is applied after the
// transition delay; once a location is shown a new one replaces it at once.
func (c *Controller) Commit(location string) bool {
	if strings.TrimSpace(location) == "" {
		logger.Log.Tracef("Ignoring blank location commit")

		return false
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return false
	}

	c.state.Generation++
	gen := c.state.Generation

	if c.state.Phase == PhaseShowing || c.delay <= 0 {
		c.stopPendingLocked()
		c.state.Phase = PhaseShowing
		c.state.Location = location
		c.state.Pending = ""
		c.state.Transitioning = false
		snapshot := c.state
		c.mu.Unlock()

		logger.Log.Debugf("Location set to %q (generation %d)", location, gen)
		c.notify(snapshot)

		return true
	}

	c.stopPendingLocked()
	c.state.Phase = PhaseCommitting
	c.state.Pending = location
	c.state.Transitioning = true
	c.pending = c.scheduler.AfterFunc(c.delay, func() {
		c.settle(gen)
	})
	snapshot := c.state
	c.mu.Unlock()

	logger.Log.Debugf("Committing %q, showing results in %v (generation %d)", location, c.delay, gen)
	c.notify(snapshot)

	return true
}

// settle finishes the transition started by the commit stamped with gen.
// Stale transitions are dropped.
func (c *Controller) settle(gen uint64) {
	c.mu.Lock()
	if c.closed || c.state.Generation != gen || c.state.Phase != PhaseCommitting {
		c.mu.Unlock()
		logger.Log.Tracef("Dropping stale transition (generation %d)", gen)

		return
	}

	c.state.Phase = PhaseShowing
	c.state.Location = c.state.Pending
	c.state.Pending = ""
	c.state.Transitioning = false
	c.pending = nil
	snapshot := c.state
	c.mu.Unlock()

	logger.Log.Debugf("Location set to %q (generation %d)", snapshot.Location, gen)
	c.notify(snapshot)
}

// Close cancels any pending transition. Later commits are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopPendingLocked()
	c.closed = true
}

func (c *Controller) stopPendingLocked() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Controller) notify(s State) {
	c.mu.Lock()
	listeners := append([]Listener(nil), c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(s)
	}
}
