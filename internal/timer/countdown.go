// Package timer implements the rest countdown that runs between sets.
package timer

import (
	"context"
	"sync"
	"time"
)

// DefaultTickInterval is the render cadence of a running countdown.
const DefaultTickInterval = 16 * time.Millisecond

// CueThreshold is how close to zero the completion cue fires.
const CueThreshold = time.Second

type State int

const (
	Idle State = iota
	Running
	Expired
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Expired:
		return "expired"
	default:
		return "unknown"
	}
}

// Tick is what a single Advance observed.
type Tick struct {
	Remaining time.Duration
	Progress  float64 // Fraction of the duration still left, 1 → 0.
	Cue       bool    // True only on the first tick below CueThreshold.
	Expired   bool    // True only on the tick that reached zero.
}

// Countdown is a single rest timer. It is safe for concurrent use.
type Countdown struct {
	mu        sync.Mutex
	total     time.Duration
	state     State
	startedAt time.Time
	remaining time.Duration
	cued      bool
}

func NewCountdown(total time.Duration) *Countdown {
	if total <= 0 {
		total = DefaultDuration
	}
	return &Countdown{total: total, remaining: total}
}

// SetDuration changes the length of the countdown. Only allowed while idle.
func (c *Countdown) SetDuration(total time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Idle {
		return false
	}
	if total <= 0 {
		total = DefaultDuration
	}
	c.total = total
	c.remaining = total
	return true
}

// Start moves an idle countdown to Running with at as its origin.
// at may lie in the past to resume a countdown started earlier.
func (c *Countdown) Start(at time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Idle {
		return false
	}
	c.state = Running
	c.startedAt = at
	c.remaining = c.total
	c.cued = false
	return true
}

// Cancel abandons a running countdown and returns it to Idle.
// No completion is ever reported for a cancelled run.
func (c *Countdown) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Running {
		c.state = Idle
		c.remaining = c.total
		c.cued = false
	}
}

// Advance recomputes the remaining time at now. Remaining never increases
// and never drops below zero.
func (c *Countdown) Advance(now time.Time) Tick {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Running {
		return Tick{Remaining: c.remaining, Progress: c.progress()}
	}

	left := c.total - now.Sub(c.startedAt)
	if left < 0 {
		left = 0
	}
	if left < c.remaining {
		c.remaining = left
	}

	tick := Tick{Remaining: c.remaining}
	if !c.cued && c.remaining < CueThreshold {
		c.cued = true
		tick.Cue = true
	}
	if c.remaining <= 0 {
		c.state = Expired
		tick.Expired = true
	}
	tick.Progress = c.progress()
	return tick
}

func (c *Countdown) progress() float64 {
	if c.total <= 0 {
		return 0
	}
	return float64(c.remaining) / float64(c.total)
}

func (c *Countdown) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Countdown) Total() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Run starts the countdown (if idle) at the time of the first tick and
// advances it on every value received from ticks. It returns true when the
// countdown expired and false when ctx was cancelled or ticks closed first;
// in the latter cases the countdown is cancelled.
func (c *Countdown) Run(ctx context.Context, ticks <-chan time.Time, onTick func(Tick)) bool {
	for {
		select {
		case <-ctx.Done():
			c.Cancel()
			return false
		case now, ok := <-ticks:
			if !ok {
				c.Cancel()
				return false
			}
			if !c.Start(now) && c.State() == Expired {
				return true
			}
			tick := c.Advance(now)
			if onTick != nil {
				onTick(tick)
			}
			if tick.Expired {
				return true
			}
		}
	}
}

// RunEvery drives Run from a time.Ticker firing every interval.
func (c *Countdown) RunEvery(ctx context.Context, interval time.Duration, onTick func(Tick)) bool {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	c.Start(time.Now())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	return c.Run(ctx, ticker.C, onTick)
}
