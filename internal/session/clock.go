// Package session tracks the single live clock of the current run: a
// two-state machine that is either running (anchored at a start
// timestamp, ticking) or stopped.
package session

import (
	"time"

	"clock-watch/internal/errors"
	"clock-watch/internal/orgclock"
)

// Clock is the live session clock. At most one open interval is live at
// a time; elapsed time is recomputed from the anchor on every call, never
// cached, so repeated samples cannot drift.
type Clock struct {
	now     func() time.Time
	running bool
	anchor  orgclock.Timestamp
}

// NewClock creates a session clock using the system wall clock.
func NewClock() *Clock {
	return NewClockWithNow(time.Now)
}

// NewClockWithNow creates a session clock with an injected time source.
func NewClockWithNow(now func() time.Time) *Clock {
	return &Clock{
		now: now,
	}
}

// Start anchors the clock at the given timestamp and moves it to the
// running state. Starting twice without stopping is rejected.
func (c *Clock) Start(anchor orgclock.Timestamp) error {
	if c.running {
		return errors.NewSessionAlreadyRunningError(c.anchor.String())
	}
	c.anchor = anchor
	c.running = true
	return nil
}

// StartNow anchors the clock at the current sampled time.
func (c *Clock) StartNow() error {
	return c.Start(orgclock.TimestampFromTime(c.now()))
}

// Reanchor replaces the running clock's anchor, or starts the clock when
// it is not running. Used when ingestion encounters an unstopped entry:
// the most recent open entry becomes the live session.
func (c *Clock) Reanchor(anchor orgclock.Timestamp) {
	c.anchor = anchor
	c.running = true
}

// Running reports whether a session is currently live.
func (c *Clock) Running() bool {
	return c.running
}

// Open returns the running session as an open interval.
func (c *Clock) Open() (orgclock.OpenInterval, error) {
	if !c.running {
		return orgclock.OpenInterval{}, errors.NewNoActiveSessionError()
	}
	return orgclock.OpenInterval{Start: c.anchor}, nil
}

// Elapsed computes "sampled-now minus anchor" at minute precision. The
// value is derived fresh on every tick from the anchor and the clock.
func (c *Clock) Elapsed() (orgclock.Duration, error) {
	if !c.running {
		return 0, errors.NewNoActiveSessionError()
	}
	return orgclock.Difference(c.anchor, orgclock.TimestampFromTime(c.now()))
}

// Stop moves the clock to the stopped state and emits the candidate
// closed entry {anchor, now} for validator and accumulator consumption.
func (c *Clock) Stop() (orgclock.ClosedEntry, error) {
	if !c.running {
		return orgclock.ClosedEntry{}, errors.NewNoActiveSessionError()
	}

	stop := orgclock.TimestampFromTime(c.now())
	entry := orgclock.ClosedEntry{
		Start: c.anchor,
		Stop:  stop,
	}
	c.running = false
	return entry, nil
}

// Discard drops the running session without emitting an interval. Used
// at shutdown when auto-closing is disabled.
func (c *Clock) Discard() error {
	if !c.running {
		return errors.NewNoActiveSessionError()
	}
	c.running = false
	return nil
}
