// Package accumulator maintains the running total of all accepted
// closed intervals. It is an append-only ledger: intervals are added in
// arrival order and never retracted.
package accumulator

import (
	"clock-watch/internal/orgclock"
)

// Accumulator sums closed interval durations. It is owned by a single
// ingestion stream; concurrent callers are not a consideration.
type Accumulator struct {
	total orgclock.Duration
	count int
}

// New creates an empty Accumulator.
func New() *Accumulator {
	return &Accumulator{}
}

// Add appends the interval's duration to the running total.
func (a *Accumulator) Add(interval orgclock.ClosedInterval) {
	a.total += interval.Duration
	a.count++
}

// Total returns the current accumulated duration.
func (a *Accumulator) Total() orgclock.Duration {
	return a.total
}

// Count returns the number of intervals accumulated.
func (a *Accumulator) Count() int {
	return a.count
}
