package validation

import (
	"fmt"

	"clock-watch/internal/orgclock"
)

// IntervalValidator validates closed clock entries and recomputes their
// durations from the timestamps. The timestamps are the source of truth:
// an inline duration that disagrees is reported, never trusted.
type IntervalValidator struct {
	tolerance orgclock.Duration
}

// NewIntervalValidator creates a validator with the given inline-duration
// mismatch tolerance in whole minutes. Zero means exact match.
func NewIntervalValidator(tolerance orgclock.Duration) *IntervalValidator {
	return &IntervalValidator{
		tolerance: tolerance,
	}
}

// Validate converts a parsed ClosedEntry into a validated ClosedInterval.
//
// It fails with a NegativeInterval error when stop precedes start. When
// the entry carries an inline duration that differs from the computed
// duration by more than the tolerance, the entry is still accepted with
// the computed duration and a DurationMismatch warning is returned.
func (v *IntervalValidator) Validate(entry orgclock.ClosedEntry) (*orgclock.ClosedInterval, []Warning, error) {
	duration, err := orgclock.Difference(entry.Start, entry.Stop)
	if err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	if entry.InlineDuration != nil {
		diff := duration - *entry.InlineDuration
		if diff < 0 {
			diff = -diff
		}
		if diff > v.tolerance {
			warnings = append(warnings, Warning{
				Code: WarningDurationMismatch,
				Message: fmt.Sprintf("inline duration %s disagrees with computed duration %s; using computed value",
					entry.InlineDuration.String(), duration.String()),
				Line: entry.Line,
			})
		}
	}

	return &orgclock.ClosedInterval{
		Start:    entry.Start,
		Stop:     entry.Stop,
		Duration: duration,
	}, warnings, nil
}
