package orgclock

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"clock-watch/internal/errors"
)

// timestampLayout is the canonical text form of a clock timestamp:
// date, weekday abbreviation, time at minute precision, no timezone.
const timestampLayout = "2006-01-02 Mon 15:04"

// timestampPattern enforces the exact field shape before any value
// checking. The weekday abbreviation must be present but its value is
// not cross-checked against the date.
var timestampPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2}) ([A-Za-z]{2,3}) (\d{2}):(\d{2})$`)

// Timestamp is a single point in time at the precision of the log
// format: date plus hour and minute, treated as local wall-clock time.
// Immutable once constructed.
type Timestamp struct {
	t time.Time
}

// NewTimestamp constructs a Timestamp from calendar fields, rejecting
// values outside calendar-valid ranges.
func NewTimestamp(year int, month time.Month, day, hour, minute int) (Timestamp, error) {
	t := time.Date(year, month, day, hour, minute, 0, 0, time.Local)

	// time.Date normalizes out-of-range fields (e.g. Feb 30 becomes
	// Mar 1); any normalization means the input was invalid.
	if t.Year() != year || t.Month() != month || t.Day() != day || t.Hour() != hour || t.Minute() != minute {
		return Timestamp{}, errors.NewParseError(
			fmt.Sprintf("calendar fields out of range: %04d-%02d-%02d %02d:%02d", year, month, day, hour, minute), nil)
	}

	return Timestamp{t: t}, nil
}

// TimestampFromTime samples a time.Time into a Timestamp, truncating to
// minute precision in local time.
func TimestampFromTime(t time.Time) Timestamp {
	local := t.Local()
	return Timestamp{t: time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), local.Minute(), 0, 0, time.Local)}
}

// ParseTimestamp parses the canonical "YYYY-MM-DD Day HH:MM" text form.
// Parsing is strict: wrong field count, out-of-range values or malformed
// separators fail rather than guessing.
func ParseTimestamp(text string) (Timestamp, error) {
	matches := timestampPattern.FindStringSubmatch(text)
	if matches == nil {
		return Timestamp{}, errors.NewParseError(fmt.Sprintf("malformed timestamp %q, expected %q", text, timestampLayout), nil)
	}

	year, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	day, _ := strconv.Atoi(matches[3])
	hour, _ := strconv.Atoi(matches[5])
	minute, _ := strconv.Atoi(matches[6])

	if month < 1 || month > 12 {
		return Timestamp{}, errors.NewParseError(fmt.Sprintf("month out of range in %q", text), nil)
	}
	if hour > 23 {
		return Timestamp{}, errors.NewParseError(fmt.Sprintf("hour out of range in %q", text), nil)
	}
	if minute > 59 {
		return Timestamp{}, errors.NewParseError(fmt.Sprintf("minute out of range in %q", text), nil)
	}

	ts, err := NewTimestamp(year, time.Month(month), day, hour, minute)
	if err != nil {
		return Timestamp{}, errors.NewParseError(fmt.Sprintf("invalid calendar date in %q", text), err)
	}

	return ts, nil
}

// String formats the timestamp in the canonical text form, including the
// weekday abbreviation derived from the date.
func (ts Timestamp) String() string {
	return ts.t.Format(timestampLayout)
}

// Time returns the underlying time value at minute precision.
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// IsZero reports whether the timestamp is the zero value.
func (ts Timestamp) IsZero() bool {
	return ts.t.IsZero()
}

// Compare returns -1 if ts is before other, 0 if equal, +1 if after.
func (ts Timestamp) Compare(other Timestamp) int {
	return ts.t.Compare(other.t)
}

// Before reports whether ts is strictly before other.
func (ts Timestamp) Before(other Timestamp) bool {
	return ts.t.Before(other.t)
}

// Difference returns the duration from start to stop at minute precision.
// It is defined only for stop >= start and fails with a NegativeInterval
// error otherwise. Identical timestamps yield a zero duration.
func Difference(start, stop Timestamp) (Duration, error) {
	if stop.Before(start) {
		return 0, errors.NewNegativeIntervalError(start.String(), stop.String())
	}
	return DurationFromTime(stop.t.Sub(start.t)), nil
}
