package orgclock

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"clock-watch/internal/errors"
)

// Duration is a clocked amount of time at the log format's precision:
// a non-negative count of whole minutes.
type Duration int64

// inlineDurationPattern matches the trailing "H:MM" duration field of a
// closed clock line. Hours are unbounded, minutes are always two digits.
var inlineDurationPattern = regexp.MustCompile(`^(\d+):([0-5]\d)$`)

// ParseInlineDuration parses the "H:MM" inline duration text of a clock line.
func ParseInlineDuration(text string) (Duration, error) {
	matches := inlineDurationPattern.FindStringSubmatch(text)
	if matches == nil {
		return 0, errors.NewParseError(fmt.Sprintf("malformed duration %q, expected H:MM", text), nil)
	}

	hours, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, errors.NewParseError(fmt.Sprintf("malformed duration %q, expected H:MM", text), err)
	}
	minutes, err := strconv.ParseInt(matches[2], 10, 64)
	if err != nil {
		return 0, errors.NewParseError(fmt.Sprintf("malformed duration %q, expected H:MM", text), err)
	}

	return Duration(hours*60 + minutes), nil
}

// DurationFromTime converts a time.Duration to the format's minute
// precision, truncating any sub-minute remainder. Negative inputs clamp
// to zero; Duration values are non-negative by construction.
func DurationFromTime(d time.Duration) Duration {
	if d < 0 {
		return 0
	}
	return Duration(d / time.Minute)
}

// Minutes returns the total number of whole minutes
func (d Duration) Minutes() int64 {
	return int64(d)
}

// String formats the duration in the canonical "H:MM" form used by the
// log format (e.g. "1:30", "0:01")
func (d Duration) String() string {
	return fmt.Sprintf("%d:%02d", d/60, d%60)
}
