package validation

import "fmt"

// Warning codes surfaced during ingestion. Warnings never block an
// entry; they are reported alongside the offending line.
const (
	WarningDurationMismatch = "DURATION_MISMATCH"
	WarningTimestampParse   = "TIMESTAMP_PARSE"
	WarningNegativeInterval = "NEGATIVE_INTERVAL"
)

// Warning is a non-fatal diagnostic tied to a single input line.
type Warning struct {
	Code    string
	Message string
	Line    string
}

// String formats the warning for inline display.
func (w Warning) String() string {
	if w.Line == "" {
		return fmt.Sprintf("[%s] %s", w.Code, w.Message)
	}
	return fmt.Sprintf("[%s] %s: %q", w.Code, w.Message, w.Line)
}
