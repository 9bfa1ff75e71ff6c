package orgclock

// ClosedInterval is a validated clock interval. Duration is always the
// minute-precision difference of Stop and Start, never the inline value
// from the source line.
type ClosedInterval struct {
	Start    Timestamp
	Stop     Timestamp
	Duration Duration
}

// OpenInterval is a clock that has been started but not yet stopped.
// At most one open interval is live at a time (the current session).
type OpenInterval struct {
	Start Timestamp
}
