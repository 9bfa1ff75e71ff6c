package orgclock

// Entry is one recognized clock line. Exactly two shapes exist: a closed
// interval with both timestamps, and an open interval with only a start.
// Lines that are not clock entries at all produce no Entry.
type Entry interface {
	clockEntry()
}

// ClosedEntry is a parsed "start--stop" clock line, before validation.
// InlineDuration carries the optional trailing "=> H:MM" field as written
// in the source line; it is never authoritative.
type ClosedEntry struct {
	Start          Timestamp
	Stop           Timestamp
	InlineDuration *Duration
	Line           string
}

func (ClosedEntry) clockEntry() {}

// OpenEntry is a parsed clock line with a start timestamp and no stop:
// a clock that was started but not yet stopped.
type OpenEntry struct {
	Start Timestamp
	Line  string
}

func (OpenEntry) clockEntry() {}
