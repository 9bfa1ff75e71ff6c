package orgclock

import (
	"fmt"
	"strings"

	"clock-watch/internal/errors"
)

// clockPrefix marks a line as a clock entry. Lines without it are
// rejected immediately; most log and file content is not a clock line.
const clockPrefix = "CLOCK:"

// intervalSeparator separates the start and stop timestamps of a closed
// clock line.
const intervalSeparator = "--"

// durationMarker introduces the optional inline duration of a closed
// clock line.
const durationMarker = "=>"

// ParseLine recognizes one line of text as a clock entry.
//
// It returns (entry, nil) for a well-formed closed or open entry,
// (nil, nil) for a line that is not a clock entry, and (nil, error) for
// a line that carries the clock prefix but is malformed. The error is a
// diagnostic for the caller to surface; it never aborts ingestion.
func ParseLine(line string) (Entry, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, clockPrefix) {
		return nil, nil
	}

	body := strings.TrimSpace(trimmed[len(clockPrefix):])
	if body == "" {
		return nil, errors.NewParseError("clock line has no timestamps", nil).WithContext("line", line)
	}

	// Split off the optional inline duration first so the separator
	// split only sees timestamp segments.
	var inline *Duration
	if idx := strings.Index(body, durationMarker); idx != -1 {
		durationText := strings.TrimSpace(body[idx+len(durationMarker):])
		d, err := ParseInlineDuration(durationText)
		if err != nil {
			return nil, errors.NewParseError(fmt.Sprintf("clock line has malformed inline duration %q", durationText), err).WithContext("line", line)
		}
		inline = &d
		body = strings.TrimSpace(body[:idx])
	}

	segments := strings.Split(body, intervalSeparator)
	switch len(segments) {
	case 1:
		if inline != nil {
			return nil, errors.NewParseError("open clock line cannot carry an inline duration", nil).WithContext("line", line)
		}
		start, err := parseBracketedTimestamp(segments[0])
		if err != nil {
			return nil, appendLineContext(err, line)
		}
		return OpenEntry{Start: start, Line: line}, nil
	case 2:
		start, err := parseBracketedTimestamp(segments[0])
		if err != nil {
			return nil, appendLineContext(err, line)
		}
		stop, err := parseBracketedTimestamp(segments[1])
		if err != nil {
			return nil, appendLineContext(err, line)
		}
		return ClosedEntry{Start: start, Stop: stop, InlineDuration: inline, Line: line}, nil
	default:
		return nil, errors.NewParseError(fmt.Sprintf("clock line has %d timestamp segments, expected 1 or 2", len(segments)), nil).WithContext("line", line)
	}
}

// parseBracketedTimestamp strips the surrounding [ ] from a timestamp
// segment and parses the contents. Whitespace around the brackets is
// tolerated; the brackets themselves are not optional.
func parseBracketedTimestamp(segment string) (Timestamp, error) {
	s := strings.TrimSpace(segment)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return Timestamp{}, errors.NewParseError(fmt.Sprintf("timestamp segment %q is not bracketed", s), nil)
	}
	return ParseTimestamp(strings.TrimSpace(s[1 : len(s)-1]))
}

func appendLineContext(err error, line string) error {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr.WithContext("line", line)
	}
	return err
}
