package archive

import (
	"time"

	"clock-watch/internal/orgclock"
)

// Interval is the database representation of an accepted closed
// interval.
type Interval struct {
	ID        int64
	StartTime time.Time
	EndTime   time.Time
	Minutes   int64
	Source    string
}

// FromInterval converts a validated domain interval to its database
// representation. Source labels where the interval came from ("file",
// "paste", "session").
func FromInterval(iv orgclock.ClosedInterval, source string) *Interval {
	return &Interval{
		StartTime: iv.Start.Time(),
		EndTime:   iv.Stop.Time(),
		Minutes:   iv.Duration.Minutes(),
		Source:    source,
	}
}

// ToInterval converts a database row back to the domain representation.
func (i *Interval) ToInterval() orgclock.ClosedInterval {
	return orgclock.ClosedInterval{
		Start:    orgclock.TimestampFromTime(i.StartTime),
		Stop:     orgclock.TimestampFromTime(i.EndTime),
		Duration: orgclock.Duration(i.Minutes),
	}
}
