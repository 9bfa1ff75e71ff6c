package archive

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanInterval scans a single archived interval from a database row
func ScanInterval(scanner Scanner) (*Interval, error) {
	interval := &Interval{}
	var startTime, endTime string

	err := scanner.Scan(
		&interval.ID,
		&startTime,
		&endTime,
		&interval.Minutes,
		&interval.Source,
	)
	if err != nil {
		return nil, err
	}

	if interval.StartTime, err = ParseTimeFromDB(startTime); err != nil {
		return nil, err
	}
	if interval.EndTime, err = ParseTimeFromDB(endTime); err != nil {
		return nil, err
	}

	return interval, nil
}

// ScanIntervals scans multiple archived intervals from database rows
func ScanIntervals(rows Rows) ([]*Interval, error) {
	var intervals []*Interval
	for rows.Next() {
		interval, err := ScanInterval(rows)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return intervals, nil
}
