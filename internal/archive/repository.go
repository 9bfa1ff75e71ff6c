// Package archive persists accepted closed intervals to a local SQLite
// ledger. Archiving is opt-in; the ledger is append plus query only.
package archive

import (
	"context"
	"database/sql"
	"time"

	"clock-watch/internal/archive/migrations"
	"clock-watch/internal/errors"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for ledger operations
type Repository interface {
	// CreateInterval appends an accepted interval to the ledger
	CreateInterval(ctx context.Context, interval *Interval) error

	// ListIntervals returns every archived interval ordered by start time
	ListIntervals(ctx context.Context) ([]*Interval, error)

	// TotalMinutes returns the sum of all archived interval durations
	TotalMinutes(ctx context.Context) (int64, error)

	// Close releases the underlying database handle
	Close() error
}

// Options carries tunables for the SQLite ledger
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

// New creates a new SQLite ledger at dbPath, running migrations
func New(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, opts: opts}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateInterval appends an accepted interval to the ledger
func (r *SQLiteRepository) CreateInterval(ctx context.Context, interval *Interval) error {
	ctx, cancel := r.withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	query := `
	INSERT INTO intervals (start_time, end_time, minutes, source)
	VALUES (?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		FormatTimeForDB(interval.StartTime), FormatTimeForDB(interval.EndTime), interval.Minutes, interval.Source)
	if err != nil {
		return err
	}

	interval.ID = id
	return nil
}

// ListIntervals returns every archived interval ordered by start time
func (r *SQLiteRepository) ListIntervals(ctx context.Context) ([]*Interval, error) {
	ctx, cancel := r.withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `
	SELECT id, start_time, end_time, minutes, source
	FROM intervals
	ORDER BY start_time ASC`

	return QueryMultiple(ctx, r.db, query, ScanIntervals, "intervals")
}

// GetInterval returns one archived interval by its ID
func (r *SQLiteRepository) GetInterval(ctx context.Context, id int64) (*Interval, error) {
	ctx, cancel := r.withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `
	SELECT id, start_time, end_time, minutes, source
	FROM intervals
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanInterval, "interval", id)
}

// TotalMinutes returns the sum of all archived interval durations
func (r *SQLiteRepository) TotalMinutes(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	var total sql.NullInt64
	row := r.db.QueryRowContext(ctx, `SELECT SUM(minutes) FROM intervals`)
	if err := row.Scan(&total); err != nil {
		return 0, HandleDatabaseError("sum intervals", err)
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

func (r *SQLiteRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
