package api

import (
	"context"

	"clock-watch/internal/accumulator"
	"clock-watch/internal/archive"
	"clock-watch/internal/config"
	"clock-watch/internal/errors"
	"clock-watch/internal/ingest"
	"clock-watch/internal/logging"
	"clock-watch/internal/orgclock"
	"clock-watch/internal/session"
	"clock-watch/internal/validation"
)

// Interval source labels recorded in the archive.
const (
	SourceFile    = "file"
	SourcePaste   = "paste"
	SourceSession = "session"
)

// Summary is the final state returned by Shutdown for the CLI layer to print.
type Summary struct {
	Total      orgclock.Duration
	Count      int
	Warnings   int
	AutoClosed bool
}

// API defines the operations the CLI layer drives. It owns the single
// ingestion stream: the accumulator and session clock behind it are
// never touched from more than one logical flow.
type API interface {
	// Ingestion
	IngestLine(line string)
	IngestFile(ctx context.Context, path string) (ingest.Report, error)
	SetWarningSink(sink ingest.WarningSink)

	// Live session
	StartSession() error
	ToggleSession(ctx context.Context) (*orgclock.ClosedInterval, error)
	SessionRunning() bool
	Elapsed() (orgclock.Duration, error)

	// Running totals
	Total() orgclock.Duration
	Count() int
	Warnings() []validation.Warning

	// Lifecycle
	Shutdown(ctx context.Context) (*Summary, error)

	// Archive queries
	ArchiveList(ctx context.Context) ([]*archive.Interval, error)
	ArchiveTotal(ctx context.Context) (orgclock.Duration, error)
}

type apiImpl struct {
	pipeline  *ingest.Pipeline
	acc       *accumulator.Accumulator
	clock     *session.Clock
	repo      archive.Repository
	autoClose bool

	// source labels the origin of the interval currently flowing
	// through the accept hook; single ingestion stream, so a plain
	// field suffices.
	source   string
	seenOpen *orgclock.OpenEntry
	shutdown bool
}

// New creates an API instance. repo may be nil when archiving is disabled.
func New(cfg *config.Config, repo archive.Repository) API {
	return NewWithClock(cfg, repo, session.NewClock())
}

// NewWithClock creates an API instance with an injected session clock.
func NewWithClock(cfg *config.Config, repo archive.Repository, clock *session.Clock) API {
	acc := accumulator.New()
	validator := validation.NewIntervalValidator(orgclock.Duration(cfg.Session.MismatchTolerance))

	a := &apiImpl{
		pipeline:  ingest.NewPipeline(validator, acc),
		acc:       acc,
		clock:     clock,
		repo:      repo,
		autoClose: cfg.Session.AutoClose,
		source:    SourcePaste,
	}
	a.pipeline.SetAcceptHook(a.archiveInterval)
	return a
}

// SetWarningSink installs the warning callback on the underlying pipeline.
func (a *apiImpl) SetWarningSink(sink ingest.WarningSink) {
	a.pipeline.SetWarningSink(sink)
}

// IngestLine feeds one pasted line through the pipeline. An unstopped
// entry in the input re-anchors the live session clock.
func (a *apiImpl) IngestLine(line string) {
	a.source = SourcePaste
	a.pipeline.IngestLine(line)
	a.reanchorFromIngest()
}

// IngestFile feeds a log file through the pipeline and reports counters.
func (a *apiImpl) IngestFile(ctx context.Context, path string) (ingest.Report, error) {
	a.source = SourceFile
	defer func() { a.source = SourcePaste }()

	if err := a.pipeline.IngestFile(ctx, path); err != nil {
		return a.pipeline.Report(), err
	}
	a.reanchorFromIngest()
	return a.pipeline.Report(), nil
}

// StartSession starts the live clock anchored at the current time.
func (a *apiImpl) StartSession() error {
	return a.clock.StartNow()
}

// ToggleSession implements the pause/resume keystroke: a running session
// is closed through the validator into the accumulator; a stopped clock
// starts fresh. Returns the closed interval when one was produced.
func (a *apiImpl) ToggleSession(ctx context.Context) (*orgclock.ClosedInterval, error) {
	if !a.clock.Running() {
		if err := a.clock.StartNow(); err != nil {
			return nil, err
		}
		return nil, nil
	}

	entry, err := a.clock.Stop()
	if err != nil {
		return nil, err
	}

	a.source = SourceSession
	interval, err := a.pipeline.IngestClosedEntry(entry)
	a.source = SourcePaste
	if err != nil {
		return nil, err
	}
	return interval, nil
}

// SessionRunning reports whether the live clock is running.
func (a *apiImpl) SessionRunning() bool {
	return a.clock.Running()
}

// Elapsed samples the live clock.
func (a *apiImpl) Elapsed() (orgclock.Duration, error) {
	return a.clock.Elapsed()
}

// Total returns the accumulated duration of all accepted intervals.
func (a *apiImpl) Total() orgclock.Duration {
	return a.acc.Total()
}

// Count returns the number of accepted intervals.
func (a *apiImpl) Count() int {
	return a.acc.Count()
}

// Warnings returns every warning produced so far, in input order.
func (a *apiImpl) Warnings() []validation.Warning {
	return a.pipeline.Warnings()
}

// Shutdown finalizes the run: the open session, if any, is auto-closed
// at the shutdown timestamp or discarded per configuration, and the
// final summary is returned. Shutdown is idempotent.
func (a *apiImpl) Shutdown(ctx context.Context) (*Summary, error) {
	autoClosed := false

	if !a.shutdown && a.clock.Running() {
		if a.autoClose {
			entry, err := a.clock.Stop()
			if err != nil {
				return nil, err
			}
			a.source = SourceSession
			_, err = a.pipeline.IngestClosedEntry(entry)
			a.source = SourcePaste
			if err != nil {
				return nil, err
			}
			autoClosed = true
		} else {
			if err := a.clock.Discard(); err != nil {
				return nil, err
			}
		}
	}
	a.shutdown = true

	report := a.pipeline.Report()
	return &Summary{
		Total:      report.Total,
		Count:      a.acc.Count(),
		Warnings:   report.Warnings,
		AutoClosed: autoClosed,
	}, nil
}

// ArchiveList returns every archived interval.
func (a *apiImpl) ArchiveList(ctx context.Context) ([]*archive.Interval, error) {
	if a.repo == nil {
		return nil, errors.NewInvalidInputError("archive", nil, "archiving is not enabled")
	}
	return a.repo.ListIntervals(ctx)
}

// ArchiveTotal returns the sum of all archived interval durations.
func (a *apiImpl) ArchiveTotal(ctx context.Context) (orgclock.Duration, error) {
	if a.repo == nil {
		return 0, errors.NewInvalidInputError("archive", nil, "archiving is not enabled")
	}
	minutes, err := a.repo.TotalMinutes(ctx)
	if err != nil {
		return 0, err
	}
	return orgclock.Duration(minutes), nil
}

// archiveInterval mirrors an accepted interval into the ledger. Archive
// failures are not allowed to interrupt ingestion; they are logged.
func (a *apiImpl) archiveInterval(interval orgclock.ClosedInterval) {
	if a.repo == nil {
		return
	}
	if err := a.repo.CreateInterval(context.Background(), archive.FromInterval(interval, a.source)); err != nil {
		logging.Debugf("failed to archive interval %s--%s: %v\n", interval.Start, interval.Stop, err)
	}
}

// reanchorFromIngest moves the live clock to the most recent unstopped
// entry seen during ingestion, if a new one appeared.
func (a *apiImpl) reanchorFromIngest() {
	open := a.pipeline.LastOpen()
	if open != nil && open != a.seenOpen {
		a.clock.Reanchor(open.Start)
		a.seenOpen = open
	}
}
