// Package ingest feeds raw lines through the parser, validator and
// accumulator. Drivers exist for a reader (pasted interactive input) and
// for a named log file.
package ingest

import (
	"bufio"
	"context"
	"io"
	"os"

	"clock-watch/internal/accumulator"
	"clock-watch/internal/errors"
	"clock-watch/internal/logging"
	"clock-watch/internal/orgclock"
	"clock-watch/internal/validation"
)

// WarningSink receives each warning as it is produced, so the caller can
// surface it inline alongside the offending line.
type WarningSink func(validation.Warning)

// Report summarizes one ingestion run.
type Report struct {
	Lines    int
	Accepted int
	Skipped  int
	Warnings int
	Total    orgclock.Duration
}

// Pipeline is the parser → validator → accumulator chain. A single bad
// line never aborts ingestion of the rest of the input.
type Pipeline struct {
	validator *validation.IntervalValidator
	acc       *accumulator.Accumulator
	sink      WarningSink

	warnings []validation.Warning
	lines    int
	accepted int
	skipped  int
	lastOpen *orgclock.OpenEntry
	onAccept func(orgclock.ClosedInterval)
}

// NewPipeline creates a pipeline over the given validator and accumulator.
func NewPipeline(validator *validation.IntervalValidator, acc *accumulator.Accumulator) *Pipeline {
	return &Pipeline{
		validator: validator,
		acc:       acc,
	}
}

// SetWarningSink installs a callback invoked for every warning, in input
// order, as it is produced.
func (p *Pipeline) SetWarningSink(sink WarningSink) {
	p.sink = sink
}

// SetAcceptHook installs a callback invoked for every interval accepted
// into the accumulator (used to mirror intervals into the archive).
func (p *Pipeline) SetAcceptHook(hook func(orgclock.ClosedInterval)) {
	p.onAccept = hook
}

// IngestLine runs one raw line through the pipeline. Non-clock lines are
// silently skipped; malformed clock lines and negative intervals are
// recorded as warnings and skipped; valid closed entries are validated
// and accumulated; open entries are remembered as the most recent
// unstopped clock.
func (p *Pipeline) IngestLine(line string) {
	p.lines++

	entry, err := orgclock.ParseLine(line)
	if err != nil {
		p.skipped++
		p.warn(validation.Warning{
			Code:    validation.WarningTimestampParse,
			Message: errors.GetUserMessage(err),
			Line:    line,
		})
		return
	}

	switch e := entry.(type) {
	case nil:
		// Not a clock line at all; expected for most content.
	case orgclock.ClosedEntry:
		p.ingestClosed(e)
	case orgclock.OpenEntry:
		logging.Debugf("open clock entry at %s\n", e.Start.String())
		open := e
		p.lastOpen = &open
	}
}

// IngestClosedEntry validates and accumulates an already-parsed closed
// entry, e.g. one emitted by the live session clock on stop.
func (p *Pipeline) IngestClosedEntry(entry orgclock.ClosedEntry) (*orgclock.ClosedInterval, error) {
	interval, warnings, err := p.validator.Validate(entry)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		p.warn(w)
	}
	p.accept(*interval)
	return interval, nil
}

func (p *Pipeline) ingestClosed(entry orgclock.ClosedEntry) {
	interval, warnings, err := p.validator.Validate(entry)
	for _, w := range warnings {
		p.warn(w)
	}
	if err != nil {
		p.skipped++
		p.warn(validation.Warning{
			Code:    validation.WarningNegativeInterval,
			Message: errors.GetUserMessage(err),
			Line:    entry.Line,
		})
		return
	}
	p.accept(*interval)
}

func (p *Pipeline) accept(interval orgclock.ClosedInterval) {
	p.acc.Add(interval)
	p.accepted++
	if p.onAccept != nil {
		p.onAccept(interval)
	}
}

func (p *Pipeline) warn(w validation.Warning) {
	p.warnings = append(p.warnings, w)
	if p.sink != nil {
		p.sink(w)
	}
}

// IngestReader feeds every line from r through the pipeline, checking
// for cancellation between lines.
func (p *Pipeline) IngestReader(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		p.IngestLine(scanner.Text())
	}
	return scanner.Err()
}

// IngestFile reads the named log file and feeds its lines through the
// pipeline. An unreadable file is a resource-level failure and is fatal
// to the run, unlike per-line problems.
func (p *Pipeline) IngestFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.NewFileError(path, err)
	}
	defer f.Close()

	if err := p.IngestReader(ctx, f); err != nil {
		if err == context.Canceled || err == context.DeadlineExceeded {
			return err
		}
		return errors.NewFileError(path, err)
	}
	return nil
}

// Warnings returns every warning produced so far, in input order.
func (p *Pipeline) Warnings() []validation.Warning {
	return p.warnings
}

// LastOpen returns the most recent unstopped entry seen during
// ingestion, or nil.
func (p *Pipeline) LastOpen() *orgclock.OpenEntry {
	return p.lastOpen
}

// Report returns counters for the ingestion so far.
func (p *Pipeline) Report() Report {
	return Report{
		Lines:    p.lines,
		Accepted: p.accepted,
		Skipped:  p.skipped,
		Warnings: len(p.warnings),
		Total:    p.acc.Total(),
	}
}
