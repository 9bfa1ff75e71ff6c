package cli

import (
	"context"

	"clock-watch/internal/api"
	"clock-watch/internal/archive"
	"clock-watch/internal/errors"
	"clock-watch/internal/ingest"
	"clock-watch/internal/orgclock"
	"clock-watch/internal/validation"
)

// mockAPI implements the api.API interface for testing command handlers
type mockAPI struct {
	lines         []string
	ingestedPaths []string

	running bool
	elapsed orgclock.Duration
	total   orgclock.Duration
	count   int

	report        ingest.Report
	ingestFileErr error

	sink ingest.WarningSink

	shutdownSummary *api.Summary
	shutdownCalls   int

	archiveEnabled   bool
	archiveIntervals []*archive.Interval
	archiveErr       error
}

// newMockAPI creates a new mock API instance
func newMockAPI() *mockAPI {
	return &mockAPI{
		shutdownSummary: &api.Summary{},
	}
}

func (m *mockAPI) IngestLine(line string) {
	m.lines = append(m.lines, line)
}

func (m *mockAPI) IngestFile(ctx context.Context, path string) (ingest.Report, error) {
	m.ingestedPaths = append(m.ingestedPaths, path)
	if m.ingestFileErr != nil {
		return ingest.Report{}, m.ingestFileErr
	}
	return m.report, nil
}

func (m *mockAPI) SetWarningSink(sink ingest.WarningSink) {
	m.sink = sink
}

func (m *mockAPI) StartSession() error {
	if m.running {
		return errors.NewSessionAlreadyRunningError("mock")
	}
	m.running = true
	return nil
}

func (m *mockAPI) ToggleSession(ctx context.Context) (*orgclock.ClosedInterval, error) {
	if !m.running {
		m.running = true
		return nil, nil
	}
	m.running = false
	m.total += m.elapsed
	m.count++
	return &orgclock.ClosedInterval{Duration: m.elapsed}, nil
}

func (m *mockAPI) SessionRunning() bool {
	return m.running
}

func (m *mockAPI) Elapsed() (orgclock.Duration, error) {
	if !m.running {
		return 0, errors.NewNoActiveSessionError()
	}
	return m.elapsed, nil
}

func (m *mockAPI) Total() orgclock.Duration {
	return m.total
}

func (m *mockAPI) Count() int {
	return m.count
}

func (m *mockAPI) Warnings() []validation.Warning {
	return nil
}

func (m *mockAPI) Shutdown(ctx context.Context) (*api.Summary, error) {
	m.shutdownCalls++
	m.running = false
	return m.shutdownSummary, nil
}

func (m *mockAPI) ArchiveList(ctx context.Context) ([]*archive.Interval, error) {
	if m.archiveErr != nil {
		return nil, m.archiveErr
	}
	if !m.archiveEnabled {
		return nil, errors.NewInvalidInputError("archive", nil, "archiving is not enabled")
	}
	return m.archiveIntervals, nil
}

func (m *mockAPI) ArchiveTotal(ctx context.Context) (orgclock.Duration, error) {
	if m.archiveErr != nil {
		return 0, m.archiveErr
	}
	if !m.archiveEnabled {
		return 0, errors.NewInvalidInputError("archive", nil, "archiving is not enabled")
	}
	var minutes int64
	for _, interval := range m.archiveIntervals {
		minutes += interval.Minutes
	}
	return orgclock.Duration(minutes), nil
}
