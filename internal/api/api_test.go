package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clock-watch/internal/config"
	"clock-watch/internal/errors"
	"clock-watch/internal/session"
)

type testClock struct {
	current time.Time
}

func (tc *testClock) now() time.Time          { return tc.current }
func (tc *testClock) advance(d time.Duration) { tc.current = tc.current.Add(d) }

func setupAPI(t *testing.T, mutate func(*config.Config)) (API, *testClock) {
	t.Helper()
	cfg := config.NewConfig()
	if mutate != nil {
		mutate(cfg)
	}

	tc := &testClock{current: time.Date(2024, 5, 5, 10, 0, 0, 0, time.Local)}
	a := NewWithClock(cfg, nil, session.NewClockWithNow(tc.now))
	return a, tc
}

func setupArchivedAPI(t *testing.T) (API, *testClock) {
	t.Helper()
	cfg := config.NewConfig()
	repo, err := config.CreateTestArchive()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	tc := &testClock{current: time.Date(2024, 5, 5, 10, 0, 0, 0, time.Local)}
	return NewWithClock(cfg, repo, session.NewClockWithNow(tc.now)), tc
}

func TestAPI_IngestLine(t *testing.T) {
	t.Run("should accumulate pasted closed entries", func(t *testing.T) {
		a, _ := setupAPI(t, nil)

		a.IngestLine("CLOCK: [2024-05-05 Sun 10:00]--[2024-05-05 Sun 11:30] =>  1:30")
		a.IngestLine("not a clock line")
		a.IngestLine("CLOCK: [2024-05-05 Sun 12:00]--[2024-05-05 Sun 12:15] =>  0:15")

		assert.Equal(t, "1:45", a.Total().String())
		assert.Equal(t, 2, a.Count())
		assert.Empty(t, a.Warnings())
	})

	t.Run("should re-anchor the session on an open entry", func(t *testing.T) {
		a, tc := setupAPI(t, nil)
		require.NoError(t, a.StartSession())

		tc.advance(30 * time.Minute)
		a.IngestLine("CLOCK: [2024-05-05 Sun 10:15]")

		elapsed, err := a.Elapsed()
		require.NoError(t, err)
		assert.Equal(t, "0:15", elapsed.String())
	})
}

func TestAPI_ToggleSession(t *testing.T) {
	t.Run("should start when no session is running", func(t *testing.T) {
		a, _ := setupAPI(t, nil)

		interval, err := a.ToggleSession(context.Background())

		require.NoError(t, err)
		assert.Nil(t, interval)
		assert.True(t, a.SessionRunning())
	})

	t.Run("should pause the running session into the accumulator", func(t *testing.T) {
		a, tc := setupAPI(t, nil)
		require.NoError(t, a.StartSession())

		tc.advance(25 * time.Minute)
		interval, err := a.ToggleSession(context.Background())

		require.NoError(t, err)
		require.NotNil(t, interval)
		assert.Equal(t, "0:25", interval.Duration.String())
		assert.Equal(t, "0:25", a.Total().String())
		assert.Equal(t, 1, a.Count())
		assert.False(t, a.SessionRunning(), "toggle pauses until the next toggle")
	})

	t.Run("should resume after a pause", func(t *testing.T) {
		a, tc := setupAPI(t, nil)
		require.NoError(t, a.StartSession())

		tc.advance(25 * time.Minute)
		_, err := a.ToggleSession(context.Background())
		require.NoError(t, err)

		tc.advance(5 * time.Minute)
		interval, err := a.ToggleSession(context.Background())
		require.NoError(t, err)
		assert.Nil(t, interval)
		assert.True(t, a.SessionRunning())

		tc.advance(10 * time.Minute)
		_, err = a.ToggleSession(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "0:35", a.Total().String())
		assert.Equal(t, 2, a.Count())
	})

	t.Run("should accumulate sub-minute sessions as zero", func(t *testing.T) {
		a, tc := setupAPI(t, nil)
		require.NoError(t, a.StartSession())

		tc.advance(10 * time.Second)
		interval, err := a.ToggleSession(context.Background())

		require.NoError(t, err)
		require.NotNil(t, interval)
		assert.Equal(t, "0:00", interval.Duration.String())
		assert.Equal(t, 1, a.Count())
	})
}

func TestAPI_Shutdown(t *testing.T) {
	t.Run("should auto-close the running session by default", func(t *testing.T) {
		a, tc := setupAPI(t, nil)
		require.NoError(t, a.StartSession())
		tc.advance(90 * time.Minute)

		summary, err := a.Shutdown(context.Background())

		require.NoError(t, err)
		assert.True(t, summary.AutoClosed)
		assert.Equal(t, "1:30", summary.Total.String())
		assert.Equal(t, 1, summary.Count)
		assert.False(t, a.SessionRunning())
	})

	t.Run("should discard the running session when auto-close is disabled", func(t *testing.T) {
		a, tc := setupAPI(t, func(c *config.Config) { c.Session.AutoClose = false })
		require.NoError(t, a.StartSession())
		tc.advance(90 * time.Minute)

		summary, err := a.Shutdown(context.Background())

		require.NoError(t, err)
		assert.False(t, summary.AutoClosed)
		assert.Equal(t, "0:00", summary.Total.String())
		assert.Zero(t, summary.Count)
	})

	t.Run("should merge ingested and session totals", func(t *testing.T) {
		a, tc := setupAPI(t, nil)
		a.IngestLine("CLOCK: [2024-05-05 Sun 08:00]--[2024-05-05 Sun 09:00] =>  1:00")
		require.NoError(t, a.StartSession())
		tc.advance(30 * time.Minute)

		summary, err := a.Shutdown(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "1:30", summary.Total.String())
		assert.Equal(t, 2, summary.Count)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		a, tc := setupAPI(t, nil)
		require.NoError(t, a.StartSession())
		tc.advance(time.Minute)

		first, err := a.Shutdown(context.Background())
		require.NoError(t, err)
		second, err := a.Shutdown(context.Background())
		require.NoError(t, err)

		assert.Equal(t, first.Total, second.Total)
		assert.Equal(t, first.Count, second.Count)
	})
}

func TestAPI_StartSession(t *testing.T) {
	t.Run("should reject a second start", func(t *testing.T) {
		a, _ := setupAPI(t, nil)
		require.NoError(t, a.StartSession())

		err := a.StartSession()

		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.CodeSessionAlreadyRunning))
	})
}

func TestAPI_Archive(t *testing.T) {
	t.Run("should mirror accepted intervals into the ledger", func(t *testing.T) {
		a, _ := setupArchivedAPI(t)

		a.IngestLine("CLOCK: [2024-05-05 Sun 10:00]--[2024-05-05 Sun 11:30] =>  1:30")
		a.IngestLine("CLOCK: [2024-05-05 Sun 11:00]--[2024-05-05 Sun 10:00]") // rejected

		intervals, err := a.ArchiveList(context.Background())
		require.NoError(t, err)
		require.Len(t, intervals, 1)
		assert.Equal(t, SourcePaste, intervals[0].Source)

		total, err := a.ArchiveTotal(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "1:30", total.String())
	})

	t.Run("should label auto-closed sessions as session intervals", func(t *testing.T) {
		a, tc := setupArchivedAPI(t)
		require.NoError(t, a.StartSession())
		tc.advance(10 * time.Minute)

		_, err := a.Shutdown(context.Background())
		require.NoError(t, err)

		intervals, err := a.ArchiveList(context.Background())
		require.NoError(t, err)
		require.Len(t, intervals, 1)
		assert.Equal(t, SourceSession, intervals[0].Source)
	})

	t.Run("should reject archive queries when archiving is disabled", func(t *testing.T) {
		a, _ := setupAPI(t, nil)

		_, err := a.ArchiveList(context.Background())

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	})
}
