package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"clock-watch/internal/errors"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	t.Run("should use the structured user message with operation context", func(t *testing.T) {
		err := eh.Handle("ingest worklog.org", errors.NewFileError("worklog.org", nil))

		assert.Contains(t, err.Error(), "failed to ingest worklog.org")
	})

	t.Run("should wrap unknown errors", func(t *testing.T) {
		cause := fmt.Errorf("boom")

		err := eh.Handle("do the thing", cause)

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "failed to do the thing")
	})
}

func TestErrorHandler_Predicates(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
	}{
		{
			name:      "should classify session errors",
			err:       errors.NewSessionAlreadyRunningError("2024-05-05 Sun 10:00"),
			predicate: eh.IsSessionError,
		},
		{
			name:      "should classify file errors",
			err:       errors.NewFileError("missing.org", nil),
			predicate: eh.IsFileError,
		},
		{
			name:      "should classify database errors",
			err:       errors.NewDatabaseError("insert interval", fmt.Errorf("locked")),
			predicate: eh.IsDatabaseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.predicate(tt.err))
			assert.False(t, tt.predicate(fmt.Errorf("plain")))
		})
	}
}

func TestErrorHandler_GetErrorCode(t *testing.T) {
	t.Run("should expose the structured code", func(t *testing.T) {
		eh := NewErrorHandler()

		code := eh.GetErrorCode(errors.NewNoActiveSessionError())

		assert.Equal(t, errors.CodeNoActiveSession, code)
	})
}
