package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"clock-watch/internal/config"
	"clock-watch/internal/validation"
)

// setupTestApp builds an App wired to a mock API and in-memory streams
func setupTestApp(t *testing.T, mutate func(*config.Config)) (*App, *mockAPI, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	cfg := config.NewConfig()
	cfg.Display.Color = false
	if mutate != nil {
		mutate(cfg)
	}

	mock := newMockAPI()
	app := NewAppWithAPI(cfg, mock)

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	app.in = strings.NewReader("")
	app.out = out
	app.errOut = errOut

	return app, mock, out, errOut
}

func TestApp_getAPI(t *testing.T) {
	t.Run("should hand back the injected API with the warning sink installed", func(t *testing.T) {
		app, mock, _, _ := setupTestApp(t, nil)

		apiInstance, cleanup, err := app.getAPI()
		defer cleanup()

		assert.NoError(t, err)
		assert.Same(t, mock, apiInstance)
		assert.NotNil(t, mock.sink)
	})
}

func TestApp_printWarning(t *testing.T) {
	t.Run("should write plain warnings to stderr when color is disabled", func(t *testing.T) {
		app, _, out, errOut := setupTestApp(t, nil)

		app.printWarning(validation.Warning{
			Code:    validation.WarningDurationMismatch,
			Message: "inline 2:00 disagrees with computed 1:30",
			Line:    "CLOCK: ...",
		})

		assert.Empty(t, out.String())
		assert.Contains(t, errOut.String(), "warning:")
		assert.Contains(t, errOut.String(), "inline 2:00 disagrees with computed 1:30")
	})
}

func TestApp_Run(t *testing.T) {
	t.Run("should apply global flags onto the configuration", func(t *testing.T) {
		app, mock, _, _ := setupTestApp(t, nil)
		mock.archiveEnabled = true

		err := app.Run(context.Background(), []string{
			"archive", "total",
			"--auto-close=false",
			"--tick-interval", "250ms",
			"--mismatch-tolerance", "3",
		})

		assert.NoError(t, err)
		assert.False(t, app.config.Session.AutoClose)
		assert.Equal(t, "250ms", app.config.Session.TickInterval.String())
		assert.Equal(t, 3, app.config.Session.MismatchTolerance)
	})

	t.Run("should reject an invalid flag combination", func(t *testing.T) {
		app, _, _, _ := setupTestApp(t, nil)

		err := app.Run(context.Background(), []string{"archive", "list", "--tick-interval", "bogus"})

		assert.Error(t, err)
	})
}
