package cli

import (
	"context"
	"fmt"

	"clock-watch/internal/orgclock"
)

// ArchiveCommand handles the archive subcommands
type ArchiveCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewArchiveCommand creates a new archive command handler
func NewArchiveCommand(app *App) *ArchiveCommand {
	return &ArchiveCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// ExecuteList prints every recorded interval, oldest first.
func (c *ArchiveCommand) ExecuteList(ctx context.Context) error {
	apiInstance, cleanup, err := c.app.getAPI()
	if err != nil {
		return c.errorHandler.Handle("open archive", err)
	}
	defer cleanup()

	intervals, err := apiInstance.ArchiveList(ctx)
	if err != nil {
		return c.errorHandler.Handle("list archive", err)
	}

	if len(intervals) == 0 {
		fmt.Fprintln(c.app.out, "No recorded intervals")
		return nil
	}

	for _, interval := range intervals {
		iv := interval.ToInterval()
		fmt.Fprintf(c.app.out, "%s  [%s]--[%s]  %s\n",
			orgclock.Duration(interval.Minutes), iv.Start, iv.Stop, interval.Source)
	}
	return nil
}

// ExecuteTotal prints the sum of every recorded interval.
func (c *ArchiveCommand) ExecuteTotal(ctx context.Context) error {
	apiInstance, cleanup, err := c.app.getAPI()
	if err != nil {
		return c.errorHandler.Handle("open archive", err)
	}
	defer cleanup()

	total, err := apiInstance.ArchiveTotal(ctx)
	if err != nil {
		return c.errorHandler.Handle("total archive", err)
	}

	fmt.Fprintf(c.app.out, "Total archived time: %s\n", total)
	return nil
}
