package cli

import (
	"context"
	"fmt"
)

// IngestCommand handles the ingest command
type IngestCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewIngestCommand creates a new ingest command handler
func NewIngestCommand(app *App) *IngestCommand {
	return &IngestCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the ingest command
func (c *IngestCommand) Execute(ctx context.Context, args []string) error {
	apiInstance, cleanup, err := c.app.getAPI()
	if err != nil {
		return c.errorHandler.Handle("open archive", err)
	}
	defer cleanup()

	path := args[0]
	report, err := apiInstance.IngestFile(ctx, path)
	if err != nil {
		return c.errorHandler.Handle(fmt.Sprintf("ingest %s", path), err)
	}

	fmt.Fprintf(c.app.out, "Read %d lines: %d entries accepted, %d skipped, %d warnings\n",
		report.Lines, report.Accepted, report.Skipped, report.Warnings)
	fmt.Fprintf(c.app.out, "Total clocked time: %s\n", report.Total)
	return nil
}
