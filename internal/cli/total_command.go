package cli

import (
	"context"
	"fmt"
)

// TotalCommand handles the total command
type TotalCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewTotalCommand creates a new total command handler
func NewTotalCommand(app *App) *TotalCommand {
	return &TotalCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the total command. The accumulated total is the only
// stdout output, so it can feed scripts; warnings still reach stderr.
func (c *TotalCommand) Execute(ctx context.Context, args []string) error {
	apiInstance, cleanup, err := c.app.getAPI()
	if err != nil {
		return c.errorHandler.Handle("open archive", err)
	}
	defer cleanup()

	path := args[0]
	report, err := apiInstance.IngestFile(ctx, path)
	if err != nil {
		return c.errorHandler.Handle(fmt.Sprintf("total %s", path), err)
	}

	fmt.Fprintln(c.app.out, report.Total)
	return nil
}
