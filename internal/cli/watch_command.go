package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"clock-watch/internal/api"
	"clock-watch/internal/display"
)

// clearLine rewinds the cursor and erases the current tick line.
const clearLine = "\r\x1b[2K"

// WatchCommand handles the watch command
type WatchCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewWatchCommand creates a new watch command handler
func NewWatchCommand(app *App) *WatchCommand {
	return &WatchCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the live watch loop. A ticker drives display refresh, a
// reader goroutine feeds stdin lines over a channel, and all accumulator
// and session state is mutated only from the select loop.
func (c *WatchCommand) Execute(ctx context.Context, args []string) error {
	apiInstance, cleanup, err := c.app.getAPI()
	if err != nil {
		return c.errorHandler.Handle("open archive", err)
	}
	defer cleanup()

	renderer := c.app.getRenderer()
	fmt.Fprintln(c.app.out, renderer.Banner(time.Now()))
	fmt.Fprintln(c.app.out, "Paste CLOCK lines to add them. Enter pauses/resumes. Ctrl-D or \"exit\" finishes.")

	if err := apiInstance.StartSession(); err != nil {
		return c.errorHandler.Handle("start session", err)
	}

	// Cancelled on loop exit so a reader blocked on the send unblocks.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(lines)
		scanner := bufio.NewScanner(c.app.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return scanner.Err()
	})

	ticker := time.NewTicker(c.app.config.Session.TickInterval)
	defer ticker.Stop()

	c.redraw(apiInstance, renderer)

	inputClosed := false
loop:
	for {
		select {
		case <-ctx.Done():
			break loop

		case <-ticker.C:
			c.redraw(apiInstance, renderer)

		case line, ok := <-lines:
			if !ok {
				inputClosed = true
				break loop
			}
			if c.handleLine(ctx, apiInstance, line) {
				break loop
			}
			c.redraw(apiInstance, renderer)
		}
	}

	// The reader goroutine has returned only when it closed the channel;
	// otherwise it is blocked on stdin and exits with the process.
	if inputClosed {
		if err := g.Wait(); err != nil && ctx.Err() == nil {
			fmt.Fprintf(c.app.errOut, "%sinput error: %v\n", clearLine, err)
		}
	}

	summary, err := apiInstance.Shutdown(context.Background())
	if err != nil {
		return c.errorHandler.Handle("finalize session", err)
	}

	fmt.Fprint(c.app.out, clearLine)
	fmt.Fprintln(c.app.out, renderer.Summary(summary))
	return nil
}

// handleLine dispatches one stdin line. Returns true when the loop
// should finish.
func (c *WatchCommand) handleLine(ctx context.Context, apiInstance api.API, line string) bool {
	trimmed := strings.TrimSpace(line)
	switch trimmed {
	case "":
		interval, err := apiInstance.ToggleSession(ctx)
		if err != nil {
			fmt.Fprintf(c.app.errOut, "%serror: %v\n", clearLine, c.errorHandler.HandleSimple(err))
			return false
		}
		if interval != nil {
			fmt.Fprintf(c.app.out, "%sWork paused at %s.\n", clearLine, interval.Duration)
		} else {
			fmt.Fprintf(c.app.out, "%sWorking...\n", clearLine)
		}
		return false

	case "exit":
		return true

	default:
		apiInstance.IngestLine(line)
		return false
	}
}

// redraw repaints the live line in place.
func (c *WatchCommand) redraw(apiInstance api.API, renderer *display.Renderer) {
	var line string
	if apiInstance.SessionRunning() {
		elapsed, err := apiInstance.Elapsed()
		if err != nil {
			return
		}
		line = renderer.TickLine(elapsed, apiInstance.Total())
	} else {
		line = renderer.PausedLine(apiInstance.Total())
	}
	fmt.Fprint(c.app.out, clearLine+line)
}
