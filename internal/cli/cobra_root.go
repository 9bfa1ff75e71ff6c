package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{
		app: app,
	}

	root.cmd = &cobra.Command{
		Use:   "cw",
		Short: "A terminal clock watcher for Org-mode time logs",
		Long: `Clock Watch (cw) accumulates time from Org-mode CLOCK entries and keeps
a live ticking clock for the current work session.

FEATURES:
  • Paste CLOCK lines into the live display to add them to the running total
  • Press Enter to pause or resume the live session clock
  • Ingest whole log files and report totals with per-line warnings
  • Re-anchor the session from an unstopped CLOCK entry in the input
  • Optional SQLite ledger recording every accepted interval
  • Fully configurable via environment variables and command-line flags

EXAMPLES:
  cw                                       # Start the live watch (same as cw watch)
  cw watch --tick-interval 500ms           # Faster display refresh
  cw ingest worklog.org                    # Total a log file, with warnings
  cw total worklog.org                     # Print only the total
  cw archive list                          # Show the recorded ledger
  cw archive total                         # Sum the recorded ledger

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Session Configuration:
    CW_TICK_INTERVAL                       Display refresh interval (default: 1s)
    CW_SESSION_AUTO_CLOSE                  Close the running session on exit (default: true)
    CW_MISMATCH_TOLERANCE                  Inline duration tolerance in minutes (default: 0)

  Display Configuration:
    CW_DISPLAY_COLOR                       Enable colored output (default: true)
    CW_TIME_DISPLAY_FORMAT                 Banner time format (default: 15:04:05)

  Archive Configuration:
    CW_ARCHIVE_ENABLED                     Record accepted intervals (default: false)
    CW_ARCHIVE_DIR                         Ledger directory (default: ~/.cw)
    CW_ARCHIVE_FILENAME                    Ledger filename (default: cw.db)
    CW_ARCHIVE_QUERY_TIMEOUT               Query timeout (default: 10s)
    CW_ARCHIVE_WRITE_TIMEOUT               Write timeout (default: 5s)

  Application Configuration:
    CW_APP_TIMEOUT                         Timeout for non-interactive commands (default: 60s)
    CW_APP_VERBOSE                         Enable verbose output (default: false)

CLOCK LINE FORMAT:
  CLOCK: [2024-05-05 Sun 10:00]--[2024-05-05 Sun 11:30] =>  1:30
  CLOCK: [2024-05-05 Sun 12:00]                              # unstopped, re-anchors the session

GETTING HELP:
  cw [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare cw is the watch command
			return NewWatchCommand(root.app).Execute(cmd.Context(), args)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command with the given arguments
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Session configuration
	flags.Duration("tick-interval", 0, "Display refresh interval (overrides CW_TICK_INTERVAL)")
	flags.Int("mismatch-tolerance", -1, "Inline duration tolerance in minutes (overrides CW_MISMATCH_TOLERANCE)")
	flags.Bool("auto-close", true, "Close the running session on exit (overrides CW_SESSION_AUTO_CLOSE)")

	// Display configuration
	flags.Bool("color", true, "Enable colored output (overrides CW_DISPLAY_COLOR)")
	flags.String("time-format", "", "Banner time format (overrides CW_TIME_DISPLAY_FORMAT)")

	// Archive configuration
	flags.Bool("archive", false, "Record accepted intervals in the ledger (overrides CW_ARCHIVE_ENABLED)")
	flags.String("archive-dir", "", "Ledger directory (overrides CW_ARCHIVE_DIR)")
	flags.String("archive-filename", "", "Ledger filename (overrides CW_ARCHIVE_FILENAME)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Timeout for non-interactive commands (overrides CW_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides CW_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the live ticking display",
		Long: `Run the live ticking display.

The clock starts immediately. Paste CLOCK lines to add them to the running
total, press Enter on an empty line to pause or resume the session, and end
input (Ctrl-D) or type "exit" to finish. The running session is closed into
the total on exit unless --auto-close=false.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewWatchCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	ingestCmd := &cobra.Command{
		Use:   "ingest <file>",
		Short: "Total the clock entries of a log file",
		Long: `Run a log file through the parser and print per-line warnings, counters
and the accumulated total. Lines without a CLOCK prefix are skipped;
malformed CLOCK lines produce warnings and are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.app.config.Application.Timeout)
			defer cancel()

			return NewIngestCommand(r.app).Execute(ctx, args)
		},
	}

	totalCmd := &cobra.Command{
		Use:   "total <file>",
		Short: "Print only the accumulated total for a log file",
		Long:  "Quiet ingest: the accumulated total is the only stdout output. Warnings still go to stderr.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.app.config.Application.Timeout)
			defer cancel()

			return NewTotalCommand(r.app).Execute(ctx, args)
		},
	}

	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "Query the interval ledger",
		Long:  "Query the SQLite ledger of recorded intervals. Requires archiving to be enabled.",
	}

	archiveListCmd := &cobra.Command{
		Use:   "list",
		Short: "List every recorded interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.app.config.Application.Timeout)
			defer cancel()

			return NewArchiveCommand(r.app).ExecuteList(ctx)
		},
	}

	archiveTotalCmd := &cobra.Command{
		Use:   "total",
		Short: "Sum every recorded interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.app.config.Application.Timeout)
			defer cancel()

			return NewArchiveCommand(r.app).ExecuteTotal(ctx)
		},
	}

	archiveCmd.AddCommand(archiveListCmd, archiveTotalCmd)
	r.cmd.AddCommand(watchCmd, ingestCmd, totalCmd, archiveCmd)
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.app.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	// Session configuration
	if tickInterval, _ := flags.GetDuration("tick-interval"); tickInterval > 0 {
		r.app.config.Session.TickInterval = tickInterval
	}
	if tolerance, _ := flags.GetInt("mismatch-tolerance"); tolerance >= 0 && flags.Changed("mismatch-tolerance") {
		r.app.config.Session.MismatchTolerance = tolerance
	}
	if flags.Changed("auto-close") {
		autoClose, _ := flags.GetBool("auto-close")
		r.app.config.Session.AutoClose = autoClose
	}

	// Display configuration
	if flags.Changed("color") {
		colorEnabled, _ := flags.GetBool("color")
		r.app.config.Display.Color = colorEnabled
	}
	if timeFormat, _ := flags.GetString("time-format"); timeFormat != "" {
		r.app.config.Display.TimeFormat = timeFormat
	}

	// Archive configuration
	if flags.Changed("archive") {
		enabled, _ := flags.GetBool("archive")
		r.app.config.Archive.Enabled = enabled
	}
	if dir, _ := flags.GetString("archive-dir"); dir != "" {
		r.app.config.Archive.Dir = dir
	}
	if filename, _ := flags.GetString("archive-filename"); filename != "" {
		r.app.config.Archive.Filename = filename
	}

	// Application configuration
	if timeout, _ := flags.GetDuration("app-timeout"); timeout > 0 {
		r.app.config.Application.Timeout = timeout
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		r.app.config.Application.Verbose = verbose
	}

	return r.app.config.Validate()
}
