package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"attendance-tracker/internal/api"
	"attendance-tracker/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "at",
		Short: "A command-line attendance tracking application",
		Long: `Attendance Tracker (at) is a command-line application for tracking work days.

FEATURES:
  • Start, pause, resume and end a work day per employee
  • One record per employee per day, re-saveable via manual edits
  • List records with computed work and pause durations
  • Export records to CSV (Excel-friendly, UTF-8 BOM)
  • Per-employee totals and per-month statistics
  • Manage employees with admin and member roles

EXAMPLES:
  at --employee <id> start                 # Start today's work day
  at --employee <id> pause                 # Pause the running day
  at --employee <id> resume                # Resume after a pause
  at --employee <id> end                   # End the day (auto-resumes if paused)
  at --employee <id> status                # Show today's record
  at --employee <id> records               # List all records
  at --employee <id> add 2026-01-15 09:00 17:45
  at --employee <id> edit 2026-01-15 end=18:00
  at --employee <id> export format=csv > records.csv
  at export format=csv all > everyone.csv
  at summary 2026-01                       # Monthly stats for all employees
  at employee add "Jane Doe" admin         # Create an employee

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    AT_DB_DIR                              Database directory (default: ~/.at)
    AT_DB_FILENAME                         Database filename (default: at.db)
    AT_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    AT_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Display Configuration:
    AT_DISPLAY_PLACEHOLDER                 Missing value text (default: -)
    AT_DISPLAY_DATE_ONLY                   Show date only (default: false)

  Validation Configuration:
    AT_VALIDATION_NAME_MIN                 Min employee name length (default: 1)
    AT_VALIDATION_NAME_MAX                 Max employee name length (default: 255)

  Application Configuration:
    AT_APP_TIMEOUT                         Application timeout (default: 60s)
    AT_APP_VERBOSE                         Enable verbose output (default: false)

  Selection:
    AT_EMPLOYEE                            Default employee id for record commands

GETTING HELP:
  at [command] --help                      # Get help for any specific command
  at completion bash                       # Generate bash completion script
  at completion zsh                        # Generate zsh completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before any command runs
			return root.getConfigFromFlags()
		},
	}

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Employee selection
	flags.String("employee", "", "Employee id for record commands (overrides AT_EMPLOYEE)")

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides AT_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides AT_DB_FILENAME)")

	// Display configuration
	flags.String("placeholder", "", "Missing value text (overrides AT_DISPLAY_PLACEHOLDER)")
	flags.Bool("date-only", false, "Show date only in displays (overrides AT_DISPLAY_DATE_ONLY)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides AT_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides AT_APP_VERBOSE)")
}

// newApp builds a command App honoring the --employee flag
func (r *RootCommand) newApp() *App {
	app := NewAppWithConfig(r.api, r.config)
	if employee, _ := r.cmd.PersistentFlags().GetString("employee"); employee != "" {
		app.SetEmployeeID(employee)
	}
	return app
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Start command
	startCmd := &cobra.Command{
		Use:   "start",
		Short: "Start today's work day",
		Long:  "Start tracking today's work day. Restarting an ended day clears its end time and pause history.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewStartCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Pause command
	pauseCmd := &cobra.Command{
		Use:   "pause",
		Short: "Pause the running work day",
		Long:  "Open a pause interval on today's work day. Only a working day can be paused.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewPauseCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Resume command
	resumeCmd := &cobra.Command{
		Use:   "resume",
		Short: "Resume the paused work day",
		Long:  "Close the open pause interval on today's work day. Only a paused day can be resumed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewResumeCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// End command
	endCmd := &cobra.Command{
		Use:   "end",
		Short: "End today's work day",
		Long:  "End today's work day. A paused day is resumed at the end time first, so the open pause closes cleanly.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewEndCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Status command
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's record",
		Long:  "Display today's work record: state, start and end times, pauses and the computed work duration.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewStatusCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Records command
	recordsCmd := &cobra.Command{
		Use:   "records",
		Short: "List work records",
		Long:  "List the selected employee's work records, most recent first, with computed durations.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewRecordsCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Add command
	addCmd := &cobra.Command{
		Use:   "add <date> <start> [end]",
		Short: "Add or replace a record manually",
		Long: `Add a work record for any date, replacing an existing record for that day.

Examples:
  at add 2026-01-15 09:00
  at add 2026-01-15 09:00 17:45`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewAddCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Edit command
	editCmd := &cobra.Command{
		Use:   "edit <date> [start=HH:MM:SS|-] [end=HH:MM:SS|-]",
		Short: "Edit a record's times",
		Long: `Edit the start or end time of an existing record. A "-" value clears the field.

Examples:
  at edit 2026-01-15 end=18:00
  at edit 2026-01-15 start=08:30 end=-`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewEditCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Delete command
	deleteCmd := &cobra.Command{
		Use:   "delete <date>",
		Short: "Delete a record",
		Long:  "Delete the selected employee's record for one date. This operation cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewDeleteCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Export command
	exportCmd := &cobra.Command{
		Use:   "export format=csv [all]",
		Short: "Export records in specified format",
		Long: `Export work records in the specified format.

Supported formats:
  csv - Comma-separated values with a UTF-8 byte order mark

Examples:
  at export format=csv          # Selected employee's records
  at export format=csv all      # Every employee's records`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewExportCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Summary command
	summaryCmd := &cobra.Command{
		Use:   "summary [YYYY-MM]",
		Short: "Show worked totals",
		Long: `Show the selected employee's all-time total, or per-employee statistics for one month.

Examples:
  at summary            # All-time total for the selected employee
  at summary 2026-01    # January 2026 statistics for every employee`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewSummaryCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Employee command
	employeeCmd := &cobra.Command{
		Use:   "employee add|list|rename|role|delete",
		Short: "Manage employees",
		Long: `Manage employees and their roles.

Examples:
  at employee add "Jane Doe"            # Create a member
  at employee add "Jane Doe" admin      # Create an admin
  at employee list
  at employee rename <id> "Jane Smith"
  at employee role <id> admin
  at employee delete <id>               # Removes the employee and all their records`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewEmployeeCommand(r.newApp()).Execute(ctx, args)
		},
	}

	// Add all subcommands to root
	r.cmd.AddCommand(
		startCmd,
		pauseCmd,
		resumeCmd,
		endCmd,
		statusCmd,
		recordsCmd,
		addCmd,
		editCmd,
		deleteCmd,
		exportCmd,
		summaryCmd,
		employeeCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second // Default timeout
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	// Database configuration
	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}

	// Display configuration
	if placeholder, _ := flags.GetString("placeholder"); placeholder != "" {
		r.config.Display.Placeholder = placeholder
	}
	if dateOnly, _ := flags.GetBool("date-only"); dateOnly {
		r.config.Display.DateOnly = dateOnly
	}

	// Application configuration
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}

// PreRun sets up configuration overrides from flags before running commands
func (r *RootCommand) PreRun() error {
	return r.getConfigFromFlags()
}
