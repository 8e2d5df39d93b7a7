package cli

import (
	"context"
	"fmt"

	"attendance-tracker/internal/api"
	"attendance-tracker/internal/domain"
)

// StatusCommand handles the status command
type StatusCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context, args []string) error {
	employeeID, err := c.app.resolveEmployeeID()
	if err != nil {
		return err
	}

	record, err := c.api.TodayRecord(ctx, employeeID, timeNow())
	if err != nil {
		return c.errorHandler.Handle("show status", err)
	}

	return c.showRecord(record)
}

// showRecord displays the state of one day's record
func (c *StatusCommand) showRecord(record *domain.WorkRecord) error {
	placeholder := c.app.placeholder()

	fmt.Printf("Date:    %s\n", record.Date)
	fmt.Printf("State:   %s\n", record.State())
	fmt.Printf("Started: %s\n", orPlaceholder(record.StartTime, placeholder))
	fmt.Printf("Ended:   %s\n", orPlaceholder(record.EndTime, placeholder))

	for _, pause := range record.PauseIntervals {
		fmt.Printf("Pause:   %s - %s\n", pause.PauseTime, orPlaceholder(pause.ResumeTime, placeholder))
	}

	if hours := record.WorkHours(); hours != nil {
		fmt.Printf("Worked:  %s\n", domain.FormatDurationMinutes(hours.TotalMinutes))
		if hours.PausedMinutes > 0 {
			fmt.Printf("Paused:  %s\n", domain.FormatDurationMinutes(hours.PausedMinutes))
		}
	}
	return nil
}

// orPlaceholder renders an optional clock time for display
func orPlaceholder(t *string, placeholder string) string {
	if t == nil || *t == "" {
		return placeholder
	}
	return *t
}
