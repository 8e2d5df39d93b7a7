package cli

import (
	"context"
	"fmt"

	"attendance-tracker/internal/api"
	"attendance-tracker/internal/domain"
)

// EndCommand handles the end command
type EndCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewEndCommand creates a new end command handler
func NewEndCommand(app *App) *EndCommand {
	return &EndCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the end command
func (c *EndCommand) Execute(ctx context.Context, args []string) error {
	employeeID, err := c.app.resolveEmployeeID()
	if err != nil {
		return err
	}

	record, err := c.api.EndWork(ctx, employeeID, timeNow())
	if err != nil {
		return c.errorHandler.Handle("end work", err)
	}

	fmt.Printf("Ended work day %s at %s\n", record.Date, *record.EndTime)
	if hours := record.WorkHours(); hours != nil {
		fmt.Printf("Worked %s", domain.FormatDurationMinutes(hours.TotalMinutes))
		if hours.PausedMinutes > 0 {
			fmt.Printf(" (paused %s)", domain.FormatDurationMinutes(hours.PausedMinutes))
		}
		fmt.Println()
	}
	return nil
}
