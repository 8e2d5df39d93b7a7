package cli

import (
	"context"
	"fmt"

	"attendance-tracker/internal/api"
)

// StartCommand handles the start command
type StartCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the start command
func (c *StartCommand) Execute(ctx context.Context, args []string) error {
	employeeID, err := c.app.resolveEmployeeID()
	if err != nil {
		return err
	}

	record, err := c.api.StartWork(ctx, employeeID, timeNow())
	if err != nil {
		return c.errorHandler.Handle("start work", err)
	}

	fmt.Printf("Started work day %s at %s\n", record.Date, *record.StartTime)
	return nil
}
