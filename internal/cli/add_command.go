package cli

import (
	"context"
	"fmt"

	"attendance-tracker/internal/api"
	"attendance-tracker/internal/domain"
	"attendance-tracker/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command. An existing record for the same day is
// replaced.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errors.NewInvalidInputError("command", "add", "usage: at add <date> <start> [end]")
	}

	employeeID, err := c.app.resolveEmployeeID()
	if err != nil {
		return err
	}

	record := domain.NewWorkRecord(employeeID, args[0])
	startTime := args[1]
	record.StartTime = &startTime
	if len(args) == 3 {
		endTime := args[2]
		record.EndTime = &endTime
	}

	if err := c.api.SaveRecord(ctx, record); err != nil {
		return c.errorHandler.Handle("add record", err)
	}

	fmt.Printf("Saved record for %s\n", record.Date)
	return nil
}
