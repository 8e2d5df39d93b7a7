package cli

import (
	"context"
	"fmt"

	"attendance-tracker/internal/api"
	"attendance-tracker/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: at delete <date>")
	}

	employeeID, err := c.app.resolveEmployeeID()
	if err != nil {
		return err
	}

	date := args[0]
	if err := c.api.DeleteRecord(ctx, employeeID, date); err != nil {
		return c.errorHandler.Handle("delete record", err)
	}

	fmt.Printf("Deleted record for %s\n", date)
	return nil
}
