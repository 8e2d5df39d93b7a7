package cli

import (
	"context"
	"fmt"

	"attendance-tracker/internal/api"
)

// PauseCommand handles the pause command
type PauseCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewPauseCommand creates a new pause command handler
func NewPauseCommand(app *App) *PauseCommand {
	return &PauseCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the pause command
func (c *PauseCommand) Execute(ctx context.Context, args []string) error {
	employeeID, err := c.app.resolveEmployeeID()
	if err != nil {
		return err
	}

	record, err := c.api.PauseWork(ctx, employeeID, timeNow())
	if err != nil {
		return c.errorHandler.Handle("pause work", err)
	}

	pause := record.PauseIntervals[len(record.PauseIntervals)-1]
	fmt.Printf("Paused work at %s\n", pause.PauseTime)
	return nil
}
