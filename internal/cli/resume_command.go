package cli

import (
	"context"
	"fmt"

	"attendance-tracker/internal/api"
)

// ResumeCommand handles the resume command
type ResumeCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewResumeCommand creates a new resume command handler
func NewResumeCommand(app *App) *ResumeCommand {
	return &ResumeCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the resume command
func (c *ResumeCommand) Execute(ctx context.Context, args []string) error {
	employeeID, err := c.app.resolveEmployeeID()
	if err != nil {
		return err
	}

	record, err := c.api.ResumeWork(ctx, employeeID, timeNow())
	if err != nil {
		return c.errorHandler.Handle("resume work", err)
	}

	pause := record.PauseIntervals[len(record.PauseIntervals)-1]
	fmt.Printf("Resumed work at %s\n", *pause.ResumeTime)
	return nil
}
