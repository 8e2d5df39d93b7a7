package cli

import (
	"context"
	"fmt"
	"strings"

	"attendance-tracker/internal/api"
	"attendance-tracker/internal/domain"
	"attendance-tracker/internal/errors"
)

// EditCommand handles the edit command
type EditCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the edit command. Fields are given as key=value pairs; a "-"
// value clears the field.
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "edit", "usage: at edit <date> [start=HH:MM:SS|-] [end=HH:MM:SS|-]")
	}

	employeeID, err := c.app.resolveEmployeeID()
	if err != nil {
		return err
	}

	date := args[0]
	patch, err := c.parsePatch(args[1:])
	if err != nil {
		return err
	}

	record, err := c.api.EditRecord(ctx, employeeID, date, patch)
	if err != nil {
		return c.errorHandler.Handle("edit record", err)
	}

	fmt.Printf("Updated record for %s\n", record.Date)
	return nil
}

// parsePatch builds a record patch from key=value arguments
func (c *EditCommand) parsePatch(args []string) (domain.RecordPatch, error) {
	var patch domain.RecordPatch

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return patch, errors.NewInvalidInputError("field", arg, "expected key=value")
		}

		var field domain.TimePatch
		if value == "-" {
			field = domain.Clear()
		} else {
			field = domain.SetTo(value)
		}

		switch key {
		case "start":
			patch.StartTime = field
		case "end":
			patch.EndTime = field
		default:
			return patch, errors.NewInvalidInputError("field", key, "unknown field, expected start or end")
		}
	}

	return patch, nil
}
