package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"attendance-tracker/internal/api"
	"attendance-tracker/internal/errors"
	"attendance-tracker/internal/export"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.NewInvalidInputError("command", "export", "usage: at export format=csv [all]")
	}

	// Parse format option
	format := args[0]
	if !strings.HasPrefix(format, "format=") {
		return errors.NewInvalidInputError("format", format, "invalid format option")
	}

	format = strings.TrimPrefix(format, "format=")
	switch format {
	case "csv":
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}

	if len(args) > 1 && args[1] == "all" {
		return c.exportAll(ctx)
	}
	return c.exportEmployee(ctx)
}

// exportEmployee writes one employee's records as CSV to stdout
func (c *ExportCommand) exportEmployee(ctx context.Context) error {
	employeeID, err := c.app.resolveEmployeeID()
	if err != nil {
		return err
	}

	records, err := c.api.ListRecords(ctx, employeeID)
	if err != nil {
		return c.errorHandler.Handle("export records", err)
	}

	writer := export.NewCSVWriter(os.Stdout)
	if err := writer.WriteRecords(records); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	fmt.Println()
	return nil
}

// exportAll writes every employee's records as CSV to stdout
func (c *ExportCommand) exportAll(ctx context.Context) error {
	employees, err := c.api.ListEmployees(ctx)
	if err != nil {
		return c.errorHandler.Handle("export records", err)
	}

	groups := make([]export.EmployeeRecords, 0, len(employees))
	for _, employee := range employees {
		records, err := c.api.ListRecords(ctx, employee.ID)
		if err != nil {
			return c.errorHandler.Handle("export records", err)
		}
		groups = append(groups, export.EmployeeRecords{Employee: employee, Records: records})
	}

	writer := export.NewCSVWriter(os.Stdout)
	if err := writer.WriteAllEmployees(groups); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	fmt.Println()
	return nil
}
