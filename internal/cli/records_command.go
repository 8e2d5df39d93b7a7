package cli

import (
	"context"
	"fmt"

	"attendance-tracker/internal/api"
	"attendance-tracker/internal/domain"
)

// RecordsCommand handles the records command
type RecordsCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewRecordsCommand creates a new records command handler
func NewRecordsCommand(app *App) *RecordsCommand {
	return &RecordsCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the records command
func (c *RecordsCommand) Execute(ctx context.Context, args []string) error {
	employeeID, err := c.app.resolveEmployeeID()
	if err != nil {
		return err
	}

	records, err := c.api.ListRecords(ctx, employeeID)
	if err != nil {
		return c.errorHandler.Handle("list records", err)
	}

	if len(records) == 0 {
		fmt.Println("No records found")
		return nil
	}

	placeholder := c.app.placeholder()
	fmt.Printf("%-12s %-10s %-10s %-10s %s\n", "Date", "Start", "End", "Paused", "Worked")
	for _, record := range records {
		worked := placeholder
		paused := placeholder
		if hours := record.WorkHours(); hours != nil {
			worked = domain.FormatDurationMinutes(hours.TotalMinutes)
			if hours.PausedMinutes > 0 {
				paused = domain.FormatDurationMinutes(hours.PausedMinutes)
			}
		}
		fmt.Printf("%-12s %-10s %-10s %-10s %s\n",
			record.Date,
			orPlaceholder(record.StartTime, placeholder),
			orPlaceholder(record.EndTime, placeholder),
			paused,
			worked)
	}
	return nil
}
