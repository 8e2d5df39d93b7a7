package cli

import (
	"context"
	"fmt"
	"time"

	"attendance-tracker/internal/api"
	"attendance-tracker/internal/errors"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the summary command. Without arguments it totals the selected
// employee's work; with a YYYY-MM argument it shows per-employee monthly
// statistics.
func (c *SummaryCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.showEmployeeTotal(ctx)
	}
	if len(args) == 1 {
		return c.showMonthlyStats(ctx, args[0])
	}
	return errors.NewInvalidInputError("command", "summary", "usage: at summary [YYYY-MM]")
}

// showEmployeeTotal displays the all-time total for one employee
func (c *SummaryCommand) showEmployeeTotal(ctx context.Context) error {
	employeeID, err := c.app.resolveEmployeeID()
	if err != nil {
		return err
	}

	total, err := c.api.WorkedTotal(ctx, employeeID)
	if err != nil {
		return c.errorHandler.Handle("summarize records", err)
	}

	fmt.Printf("Days worked: %d\n", total.Days)
	fmt.Printf("Total:       %s\n", total)
	return nil
}

// showMonthlyStats displays per-employee statistics for one month
func (c *SummaryCommand) showMonthlyStats(ctx context.Context, monthArg string) error {
	month, err := time.Parse("2006-01", monthArg)
	if err != nil {
		return errors.NewInvalidInputError("month", monthArg, "expected YYYY-MM")
	}

	stats, err := c.api.MonthlyStats(ctx, month.Year(), month.Month())
	if err != nil {
		return c.errorHandler.Handle("summarize records", err)
	}

	if len(stats) == 0 {
		fmt.Println("No employees found")
		return nil
	}

	fmt.Printf("%-30s %-8s %-8s %s\n", "Employee", "Records", "Days", "Worked")
	for _, s := range stats {
		fmt.Printf("%-30s %-8d %-8d %s\n",
			s.Employee.Name, s.RecordCount, len(s.MonthRecords), s.MonthDuration())
	}
	return nil
}
