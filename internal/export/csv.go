// Package export renders work records as CSV for spreadsheet use.
//
// Output is deliberately plain: a UTF-8 BOM so spreadsheet tools pick the
// right encoding, comma-joined fields without quoting, and "-" placeholders
// for values that are absent or not computable. Field values never contain
// commas, so the format stays round-trippable.
package export

import (
	"io"
	"strings"

	"attendance-tracker/internal/domain"
)

const (
	// ByteOrderMark prefixes every export so Excel detects UTF-8.
	ByteOrderMark = "\uFEFF"

	// Placeholder marks missing or uncomputable fields.
	Placeholder = "-"
)

var recordHeaders = []string{"Date", "Start", "End", "Paused", "Worked"}

// CSVWriter renders work records to an io.Writer in CSV form.
type CSVWriter struct {
	w io.Writer
}

// NewCSVWriter creates a CSV writer targeting w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: w}
}

// WriteRecords writes one employee's records, one row per day.
func (c *CSVWriter) WriteRecords(records []*domain.WorkRecord) error {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, recordHeaders)
	for _, record := range records {
		rows = append(rows, recordRow(record))
	}
	return c.write(rows)
}

// EmployeeRecords pairs an employee with their records for a combined export.
type EmployeeRecords struct {
	Employee *domain.Employee
	Records  []*domain.WorkRecord
}

// WriteAllEmployees writes records for every employee, the employee name
// leading each row.
func (c *CSVWriter) WriteAllEmployees(groups []EmployeeRecords) error {
	rows := [][]string{append([]string{"Employee"}, recordHeaders...)}
	for _, group := range groups {
		for _, record := range group.Records {
			rows = append(rows, append([]string{group.Employee.Name}, recordRow(record)...))
		}
	}
	return c.write(rows)
}

func (c *CSVWriter) write(rows [][]string) error {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = strings.Join(row, ",")
	}
	_, err := io.WriteString(c.w, ByteOrderMark+strings.Join(lines, "\n"))
	return err
}

func recordRow(record *domain.WorkRecord) []string {
	hours := record.WorkHours()

	worked := Placeholder
	paused := Placeholder
	if hours != nil {
		worked = domain.FormatDurationMinutes(hours.TotalMinutes)
		if hours.PausedMinutes > 0 {
			paused = domain.FormatDurationMinutes(hours.PausedMinutes)
		}
	}

	return []string{
		record.Date,
		timeOrPlaceholder(record.StartTime),
		timeOrPlaceholder(record.EndTime),
		paused,
		worked,
	}
}

func timeOrPlaceholder(t *string) string {
	if t == nil || *t == "" {
		return Placeholder
	}
	return *t
}
