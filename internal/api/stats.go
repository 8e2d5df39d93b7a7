package api

import (
	"context"
	"strings"
	"time"

	"attendance-tracker/internal/domain"
)

// Total aggregates finished work across all of an employee's records.
type Total struct {
	Days         int     `json:"days"`
	Hours        int     `json:"hours"`
	Minutes      int     `json:"minutes"`
	TotalMinutes float64 `json:"total_minutes"`
}

// String returns the total as a human-readable duration.
func (t Total) String() string {
	return domain.FormatDurationMinutes(t.TotalMinutes)
}

// EmployeeStats combines an employee with their activity for one month.
type EmployeeStats struct {
	Employee     *domain.Employee     `json:"employee"`
	RecordCount  int                  `json:"record_count"`
	MonthRecords []*domain.WorkRecord `json:"month_records"`
	MonthMinutes float64              `json:"month_minutes"`
}

// MonthDuration returns the month's worked time as a human-readable duration.
func (s EmployeeStats) MonthDuration() string {
	return domain.FormatDurationMinutes(s.MonthMinutes)
}

// WorkedTotal sums completed work over all records of one employee. Records
// that never produced a computable duration are counted as zero.
func (a *apiImpl) WorkedTotal(ctx context.Context, employeeID string) (*Total, error) {
	records, err := a.ListRecords(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	total := &Total{}
	for _, record := range records {
		hours := record.WorkHours()
		if hours == nil {
			continue
		}
		total.Days++
		total.TotalMinutes += hours.TotalMinutes
	}
	total.Hours = int(total.TotalMinutes) / 60
	total.Minutes = int(total.TotalMinutes) % 60
	return total, nil
}

// MonthlyStats returns per-employee activity for the given month, one entry
// per employee even when the month holds no records for them.
func (a *apiImpl) MonthlyStats(ctx context.Context, year int, month time.Month) ([]*EmployeeStats, error) {
	employees, err := a.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	records, err := a.ListAllRecords(ctx)
	if err != nil {
		return nil, err
	}

	prefix := monthPrefix(year, month)
	byEmployee := make(map[string]*EmployeeStats, len(employees))
	stats := make([]*EmployeeStats, 0, len(employees))
	for _, employee := range employees {
		s := &EmployeeStats{Employee: employee}
		byEmployee[employee.ID] = s
		stats = append(stats, s)
	}

	for _, record := range records {
		s, ok := byEmployee[record.EmployeeID]
		if !ok {
			continue
		}
		s.RecordCount++
		if !strings.HasPrefix(record.Date, prefix) {
			continue
		}
		s.MonthRecords = append(s.MonthRecords, record)
		if hours := record.WorkHours(); hours != nil {
			s.MonthMinutes += hours.TotalMinutes
		}
	}

	return stats, nil
}

// monthPrefix renders a "YYYY-MM-" date prefix for the given month.
func monthPrefix(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-")
}
