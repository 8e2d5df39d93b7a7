package cli

import (
	"context"
	"sort"
	"strings"
	"time"

	"attendance-tracker/internal/api"
	"attendance-tracker/internal/domain"
	"attendance-tracker/internal/errors"
)

// mockAPI implements the API interface for testing with in-memory storage
type mockAPI struct {
	employees map[string]*domain.Employee
	records   map[string]*domain.WorkRecord // keyed by employeeID/date
}

// newMockAPI creates a new mock API instance
func newMockAPI() *mockAPI {
	return &mockAPI{
		employees: make(map[string]*domain.Employee),
		records:   make(map[string]*domain.WorkRecord),
	}
}

func recordKey(employeeID, date string) string {
	return employeeID + "/" + date
}

func (m *mockAPI) AddEmployee(ctx context.Context, name, role string) (*domain.Employee, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.NewInvalidInputError("name", name, "must not be empty")
	}
	if role == "" {
		role = domain.RoleMember
	}
	employee := domain.NewEmployee(name, role)
	m.employees[employee.ID] = employee
	return employee, nil
}

func (m *mockAPI) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	employee, ok := m.employees[id]
	if !ok {
		return nil, errors.NewNotFoundError("employee", id)
	}
	return employee, nil
}

func (m *mockAPI) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	employees := make([]*domain.Employee, 0, len(m.employees))
	for _, employee := range m.employees {
		employees = append(employees, employee)
	}
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].Name < employees[j].Name
	})
	return employees, nil
}

func (m *mockAPI) RenameEmployee(ctx context.Context, id, name string) (*domain.Employee, error) {
	employee, err := m.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	employee.Name = name
	return employee, nil
}

func (m *mockAPI) ChangeEmployeeRole(ctx context.Context, id, role string) (*domain.Employee, error) {
	employee, err := m.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.IsValidRole(role) {
		return nil, errors.NewInvalidInputError("role", role, "unknown role")
	}
	employee.Role = role
	return employee, nil
}

func (m *mockAPI) RemoveEmployee(ctx context.Context, id string) error {
	if _, err := m.GetEmployee(ctx, id); err != nil {
		return err
	}
	delete(m.employees, id)
	for key := range m.records {
		if strings.HasPrefix(key, id+"/") {
			delete(m.records, key)
		}
	}
	return nil
}

func (m *mockAPI) ListRecords(ctx context.Context, employeeID string) ([]*domain.WorkRecord, error) {
	var records []*domain.WorkRecord
	for _, record := range m.records {
		if record.EmployeeID == employeeID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	return records, nil
}

func (m *mockAPI) ListAllRecords(ctx context.Context) ([]*domain.WorkRecord, error) {
	var records []*domain.WorkRecord
	for _, record := range m.records {
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return recordKey(records[i].EmployeeID, records[i].Date) < recordKey(records[j].EmployeeID, records[j].Date)
	})
	return records, nil
}

func (m *mockAPI) GetRecord(ctx context.Context, employeeID, date string) (*domain.WorkRecord, error) {
	record, ok := m.records[recordKey(employeeID, date)]
	if !ok {
		return nil, errors.NewNotFoundError("work record", recordKey(employeeID, date))
	}
	return record, nil
}

func (m *mockAPI) SaveRecord(ctx context.Context, record *domain.WorkRecord) error {
	if _, err := m.GetEmployee(ctx, record.EmployeeID); err != nil {
		return err
	}
	m.records[recordKey(record.EmployeeID, record.Date)] = record
	return nil
}

func (m *mockAPI) EditRecord(ctx context.Context, employeeID, date string, patch domain.RecordPatch) (*domain.WorkRecord, error) {
	record, err := m.GetRecord(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}
	record.ApplyPatch(patch)
	return record, nil
}

func (m *mockAPI) DeleteRecord(ctx context.Context, employeeID, date string) error {
	if _, err := m.GetRecord(ctx, employeeID, date); err != nil {
		return err
	}
	delete(m.records, recordKey(employeeID, date))
	return nil
}

func (m *mockAPI) transition(ctx context.Context, employeeID string, at time.Time, step func(*domain.WorkRecord, string) error) (*domain.WorkRecord, error) {
	if _, err := m.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	date := domain.FormatDate(at)
	record, ok := m.records[recordKey(employeeID, date)]
	if !ok {
		record = domain.NewWorkRecord(employeeID, date)
	}
	if err := step(record, domain.CurrentWallClock(at)); err != nil {
		return nil, err
	}
	m.records[recordKey(employeeID, date)] = record
	return record, nil
}

func (m *mockAPI) StartWork(ctx context.Context, employeeID string, at time.Time) (*domain.WorkRecord, error) {
	return m.transition(ctx, employeeID, at, (*domain.WorkRecord).Start)
}

func (m *mockAPI) PauseWork(ctx context.Context, employeeID string, at time.Time) (*domain.WorkRecord, error) {
	return m.transition(ctx, employeeID, at, (*domain.WorkRecord).Pause)
}

func (m *mockAPI) ResumeWork(ctx context.Context, employeeID string, at time.Time) (*domain.WorkRecord, error) {
	return m.transition(ctx, employeeID, at, (*domain.WorkRecord).Resume)
}

func (m *mockAPI) EndWork(ctx context.Context, employeeID string, at time.Time) (*domain.WorkRecord, error) {
	return m.transition(ctx, employeeID, at, (*domain.WorkRecord).End)
}

func (m *mockAPI) TodayRecord(ctx context.Context, employeeID string, at time.Time) (*domain.WorkRecord, error) {
	if _, err := m.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	date := domain.FormatDate(at)
	if record, ok := m.records[recordKey(employeeID, date)]; ok {
		return record, nil
	}
	return domain.NewWorkRecord(employeeID, date), nil
}

func (m *mockAPI) WorkedTotal(ctx context.Context, employeeID string) (*api.Total, error) {
	records, err := m.ListRecords(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	total := &api.Total{}
	for _, record := range records {
		if hours := record.WorkHours(); hours != nil {
			total.Days++
			total.TotalMinutes += hours.TotalMinutes
		}
	}
	total.Hours = int(total.TotalMinutes) / 60
	total.Minutes = int(total.TotalMinutes) % 60
	return total, nil
}

func (m *mockAPI) MonthlyStats(ctx context.Context, year int, month time.Month) ([]*api.EmployeeStats, error) {
	employees, err := m.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	prefix := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-")

	var stats []*api.EmployeeStats
	for _, employee := range employees {
		s := &api.EmployeeStats{Employee: employee}
		records, _ := m.ListRecords(ctx, employee.ID)
		for _, record := range records {
			s.RecordCount++
			if !strings.HasPrefix(record.Date, prefix) {
				continue
			}
			s.MonthRecords = append(s.MonthRecords, record)
			if hours := record.WorkHours(); hours != nil {
				s.MonthMinutes += hours.TotalMinutes
			}
		}
		stats = append(stats, s)
	}
	return stats, nil
}

// setupTestApp creates an App backed by the mock API with a seeded employee
func setupTestApp() (*App, *mockAPI, *domain.Employee) {
	mock := newMockAPI()
	employee, _ := mock.AddEmployee(context.Background(), "Jane Doe", "member")

	app := NewApp(mock)
	app.SetEmployeeID(employee.ID)
	return app, mock, employee
}
