package api

import (
	"context"
	"time"

	"attendance-tracker/internal/config"
	"attendance-tracker/internal/domain"
	"attendance-tracker/internal/errors"
	"attendance-tracker/internal/repository/sqlite"
	"attendance-tracker/internal/validation"
)

// API defines the interface for all employee and work record operations.
type API interface {
	// Employee operations
	AddEmployee(ctx context.Context, name, role string) (*domain.Employee, error)
	GetEmployee(ctx context.Context, id string) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]*domain.Employee, error)
	RenameEmployee(ctx context.Context, id, name string) (*domain.Employee, error)
	ChangeEmployeeRole(ctx context.Context, id, role string) (*domain.Employee, error)
	RemoveEmployee(ctx context.Context, id string) error

	// Work record operations
	ListRecords(ctx context.Context, employeeID string) ([]*domain.WorkRecord, error)
	ListAllRecords(ctx context.Context) ([]*domain.WorkRecord, error)
	GetRecord(ctx context.Context, employeeID, date string) (*domain.WorkRecord, error)
	SaveRecord(ctx context.Context, record *domain.WorkRecord) error
	EditRecord(ctx context.Context, employeeID, date string, patch domain.RecordPatch) (*domain.WorkRecord, error)
	DeleteRecord(ctx context.Context, employeeID, date string) error

	// Day lifecycle operations
	StartWork(ctx context.Context, employeeID string, at time.Time) (*domain.WorkRecord, error)
	PauseWork(ctx context.Context, employeeID string, at time.Time) (*domain.WorkRecord, error)
	ResumeWork(ctx context.Context, employeeID string, at time.Time) (*domain.WorkRecord, error)
	EndWork(ctx context.Context, employeeID string, at time.Time) (*domain.WorkRecord, error)
	TodayRecord(ctx context.Context, employeeID string, at time.Time) (*domain.WorkRecord, error)

	// Aggregation
	WorkedTotal(ctx context.Context, employeeID string) (*Total, error)
	MonthlyStats(ctx context.Context, year int, month time.Month) ([]*EmployeeStats, error)
}

type apiImpl struct {
	repo              sqlite.Repository
	mapper            *domain.Mapper
	recordValidator   *validation.RecordValidator
	employeeValidator *validation.EmployeeValidator
}

// New creates a new API instance.
func New(repo sqlite.Repository) API {
	return &apiImpl{
		repo:              repo,
		mapper:            domain.NewMapper(),
		recordValidator:   validation.NewRecordValidator(),
		employeeValidator: validation.NewEmployeeValidator(),
	}
}

// NewWithConfig creates a new API instance with configuration-driven validation.
func NewWithConfig(repo sqlite.Repository, cfg *config.Config) API {
	return &apiImpl{
		repo:              repo,
		mapper:            domain.NewMapper(),
		recordValidator:   validation.NewRecordValidator(),
		employeeValidator: validation.NewEmployeeValidatorWithConfig(cfg),
	}
}

// Employee implementations

func (a *apiImpl) AddEmployee(ctx context.Context, name, role string) (*domain.Employee, error) {
	if err := a.employeeValidator.ValidateName(name); err != nil {
		return nil, err
	}
	if role == "" {
		role = domain.RoleMember
	}
	if err := a.employeeValidator.ValidateRole(role); err != nil {
		return nil, err
	}

	employee := domain.NewEmployee(name, role)
	dbEmployee := a.mapper.Employee.ToDatabase(*employee)
	if err := a.repo.CreateEmployee(ctx, &dbEmployee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (a *apiImpl) GetEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	if err := a.employeeValidator.ValidateEmployeeID(id); err != nil {
		return nil, err
	}

	dbEmployee, err := a.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	employee := a.mapper.Employee.FromDatabase(*dbEmployee)
	return &employee, nil
}

func (a *apiImpl) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	dbEmployees, err := a.repo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.Employee.FromDatabaseSlice(dbEmployees), nil
}

func (a *apiImpl) RenameEmployee(ctx context.Context, id, name string) (*domain.Employee, error) {
	if err := a.employeeValidator.ValidateEmployeeID(id); err != nil {
		return nil, err
	}
	if err := a.employeeValidator.ValidateName(name); err != nil {
		return nil, err
	}

	dbEmployee, err := a.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	dbEmployee.Name = name
	if err := a.repo.UpdateEmployee(ctx, dbEmployee); err != nil {
		return nil, err
	}
	employee := a.mapper.Employee.FromDatabase(*dbEmployee)
	return &employee, nil
}

func (a *apiImpl) ChangeEmployeeRole(ctx context.Context, id, role string) (*domain.Employee, error) {
	if err := a.employeeValidator.ValidateEmployeeID(id); err != nil {
		return nil, err
	}
	if err := a.employeeValidator.ValidateRole(role); err != nil {
		return nil, err
	}

	dbEmployee, err := a.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	dbEmployee.Role = role
	if err := a.repo.UpdateEmployee(ctx, dbEmployee); err != nil {
		return nil, err
	}
	employee := a.mapper.Employee.FromDatabase(*dbEmployee)
	return &employee, nil
}

// RemoveEmployee deletes an employee and all of their work records.
// Records go first so the employee row never ends up orphaning them.
func (a *apiImpl) RemoveEmployee(ctx context.Context, id string) error {
	if err := a.employeeValidator.ValidateEmployeeID(id); err != nil {
		return err
	}

	if _, err := a.repo.GetEmployee(ctx, id); err != nil {
		return err
	}
	if err := a.repo.DeleteRecordsByEmployee(ctx, id); err != nil {
		return err
	}
	return a.repo.DeleteEmployee(ctx, id)
}

// Work record implementations

func (a *apiImpl) ListRecords(ctx context.Context, employeeID string) ([]*domain.WorkRecord, error) {
	if err := a.employeeValidator.ValidateEmployeeID(employeeID); err != nil {
		return nil, err
	}

	dbRecords, err := a.repo.ListRecords(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return a.mapper.Record.FromDatabaseSlice(dbRecords), nil
}

func (a *apiImpl) ListAllRecords(ctx context.Context) ([]*domain.WorkRecord, error) {
	dbRecords, err := a.repo.ListAllRecords(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.Record.FromDatabaseSlice(dbRecords), nil
}

func (a *apiImpl) GetRecord(ctx context.Context, employeeID, date string) (*domain.WorkRecord, error) {
	if err := a.recordValidator.ValidateRecordKey(employeeID, date); err != nil {
		return nil, err
	}

	dbRecord, err := a.repo.GetRecordByDate(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}
	record := a.mapper.Record.FromDatabase(*dbRecord)
	return &record, nil
}

func (a *apiImpl) SaveRecord(ctx context.Context, record *domain.WorkRecord) error {
	if err := a.recordValidator.ValidateRecord(record); err != nil {
		return err
	}
	if _, err := a.repo.GetEmployee(ctx, record.EmployeeID); err != nil {
		return err
	}

	dbRecord := a.mapper.Record.ToDatabase(*record)
	return a.repo.SaveRecord(ctx, &dbRecord)
}

func (a *apiImpl) EditRecord(ctx context.Context, employeeID, date string, patch domain.RecordPatch) (*domain.WorkRecord, error) {
	if err := a.recordValidator.ValidateRecordKey(employeeID, date); err != nil {
		return nil, err
	}
	if err := a.recordValidator.ValidatePatch(patch); err != nil {
		return nil, err
	}

	dbPatch := a.mapper.Record.PatchToDatabase(patch)
	if err := a.repo.UpdateRecord(ctx, employeeID, date, dbPatch); err != nil {
		return nil, err
	}
	return a.GetRecord(ctx, employeeID, date)
}

func (a *apiImpl) DeleteRecord(ctx context.Context, employeeID, date string) error {
	if err := a.recordValidator.ValidateRecordKey(employeeID, date); err != nil {
		return err
	}
	return a.repo.DeleteRecord(ctx, employeeID, date)
}

// Day lifecycle implementations

func (a *apiImpl) StartWork(ctx context.Context, employeeID string, at time.Time) (*domain.WorkRecord, error) {
	return a.transition(ctx, employeeID, at, (*domain.WorkRecord).Start)
}

func (a *apiImpl) PauseWork(ctx context.Context, employeeID string, at time.Time) (*domain.WorkRecord, error) {
	return a.transition(ctx, employeeID, at, (*domain.WorkRecord).Pause)
}

func (a *apiImpl) ResumeWork(ctx context.Context, employeeID string, at time.Time) (*domain.WorkRecord, error) {
	return a.transition(ctx, employeeID, at, (*domain.WorkRecord).Resume)
}

func (a *apiImpl) EndWork(ctx context.Context, employeeID string, at time.Time) (*domain.WorkRecord, error) {
	return a.transition(ctx, employeeID, at, (*domain.WorkRecord).End)
}

// TodayRecord returns the record for the employee's current day, or a fresh
// unstarted record when none exists yet. The fresh record is not persisted.
func (a *apiImpl) TodayRecord(ctx context.Context, employeeID string, at time.Time) (*domain.WorkRecord, error) {
	if err := a.employeeValidator.ValidateEmployeeID(employeeID); err != nil {
		return nil, err
	}
	if _, err := a.repo.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	return a.loadOrCreate(ctx, employeeID, domain.FormatDate(at))
}

// transition loads today's record, applies a state change at the given wall
// clock time and persists the result.
func (a *apiImpl) transition(ctx context.Context, employeeID string, at time.Time, step func(*domain.WorkRecord, string) error) (*domain.WorkRecord, error) {
	if err := a.employeeValidator.ValidateEmployeeID(employeeID); err != nil {
		return nil, err
	}
	if _, err := a.repo.GetEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	record, err := a.loadOrCreate(ctx, employeeID, domain.FormatDate(at))
	if err != nil {
		return nil, err
	}
	if err := step(record, domain.CurrentWallClock(at)); err != nil {
		return nil, err
	}

	dbRecord := a.mapper.Record.ToDatabase(*record)
	if err := a.repo.SaveRecord(ctx, &dbRecord); err != nil {
		return nil, err
	}
	return record, nil
}

func (a *apiImpl) loadOrCreate(ctx context.Context, employeeID, date string) (*domain.WorkRecord, error) {
	dbRecord, err := a.repo.GetRecordByDate(ctx, employeeID, date)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return domain.NewWorkRecord(employeeID, date), nil
		}
		return nil, err
	}
	record := a.mapper.Record.FromDatabase(*dbRecord)
	return &record, nil
}
