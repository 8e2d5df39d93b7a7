package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"attendance-tracker/internal/errors"
	"attendance-tracker/internal/logging"
	"attendance-tracker/internal/repository/sqlite/migrations"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Employee operations
	CreateEmployee(ctx context.Context, employee *Employee) error
	GetEmployee(ctx context.Context, id string) (*Employee, error)
	ListEmployees(ctx context.Context) ([]*Employee, error)
	UpdateEmployee(ctx context.Context, employee *Employee) error
	DeleteEmployee(ctx context.Context, id string) error

	// Work record operations
	ListRecords(ctx context.Context, employeeID string) ([]*WorkRecord, error)
	ListAllRecords(ctx context.Context) ([]*WorkRecord, error)
	GetRecordByDate(ctx context.Context, employeeID, date string) (*WorkRecord, error)
	SaveRecord(ctx context.Context, record *WorkRecord) error
	UpdateRecord(ctx context.Context, employeeID, date string, patch RecordPatch) error
	DeleteRecord(ctx context.Context, employeeID, date string) error
	DeleteRecordsByEmployee(ctx context.Context, employeeID string) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, logger: logging.New()}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateEmployee inserts a new employee
func (r *SQLiteRepository) CreateEmployee(ctx context.Context, employee *Employee) error {
	r.logger.WithFields(logrus.Fields{
		"employee_id": employee.ID,
		"role":        employee.Role,
	}).Debug("Creating employee")

	query := `
	INSERT INTO employees (id, name, role, created_at)
	VALUES (?, ?, ?, ?)`

	return Execute(ctx, r.db, query, employee.ID, employee.Name, employee.Role, FormatTimestampForDB(employee.CreatedAt))
}

// GetEmployee retrieves an employee by ID
func (r *SQLiteRepository) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	query := `
	SELECT id, name, role, created_at
	FROM employees
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanEmployee, "employee", id, id)
}

// ListEmployees retrieves all employees ordered by name
func (r *SQLiteRepository) ListEmployees(ctx context.Context) ([]*Employee, error) {
	query := `
	SELECT id, name, role, created_at
	FROM employees
	ORDER BY name ASC`

	return QueryMultiple(ctx, r.db, query, ScanEmployees, "employees")
}

// UpdateEmployee updates an existing employee's name and role
func (r *SQLiteRepository) UpdateEmployee(ctx context.Context, employee *Employee) error {
	query := `
	UPDATE employees
	SET name = ?, role = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "employee", employee.ID, employee.Name, employee.Role, employee.ID)
}

// DeleteEmployee deletes an employee by ID. The employee's work records must
// be removed first; see DeleteRecordsByEmployee.
func (r *SQLiteRepository) DeleteEmployee(ctx context.Context, id string) error {
	r.logger.WithField("employee_id", id).Debug("Deleting employee")

	query := `DELETE FROM employees WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "employee", id, id)
}

// ListRecords retrieves all work records for an employee, newest first
func (r *SQLiteRepository) ListRecords(ctx context.Context, employeeID string) ([]*WorkRecord, error) {
	query := `
	SELECT employee_id, date, start_time, end_time, pause_intervals
	FROM work_records
	WHERE employee_id = ?
	ORDER BY date DESC`

	return QueryMultiple(ctx, r.db, query, ScanWorkRecords, "work records", employeeID)
}

// ListAllRecords retrieves every work record across all employees
func (r *SQLiteRepository) ListAllRecords(ctx context.Context) ([]*WorkRecord, error) {
	query := `
	SELECT employee_id, date, start_time, end_time, pause_intervals
	FROM work_records
	ORDER BY employee_id ASC, date DESC`

	return QueryMultiple(ctx, r.db, query, ScanWorkRecords, "work records")
}

// GetRecordByDate retrieves the work record for one employee and date
func (r *SQLiteRepository) GetRecordByDate(ctx context.Context, employeeID, date string) (*WorkRecord, error) {
	query := `
	SELECT employee_id, date, start_time, end_time, pause_intervals
	FROM work_records
	WHERE employee_id = ? AND date = ?`

	return QuerySingle(ctx, r.db, query, ScanWorkRecord, "work record", employeeID+"/"+date, employeeID, date)
}

// SaveRecord upserts a work record keyed by (employee_id, date). Two
// concurrent writers of the same key race; last write wins.
func (r *SQLiteRepository) SaveRecord(ctx context.Context, record *WorkRecord) error {
	r.logger.WithFields(logrus.Fields{
		"employee_id": record.EmployeeID,
		"date":        record.Date,
	}).Debug("Saving work record")

	query := `
	INSERT INTO work_records (employee_id, date, start_time, end_time, pause_intervals, updated_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT (employee_id, date) DO UPDATE SET
		start_time = excluded.start_time,
		end_time = excluded.end_time,
		pause_intervals = excluded.pause_intervals,
		updated_at = excluded.updated_at`

	return Execute(ctx, r.db, query,
		record.EmployeeID,
		record.Date,
		NullableStringForDB(record.StartTime),
		NullableStringForDB(record.EndTime),
		record.PauseIntervals,
	)
}

// UpdateRecord applies a partial update to an existing work record. Only the
// patch's present fields are written.
func (r *SQLiteRepository) UpdateRecord(ctx context.Context, employeeID, date string, patch RecordPatch) error {
	if patch.IsEmpty() {
		return nil
	}

	var assignments []string
	var args []interface{}

	if patch.StartTime.Set {
		assignments = append(assignments, "start_time = ?")
		args = append(args, NullableStringForDB(patch.StartTime.Value))
	}
	if patch.EndTime.Set {
		assignments = append(assignments, "end_time = ?")
		args = append(args, NullableStringForDB(patch.EndTime.Value))
	}
	if patch.PauseIntervals != nil {
		assignments = append(assignments, "pause_intervals = ?")
		args = append(args, *patch.PauseIntervals)
	}
	assignments = append(assignments, "updated_at = CURRENT_TIMESTAMP")

	query := `
	UPDATE work_records
	SET ` + strings.Join(assignments, ", ") + `
	WHERE employee_id = ? AND date = ?`
	args = append(args, employeeID, date)

	return ExecuteWithRowsAffected(ctx, r.db, query, "work record", employeeID+"/"+date, args...)
}

// DeleteRecord deletes one employee's record for a date
func (r *SQLiteRepository) DeleteRecord(ctx context.Context, employeeID, date string) error {
	query := `DELETE FROM work_records WHERE employee_id = ? AND date = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "work record", employeeID+"/"+date, employeeID, date)
}

// DeleteRecordsByEmployee deletes all records owned by an employee. Deleting
// nothing is not an error; a new employee has no records.
func (r *SQLiteRepository) DeleteRecordsByEmployee(ctx context.Context, employeeID string) error {
	r.logger.WithField("employee_id", employeeID).Debug("Deleting all work records for employee")

	query := `DELETE FROM work_records WHERE employee_id = ?`
	return Execute(ctx, r.db, query, employeeID)
}
