package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanWorkRecord scans a single work record from a database row
func ScanWorkRecord(scanner Scanner) (*WorkRecord, error) {
	record := &WorkRecord{}
	var startTime, endTime sql.NullString

	err := scanner.Scan(
		&record.EmployeeID,
		&record.Date,
		&startTime,
		&endTime,
		&record.PauseIntervals,
	)
	if err != nil {
		return nil, err
	}

	if startTime.Valid {
		record.StartTime = &startTime.String
	}
	if endTime.Valid {
		record.EndTime = &endTime.String
	}

	return record, nil
}

// ScanWorkRecords scans multiple work records from database rows
func ScanWorkRecords(rows Rows) ([]*WorkRecord, error) {
	var records []*WorkRecord
	for rows.Next() {
		record, err := ScanWorkRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// ScanEmployee scans a single employee from a database row
func ScanEmployee(scanner Scanner) (*Employee, error) {
	employee := &Employee{}
	var createdAt string

	err := scanner.Scan(&employee.ID, &employee.Name, &employee.Role, &createdAt)
	if err != nil {
		return nil, err
	}

	parsed, err := ParseTimestampFromDB(createdAt)
	if err != nil {
		return nil, err
	}
	employee.CreatedAt = parsed

	return employee, nil
}

// ScanEmployees scans multiple employees from database rows
func ScanEmployees(rows Rows) ([]*Employee, error) {
	var employees []*Employee
	for rows.Next() {
		employee, err := ScanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
