package domain

import (
	"encoding/json"

	"attendance-tracker/internal/repository/sqlite"
)

// RecordMapper handles conversion between domain and database WorkRecord
// models, including the pause-interval JSON column.
type RecordMapper struct{}

// NewRecordMapper creates a new RecordMapper instance.
func NewRecordMapper() *RecordMapper {
	return &RecordMapper{}
}

// ToDatabase converts a domain WorkRecord to a database WorkRecord.
func (m *RecordMapper) ToDatabase(record WorkRecord) sqlite.WorkRecord {
	return sqlite.WorkRecord{
		EmployeeID:     record.EmployeeID,
		Date:           record.Date,
		StartTime:      record.StartTime,
		EndTime:        record.EndTime,
		PauseIntervals: MarshalPauseIntervals(record.PauseIntervals),
	}
}

// FromDatabase converts a database WorkRecord to a domain WorkRecord.
func (m *RecordMapper) FromDatabase(dbRecord sqlite.WorkRecord) WorkRecord {
	return WorkRecord{
		EmployeeID:     dbRecord.EmployeeID,
		Date:           dbRecord.Date,
		StartTime:      dbRecord.StartTime,
		EndTime:        dbRecord.EndTime,
		PauseIntervals: UnmarshalPauseIntervals(dbRecord.PauseIntervals),
	}
}

// FromDatabaseSlice converts a slice of database WorkRecords to domain WorkRecords.
func (m *RecordMapper) FromDatabaseSlice(dbRecords []*sqlite.WorkRecord) []*WorkRecord {
	records := make([]*WorkRecord, len(dbRecords))
	for i, dbRecord := range dbRecords {
		record := m.FromDatabase(*dbRecord)
		records[i] = &record
	}
	return records
}

// PatchToDatabase converts a domain RecordPatch to a database RecordPatch.
func (m *RecordMapper) PatchToDatabase(patch RecordPatch) sqlite.RecordPatch {
	dbPatch := sqlite.RecordPatch{
		StartTime: sqlite.NullableField{Set: patch.StartTime.Set, Value: patch.StartTime.Value},
		EndTime:   sqlite.NullableField{Set: patch.EndTime.Set, Value: patch.EndTime.Value},
	}
	if patch.PauseIntervals != nil {
		encoded := MarshalPauseIntervals(*patch.PauseIntervals)
		dbPatch.PauseIntervals = &encoded
	}
	return dbPatch
}

// MarshalPauseIntervals encodes pause intervals for column storage. An empty
// list is stored as an empty JSON array, never NULL.
func MarshalPauseIntervals(intervals []PauseInterval) string {
	if len(intervals) == 0 {
		return "[]"
	}
	encoded, err := json.Marshal(intervals)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

// UnmarshalPauseIntervals decodes a pause-interval column value. Corrupt or
// empty column data degrades to an empty list rather than failing the read.
func UnmarshalPauseIntervals(data string) []PauseInterval {
	if data == "" {
		return nil
	}
	var intervals []PauseInterval
	if err := json.Unmarshal([]byte(data), &intervals); err != nil {
		return nil
	}
	return intervals
}

// EmployeeMapper handles conversion between domain and database Employee models.
type EmployeeMapper struct{}

// NewEmployeeMapper creates a new EmployeeMapper instance.
func NewEmployeeMapper() *EmployeeMapper {
	return &EmployeeMapper{}
}

// ToDatabase converts a domain Employee to a database Employee.
func (m *EmployeeMapper) ToDatabase(employee Employee) sqlite.Employee {
	return sqlite.Employee{
		ID:        employee.ID,
		Name:      employee.Name,
		Role:      employee.Role,
		CreatedAt: employee.CreatedAt,
	}
}

// FromDatabase converts a database Employee to a domain Employee.
func (m *EmployeeMapper) FromDatabase(dbEmployee sqlite.Employee) Employee {
	return Employee{
		ID:        dbEmployee.ID,
		Name:      dbEmployee.Name,
		Role:      dbEmployee.Role,
		CreatedAt: dbEmployee.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Employees to domain Employees.
func (m *EmployeeMapper) FromDatabaseSlice(dbEmployees []*sqlite.Employee) []*Employee {
	employees := make([]*Employee, len(dbEmployees))
	for i, dbEmployee := range dbEmployees {
		employee := m.FromDatabase(*dbEmployee)
		employees[i] = &employee
	}
	return employees
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Record   *RecordMapper
	Employee *EmployeeMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Record:   NewRecordMapper(),
		Employee: NewEmployeeMapper(),
	}
}
