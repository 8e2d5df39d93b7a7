package sqlite

import "time"

// Employee is an employees table row.
type Employee struct {
	ID        string
	Name      string
	Role      string
	CreatedAt time.Time
}

// WorkRecord is a work_records table row. (EmployeeID, Date) is the primary
// key. Times are wall-clock HH:MM:SS strings; pointers allow NULL values.
// PauseIntervals holds the pause list as a JSON document, matching the
// column's storage format.
type WorkRecord struct {
	EmployeeID     string
	Date           string
	StartTime      *string
	EndTime        *string
	PauseIntervals string
}

// NullableField is an optional column value in a RecordPatch. The column is
// written only when Set is true; a nil Value then writes NULL.
type NullableField struct {
	Set   bool
	Value *string
}

// RecordPatch is a partial update to a work_records row. Absent fields keep
// the stored value.
type RecordPatch struct {
	StartTime      NullableField
	EndTime        NullableField
	PauseIntervals *string
}

// IsEmpty reports whether the patch writes no columns.
func (p RecordPatch) IsEmpty() bool {
	return !p.StartTime.Set && !p.EndTime.Set && p.PauseIntervals == nil
}
