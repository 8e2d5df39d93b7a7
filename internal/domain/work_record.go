package domain

import (
	"attendance-tracker/internal/errors"
)

// PauseInterval is a single break within a work session. A nil ResumeTime
// means the pause is still open; only the last interval of a record may be
// open.
type PauseInterval struct {
	PauseTime  string  `json:"pause_time"`
	ResumeTime *string `json:"resume_time"`
}

// IsOpen reports whether the pause has not been resumed yet.
func (p PauseInterval) IsOpen() bool {
	return p.ResumeTime == nil
}

// WorkRecord is one employee's attendance record for a single calendar date.
// (EmployeeID, Date) is the natural key. StartTime and EndTime are local
// wall-clock HH:MM:SS strings; nil means not recorded. PauseIntervals are in
// insertion order, which is assumed to be chronological.
type WorkRecord struct {
	EmployeeID     string
	Date           string
	StartTime      *string
	EndTime        *string
	PauseIntervals []PauseInterval
}

// NewWorkRecord creates an empty record for the given employee and date.
func NewWorkRecord(employeeID, date string) *WorkRecord {
	return &WorkRecord{
		EmployeeID: employeeID,
		Date:       date,
	}
}

// RecordState is the lifecycle state of a record, derived from its field
// shape rather than stored.
type RecordState string

const (
	// StateEmpty is the state of a date with no record (or a record with no
	// start time).
	StateEmpty RecordState = "empty"
	// StateWorking means work has started and is neither paused nor ended.
	StateWorking RecordState = "working"
	// StatePaused means the last pause interval is still open.
	StatePaused RecordState = "paused"
	// StateEnded means an end time has been recorded.
	StateEnded RecordState = "ended"
)

// StateOf returns the lifecycle state for a record that may not exist.
func StateOf(r *WorkRecord) RecordState {
	if r == nil {
		return StateEmpty
	}
	return r.State()
}

// State derives the record's lifecycle state.
func (r *WorkRecord) State() RecordState {
	if r.StartTime == nil {
		return StateEmpty
	}
	if r.EndTime != nil {
		return StateEnded
	}
	if n := len(r.PauseIntervals); n > 0 && r.PauseIntervals[n-1].IsOpen() {
		return StatePaused
	}
	return StateWorking
}

// Start begins a new work session at the given wall-clock time. Legal from
// the empty and ended states; a restart discards the previous end time and
// pause history, since a new start means a new session for that date.
func (r *WorkRecord) Start(now string) error {
	switch r.State() {
	case StateWorking, StatePaused:
		return errors.NewConflictError("start work", "work is already in progress")
	}
	r.StartTime = &now
	r.EndTime = nil
	r.PauseIntervals = nil
	return nil
}

// Pause opens a new pause interval at the given wall-clock time. Legal only
// while working.
func (r *WorkRecord) Pause(now string) error {
	switch r.State() {
	case StateEmpty:
		return errors.NewConflictError("pause work", "work has not started")
	case StatePaused:
		return errors.NewConflictError("pause work", "work is already paused")
	case StateEnded:
		return errors.NewConflictError("pause work", "work has already ended")
	}
	r.PauseIntervals = append(r.PauseIntervals, PauseInterval{PauseTime: now})
	return nil
}

// Resume closes the open pause interval at the given wall-clock time. Legal
// only while paused.
func (r *WorkRecord) Resume(now string) error {
	if r.State() != StatePaused {
		return errors.NewConflictError("resume work", "work is not paused")
	}
	r.PauseIntervals[len(r.PauseIntervals)-1].ResumeTime = &now
	return nil
}

// End records the end of the work session at the given wall-clock time. If
// the record is paused, the open interval is closed at the end time first: a
// record must never persist with an end time and a dangling open pause.
func (r *WorkRecord) End(now string) error {
	switch r.State() {
	case StateEmpty:
		return errors.NewConflictError("end work", "work has not started")
	case StateEnded:
		return errors.NewConflictError("end work", "work has already ended")
	case StatePaused:
		r.PauseIntervals[len(r.PauseIntervals)-1].ResumeTime = &now
	}
	r.EndTime = &now
	return nil
}

// WorkHours computes the record's net worked duration. Nil when the record
// is incomplete or inconsistent.
func (r *WorkRecord) WorkHours() *WorkHours {
	return CalculateWorkHours(r.StartTime, r.EndTime, r.PauseIntervals)
}

// TimePatch is an optional wall-clock field in a RecordPatch. The field is
// applied only when Set is true; a nil Value then clears the field.
type TimePatch struct {
	Set   bool
	Value *string
}

// SetTo returns a TimePatch that overwrites the field with the given time.
func SetTo(value string) TimePatch {
	return TimePatch{Set: true, Value: &value}
}

// Clear returns a TimePatch that clears the field.
func Clear() TimePatch {
	return TimePatch{Set: true}
}

// RecordPatch is a partial update to a record. Absent fields preserve the
// stored value. Patches bypass the lifecycle transition guards; the duration
// calculator tolerates whatever shape results.
type RecordPatch struct {
	StartTime      TimePatch
	EndTime        TimePatch
	PauseIntervals *[]PauseInterval
}

// IsEmpty reports whether the patch changes nothing.
func (p RecordPatch) IsEmpty() bool {
	return !p.StartTime.Set && !p.EndTime.Set && p.PauseIntervals == nil
}

// ApplyPatch overwrites the record's fields with the patch's present values.
func (r *WorkRecord) ApplyPatch(p RecordPatch) {
	if p.StartTime.Set {
		r.StartTime = p.StartTime.Value
	}
	if p.EndTime.Set {
		r.EndTime = p.EndTime.Value
	}
	if p.PauseIntervals != nil {
		r.PauseIntervals = *p.PauseIntervals
	}
}
