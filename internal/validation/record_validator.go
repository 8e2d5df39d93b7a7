package validation

import (
	"fmt"

	"attendance-tracker/internal/domain"
)

// RecordValidator provides validation for WorkRecord-related operations
type RecordValidator struct {
	validator *Validator
}

// NewRecordValidator creates a new record validator
func NewRecordValidator() *RecordValidator {
	return &RecordValidator{
		validator: NewValidator(),
	}
}

// ValidateRecordKey validates the (employee, date) key of a record operation
func (rv *RecordValidator) ValidateRecordKey(employeeID, date string) error {
	validationError := NewValidationError()

	if employeeID == "" {
		validationError.AddRequiredError("employee_id")
	} else if !rv.validator.IsValidEmployeeID(employeeID) {
		validationError.AddInvalidFormatError("employee_id", employeeID, "UUID")
	}

	if date == "" {
		validationError.AddRequiredError("date")
	} else if !rv.validator.IsValidDate(date) {
		validationError.AddInvalidFormatError("date", date, domain.DateFormat)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateRecord validates a complete record for a manual save. Transition
// guards do not apply here; this checks shape, not state.
func (rv *RecordValidator) ValidateRecord(record *domain.WorkRecord) error {
	if record == nil {
		validationError := NewValidationError()
		validationError.AddRequiredError("record")
		return validationError
	}

	validationError := NewValidationError()
	if keyErr := rv.ValidateRecordKey(record.EmployeeID, record.Date); keyErr != nil {
		if keyValidationErr, ok := keyErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, keyValidationErr.Errors...)
		}
	}

	rv.validateTimes(validationError, record.StartTime, record.EndTime)
	rv.validatePauseIntervals(validationError, record.PauseIntervals)

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidatePatch validates the present fields of a partial update
func (rv *RecordValidator) ValidatePatch(patch domain.RecordPatch) error {
	validationError := NewValidationError()

	if patch.IsEmpty() {
		validationError.AddInvalidValueError("patch", nil, "must change at least one field")
		return validationError
	}

	if patch.StartTime.Set && patch.StartTime.Value != nil && !rv.validator.IsValidClockTime(*patch.StartTime.Value) {
		validationError.AddInvalidFormatError("start_time", *patch.StartTime.Value, "HH:MM:SS")
	}
	if patch.EndTime.Set && patch.EndTime.Value != nil && !rv.validator.IsValidClockTime(*patch.EndTime.Value) {
		validationError.AddInvalidFormatError("end_time", *patch.EndTime.Value, "HH:MM:SS")
	}
	if patch.PauseIntervals != nil {
		rv.validatePauseIntervals(validationError, *patch.PauseIntervals)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// validateTimes checks the start/end pair when both are present
func (rv *RecordValidator) validateTimes(validationError *ValidationError, startTime, endTime *string) {
	if startTime != nil && !rv.validator.IsValidClockTime(*startTime) {
		validationError.AddInvalidFormatError("start_time", *startTime, "HH:MM:SS")
		return
	}
	if endTime != nil && !rv.validator.IsValidClockTime(*endTime) {
		validationError.AddInvalidFormatError("end_time", *endTime, "HH:MM:SS")
		return
	}
	if startTime != nil && endTime != nil && !rv.validator.IsValidClockOrder(*startTime, *endTime) {
		validationError.AddInvalidRangeError("end_time", *endTime, "end time must not come before start time")
	}
}

// validatePauseIntervals checks interval shape: valid clock times, resume not
// before pause, and at most one open interval which must be last.
func (rv *RecordValidator) validatePauseIntervals(validationError *ValidationError, intervals []domain.PauseInterval) {
	for i, interval := range intervals {
		field := fmt.Sprintf("pause_intervals[%d]", i)

		if !rv.validator.IsValidClockTime(interval.PauseTime) {
			validationError.AddInvalidFormatError(field+".pause_time", interval.PauseTime, "HH:MM:SS")
			continue
		}

		if interval.ResumeTime == nil {
			if i != len(intervals)-1 {
				validationError.AddInvalidValueError(field, nil, "only the last pause interval may be open")
			}
			continue
		}

		if !rv.validator.IsValidClockTime(*interval.ResumeTime) {
			validationError.AddInvalidFormatError(field+".resume_time", *interval.ResumeTime, "HH:MM:SS")
			continue
		}

		if !rv.validator.IsValidClockOrder(interval.PauseTime, *interval.ResumeTime) {
			validationError.AddInvalidRangeError(field, *interval.ResumeTime, "resume time must not come before pause time")
		}
	}
}
