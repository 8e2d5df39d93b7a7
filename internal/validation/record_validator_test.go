package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendance-tracker/internal/domain"
)

const testEmployeeID = "53b5a8a6-30ca-4a2e-9f86-736df4d60a10"

func strPtr(s string) *string {
	return &s
}

func TestRecordValidator_ValidateRecordKey(t *testing.T) {
	rv := NewRecordValidator()

	tests := []struct {
		name       string
		employeeID string
		date       string
		wantErr    bool
		field      string
	}{
		{
			name:       "accepts valid key",
			employeeID: testEmployeeID,
			date:       "2026-01-15",
		},
		{
			name:    "requires employee id",
			date:    "2026-01-15",
			wantErr: true,
			field:   "employee_id",
		},
		{
			name:       "rejects malformed employee id",
			employeeID: "emp-1",
			date:       "2026-01-15",
			wantErr:    true,
			field:      "employee_id",
		},
		{
			name:       "requires date",
			employeeID: testEmployeeID,
			wantErr:    true,
			field:      "date",
		},
		{
			name:       "rejects malformed date",
			employeeID: testEmployeeID,
			date:       "15/01/2026",
			wantErr:    true,
			field:      "date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rv.ValidateRecordKey(tt.employeeID, tt.date)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.NotEmpty(t, validationErr.GetFieldErrors(tt.field))
		})
	}
}

func TestRecordValidator_ValidateRecord(t *testing.T) {
	rv := NewRecordValidator()

	valid := func() *domain.WorkRecord {
		return &domain.WorkRecord{
			EmployeeID: testEmployeeID,
			Date:       "2026-01-15",
			StartTime:  strPtr("09:00:00"),
			EndTime:    strPtr("17:00:00"),
			PauseIntervals: []domain.PauseInterval{
				{PauseTime: "12:00:00", ResumeTime: strPtr("12:30:00")},
			},
		}
	}

	t.Run("accepts a complete record", func(t *testing.T) {
		assert.NoError(t, rv.ValidateRecord(valid()))
	})

	t.Run("accepts a record without end time", func(t *testing.T) {
		record := valid()
		record.EndTime = nil
		assert.NoError(t, rv.ValidateRecord(record))
	})

	t.Run("rejects nil record", func(t *testing.T) {
		assert.Error(t, rv.ValidateRecord(nil))
	})

	t.Run("rejects malformed start time", func(t *testing.T) {
		record := valid()
		record.StartTime = strPtr("9am")
		err := rv.ValidateRecord(record)
		require.Error(t, err)
		validationErr := err.(*ValidationError)
		assert.NotEmpty(t, validationErr.GetFieldErrors("start_time"))
	})

	t.Run("rejects end before start", func(t *testing.T) {
		record := valid()
		record.StartTime = strPtr("17:00:00")
		record.EndTime = strPtr("09:00:00")
		err := rv.ValidateRecord(record)
		require.Error(t, err)
		validationErr := err.(*ValidationError)
		assert.NotEmpty(t, validationErr.GetFieldErrors("end_time"))
	})

	t.Run("rejects resume before pause", func(t *testing.T) {
		record := valid()
		record.PauseIntervals = []domain.PauseInterval{
			{PauseTime: "13:00:00", ResumeTime: strPtr("12:00:00")},
		}
		err := rv.ValidateRecord(record)
		require.Error(t, err)
		validationErr := err.(*ValidationError)
		assert.NotEmpty(t, validationErr.GetFieldErrors("pause_intervals[0]"))
	})

	t.Run("rejects open pause that is not last", func(t *testing.T) {
		record := valid()
		record.PauseIntervals = []domain.PauseInterval{
			{PauseTime: "12:00:00"},
			{PauseTime: "14:00:00", ResumeTime: strPtr("14:10:00")},
		}
		err := rv.ValidateRecord(record)
		require.Error(t, err)
	})

	t.Run("accepts trailing open pause", func(t *testing.T) {
		record := valid()
		record.EndTime = nil
		record.PauseIntervals = []domain.PauseInterval{
			{PauseTime: "12:00:00", ResumeTime: strPtr("12:30:00")},
			{PauseTime: "14:00:00"},
		}
		assert.NoError(t, rv.ValidateRecord(record))
	})
}

func TestRecordValidator_ValidatePatch(t *testing.T) {
	rv := NewRecordValidator()

	t.Run("rejects empty patch", func(t *testing.T) {
		err := rv.ValidatePatch(domain.RecordPatch{})
		require.Error(t, err)
		validationErr := err.(*ValidationError)
		assert.NotEmpty(t, validationErr.GetFieldErrors("patch"))
	})

	t.Run("accepts clearing a field", func(t *testing.T) {
		assert.NoError(t, rv.ValidatePatch(domain.RecordPatch{EndTime: domain.Clear()}))
	})

	t.Run("accepts setting valid times", func(t *testing.T) {
		patch := domain.RecordPatch{
			StartTime: domain.SetTo("08:00:00"),
			EndTime:   domain.SetTo("16:00:00"),
		}
		assert.NoError(t, rv.ValidatePatch(patch))
	})

	t.Run("rejects malformed time value", func(t *testing.T) {
		err := rv.ValidatePatch(domain.RecordPatch{EndTime: domain.SetTo("late")})
		require.Error(t, err)
		validationErr := err.(*ValidationError)
		assert.NotEmpty(t, validationErr.GetFieldErrors("end_time"))
	})

	t.Run("validates replacement pause intervals", func(t *testing.T) {
		intervals := []domain.PauseInterval{
			{PauseTime: "14:00:00", ResumeTime: strPtr("13:00:00")},
		}
		err := rv.ValidatePatch(domain.RecordPatch{PauseIntervals: &intervals})
		require.Error(t, err)
	})
}
