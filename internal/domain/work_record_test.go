package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendance-tracker/internal/errors"
)

func TestWorkRecord_State(t *testing.T) {
	tests := []struct {
		name     string
		record   *WorkRecord
		expected RecordState
	}{
		{
			name:     "nil record is empty",
			record:   nil,
			expected: StateEmpty,
		},
		{
			name:     "record without start is empty",
			record:   NewWorkRecord("emp", "2026-01-15"),
			expected: StateEmpty,
		},
		{
			name: "started record is working",
			record: &WorkRecord{
				StartTime: strPtr("09:00:00"),
			},
			expected: StateWorking,
		},
		{
			name: "open last pause means paused",
			record: &WorkRecord{
				StartTime:      strPtr("09:00:00"),
				PauseIntervals: []PauseInterval{{PauseTime: "12:00:00"}},
			},
			expected: StatePaused,
		},
		{
			name: "closed pauses mean working",
			record: &WorkRecord{
				StartTime: strPtr("09:00:00"),
				PauseIntervals: []PauseInterval{
					{PauseTime: "12:00:00", ResumeTime: strPtr("12:30:00")},
				},
			},
			expected: StateWorking,
		},
		{
			name: "end time wins over open pause",
			record: &WorkRecord{
				StartTime:      strPtr("09:00:00"),
				EndTime:        strPtr("17:00:00"),
				PauseIntervals: []PauseInterval{{PauseTime: "12:00:00"}},
			},
			expected: StateEnded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StateOf(tt.record))
		})
	}
}

func TestWorkRecord_Start(t *testing.T) {
	t.Run("starts an empty record", func(t *testing.T) {
		record := NewWorkRecord("emp", "2026-01-15")
		err := record.Start("09:00:00")
		require.NoError(t, err)
		require.NotNil(t, record.StartTime)
		assert.Equal(t, "09:00:00", *record.StartTime)
		assert.Equal(t, StateWorking, record.State())
	})

	t.Run("restart clears end time and pause history", func(t *testing.T) {
		record := &WorkRecord{
			StartTime: strPtr("08:00:00"),
			EndTime:   strPtr("12:00:00"),
			PauseIntervals: []PauseInterval{
				{PauseTime: "10:00:00", ResumeTime: strPtr("10:15:00")},
			},
		}
		err := record.Start("13:00:00")
		require.NoError(t, err)
		assert.Equal(t, "13:00:00", *record.StartTime)
		assert.Nil(t, record.EndTime)
		assert.Empty(t, record.PauseIntervals)
	})

	t.Run("rejects start while working", func(t *testing.T) {
		record := &WorkRecord{StartTime: strPtr("09:00:00")}
		err := record.Start("10:00:00")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConflict))
		assert.Equal(t, "09:00:00", *record.StartTime)
	})

	t.Run("rejects start while paused", func(t *testing.T) {
		record := &WorkRecord{
			StartTime:      strPtr("09:00:00"),
			PauseIntervals: []PauseInterval{{PauseTime: "12:00:00"}},
		}
		err := record.Start("13:00:00")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConflict))
	})
}

func TestWorkRecord_Pause(t *testing.T) {
	t.Run("opens a pause interval while working", func(t *testing.T) {
		record := &WorkRecord{StartTime: strPtr("09:00:00")}
		err := record.Pause("12:00:00")
		require.NoError(t, err)
		require.Len(t, record.PauseIntervals, 1)
		assert.Equal(t, "12:00:00", record.PauseIntervals[0].PauseTime)
		assert.True(t, record.PauseIntervals[0].IsOpen())
		assert.Equal(t, StatePaused, record.State())
	})

	t.Run("rejects pause before start", func(t *testing.T) {
		record := NewWorkRecord("emp", "2026-01-15")
		err := record.Pause("12:00:00")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConflict))
	})

	t.Run("rejects pause while already paused", func(t *testing.T) {
		record := &WorkRecord{
			StartTime:      strPtr("09:00:00"),
			PauseIntervals: []PauseInterval{{PauseTime: "12:00:00"}},
		}
		err := record.Pause("12:30:00")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConflict))
		assert.Len(t, record.PauseIntervals, 1)
	})

	t.Run("rejects pause after end", func(t *testing.T) {
		record := &WorkRecord{
			StartTime: strPtr("09:00:00"),
			EndTime:   strPtr("17:00:00"),
		}
		err := record.Pause("18:00:00")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConflict))
	})
}

func TestWorkRecord_Resume(t *testing.T) {
	t.Run("closes the open pause interval", func(t *testing.T) {
		record := &WorkRecord{
			StartTime:      strPtr("09:00:00"),
			PauseIntervals: []PauseInterval{{PauseTime: "12:00:00"}},
		}
		err := record.Resume("12:30:00")
		require.NoError(t, err)
		require.NotNil(t, record.PauseIntervals[0].ResumeTime)
		assert.Equal(t, "12:30:00", *record.PauseIntervals[0].ResumeTime)
		assert.Equal(t, StateWorking, record.State())
	})

	t.Run("rejects resume while working", func(t *testing.T) {
		record := &WorkRecord{StartTime: strPtr("09:00:00")}
		err := record.Resume("12:30:00")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConflict))
	})

	t.Run("rejects resume before start", func(t *testing.T) {
		record := NewWorkRecord("emp", "2026-01-15")
		err := record.Resume("12:30:00")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConflict))
	})
}

func TestWorkRecord_End(t *testing.T) {
	t.Run("ends a working record", func(t *testing.T) {
		record := &WorkRecord{StartTime: strPtr("09:00:00")}
		err := record.End("17:00:00")
		require.NoError(t, err)
		require.NotNil(t, record.EndTime)
		assert.Equal(t, "17:00:00", *record.EndTime)
		assert.Equal(t, StateEnded, record.State())
	})

	t.Run("ending while paused closes the pause at the end time", func(t *testing.T) {
		record := &WorkRecord{
			StartTime:      strPtr("09:00:00"),
			PauseIntervals: []PauseInterval{{PauseTime: "16:00:00"}},
		}
		err := record.End("17:00:00")
		require.NoError(t, err)
		require.NotNil(t, record.PauseIntervals[0].ResumeTime)
		assert.Equal(t, "17:00:00", *record.PauseIntervals[0].ResumeTime)
		assert.Equal(t, "17:00:00", *record.EndTime)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		record := NewWorkRecord("emp", "2026-01-15")
		err := record.End("17:00:00")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConflict))
	})

	t.Run("rejects double end", func(t *testing.T) {
		record := &WorkRecord{
			StartTime: strPtr("09:00:00"),
			EndTime:   strPtr("17:00:00"),
		}
		err := record.End("18:00:00")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConflict))
		assert.Equal(t, "17:00:00", *record.EndTime)
	})
}

func TestWorkRecord_ApplyPatch(t *testing.T) {
	base := func() *WorkRecord {
		return &WorkRecord{
			EmployeeID: "emp",
			Date:       "2026-01-15",
			StartTime:  strPtr("09:00:00"),
			EndTime:    strPtr("17:00:00"),
			PauseIntervals: []PauseInterval{
				{PauseTime: "12:00:00", ResumeTime: strPtr("12:30:00")},
			},
		}
	}

	t.Run("empty patch changes nothing", func(t *testing.T) {
		record := base()
		patch := RecordPatch{}
		assert.True(t, patch.IsEmpty())
		record.ApplyPatch(patch)
		assert.Equal(t, base(), record)
	})

	t.Run("sets start time", func(t *testing.T) {
		record := base()
		record.ApplyPatch(RecordPatch{StartTime: SetTo("08:30:00")})
		assert.Equal(t, "08:30:00", *record.StartTime)
		assert.Equal(t, "17:00:00", *record.EndTime)
	})

	t.Run("clears end time", func(t *testing.T) {
		record := base()
		record.ApplyPatch(RecordPatch{EndTime: Clear()})
		assert.Nil(t, record.EndTime)
		assert.Equal(t, "09:00:00", *record.StartTime)
	})

	t.Run("replaces pause intervals", func(t *testing.T) {
		record := base()
		intervals := []PauseInterval{{PauseTime: "14:00:00", ResumeTime: strPtr("14:10:00")}}
		record.ApplyPatch(RecordPatch{PauseIntervals: &intervals})
		assert.Equal(t, intervals, record.PauseIntervals)
	})
}
