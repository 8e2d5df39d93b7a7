package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestCalculateWorkHours(t *testing.T) {
	tests := []struct {
		name      string
		startTime *string
		endTime   *string
		pauses    []PauseInterval
		expected  *WorkHours
	}{
		{
			name:      "computes full day without pauses",
			startTime: strPtr("09:00"),
			endTime:   strPtr("17:45"),
			expected:  &WorkHours{Hours: 8, Minutes: 45, TotalMinutes: 525},
		},
		{
			name:      "subtracts closed pause",
			startTime: strPtr("09:00"),
			endTime:   strPtr("17:30"),
			pauses: []PauseInterval{
				{PauseTime: "12:00", ResumeTime: strPtr("12:30")},
			},
			expected: &WorkHours{Hours: 8, Minutes: 0, TotalMinutes: 480, PausedMinutes: 30},
		},
		{
			name:      "closes unresumed pause at end time",
			startTime: strPtr("09:00"),
			endTime:   strPtr("13:00"),
			pauses: []PauseInterval{
				{PauseTime: "12:00"},
			},
			expected: &WorkHours{Hours: 3, Minutes: 0, TotalMinutes: 180, PausedMinutes: 60},
		},
		{
			name:      "carries seconds in fractional minutes",
			startTime: strPtr("09:00:00"),
			endTime:   strPtr("09:30:30"),
			expected:  &WorkHours{Hours: 0, Minutes: 30, TotalMinutes: 30.5},
		},
		{
			name:      "sums multiple pauses",
			startTime: strPtr("08:00"),
			endTime:   strPtr("17:00"),
			pauses: []PauseInterval{
				{PauseTime: "10:00", ResumeTime: strPtr("10:15")},
				{PauseTime: "12:00", ResumeTime: strPtr("13:00")},
			},
			expected: &WorkHours{Hours: 7, Minutes: 45, TotalMinutes: 465, PausedMinutes: 75},
		},
		{
			name:      "zero duration day",
			startTime: strPtr("09:00"),
			endTime:   strPtr("09:00"),
			expected:  &WorkHours{Hours: 0, Minutes: 0, TotalMinutes: 0},
		},
		{
			name:    "nil when start missing",
			endTime: strPtr("17:00"),
		},
		{
			name:      "nil when end missing",
			startTime: strPtr("09:00"),
		},
		{
			name: "nil when both missing",
		},
		{
			name:      "nil when start unparseable",
			startTime: strPtr("9am"),
			endTime:   strPtr("17:00"),
		},
		{
			name:      "nil when end unparseable",
			startTime: strPtr("09:00"),
			endTime:   strPtr("late"),
		},
		{
			name:      "nil when end precedes start",
			startTime: strPtr("17:00"),
			endTime:   strPtr("09:00"),
		},
		{
			name:      "nil when pauses exceed gross duration",
			startTime: strPtr("09:00"),
			endTime:   strPtr("10:00"),
			pauses: []PauseInterval{
				{PauseTime: "09:00", ResumeTime: strPtr("11:00")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateWorkHours(tt.startTime, tt.endTime, tt.pauses)
			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.expected.Hours, result.Hours)
			assert.Equal(t, tt.expected.Minutes, result.Minutes)
			assert.InDelta(t, tt.expected.TotalMinutes, result.TotalMinutes, 1e-9)
			assert.InDelta(t, tt.expected.PausedMinutes, result.PausedMinutes, 1e-9)
		})
	}
}

func TestReconcilePauses(t *testing.T) {
	tests := []struct {
		name      string
		intervals []PauseInterval
		endTime   *string
		expected  float64
	}{
		{
			name:     "no pauses",
			expected: 0,
		},
		{
			name: "closed pause counts its span",
			intervals: []PauseInterval{
				{PauseTime: "12:00", ResumeTime: strPtr("12:45")},
			},
			endTime:  strPtr("17:00"),
			expected: 45,
		},
		{
			name: "open pause on open record contributes nothing",
			intervals: []PauseInterval{
				{PauseTime: "12:00"},
			},
			expected: 0,
		},
		{
			name: "open pause closed at record end",
			intervals: []PauseInterval{
				{PauseTime: "12:00"},
			},
			endTime:  strPtr("13:30"),
			expected: 90,
		},
		{
			name: "inverted interval clamps to zero",
			intervals: []PauseInterval{
				{PauseTime: "14:00", ResumeTime: strPtr("13:00")},
				{PauseTime: "15:00", ResumeTime: strPtr("15:10")},
			},
			endTime:  strPtr("17:00"),
			expected: 10,
		},
		{
			name: "unparseable pause time is skipped",
			intervals: []PauseInterval{
				{PauseTime: "noon", ResumeTime: strPtr("12:30")},
				{PauseTime: "13:00", ResumeTime: strPtr("13:05")},
			},
			endTime:  strPtr("17:00"),
			expected: 5,
		},
		{
			name: "unparseable resume time is skipped",
			intervals: []PauseInterval{
				{PauseTime: "12:00", ResumeTime: strPtr("later")},
			},
			endTime:  strPtr("17:00"),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ReconcilePauses(tt.intervals, tt.endTime)
			assert.InDelta(t, tt.expected, result, 1e-9)
		})
	}
}

func TestFormatDurationMinutes(t *testing.T) {
	tests := []struct {
		name     string
		minutes  float64
		expected string
	}{
		{
			name:     "formats zero",
			minutes:  0,
			expected: "0h 0m",
		},
		{
			name:     "formats hours and minutes",
			minutes:  525,
			expected: "8h 45m",
		},
		{
			name:     "truncates fractional minutes",
			minutes:  30.9,
			expected: "0h 30m",
		},
		{
			name:     "clamps negatives",
			minutes:  -15,
			expected: "0h 0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDurationMinutes(tt.minutes))
		})
	}
}
