package domain

import "fmt"

// WorkHours is the computed net duration of a work session. Hours and
// Minutes are the truncated display form; TotalMinutes keeps the unrounded
// net duration so day-level truncation error does not compound when summing
// across a reporting period.
type WorkHours struct {
	Hours         int
	Minutes       int
	TotalMinutes  float64
	PausedMinutes float64
}

// String renders the net duration in the short display form, e.g. "8h 30m".
func (w WorkHours) String() string {
	return FormatDurationMinutes(w.TotalMinutes)
}

// FormatDurationMinutes renders a minute count as "Xh Ym", truncating the
// minute remainder.
func FormatDurationMinutes(minutes float64) string {
	if minutes < 0 {
		minutes = 0
	}
	total := int(minutes)
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// ReconcilePauses computes the total paused minutes for a set of pause
// intervals. An unresumed pause on an ended record is treated as closed at
// the end time; an unresumed pause on a still-open record (endTime nil)
// contributes nothing. Each interval's contribution is clamped to zero, so a
// resume time earlier than its pause time cannot reduce the total; the same
// clamped tally is used everywhere paused time is reported.
func ReconcilePauses(intervals []PauseInterval, endTime *string) float64 {
	var total float64
	for _, interval := range intervals {
		paused, ok := ParseTimeToMinutes(interval.PauseTime)
		if !ok {
			continue
		}

		var resumed float64
		switch {
		case interval.ResumeTime != nil:
			resumed, ok = ParseTimeToMinutes(*interval.ResumeTime)
		case endTime != nil:
			resumed, ok = ParseTimeToMinutes(*endTime)
		default:
			// Open pause on an open record: not counted until it closes.
			continue
		}
		if !ok {
			continue
		}

		if contribution := resumed - paused; contribution > 0 {
			total += contribution
		}
	}
	return total
}

// CalculateWorkHours computes the net worked duration between two wall-clock
// times, minus reconciled pauses. Returns nil when either time is missing or
// unparseable, when the end precedes the start (sessions crossing midnight
// are not supported), or when paused time exceeds the gross duration.
// Callers render nil as a placeholder rather than an error.
func CalculateWorkHours(startTime, endTime *string, pauses []PauseInterval) *WorkHours {
	if startTime == nil || endTime == nil {
		return nil
	}

	startMinutes, ok := ParseTimeToMinutes(*startTime)
	if !ok {
		return nil
	}
	endMinutes, ok := ParseTimeToMinutes(*endTime)
	if !ok {
		return nil
	}

	grossMinutes := endMinutes - startMinutes
	if grossMinutes < 0 {
		return nil
	}

	pausedMinutes := ReconcilePauses(pauses, endTime)
	netMinutes := grossMinutes - pausedMinutes
	if netMinutes < 0 {
		return nil
	}

	return &WorkHours{
		Hours:         int(netMinutes) / 60,
		Minutes:       int(netMinutes) % 60,
		TotalMinutes:  netMinutes,
		PausedMinutes: pausedMinutes,
	}
}
