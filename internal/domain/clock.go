package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the calendar date layout used as part of a record's key.
const DateFormat = "2006-01-02"

// ParseTimeToMinutes converts a wall-clock string in HH:MM or HH:MM:SS form
// to minutes since midnight. Seconds are carried in the fractional part, so
// "09:00:30" parses to 540.5. The second return value is false for empty,
// malformed, or out-of-range input.
func ParseTimeToMinutes(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}

	values := make([]int, len(parts))
	for i, part := range parts {
		value, ok := parseClockComponent(part)
		if !ok {
			return 0, false
		}
		values[i] = value
	}

	hours := values[0]
	minutes := values[1]
	seconds := 0
	if len(values) == 3 {
		seconds = values[2]
	}

	if hours > 23 || minutes > 59 || seconds > 59 {
		return 0, false
	}

	return float64(hours)*60 + float64(minutes) + float64(seconds)/60, true
}

// parseClockComponent parses a single clock field. At most two digits, no
// signs, no whitespace.
func parseClockComponent(s string) (int, bool) {
	if len(s) == 0 || len(s) > 2 {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return value, true
}

// FormatMinutes renders minutes since midnight as a zero-padded HH:MM:SS
// string. Fractional minutes become whole seconds, rounded to the nearest
// second. Values outside a single day are clamped into it.
func FormatMinutes(minutes float64) string {
	totalSeconds := int(math.Round(minutes * 60))
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	const secondsPerDay = 24 * 60 * 60
	if totalSeconds >= secondsPerDay {
		totalSeconds = secondsPerDay - 1
	}

	hours := totalSeconds / 3600
	mins := (totalSeconds % 3600) / 60
	secs := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, mins, secs)
}

// CurrentWallClock renders the given instant as a local wall-clock HH:MM:SS
// string. All record times are local wall-clock strings; no timezone
// conversion happens anywhere in the system.
func CurrentWallClock(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatDate renders the given instant as a record date key.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// IsValidDate reports whether s is a well-formed record date key.
func IsValidDate(s string) bool {
	parsed, err := time.Parse(DateFormat, s)
	if err != nil {
		return false
	}
	// time.Parse accepts some non-canonical spellings; require an exact
	// round-trip so dates always compare correctly as strings.
	return parsed.Format(DateFormat) == s
}
