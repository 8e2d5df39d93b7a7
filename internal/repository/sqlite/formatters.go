package sqlite

import (
	"time"
)

// FormatTimestampForDB formats a time.Time value as an RFC3339 string for
// consistent database storage.
func FormatTimestampForDB(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTimestampFromDB parses an RFC3339 formatted timestamp string from the
// database.
func ParseTimestampFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// NullableStringForDB converts a *string to a driver-friendly value,
// returning nil for NULL.
func NullableStringForDB(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
