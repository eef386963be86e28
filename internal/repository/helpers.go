package repository

import (
	"database/sql"
	"time"
)

// wallClockLayout stores shop-floor instants without a zone; they are naive
// local wall-clock values.
const wallClockLayout = "2006-01-02 15:04"

// parseWallClock parses a stored wall-clock instant into a zone-free time.
func parseWallClock(s string) (time.Time, error) {
	return time.Parse(wallClockLayout, s)
}

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// nullableFloatToValue converts a *float64 to NULL or its value.
func nullableFloatToValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// floatFromNull converts a scanned sql.NullFloat64 to a *float64.
func floatFromNull(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
