package workhours

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedTimestamp is returned by the parsing helpers for input that is
// present but not a valid date, clock or number.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// Policy selects how a span is turned into hours.
type Policy string

const (
	// CalendarRestricted counts only minutes inside the calendar's open windows.
	CalendarRestricted Policy = "calendar"
	// RawElapsed counts the full wall-clock difference.
	RawElapsed Policy = "raw"
)

// PolicyFor maps the caller's raw-elapsed flag to a Policy.
func PolicyFor(rawElapsed bool) Policy {
	if rawElapsed {
		return RawElapsed
	}
	return CalendarRestricted
}

// Span is a pair of wall-clock instants. End on or before Start is a zero span.
type Span struct {
	Start time.Time
	End   time.Time
}

// BaseHours returns the span's hours under policy, before any adjustment.
func BaseHours(span Span, cal Calendar, policy Policy) float64 {
	if policy == RawElapsed {
		return float64(rawMinutes(span.Start, span.End)) / 60
	}
	return float64(ElapsedOpenMinutes(cal, span.Start, span.End)) / 60
}

// TotalHours returns max(0, base + adjustment). The adjustment is operator
// entered overtime and is never clipped to the calendar.
func TotalHours(span Span, cal Calendar, adjustment float64, policy Policy) float64 {
	return math.Max(0, BaseHours(span, cal, policy)+adjustment)
}

// PreviewInput holds the raw text components of a span as typed by an operator.
type PreviewInput struct {
	StartDate  string
	StartClock string
	EndDate    string
	EndClock   string
	Adjustment string
}

// Complete reports whether all four timestamp components are present.
func (in PreviewInput) Complete() bool {
	for _, s := range []string{in.StartDate, in.StartClock, in.EndDate, in.EndClock} {
		if strings.TrimSpace(s) == "" {
			return false
		}
	}
	return true
}

// Preview computes TotalHours from raw input. It returns nil, nil while any
// timestamp component is still blank, and an error for malformed input.
func Preview(in PreviewInput, cal Calendar, policy Policy) (*float64, error) {
	if !in.Complete() {
		return nil, nil
	}
	start, err := ParseWallClock(in.StartDate, in.StartClock)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := ParseWallClock(in.EndDate, in.EndClock)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	adj, err := ParseAdjustment(in.Adjustment)
	if err != nil {
		return nil, err
	}
	h := TotalHours(Span{Start: start, End: end}, cal, adj, policy)
	return &h, nil
}

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// ParseWallClock combines YYYY-MM-DD and HH:MM into a zone-free instant.
func ParseWallClock(date, clock string) (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrMalformedTimestamp, date)
	}
	m, err := ParseClock(clock)
	if err != nil || m >= MinutesPerDay {
		return time.Time{}, fmt.Errorf("%w: clock %q", ErrMalformedTimestamp, clock)
	}
	return d.Add(time.Duration(m) * time.Minute), nil
}

// ParseDateTime parses "YYYY-MM-DD HH:MM" (a "T" separator is also accepted).
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	date, clock, ok := strings.Cut(strings.Replace(s, "T", " ", 1), " ")
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q must be YYYY-MM-DD HH:MM", ErrMalformedTimestamp, s)
	}
	return ParseWallClock(date, clock)
}

// ParseAdjustment parses operator-entered extra hours. Blank means zero and a
// comma is accepted as decimal separator.
func ParseAdjustment(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: adjustment %q is not a number", ErrMalformedTimestamp, s)
	}
	return v, nil
}
