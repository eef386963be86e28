package workhours

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// MinutesPerDay is the exclusive upper bound of a time-of-day value.
const MinutesPerDay = 24 * 60

// ErrInvalidCalendar is returned when a calendar definition has malformed windows.
var ErrInvalidCalendar = errors.New("invalid calendar")

// Window is an open time-of-day interval [Start, End) in minutes since midnight.
type Window struct {
	Start int
	End   int
}

// Minutes returns the length of the window.
func (w Window) Minutes() int {
	return w.End - w.Start
}

func (w Window) String() string {
	return FormatClock(w.Start) + "-" + FormatClock(w.End)
}

// Calendar maps weekdays to their open windows. A weekday without an entry
// has no open minutes. The zero value is a calendar that is always closed.
type Calendar struct {
	days map[time.Weekday][]Window
}

// NewCalendar builds a Calendar from a weekday table. Windows of a day must
// be non-empty, inside [0, 1440], ascending and disjoint. The table is copied.
func NewCalendar(days map[time.Weekday][]Window) (Calendar, error) {
	cp := make(map[time.Weekday][]Window, len(days))
	for day, windows := range days {
		if day < time.Sunday || day > time.Saturday {
			return Calendar{}, fmt.Errorf("%w: unknown weekday %d", ErrInvalidCalendar, day)
		}
		prevEnd := 0
		for i, w := range windows {
			if w.Start < 0 || w.End > MinutesPerDay || w.Start >= w.End {
				return Calendar{}, fmt.Errorf("%w: %s window %d out of range (%d-%d)", ErrInvalidCalendar, day, i, w.Start, w.End)
			}
			if i > 0 && w.Start < prevEnd {
				return Calendar{}, fmt.Errorf("%w: %s windows overlap or are out of order at %s", ErrInvalidCalendar, day, w)
			}
			prevEnd = w.End
		}
		if len(windows) > 0 {
			cp[day] = append([]Window(nil), windows...)
		}
	}
	return Calendar{days: cp}, nil
}

// MustCalendar is NewCalendar for static tables; it panics on error.
func MustCalendar(days map[time.Weekday][]Window) Calendar {
	cal, err := NewCalendar(days)
	if err != nil {
		panic(err)
	}
	return cal
}

// DefaultCalendar is the shop calendar: Monday to Thursday 07:00-12:00 and
// 13:00-17:30, Friday 07:00-12:30, closed on weekends.
func DefaultCalendar() Calendar {
	weekday := []Window{{7 * 60, 12 * 60}, {13 * 60, 17*60 + 30}}
	return MustCalendar(map[time.Weekday][]Window{
		time.Monday:    weekday,
		time.Tuesday:   weekday,
		time.Wednesday: weekday,
		time.Thursday:  weekday,
		time.Friday:    {{7 * 60, 12*60 + 30}},
	})
}

// Windows returns a copy of the windows configured for day.
func (c Calendar) Windows(day time.Weekday) []Window {
	return append([]Window(nil), c.days[day]...)
}

// OpenDays returns the weekdays that have at least one window, Sunday first.
func (c Calendar) OpenDays() []time.Weekday {
	days := make([]time.Weekday, 0, len(c.days))
	for d := range c.days {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// OpenMinutesInDay returns how many minutes of [from, to) fall inside the
// windows configured for day.
func (c Calendar) OpenMinutesInDay(day time.Weekday, from, to int) int {
	total := 0
	for _, w := range c.days[day] {
		s := max(from, w.Start)
		e := min(to, w.End)
		if e > s {
			total += e - s
		}
	}
	return total
}

// WeeklyMinutes is the number of open minutes in a full week.
func (c Calendar) WeeklyMinutes() int {
	total := 0
	for _, windows := range c.days {
		for _, w := range windows {
			total += w.Minutes()
		}
	}
	return total
}

func (c Calendar) String() string {
	var b strings.Builder
	for _, d := range c.OpenDays() {
		parts := make([]string, 0, len(c.days[d]))
		for _, w := range c.days[d] {
			parts = append(parts, w.String())
		}
		fmt.Fprintf(&b, "%s: %s\n", d, strings.Join(parts, ", "))
	}
	return b.String()
}

// FormatClock renders a minute-of-day as HH:MM. 1440 renders as 24:00.
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// ParseClock parses HH:MM into minutes since midnight. "24:00" is accepted
// so a window can close at midnight.
func ParseClock(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "24:00" {
		return MinutesPerDay, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		if t, err = time.Parse("15:04", "0"+s); err != nil {
			return 0, fmt.Errorf("%w: clock %q", ErrMalformedTimestamp, s)
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ParseWindow parses "HH:MM-HH:MM".
func ParseWindow(s string) (Window, error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return Window{}, fmt.Errorf("%w: window %q must be HH:MM-HH:MM", ErrInvalidCalendar, s)
	}
	start, err := ParseClock(from)
	if err != nil {
		return Window{}, fmt.Errorf("window %q: %w", s, err)
	}
	end, err := ParseClock(to)
	if err != nil {
		return Window{}, fmt.Errorf("window %q: %w", s, err)
	}
	return Window{Start: start, End: end}, nil
}
