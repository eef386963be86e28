package workhours

import "time"

// segment is the part of a span that falls on one calendar day.
type segment struct {
	Weekday time.Weekday
	From    int // minutes since midnight, inclusive
	To      int // minutes since midnight, exclusive
}

// wallClock strips location and seconds, keeping only the wall-clock fields.
// Day arithmetic on the result never crosses a DST transition.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// daySegments splits [start, end) into per-day segments. Midnight closes one
// day at 1440 and opens the next at 0.
func daySegments(start, end time.Time) []segment {
	start, end = wallClock(start), wallClock(end)
	if !end.After(start) {
		return nil
	}

	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if first.Equal(last) {
		return []segment{{Weekday: start.Weekday(), From: minuteOfDay(start), To: minuteOfDay(end)}}
	}

	days := int(last.Sub(first).Hours() / 24)
	segs := make([]segment, 0, days+1)
	segs = append(segs, segment{Weekday: start.Weekday(), From: minuteOfDay(start), To: MinutesPerDay})
	for i := 1; i < days; i++ {
		segs = append(segs, segment{Weekday: first.AddDate(0, 0, i).Weekday(), From: 0, To: MinutesPerDay})
	}
	if to := minuteOfDay(end); to > 0 {
		segs = append(segs, segment{Weekday: end.Weekday(), From: 0, To: to})
	}
	return segs
}

// ElapsedOpenMinutes returns the minutes of [start, end) that fall inside the
// calendar's open windows. It returns 0 when end is not after start.
func ElapsedOpenMinutes(cal Calendar, start, end time.Time) int {
	total := 0
	for _, s := range daySegments(start, end) {
		total += cal.OpenMinutesInDay(s.Weekday, s.From, s.To)
	}
	return total
}

// rawMinutes is the wall-clock difference in minutes, floored at 0.
func rawMinutes(start, end time.Time) int {
	d := wallClock(end).Sub(wallClock(start))
	if d <= 0 {
		return 0
	}
	return int(d / time.Minute)
}
