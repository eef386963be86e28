package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/mariaiw8/apontamentos/internal/workhours"
)

var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// FormatCalendar renders the weekly open windows. source names where the
// calendar came from.
func FormatCalendar(cal workhours.Calendar, source string) string {
	longest := 0
	for _, d := range weekOrder {
		longest = max(longest, cal.OpenMinutesInDay(d, 0, workhours.MinutesPerDay))
	}

	var b strings.Builder
	for _, d := range weekOrder {
		open := cal.OpenMinutesInDay(d, 0, workhours.MinutesPerDay)
		windows := cal.Windows(d)
		label := Dim("fechado")
		if len(windows) > 0 {
			parts := make([]string, len(windows))
			for i, w := range windows {
				parts[i] = w.String()
			}
			label = strings.Join(parts, ", ")
		}
		fmt.Fprintf(&b, "%-10s %s %7s  %s\n", d, RenderShareBar(float64(open), float64(longest), 10), FormatMinutes(open), label)
	}
	fmt.Fprintf(&b, "\n%s %s", Dim("Total semanal"), Bold(FormatMinutes(cal.WeeklyMinutes())))
	return RenderBox("Calendário ("+source+")", b.String())
}

// FormatComputedHours renders the result of a span computation.
func FormatComputedHours(span workhours.Span, policy workhours.Policy, adjustment, hours float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s → %s\n", Dim("Período"), WallClock(span.Start), WallClock(span.End))
	fmt.Fprintf(&b, "%s %s\n", Dim("Modo   "), string(policy))
	if adjustment != 0 {
		fmt.Fprintf(&b, "%s %+.2f h\n", Dim("Extras "), adjustment)
	}
	fmt.Fprintf(&b, "%s %s %s", Dim("Total  "), Bold(Decimal(hours)+" h"), Dim("("+FormatHours(hours)+")"))
	return b.String()
}
