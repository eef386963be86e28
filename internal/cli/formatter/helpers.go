package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// WallClock renders a shop-floor instant as "2006-01-02 15:04".
func WallClock(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// WallClockPtr is WallClock for an optional instant; nil renders "-".
func WallClockPtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return WallClock(*t)
}

// Decimal renders v with two decimals, the way hours and kg are reported.
func Decimal(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// DecimalPtr is Decimal for an optional value; nil renders "-".
func DecimalPtr(v *float64) string {
	if v == nil {
		return "-"
	}
	return Decimal(*v)
}

// FormatHours renders decimal hours as "2h 30m", rounded to the minute.
func FormatHours(h float64) string {
	return FormatMinutes(int(math.Round(h * 60)))
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}
