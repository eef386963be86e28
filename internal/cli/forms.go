package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mariaiw8/apontamentos/internal/cli/formatter"
	"github.com/mariaiw8/apontamentos/internal/workhours"
)

// apontamentosHuhTheme styles the input-only forms in the formatter's palette.
func apontamentosHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	accent := lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	dim := lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Focused.Title = accent.Bold(true)
	t.Focused.Description = dim
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed).SetString(" ✖")
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed).SetString(" *")
	t.Focused.TextInput.Cursor = accent
	t.Focused.TextInput.Prompt = accent
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = dim

	t.Blurred.Title = dim
	t.Blurred.Description = dim
	t.Blurred.TextInput.Prompt = dim
	t.Blurred.TextInput.Text = dim

	return t
}

// finalizeValues is what the finalize form collects, as typed.
type finalizeValues struct {
	EndDate  string
	EndClock string
	Extra    string
}

// finalizeForm asks for the end date, end time and extra hours. The
// description under the extra field shows the live total.
func finalizeForm(v *finalizeValues, preview func(finalizeValues) string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data de término (YYYY-MM-DD)").
				Value(&v.EndDate).
				Validate(validateDate),
			huh.NewInput().
				Title("Hora de término (HH:MM)").
				Value(&v.EndClock).
				Validate(validateClock),
			huh.NewInput().
				Title("Horas extras").
				Placeholder("0").
				Value(&v.Extra).
				Validate(validateAdjustment).
				DescriptionFunc(func() string { return preview(*v) }, v),
		),
	).WithTheme(apontamentosHuhTheme()).WithShowHelp(false)
}

func validateDate(s string) error {
	if _, err := workhours.ParseWallClock(s, "00:00"); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validateClock(s string) error {
	if _, err := workhours.ParseWallClock("2000-01-01", s); err != nil {
		return fmt.Errorf("use HH:MM format")
	}
	return nil
}

// validateAdjustment accepts empty or a decimal number, with '.' or ','.
func validateAdjustment(s string) error {
	if _, err := workhours.ParseAdjustment(s); err != nil {
		return fmt.Errorf("enter a number of hours")
	}
	return nil
}
