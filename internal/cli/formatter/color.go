package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mariaiw8/apontamentos/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SectorStyle gives each sector its own color on boards and tables.
func SectorStyle(s domain.Sector) lipgloss.Style {
	switch s {
	case domain.SectorProject:
		return StylePurple
	case domain.SectorCut:
		return StyleBlue
	case domain.SectorWeld:
		return StyleYellow
	case domain.SectorPaint:
		return StyleGreen
	default:
		return StyleDim
	}
}

// SectorBadge renders the sector's display name in its color.
func SectorBadge(s domain.Sector) string {
	return SectorStyle(s).Render(s.Label())
}

// ProgressPill marks an entry as running or finished.
func ProgressPill(e *domain.Entry) string {
	switch {
	case !e.Active():
		return StyleDim.Render("✖ Inativo")
	case e.InProgress():
		return StyleYellowBold.Render("▶ Em andamento")
	default:
		return StyleGreen.Render("✔ Finalizado")
	}
}

// StatusPill renders a record status.
func StatusPill(s domain.RecordStatus) string {
	if s == domain.StatusInactive {
		return StyleDim.Render("✖ inativo")
	}
	return StyleGreen.Render("● ativo")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
