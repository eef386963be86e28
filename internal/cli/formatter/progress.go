package formatter

import (
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderShareBar renders part/whole as a bar of the given width, such as the
// open share of a day or one project type's share of the design hours.
func RenderShareBar(part, whole float64, width int) string {
	pct := 0.0
	if whole > 0 {
		pct = part / whole
	}
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)+0.5), width)
	return StyleBlue.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}
