package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cnchist/internal/tui/theme"
)

// ColorForPct maps a utilization share onto the red-to-green scale.
// Cutting most of the wall clock is green; a mostly idle session is red.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 0.9:
		return string(t.Green)
	case pct >= 0.5:
		return string(t.Yellow)
	case pct >= 0.25:
		return string(t.Orange)
	default:
		return string(t.Red)
	}
}

// UtilizationBar renders a labeled bar for the share of session wall
// time the machine spent cutting. High is good here, so the color scale
// runs opposite to a load gauge.
func UtilizationBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active
	pct = min(max(pct, 0), 1)
	color := ColorForPct(pct)

	bar := progress.New(
		progress.WithWidth(barWidth),
		progress.WithSolidFill(color),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	surface := lipgloss.NewStyle().Background(t.Surface)
	parts := []string{
		surface.Foreground(t.TextMuted).Render(fmt.Sprintf("%-*s", labelW, label)),
		bar.ViewAs(pct),
		surface.Foreground(lipgloss.Color(color)).Bold(true).Render(fmt.Sprintf("%3.0f%%", pct*100)),
	}
	return strings.Join(parts, surface.Render(" "))
}
