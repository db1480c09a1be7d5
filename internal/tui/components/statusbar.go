package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cnchist/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// the live-reload state in the middle, parse timing on the right.
func RenderStatusBar(width int, dataAge string, refreshing, autoRefresh, watching bool) string {
	left := " [?]help  [q]uit"

	var mode string
	switch {
	case refreshing:
		mode = "reloading..."
	case autoRefresh && watching:
		mode = "live"
	case autoRefresh:
		mode = "watch unavailable"
	default:
		mode = "paused [R]"
	}

	right := ""
	if dataAge != "" {
		right = "Parse: " + dataAge + " "
	}

	gap := max(width-lipgloss.Width(left)-lipgloss.Width(mode)-lipgloss.Width(right)-2, 0)
	bar := left + "  " + mode + strings.Repeat(" ", gap) + right

	return lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Width(width).Render(bar)
}
