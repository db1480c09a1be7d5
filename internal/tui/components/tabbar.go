package components

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cnchist/internal/tui/theme"
)

// Tab is one entry in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int
}

// Tabs defines the fixed tab order. KeyPos marks where the shortcut
// letter sits in the name; -1 appends it in brackets instead.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o', KeyPos: 0},
	{Name: "Sessions", Key: 's', KeyPos: 0},
	{Name: "Daily", Key: 'd', KeyPos: 0},
	{Name: "Settings", Key: 'x', KeyPos: -1},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active
	accent := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts[i] = accent.Render(tab.Name)
			continue
		}

		// Inactive tabs carry their shortcut letter in brackets, in
		// place when the letter occurs in the name, appended when not.
		if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
			pre, post := tab.Name[:tab.KeyPos], tab.Name[tab.KeyPos+1:]
			parts[i] = muted.Render(pre) +
				dim.Render("[") + accent.Render(string(tab.Name[tab.KeyPos])) + dim.Render("]") +
				muted.Render(post)
		} else {
			parts[i] = muted.Render(tab.Name) +
				dim.Render("[") + accent.Render(string(tab.Key)) + dim.Render("]")
		}
	}

	return " " + strings.Join(parts, "  ")
}

// TabVisualWidth returns the rendered width of one tab, matching
// RenderTabBar exactly so mouse hitboxes line up.
func TabVisualWidth(tab Tab, active bool) int {
	w := len(tab.Name)
	if !active {
		w += 2 // the [ ] around the shortcut letter
		if tab.KeyPos < 0 {
			w++ // letter appended after the name
		}
	}
	return w
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	return slices.IndexFunc(Tabs, func(tab Tab) bool { return tab.Key == key })
}
