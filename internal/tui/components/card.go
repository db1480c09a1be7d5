// Package components holds the shared drawing pieces for the TUI:
// cards, the tab bar, the status bar, charts, and bars. Everything
// renders to plain strings so tabs can compose freely.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cnchist/internal/tui/theme"
)

// LayoutRow splits totalWidth into n column widths that sum back to
// exactly totalWidth. Leftover columns from the integer division go to
// the leftmost items.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	for i := range widths {
		widths[i] = totalWidth / n
	}
	for i := 0; i < totalWidth%n; i++ {
		widths[i]++
	}
	return widths
}

// cardFrame is the rounded border drawn around every card. outerWidth
// includes the two border columns.
func cardFrame(outerWidth int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(max(outerWidth-2, 10)).
		Padding(0, 1)
}

// Metric is one headline number for the overview row. Tone tints the
// value when the number carries a status (alarm red, open-session
// yellow); the zero Tone keeps the primary text color.
type Metric struct {
	Label string
	Value string
	Delta string
	Tone  lipgloss.Color
}

// MetricCard renders one bordered metric. outerWidth includes the
// border columns.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	valueColor := m.Tone
	if valueColor == "" {
		valueColor = t.TextPrimary
	}

	content := lipgloss.NewStyle().Foreground(t.TextMuted).Render(m.Label) + "\n" +
		lipgloss.NewStyle().Foreground(valueColor).Bold(true).Render(m.Value)
	if m.Delta != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(m.Delta)
	}

	return cardFrame(outerWidth).Render(content)
}

// MetricCardRow lays metrics out side by side across totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	cards := make([]string, len(metrics))
	for i, w := range LayoutRow(totalWidth, len(metrics)) {
		cards[i] = MetricCard(metrics[i], w)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// ContentCard renders a bordered card around body with an optional
// bold title line. outerWidth includes the border columns.
func ContentCard(title, body string, outerWidth int) string {
	content := body
	if title != "" {
		titleStyle := lipgloss.NewStyle().Foreground(theme.Active.TextMuted).Bold(true)
		content = titleStyle.Render(title) + "\n" + body
	}
	return cardFrame(outerWidth).Render(content)
}

// CardRow joins pre-rendered cards horizontally, top aligned.
func CardRow(cards []string) string {
	switch len(cards) {
	case 0:
		return ""
	case 1:
		return cards[0]
	default:
		return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
}

// CardInnerWidth is the text width available inside a ContentCard of
// the given outer width, after border and padding.
func CardInnerWidth(outerWidth int) int {
	return max(outerWidth-4, 10)
}
