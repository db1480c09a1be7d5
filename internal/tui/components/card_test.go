package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/cnchist/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct {
		total, n int
	}{
		{120, 4},
		{121, 4},
		{123, 4},
		{80, 3},
		{7, 2},
	} {
		widths := LayoutRow(tc.total, tc.n)
		if len(widths) != tc.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tc.total, tc.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
	}

	if got := LayoutRow(100, 0); got != nil {
		t.Errorf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestMetricCardTone(t *testing.T) {
	theme.SetActive("flexoki-dark")

	plain := MetricCard(Metric{Label: "Errors", Value: "3", Delta: "x"}, 24)
	toned := MetricCard(Metric{Label: "Errors", Value: "3", Delta: "x", Tone: theme.Active.Red}, 24)

	if plain == toned {
		t.Error("tone should change the rendered value style")
	}
	pw := lipgloss.Width(plain)
	tw := lipgloss.Width(toned)
	if pw != tw {
		t.Errorf("tone changed card width: plain %d, toned %d", pw, tw)
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := len(strings.Split(shortCard, "\n"))
	tallLines := len(strings.Split(tallCard, "\n"))
	if shortLines >= tallLines {
		t.Fatal("test setup error: short card should be shorter than tall card")
	}

	joined := CardRow([]string{tallCard, shortCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Errorf("joined height = %d lines, want %d (tallest card)", len(lines), tallLines)
	}
}

func TestHourTicks(t *testing.T) {
	for _, tc := range []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{0.5, "30m"},
		{1, "1h"},
		{2.5, "2h30m"},
		{7.25, "7h15m"},
		{0.999, "1h"},
		{10, "10h"},
	} {
		if got := HourTicks(tc.v); got != tc.want {
			t.Errorf("HourTicks(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestTabVisualWidthMatchesRender(t *testing.T) {
	theme.SetActive("terminal")

	for active := range Tabs {
		total := 1 // leading space in RenderTabBar
		for i, tab := range Tabs {
			total += TabVisualWidth(tab, i == active)
			if i < len(Tabs)-1 {
				total += 2 // separator
			}
		}
		if got := lipgloss.Width(RenderTabBar(active, 120)); got != total {
			t.Errorf("active=%d: rendered width %d, TabVisualWidth sum %d", active, got, total)
		}
	}
}
