package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cnchist/internal/cli"
	"github.com/theirongolddev/cnchist/internal/timeutil"
	"github.com/theirongolddev/cnchist/internal/tui/components"
	"github.com/theirongolddev/cnchist/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	stats := a.stats
	days := a.dailyStats
	var b strings.Builder

	// Row 1: Metric cards
	sessDelta := fmt.Sprintf("%d active days", stats.ActiveDays)
	var sessTone lipgloss.Color
	if stats.OpenSessions > 0 {
		sessDelta = fmt.Sprintf("%d open", stats.OpenSessions)
		sessTone = t.Yellow
	}

	errDelta := "none"
	var errTone lipgloss.Color
	if stats.Commands > 0 && stats.Errors > 0 {
		errDelta = cli.FormatPercent(float64(stats.Errors)/float64(stats.Commands)) + " of commands"
		errTone = t.Red
	}

	cards := []components.Metric{
		{Label: "Sessions", Value: cli.FormatCount(stats.Sessions), Delta: sessDelta, Tone: sessTone},
		{Label: "Commands", Value: cli.FormatCount(stats.Commands), Delta: fmt.Sprintf("%d files", stats.CommandFiles+stats.UserFiles)},
		{Label: "Run Time", Value: timeutil.FormatShort(stats.TotalRun), Delta: timeutil.FormatShort(stats.AvgRun) + "/cmd"},
		{Label: "Errors", Value: cli.FormatCount(stats.Errors), Delta: errDelta, Tone: errTone},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Daily run time chart
	if len(days) > 0 {
		chartVals := make([]float64, len(days))
		chartLabels := chartDateLabels(days)
		for i, d := range days {
			chartVals[len(days)-1-i] = d.Run.Hours()
		}
		chartInnerW := components.CardInnerWidth(cw)
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Daily Run Hours (%d days)", len(days)),
			components.BarChart(chartVals, chartLabels, t.Blue, chartInnerW, 10, components.HourTicks),
			cw,
		))
		b.WriteString("\n")
	}

	// Row 3: Commands by hour + shift buckets
	halves := components.LayoutRow(cw, 2)
	hourChartH := 8
	if a.isCompactLayout() {
		hourChartH = 6
	}

	hourVals := make([]float64, 24)
	for i, h := range a.hourly {
		hourVals[i] = float64(h.Commands)
	}
	hourCard := components.ContentCard(
		"Commands by Hour",
		components.BarChart(hourVals, hourLabels24(), t.Accent, components.CardInnerWidth(halves[0]), hourChartH, nil),
		halves[0],
	)

	// Shift activity: commands folded into 4-hour buckets, colored by
	// how normal it is for the machine to be cutting then
	type actBucket struct {
		label string
		total int
		color lipgloss.Color
	}
	buckets := []actBucket{
		{"Night   00-03", 0, t.Red},
		{"Early   04-07", 0, t.Yellow},
		{"Morning 08-11", 0, t.Green},
		{"Midday  12-15", 0, t.Green},
		{"Evening 16-19", 0, t.Green},
		{"Late    20-23", 0, t.Yellow},
	}
	for _, h := range a.hourly {
		buckets[min(h.Hour/4, 5)].total += h.Commands
	}

	maxBucket, numW := 0, 5
	for _, bk := range buckets {
		maxBucket = max(maxBucket, bk.total)
		numW = max(numW, len(cli.FormatCount(bk.total)))
	}

	// Room left for the bar after the 13-char label, the count column
	// and two separating spaces
	actInnerW := components.CardInnerWidth(halves[1])
	actBarMax := max(actInnerW-15-numW, 1)

	numStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	actRows := make([]string, len(buckets))
	for i, bk := range buckets {
		bl := 0
		if maxBucket > 0 {
			bl = bk.total * actBarMax / maxBucket
		}
		actRows[i] = fmt.Sprintf("%s %s %s",
			numStyle.Render(bk.label),
			numStyle.Render(fmt.Sprintf("%*s", numW, cli.FormatCount(bk.total))),
			lipgloss.NewStyle().Foreground(bk.color).Render(strings.Repeat("█", bl)))
	}
	actBody := strings.Join(actRows, "\n") + "\n"
	actCard := components.ContentCard("Shifts", actBody, halves[1])

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard(
			"Commands by Hour",
			components.BarChart(hourVals, hourLabels24(), t.Accent, components.CardInnerWidth(cw), hourChartH, nil),
			cw,
		))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Shifts", actBody, cw))
		b.WriteString("\n")
	} else {
		b.WriteString(components.CardRow([]string{hourCard, actCard}))
		b.WriteString("\n")
	}

	// Row 4: Top user files by run time
	if card := a.renderTopFilesCard(cw); card != "" {
		b.WriteString(card)
	}

	return b.String()
}

// renderTopFilesCard ranks operator files by summed run time. Returns
// an empty string when no user files appear in the history.
func (a App) renderTopFilesCard(cw int) string {
	t := theme.Active

	type fileTotal struct {
		name string
		runs int
		run  time.Duration
	}
	totals := make(map[string]*fileTotal)
	for _, s := range a.history {
		for _, c := range s.Commands {
			if !c.IsUserFile() {
				continue
			}
			ft, ok := totals[c.Filename]
			if !ok {
				ft = &fileTotal{name: c.Filename}
				totals[c.Filename] = ft
			}
			ft.runs++
			ft.run += c.Duration
		}
	}
	if len(totals) == 0 {
		return ""
	}

	files := make([]*fileTotal, 0, len(totals))
	for _, ft := range totals {
		files = append(files, ft)
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].run != files[j].run {
			return files[i].run > files[j].run
		}
		return files[i].name < files[j].name
	})

	limit := 5
	if len(files) < limit {
		limit = len(files)
	}

	innerW := components.CardInnerWidth(cw)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	durStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	nameW := innerW / 3
	if nameW < 12 {
		nameW = 12
	}
	barMaxLen := innerW - nameW - 26
	if barMaxLen < 1 {
		barMaxLen = 1
	}

	maxRun := files[0].run
	var body strings.Builder
	for _, ft := range files[:limit] {
		barLen := 0
		if maxRun > 0 {
			barLen = int(float64(ft.run) / float64(maxRun) * float64(barMaxLen))
		}
		fmt.Fprintf(&body, "%s %s %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(fileBase(ft.name), nameW))),
			barStyle.Render(strings.Repeat("█", barLen)),
			durStyle.Render(fmt.Sprintf("%s, %d runs", timeutil.FormatShort(ft.run), ft.runs)))
	}

	return components.ContentCard("Top Files", body.String(), cw)
}

// hourLabels24 returns X axis labels for the 24 hourly buckets, 12a
// through 11p.
func hourLabels24() []string {
	labels := make([]string, 24)
	for i := range labels {
		ap := "a"
		if i >= 12 {
			ap = "p"
		}
		h := i % 12
		if h == 0 {
			h = 12
		}
		labels[i] = strconv.Itoa(h) + ap
	}
	return labels
}
