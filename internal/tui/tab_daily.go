package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cnchist/internal/cli"
	"github.com/theirongolddev/cnchist/internal/timeutil"
	"github.com/theirongolddev/cnchist/internal/tui/components"
	"github.com/theirongolddev/cnchist/internal/tui/theme"
)

// dailyState holds the daily tab state.
type dailyState struct {
	cursor int
	offset int // scroll offset for the table
}

func (a App) renderDailyTab(cw, h int) string {
	t := theme.Active
	days := a.dailyStats
	ds := a.daily

	if len(days) == 0 {
		return components.ContentCard("Daily",
			lipgloss.NewStyle().Foreground(t.TextMuted).Render("No activity recorded"), cw)
	}

	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	idleStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	errStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true).Underline(true)

	compact := a.isCompactLayout()

	var body strings.Builder
	if compact {
		body.WriteString(headerStyle.Render(fmt.Sprintf("%-9s %-4s %6s %5s %11s", "Date", "Day", "Cmds", "Errs", "Run Time")))
	} else {
		body.WriteString(headerStyle.Render(fmt.Sprintf("%-9s %-4s %5s %6s %6s %5s %12s %12s",
			"Date", "Day", "Sess", "Cmds", "Files", "Errs", "Run Time", "Wall Time")))
	}
	body.WriteString("\n")
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	// Visible window follows the cursor
	visible := h - 9 // card border (2) + title + header rows (3) + totals (2) + hint (2)
	if visible < 5 {
		visible = 5
	}
	offset := ds.offset
	if ds.cursor < offset {
		offset = ds.cursor
	}
	if ds.cursor >= offset+visible {
		offset = ds.cursor - visible + 1
	}
	end := offset + visible
	if end > len(days) {
		end = len(days)
	}

	for i := offset; i < end; i++ {
		d := days[i]

		errCell := fmt.Sprintf("%5d", d.Errors)
		var line string
		if compact {
			line = fmt.Sprintf("%-9s %-4s %6s %s %11s",
				timeutil.DateShort(d.Date),
				d.Date.Format("Mon"),
				cli.FormatCount(d.Commands),
				errCell,
				timeutil.FormatShort(d.Run))
		} else {
			line = fmt.Sprintf("%-9s %-4s %5d %6s %6d %s %12s %12s",
				timeutil.DateShort(d.Date),
				d.Date.Format("Mon"),
				d.Sessions,
				cli.FormatCount(d.Commands),
				d.UserFiles,
				errCell,
				timeutil.FormatShort(d.Run),
				timeutil.FormatShort(d.Actual))
		}

		switch {
		case i == ds.cursor:
			body.WriteString(selectedStyle.Render(line))
		case d.Errors > 0:
			body.WriteString(errStyle.Render(line))
		case d.Sessions == 0:
			// Gap-filler day with no activity
			body.WriteString(idleStyle.Render(line))
		case isWeekend(d.Date):
			body.WriteString(mutedStyle.Render(line))
		default:
			body.WriteString(rowStyle.Render(line))
		}
		body.WriteString("\n")
	}

	if end < len(days) || offset > 0 {
		body.WriteString(mutedStyle.Render(fmt.Sprintf("%d-%d of %d", offset+1, end, len(days))))
		body.WriteString("\n")
	}

	// Totals over the whole range, not just the visible window
	var runSum, wallSum time.Duration
	cmdSum := 0
	for _, d := range days {
		runSum += d.Run
		wallSum += d.Actual
		cmdSum += d.Commands
	}
	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")
	body.WriteString(rowStyle.Render(fmt.Sprintf("%-14s %s commands, %s run, %s wall",
		"Total", cli.FormatCount(cmdSum), timeutil.FormatShort(runSum), timeutil.FormatShort(wallSum))))
	body.WriteString("\n\n")
	body.WriteString(mutedStyle.Render("[j/k] navigate  [g/G] newest/oldest"))

	title := fmt.Sprintf("Daily Activity (%d days)", len(days))
	return components.ContentCard(title, body.String(), cw)
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
