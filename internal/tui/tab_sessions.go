package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cnchist/internal/model"
	"github.com/theirongolddev/cnchist/internal/pipeline"
	"github.com/theirongolddev/cnchist/internal/timeutil"
	"github.com/theirongolddev/cnchist/internal/tui/components"
	"github.com/theirongolddev/cnchist/internal/tui/theme"
)

// Sessions tab layouts. Split is the zero value; Enter swaps the
// selected session into a full-width detail view and back.
const (
	sessViewSplit = iota
	sessViewDetail
)

// sessionsState carries the cursor, scroll and search state of the
// Sessions tab.
type sessionsState struct {
	cursor       int
	viewMode     int
	offset       int // scroll offset for the list
	detailScroll int // line offset into the detail pane

	searching   bool
	searchInput textinput.Model
	searchQuery string
}

// newSearchInput builds the filename search prompt.
func newSearchInput() textinput.Model {
	t := theme.Active
	ti := textinput.New()
	ti.Placeholder = "filename"
	ti.CharLimit = 128
	ti.Width = 30
	ti.Prompt = "/ "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(t.TextPrimary)
	return ti
}

// filterSessionsBySearch returns sessions that ran a file whose name
// contains the query.
func filterSessionsBySearch(sessions model.History, query string) model.History {
	return pipeline.FilterByName(sessions, query)
}

func (a App) renderSessionsContent(filtered model.History, cw, h int) string {
	ss := a.sessState
	t := theme.Active

	var top string
	if ss.searching {
		hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		top = " " + ss.searchInput.View() + hintStyle.Render("  [Enter] apply  [Esc] cancel") + "\n"
		h--
	}

	if len(filtered) == 0 {
		body := lipgloss.NewStyle().Foreground(t.TextMuted).Render("No sessions found")
		if ss.searchQuery != "" {
			body += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render("[Esc] clears the filter")
		}
		return top + components.ContentCard("Sessions", body, cw)
	}

	if ss.viewMode == sessViewDetail {
		return top + a.renderSessionDetail(filtered, cw, h)
	}
	return top + a.renderSessionsSplit(filtered, cw, h)
}

// listWindow scrolls a stored offset just far enough to keep cursor
// inside a window of visible rows, returning the half-open row range.
func listWindow(offset, cursor, visible, total int) (int, int) {
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+visible {
		offset = cursor - visible + 1
	}
	return offset, min(offset+visible, total)
}

func (a App) renderSessionsSplit(sessions model.History, cw, h int) string {
	ss := a.sessState
	if ss.cursor >= len(sessions) {
		return ""
	}

	// A third of the width for the list, the rest for the detail pane.
	leftW := max(cw/3, 34)
	rightW := cw - leftW
	leftInner := components.CardInnerWidth(leftW)

	t := theme.Active
	headerStyle, mutedStyle := detailStyles()
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	errorStyle := rowStyle.Foreground(t.Red)
	selectedStyle := rowStyle.Background(t.Surface).Bold(true)

	visible := max(h-6, 5) // horizontal borders, list header, footer hint
	start, end := listWindow(ss.offset, ss.cursor, visible, len(sessions))

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		s := sessions[i]
		startStr := ""
		if t0 := sessionStart(s); !t0.IsZero() {
			startStr = t0.Format("Jan 02 15:04")
		}

		// One-column marker: "!" errored, "+" still open
		mark := " "
		if _, closed := s.End(); !closed {
			mark = "+"
		}
		if s.HasError() {
			mark = "!"
		}

		row := fmt.Sprintf("%-13s %10s %s", startStr, timeutil.FormatShort(s.Totals.Total), mark)
		row = row[:min(len(row), leftInner)]

		style := rowStyle
		switch {
		case i == ss.cursor:
			style = selectedStyle
		case s.HasError():
			style = errorStyle
		}
		rows = append(rows, style.Render(row))
	}

	leftTitle := fmt.Sprintf("Sessions (%d)", len(sessions))
	if ss.searchQuery != "" {
		leftTitle = fmt.Sprintf("Sessions /%s (%d)", ss.searchQuery, len(sessions))
	}
	leftCard := components.ContentCard(leftTitle, strings.Join(rows, "\n")+"\n", leftW)

	sel := sessions[ss.cursor]
	rightBody := scrollBody(a.renderDetailBody(sel, rightW, headerStyle, mutedStyle), ss.detailScroll)
	rightCard := components.ContentCard("Session "+shortID(sel.ID), rightBody, rightW)

	return components.CardRow([]string{leftCard, rightCard})
}

// renderSessionDetail draws one session across the whole content area.
func (a App) renderSessionDetail(sessions model.History, cw, h int) string {
	ss := a.sessState
	if ss.cursor >= len(sessions) {
		return ""
	}

	headerStyle, mutedStyle := detailStyles()
	sel := sessions[ss.cursor]
	body := scrollBody(a.renderDetailBody(sel, cw, headerStyle, mutedStyle), ss.detailScroll)
	return components.ContentCard("Session "+shortID(sel.ID), body, cw)
}

// detailStyles returns the header and muted styles shared by the split
// right pane and the full-screen detail view.
func detailStyles() (lipgloss.Style, lipgloss.Style) {
	t := theme.Active
	header := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	return header, lipgloss.NewStyle().Foreground(t.TextMuted)
}

// renderDetailBody renders one session in depth. The split right pane
// and the full-screen view both feed it their own width.
func (a App) renderDetailBody(sel *model.Session, w int, headerStyle, mutedStyle lipgloss.Style) string {
	t := theme.Active
	innerW := components.CardInnerWidth(w)

	labelStyle := mutedStyle
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	redStyle := valueStyle.Foreground(t.Red)
	yellowStyle := valueStyle.Foreground(t.Yellow)

	var body strings.Builder
	line := func(s string) {
		body.WriteString(s)
		body.WriteByte('\n')
	}

	if t0 := sessionStart(sel); !t0.IsZero() {
		line(mutedStyle.Render(timeutil.DateHuman(t0)))
	}
	line(mutedStyle.Render(strings.Repeat("─", innerW)))
	line("")

	// Run time plus the wall-clock span
	spanStr := ""
	if t0 := sessionStart(sel); !t0.IsZero() {
		spanStr = timeutil.Clock12(t0)
		if end, closed := sel.End(); closed {
			spanStr += " - " + timeutil.Clock12(end)
		} else {
			spanStr += " - open"
		}
	}
	line(fmt.Sprintf("%s %s (%s)",
		labelStyle.Render("Run time:"),
		valueStyle.Render(timeutil.FormatShort(sel.Totals.Total)),
		mutedStyle.Render(spanStr)))

	errStr := valueStyle.Render("0")
	if n := countErrors(sel); n > 0 {
		errStr = redStyle.Render(strconv.Itoa(n))
	}
	line(fmt.Sprintf("%s %s    %s %s    %s %s",
		labelStyle.Render("Commands:"), valueStyle.Render(strconv.Itoa(len(sel.Commands))),
		labelStyle.Render("Files:"), valueStyle.Render(strconv.Itoa(sel.Totals.CommandFiles+sel.Totals.UserFiles)),
		labelStyle.Render("Errors:"), errStr))
	line("")

	// Share of the session's wall time spent running (closed sessions only)
	if actual := sel.Totals.Actual; actual > 0 {
		pct := float64(sel.Totals.Total) / float64(actual)
		if barW := min(innerW-16, 40); barW >= 10 {
			line(components.UtilizationBar("Cutting", pct, 8, barW))
			line("")
		}
	}

	// Timing breakdown table
	line(headerStyle.Render("TIMING"))
	line(mutedStyle.Render(strings.Repeat("─", 28)))

	timings := []struct {
		label string
		d     time.Duration
	}{
		{"Run Time", sel.Totals.Total},
		{"Session Time", sel.Totals.Actual},
		{"Between Cmds", sel.Totals.Between},
		{"End of Day", sel.Totals.EndOfDay},
		{"Average Run", sel.Totals.AvgRun},
		{"Average Gap", sel.Totals.AvgBetween},
	}
	for _, r := range timings {
		if r.d == 0 && r.label != "Run Time" {
			continue
		}
		line(labelStyle.Render(fmt.Sprintf("%-14s", r.label)) + " " +
			valueStyle.Render(fmt.Sprintf("%13s", timeutil.FormatShort(r.d))))
	}

	// Command list
	if len(sel.Commands) > 0 {
		line("")
		line(headerStyle.Render(fmt.Sprintf("COMMANDS (%d)", len(sel.Commands))))
		line(headerStyle.Render(fmt.Sprintf("%-11s %10s  %s", "Time", "Run", "File")))
		line(mutedStyle.Render(strings.Repeat("─", innerW)))

		nameW := max(innerW-25, 10)
		for _, c := range sel.Commands {
			name := c.Filename
			if c.IsFile() {
				name = fileBase(name)
			}
			row := fmt.Sprintf("%-11s %10s  %s",
				timeutil.Clock12(c.Start),
				timeutil.FormatShort(c.Duration),
				truncStr(name, nameW))

			switch {
			case c.IsError():
				line(redStyle.Render(row))
			case c.IsUserFile():
				line(valueStyle.Render(row))
			default:
				line(mutedStyle.Render(row))
			}
		}
	}

	if _, closed := sel.End(); !closed {
		line("")
		line(yellowStyle.Render("(session still open)"))
	}

	line("")
	body.WriteString(mutedStyle.Render("[Enter] expand  [J/K] scroll  [j/k] navigate  [q] quit"))

	return body.String()
}

// scrollBody drops skip leading lines from a detail body, keeping at
// least three lines visible so the pane never scrolls to nothing.
func scrollBody(body string, skip int) string {
	if skip <= 0 {
		return body
	}
	lines := strings.Split(body, "\n")
	limit := len(lines) - 3
	if limit < 0 {
		limit = 0
	}
	if skip > limit {
		skip = limit
	}
	return strings.Join(lines[skip:], "\n")
}

// sessionStart returns the best-known start: the starting marker, or
// the first command for sessions the log opened mid-run.
func sessionStart(s *model.Session) time.Time {
	if !s.StartTime.IsZero() {
		return s.StartTime
	}
	if len(s.Commands) > 0 {
		return s.Commands[0].Start
	}
	return time.Time{}
}

func countErrors(s *model.Session) int {
	n := 0
	for _, c := range s.Commands {
		if c.IsError() {
			n++
		}
	}
	return n
}

// fileBase returns the last element of a logged path. The controller
// writes Windows paths, so this splits on backslashes.
func fileBase(name string) string {
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func shortID(id model.ID) string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}
