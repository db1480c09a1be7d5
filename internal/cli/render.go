package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cnchist/internal/model"
)

// Flexoki Dark, matching the TUI theme.
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorText).Align(lipgloss.Center)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	valueStyle  = lipgloss.NewStyle().Foreground(ColorText)
	labelStyle  = lipgloss.NewStyle().Foreground(ColorTextMuted)
	dimStyle    = lipgloss.NewStyle().Foreground(ColorTextDim)

	okStyle          = lipgloss.NewStyle().Foreground(ColorGreen)
	errStyle         = lipgloss.NewStyle().Foreground(ColorRed)
	userFileStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
	commandFileStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	commandStyle     = lipgloss.NewStyle().Foreground(ColorTextMuted)
)

// RenderStatus colors a status value, errors in red like the
// controller's own display.
func RenderStatus(status string, isError bool) string {
	if isError {
		return errStyle.Render(status)
	}
	return okStyle.Render(status)
}

// RenderFilename colors a command name by its kind: user files stand
// out, command files take the accent, bare commands stay muted.
func RenderFilename(c *model.Command) string {
	switch {
	case c.IsUserFile():
		return userFileStyle.Render(c.Filename)
	case c.IsCommandFile():
		return commandFileStyle.Render(c.Filename)
	default:
		return commandStyle.Render(c.Filename)
	}
}

// Table is a bordered text table for CLI output. A row of just "---"
// renders as a separator line.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, measured from content if nil
}

// RenderTitle renders a centered title in a rounded box.
func RenderTitle(title string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)
	return box.Render(titleStyle.Render(title))
}

// columnWidths returns per-column widths, from t.Widths when set or
// from the widest header or cell otherwise.
func (t Table) columnWidths(numCols int) []int {
	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
		return widths
	}
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 {
		numCols = len(t.Rows[0])
	}
	widths := t.columnWidths(numCols)
	sep := dimStyle.Render("│")

	rule := func(left, join, right string) string {
		segs := make([]string, numCols)
		for i, w := range widths {
			segs[i] = strings.Repeat("─", w+2)
		}
		return dimStyle.Render(left+strings.Join(segs, join)+right) + "\n"
	}

	line := func(cells []string) string {
		return sep + strings.Join(cells, sep) + sep + "\n"
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}
	b.WriteString(rule("╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		cells := make([]string, numCols)
		for i, h := range t.Headers {
			cells[i] = headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h))
		}
		b.WriteString(line(cells))
		b.WriteString(rule("├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}
		cells := make([]string, numCols)
		for i := range cells {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			// The leading column is text, everything after is numeric
			// and right-aligned
			if i == 0 {
				cells[i] = valueStyle.Render(fmt.Sprintf(" %-*s ", widths[i], cell))
			} else {
				cells[i] = valueStyle.Render(fmt.Sprintf(" %*s ", widths[i], cell))
			}
		}
		b.WriteString(line(cells))
	}

	b.WriteString(rule("╰", "┴", "╯"))
	return b.String()
}

// RenderFields renders label/value rows with the labels right-aligned
// to a shared gutter.
func RenderFields(fields []Field) string {
	gutter := 0
	for _, f := range fields {
		if len(f.Label) > gutter {
			gutter = len(f.Label)
		}
	}

	var b strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&b, "  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%*s", gutter, f.Label)),
			valueStyle.Render(f.Value))
	}
	return b.String()
}

// RenderSparkline draws values as a row of unicode block characters
// scaled against the series maximum.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	blocks := []rune("▁▂▃▄▅▆▇█")
	var b strings.Builder
	for _, v := range values {
		idx := int(v / max * float64(len(blocks)-1))
		switch {
		case idx < 0:
			idx = 0
		case idx >= len(blocks):
			idx = len(blocks) - 1
		}
		b.WriteRune(blocks[idx])
	}
	return b.String()
}

// RenderHorizontalBar renders one bar of a horizontal chart, scaled
// to maxWidth at maxValue.
func RenderHorizontalBar(value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 {
		return ""
	}
	n := int(value / maxValue * float64(maxWidth))
	switch {
	case n < 0:
		n = 0
	case n > maxWidth:
		n = maxWidth
	}
	return strings.Repeat("█", n)
}
