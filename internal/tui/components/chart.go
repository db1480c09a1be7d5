package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/cnchist/internal/tui/theme"
)

// Sparkline renders a one-line unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	blocks := []rune("▁▂▃▄▅▆▇█")
	var buf strings.Builder
	buf.Grow(len(values) * 4)
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		switch {
		case idx < 0:
			idx = 0
		case idx >= len(blocks):
			idx = len(blocks) - 1
		}
		buf.WriteRune(blocks[idx])
	}

	t := theme.Active
	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(buf.String())
}

// HourTicks formats a y-axis tick for charts whose values are hours of
// run time. Whole hours render as "7h", fractions as "7h30m" or "45m".
func HourTicks(v float64) string {
	h := int(v)
	m := int(math.Round((v - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	switch {
	case h == 0 && m == 0:
		return "0"
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%02dm", h, m)
	}
}

// chartScale is the y-axis geometry for a bar chart: a 1-2-5 tick
// step widened until the ceiling fits the height budget, and how many
// terminal rows each tick interval spans.
type chartScale struct {
	step    float64
	ceiling float64
	ticks   int
	perTick int
	rows    int
}

func pickScale(maxVal float64, height int) chartScale {
	step := chartTickStep(maxVal)
	budget := height / 2
	if budget < 2 {
		budget = 2
	}
	for int(math.Ceil(maxVal/step)) > budget {
		step *= 2
	}

	ceiling := math.Ceil(maxVal/step) * step
	ticks := int(math.Round(ceiling / step))
	if ticks < 1 {
		ticks = 1
	}
	perTick := height / ticks
	if perTick < 2 {
		perTick = 2
	}
	return chartScale{
		step:    step,
		ceiling: ceiling,
		ticks:   ticks,
		perTick: perTick,
		rows:    perTick * ticks,
	}
}

// barCell draws the barW-wide slice of one bar between a row's bottom
// and top thresholds: full block, blank, or a partial block char.
func barCell(v, top, bottom float64, barW int) string {
	if v >= top {
		return strings.Repeat("█", barW)
	}
	if v <= bottom {
		return strings.Repeat(" ", barW)
	}
	ramp := []rune(" ▁▂▃▄▅▆▇█")
	idx := int((v - bottom) / (top - bottom) * 8)
	if idx < 1 {
		idx = 1
	}
	if idx > 8 {
		idx = 8
	}
	return strings.Repeat(string(ramp[idx]), barW)
}

// BarChart renders a vertical bar chart with a y-axis and optional
// x-axis labels. tick formats the y-axis values; nil means plain
// count formatting. Falls back to a sparkline when the area is too
// small to hold an axis.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int, tick func(float64) string) string {
	// An axis needs room; tiny areas degrade to a bare sparkline.
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}
	if len(values) == 0 {
		return ""
	}
	if tick == nil {
		tick = formatChartLabel
	}

	maxVal := 0.0
	for _, v := range values {
		maxVal = max(maxVal, v)
	}
	if maxVal == 0 {
		maxVal = 1
	}
	sc := pickScale(maxVal, height)

	yLabelW := len(tick(sc.ceiling)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}
	tickLabels := make(map[int]string, sc.ticks)
	for i := 1; i <= sc.ticks; i++ {
		tickLabels[i*sc.perTick] = tick(sc.step * float64(i))
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}
	values, labels, barW, gap := fitBars(values, labels, chartW)
	n := len(values)
	axisLen := n*barW + max(0, n-1)*gap

	t := theme.Active
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	spacer := lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", gap))

	var b strings.Builder
	for row := sc.rows; row >= 1; row-- {
		top := sc.ceiling * float64(row) / float64(sc.rows)
		bottom := sc.ceiling * float64(row-1) / float64(sc.rows)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))
		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(spacer)
			}
			b.WriteString(barStyle.Render(barCell(v, top, bottom, barW)))
		}
		b.WriteString("\n")
	}

	// Baseline with its own 0 tick
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	if len(labels) == n && n > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(layoutAxisLabels(labels, barW, gap, axisLen)))
	}

	return b.String()
}

// fitBars sizes bars to the chart width, downsampling evenly when the
// series has more points than 2-column bars can fit.
func fitBars(values []float64, labels []string, chartW int) ([]float64, []string, int, int) {
	n := len(values)
	if n == 0 {
		return values, labels, 2, 0
	}
	if n == 1 {
		return values, labels, min(chartW, 6), 0
	}

	if barW := (chartW - (n - 1)) / n; barW >= 2 {
		return values, labels, min(barW, 6), 1
	}

	// Too many points even at two columns apiece: keep evenly spaced
	// picks from the series, endpoints included.
	keep := max((chartW+1)/3, 2)
	vals := make([]float64, keep)
	var lbls []string
	if len(labels) == n {
		lbls = make([]string, keep)
	}
	for i := range vals {
		src := i * (n - 1) / (keep - 1)
		vals[i] = values[src]
		if lbls != nil {
			lbls[i] = labels[src]
		}
	}
	return vals, lbls, 2, 1
}

// layoutAxisLabels places x-axis labels under their bars, skipping any
// that would collide and always trying to land the last one.
func layoutAxisLabels(labels []string, barW, gap, axisLen int) string {
	n := len(labels)
	buf := make([]byte, axisLen)
	for i := range buf {
		buf[i] = ' '
	}

	minSpacing := 8
	labelStep := max(1, (n*minSpacing)/(axisLen+1))

	lastEnd := -1
	for i := 0; i < n; i += labelStep {
		pos := i * (barW + gap)
		lbl := labels[i]
		end := pos + len(lbl)
		if pos <= lastEnd {
			continue
		}
		if end > axisLen {
			end = axisLen
			if end-pos < 3 {
				continue
			}
			lbl = lbl[:end-pos]
		}
		copy(buf[pos:end], lbl)
		lastEnd = end + 1
	}
	if n > 1 {
		lbl := labels[n-1]
		pos := (n - 1) * (barW + gap)
		end := pos + len(lbl)
		if end > axisLen {
			pos = axisLen - len(lbl)
			end = axisLen
		}
		if pos >= 0 && pos > lastEnd {
			for j := pos; j < end; j++ {
				buf[j] = ' '
			}
			copy(buf[pos:end], lbl)
		}
	}

	return strings.TrimRight(string(buf), " ")
}

// chartTickStep picks a tick interval in a 1-2-5 progression, aiming
// for about five ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5 // about five ticks
	mag := math.Pow(10, math.Floor(math.Log10(rough)))
	switch f := rough / mag; {
	case f < 1.5:
		return mag
	case f < 3.5:
		return 2 * mag
	default:
		return 5 * mag
	}
}

// formatChartLabel abbreviates counts for axis ticks: 850, 1.5k, 12M.
func formatChartLabel(v float64) string {
	abbrev := func(div float64, suffix string) string {
		s := v / div
		if s == math.Trunc(s) {
			return fmt.Sprintf("%.0f%s", s, suffix)
		}
		return fmt.Sprintf("%.1f%s", s, suffix)
	}
	switch {
	case v >= 1e6:
		return abbrev(1e6, "M")
	case v >= 1e3:
		return abbrev(1e3, "k")
	case v >= 1:
		return strconv.FormatFloat(v, 'f', 0, 64)
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}
