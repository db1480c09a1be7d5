// Package cli renders the plain-terminal output of the reporting
// commands.
package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/theirongolddev/cnchist/internal/timeutil"
)

// FormatCount adds comma separators to an integer: 1234567 becomes
// "1,234,567".
func FormatCount(n int) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	s := strconv.Itoa(n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}

// FormatPercent renders a 0-1 share as a percentage.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatTime renders a timestamp in the log's own display form, or
// "--" when unknown.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return timeutil.Display(t)
}

// FormatTimeHuman is FormatTime with a friendlier date.
func FormatTimeHuman(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return timeutil.DisplayHuman(t)
}

// FormatClock renders just the time of day, or "--" when unknown.
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return timeutil.Clock12(t)
}

// TruncatePath shortens a long path from the left, keeping the tail
// that names the file.
func TruncatePath(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return "…" + string(runes[len(runes)-max+1:])
}
