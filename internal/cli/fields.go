package cli

import (
	"fmt"
	"time"

	"github.com/theirongolddev/cnchist/internal/model"
	"github.com/theirongolddev/cnchist/internal/timeutil"
)

// Field is one label/value row in a detail view.
type Field struct {
	Label string
	Value string
}

// SessionFields returns the detail rows for a session in display
// order, labeled the way the shop floor reads them.
func SessionFields(s *model.Session) []Field {
	end, closed := s.End()
	endText := "still open"
	if closed {
		endText = FormatTimeHuman(end)
	}

	return []Field{
		{"Start Time:", FormatTimeHuman(s.StartTime)},
		{"End Time:", endText},
		{"Commands:", FormatCount(len(s.Commands))},
		{"System Commands:", FormatCount(s.Totals.Commands)},
		{"Command Files:", FormatCount(s.Totals.CommandFiles)},
		{"User Files:", FormatCount(s.Totals.UserFiles)},
		{"Session Time:", timeutil.FormatShort(s.Totals.Actual)},
		{"End of Day:", timeutil.FormatShort(s.Totals.EndOfDay)},
		{"Average Run Time:", timeutil.FormatShort(s.Totals.AvgRun)},
		{"Time Between:", timeutil.FormatShort(s.Totals.Between)},
		{"Average Time Between:", timeutil.FormatShort(s.Totals.AvgBetween)},
	}
}

// CommandFields returns the detail rows for a command within its
// session. Idle gaps overlapping a break window get marked so they
// are not read as machine trouble.
func CommandFields(s *model.Session, c *model.Command, breaks []timeutil.Window) []Field {
	before := s.TimeBefore(c)
	after := s.TimeAfter(c)

	return []Field{
		{"File:", c.Filename},
		{"Type:", c.Kind()},
		{"Status:", c.Status},
		{"Start Time:", FormatTime(c.Start)},
		{"End Time:", FormatTime(c.End)},
		{"Rapid:", timeutil.FormatShort(c.Rapid)},
		{"Feed:", timeutil.FormatShort(c.Feed)},
		{"Laser:", timeutil.FormatShort(c.Laser)},
		{"Run Time:", timeutil.FormatLong(c.Duration)},
		{"Before:", annotateGap(before, c.Start.Add(-before/2), breaks)},
		{"After:", annotateGap(after, c.End.Add(after/2), breaks)},
	}
}

// StateFields returns the raw machine-state snapshot of a command,
// labeled as the controller names the columns.
func StateFields(c *model.Command) []Field {
	fields := make([]Field, 0, model.NumAxes+model.NumOutputs+model.NumInputs+model.NumATC)
	for i, v := range c.Axes {
		fields = append(fields, Field{fmt.Sprintf("Axis %d:", i+1), v})
	}
	for i, v := range c.Outputs {
		fields = append(fields, Field{fmt.Sprintf("Output C%d:", i+1), v})
	}
	for i, v := range c.Inputs {
		fields = append(fields, Field{fmt.Sprintf("Input C%d:", i+1), v})
	}
	for i, v := range c.ATC {
		fields = append(fields, Field{fmt.Sprintf("ATC1 T%d:", i), v})
	}
	return fields
}

func annotateGap(d time.Duration, midpoint time.Time, breaks []timeutil.Window) string {
	text := timeutil.FormatShort(d)
	if d <= 0 {
		return text
	}
	for _, w := range breaks {
		if w.Contains(midpoint) {
			return text + " (break)"
		}
	}
	return text
}
