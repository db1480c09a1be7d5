// Package pipeline computes cross-session aggregates and filtered
// views of a parsed machine history.
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/theirongolddev/cnchist/internal/model"
)

// Log timestamps carry no zone information, so days and hours are
// bucketed exactly as written rather than converted to local time.

// Summarize computes whole-history statistics.
func Summarize(h model.History) model.SummaryStats {
	var (
		stats      model.SummaryStats
		activeDays = map[string]struct{}{}
	)

	for _, s := range h {
		stats.Sessions++
		end, closed := s.End()
		if !closed {
			stats.OpenSessions++
		}

		if day := sessionDay(s); !day.IsZero() {
			activeDays[dayKey(day)] = struct{}{}
		}

		hasError := false
		for _, c := range s.Commands {
			stats.Commands++
			switch {
			case c.IsCommandFile():
				stats.CommandFiles++
			case c.IsFile():
				stats.UserFiles++
			default:
				stats.PlainCommands++
			}
			if c.IsError() {
				stats.Errors++
				hasError = true
			}
		}
		if hasError {
			stats.ErrorSessions++
		}

		stats.TotalRun += s.Totals.Total
		stats.TotalActual += s.Totals.Actual
		stats.TotalBetween += s.Totals.Between

		if start := firstKnown(s); !start.IsZero() {
			if stats.FirstStart.IsZero() || start.Before(stats.FirstStart) {
				stats.FirstStart = start
			}
		}
		if closed && end.After(stats.LastEnd) {
			stats.LastEnd = end
		}
	}

	stats.ActiveDays = len(activeDays)
	if stats.Commands > 0 {
		stats.AvgRun = stats.TotalRun / time.Duration(stats.Commands)
	}

	return stats
}

// AggregateDaily computes per-day statistics. Days between the first
// and last active day with no sessions are filled in as zeros so a
// chart shows gaps instead of skipping them. Most recent day first.
func AggregateDaily(h model.History) []model.DailyStats {
	dayMap := make(map[string]*model.DailyStats)

	for _, s := range h {
		day := sessionDay(s)
		if day.IsZero() {
			continue
		}
		ds := dayMap[dayKey(day)]
		if ds == nil {
			ds = &model.DailyStats{Date: day}
			dayMap[dayKey(day)] = ds
		}

		ds.Sessions++
		ds.Run += s.Totals.Total
		ds.Actual += s.Totals.Actual
		for _, c := range s.Commands {
			ds.Commands++
			if c.IsUserFile() {
				ds.UserFiles++
			}
			if c.IsError() {
				ds.Errors++
			}
		}
	}

	if len(dayMap) > 0 {
		var first, last time.Time
		for _, ds := range dayMap {
			if first.IsZero() || ds.Date.Before(first) {
				first = ds.Date
			}
			if ds.Date.After(last) {
				last = ds.Date
			}
		}
		for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
			if _, ok := dayMap[dayKey(day)]; !ok {
				dayMap[dayKey(day)] = &model.DailyStats{Date: day}
			}
		}
	}

	days := make([]model.DailyStats, 0, len(dayMap))
	for _, ds := range dayMap {
		days = append(days, *ds)
	}
	slices.SortFunc(days, func(a, b model.DailyStats) int {
		return b.Date.Compare(a.Date)
	})
	return days
}

// AggregateHourly computes command counts and run time by hour of day.
// Commands are attributed to the hour their run started in.
func AggregateHourly(h model.History) []model.HourlyStats {
	var hours [24]model.HourlyStats
	for i := range hours {
		hours[i].Hour = i
	}

	for _, s := range h {
		for _, c := range s.Commands {
			if c.Start.IsZero() {
				continue
			}
			hh := c.Start.Hour()
			hours[hh].Commands++
			hours[hh].Run += c.Duration
		}
	}

	return hours[:]
}

// FilterByDay returns sessions that started on the given calendar day.
func FilterByDay(h model.History, day time.Time) model.History {
	if day.IsZero() {
		return h
	}
	key := dayKey(day)

	var result model.History
	for _, s := range h {
		if d := sessionDay(s); !d.IsZero() && dayKey(d) == key {
			result = append(result, s)
		}
	}
	return result
}

// FilterErrors returns sessions containing at least one failed command.
func FilterErrors(h model.History) model.History {
	var result model.History
	for _, s := range h {
		if s.HasError() {
			result = append(result, s)
		}
	}
	return result
}

// FilterFiles returns sessions that ran at least one user file.
func FilterFiles(h model.History) model.History {
	var result model.History
	for _, s := range h {
		if anyCommand(s, (*model.Command).IsUserFile) {
			result = append(result, s)
		}
	}
	return result
}

// FilterByName returns sessions with a command whose filename contains
// the given substring, case-insensitively.
func FilterByName(h model.History, name string) model.History {
	if name == "" {
		return h
	}
	want := strings.ToLower(name)
	var result model.History
	for _, s := range h {
		matched := anyCommand(s, func(c *model.Command) bool {
			return strings.Contains(strings.ToLower(c.Filename), want)
		})
		if matched {
			result = append(result, s)
		}
	}
	return result
}

func anyCommand(s *model.Session, pred func(*model.Command) bool) bool {
	for _, c := range s.Commands {
		if pred(c) {
			return true
		}
	}
	return false
}

// sessionDay returns the start of the calendar day a session belongs
// to. Sessions with no recorded start fall back to their first command.
func sessionDay(s *model.Session) time.Time {
	t := firstKnown(s)
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func firstKnown(s *model.Session) time.Time {
	if !s.StartTime.IsZero() {
		return s.StartTime
	}
	if len(s.Commands) > 0 {
		return s.Commands[0].Start
	}
	return time.Time{}
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
