package pipeline

import (
	"testing"
	"time"

	"github.com/theirongolddev/cnchist/internal/model"
)

func at(day, hour, min int) time.Time {
	return time.Date(2023, 1, day, hour, min, 0, 0, time.UTC)
}

func cmd(name string, start time.Time, dur time.Duration, status string) *model.Command {
	return &model.Command{
		Filename: name,
		Status:   status,
		Rapid:    dur,
		Duration: dur,
		Start:    start,
		End:      start.Add(dur),
	}
}

// session builds a recalculated session. A zero end leaves it open.
func session(start, end time.Time, cmds ...*model.Command) *model.Session {
	s := model.NewSession(start)
	for _, c := range cmds {
		s.Append(c)
	}
	if !end.IsZero() {
		s.Close(end)
	}
	s.Recalculate()
	return s
}

func sampleHistory() model.History {
	return model.History{
		session(at(1, 8, 0), at(1, 8, 30),
			cmd(`c:\jobs\a.tap`, at(1, 8, 5), 2*time.Minute, "Run was OK"),
			cmd(`c:\wincnc\tool.mac`, at(1, 8, 10), time.Minute, "ok"),
			cmd("home", at(1, 8, 12), 30*time.Second, "ok"),
		),
		session(at(1, 13, 0), at(1, 14, 0),
			cmd(`c:\jobs\b.tap`, at(1, 13, 30), 10*time.Minute, "Limit switch tripped"),
		),
		session(at(2, 9, 0), time.Time{},
			cmd("home", at(2, 9, 1), time.Minute, "ok"),
		),
	}
}

func TestSummarize(t *testing.T) {
	stats := Summarize(sampleHistory())

	if stats.Sessions != 3 {
		t.Errorf("Sessions = %d, want 3", stats.Sessions)
	}
	if stats.OpenSessions != 1 {
		t.Errorf("OpenSessions = %d, want 1", stats.OpenSessions)
	}
	if stats.ActiveDays != 2 {
		t.Errorf("ActiveDays = %d, want 2", stats.ActiveDays)
	}
	if stats.Commands != 5 {
		t.Errorf("Commands = %d, want 5", stats.Commands)
	}
	if stats.PlainCommands != 2 || stats.CommandFiles != 1 || stats.UserFiles != 2 {
		t.Errorf("kind counts = %d/%d/%d, want 2/1/2",
			stats.PlainCommands, stats.CommandFiles, stats.UserFiles)
	}
	if stats.Errors != 1 || stats.ErrorSessions != 1 {
		t.Errorf("errors = %d in %d sessions, want 1 in 1",
			stats.Errors, stats.ErrorSessions)
	}
	if want := 14*time.Minute + 30*time.Second; stats.TotalRun != want {
		t.Errorf("TotalRun = %v, want %v", stats.TotalRun, want)
	}
	if want := 90 * time.Minute; stats.TotalActual != want {
		t.Errorf("TotalActual = %v, want %v", stats.TotalActual, want)
	}
	if want := 4 * time.Minute; stats.TotalBetween != want {
		t.Errorf("TotalBetween = %v, want %v", stats.TotalBetween, want)
	}
	if want := 174 * time.Second; stats.AvgRun != want {
		t.Errorf("AvgRun = %v, want %v", stats.AvgRun, want)
	}
	if !stats.FirstStart.Equal(at(1, 8, 0)) {
		t.Errorf("FirstStart = %v, want %v", stats.FirstStart, at(1, 8, 0))
	}
	if !stats.LastEnd.Equal(at(1, 14, 0)) {
		t.Errorf("LastEnd = %v, want %v (open session excluded)", stats.LastEnd, at(1, 14, 0))
	}
}

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize(nil)
	if stats.Sessions != 0 || stats.Commands != 0 || stats.AvgRun != 0 {
		t.Errorf("empty history produced %+v", stats)
	}
}

func TestAggregateDaily(t *testing.T) {
	h := sampleHistory()
	// A session the parser opened implicitly, on a later day.
	h = append(h, session(time.Time{}, at(4, 10, 0),
		cmd(`c:\jobs\c.tap`, at(4, 9, 30), 5*time.Minute, "ok"),
	))

	days := AggregateDaily(h)

	if len(days) != 4 {
		t.Fatalf("days = %d, want 4 (gap day included)", len(days))
	}
	for i := 0; i < len(days)-1; i++ {
		if !days[i].Date.After(days[i+1].Date) {
			t.Fatalf("days not sorted most recent first: %v before %v",
				days[i].Date, days[i+1].Date)
		}
	}

	byDay := make(map[string]model.DailyStats, len(days))
	for _, d := range days {
		byDay[d.Date.Format("2006-01-02")] = d
	}

	d1 := byDay["2023-01-01"]
	if d1.Sessions != 2 || d1.Commands != 4 || d1.UserFiles != 2 || d1.Errors != 1 {
		t.Errorf("day 1 = %+v", d1)
	}
	if want := 13*time.Minute + 30*time.Second; d1.Run != want {
		t.Errorf("day 1 Run = %v, want %v", d1.Run, want)
	}

	if d3 := byDay["2023-01-03"]; d3.Sessions != 0 || d3.Commands != 0 {
		t.Errorf("gap day should be zero, got %+v", d3)
	}

	d4 := byDay["2023-01-04"]
	if d4.Sessions != 1 || d4.Commands != 1 {
		t.Errorf("implicit session not attributed to its command's day: %+v", d4)
	}
}

func TestAggregateHourly(t *testing.T) {
	hours := AggregateHourly(sampleHistory())

	if len(hours) != 24 {
		t.Fatalf("hours = %d, want 24", len(hours))
	}
	if hours[8].Commands != 3 {
		t.Errorf("08h commands = %d, want 3", hours[8].Commands)
	}
	if want := 3*time.Minute + 30*time.Second; hours[8].Run != want {
		t.Errorf("08h run = %v, want %v", hours[8].Run, want)
	}
	if hours[13].Commands != 1 || hours[9].Commands != 1 {
		t.Errorf("13h/09h commands = %d/%d, want 1/1",
			hours[13].Commands, hours[9].Commands)
	}
	if hours[0].Commands != 0 {
		t.Errorf("00h commands = %d, want 0", hours[0].Commands)
	}
}

func TestFilterByDay(t *testing.T) {
	h := sampleHistory()

	if got := FilterByDay(h, time.Time{}); len(got) != len(h) {
		t.Errorf("zero day filtered to %d sessions, want all %d", len(got), len(h))
	}
	if got := FilterByDay(h, at(1, 0, 0)); len(got) != 2 {
		t.Errorf("day 1 = %d sessions, want 2", len(got))
	}
	if got := FilterByDay(h, at(9, 0, 0)); len(got) != 0 {
		t.Errorf("day 9 = %d sessions, want 0", len(got))
	}
}

func TestFilterErrors(t *testing.T) {
	got := FilterErrors(sampleHistory())
	if len(got) != 1 {
		t.Fatalf("error sessions = %d, want 1", len(got))
	}
	if got[0].Commands[0].Filename != `c:\jobs\b.tap` {
		t.Errorf("wrong session kept: %q", got[0].Commands[0].Filename)
	}
}

func TestFilterFiles(t *testing.T) {
	got := FilterFiles(sampleHistory())
	if len(got) != 2 {
		t.Errorf("file sessions = %d, want 2", len(got))
	}
}

func TestFilterByName(t *testing.T) {
	h := sampleHistory()

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"empty keeps all", "", 3},
		{"exact", `c:\jobs\a.tap`, 1},
		{"substring", ".tap", 2},
		{"case folded", "A.TAP", 1},
		{"no match", "missing.nc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterByName(h, tt.query); len(got) != tt.want {
				t.Errorf("FilterByName(%q) = %d sessions, want %d",
					tt.query, len(got), tt.want)
			}
		})
	}
}
