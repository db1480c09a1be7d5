package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/cnchist/internal/model"
	"github.com/theirongolddev/cnchist/internal/tui/components"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < len(components.Tabs); active++ {
		a := App{activeTab: active}
		pos := 1 // leading space in the tab bar

		for i, tab := range components.Tabs {
			w := components.TabVisualWidth(tab, i == active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < len(components.Tabs)-1 {
				// Clicks on the separator hit nothing
				if got := a.tabAtX(pos); got != -1 {
					t.Fatalf("active=%d separator x=%d -> tab=%d, want -1", active, pos, got)
				}
				pos += 2
			}
		}

		if got := a.tabAtX(0); got != -1 {
			t.Fatalf("active=%d leading edge -> tab=%d, want -1", active, got)
		}
		if got := a.tabAtX(pos + 50); got != -1 {
			t.Fatalf("active=%d far right -> tab=%d, want -1", active, got)
		}
	}
}

func testSession(start time.Time, filenames ...string) *model.Session {
	s := model.NewSession(start)
	at := start
	for _, name := range filenames {
		at = at.Add(time.Minute)
		s.Append(&model.Command{
			Filename: name,
			Status:   "ok",
			Duration: 30 * time.Second,
			Start:    at,
			End:      at.Add(30 * time.Second),
		})
	}
	s.Close(at.Add(time.Hour))
	s.Recalculate()
	return s
}

func TestFilterSessionsBySearch(t *testing.T) {
	base := time.Date(2023, 3, 6, 8, 0, 0, 0, time.UTC)
	sessions := model.History{
		testSession(base, `c:\users\ed\wing_rib.tap`, "home"),
		testSession(base.AddDate(0, 0, 1), `c:\users\ed\spar_cap.tap`),
		testSession(base.AddDate(0, 0, 2), "g0 x0 y0"),
	}

	tests := []struct {
		query string
		want  int
	}{
		{"", 3},
		{"wing", 1},
		{"WING", 1},
		{".tap", 2},
		{"nothing-here", 0},
	}
	for _, tt := range tests {
		got := filterSessionsBySearch(sessions, tt.query)
		if len(got) != tt.want {
			t.Errorf("query %q matched %d sessions, want %d", tt.query, len(got), tt.want)
		}
	}
}

func TestRecomputeReversesAndClamps(t *testing.T) {
	base := time.Date(2023, 3, 6, 8, 0, 0, 0, time.UTC)
	h := model.History{
		testSession(base, "home"),
		testSession(base.AddDate(0, 0, 1), "home"),
		testSession(base.AddDate(0, 0, 2), "home"),
	}

	a := App{history: h}
	a.sessState.cursor = 99
	a.daily.cursor = 99
	a.recompute()

	if len(a.sessions) != 3 {
		t.Fatalf("sessions = %d, want 3", len(a.sessions))
	}
	if a.sessions[0] != h[2] {
		t.Error("sessions[0] is not the newest session")
	}
	if a.sessions[2] != h[0] {
		t.Error("sessions[2] is not the oldest session")
	}
	if a.sessState.cursor != 2 {
		t.Errorf("session cursor = %d, want 2", a.sessState.cursor)
	}
	if a.daily.cursor >= len(a.dailyStats) {
		t.Errorf("daily cursor = %d beyond %d days", a.daily.cursor, len(a.dailyStats))
	}

	a.history = nil
	a.recompute()
	if a.sessState.cursor != 0 {
		t.Errorf("cursor after emptying = %d, want 0", a.sessState.cursor)
	}
}

func TestScrollBody(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = strings.Repeat("x", i+1)
	}
	body := strings.Join(lines, "\n")

	if got := scrollBody(body, 0); got != body {
		t.Error("skip 0 should return the body unchanged")
	}

	got := strings.Split(scrollBody(body, 4), "\n")
	if len(got) != 6 || got[0] != lines[4] {
		t.Errorf("skip 4: got %d lines starting %q", len(got), got[0])
	}

	// Over-scrolling keeps the last three lines visible
	got = strings.Split(scrollBody(body, 100), "\n")
	if len(got) != 3 || got[0] != lines[7] {
		t.Errorf("skip 100: got %d lines starting %q", len(got), got[0])
	}
}

func TestChartDateLabels(t *testing.T) {
	// Newest first, crossing a month boundary
	days := []model.DailyStats{
		{Date: time.Date(2023, 2, 2, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)},
	}

	got := chartDateLabels(days)
	want := []string{"Jan", "Feb", "2"}
	if len(got) != len(want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	single := chartDateLabels(days[:1])
	if len(single) != 1 || single[0] != "Feb" {
		t.Errorf("single day labels = %v, want [Feb]", single)
	}
}

func TestFormatAdjust(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{90 * time.Minute, "+1h30m"},
		{-45 * time.Minute, "-45m"},
		{2 * time.Hour, "+2h"},
		{0, "+0m"},
		{-3*time.Hour - 15*time.Minute, "-3h15m"},
	}
	for _, tt := range tests {
		if got := formatAdjust(tt.d); got != tt.want {
			t.Errorf("formatAdjust(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFileBase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`c:\users\ed\wing_rib.tap`, "wing_rib.tap"},
		{`c:\wincnc\macro\home.mac`, "home.mac"},
		{"g0 x0 y0", "g0 x0 y0"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := fileBase(tt.in); got != tt.want {
			t.Errorf("fileBase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
