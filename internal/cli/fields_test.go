package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/cnchist/internal/model"
	"github.com/theirongolddev/cnchist/internal/timeutil"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.in); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", `c:\jobs\a.tap`, 20, `c:\jobs\a.tap`},
		{"keeps tail", `c:\jobs\cabinets\door-left.tap`, 15, `…\door-left.tap`},
		{"no limit", `c:\jobs\a.tap`, 0, `c:\jobs\a.tap`},
		{"tiny", `c:\jobs\a.tap`, 1, "…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncatePath(tt.in, tt.max); got != tt.want {
				t.Errorf("TruncatePath(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func detailSession() *model.Session {
	start := time.Date(2023, 1, 2, 8, 0, 0, 0, time.UTC)
	s := model.NewSession(start)
	s.Append(&model.Command{
		Filename: `c:\jobs\a.tap`,
		Status:   "Run was OK",
		Rapid:    3 * time.Minute,
		Duration: 3 * time.Minute,
		Start:    time.Date(2023, 1, 2, 12, 2, 0, 0, time.UTC),
		End:      time.Date(2023, 1, 2, 12, 5, 0, 0, time.UTC),
	})
	s.Append(&model.Command{
		Filename: "home",
		Status:   "ok",
		Rapid:    time.Minute,
		Duration: time.Minute,
		Start:    time.Date(2023, 1, 2, 12, 20, 0, 0, time.UTC),
		End:      time.Date(2023, 1, 2, 12, 21, 0, 0, time.UTC),
	})
	s.Close(time.Date(2023, 1, 2, 12, 30, 0, 0, time.UTC))
	s.Recalculate()
	return s
}

func TestSessionFields(t *testing.T) {
	s := detailSession()
	fields := SessionFields(s)

	wantLabels := []string{
		"Start Time:", "End Time:",
		"Commands:", "System Commands:", "Command Files:", "User Files:",
		"Session Time:", "End of Day:",
		"Average Run Time:", "Time Between:", "Average Time Between:",
	}
	if len(fields) != len(wantLabels) {
		t.Fatalf("fields = %d, want %d", len(fields), len(wantLabels))
	}
	for i, want := range wantLabels {
		if fields[i].Label != want {
			t.Errorf("field %d label = %q, want %q", i, fields[i].Label, want)
		}
	}

	if fields[2].Value != "2" {
		t.Errorf("Commands value = %q, want 2", fields[2].Value)
	}
	if fields[6].Value != "04h:30m:00s" {
		t.Errorf("Session Time value = %q, want 04h:30m:00s", fields[6].Value)
	}
}

func TestSessionFields_Open(t *testing.T) {
	s := model.NewSession(time.Date(2023, 1, 2, 8, 0, 0, 0, time.UTC))
	s.Recalculate()

	fields := SessionFields(s)
	if fields[1].Value != "still open" {
		t.Errorf("End Time value = %q, want still open", fields[1].Value)
	}
}

func TestCommandFields_BreakAnnotation(t *testing.T) {
	s := detailSession()
	lunch, err := timeutil.ParseWindow("12:00-12:30")
	if err != nil {
		t.Fatal(err)
	}

	fields := CommandFields(s, s.Commands[1], []timeutil.Window{lunch})

	var before string
	for _, f := range fields {
		if f.Label == "Before:" {
			before = f.Value
		}
	}
	if before != "15m:00s (break)" {
		t.Errorf("Before value = %q, want gap marked as break", before)
	}

	// Without configured breaks the gap reads plain.
	fields = CommandFields(s, s.Commands[1], nil)
	for _, f := range fields {
		if f.Label == "Before:" && strings.Contains(f.Value, "break") {
			t.Errorf("unexpected break mark without windows: %q", f.Value)
		}
	}
}

func TestStateFields(t *testing.T) {
	c := &model.Command{}
	c.Axes[0] = "1.250"
	c.ATC[10] = "7"

	fields := StateFields(c)
	want := model.NumAxes + model.NumOutputs + model.NumInputs + model.NumATC
	if len(fields) != want {
		t.Fatalf("fields = %d, want %d", len(fields), want)
	}
	if fields[0].Label != "Axis 1:" || fields[0].Value != "1.250" {
		t.Errorf("first field = %+v", fields[0])
	}
	last := fields[len(fields)-1]
	if last.Label != "ATC1 T10:" || last.Value != "7" {
		t.Errorf("last field = %+v", last)
	}
}
