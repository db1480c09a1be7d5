package timeutil

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

func TestParseStamp(t *testing.T) {
	got, err := ParseStamp("01-02-23 08:04:55")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2023, 1, 2, 8, 4, 55, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseStamp = %v, want %v", got, want)
	}
}

func TestParseStamp_Invalid(t *testing.T) {
	for _, s := range []string{"", "01-02-23", "2023-01-02 08:04:55", "01-02-23 25:00:00"} {
		if _, err := ParseStamp(s); err == nil {
			t.Errorf("ParseStamp(%q): expected error", s)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
		ok    bool
	}{
		{"simple", "01:29", time.Minute + 29*time.Second, true},
		{"zero", "00:00", 0, true},
		{"big minutes", "90:00", 90 * time.Minute, true},
		{"unpadded", "3:5", 3*time.Minute + 5*time.Second, true},
		{"no colon", "0129", 0, false},
		{"three parts", "01:02:03", 0, false},
		{"empty part", ":30", 0, false},
		{"letters", "aa:bb", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.ok && err != nil {
				t.Fatalf("ParseClock(%q): unexpected error: %v", tt.input, err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatalf("ParseClock(%q): expected error", tt.input)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatShort(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "00s"},
		{"seconds only", 4 * time.Second, "04s"},
		{"minutes", 3*time.Minute + 4*time.Second, "03m:04s"},
		{"hours", 2*time.Hour + 3*time.Minute + 4*time.Second, "02h:03m:04s"},
		{"exact hour", time.Hour, "01h:00m:00s"},
		{"exact minute", time.Minute, "01m:00s"},
		{"over a day", 26 * time.Hour, "26h:00m:00s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatShort(tt.d); got != tt.want {
				t.Errorf("FormatShort(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatLong(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0 seconds"},
		{"one second", time.Second, "1 second"},
		{"seconds", 4 * time.Second, "4 seconds"},
		{"minutes keep seconds", 3 * time.Minute, "3 minutes, 0 seconds"},
		{"singular minute", time.Minute + time.Second, "1 minute, 1 second"},
		{"hours keep all", 2*time.Hour + 5*time.Second, "2 hours, 0 minutes, 5 seconds"},
		{"singular hour", time.Hour + 3*time.Minute + 4*time.Second, "1 hour, 3 minutes, 4 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLong(tt.d); got != tt.want {
				t.Errorf("FormatLong(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestDisplayForms(t *testing.T) {
	at := time.Date(2023, 1, 2, 8, 4, 55, 0, time.UTC)

	if got, want := Clock12(at), "08:04:55am"; got != want {
		t.Errorf("Clock12 = %q, want %q", got, want)
	}
	if got, want := DateShort(at), "01-02-23"; got != want {
		t.Errorf("DateShort = %q, want %q", got, want)
	}
	if got, want := DateHuman(at), "Mon, Jan  2"; got != want {
		t.Errorf("DateHuman = %q, want %q", got, want)
	}
	if got, want := Display(at), "01-02-23 08:04:55am"; got != want {
		t.Errorf("Display = %q, want %q", got, want)
	}

	pm := time.Date(2023, 1, 2, 15, 30, 0, 0, time.UTC)
	if got, want := Clock12(pm), "03:30:00pm"; got != want {
		t.Errorf("Clock12 = %q, want %q", got, want)
	}
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("12:00-12:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.From != 12*60 || w.To != 12*60+30 {
		t.Errorf("window = %+v, want 720..750", w)
	}

	inside := time.Date(2023, 1, 2, 12, 15, 0, 0, time.UTC)
	if !w.Contains(inside) {
		t.Errorf("Contains(%v) = false, want true", inside)
	}
	boundary := time.Date(2023, 1, 2, 12, 30, 0, 0, time.UTC)
	if w.Contains(boundary) {
		t.Errorf("Contains(%v) = true, want false (half-open)", boundary)
	}

	for _, s := range []string{"", "12:00", "12:00-25:00", "12:60-13:00", "a:b-c:d"} {
		if _, err := ParseWindow(s); err == nil {
			t.Errorf("ParseWindow(%q): expected error", s)
		}
	}
}

// TestClockRoundTrip checks that any mm:ss duration survives a
// format/parse cycle unchanged.
func TestClockRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mins := rapid.IntRange(0, 180).Draw(t, "mins")
		secs := rapid.IntRange(0, 59).Draw(t, "secs")
		d := time.Duration(mins)*time.Minute + time.Duration(secs)*time.Second

		back, err := ParseClock(Clock(d))
		if err != nil {
			t.Fatalf("ParseClock(Clock(%v)): %v", d, err)
		}
		if back != d {
			t.Fatalf("round trip: got %v, want %v", back, d)
		}
	})
}
