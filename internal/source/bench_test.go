package source

import (
	"fmt"
	"strings"
	"testing"
)

// syntheticLog builds a plausible month of activity: sessions per day,
// a handful of commands each.
func syntheticLog(days, sessionsPerDay, commandsPerSession int) string {
	var b strings.Builder
	b.WriteString("File Name, Minutes, Seconds, Time, Date, Status\n")
	for d := 1; d <= days; d++ {
		date := fmt.Sprintf("01-%02d-23", d)
		for s := 0; s < sessionsPerDay; s++ {
			hour := 8 + s*4
			fmt.Fprintf(&b, "Starting, %02d:00:00, %s\n", hour, date)
			for c := 0; c < commandsPerSession; c++ {
				clock := fmt.Sprintf("%02d:%02d:00", hour, c+1)
				b.WriteString(row(`c:\jobs\part.tap`, clock, date, "Run was OK", "00:20", "00:10", "00:05"))
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "Exiting, %02d:30:00, %s\n", hour, date)
		}
	}
	return b.String()
}

func BenchmarkParse(b *testing.B) {
	log := syntheticLog(28, 2, 40)
	b.SetBytes(int64(len(log)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(strings.NewReader(log)); err != nil {
			b.Fatal(err)
		}
	}
}
