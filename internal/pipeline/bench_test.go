package pipeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/theirongolddev/cnchist/internal/model"
)

// benchHistory builds a year of two-session days with a realistic
// command mix.
func benchHistory() model.History {
	var h model.History
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 365; day++ {
		for shift := 0; shift < 2; shift++ {
			start := base.AddDate(0, 0, day).Add(time.Duration(8+shift*6) * time.Hour)
			s := model.NewSession(start)
			clock := start
			for c := 0; c < 25; c++ {
				clock = clock.Add(4 * time.Minute)
				name := "home"
				if c%3 == 0 {
					name = fmt.Sprintf(`c:\jobs\part%d.tap`, c)
				}
				s.Append(cmd(name, clock, 3*time.Minute, "Run was OK"))
			}
			s.Close(clock.Add(10 * time.Minute))
			s.Recalculate()
			h = append(h, s)
		}
	}
	return h
}

func BenchmarkSummarize(b *testing.B) {
	h := benchHistory()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Summarize(h)
	}
}

func BenchmarkAggregateDaily(b *testing.B) {
	h := benchHistory()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AggregateDaily(h)
	}
}
