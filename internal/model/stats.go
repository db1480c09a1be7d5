package model

import "time"

// SummaryStats holds the top-level aggregate across all sessions.
type SummaryStats struct {
	Sessions     int
	OpenSessions int
	ActiveDays   int

	Commands      int // all parsed rows
	PlainCommands int
	CommandFiles  int
	UserFiles     int
	Errors        int // rows whose status lacks "ok"
	ErrorSessions int

	TotalRun     time.Duration // summed command run time
	TotalActual  time.Duration // summed wall time of closed sessions
	TotalBetween time.Duration // summed idle time between commands
	AvgRun       time.Duration // per command, floor

	FirstStart time.Time
	LastEnd    time.Time
}

// DailyStats holds metrics for a single calendar day, keyed by the
// session start date.
type DailyStats struct {
	Date      time.Time
	Sessions  int
	Commands  int
	UserFiles int
	Errors    int
	Run       time.Duration
	Actual    time.Duration
}

// HourlyStats holds activity counts for one hour of the day.
type HourlyStats struct {
	Hour     int
	Commands int
	Run      time.Duration
}
