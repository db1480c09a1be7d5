package model

import "time"

// Totals holds a session's derived timing aggregates. Recalculate
// rebuilds every field from the command list, so the struct carries no
// state of its own.
type Totals struct {
	// Total is the summed run time of all commands.
	Total time.Duration
	// Actual is wall-clock elapsed time, end minus start. Zero while
	// the session is open.
	Actual time.Duration
	// EndOfDay is the idle time between the last command's end and the
	// session's exit marker. Zero when open or empty.
	EndOfDay time.Duration
	// Between is the summed idle time between adjacent commands. The
	// gap before the first command and after the last are excluded.
	Between time.Duration
	// AvgRun is Total divided by the command count, floor semantics.
	AvgRun time.Duration
	// AvgBetween is Between divided by (count-1), floor semantics.
	AvgBetween time.Duration

	Commands     int // plain commands (not paths)
	CommandFiles int // files under the controller install dir
	UserFiles    int // operator files
}

// Session is one contiguous machine run between a "starting" marker and
// the next "exiting" marker, or end of file for runs still open when
// the log was read.
type Session struct {
	ID ID

	// StartTime is zero when the log began mid-session and no starting
	// marker was seen.
	StartTime time.Time

	// endTime is only meaningful when closed is set; use End.
	endTime time.Time
	closed  bool

	Commands []*Command
	Totals   Totals
}

// NewSession returns an open session starting at start.
func NewSession(start time.Time) *Session {
	return &Session{StartTime: start}
}

// Close sets the session's exit time. Aggregates are stale until the
// next Recalculate.
func (s *Session) Close(end time.Time) {
	s.endTime = end
	s.closed = true
}

// End returns the exit-marker time. ok is false while the session is
// open (no exiting marker was seen).
func (s *Session) End() (end time.Time, ok bool) {
	return s.endTime, s.closed
}

// Append adds a parsed command to the session. Aggregates are stale
// until the next Recalculate.
func (s *Session) Append(c *Command) {
	s.Commands = append(s.Commands, c)
}

// Recalculate rebuilds Totals from the current command list and the
// start/end markers. Idempotent; an empty session yields all zeros.
func (s *Session) Recalculate() {
	var t Totals

	for i, c := range s.Commands {
		t.Total += c.Duration
		switch {
		case c.IsUserFile():
			t.UserFiles++
		case c.IsCommandFile():
			t.CommandFiles++
		default:
			t.Commands++
		}
		if i > 0 {
			t.Between += c.Start.Sub(s.Commands[i-1].End)
		}
	}

	if end, ok := s.End(); ok {
		t.Actual = end.Sub(s.StartTime)
		if n := len(s.Commands); n > 0 {
			t.EndOfDay = end.Sub(s.Commands[n-1].End)
		}
	}

	// Whole-second source data makes floor division exact here, not a
	// rounding compromise.
	if n := len(s.Commands); n > 0 {
		t.AvgRun = t.Total / time.Duration(n)
		if n > 1 {
			t.AvgBetween = t.Between / time.Duration(n-1)
		}
	}

	s.Totals = t
}

// HasError reports whether any command in the session errored.
func (s *Session) HasError() bool {
	for _, c := range s.Commands {
		if c.IsError() {
			return true
		}
	}
	return false
}

// LastStatus returns the status text of the final command.
func (s *Session) LastStatus() string {
	if len(s.Commands) == 0 {
		return "<no commands>"
	}
	return s.Commands[len(s.Commands)-1].Status
}

// TimeBefore returns the idle gap leading into c: from the previous
// command's end, or from the session start for the first command.
func (s *Session) TimeBefore(c *Command) time.Duration {
	for i, cur := range s.Commands {
		if cur != c {
			continue
		}
		if i == 0 {
			if s.StartTime.IsZero() {
				return 0
			}
			return c.Start.Sub(s.StartTime)
		}
		return c.Start.Sub(s.Commands[i-1].End)
	}
	return 0
}

// TimeAfter returns the idle gap following c: to the next command's
// start, or to the exit marker for the last command (zero when open).
func (s *Session) TimeAfter(c *Command) time.Duration {
	for i, cur := range s.Commands {
		if cur != c {
			continue
		}
		if i == len(s.Commands)-1 {
			end, ok := s.End()
			if !ok {
				return 0
			}
			return end.Sub(c.End)
		}
		return s.Commands[i+1].Start.Sub(c.End)
	}
	return 0
}
