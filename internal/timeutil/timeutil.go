// Package timeutil parses and formats the timestamp and duration forms
// used by WinCNC activity logs.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Stamp is the combined date+time layout the controller writes
// (month-day-year, 24-hour clock). DateStamp is its date half.
const (
	Stamp     = "01-02-06 15:04:05"
	DateStamp = "01-02-06"
)

// ParseStamp parses a "01-02-23 08:04:55" style timestamp.
func ParseStamp(s string) (time.Time, error) {
	return time.Parse(Stamp, s)
}

// ParseClock parses a movement-duration field of the form "mm:ss".
// Exactly two integer parts are required; minutes may exceed 59.
func ParseClock(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("clock duration %q: want mm:ss", s)
	}
	mins, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("clock duration %q: %w", s, err)
	}
	secs, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("clock duration %q: %w", s, err)
	}
	return time.Duration(mins)*time.Minute + time.Duration(secs)*time.Second, nil
}

// Clock renders a duration back in the log's "mm:ss" form.
func Clock(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatShort renders a duration as "02h:03m:04s", dropping leading
// units that are zero ("03m:04s", "04s"). Zero renders as "00s".
func FormatShort(d time.Duration) string {
	total := int(d / time.Second)
	hours := total / 3600
	mins := (total % 3600) / 60
	secs := total % 60

	if hours != 0 {
		return fmt.Sprintf("%02dh:%02dm:%02ds", hours, mins, secs)
	}
	if mins != 0 {
		return fmt.Sprintf("%02dm:%02ds", mins, secs)
	}
	return fmt.Sprintf("%02ds", secs)
}

// FormatLong renders a duration as "2 hours, 3 minutes, 4 seconds".
// Leading zero units are dropped; trailing ones are kept, so an exact
// hour still reads "1 hour, 0 minutes, 0 seconds".
func FormatLong(d time.Duration) string {
	total := int(d / time.Second)
	hours := total / 3600
	mins := (total % 3600) / 60
	secs := total % 60

	if hours != 0 {
		return fmt.Sprintf("%d %s, %d %s, %d %s",
			hours, plural(hours, "hour"),
			mins, plural(mins, "minute"),
			secs, plural(secs, "second"))
	}
	if mins != 0 {
		return fmt.Sprintf("%d %s, %d %s",
			mins, plural(mins, "minute"),
			secs, plural(secs, "second"))
	}
	return fmt.Sprintf("%d %s", secs, plural(secs, "second"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// Clock12 renders the time of day on a 12-hour clock: "08:04:55am".
func Clock12(t time.Time) string {
	return t.Format("03:04:05pm")
}

// DateShort renders the date the way the log writes it: "01-02-23".
func DateShort(t time.Time) string {
	return t.Format(DateStamp)
}

// DateHuman renders a friendlier date: "Mon, Jan  2".
func DateHuman(t time.Time) string {
	return t.Format("Mon, Jan _2")
}

// Display renders date plus 12-hour time: "01-02-23 08:04:55am".
func Display(t time.Time) string {
	return DateShort(t) + " " + Clock12(t)
}

// DisplayHuman is Display with the human date form.
func DisplayHuman(t time.Time) string {
	return DateHuman(t) + " " + Clock12(t)
}
