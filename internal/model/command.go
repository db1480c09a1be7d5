// Package model defines the parsed history types: commands, sessions
// and the history container itself.
package model

import (
	"strings"
	"time"
)

// Field counts of one activity-log row. The controller writes six axis
// positions, three output channels, thirteen input channels and eleven
// tool-changer timers after the timing columns.
const (
	NumAxes    = 6
	NumOutputs = 3
	NumInputs  = 13
	NumATC     = 11

	// RowFields is the exact comma-separated field count of a data row.
	RowFields = 9 + NumAxes + NumOutputs + NumInputs + NumATC
)

// commandFileDir is the controller's install directory. Files under it
// are internal machinery, not operator content.
const commandFileDir = `c:\wincnc`

// Command is one parsed log row: a named command, a command-file run or
// a user-file run. Immutable once parsed; owned by its Session.
type Command struct {
	ID ID

	// Filename is trimmed and lowercased; all other logged fields are
	// trimmed only.
	Filename string
	Minutes  string
	Seconds  string
	Status   string

	Rapid time.Duration
	Feed  time.Duration
	Laser time.Duration

	// Duration is Rapid+Feed+Laser: the row's total run time.
	Duration time.Duration
	// End is the logged timestamp (clock adjustment already applied);
	// Start is End minus Duration.
	Start time.Time
	End   time.Time

	Axes    [NumAxes]string
	Outputs [NumOutputs]string
	Inputs  [NumInputs]string
	ATC     [NumATC]string
}

// IsCommandFile reports whether the row ran a file under the
// controller's install directory.
func (c *Command) IsCommandFile() bool {
	return strings.HasPrefix(c.Filename, commandFileDir)
}

// IsFile reports whether the row ran any absolute path.
func (c *Command) IsFile() bool {
	return strings.HasPrefix(c.Filename, `c:\`)
}

// IsUserFile reports whether the row ran an operator's own file.
func (c *Command) IsUserFile() bool {
	return c.IsFile() && !c.IsCommandFile()
}

// IsError reports whether the status text lacks an "ok".
func (c *Command) IsError() bool {
	return !strings.Contains(strings.ToLower(c.Status), "ok")
}

// Kind returns the display category: "user file", "command file" or
// "command".
func (c *Command) Kind() string {
	switch {
	case c.IsUserFile():
		return "user file"
	case c.IsCommandFile():
		return "command file"
	default:
		return "command"
	}
}
