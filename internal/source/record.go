package source

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/cnchist/internal/model"
	"github.com/theirongolddev/cnchist/internal/timeutil"
)

// Column positions within a data row. The leading columns are
// filename, minutes, seconds, time, date, status, rapid, feed, laser;
// the machine-state snapshot follows. This order is load-bearing.
const (
	colFilename = iota
	colMinutes
	colSeconds
	colTime
	colDate
	colStatus
	colRapid
	colFeed
	colLaser
	colAxes    = 9
	colOutputs = colAxes + model.NumAxes
	colInputs  = colOutputs + model.NumOutputs
	colATC     = colInputs + model.NumInputs
)

// parseRecord turns one data row into a Command. adjust is the clock
// correction already validated by the caller.
func parseRecord(line string, adjust time.Duration) (*model.Command, error) {
	fields := strings.Split(line, ",")
	if len(fields) != model.RowFields {
		return nil, fmt.Errorf("%w: %d fields, want %d", ErrMalformedRecord, len(fields), model.RowFields)
	}
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}

	rapid, err := timeutil.ParseClock(fields[colRapid])
	if err != nil {
		return nil, fmt.Errorf("%w: rapid: %v", ErrMalformedRecord, err)
	}
	feed, err := timeutil.ParseClock(fields[colFeed])
	if err != nil {
		return nil, fmt.Errorf("%w: feed: %v", ErrMalformedRecord, err)
	}
	laser, err := timeutil.ParseClock(fields[colLaser])
	if err != nil {
		return nil, fmt.Errorf("%w: laser: %v", ErrMalformedRecord, err)
	}

	end, err := timeutil.ParseStamp(fields[colDate] + " " + fields[colTime])
	if err != nil {
		return nil, fmt.Errorf("%w: timestamp: %v", ErrMalformedRecord, err)
	}
	end = end.Add(adjust)

	c := &model.Command{
		Filename: strings.ToLower(fields[colFilename]),
		Minutes:  fields[colMinutes],
		Seconds:  fields[colSeconds],
		Status:   fields[colStatus],
		Rapid:    rapid,
		Feed:     feed,
		Laser:    laser,
		Duration: rapid + feed + laser,
		End:      end,
	}
	c.Start = end.Add(-c.Duration)

	copy(c.Axes[:], fields[colAxes:colOutputs])
	copy(c.Outputs[:], fields[colOutputs:colInputs])
	copy(c.Inputs[:], fields[colInputs:colATC])
	copy(c.ATC[:], fields[colATC:])

	return c, nil
}
