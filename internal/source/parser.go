// Package source reads WinCNC activity-log files and reconstructs the
// session history they describe.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/cnchist/internal/model"
	"github.com/theirongolddev/cnchist/internal/timeutil"
)

// Line prefixes the controller writes, matched case-insensitively.
const (
	headerPrefix   = "file name"
	startingPrefix = "starting"
	exitingPrefix  = "exiting"
)

// parser is the per-call state of one parse: the history built so far
// and the session currently accepting rows, if any.
type parser struct {
	adjust time.Duration

	history model.History
	open    *model.Session

	seenSessions map[model.ID]struct{}
	seenCommands map[model.ID]struct{} // reset per session
}

// ParseFile reads and parses a whole log file in one pass. The handle
// is closed on every path. On error no history is returned: partial
// results are never exposed.
func ParseFile(path string, opts ...Option) (model.History, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	defer func() { _ = f.Close() }()

	h, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return h, nil
}

// Parse consumes r line by line and returns the ordered session
// history. Sessions open at end of input are kept, with their
// end-dependent aggregates zeroed.
func Parse(r io.Reader, opts ...Option) (model.History, error) {
	p := &parser{
		seenSessions: make(map[model.ID]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if err := p.consume(scanner.Text()); err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}

	// Pick up a session the log never closed.
	if p.open != nil {
		if err := p.commit(); err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
	}
	return p.history, nil
}

// consume routes one line: header lines are dropped, markers open and
// close sessions, anything else non-empty is a data row for the open
// session. A data row with no session open starts an implicit one, for
// logs that begin mid-session.
func (p *parser) consume(text string) error {
	line := strings.TrimSpace(text)
	if line == "" {
		return nil
	}

	lower := strings.ToLower(line)
	switch {
	case strings.HasPrefix(lower, headerPrefix):
		return nil

	case strings.HasPrefix(lower, startingPrefix):
		start, err := parseMarker(line, p.adjust)
		if err != nil {
			return err
		}
		if p.open != nil {
			// The previous session never logged an exit. Keep it, open.
			if err := p.commit(); err != nil {
				return err
			}
		}
		p.openSession(model.NewSession(start))
		return nil

	case strings.HasPrefix(lower, exitingPrefix):
		end, err := parseMarker(line, p.adjust)
		if err != nil {
			return err
		}
		if p.open == nil {
			// Exit with nothing open: nothing to preserve.
			return nil
		}
		p.open.Close(end)
		return p.commit()

	default:
		if p.open == nil {
			p.openSession(&model.Session{})
		}
		c, err := parseRecord(line, p.adjust)
		if err != nil {
			return err
		}
		c.ID = model.CommandID(c.Start, len(p.open.Commands))
		if _, dup := p.seenCommands[c.ID]; dup {
			return fmt.Errorf("%w: command %s", ErrIdentityCollision, c.ID)
		}
		p.seenCommands[c.ID] = struct{}{}
		p.open.Append(c)
		return nil
	}
}

func (p *parser) openSession(s *model.Session) {
	p.open = s
	p.seenCommands = make(map[model.ID]struct{})
}

// commit finalizes the open session: aggregates are recalculated, the
// identity is derived from its start time and position, and it joins
// the history.
func (p *parser) commit() error {
	s := p.open
	p.open = nil

	s.Recalculate()
	s.ID = model.SessionID(s.StartTime, len(p.history))
	if _, dup := p.seenSessions[s.ID]; dup {
		return fmt.Errorf("%w: session %s", ErrIdentityCollision, s.ID)
	}
	p.seenSessions[s.ID] = struct{}{}
	p.history = append(p.history, s)
	return nil
}

// parseMarker parses a "starting, HH:MM:SS, MM-DD-YY" style line. The
// marker text itself is ignored beyond routing; time and date combine
// into one timestamp, shifted by the clock correction.
func parseMarker(line string, adjust time.Duration) (time.Time, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %d fields, want 3", ErrMalformedMarker, len(parts))
	}
	stamp := strings.TrimSpace(parts[2]) + " " + strings.TrimSpace(parts[1])
	ts, err := timeutil.ParseStamp(stamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrMalformedMarker, err)
	}
	return ts.Add(adjust), nil
}
