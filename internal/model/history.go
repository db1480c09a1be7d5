package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by History lookups when no entity carries the
// requested identity. It is a routine condition, not a parse failure:
// a consumer holding a stale row handle simply drops it.
var ErrNotFound = errors.New("not found")

// History is the ordered sessions of one parsed log file, oldest first.
// It owns its sessions and, through them, every command.
type History []*Session

// Session returns the session with the given identity.
func (h History) Session(id ID) (*Session, error) {
	for _, s := range h {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
}

// Command returns the command with the given identity, searching every
// session. Linear scan: consumers look up items they already have on
// screen, never in a hot loop.
func (h History) Command(id ID) (*Command, error) {
	for _, s := range h {
		for _, c := range s.Commands {
			if c.ID == id {
				return c, nil
			}
		}
	}
	return nil, fmt.Errorf("command %s: %w", id, ErrNotFound)
}

// CommandSession returns the command with the given identity together
// with the session that owns it.
func (h History) CommandSession(id ID) (*Command, *Session, error) {
	for _, s := range h {
		for _, c := range s.Commands {
			if c.ID == id {
				return c, s, nil
			}
		}
	}
	return nil, nil, fmt.Errorf("command %s: %w", id, ErrNotFound)
}

// Commands returns the total command count across all sessions.
func (h History) Commands() int {
	n := 0
	for _, s := range h {
		n += len(s.Commands)
	}
	return n
}
