package model

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/theirongolddev/cnchist/internal/timeutil"
)

// ID is the stable identity of a session or command. It is derived
// from the entity's start time plus its ordinal position within its
// parent, so re-parsing the same file, or the same file with rows
// appended, reproduces the same IDs for unchanged entities.
type ID uint64

// SessionID derives the identity for the session at position ordinal
// within its history.
func SessionID(start time.Time, ordinal int) ID {
	return hashIdentity('s', start, ordinal)
}

// CommandID derives the identity for the command at position ordinal
// within its session.
func CommandID(start time.Time, ordinal int) ID {
	return hashIdentity('c', start, ordinal)
}

func hashIdentity(kind byte, start time.Time, ordinal int) ID {
	h := fnv.New64a()
	_, _ = h.Write([]byte{kind, '|'})
	_, _ = h.Write([]byte(start.Format(timeutil.Stamp)))
	_, _ = h.Write([]byte{'|'})
	_, _ = h.Write([]byte(strconv.Itoa(ordinal)))
	return ID(h.Sum64())
}

// String renders the ID in fixed-width hex, handy for logs and the
// archive schema.
func (id ID) String() string {
	return fmt.Sprintf("%016x", uint64(id))
}

// ParseID parses the hex form produced by String.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("bad id %q: %v", s, err)
	}
	return ID(v), nil
}
