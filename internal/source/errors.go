package source

import (
	"errors"
	"fmt"
)

// Parse failures are fatal for the whole file: a corrupt row means the
// log itself is untrustworthy, and a partial history is worse than
// none.
var (
	// ErrMalformedMarker reports a starting/exiting line without the
	// expected three comma-separated fields, or with an unparsable
	// timestamp.
	ErrMalformedMarker = errors.New("malformed session marker")

	// ErrMalformedRecord reports a data row with the wrong field count
	// or an unparsable duration/timestamp column.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrIdentityCollision reports two entities hashing to the same
	// identity within one scope. Surfaced rather than silently merged.
	ErrIdentityCollision = errors.New("identity collision")
)

// LineError locates a fatal parse failure in the input.
type LineError struct {
	Line int // 1-based
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
