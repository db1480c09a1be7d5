package source

import "time"

// Option configures a single parse call.
type Option func(*parser)

// WithClockAdjust shifts every timestamp read from the log by d. The
// controller clock drifts; the operator pins a correction once in
// configuration and it applies uniformly to marker and row timestamps.
func WithClockAdjust(d time.Duration) Option {
	return func(p *parser) {
		p.adjust = d
	}
}
