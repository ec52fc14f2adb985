package stableid

type options struct {
	capacity int
	logger   *Logger
	checks   bool
}

// Option configures constructor behavior.
//
// Options exist to avoid exploding the API surface with constructor
// variants; the zero configuration is always valid.
type Option func(*options)

// WithCapacity pre-allocates backing storage for n slots. It changes memory
// behavior only; the collection still starts empty.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithLogger configures structured logging for compaction and reclamation
// events.
//
// If nil is passed, logging is disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithConsistencyChecks re-verifies the free-list/slot-state bookkeeping
// after every mutating operation, panicking on the first mismatch. A
// mismatch is a bug in this package, never a caller error.
//
// The full re-derivation is O(capacity) per operation; enable it in tests
// and diagnostic builds, not in production.
func WithConsistencyChecks(enabled bool) Option {
	return func(o *options) {
		o.checks = enabled
	}
}
