package cycle

import (
	"log/slog"
)

// Stepper is a pure transition. It returns the next state and the score
// earned by taking that step. It must not depend on anything outside its
// argument: no counters, clocks or randomness. A state that needs to know
// the step number has to carry it.
type Stepper[S any] func(state S) (next S, score int64)

// Method selects how repeats are found.
type Method int

const (
	// MethodExact remembers every fingerprint seen so far. Memory grows with
	// leadin plus loop length.
	MethodExact Method = iota
	// MethodFloyd runs a tortoise and hare over the fingerprints and keeps no
	// table. It takes roughly three times as many steps.
	MethodFloyd
)

func (m Method) String() string {
	switch m {
	case MethodExact:
		return "exact"
	case MethodFloyd:
		return "floyd"
	default:
		return "unknown"
	}
}

// DefaultMaxIterations bounds detection when the caller doesn't say otherwise.
const DefaultMaxIterations = 10_000_000

// Options controls detection.
type Options struct {
	// MaxIterations is the largest number of steps taken before giving up
	// with a *NonPeriodicError. Zero means DefaultMaxIterations.
	MaxIterations int
	Method        Method
	// Logger receives debug records about detection. Nil discards them.
	Logger *slog.Logger
}

// Option adjusts Options.
type Option func(*Options)

// WithMaxIterations sets the iteration budget.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithMethod picks the detection method.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// NewOptions applies options to the zero Options.
func NewOptions(options ...Option) Options {
	var o Options
	for _, option := range options {
		option(&o)
	}
	return o
}

func (o Options) limit() int {
	if o.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return o.MaxIterations
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
