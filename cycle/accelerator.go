package cycle

import (
	"math/big"

	"CycleSkip/mp"

	"github.com/shopspring/decimal"
)

// Accelerator answers questions about step T of a deterministic system
// without simulating all T steps. Each query starts again from the initial
// state, so an Accelerator holds no mutable state and can be shared
// between goroutines as long as its Stepper and Encoder are pure.
type Accelerator[S any] struct {
	initial S
	step    Stepper[S]
	encode  Encoder[S]
	opts    Options
}

// New builds an Accelerator for the system that starts at initial.
func New[S any](initial S, step Stepper[S], encode Encoder[S], options ...Option) *Accelerator[S] {
	return &Accelerator[S]{
		initial: initial,
		step:    step,
		encode:  encode,
		opts:    NewOptions(options...),
	}
}

// Trace runs detection far enough to answer any query up to target. That
// is either the first repeat or target itself, whichever comes first.
func (a *Accelerator[S]) Trace(target *big.Int) (*Trajectory[S], error) {
	if target.Sign() < 0 {
		return nil, ErrNegativeTarget
	}
	horizon := NoHorizon
	if n, err := mp.Int(target); err == nil {
		horizon = n
	}
	return Detect(a.initial, a.step, a.encode, a.opts, horizon)
}

// ValueAt returns the state after target steps.
func (a *Accelerator[S]) ValueAt(target *big.Int) (S, error) {
	t, err := a.Trace(target)
	if err != nil {
		var zero S
		return zero, err
	}
	return t.StateAt(target)
}

// SumThrough returns the total score of steps 1..target.
func (a *Accelerator[S]) SumThrough(target *big.Int) (decimal.Decimal, error) {
	t, err := a.Trace(target)
	if err != nil {
		return decimal.Zero, err
	}
	return t.SumThrough(target)
}

// ValueAtStep is ValueAt for targets that fit in a uint64.
func (a *Accelerator[S]) ValueAtStep(target uint64) (S, error) {
	return a.ValueAt(new(big.Int).SetUint64(target))
}

// SumThroughStep is SumThrough for targets that fit in a uint64.
func (a *Accelerator[S]) SumThroughStep(target uint64) (decimal.Decimal, error) {
	return a.SumThrough(new(big.Int).SetUint64(target))
}
