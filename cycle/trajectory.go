package cycle

import (
	"fmt"
	"math/big"

	"CycleSkip/mp"

	"github.com/shopspring/decimal"
)

// Loop describes where a trajectory starts repeating. The state at step
// Leadin and the state at step Leadin+Length share a fingerprint, and the
// scores of the steps in between add up to Delta.
type Loop struct {
	Leadin int
	Length int
	Delta  decimal.Decimal
}

// Periodic returns the loop of a system that is known to repeat from the
// very first step with the given period.
func Periodic(length int) Loop {
	return Loop{Length: length, Delta: decimal.Zero}
}

// split decomposes a target into whole loops and a leftover step count.
// Targets before the leadin come back as `nil, target`.
func (l Loop) split(target *big.Int) (*big.Int, int, error) {
	if target.Sign() < 0 {
		return nil, 0, ErrNegativeTarget
	}
	if mp.Less(target, l.Leadin) {
		return nil, int(target.Int64()), nil
	}
	if l.Length <= 0 {
		return nil, 0, fmt.Errorf("loop length %d: %w", l.Length, mp.ErrDivideByZero)
	}
	remaining := new(big.Int).Sub(target, big.NewInt(int64(l.Leadin)))
	full, leftover, err := mp.DivMod(remaining, big.NewInt(int64(l.Length)))
	if err != nil {
		return nil, 0, err
	}
	return full, int(leftover.Int64()), nil
}

// Index maps a target step onto the step with the same state inside
// `[0, Leadin+Length)`.
func (l Loop) Index(target *big.Int) (int, error) {
	full, leftover, err := l.split(target)
	if err != nil {
		return 0, err
	}
	if full == nil {
		return leftover, nil
	}
	return l.Leadin + leftover, nil
}

// Trajectory is the simulated prefix of a run. States[i] is the state after
// i steps and Cumulative[i] the total score of steps 1..i, so both start
// with the initial state and zero. When Loop is set, States covers at least
// Leadin+Length steps and every later step can be derived from it.
type Trajectory[S any] struct {
	States     []S
	Cumulative []decimal.Decimal
	Loop       *Loop
}

// Steps is the number of transitions that were actually simulated.
func (t *Trajectory[S]) Steps() int {
	return len(t.States) - 1
}

// Reduce maps a target step onto an index of States with the same state.
func (t *Trajectory[S]) Reduce(target *big.Int) (int, error) {
	if target.Sign() < 0 {
		return 0, ErrNegativeTarget
	}
	if t.Loop == nil {
		n, err := mp.Int(target)
		if err != nil || n > t.Steps() {
			return 0, fmt.Errorf("step %s with %d simulated: %w", target, t.Steps(), ErrBeyondHorizon)
		}
		return n, nil
	}
	return t.Loop.Index(target)
}

// StateAt returns the state after target steps.
func (t *Trajectory[S]) StateAt(target *big.Int) (S, error) {
	i, err := t.Reduce(target)
	if err != nil {
		var zero S
		return zero, err
	}
	return t.States[i], nil
}

// SumThrough returns the total score of steps 1..target.
func (t *Trajectory[S]) SumThrough(target *big.Int) (decimal.Decimal, error) {
	if t.Loop == nil {
		i, err := t.Reduce(target)
		if err != nil {
			return decimal.Zero, err
		}
		return t.Cumulative[i], nil
	}

	j := t.Loop.Leadin
	full, leftover, err := t.Loop.split(target)
	if err != nil {
		return decimal.Zero, err
	}
	if full == nil {
		// still inside the leadin
		return t.Cumulative[leftover], nil
	}

	sum := t.Cumulative[j].
		Add(decimal.NewFromBigInt(full, 0).Mul(t.Loop.Delta)).
		Add(t.Cumulative[j+leftover].Sub(t.Cumulative[j]))
	return sum, nil
}

// Scores returns the score of each simulated step. Element i belongs to the
// step that produced States[i+1].
func (t *Trajectory[S]) Scores() []int64 {
	scores := make([]int64, 0, len(t.Cumulative))
	for i := 1; i < len(t.Cumulative); i++ {
		scores = append(scores, t.Cumulative[i].Sub(t.Cumulative[i-1]).IntPart())
	}
	return scores
}
