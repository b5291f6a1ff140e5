package cycle

import (
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// NoHorizon tells the detectors to keep going until a loop is found or the
// iteration budget runs out.
const NoHorizon = -1

// mark is what we remember about a fingerprint: where it was first seen and
// the total score at that point.
type mark struct {
	index      int
	cumulative decimal.Decimal
}

// Detect steps from initial until a fingerprint repeats, recording every
// state and the running score along the way.
//
// If horizon is not negative and step horizon is reached first, the
// trajectory is returned without a loop; it can still answer any query up
// to horizon. If neither happens within the iteration budget the result is
// a *NonPeriodicError.
func Detect[S any](initial S, step Stepper[S], encode Encoder[S], opts Options, horizon int) (*Trajectory[S], error) {
	if step == nil || encode == nil {
		return nil, ErrNoStepper
	}
	if opts.Method == MethodFloyd {
		return detectFloyd(initial, step, encode, opts, horizon)
	}

	log := opts.logger()
	limit := opts.limit()

	seen := map[Fingerprint]mark{}
	t := &Trajectory[S]{
		States:     []S{initial},
		Cumulative: []decimal.Decimal{decimal.Zero},
	}

	state := initial
	for i := 0; ; i++ {
		fp := encode(state, uint64(i))
		if m, ok := seen[fp]; ok {
			t.Loop = &Loop{
				Leadin: m.index,
				Length: i - m.index,
				Delta:  t.Cumulative[i].Sub(m.cumulative),
			}
			logLoop(log, MethodExact, t.Loop)
			return t, nil
		}
		if i == horizon {
			log.Debug("horizon reached before any repeat", "steps", humanize.Comma(int64(i)))
			return t, nil
		}
		if i >= limit {
			log.Debug("iteration budget exhausted", "limit", humanize.Comma(int64(limit)))
			return nil, &NonPeriodicError{Steps: i, Limit: limit, Calls: i}
		}
		seen[fp] = mark{index: i, cumulative: t.Cumulative[i]}

		next, score := step(state)
		state = next
		t.States = append(t.States, state)
		t.Cumulative = append(t.Cumulative, t.Cumulative[i].Add(decimal.NewFromInt(score)))
	}
}

// simulate replays n steps from initial without any repeat detection.
func simulate[S any](initial S, step Stepper[S], n int) *Trajectory[S] {
	t := &Trajectory[S]{
		States:     make([]S, 0, n+1),
		Cumulative: make([]decimal.Decimal, 0, n+1),
	}
	t.States = append(t.States, initial)
	t.Cumulative = append(t.Cumulative, decimal.Zero)

	state := initial
	for i := 0; i < n; i++ {
		next, score := step(state)
		state = next
		t.States = append(t.States, state)
		t.Cumulative = append(t.Cumulative, t.Cumulative[i].Add(decimal.NewFromInt(score)))
	}
	return t
}

func logLoop(log *slog.Logger, method Method, loop *Loop) {
	log.Debug(
		"loop found",
		"method", method.String(),
		"leadin", humanize.Comma(int64(loop.Leadin)),
		"length", humanize.Comma(int64(loop.Length)),
		"delta", loop.Delta.String(),
	)
}
