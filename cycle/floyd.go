package cycle

import (
	"github.com/dustin/go-humanize"
)

// detectFloyd finds the loop with a tortoise and hare instead of a table of
// every fingerprint seen. Once leadin and length are known, the prefix up
// to the end of the first loop is replayed so the trajectory can answer
// queries exactly like one from the exact method.
//
// All three phases are charged to the iteration budget. A signal encoder
// can make the tortoise and hare agree without a loop behind it, and then
// the search for the loop start would never end.
func detectFloyd[S any](initial S, step Stepper[S], encode Encoder[S], opts Options, horizon int) (*Trajectory[S], error) {
	log := opts.logger()
	limit := opts.limit()

	calls := 0
	advance := func(s S) S {
		calls++
		next, _ := step(s)
		return next
	}
	exhausted := func(steps int) error {
		log.Debug("iteration budget exhausted",
			"limit", humanize.Comma(int64(limit)),
			"calls", humanize.Comma(int64(calls)))
		return &NonPeriodicError{Steps: steps, Limit: limit, Calls: calls}
	}

	// the hare moves twice as fast so they must meet somewhere in the loop
	// at a step that is a multiple of the loop length
	slow, fast := initial, initial
	i := 0
	for {
		if i == horizon {
			log.Debug("horizon reached before any repeat", "steps", humanize.Comma(int64(i)))
			return simulate(initial, step, horizon), nil
		}
		if i >= limit {
			return nil, exhausted(i)
		}
		slow = advance(slow)
		fast = advance(advance(fast))
		i++
		if encode(slow, uint64(i)) == encode(fast, uint64(2*i)) {
			break
		}
	}

	// the first place where the tortoise (from the start) and the hare
	// (2i steps ahead) agree is the start of the loop
	slow = initial
	mu := 0
	for encode(slow, uint64(mu)) != encode(fast, uint64(mu+2*i)) {
		if mu >= limit {
			return nil, exhausted(i + mu)
		}
		slow = advance(slow)
		fast = advance(fast)
		mu++
	}

	// walk once around to measure the length
	lambda := 1
	fast = advance(slow)
	for encode(slow, uint64(mu)) != encode(fast, uint64(mu+lambda)) {
		if lambda >= limit {
			return nil, exhausted(i + mu + lambda)
		}
		fast = advance(fast)
		lambda++
	}

	t := simulate(initial, step, mu+lambda)
	t.Loop = &Loop{
		Leadin: mu,
		Length: lambda,
		Delta:  t.Cumulative[mu+lambda].Sub(t.Cumulative[mu]),
	}
	logLoop(log, MethodFloyd, t.Loop)
	return t, nil
}
