package quests

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"CycleSkip/cycle"
	"CycleSkip/mp"

	"golang.org/x/sync/errgroup"
)

// Machine is one line of EniCode notes: three bases, three exponents and a
// shared modulus.
type Machine struct {
	A, B, C int64
	X, Y, Z int64
	M       int64
}

var numbers = regexp.MustCompile(`-?[0-9]+`)

// ParseMachines reads lines such as `A=4 B=4 C=6 X=3 Y=4 Z=5 M=11`.
func ParseMachines(r io.Reader) ([]Machine, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	machines := []Machine{}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := numbers.FindAllString(line, -1)
		if len(fields) != 7 {
			return nil, badInput(i+1, "expected 7 numbers, found %d", len(fields))
		}
		values := make([]int64, len(fields))
		for j, field := range fields {
			v, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, &InputError{Line: i + 1, Msg: "bad number", Err: err}
			}
			if v < 0 {
				return nil, badInput(i+1, "%d is negative", v)
			}
			values[j] = v
		}
		if values[6] == 0 {
			return nil, badInput(i+1, "modulus is zero")
		}
		machines = append(machines, Machine{
			A: values[0], B: values[1], C: values[2],
			X: values[3], Y: values[4], Z: values[5],
			M: values[6],
		})
	}
	if len(machines) == 0 {
		return nil, badInput(0, "no machines")
	}
	return machines, nil
}

// Eni writes down the remainders of n^1 .. n^exp modulo mod and reads them
// back as one number, last remainder first.
func Eni(n, exp, mod int64) *big.Int {
	remainders := make([]string, 0, exp)
	score := uint64(1)
	for i := int64(0); i < exp; i++ {
		score = mp.MulMod(score, uint64(n), uint64(mod))
		remainders = append(remainders, strconv.FormatUint(score, 10))
	}
	var b strings.Builder
	for i := len(remainders) - 1; i >= 0; i-- {
		b.WriteString(remainders[i])
	}
	return digits(b.String())
}

// EniTail is like Eni but keeps only the last five remainders, which it
// computes directly from their exponents.
func EniTail(n, exp, mod int64) (*big.Int, error) {
	var b strings.Builder
	for i := int64(0); i < 5 && exp-i >= 0; i++ {
		score, err := mp.PowMod(big.NewInt(n), big.NewInt(exp-i), big.NewInt(mod))
		if err != nil {
			return nil, err
		}
		b.WriteString(score.String())
	}
	return digits(b.String()), nil
}

// EniSum adds up the remainders of n^1 .. n^exp modulo mod. The remainders
// are periodic, so exp can be far too large to walk.
func EniSum(n, exp, mod int64, options ...cycle.Option) (*big.Int, error) {
	m := uint64(mod)
	step := func(r uint64) (uint64, int64) {
		next := mp.MulMod(r, uint64(n), m)
		return next, int64(next)
	}
	key := func(r uint64, _ uint64) cycle.Fingerprint {
		return cycle.Fingerprint(strconv.FormatUint(r, 10))
	}
	sum, err := cycle.New(1%m, step, key, options...).SumThroughStep(uint64(exp))
	if err != nil {
		return nil, err
	}
	return sum.BigInt(), nil
}

func digits(s string) *big.Int {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return new(big.Int)
	}
	return z
}

// Value is the machine's reading for the given part of the puzzle: the sum
// of the three eni values.
func (m Machine) Value(part int, options ...cycle.Option) (*big.Int, error) {
	eni := func(n, exp int64) (*big.Int, error) {
		switch part {
		case 1:
			return Eni(n, exp, m.M), nil
		case 2:
			return EniTail(n, exp, m.M)
		case 3:
			return EniSum(n, exp, m.M, options...)
		default:
			return nil, fmt.Errorf("no part %d", part)
		}
	}

	total := new(big.Int)
	for _, pair := range [][2]int64{{m.A, m.X}, {m.B, m.Y}, {m.C, m.Z}} {
		v, err := eni(pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		total.Add(total, v)
	}
	return total, nil
}

// BestEnigma returns the highest machine value. Machines are independent so
// they are read concurrently, each with its own accelerators.
func BestEnigma(ctx context.Context, machines []Machine, part int, options ...cycle.Option) (*big.Int, error) {
	values := make([]*big.Int, len(machines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, machine := range machines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := machine.Value(part, options...)
			if err != nil {
				return fmt.Errorf("machine %d: %w", i+1, err)
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var best *big.Int
	for _, v := range values {
		if best == nil || v.Cmp(best) > 0 {
			best = v
		}
	}
	return best, nil
}
