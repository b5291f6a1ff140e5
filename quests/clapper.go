package quests

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"CycleSkip/cycle"
)

// Dance is the state of the clapper dance. Each column lists the dancers
// from the front. Round is the number of rounds already danced, which picks
// the column whose front dancer claps next.
type Dance struct {
	Columns [][]int
	Round   int
}

// ParseDance reads rows of whitespace separated numbers and turns them into
// columns.
func ParseDance(r io.Reader) (Dance, error) {
	lines, err := readLines(r)
	if err != nil {
		return Dance{}, err
	}
	var columns [][]int
	rows := 0
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if columns == nil {
			columns = make([][]int, len(fields))
		}
		if len(fields) != len(columns) {
			return Dance{}, badInput(i+1, "expected %d numbers, found %d", len(columns), len(fields))
		}
		for c, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return Dance{}, &InputError{Line: i + 1, Msg: "bad dancer", Err: err}
			}
			if v <= 0 {
				return Dance{}, badInput(i+1, "dancer %d must be positive", v)
			}
			columns[c] = append(columns[c], v)
		}
		rows++
	}
	if rows < 2 {
		return Dance{}, badInput(0, "a dance needs at least two rows, found %d", rows)
	}
	d := Dance{Columns: columns}
	if err := d.check(); err != nil {
		return Dance{}, &InputError{Msg: "bad dance", Err: err}
	}
	return d, nil
}

// maxShoutDigits is the longest shout that always fits an int64.
const maxShoutDigits = 18

// check makes sure every shout the dance can produce fits an int64. Any
// dancer can end up at the front of any column, so the longest possible
// shout is the widest dancer repeated once per column.
func (d Dance) check() error {
	if len(d.Columns) == 0 {
		return fmt.Errorf("a dance needs at least one column")
	}
	widest := 0
	for _, c := range d.Columns {
		if len(c) == 0 {
			return fmt.Errorf("a dance cannot start with an empty column")
		}
		for _, v := range c {
			if v <= 0 {
				return fmt.Errorf("dancer %d must be positive", v)
			}
			widest = max(widest, len(strconv.Itoa(v)))
		}
	}
	if digits := widest * len(d.Columns); digits > maxShoutDigits {
		return fmt.Errorf("shouts of up to %d digits do not fit in %d", digits, maxShoutDigits)
	}
	return nil
}

func (d Dance) clone() Dance {
	columns := make([][]int, len(d.Columns))
	for i, c := range d.Columns {
		columns[i] = append(make([]int, 0, len(c)+1), c...)
	}
	return Dance{Columns: columns, Round: d.Round}
}

// Shout is the number called out after a round: the front dancers of every
// column read left to right. The dance must have passed check.
func (d Dance) Shout() int64 {
	shout := int64(0)
	for _, c := range d.Columns {
		v := int64(c[0])
		for p := v; p > 0; p /= 10 {
			shout *= 10
		}
		shout += v
	}
	return shout
}

// Clap dances one round. The front dancer of the current column leaves and
// walks around the next column, counting down its left side and back up its
// right side, and takes the place where the count ends. The score is the
// shout heard after the round.
func Clap(d Dance) (Dance, int64) {
	next := d.clone()
	n := len(next.Columns)
	from := next.Round % n
	clapper := next.Columns[from][0]
	next.Columns[from] = next.Columns[from][1:]

	to := (from + 1) % n
	target := next.Columns[to]
	pos := (clapper - 1) % (2 * len(target))
	if pos >= len(target) {
		pos = 2*len(target) - pos
	}
	target = append(target, 0)
	copy(target[pos+1:], target[pos:])
	target[pos] = clapper
	next.Columns[to] = target

	next.Round++
	return next, next.Shout()
}

func columnsKey(d Dance) string {
	var b strings.Builder
	for i, c := range d.Columns {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(string(cycle.Ints(c...)))
	}
	return b.String()
}

// DanceKey fingerprints the whole dance along with whose turn it is.
func DanceKey(d Dance, phase uint64) cycle.Fingerprint {
	return cycle.Phased(uint64(len(d.Columns)), func(d Dance, _ uint64) cycle.Fingerprint {
		return cycle.Fingerprint(columnsKey(d))
	})(d, phase)
}

// ShoutKey fingerprints only the front dancers and whose turn it is. This is
// much smaller than DanceKey but is a signal, not the state: two dances with
// the same fronts can diverge later, so a loop found with this key can be
// wrong. It always fires no later than DanceKey does.
func ShoutKey(d Dance, phase uint64) cycle.Fingerprint {
	fronts := make([]int, 0, len(d.Columns)+1)
	fronts = append(fronts, int(phase%uint64(len(d.Columns))))
	for _, c := range d.Columns {
		fronts = append(fronts, c[0])
	}
	return cycle.Ints(fronts...)
}

// ShoutAfter returns the shout heard after the given number of rounds.
func ShoutAfter(d Dance, rounds uint64, options ...cycle.Option) (int64, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	final, err := cycle.New(d, Clap, DanceKey, options...).ValueAtStep(rounds)
	if err != nil {
		return 0, err
	}
	return final.Shout(), nil
}

// HighestShout returns the largest shout the dance will ever produce, which
// must show up before the dance first repeats itself.
func HighestShout(d Dance, options ...cycle.Option) (int64, error) {
	if err := d.check(); err != nil {
		return 0, err
	}
	t, err := cycle.Detect(d, Clap, DanceKey, cycle.NewOptions(options...), cycle.NoHorizon)
	if err != nil {
		return 0, err
	}
	highest := int64(math.MinInt64)
	for _, s := range t.Scores() {
		highest = max(highest, s)
	}
	return highest, nil
}

// RepeatedShout finds the first shout to be heard `times` times and returns
// it multiplied by the round in which that happened.
//
// Within the loop every shout comes back once per loop length, so the round
// of each shout's n-th appearance follows from where it shows up in the
// simulated trajectory.
func RepeatedShout(d Dance, times int, options ...cycle.Option) (*big.Int, error) {
	if times <= 0 {
		return nil, fmt.Errorf("times must be positive, got %d", times)
	}
	if err := d.check(); err != nil {
		return nil, err
	}
	t, err := cycle.Detect(d, Clap, DanceKey, cycle.NewOptions(options...), cycle.NoHorizon)
	if err != nil {
		return nil, err
	}
	length := int64(t.Loop.Length)
	// rounds from start onwards repeat every length rounds; there is no
	// shout for round 0
	start := max(int64(t.Loop.Leadin), 1)

	type appearances struct {
		before []int64
		inLoop []int64
	}
	heard := map[int64]*appearances{}
	for i, shout := range t.Scores() {
		round := int64(i + 1)
		if round >= start+length {
			break
		}
		a, ok := heard[shout]
		if !ok {
			a = &appearances{}
			heard[shout] = a
		}
		if round < start {
			a.before = append(a.before, round)
		} else {
			a.inLoop = append(a.inLoop, round)
		}
	}

	var (
		best      int64 = -1
		bestShout int64
	)
	for shout, a := range heard {
		var round int64
		switch {
		case len(a.before) >= times:
			round = a.before[times-1]
		case len(a.inLoop) == 0:
			continue
		default:
			m := int64(times - len(a.before) - 1)
			c := int64(len(a.inLoop))
			round = a.inLoop[m%c] + (m/c)*length
		}
		if best < 0 || round < best {
			best, bestShout = round, shout
		}
	}
	if best < 0 {
		return nil, fmt.Errorf("no shout is ever heard %d times", times)
	}
	return new(big.Int).Mul(big.NewInt(bestShout), big.NewInt(best)), nil
}
