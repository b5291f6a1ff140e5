package quests

import (
	"io"
	"math/big"
	"strings"

	"CycleSkip/cycle"

	"github.com/shopspring/decimal"
)

// Floor is a grid of light tiles, row major.
type Floor struct {
	Rows, Cols int
	Tiles      []bool
}

// NewFloor returns an unlit floor.
func NewFloor(rows, cols int) Floor {
	return Floor{Rows: rows, Cols: cols, Tiles: make([]bool, rows*cols)}
}

// ParseFloor reads a grid of `#` (lit) and `.` (dark) tiles.
func ParseFloor(r io.Reader) (Floor, error) {
	lines, err := readLines(r)
	if err != nil {
		return Floor{}, err
	}
	if len(lines) == 0 {
		return Floor{}, badInput(0, "empty floor")
	}
	f := NewFloor(len(lines), len(strings.TrimSpace(lines[0])))
	for row, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) != f.Cols {
			return Floor{}, badInput(row+1, "expected %d tiles, found %d", f.Cols, len(line))
		}
		for col, c := range line {
			switch c {
			case '#':
				f.Tiles[row*f.Cols+col] = true
			case '.':
			default:
				return Floor{}, badInput(row+1, "unexpected tile %q", c)
			}
		}
	}
	return f, nil
}

func (f Floor) at(row, col int) bool {
	return f.Tiles[row*f.Cols+col]
}

// Active counts the lit tiles.
func (f Floor) Active() int64 {
	n := int64(0)
	for _, lit := range f.Tiles {
		if lit {
			n++
		}
	}
	return n
}

// Round plays one round of the Game of Light. Each tile looks at its four
// diagonal neighbours: a lit tile stays lit when an odd number of them are
// lit, a dark tile lights up when an even number are.
func (f Floor) Round() Floor {
	next := NewFloor(f.Rows, f.Cols)
	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			lit := 0
			for _, dr := range []int{-1, 1} {
				for _, dc := range []int{-1, 1} {
					r, c := row+dr, col+dc
					if r >= 0 && r < f.Rows && c >= 0 && c < f.Cols && f.at(r, c) {
						lit++
					}
				}
			}
			if f.at(row, col) {
				next.Tiles[row*f.Cols+col] = lit%2 == 1
			} else {
				next.Tiles[row*f.Cols+col] = lit%2 == 0
			}
		}
	}
	return next
}

// Centred reports whether pattern appears exactly in the middle of f.
func (f Floor) Centred(pattern Floor) bool {
	top := (f.Rows - pattern.Rows) / 2
	left := (f.Cols - pattern.Cols) / 2
	if top < 0 || left < 0 {
		return false
	}
	for r := 0; r < pattern.Rows; r++ {
		for c := 0; c < pattern.Cols; c++ {
			if f.at(top+r, left+c) != pattern.at(r, c) {
				return false
			}
		}
	}
	return true
}

// FloorKey packs the tiles into a bit string.
func FloorKey(f Floor, _ uint64) cycle.Fingerprint {
	packed := make([]byte, (len(f.Tiles)+7)/8)
	for i, lit := range f.Tiles {
		if lit {
			packed[i/8] |= 1 << (i % 8)
		}
	}
	return cycle.Fingerprint(string(cycle.Ints(f.Rows, f.Cols)) + ":" + string(packed))
}

// ActiveTotal adds up the lit tiles after each of the given rounds.
func ActiveTotal(f Floor, rounds *big.Int, options ...cycle.Option) (decimal.Decimal, error) {
	step := func(f Floor) (Floor, int64) {
		next := f.Round()
		return next, next.Active()
	}
	return cycle.New(f, step, FloorKey, options...).SumThrough(rounds)
}

// PatternTotal starts from an unlit size×size floor and adds up the lit
// tiles after every round whose centre shows the pattern.
func PatternTotal(pattern Floor, size int, rounds *big.Int, options ...cycle.Option) (decimal.Decimal, error) {
	step := func(f Floor) (Floor, int64) {
		next := f.Round()
		if !next.Centred(pattern) {
			return next, 0
		}
		return next, next.Active()
	}
	return cycle.New(NewFloor(size, size), step, FloorKey, options...).SumThrough(rounds)
}
