package quests

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"CycleSkip/cycle"
)

// span is a run of consecutive dial numbers walked from first to last.
type span struct {
	first, last int64
}

func (s span) len() int64 {
	if s.last >= s.first {
		return s.last - s.first + 1
	}
	return s.first - s.last + 1
}

func (s span) at(offset int64) int64 {
	if s.last >= s.first {
		return s.first + offset
	}
	return s.first - offset
}

// Dial is the lock dial. It starts at 1, runs clockwise through every other
// note and comes back counter-clockwise through the rest, so turning it is a
// pure rotation through its numbers.
type Dial struct {
	spans []span
}

// NewDial lays out the notes around the dial. Notes at even positions go
// clockwise from 1 and the others fill the way back, walked in reverse.
func NewDial(notes [][2]int64) Dial {
	d := Dial{spans: []span{{1, 1}}}
	var back []span
	for i, note := range notes {
		if i%2 == 0 {
			d.spans = append(d.spans, span{note[0], note[1]})
		} else {
			back = append(back, span{note[1], note[0]})
		}
	}
	for i := len(back) - 1; i >= 0; i-- {
		d.spans = append(d.spans, back[i])
	}
	return d
}

// ParseDial reads one note per line, either a single number or an
// inclusive range such as `10-15`.
func ParseDial(r io.Reader) (Dial, error) {
	lines, err := readLines(r)
	if err != nil {
		return Dial{}, err
	}
	notes := [][2]int64{}
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		from, to, ranged := strings.Cut(line, "-")
		a, err := strconv.ParseInt(from, 10, 64)
		if err != nil {
			return Dial{}, &InputError{Line: i + 1, Msg: "bad note", Err: err}
		}
		b := a
		if ranged {
			b, err = strconv.ParseInt(to, 10, 64)
			if err != nil {
				return Dial{}, &InputError{Line: i + 1, Msg: "bad note", Err: err}
			}
		}
		if b < a {
			return Dial{}, badInput(i+1, "range %d-%d runs backwards", a, b)
		}
		notes = append(notes, [2]int64{a, b})
	}
	if len(notes) == 0 {
		return Dial{}, badInput(0, "no notes")
	}
	return NewDial(notes), nil
}

// Len is the number of positions on the dial.
func (d Dial) Len() int64 {
	n := int64(0)
	for _, s := range d.spans {
		n += s.len()
	}
	return n
}

// Number returns the number the dial points at after the given turns. The
// loop is known up front, so turns reduce straight to a position and the
// spans are searched without laying out every number.
func (d Dial) Number(turns *big.Int) (int64, error) {
	n := d.Len()
	if int64(int(n)) != n {
		return 0, fmt.Errorf("dial of %d numbers is too large", n)
	}
	position, err := cycle.Periodic(int(n)).Index(turns)
	if err != nil {
		return 0, err
	}
	offset := int64(position)
	for _, s := range d.spans {
		if offset < s.len() {
			return s.at(offset), nil
		}
		offset -= s.len()
	}
	return 0, fmt.Errorf("position %d is off the dial", position)
}
