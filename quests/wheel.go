package quests

import (
	"io"
	"math/big"
	"strconv"
	"strings"

	"CycleSkip/cycle"

	"github.com/shopspring/decimal"
)

// Wheels is the slot machine of cat faces. Every pull of the right lever
// turns wheel i forward by Speeds[i] faces.
type Wheels struct {
	Speeds []int
	Faces  [][]string
}

// ParseWheels reads the comma separated speeds, a blank line, and then the
// faces drawn in columns three characters wide with one space between.
func ParseWheels(r io.Reader) (Wheels, error) {
	lines, err := readLines(r)
	if err != nil {
		return Wheels{}, err
	}
	if len(lines) < 3 || lines[1] != "" {
		return Wheels{}, badInput(0, "expected speeds, a blank line and faces")
	}

	w := Wheels{}
	for _, field := range strings.Split(lines[0], ",") {
		speed, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return Wheels{}, &InputError{Line: 1, Msg: "bad speed", Err: err}
		}
		if speed < 0 {
			return Wheels{}, badInput(1, "speed %d is negative", speed)
		}
		w.Speeds = append(w.Speeds, speed)
	}

	w.Faces = make([][]string, len(w.Speeds))
	for i, line := range lines[2:] {
		for start := 0; start < len(line); start += 4 {
			face := line[start:min(start+3, len(line))]
			if strings.TrimSpace(face) == "" {
				continue
			}
			if len(face) != 3 {
				return Wheels{}, badInput(i+3, "face %q is not three characters wide", face)
			}
			wheel := start / 4
			if wheel >= len(w.Faces) {
				return Wheels{}, badInput(i+3, "face %q has no wheel", face)
			}
			w.Faces[wheel] = append(w.Faces[wheel], face)
		}
	}
	for i, faces := range w.Faces {
		if len(faces) == 0 {
			return Wheels{}, badInput(0, "wheel %d has no faces", i+1)
		}
	}
	return w, nil
}

// Visible returns the face showing on each wheel.
func (w Wheels) Visible(positions []int) []string {
	faces := make([]string, len(positions))
	for i, p := range positions {
		faces[i] = w.Faces[i][p]
	}
	return faces
}

// Coins pays one coin for every eye beyond the second of the same kind
// across all visible faces.
func (w Wheels) Coins(positions []int) int64 {
	counts := map[byte]int{}
	for i, p := range positions {
		face := w.Faces[i][p]
		counts[face[0]]++
		counts[face[2]]++
	}
	coins := int64(0)
	for _, n := range counts {
		coins += int64(max(0, n-2))
	}
	return coins
}

// turn moves every wheel by the lever nudge plus one pull at step k from
// the start, which depends only on the total nudge so far.
func (w Wheels) turn(pulls int, nudge int) []int {
	positions := make([]int, len(w.Faces))
	for i, faces := range w.Faces {
		positions[i] = mod(mod(pulls, len(faces))*w.Speeds[i]+nudge, len(faces))
	}
	return positions
}

// Pull turns each wheel by its speed and scores the new faces.
func (w Wheels) Pull(positions []int) ([]int, int64) {
	next := make([]int, len(positions))
	for i, p := range positions {
		next[i] = (p + w.Speeds[i]) % len(w.Faces[i])
	}
	return next, w.Coins(next)
}

// WheelKey fingerprints the wheel positions.
func WheelKey(positions []int, _ uint64) cycle.Fingerprint {
	return cycle.MustCanonical(struct {
		Positions []int `json:"positions"`
	}{positions})
}

func (w Wheels) accelerator(options []cycle.Option) *cycle.Accelerator[[]int] {
	return cycle.New(make([]int, len(w.Faces)), w.Pull, WheelKey, options...)
}

// FacesAfter returns the faces showing after the given number of pulls.
func (w Wheels) FacesAfter(pulls uint64, options ...cycle.Option) (string, error) {
	positions, err := w.accelerator(options).ValueAtStep(pulls)
	if err != nil {
		return "", err
	}
	return strings.Join(w.Visible(positions), " "), nil
}

// CoinsAfter returns the coins won over the given number of pulls.
func (w Wheels) CoinsAfter(pulls *big.Int, options ...cycle.Option) (decimal.Decimal, error) {
	return w.accelerator(options).SumThrough(pulls)
}

// Extremes returns the most and the fewest coins that can be won in the
// given number of pulls when the left lever may also nudge every wheel one
// face forward or back before each pull.
//
// After k pulls the wheels sit at k*speed plus the net nudge, the same for
// every wheel, so the table is indexed by pull and net nudge.
func (w Wheels) Extremes(pulls int) (int64, int64) {
	if pulls <= 0 {
		return 0, 0
	}
	width := 2*pulls + 1
	type bounds struct {
		most, fewest int64
		reached      bool
	}
	current := make([]bounds, width)
	current[pulls] = bounds{reached: true}
	for k := 1; k <= pulls; k++ {
		next := make([]bounds, width)
		for i, b := range current {
			if !b.reached {
				continue
			}
			for _, nudge := range []int{-1, 0, 1} {
				j := i + nudge
				coins := w.Coins(w.turn(k, j-pulls))
				most, fewest := b.most+coins, b.fewest+coins
				n := &next[j]
				if !n.reached {
					*n = bounds{most: most, fewest: fewest, reached: true}
					continue
				}
				n.most = max(n.most, most)
				n.fewest = min(n.fewest, fewest)
			}
		}
		current = next
	}

	most, fewest := int64(0), int64(0)
	first := true
	for _, b := range current {
		if !b.reached {
			continue
		}
		if first {
			most, fewest, first = b.most, b.fewest, false
			continue
		}
		most = max(most, b.most)
		fewest = min(fewest, b.fewest)
	}
	return most, fewest
}
