package main

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"CycleSkip/mp"
	"CycleSkip/quests"
)

func uint64Steps(r run) (uint64, error) {
	if !r.steps.IsUint64() {
		return 0, fmt.Errorf("%s steps is out of range for this part", r.steps)
	}
	return r.steps.Uint64(), nil
}

func solveClapper(r run) (string, error) {
	dance, err := quests.ParseDance(r.input)
	if err != nil {
		return "", err
	}
	switch r.part {
	case 1:
		rounds, err := uint64Steps(r)
		if err != nil {
			return "", err
		}
		shout, err := quests.ShoutAfter(dance, rounds, r.options...)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(shout, 10), nil
	case 2:
		times, err := mp.Int(r.steps)
		if err != nil {
			return "", err
		}
		answer, err := quests.RepeatedShout(dance, times, r.options...)
		if err != nil {
			return "", err
		}
		return answer.String(), nil
	default:
		shout, err := quests.HighestShout(dance, r.options...)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(shout, 10), nil
	}
}

func solveWheel(r run) (string, error) {
	wheels, err := quests.ParseWheels(r.input)
	if err != nil {
		return "", err
	}
	switch r.part {
	case 1:
		pulls, err := uint64Steps(r)
		if err != nil {
			return "", err
		}
		return wheels.FacesAfter(pulls, r.options...)
	case 2:
		coins, err := wheels.CoinsAfter(r.steps, r.options...)
		if err != nil {
			return "", err
		}
		return coins.String(), nil
	default:
		pulls, err := mp.Int(r.steps)
		if err != nil || pulls > math.MaxInt32 {
			return "", fmt.Errorf("%s pulls is too many to search", r.steps)
		}
		most, fewest := wheels.Extremes(pulls)
		return fmt.Sprintf("%d %d", most, fewest), nil
	}
}

func solveDial(r run) (string, error) {
	dial, err := quests.ParseDial(r.input)
	if err != nil {
		return "", err
	}
	n, err := dial.Number(r.steps)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n, 10), nil
}

// lightFloorSize is the side of the floor the part 3 pattern is played on.
const lightFloorSize = 34

func solveLight(r run) (string, error) {
	floor, err := quests.ParseFloor(r.input)
	if err != nil {
		return "", err
	}
	if r.part < 3 {
		total, err := quests.ActiveTotal(floor, r.steps, r.options...)
		if err != nil {
			return "", err
		}
		return total.String(), nil
	}
	total, err := quests.PatternTotal(floor, lightFloorSize, r.steps, r.options...)
	if err != nil {
		return "", err
	}
	return total.String(), nil
}

func solveEnigma(r run) (string, error) {
	machines, err := quests.ParseMachines(r.input)
	if err != nil {
		return "", err
	}
	best, err := quests.BestEnigma(context.Background(), machines, r.part, r.options...)
	if err != nil {
		return "", err
	}
	return best.String(), nil
}
