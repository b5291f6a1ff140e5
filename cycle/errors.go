package cycle

import (
	"errors"
	"fmt"
)

var (
	// ErrNonPeriodic is matched by every *NonPeriodicError via errors.Is.
	ErrNonPeriodic = errors.New("no repeating state found")
	// ErrBeyondHorizon means a target lies past the simulated prefix of a
	// trajectory that never closed a loop.
	ErrBeyondHorizon = errors.New("target lies beyond the simulated horizon")
	// ErrNegativeTarget is returned for step counts below zero.
	ErrNegativeTarget = errors.New("target step count is negative")
	// ErrNoStepper is returned when an Accelerator is missing its transition
	// or its encoder.
	ErrNoStepper = errors.New("stepper and encoder are both required")
)

// NonPeriodicError reports that the iteration budget ran out before any
// fingerprint repeated. No answer can be derived from such a run.
type NonPeriodicError struct {
	// Steps is the number of detection iterations charged to the budget.
	// The exact method takes one transition per iteration. Floyd's method
	// moves the tortoise one step and the hare two, so Steps counts the
	// tortoise.
	Steps int
	// Limit is the budget that was in force.
	Limit int
	// Calls is how many times the stepper actually ran.
	Calls int
}

func (e *NonPeriodicError) Error() string {
	return fmt.Sprintf("no repeating state after %d steps, %d stepper calls (limit %d)", e.Steps, e.Calls, e.Limit)
}

func (e *NonPeriodicError) Is(target error) bool {
	return target == ErrNonPeriodic
}
