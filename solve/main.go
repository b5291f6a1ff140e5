package main

import (
	"fmt"
	"os"
)

/*
Answers everybody.codes quests whose later parts ask about a step count far
too large to simulate. Each quest runs its system until the state repeats
and then extrapolates to the requested step.

	solve wheel --part 2 --input q16_p2.txt
	solve light --part 3 --input q14_p3.txt --steps 1G --method floyd
*/
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
