// Command itc2007-solve is the CLI front-end over the solver core: it
// reads an ITC-2007 track-3 instance, builds a feasible solution, runs
// the configured heuristic methods, and writes the best solution found
// (SPEC_FULL §6.3).
package main

import (
	"fmt"
	"os"

	"itc2007-cct/internal/obs"
)

func main() {
	defer obs.Sync()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
