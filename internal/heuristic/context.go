// Package heuristic implements the local-search metaheuristics the
// driver composes: Local Search, Hill Climbing, Tabu Search, and
// Simulated Annealing (spec §4.5). Every method mutates a Solution
// exclusively through the internal/neighbourhood swap move and reports
// every accepted move back through MethodContext.ReportMoveApplied, so
// best-solution tracking lives in exactly one place.
package heuristic

import (
	"time"

	"itc2007-cct/internal/tt"
)

// Stats accumulates per-method counters (SPEC_FULL §4.6 "solver
// statistics snapshot"). The driver adds MovesApplied into its own
// per-method stats, which the CLI's --stats flag prints; the other
// fields are not reported, and Elapsed is not set by any method.
type Stats struct {
	MovesApplied            int
	MovesRejectedInfeasible int
	MovesRejectedTabu       int
	IdleIterations          int
	Elapsed                 time.Duration
}

// MethodContext is the state every heuristic method reads and mutates:
// the live solution, a copy-on-improve best-solution slot, the running
// costs, and a per-method Stats block. The driver constructs one
// MethodContext per cycle and hands it to each configured method in
// turn.
type MethodContext struct {
	Current *tt.Solution
	Best    *tt.Solution

	CurrentCost int
	BestCost    int

	Stats Stats

	// onNewBest, if set, is invoked whenever ReportMoveApplied records a
	// new global best (the driver uses this to log/timestamp).
	onNewBest func()
}

// NewMethodContext seeds a MethodContext from sol's current cost. Best
// starts as a copy of Current.
func NewMethodContext(sol *tt.Solution) *MethodContext {
	cost := sol.Cost()
	return &MethodContext{
		Current:     sol,
		Best:        sol.Copy(),
		CurrentCost: cost,
		BestCost:    cost,
	}
}

// OnNewBest registers a callback invoked each time ReportMoveApplied
// records a strict improvement over BestCost.
func (mc *MethodContext) OnNewBest(fn func()) {
	mc.onNewBest = fn
}

// ReportMoveApplied must be called after every accepted move (spec
// §4.5): it increments the move counter and, if CurrentCost improves on
// BestCost, snapshots Current into Best.
func (mc *MethodContext) ReportMoveApplied() {
	mc.Stats.MovesApplied++
	if mc.CurrentCost < mc.BestCost {
		if !mc.Current.SatisfiesHard() {
			panic("heuristic: reportMoveApplied observed an infeasible current solution")
		}
		mc.Best.CopyFrom(mc.Current)
		mc.BestCost = mc.CurrentCost
		if mc.onNewBest != nil {
			mc.onNewBest()
		}
	}
}
