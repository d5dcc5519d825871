package heuristic

import (
	"context"

	"itc2007-cct/internal/neighbourhood"
)

// LocalSearchConfig tunes LS's acceptance rule (spec §4.5.1).
type LocalSearchConfig struct {
	// Steepest, when true, applies the first strictly-improving move
	// found mid-scan (first-improvement) instead of scanning the whole
	// neighbourhood and applying only the single best move found.
	Steepest bool
}

// LocalSearch iterates the full swap neighbourhood to exhaustion,
// applying either the first strictly-improving move seen (steepest) or
// the single best move of a full scan, repeating until a pass finds no
// improving move (a local optimum).
func LocalSearch(ctx context.Context, mc *MethodContext, cfg LocalSearchConfig) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if cfg.Steepest {
			if !steepestPass(ctx, mc) {
				return
			}
			continue
		}

		mv, delta, found := bestOfScan(ctx, mc)
		if !found || delta >= 0 {
			return
		}
		neighbourhood.Apply(mc.Current, mv)
		mc.CurrentCost += delta
		mc.ReportMoveApplied()
	}
}

// steepestPass scans the neighbourhood and applies the first
// strictly-improving feasible move it finds, reporting whether it
// applied anything.
func steepestPass(ctx context.Context, mc *MethodContext) bool {
	it := neighbourhood.NewIterator(mc.Current)
	for {
		mv, ok := it.Next()
		if !ok {
			return false
		}
		select {
		case <-ctx.Done():
			return false
		default:
		}

		res := neighbourhood.Predict(mc.Current, mv)
		if !res.Feasible {
			mc.Stats.MovesRejectedInfeasible++
			continue
		}
		if res.DeltaCost < 0 {
			neighbourhood.Apply(mc.Current, mv)
			mc.CurrentCost += res.DeltaCost
			mc.ReportMoveApplied()
			return true
		}
	}
}

// bestOfScan walks the full neighbourhood once and returns the single
// feasible move with the smallest ΔCost, unapplied.
func bestOfScan(ctx context.Context, mc *MethodContext) (neighbourhood.Move, int, bool) {
	it := neighbourhood.NewIterator(mc.Current)

	found := false
	var bestMove neighbourhood.Move
	bestDelta := 0

	for {
		mv, ok := it.Next()
		if !ok {
			break
		}
		select {
		case <-ctx.Done():
			return bestMove, bestDelta, found
		default:
		}

		res := neighbourhood.Predict(mc.Current, mv)
		if !res.Feasible {
			mc.Stats.MovesRejectedInfeasible++
			continue
		}
		if !found || res.DeltaCost < bestDelta {
			found = true
			bestMove = mv
			bestDelta = res.DeltaCost
		}
	}

	return bestMove, bestDelta, found
}
