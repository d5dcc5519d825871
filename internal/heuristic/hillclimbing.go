package heuristic

import (
	"context"

	"itc2007-cct/internal/neighbourhood"
	"itc2007-cct/internal/rng"
)

// HillClimbingConfig tunes HC's termination (spec §4.5.2).
type HillClimbingConfig struct {
	MaxIdle int
}

// HillClimbing repeatedly draws a random feasible effective move (the
// sampler itself redraws until feasible, so the ΔCost it computes is
// never feasibility-filtered) and applies it whenever ΔCost ≤ 0,
// accepting sidesteps as well as strict improvements. The idle counter
// resets on strict improvement and the walk terminates once idle
// reaches cfg.MaxIdle.
func HillClimbing(ctx context.Context, mc *MethodContext, cfg HillClimbingConfig, stream *rng.Stream) {
	idle := 0
	for idle < cfg.MaxIdle {
		select {
		case <-ctx.Done():
			return
		default:
		}

		mv, res := neighbourhood.RandomFeasible(mc.Current, stream)
		if res.DeltaCost > 0 {
			idle++
			mc.Stats.IdleIterations++
			continue
		}

		neighbourhood.Apply(mc.Current, mv)
		mc.CurrentCost += res.DeltaCost
		mc.ReportMoveApplied()

		if res.DeltaCost < 0 {
			idle = 0
		} else {
			idle++
			mc.Stats.IdleIterations++
		}
	}
}
