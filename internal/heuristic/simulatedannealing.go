package heuristic

import (
	"context"
	"math"

	"itc2007-cct/internal/neighbourhood"
	"itc2007-cct/internal/rng"
)

// SimulatedAnnealingConfig tunes SA (spec §4.5.4).
type SimulatedAnnealingConfig struct {
	MaxIdle                int
	InitialTemperature     float64
	CoolingRate            float64
	MinTemperature         float64
	TemperatureLengthCoeff float64
}

// acceptance is the Metropolis acceptance probability exp(-ΔCost/T).
func acceptance(delta int, temperature float64) float64 {
	return math.Exp(-float64(delta) / temperature)
}

// SimulatedAnnealing runs the temperature-scheduled random walk of spec
// §4.5.4: at each temperature it draws temperatureLength feasible
// effective moves, accepting a move outright if it would beat the
// global best, or probabilistically otherwise via the Metropolis rule.
// Idle counts iterations since the last strict improvement on a
// running local-best cost; the schedule ends when the temperature
// drops below MinTemperature or idle reaches MaxIdle.
func SimulatedAnnealing(ctx context.Context, mc *MethodContext, cfg SimulatedAnnealingConfig, stream *rng.Stream) {
	lectureCount := mc.Current.Model().Dims().L
	temperatureLength := int(math.Round(float64(lectureCount) * cfg.TemperatureLengthCoeff))
	if temperatureLength < 1 {
		temperatureLength = 1
	}

	localBestCost := mc.CurrentCost
	idle := 0
	t := cfg.InitialTemperature

	for t >= cfg.MinTemperature && idle < cfg.MaxIdle {
		select {
		case <-ctx.Done():
			return
		default:
		}

		for it := 0; it < temperatureLength; it++ {
			mv, res := neighbourhood.RandomFeasible(mc.Current, stream)

			accept := mc.CurrentCost+res.DeltaCost < mc.BestCost
			if !accept {
				p := acceptance(res.DeltaCost, t)
				accept = stream.Float64() < p
			}

			if accept {
				neighbourhood.Apply(mc.Current, mv)
				mc.CurrentCost += res.DeltaCost
				mc.ReportMoveApplied()
			}

			if mc.CurrentCost < localBestCost {
				localBestCost = mc.CurrentCost
				idle = 0
			} else {
				idle++
				mc.Stats.IdleIterations++
			}
		}

		t *= cfg.CoolingRate
	}
}
