// Package driver implements the round-robin solver loop that composes
// the heuristic methods (spec §4.5.5, grounded on heuristic_solver.c):
// it owns the best-solution slot, the feasible-solution construction
// policy, the restore-best-after-cycles safety valve, and the cycle/time
// budget.
package driver

import (
	"context"
	"time"

	"go.uber.org/zap"

	"itc2007-cct/internal/finder"
	"itc2007-cct/internal/heuristic"
	"itc2007-cct/internal/obs"
	"itc2007-cct/internal/rng"
	"itc2007-cct/internal/tt"
	"itc2007-cct/internal/xerrors"
)

// Method is one configured heuristic step the driver invokes once per
// cycle, in order.
type Method struct {
	Name string
	Run  func(ctx context.Context, mc *heuristic.MethodContext, stream *rng.Stream)
}

// Config configures a driver run (spec §4.5.5 / §6.3 solver.* keys).
type Config struct {
	Methods                []Method
	MaxTime                time.Duration // 0 = no timeout
	MaxCycles              int           // 0 or negative = unbounded
	Multistart             bool
	RestoreBestAfterCycles int // 0 disables restoring
	FinderConfig           finder.Config
}

// MethodStats aggregates per-method execution counters across the
// whole run, surfaced by the CLI's --stats flag.
type MethodStats struct {
	Name             string
	ExecutionTime    time.Duration
	MovesApplied     int
	ImprovementCount int
}

// Stats is the run-level statistics snapshot (SPEC_FULL §4.6).
type Stats struct {
	CycleCount        int
	BestRestoredCount int
	StartingTime      time.Time
	BestSolutionTime  time.Time
	EndingTime        time.Time
	Methods           []MethodStats
}

// Result is what Run returns: the best solution found (possibly nil if
// the finder never succeeded even once) and the run statistics.
type Result struct {
	Best  *tt.Solution
	Stats Stats
}

// Run executes the round-robin driver loop until timeout, the cycle
// limit, or bestCost == 0. When cfg.MaxTime > 0, Run derives a context
// with that timeout from ctx; the driver checks it at each cycle
// boundary, and the finder and the methods check it in their own loops.
//
// model-owning callers construct a fresh *tt.Solution via tt.New and
// pass it as template; Run never mutates template itself, only copies
// derived from it.
func Run(ctx context.Context, template *tt.Solution, cfg Config, stream *rng.Stream) (Result, error) {
	if len(cfg.Methods) == 0 {
		return Result{}, xerrors.NewConfigError("solver.methods", "at least one method must be configured")
	}

	if cfg.MaxTime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.MaxTime)
		defer cancel()
	}

	cyclesLimit := cfg.MaxCycles
	if cyclesLimit <= 0 {
		cyclesLimit = int(^uint(0) >> 1) // unbounded, mirrors max_cycles < 0 meaning INT_MAX
	}

	stats := Stats{
		StartingTime: time.Now(),
		Methods:      make([]MethodStats, len(cfg.Methods)),
	}
	for i, m := range cfg.Methods {
		stats.Methods[i].Name = m.Name
	}

	current := template.Copy()
	currentCost := -1 // sentinel meaning "not yet generated"
	var best *tt.Solution
	bestCost := -1

	nonImprovingBestCycles := 0
	nonImprovingCurrentCycles := 0
	cycle := 0

	for bestCost != 0 {
		select {
		case <-ctx.Done():
			obs.L().Info("driver: time limit reached, stopping")
			goto done
		default:
		}
		if cycle >= cyclesLimit {
			obs.L().Info("driver: cycle limit reached, stopping", zap.Int("cycles", cyclesLimit))
			goto done
		}

		if currentCost < 0 || cfg.Multistart {
			current.Clear()
			if err := finder.Find(ctx, current, cfg.FinderConfig, stream); err != nil {
				if best == nil {
					return Result{}, err
				}
				goto done
			}
			currentCost = current.Cost()
			if best == nil {
				best = current.Copy()
				bestCost = currentCost
				stats.BestSolutionTime = time.Now()
			}
			obs.L().Info("driver: starting from fresh feasible solution", zap.Int("cost", currentCost))
		}

		cycleBeginBest := bestCost
		cycleBeginCurrent := currentCost

		if cfg.RestoreBestAfterCycles > 0 && !cfg.Multistart &&
			nonImprovingBestCycles >= cfg.RestoreBestAfterCycles {
			obs.L().Info("driver: restoring best solution after non-improving cycles",
				zap.Int("best_cost", bestCost), zap.Int("cycles", nonImprovingBestCycles))
			current.CopyFrom(best)
			currentCost = bestCost
			nonImprovingBestCycles = 0
			nonImprovingCurrentCycles = 0
			stats.BestRestoredCount++
		}

		mc := &heuristic.MethodContext{
			Current:     current,
			Best:        best.Copy(),
			CurrentCost: currentCost,
			BestCost:    bestCost,
		}
		mc.OnNewBest(func() {
			stats.BestSolutionTime = time.Now()
		})

		for i, m := range cfg.Methods {
			started := time.Now()
			methodBeginBest := mc.BestCost
			m.Run(ctx, mc, stream)
			stats.Methods[i].ExecutionTime += time.Since(started)
			stats.Methods[i].MovesApplied += mc.Stats.MovesApplied
			if mc.BestCost < methodBeginBest {
				stats.Methods[i].ImprovementCount++
			}
			mc.Stats = heuristic.Stats{}
		}

		currentCost = mc.CurrentCost
		if mc.BestCost < bestCost {
			best = mc.Best
			bestCost = mc.BestCost
		}

		if currentCost < cycleBeginCurrent {
			nonImprovingCurrentCycles = 0
		} else {
			nonImprovingCurrentCycles++
		}
		if bestCost < cycleBeginBest {
			nonImprovingBestCycles = 0
		} else {
			nonImprovingBestCycles++
		}

		cycle++
		stats.CycleCount++
	}

done:
	stats.EndingTime = time.Now()
	return Result{Best: best, Stats: stats}, nil
}
