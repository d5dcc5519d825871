package heuristic

import (
	"context"
	"math"

	"itc2007-cct/internal/neighbourhood"
	"itc2007-cct/internal/rng"
	"itc2007-cct/internal/tt"
)

// TabuSearchConfig tunes TS (spec §4.5.3).
type TabuSearchConfig struct {
	MaxIdle               int
	TabuTenure            int
	FrequencyPenaltyCoeff float64
	RandomPick            bool
	Steepest              bool
	ClearOnBest           bool
}

// tabuEndpoint is a placed-lecture coordinate (c,r,d,s) the tabu table
// tracks.
type tabuEndpoint struct {
	c, r, d, s int
}

// tabuEntry records the iteration an endpoint was last placed and how
// many times placement there has been recorded, both inputs to the
// banned-until formula (spec §4.5.3).
type tabuEntry struct {
	lastTime int
	count    int
}

// tabuTable bans (c,r,d,s) endpoints for a duration that grows with how
// often that endpoint has been used, keyed on the triple moves actually
// place lectures at.
type tabuTable struct {
	tenure float64
	coeff  float64
	table  map[tabuEndpoint]tabuEntry
}

func newTabuTable(tenure float64, coeff float64) *tabuTable {
	return &tabuTable{tenure: tenure, coeff: coeff, table: make(map[tabuEndpoint]tabuEntry)}
}

func (t *tabuTable) banned(e tabuEndpoint, iter int) bool {
	entry, ok := t.table[e]
	if !ok {
		return false
	}
	bannedUntil := float64(entry.lastTime) + t.tenure*math.Pow(t.coeff, float64(entry.count))
	return bannedUntil >= float64(iter)
}

func (t *tabuTable) record(e tabuEndpoint, iter int) {
	entry := t.table[e]
	entry.lastTime = iter
	entry.count++
	t.table[e] = entry
}

func (t *tabuTable) clear() {
	t.table = make(map[tabuEndpoint]tabuEntry)
}

// candidate is one feasible move seen during a TS scan, carrying the
// (c,r,d,s) endpoints it would place lectures at, for tabu
// checking/recording and tie-breaking.
type candidate struct {
	move  neighbourhood.Move
	delta int
	e1    tabuEndpoint
	e2    tabuEndpoint
	hasE2 bool
}

// describeCandidate resolves the (c,r,d,s) endpoints mv would place
// lectures at, read from sol's current (pre-move) state.
func describeCandidate(sol *tt.Solution, mv neighbourhood.Move, delta int) candidate {
	c1 := sol.CourseOf(mv.L1)
	cand := candidate{
		move:  mv,
		delta: delta,
		e1:    tabuEndpoint{c: c1, r: mv.R2, d: mv.D2, s: mv.S2},
	}
	if l2 := sol.LectureAt(mv.R2, mv.D2, mv.S2); l2 != tt.Unassigned {
		a1 := sol.Assignment(mv.L1)
		c2 := sol.CourseOf(l2)
		cand.e2 = tabuEndpoint{c: c2, r: a1.Room, d: a1.Day, s: a1.Slot}
		cand.hasE2 = true
	}
	return cand
}

// TabuSearch runs the tabu-table-guided scan described in spec §4.5.3
// until idle reaches cfg.MaxIdle.
func TabuSearch(ctx context.Context, mc *MethodContext, cfg TabuSearchConfig, stream *rng.Stream) {
	tabu := newTabuTable(float64(cfg.TabuTenure), cfg.FrequencyPenaltyCoeff)
	idle := 0
	iter := 0
	localBestCost := mc.CurrentCost

	for idle < cfg.MaxIdle {
		select {
		case <-ctx.Done():
			return
		default:
		}
		iter++

		bestBeforeMove := mc.BestCost
		cand, applied, ok := tabuScan(ctx, mc, tabu, cfg, iter, stream)
		if !ok {
			idle++
			mc.Stats.IdleIterations++
			continue
		}

		if !applied {
			neighbourhood.Apply(mc.Current, cand.move)
			mc.CurrentCost += cand.delta
			tabu.record(cand.e1, iter)
			if cand.hasE2 {
				tabu.record(cand.e2, iter)
			}
			mc.ReportMoveApplied()
		}

		if cfg.ClearOnBest && mc.BestCost < bestBeforeMove {
			tabu.clear()
		}

		if mc.CurrentCost < localBestCost {
			localBestCost = mc.CurrentCost
			idle = 0
		} else {
			idle++
			mc.Stats.IdleIterations++
		}
	}
}

// tabuScan walks the full neighbourhood once, selecting a candidate per
// spec §4.5.3 steps 1-3: minimum ΔCost among feasible moves that are
// either un-banned or would beat the global best (aspiration); steepest
// mode applies as soon as a strictly-improving un-banned-or-aspiring
// move is seen (applied=true, scan returns early); random_pick breaks
// ties uniformly among candidates sharing the best ΔCost instead of
// keeping the first seen. Returns (candidate, applied, found) — when
// applied is true the move has already been recorded in tabu and
// reported, and the caller must not apply it again.
func tabuScan(ctx context.Context, mc *MethodContext, tabu *tabuTable, cfg TabuSearchConfig, iter int, stream *rng.Stream) (candidate, bool, bool) {
	it := neighbourhood.NewIterator(mc.Current)

	found := false
	var best candidate
	tiedCount := 0

	for {
		mv, ok := it.Next()
		if !ok {
			break
		}
		select {
		case <-ctx.Done():
			return best, false, found
		default:
		}

		res := neighbourhood.Predict(mc.Current, mv)
		if !res.Feasible {
			mc.Stats.MovesRejectedInfeasible++
			continue
		}

		cand := describeCandidate(mc.Current, mv, res.DeltaCost)

		banned := tabu.banned(cand.e1, iter) || (cand.hasE2 && tabu.banned(cand.e2, iter))
		aspires := mc.CurrentCost+res.DeltaCost < mc.BestCost
		if banned && !aspires {
			mc.Stats.MovesRejectedTabu++
			continue
		}

		if cfg.Steepest && res.DeltaCost < 0 {
			neighbourhood.Apply(mc.Current, cand.move)
			mc.CurrentCost += res.DeltaCost
			tabu.record(cand.e1, iter)
			if cand.hasE2 {
				tabu.record(cand.e2, iter)
			}
			mc.ReportMoveApplied()
			return cand, true, true
		}

		switch {
		case !found || res.DeltaCost < best.delta:
			found = true
			best = cand
			tiedCount = 1
		case cfg.RandomPick && res.DeltaCost == best.delta:
			tiedCount++
			if stream.UniformInt(0, tiedCount) == 0 {
				best = cand
			}
		}
	}

	return best, false, found
}
