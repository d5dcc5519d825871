package neighbourhood

import (
	"itc2007-cct/internal/rng"
	"itc2007-cct/internal/tt"
)

// Iterator enumerates every effective swap move over sol's current
// assignment: for each currently-scheduled lecture, every (room, day,
// slot) destination other than its own, slot varying fastest. The
// enumeration order itself carries no meaning for correctness — methods
// that care about order (steepest descent wants determinism for
// reproducible runs) rely on it being stable across calls on an
// unchanged solution, which it is.
type Iterator struct {
	sol *tt.Solution

	rdsIndex int
	r2, d2, s2 int
	l1         int
	end        bool
}

// NewIterator returns an Iterator positioned before the first move.
func NewIterator(sol *tt.Solution) *Iterator {
	dims := sol.Model().Dims()
	return &Iterator{
		sol:      sol,
		rdsIndex: -1,
		r2:       dims.R - 1,
		d2:       dims.D - 1,
		s2:       dims.S - 1,
		l1:       -1,
	}
}

// Next returns the next move, or ok == false once the neighbourhood is
// exhausted.
func (it *Iterator) Next() (Move, bool) {
	if it.end {
		return Move{}, false
	}

	dims := it.sol.Model().Dims()
	RDS := dims.R * dims.D * dims.S

	for {
		it.s2++
		if it.s2 == dims.S {
			it.s2 = 0
			it.d2++
			if it.d2 == dims.D {
				it.d2 = 0
				it.r2++
				if it.r2 == dims.R {
					it.r2 = 0
					found := false
					for !found {
						it.rdsIndex++
						if it.rdsIndex >= RDS {
							it.end = true
							return Move{}, false
						}
						r := it.rdsIndex / (dims.D * dims.S)
						rem := it.rdsIndex % (dims.D * dims.S)
						day := rem / dims.S
						slot := rem % dims.S
						if l := it.sol.LectureAt(r, day, slot); l != tt.Unassigned {
							it.l1 = l
							found = true
						}
					}
				}
			}
		}

		a := it.sol.Assignment(it.l1)
		if a.Room == it.r2 && a.Day == it.d2 && a.Slot == it.s2 {
			continue
		}
		return Move{L1: it.l1, R2: it.r2, D2: it.d2, S2: it.s2}, true
	}
}

// All collects every move in the neighbourhood. Meant for small
// instances or tests — methods that scan the whole neighbourhood per
// iteration (Local Search, Tabu Search) use the Iterator directly to
// avoid the allocation.
func All(sol *tt.Solution) []Move {
	it := NewIterator(sol)
	var moves []Move
	for {
		mv, ok := it.Next()
		if !ok {
			return moves
		}
		moves = append(moves, mv)
	}
}

// Random draws one uniformly-random effective move: a random assigned
// lecture and a random destination distinct from its current position.
func Random(sol *tt.Solution, stream *rng.Stream) Move {
	assigned := sol.AssignedLectures()
	dims := sol.Model().Dims()
	for {
		l1 := assigned[stream.UniformInt(0, len(assigned))]
		r2 := stream.UniformInt(0, dims.R)
		d2 := stream.UniformInt(0, dims.D)
		s2 := stream.UniformInt(0, dims.S)
		a := sol.Assignment(l1)
		if a.Room == r2 && a.Day == d2 && a.Slot == s2 {
			continue
		}
		return Move{L1: l1, R2: r2, D2: d2, S2: s2}
	}
}

// RandomFeasible draws random effective moves (via Random) until one is
// hard-feasible, predicting each candidate without mutating sol. Used by
// Hill Climbing and Simulated Annealing, whose samplers are specified to
// only ever offer the walk a feasible move — the cost computation that
// follows is never feasibility-filtered.
func RandomFeasible(sol *tt.Solution, stream *rng.Stream) (Move, Result) {
	for {
		mv := Random(sol, stream)
		res := Predict(sol, mv)
		if res.Feasible {
			return mv, res
		}
	}
}
