package neighbourhood

import (
	"itc2007-cct/internal/model"
	"itc2007-cct/internal/tt"
)

// DeltaBreakdown itemizes a move's soft-cost delta by constraint, for
// reporting and for tests that check the four components independently.
type DeltaBreakdown struct {
	RoomCapacity          int
	MinWorkingDays        int
	CurriculumCompactness int
	RoomStability         int
}

// Total sums the four components.
func (b DeltaBreakdown) Total() int {
	return b.RoomCapacity + b.MinWorkingDays + b.CurriculumCompactness + b.RoomStability
}

// Result is a move's predicted effect on sol, computed without mutating
// it. Breakdown and DeltaCost are only meaningful when Feasible is true
// — an infeasible move's cost is not evaluated, matching every call site
// in the reference solver (predict feasibility first, cost only if
// feasible).
type Result struct {
	Feasible  bool
	DeltaCost int
	Breakdown DeltaBreakdown
}

// Predict evaluates mv against sol's current state without mutating sol,
// in time linear in the number of days, the number of rooms, and the
// number of curricula the two moving courses belong to.
func Predict(sol *tt.Solution, mv Move) Result {
	c1, r1, d1, s1, _, c2 := describe(sol, mv)
	m := sol.Model()

	if r1 == mv.R2 && d1 == mv.D2 && s1 == mv.S2 {
		return Result{Feasible: true}
	}

	if !feasible(sol, m, c1, d1, s1, c2, mv.D2, mv.S2) {
		return Result{Feasible: false}
	}

	b := DeltaBreakdown{
		RoomCapacity: roomCapacityDelta(m, c1, r1, mv.R2) + roomCapacityDelta(m, c2, mv.R2, r1),
		MinWorkingDays: minWorkingDaysDelta(sol, m, c1, d1, c2, mv.D2) +
			minWorkingDaysDelta(sol, m, c2, mv.D2, c1, d1),
		CurriculumCompactness: curriculumCompactnessDelta(sol, m, c1, d1, s1, c2, mv.D2, mv.S2) +
			curriculumCompactnessDelta(sol, m, c2, mv.D2, mv.S2, c1, d1, s1),
		RoomStability: roomStabilityDelta(sol, m, c1, r1, c2, mv.R2) +
			roomStabilityDelta(sol, m, c2, mv.R2, c1, r1),
	}

	return Result{Feasible: true, DeltaCost: b.Total(), Breakdown: b}
}

// --- Feasibility (hard constraints H1, H3, H4 — H2 holds structurally) ---

func feasible(sol *tt.Solution, m *model.Model, c1, d1, s1, c2, d2, s2 int) bool {
	return checkLectures(sol, c1, d1, s1, c2, d2, s2) &&
		checkLectures(sol, c2, d2, s2, c1, d1, s1) &&
		checkConflictsCurriculum(sol, m, c1, d1, s1, c2, d2, s2) &&
		checkConflictsCurriculum(sol, m, c2, d2, s2, c1, d1, s1) &&
		checkConflictsTeacher(sol, m, c1, d1, s1, c2, d2, s2) &&
		checkConflictsTeacher(sol, m, c2, d2, s2, c1, d1, s1) &&
		checkAvailability(m, c1, d2, s2) &&
		checkAvailability(m, c2, d1, s1)
}

func checkLectures(sol *tt.Solution, c1, d1, s1, c2, d2, s2 int) bool {
	if c1 < 0 {
		return true
	}
	adjust := 0
	if d1 == d2 && s1 == s2 {
		adjust++
	}
	if c1 == c2 {
		adjust++
	}
	return sol.SumCDS(c1, d2, s2)-adjust <= 0
}

func checkConflictsCurriculum(sol *tt.Solution, m *model.Model, c1, d1, s1, c2, d2, s2 int) bool {
	if c1 < 0 {
		return true
	}
	samePeriod := d1 == d2 && s1 == s2
	for _, q := range m.CurriculaOfCourse(c1) {
		adjust := 0
		if samePeriod {
			adjust++
		}
		if c2 >= 0 && m.ShareCurriculum(c1, c2, q) {
			adjust++
		}
		if sol.SumQDS(q, d2, s2)-adjust > 0 {
			return false
		}
	}
	return true
}

func checkConflictsTeacher(sol *tt.Solution, m *model.Model, c1, d1, s1, c2, d2, s2 int) bool {
	if c1 < 0 {
		return true
	}
	samePeriod := d1 == d2 && s1 == s2
	sameTeacher := c2 >= 0 && m.SameTeacher(c1, c2)
	t1 := m.TeacherIndex(c1)
	adjust := 0
	if samePeriod {
		adjust++
	}
	if sameTeacher {
		adjust++
	}
	return sol.SumTDS(t1, d2, s2)-adjust <= 0
}

func checkAvailability(m *model.Model, c, d, s int) bool {
	if c < 0 {
		return true
	}
	return m.Available(c, d, s)
}

// --- Soft cost deltas ---

func min0(v int) int {
	if v < 0 {
		return v
	}
	return 0
}

func max0(v int) int {
	if v > 0 {
		return v
	}
	return 0
}

func min1(v int) int {
	if v < 1 {
		return v
	}
	return 1
}

func roomCapacityDelta(m *model.Model, c, rFrom, rTo int) int {
	if c < 0 {
		return 0
	}
	cost := min0(m.Rooms[rFrom].Capacity-m.Courses[c].NumStudents) + max0(m.Courses[c].NumStudents-m.Rooms[rTo].Capacity)
	return cost * tt.WeightRoomCapacity
}

func minWorkingDaysDelta(sol *tt.Solution, m *model.Model, cFrom, dFrom, cTo, dTo int) int {
	if cFrom < 0 || cFrom == cTo {
		return 0
	}
	mwd := m.Courses[cFrom].MinWorkingDays
	prev, cur := 0, 0
	for d := 0; d < m.Dims().D; d++ {
		sumCD := sol.SumCD(cFrom, d)
		prev += min1(sumCD)
		adj := sumCD
		if d == dFrom {
			adj--
		}
		if d == dTo {
			adj++
		}
		cur += min1(adj)
	}
	cost := min0(prev-mwd) + max0(mwd-cur)
	return cost * tt.WeightMinWorkingDays
}

func roomStabilityDelta(sol *tt.Solution, m *model.Model, cFrom, rFrom, cTo, rTo int) int {
	if cFrom < 0 || rFrom == rTo || cFrom == cTo {
		return 0
	}
	prev, cur := 0, 0
	for r := 0; r < m.Dims().R; r++ {
		sumCR := sol.SumCR(cFrom, r)
		prev += min1(sumCR)
		adj := sumCR
		if r == rFrom {
			adj--
		}
		if r == rTo {
			adj++
		}
		cur += min1(adj)
	}
	cost := max0(cur-1) - max0(prev-1)
	return cost * tt.WeightRoomStability
}

// curriculumCompactnessDelta mirrors the reference solver's Z/ALONE_*
// macro chain: it evaluates isolation before and after the move at the
// six slots that can possibly change (the vacated slot and its two
// neighbours, the destination slot and its two neighbours) without
// touching sol.
func curriculumCompactnessDelta(sol *tt.Solution, m *model.Model, cFrom, dFrom, sFrom, cTo, dTo, sTo int) int {
	if cFrom < 0 || cFrom == cTo {
		return 0
	}
	S := m.Dims().S

	total := 0
	for _, q := range m.CurriculaOfCourse(cFrom) {
		if cTo >= 0 && m.ShareCurriculum(cTo, cFrom, q) {
			continue
		}

		z := func(d, s int) bool { return s >= 0 && s < S && sol.SumQDS(q, d, s) > 0 }
		vacated := func(d, s int) bool { return d == dFrom && s == sFrom }
		zOutAfter := func(d, s int) bool { return !vacated(d, s) && z(d, s) }
		zInBefore := zOutAfter
		zInAfter := func(d, s int) bool {
			if d == dTo && s == sTo {
				return true
			}
			return !vacated(d, s) && z(d, s)
		}

		aloneOutBefore := func(d, s int) bool { return z(d, s) && !z(d, s-1) && !z(d, s+1) }
		aloneOutAfter := func(d, s int) bool { return zOutAfter(d, s) && !zOutAfter(d, s-1) && !zOutAfter(d, s+1) }
		aloneInBefore := func(d, s int) bool { return zInBefore(d, s) && !zInBefore(d, s-1) && !zInBefore(d, s+1) }
		aloneInAfter := func(d, s int) bool { return zInAfter(d, s) && !zInAfter(d, s-1) && !zInAfter(d, s+1) }

		b2i := func(b bool) int {
			if b {
				return 1
			}
			return 0
		}

		outPrevBefore := b2i(aloneOutBefore(dFrom, sFrom-1))
		outItself := b2i(aloneOutBefore(dFrom, sFrom))
		outNextBefore := b2i(aloneOutBefore(dFrom, sFrom+1))

		outPrevAfter := b2i(aloneOutAfter(dFrom, sFrom-1))
		outNextAfter := b2i(aloneOutAfter(dFrom, sFrom+1))

		inPrevBefore := b2i(aloneInBefore(dTo, sTo-1))
		inNextBefore := b2i(aloneInBefore(dTo, sTo+1))
		inPrevAfter := b2i(aloneInAfter(dTo, sTo-1))
		inNextAfter := b2i(aloneInAfter(dTo, sTo+1))

		inItself := b2i(aloneInAfter(dTo, sTo))

		total += (outPrevAfter - outPrevBefore) + (outNextAfter - outNextBefore) +
			(inPrevAfter - inPrevBefore) + (inNextAfter - inNextBefore) +
			(inItself - outItself)
	}

	return total * tt.WeightCurriculumCompactness
}
