// Package neighbourhood implements the single room+period swap move: the
// only move kind the heuristics explore. A move is identified by the
// lecture being relocated and its destination (room, day, slot); the
// lecture currently occupying the destination, if any, is swapped back
// into the source position.
package neighbourhood

import "itc2007-cct/internal/tt"

// Move relocates lecture L1 to (R2, D2, S2). If that cell is occupied,
// its occupant is relocated to L1's current position — a true swap, not
// a displacement.
type Move struct {
	L1         int
	R2, D2, S2 int
}

// Undo captures what Apply needs to know to reverse itself: L1's
// position before the move was applied.
type Undo struct {
	L1         int
	R1, D1, S1 int
}

// describe resolves a move against sol's current state: the course and
// current position of L1, and the lecture/course currently occupying
// the destination (tt.Unassigned if the destination is empty).
func describe(sol *tt.Solution, mv Move) (c1, r1, d1, s1, l2, c2 int) {
	c1 = sol.CourseOf(mv.L1)
	a := sol.Assignment(mv.L1)
	r1, d1, s1 = a.Room, a.Day, a.Slot
	l2 = sol.LectureAt(mv.R2, mv.D2, mv.S2)
	c2 = tt.Unassigned
	if l2 != tt.Unassigned {
		c2 = sol.CourseOf(l2)
	}
	return
}

// Apply performs the swap and returns an Undo that reverses it.
func Apply(sol *tt.Solution, mv Move) Undo {
	_, r1, d1, s1, l2, _ := describe(sol, mv)

	sol.Unplace(mv.L1)
	if l2 != tt.Unassigned {
		sol.Unplace(l2)
	}
	sol.Place(mv.L1, mv.R2, mv.D2, mv.S2)
	if l2 != tt.Unassigned {
		sol.Place(l2, r1, d1, s1)
	}

	return Undo{L1: mv.L1, R1: r1, D1: d1, S1: s1}
}

// Reverse undoes the move u captured, restoring L1 (and whatever it was
// swapped with) to their prior positions. This is itself just another
// swap, applied in the opposite direction — bit-identical to the state
// before the original Apply.
func (u Undo) Reverse(sol *tt.Solution) {
	Apply(sol, Move{L1: u.L1, R2: u.R1, D2: u.D1, S2: u.S1})
}
