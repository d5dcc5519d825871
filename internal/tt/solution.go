// Package tt holds the mutable solution representation: the per-lecture
// assignment plus every redundant index table the neighbourhood and cost
// routines need for O(1) queries (spec §3.2). The name echoes the
// canonical table it is built around, tt[c][r][d][s].
package tt

import (
	"itc2007-cct/internal/model"
)

// Unassigned is the sentinel used by CourseAt/LectureAt for an empty cell.
const Unassigned = -1

// Assignment is a lecture's placement; an unassigned lecture holds
// Room == Unassigned (-1). The zero value is room 0, day 0, slot 0.
type Assignment struct {
	Room, Day, Slot int
}

// IsAssigned reports whether a is a real placement.
func (a Assignment) IsAssigned() bool { return a.Room >= 0 }

var unassignedAssignment = Assignment{Room: Unassigned, Day: Unassigned, Slot: Unassigned}

// Solution is bound to a Model and holds one assignment per lecture plus
// all derived tables, kept coherent on every mutation.
type Solution struct {
	m *model.Model

	tt [][][][]bool // [c][r][d][s]

	cAt [][][]int // [r][d][s] -> course index or Unassigned
	lAt [][][]int // [r][d][s] -> lecture index or Unassigned

	sumCR  [][]int   // [c][r]
	sumCD  [][]int   // [c][d]
	sumCDS [][][]int // [c][d][s]
	sumRDS [][][]int // [r][d][s]
	sumQDS [][][]int // [q][d][s]
	sumTDS [][][]int // [t][d][s]

	assign []Assignment // [l]
}

// New allocates an empty Solution (all lectures unassigned) bound to m.
// All sizable buffers are allocated once here and reused for the life of
// the solution, per the allocation discipline in spec §5.
func New(m *model.Model) *Solution {
	d := m.Dims()
	s := &Solution{m: m}

	s.tt = make([][][][]bool, d.C)
	for c := range s.tt {
		s.tt[c] = make([][][]bool, d.R)
		for r := range s.tt[c] {
			s.tt[c][r] = make([][]bool, d.D)
			for day := range s.tt[c][r] {
				s.tt[c][r][day] = make([]bool, d.S)
			}
		}
	}

	s.cAt = make([][][]int, d.R)
	s.lAt = make([][][]int, d.R)
	for r := 0; r < d.R; r++ {
		s.cAt[r] = make([][]int, d.D)
		s.lAt[r] = make([][]int, d.D)
		for day := 0; day < d.D; day++ {
			s.cAt[r][day] = make([]int, d.S)
			s.lAt[r][day] = make([]int, d.S)
			for slot := range s.cAt[r][day] {
				s.cAt[r][day][slot] = Unassigned
				s.lAt[r][day][slot] = Unassigned
			}
		}
	}

	s.sumCR = make([][]int, d.C)
	s.sumCD = make([][]int, d.C)
	s.sumCDS = make([][][]int, d.C)
	for c := 0; c < d.C; c++ {
		s.sumCR[c] = make([]int, d.R)
		s.sumCD[c] = make([]int, d.D)
		s.sumCDS[c] = make([][]int, d.D)
		for day := 0; day < d.D; day++ {
			s.sumCDS[c][day] = make([]int, d.S)
		}
	}

	s.sumRDS = make([][][]int, d.R)
	for r := 0; r < d.R; r++ {
		s.sumRDS[r] = make([][]int, d.D)
		for day := 0; day < d.D; day++ {
			s.sumRDS[r][day] = make([]int, d.S)
		}
	}

	s.sumQDS = make([][][]int, d.Q)
	for q := 0; q < d.Q; q++ {
		s.sumQDS[q] = make([][]int, d.D)
		for day := 0; day < d.D; day++ {
			s.sumQDS[q][day] = make([]int, d.S)
		}
	}

	s.sumTDS = make([][][]int, d.T)
	for t := 0; t < d.T; t++ {
		s.sumTDS[t] = make([][]int, d.D)
		for day := 0; day < d.D; day++ {
			s.sumTDS[t][day] = make([]int, d.S)
		}
	}

	s.assign = make([]Assignment, d.L)
	for l := range s.assign {
		s.assign[l] = unassignedAssignment
	}

	return s
}

// Model returns the bound, immutable problem instance.
func (s *Solution) Model() *model.Model { return s.m }

// --- Queries, all O(1) ---

func (s *Solution) CourseAt(r, d, slot int) int { return s.cAt[r][d][slot] }
func (s *Solution) LectureAt(r, d, slot int) int { return s.lAt[r][d][slot] }
func (s *Solution) SumCR(c, r int) int          { return s.sumCR[c][r] }
func (s *Solution) SumCD(c, d int) int           { return s.sumCD[c][d] }
func (s *Solution) SumCDS(c, d, slot int) int    { return s.sumCDS[c][d][slot] }
func (s *Solution) SumRDS(r, d, slot int) int    { return s.sumRDS[r][d][slot] }
func (s *Solution) SumQDS(q, d, slot int) int    { return s.sumQDS[q][d][slot] }
func (s *Solution) SumTDS(t, d, slot int) int    { return s.sumTDS[t][d][slot] }
func (s *Solution) At(c, r, d, slot int) bool    { return s.tt[c][r][d][slot] }

// Assignment returns lecture l's current placement; IsAssigned reports
// whether it is a real placement.
func (s *Solution) Assignment(l int) Assignment { return s.assign[l] }

// CourseOf returns the course index of lecture l.
func (s *Solution) CourseOf(l int) int { return s.m.Lectures[l].CourseIndex }

// AssignedLectures returns the indices of every currently-assigned
// lecture, in lecture-index order. Used by the neighbourhood's random
// move sampler and by Clear.
func (s *Solution) AssignedLectures() []int {
	out := make([]int, 0, len(s.assign))
	for l, a := range s.assign {
		if a.IsAssigned() {
			out = append(out, l)
		}
	}
	return out
}

// NumAssigned returns how many lectures currently hold a placement.
func (s *Solution) NumAssigned() int {
	n := 0
	for _, a := range s.assign {
		if a.IsAssigned() {
			n++
		}
	}
	return n
}

// Place assigns lecture l to (r, d, slot). The caller is responsible for
// ensuring the target cell is free and l is currently unassigned — Place
// is the low-level primitive the finder and the neighbourhood's apply
// step build on; it does not itself check feasibility.
func (s *Solution) Place(l, r, d, slot int) {
	c := s.CourseOf(l)

	s.tt[c][r][d][slot] = true
	s.cAt[r][d][slot] = c
	s.lAt[r][d][slot] = l
	s.assign[l] = Assignment{Room: r, Day: d, Slot: slot}

	s.sumCR[c][r]++
	s.sumCD[c][d]++
	s.sumCDS[c][d][slot]++
	s.sumRDS[r][d][slot]++
	for _, q := range s.m.CurriculaOfCourse(c) {
		s.sumQDS[q][d][slot]++
	}
	s.sumTDS[s.m.TeacherIndex(c)][d][slot]++
}

// Unplace removes lecture l from its current placement and returns the
// vacated (room, day, slot). Panics if l was not assigned — callers must
// check Assignment(l).IsAssigned() first, since this is a hot-path
// primitive with no room for a slow error-return path.
func (s *Solution) Unplace(l int) (r, d, slot int) {
	a := s.assign[l]
	c := s.CourseOf(l)
	r, d, slot = a.Room, a.Day, a.Slot

	s.tt[c][r][d][slot] = false
	s.cAt[r][d][slot] = Unassigned
	s.lAt[r][d][slot] = Unassigned
	s.assign[l] = unassignedAssignment

	s.sumCR[c][r]--
	s.sumCD[c][d]--
	s.sumCDS[c][d][slot]--
	s.sumRDS[r][d][slot]--
	for _, q := range s.m.CurriculaOfCourse(c) {
		s.sumQDS[q][d][slot]--
	}
	s.sumTDS[s.m.TeacherIndex(c)][d][slot]--
	return r, d, slot
}

// Clear unplaces every currently-assigned lecture, resetting the
// solution to empty in place. Used by the finder between failed
// construction attempts and by the driver before a fresh multistart
// generation.
func (s *Solution) Clear() {
	for _, l := range s.AssignedLectures() {
		s.Unplace(l)
	}
}

// Copy returns an independent deep snapshot of the solution, used by the
// driver for the best-solution slot and by methods that need to restore
// a previous state.
func (s *Solution) Copy() *Solution {
	out := New(s.m)
	copy4(out.tt, s.tt)
	copyIntCube(out.cAt, s.cAt)
	copyIntCube(out.lAt, s.lAt)
	copyIntMatrix(out.sumCR, s.sumCR)
	copyIntMatrix(out.sumCD, s.sumCD)
	copyIntCube(out.sumCDS, s.sumCDS)
	copyIntCube(out.sumRDS, s.sumRDS)
	copyIntCube(out.sumQDS, s.sumQDS)
	copyIntCube(out.sumTDS, s.sumTDS)
	copy(out.assign, s.assign)
	return out
}

// CopyFrom overwrites the receiver in place with other's state, reusing
// the receiver's already-allocated buffers. Used by the driver to
// restore best-into-current without allocating a fresh Solution.
func (s *Solution) CopyFrom(other *Solution) {
	copy4(s.tt, other.tt)
	copyIntCube(s.cAt, other.cAt)
	copyIntCube(s.lAt, other.lAt)
	copyIntMatrix(s.sumCR, other.sumCR)
	copyIntMatrix(s.sumCD, other.sumCD)
	copyIntCube(s.sumCDS, other.sumCDS)
	copyIntCube(s.sumRDS, other.sumRDS)
	copyIntCube(s.sumQDS, other.sumQDS)
	copyIntCube(s.sumTDS, other.sumTDS)
	copy(s.assign, other.assign)
}

func copy4(dst, src [][][][]bool) {
	for i := range src {
		for j := range src[i] {
			for k := range src[i][j] {
				copy(dst[i][j][k], src[i][j][k])
			}
		}
	}
}

func copyIntCube(dst, src [][][]int) {
	for i := range src {
		for j := range src[i] {
			copy(dst[i][j], src[i][j])
		}
	}
}

func copyIntMatrix(dst, src [][]int) {
	for i := range src {
		copy(dst[i], src[i])
	}
}
