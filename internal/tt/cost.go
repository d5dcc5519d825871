package tt

// Soft constraint weights (spec §3.3, fixed — not configurable).
const (
	WeightRoomCapacity          = 1
	WeightMinWorkingDays        = 5
	WeightCurriculumCompactness = 2
	WeightRoomStability         = 1
)

// --- Hard constraints ---

// ViolationsLectures is H1: every lecture of every course must be
// scheduled, at distinct periods. Counts both the shortfall against
// NumLectures and any (course, day, slot) cell double-booked across
// rooms.
func (s *Solution) ViolationsLectures() int {
	v := 0
	d := s.m.Dims()
	for c, course := range s.m.Courses {
		scheduled := 0
		for day := 0; day < d.D; day++ {
			for slot := 0; slot < d.S; slot++ {
				scheduled += s.sumCDS[c][day][slot]
			}
		}
		if delta := course.NumLectures - scheduled; delta > 0 {
			v += delta
		}
	}
	for c := 0; c < d.C; c++ {
		for day := 0; day < d.D; day++ {
			for slot := 0; slot < d.S; slot++ {
				if s.sumCDS[c][day][slot] > 1 {
					v++
				}
			}
		}
	}
	return v
}

// ViolationsRoomOccupancy is H2: at most one lecture per room per period.
func (s *Solution) ViolationsRoomOccupancy() int {
	v := 0
	d := s.m.Dims()
	for r := 0; r < d.R; r++ {
		for day := 0; day < d.D; day++ {
			for slot := 0; slot < d.S; slot++ {
				if s.sumRDS[r][day][slot] > 1 {
					v++
				}
			}
		}
	}
	return v
}

// ViolationsConflicts is H3: curriculum-sharing and same-teacher courses
// cannot overlap in the same period.
func (s *Solution) ViolationsConflicts() int {
	v := 0
	d := s.m.Dims()
	for q := 0; q < d.Q; q++ {
		for day := 0; day < d.D; day++ {
			for slot := 0; slot < d.S; slot++ {
				if s.sumQDS[q][day][slot] > 1 {
					v++
				}
			}
		}
	}
	for t := 0; t < d.T; t++ {
		for day := 0; day < d.D; day++ {
			for slot := 0; slot < d.S; slot++ {
				if s.sumTDS[t][day][slot] > 1 {
					v++
				}
			}
		}
	}
	return v
}

// ViolationsAvailability is H4: a course cannot be scheduled at a period
// listed as unavailable for that course. Counts one violation per
// unavailable (course, day, slot) cell that holds a lecture.
func (s *Solution) ViolationsAvailability() int {
	v := 0
	d := s.m.Dims()
	for c := 0; c < d.C; c++ {
		for day := 0; day < d.D; day++ {
			for slot := 0; slot < d.S; slot++ {
				if !s.m.Available(c, day, slot) && s.sumCDS[c][day][slot] > 0 {
					v++
				}
			}
		}
	}
	return v
}

// TotalViolations sums all four hard-constraint violation counts.
func (s *Solution) TotalViolations() int {
	return s.ViolationsLectures() + s.ViolationsRoomOccupancy() + s.ViolationsConflicts() + s.ViolationsAvailability()
}

// SatisfiesHard reports whether the solution is feasible, i.e. every
// hard constraint has zero violations.
func (s *Solution) SatisfiesHard() bool {
	return s.ViolationsLectures() == 0 &&
		s.ViolationsRoomOccupancy() == 0 &&
		s.ViolationsConflicts() == 0 &&
		s.ViolationsAvailability() == 0
}

// --- Soft constraints ---

// CostRoomCapacity is S1: each student above a room's capacity costs
// WeightRoomCapacity.
func (s *Solution) CostRoomCapacity() int {
	penalty := 0
	for l, a := range s.assign {
		if !a.IsAssigned() {
			continue
		}
		c := s.CourseOf(l)
		if over := s.m.Courses[c].NumStudents - s.m.Rooms[a.Room].Capacity; over > 0 {
			penalty += over
		}
	}
	return penalty * WeightRoomCapacity
}

// CostMinWorkingDays is S2: each day short of a course's minimum spread
// costs WeightMinWorkingDays.
func (s *Solution) CostMinWorkingDays() int {
	penalty := 0
	d := s.m.Dims()
	for c, course := range s.m.Courses {
		days := 0
		for day := 0; day < d.D; day++ {
			if s.sumCD[c][day] > 0 {
				days++
			}
		}
		if delta := course.MinWorkingDays - days; delta > 0 {
			penalty += delta
		}
	}
	return penalty * WeightMinWorkingDays
}

// CostCurriculumCompactness is S3: a curriculum lecture with no other
// lecture of that curriculum in the adjacent slot, same day, costs
// WeightCurriculumCompactness.
func (s *Solution) CostCurriculumCompactness() int {
	penalty := 0
	d := s.m.Dims()
	for q := 0; q < d.Q; q++ {
		for day := 0; day < d.D; day++ {
			for slot := 0; slot < d.S; slot++ {
				cur := s.sumQDS[q][day][slot]
				if cur == 0 {
					continue
				}
				prev := slot > 0 && s.sumQDS[q][day][slot-1] > 0
				next := slot < d.S-1 && s.sumQDS[q][day][slot+1] > 0
				if !prev && !next {
					penalty += cur
				}
			}
		}
	}
	return penalty * WeightCurriculumCompactness
}

// CostRoomStability is S4: every room used for a course's lectures
// beyond the first costs WeightRoomStability.
func (s *Solution) CostRoomStability() int {
	penalty := 0
	d := s.m.Dims()
	for c := 0; c < d.C; c++ {
		rooms := 0
		for r := 0; r < d.R; r++ {
			if s.sumCR[c][r] > 0 {
				rooms++
			}
		}
		if delta := rooms - 1; delta > 0 {
			penalty += delta
		}
	}
	return penalty * WeightRoomStability
}

// Cost is the total soft-constraint penalty. Feasibility is orthogonal:
// Cost is defined (and used by the heuristics) even on an infeasible
// solution.
func (s *Solution) Cost() int {
	return s.CostRoomCapacity() + s.CostMinWorkingDays() + s.CostCurriculumCompactness() + s.CostRoomStability()
}
