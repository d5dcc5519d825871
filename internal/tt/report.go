package tt

// Breakdown is the itemized violation/cost report printed after `solve`
// and by the `report` subcommand (SPEC_FULL §4.6), grounded on
// the original solver's verbose quality dump.
type Breakdown struct {
	LecturesViolations     int
	RoomOccupancyViolation int
	ConflictsViolations    int
	AvailabilityViolations int

	RoomCapacityCost    int
	MinWorkingDaysCost  int
	CompactnessCost     int
	RoomStabilityCost   int
}

// TotalViolations sums the four hard-constraint counts.
func (b Breakdown) TotalViolations() int {
	return b.LecturesViolations + b.RoomOccupancyViolation + b.ConflictsViolations + b.AvailabilityViolations
}

// TotalCost sums the four soft-constraint costs.
func (b Breakdown) TotalCost() int {
	return b.RoomCapacityCost + b.MinWorkingDaysCost + b.CompactnessCost + b.RoomStabilityCost
}

// Report computes a full itemized Breakdown in one pass of calls. It is
// meant for reporting, not the hot path — the heuristics use the delta
// predicates in internal/neighbourhood instead of recomputing this.
func (s *Solution) Report() Breakdown {
	return Breakdown{
		LecturesViolations:     s.ViolationsLectures(),
		RoomOccupancyViolation: s.ViolationsRoomOccupancy(),
		ConflictsViolations:    s.ViolationsConflicts(),
		AvailabilityViolations: s.ViolationsAvailability(),
		RoomCapacityCost:       s.CostRoomCapacity(),
		MinWorkingDaysCost:     s.CostMinWorkingDays(),
		CompactnessCost:        s.CostCurriculumCompactness(),
		RoomStabilityCost:      s.CostRoomStability(),
	}
}
