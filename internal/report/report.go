// Package report formats a Solution's quality breakdown as the
// plain-text summary the CLI prints after solving (SPEC_FULL §4.6
// "cost-breakdown report", the non-graphical half of the reference
// renderer's responsibility — PNG rendering itself stays out of scope).
package report

import (
	"fmt"
	"io"

	"itc2007-cct/internal/tt"
)

// Summary writes a human-readable breakdown of sol's hard-constraint
// violations and soft-constraint costs to w.
func Summary(w io.Writer, sol *tt.Solution) error {
	b := sol.Report()

	rows := []struct {
		label string
		value int
	}{
		{"Lectures", b.LecturesViolations},
		{"RoomOccupancy", b.RoomOccupancyViolation},
		{"Conflicts", b.ConflictsViolations},
		{"Availability", b.AvailabilityViolations},
	}

	if _, err := fmt.Fprintf(w, "Hard constraint violations (total = %d):\n", b.TotalViolations()); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "  %-16s %d\n", row.label, row.value); err != nil {
			return err
		}
	}

	costRows := []struct {
		label string
		value int
	}{
		{"RoomCapacity", b.RoomCapacityCost},
		{"MinWorkingDays", b.MinWorkingDaysCost},
		{"CurriculumCompactness", b.CompactnessCost},
		{"RoomStability", b.RoomStabilityCost},
	}

	if _, err := fmt.Fprintf(w, "Soft constraint cost (total = %d):\n", b.TotalCost()); err != nil {
		return err
	}
	for _, row := range costRows {
		if _, err := fmt.Fprintf(w, "  %-22s %d\n", row.label, row.value); err != nil {
			return err
		}
	}

	return nil
}
