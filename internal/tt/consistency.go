package tt

import "itc2007-cct/internal/xerrors"

// AssertConsistency recomputes every redundant table from tt alone and
// compares it against the incrementally-maintained state, returning an
// Internal Invariant Violation on first mismatch. It is O(C*R*D*S) and
// is meant for debug checks (spec §8.5), not the hot path: the solver
// itself never calls it; the package tests call it after mutations.
func (s *Solution) AssertConsistency() error {
	d := s.m.Dims()

	wantCAt := make([][][]int, d.R)
	wantLAt := make([][][]int, d.R)
	for r := 0; r < d.R; r++ {
		wantCAt[r] = make([][]int, d.D)
		wantLAt[r] = make([][]int, d.D)
		for day := 0; day < d.D; day++ {
			wantCAt[r][day] = make([]int, d.S)
			wantLAt[r][day] = make([]int, d.S)
			for slot := range wantCAt[r][day] {
				wantCAt[r][day][slot] = Unassigned
				wantLAt[r][day][slot] = Unassigned
			}
		}
	}
	wantSumCR := make([][]int, d.C)
	wantSumCD := make([][]int, d.C)
	wantSumCDS := make([][][]int, d.C)
	for c := 0; c < d.C; c++ {
		wantSumCR[c] = make([]int, d.R)
		wantSumCD[c] = make([]int, d.D)
		wantSumCDS[c] = make([][]int, d.D)
		for day := 0; day < d.D; day++ {
			wantSumCDS[c][day] = make([]int, d.S)
		}
	}
	wantSumRDS := make([][][]int, d.R)
	for r := 0; r < d.R; r++ {
		wantSumRDS[r] = make([][]int, d.D)
		for day := 0; day < d.D; day++ {
			wantSumRDS[r][day] = make([]int, d.S)
		}
	}
	wantSumQDS := make([][][]int, d.Q)
	for q := 0; q < d.Q; q++ {
		wantSumQDS[q] = make([][]int, d.D)
		for day := 0; day < d.D; day++ {
			wantSumQDS[q][day] = make([]int, d.S)
		}
	}
	wantSumTDS := make([][][]int, d.T)
	for t := 0; t < d.T; t++ {
		wantSumTDS[t] = make([][]int, d.D)
		for day := 0; day < d.D; day++ {
			wantSumTDS[t][day] = make([]int, d.S)
		}
	}

	for c := 0; c < d.C; c++ {
		for r := 0; r < d.R; r++ {
			for day := 0; day < d.D; day++ {
				for slot := 0; slot < d.S; slot++ {
					if !s.tt[c][r][day][slot] {
						continue
					}
					if wantCAt[r][day][slot] != Unassigned {
						return xerrors.NewInvariantViolation(
							"room occupancy collision rebuilt from tt at room=%d day=%d slot=%d", r, day, slot)
					}
					wantCAt[r][day][slot] = c
					wantSumCR[c][r]++
					wantSumCD[c][day]++
					wantSumCDS[c][day][slot]++
					wantSumRDS[r][day][slot]++
					for _, q := range s.m.CurriculaOfCourse(c) {
						wantSumQDS[q][day][slot]++
					}
					wantSumTDS[s.m.TeacherIndex(c)][day][slot]++
				}
			}
		}
	}

	for l, a := range s.assign {
		if !a.IsAssigned() {
			continue
		}
		c := s.CourseOf(l)
		if !s.tt[c][a.Room][a.Day][a.Slot] {
			return xerrors.NewInvariantViolation("lecture %d assigned at (%d,%d,%d) but tt cell is unset", l, a.Room, a.Day, a.Slot)
		}
		wantLAt[a.Room][a.Day][a.Slot] = l
	}

	eqCube := func(name string, got, want [][][]int) error {
		for i := range want {
			for j := range want[i] {
				for k := range want[i][j] {
					if got[i][j][k] != want[i][j][k] {
						return xerrors.NewInvariantViolation("%s mismatch at [%d][%d][%d]: have %d want %d", name, i, j, k, got[i][j][k], want[i][j][k])
					}
				}
			}
		}
		return nil
	}
	eqMatrix := func(name string, got, want [][]int) error {
		for i := range want {
			for j := range want[i] {
				if got[i][j] != want[i][j] {
					return xerrors.NewInvariantViolation("%s mismatch at [%d][%d]: have %d want %d", name, i, j, got[i][j], want[i][j])
				}
			}
		}
		return nil
	}

	if err := eqCube("cAt", s.cAt, wantCAt); err != nil {
		return err
	}
	if err := eqCube("lAt", s.lAt, wantLAt); err != nil {
		return err
	}
	if err := eqMatrix("sumCR", s.sumCR, wantSumCR); err != nil {
		return err
	}
	if err := eqMatrix("sumCD", s.sumCD, wantSumCD); err != nil {
		return err
	}
	if err := eqCube("sumCDS", s.sumCDS, wantSumCDS); err != nil {
		return err
	}
	if err := eqCube("sumRDS", s.sumRDS, wantSumRDS); err != nil {
		return err
	}
	if err := eqCube("sumQDS", s.sumQDS, wantSumQDS); err != nil {
		return err
	}
	if err := eqCube("sumTDS", s.sumTDS, wantSumTDS); err != nil {
		return err
	}
	return nil
}
