// Package finder builds an initial feasible Solution via randomized
// greedy construction: hardest-to-place lectures first, each dropped
// into the first room/period that keeps every hard constraint satisfied
// (spec §4.3, grounded on feasible_solution_finder.c).
package finder

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"itc2007-cct/internal/model"
	"itc2007-cct/internal/obs"
	"itc2007-cct/internal/rng"
	"itc2007-cct/internal/tt"
	"itc2007-cct/internal/xerrors"
)

// Config tunes the finder. RankingRandomness is the standard deviation
// of the per-attempt multiplicative noise applied to each lecture's
// difficulty score before sorting; 0 makes placement order deterministic.
type Config struct {
	RankingRandomness float64
}

// DefaultConfig mirrors the reference finder's default.
func DefaultConfig() Config {
	return Config{RankingRandomness: 0.33}
}

// courseDifficulty scores how constrained a course is to place: the
// number of curricula it belongs to, the number of courses its teacher
// also teaches, and the number of periods it's unavailable for, scaled
// by its lecture count.
func courseDifficulty(m *model.Model) []int {
	d := m.Dims()
	difficulty := make([]int, d.C)
	for c, course := range m.Courses {
		nCurricula := len(m.CurriculaOfCourse(c))
		nTeacherCourses := len(m.CoursesOfTeacher(course.TeacherIndex))
		nUnavailable := 0
		for day := 0; day < d.D; day++ {
			for slot := 0; slot < d.S; slot++ {
				if !m.Available(c, day, slot) {
					nUnavailable++
				}
			}
		}
		factor := course.NumLectures
		if factor < 1 {
			factor = 1
		}
		difficulty[c] = (nCurricula + nTeacherCourses + nUnavailable) * factor
	}
	return difficulty
}

type scoredLecture struct {
	lecture    int
	difficulty float64
}

// tryFind makes one randomized greedy construction attempt against a
// freshly-cleared sol. It returns the number of lectures it managed to
// place before getting stuck (== L on success).
func tryFind(sol *tt.Solution, cfg Config, stream *rng.Stream) int {
	m := sol.Model()
	d := m.Dims()

	difficulty := courseDifficulty(m)

	scored := make([]scoredLecture, d.L)
	for l, lecture := range m.Lectures {
		r := stream.Normal(1, cfg.RankingRandomness)
		scored[l] = scoredLecture{lecture: l, difficulty: float64(difficulty[lecture.CourseIndex]) * r}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].difficulty > scored[j].difficulty
	})

	placed := 0
	for _, sl := range scored {
		l := sl.lecture
		c := m.Lectures[l].CourseIndex
		t := m.TeacherIndex(c)
		curricula := m.CurriculaOfCourse(c)

		assigned := false
		for r := 0; r < d.R && !assigned; r++ {
			for day := 0; day < d.D && !assigned; day++ {
				for slot := 0; slot < d.S; slot++ {
					if sol.SumRDS(r, day, slot) > 0 {
						continue
					}
					conflict := false
					for _, q := range curricula {
						if sol.SumQDS(q, day, slot) > 0 {
							conflict = true
							break
						}
					}
					if conflict {
						continue
					}
					if sol.SumTDS(t, day, slot) > 0 {
						continue
					}
					if !m.Available(c, day, slot) {
						continue
					}

					sol.Place(l, r, day, slot)
					assigned = true
					placed++
					break
				}
			}
		}
		if !assigned {
			break
		}
	}
	return placed
}

// Find repeatedly attempts construction (clearing sol between failed
// attempts) until one succeeds or ctx is done. On success sol holds a
// fully feasible solution. On timeout it returns an Infeasible-category
// error carrying the number of attempts made.
func Find(ctx context.Context, sol *tt.Solution, cfg Config, stream *rng.Stream) error {
	m := sol.Model()
	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return xerrors.NewInfeasibleError(attempts)
		default:
		}

		attempts++
		placed := tryFind(sol, cfg, stream)
		if placed == m.Dims().L {
			obs.L().Debug("feasible solution found", zap.Int("attempts", attempts), zap.Int("lectures", placed))
			return nil
		}
		sol.Clear()
	}
}
