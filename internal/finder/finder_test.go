package finder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itc2007-cct/internal/model"
	"itc2007-cct/internal/rng"
	"itc2007-cct/internal/tt"
)

func buildFixture(t *testing.T) *model.Model {
	t.Helper()
	courses := []model.RawCourse{
		{ID: "c1", TeacherID: "t1", NumLectures: 2, MinWorkingDays: 1, NumStudents: 20, Line: 1},
		{ID: "c2", TeacherID: "t1", NumLectures: 1, MinWorkingDays: 1, NumStudents: 15, Line: 2},
		{ID: "c3", TeacherID: "t2", NumLectures: 2, MinWorkingDays: 2, NumStudents: 30, Line: 3},
	}
	rooms := []model.RawRoom{
		{ID: "r1", Capacity: 25, Line: 1},
		{ID: "r2", Capacity: 40, Line: 2},
	}
	curricula := []model.RawCurriculum{
		{ID: "q1", CourseIDs: []string{"c1", "c2"}, Line: 1},
	}
	unavail := []model.RawUnavailability{
		{CourseID: "c3", Day: 0, Slot: 0, Line: 1},
	}
	m, err := model.Build("fixture.txt", "Fixture", 2, 3, courses, rooms, curricula, unavail)
	require.NoError(t, err)
	return m
}

func TestFindProducesFeasibleSolution(t *testing.T) {
	m := buildFixture(t)
	sol := tt.New(m)
	stream := rng.New(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Find(ctx, sol, DefaultConfig(), stream)
	require.NoError(t, err)

	assert.True(t, sol.SatisfiesHard())
	assert.Equal(t, m.Dims().L, sol.NumAssigned())
	require.NoError(t, sol.AssertConsistency())
}

func TestFindIsDeterministicWithZeroRandomness(t *testing.T) {
	m := buildFixture(t)
	cfg := Config{RankingRandomness: 0}

	sol1 := tt.New(m)
	require.NoError(t, Find(context.Background(), sol1, cfg, rng.New(5)))

	sol2 := tt.New(m)
	require.NoError(t, Find(context.Background(), sol2, cfg, rng.New(5)))

	for l := range m.Lectures {
		assert.Equal(t, sol1.Assignment(l), sol2.Assignment(l))
	}
}

func TestFindRespectsCancelledContext(t *testing.T) {
	m := buildFixture(t)
	sol := tt.New(m)
	stream := rng.New(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Find(ctx, sol, DefaultConfig(), stream)
	assert.Error(t, err)
}
