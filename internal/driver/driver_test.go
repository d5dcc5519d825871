package driver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itc2007-cct/internal/finder"
	"itc2007-cct/internal/heuristic"
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

func lsMethod() Method {
	cfg := heuristic.LocalSearchConfig{Steepest: true}
	return Method{
		Name: "LS",
		Run: func(ctx context.Context, mc *heuristic.MethodContext, stream *rng.Stream) {
			heuristic.LocalSearch(ctx, mc, cfg)
		},
	}
}

func TestRunRequiresAtLeastOneMethod(t *testing.T) {
	m := buildFixture(t)
	template := tt.New(m)
	_, err := Run(context.Background(), template, Config{}, rng.New(1))
	assert.Error(t, err)
}

func TestRunProducesFeasibleBestSolution(t *testing.T) {
	m := buildFixture(t)
	template := tt.New(m)

	cfg := Config{
		Methods:                []Method{lsMethod()},
		MaxCycles:              2,
		RestoreBestAfterCycles: 10,
		FinderConfig:           finder.DefaultConfig(),
	}

	result, err := Run(context.Background(), template, cfg, rng.New(123))
	require.NoError(t, err)
	require.NotNil(t, result.Best)

	assert.True(t, result.Best.SatisfiesHard())
	assert.Equal(t, m.Dims().L, result.Best.NumAssigned())
	assert.GreaterOrEqual(t, result.Stats.CycleCount, 1)
}

func TestRunRespectsTimeBudget(t *testing.T) {
	m := buildFixture(t)
	template := tt.New(m)

	cfg := Config{
		Methods:      []Method{lsMethod()},
		MaxTime:      200 * time.Millisecond,
		FinderConfig: finder.DefaultConfig(),
	}

	result, err := Run(context.Background(), template, cfg, rng.New(5))
	require.NoError(t, err)
	require.NotNil(t, result.Best)
	assert.True(t, result.Best.SatisfiesHard())
}
