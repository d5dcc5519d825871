package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() ([]RawCourse, []RawRoom, []RawCurriculum, []RawUnavailability) {
	courses := []RawCourse{
		{ID: "c1", TeacherID: "t1", NumLectures: 2, MinWorkingDays: 1, NumStudents: 20, Line: 1},
		{ID: "c2", TeacherID: "t1", NumLectures: 1, MinWorkingDays: 1, NumStudents: 15, Line: 2},
		{ID: "c3", TeacherID: "t2", NumLectures: 2, MinWorkingDays: 2, NumStudents: 30, Line: 3},
	}
	rooms := []RawRoom{
		{ID: "r1", Capacity: 25, Line: 1},
		{ID: "r2", Capacity: 40, Line: 2},
	}
	curricula := []RawCurriculum{
		{ID: "q1", CourseIDs: []string{"c1", "c2"}, Line: 1},
	}
	unavail := []RawUnavailability{
		{CourseID: "c3", Day: 0, Slot: 0, Line: 1},
	}
	return courses, rooms, curricula, unavail
}

func TestBuildValidInstance(t *testing.T) {
	courses, rooms, curricula, unavail := validRaw()
	m, err := Build("toy.txt", "Toy", 2, 3, courses, rooms, curricula, unavail)
	require.NoError(t, err)

	d := m.Dims()
	assert.Equal(t, Dimensions{C: 3, R: 2, D: 2, S: 3, Q: 1, T: 2, L: 5}, d)

	// Lectures are laid out contiguously per course, in course order.
	assert.Equal(t, 0, m.Lectures[0].CourseIndex)
	assert.Equal(t, 0, m.Lectures[1].CourseIndex)
	assert.Equal(t, 1, m.Lectures[2].CourseIndex)
	assert.Equal(t, 2, m.Lectures[3].CourseIndex)
	assert.Equal(t, 2, m.Lectures[4].CourseIndex)

	c1, ok := m.CourseByID("c1")
	require.True(t, ok)
	c2, _ := m.CourseByID("c2")
	c3, _ := m.CourseByID("c3")

	assert.True(t, m.SameTeacher(c1, c2))
	assert.False(t, m.SameTeacher(c1, c3))

	q1, ok := m.CurriculumByID("q1")
	require.True(t, ok)
	assert.True(t, m.BelongsToCurriculum(q1, c1))
	assert.True(t, m.BelongsToCurriculum(q1, c2))
	assert.False(t, m.BelongsToCurriculum(q1, c3))
	assert.True(t, m.ShareCurriculum(c1, c2, q1))

	assert.False(t, m.Available(c3, 0, 0))
	assert.True(t, m.Available(c3, 0, 1))
	assert.True(t, m.Available(c1, 0, 0))
}

func TestBuildRejectsDuplicateCourseID(t *testing.T) {
	courses, rooms, curricula, unavail := validRaw()
	courses = append(courses, RawCourse{ID: "c1", TeacherID: "t3", NumLectures: 1, MinWorkingDays: 1, Line: 4})
	_, err := Build("toy.txt", "Toy", 2, 3, courses, rooms, curricula, unavail)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate course id")
}

func TestBuildRejectsUnknownCurriculumCourse(t *testing.T) {
	courses, rooms, _, unavail := validRaw()
	curricula := []RawCurriculum{{ID: "q1", CourseIDs: []string{"cX"}, Line: 1}}
	_, err := Build("toy.txt", "Toy", 2, 3, courses, rooms, curricula, unavail)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown course")
}

func TestBuildRejectsUnavailabilityOutOfRange(t *testing.T) {
	courses, rooms, curricula, _ := validRaw()
	unavail := []RawUnavailability{{CourseID: "c1", Day: 9, Slot: 0, Line: 1}}
	_, err := Build("toy.txt", "Toy", 2, 3, courses, rooms, curricula, unavail)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestBuildRejectsInvalidCourseFields(t *testing.T) {
	courses, rooms, curricula, unavail := validRaw()
	courses[0].NumLectures = 0
	_, err := Build("toy.txt", "Toy", 2, 3, courses, rooms, curricula, unavail)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "n_lectures")
}
