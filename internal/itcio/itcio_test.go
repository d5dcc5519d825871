package itcio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itc2007-cct/internal/xerrors"
)

const fixtureInstance = `Name: Fixture
Courses: 3
Rooms: 2
Days: 2
Periods_per_day: 3
Curricula: 1
Constraints: 1

COURSES:
c1 t1 2 1 20
c2 t1 1 1 15
c3 t2 2 2 30

ROOMS:
r1 25
r2 40

CURRICULA:
q1 2 c1 c2

UNAVAILABILITY_CONSTRAINTS:
c3 0 0

END.
`

func TestReadInstanceParsesFixture(t *testing.T) {
	m, err := ReadInstance("fixture.ctt", strings.NewReader(fixtureInstance))
	require.NoError(t, err)

	d := m.Dims()
	assert.Equal(t, 3, d.C)
	assert.Equal(t, 2, d.R)
	assert.Equal(t, 2, d.D)
	assert.Equal(t, 3, d.S)
	assert.Equal(t, 1, d.Q)
	assert.Equal(t, 5, d.L)

	c3, ok := m.CourseByID("c3")
	require.True(t, ok)
	assert.False(t, m.Available(c3, 0, 0))
	assert.True(t, m.Available(c3, 0, 1))
}

func TestReadInstanceRejectsHeaderCountMismatch(t *testing.T) {
	bad := strings.Replace(fixtureInstance, "Courses: 3", "Courses: 4", 1)
	_, err := ReadInstance("fixture.ctt", strings.NewReader(bad))
	require.Error(t, err)
	var cat xerrors.Categorized
	require.ErrorAs(t, err, &cat)
	assert.Equal(t, xerrors.CategoryInput, cat.Category())
}

func TestReadInstanceRejectsMalformedCourseLine(t *testing.T) {
	bad := strings.Replace(fixtureInstance, "c1 t1 2 1 20", "c1 t1 2 1", 1)
	_, err := ReadInstance("fixture.ctt", strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "course line wants 5 fields")
}

func TestSolutionRoundTrip(t *testing.T) {
	m, err := ReadInstance("fixture.ctt", strings.NewReader(fixtureInstance))
	require.NoError(t, err)

	const solText = `c1 r1 0 0
c1 r2 1 1
c2 r1 0 1
c3 r2 0 1
c3 r1 1 0
`
	sol, err := ReadSolution("fixture.sol", strings.NewReader(solText), m)
	require.NoError(t, err)
	assert.True(t, sol.SatisfiesHard())
	assert.Equal(t, m.Dims().L, sol.NumAssigned())

	var buf bytes.Buffer
	require.NoError(t, WriteSolution(&buf, m, sol))

	sol2, err := ReadSolution("roundtrip.sol", strings.NewReader(buf.String()), m)
	require.NoError(t, err)
	for l := range m.Lectures {
		assert.Equal(t, sol.Assignment(l), sol2.Assignment(l))
	}
}

func TestReadSolutionRejectsLectureCountMismatch(t *testing.T) {
	m, err := ReadInstance("fixture.ctt", strings.NewReader(fixtureInstance))
	require.NoError(t, err)

	// c1 needs 2 lectures; only one is given.
	const solText = `c1 r1 0 0
c2 r1 0 1
c3 r2 0 1
c3 r1 1 0
`
	_, err = ReadSolution("fixture.sol", strings.NewReader(solText), m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected")
}

func TestReadSolutionRejectsRoomCollision(t *testing.T) {
	m, err := ReadInstance("fixture.ctt", strings.NewReader(fixtureInstance))
	require.NoError(t, err)

	const solText = `c1 r1 0 0
c1 r1 0 0
c2 r1 0 1
c3 r2 0 1
c3 r1 1 0
`
	_, err = ReadSolution("fixture.sol", strings.NewReader(solText), m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already occupied")
}

func TestReadSolutionRejectsUnknownCourse(t *testing.T) {
	m, err := ReadInstance("fixture.ctt", strings.NewReader(fixtureInstance))
	require.NoError(t, err)

	_, err = ReadSolution("fixture.sol", strings.NewReader("cX r1 0 0\n"), m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown course")
}
