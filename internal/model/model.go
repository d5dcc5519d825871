// Package model holds the immutable problem instance and every derived
// lookup table the solver's core needs for O(1) queries (spec §3.1,
// §4.1). A Model is built once by the instance parser (internal/itcio)
// and never mutated again.
package model

import (
	"itc2007-cct/internal/xerrors"
)

// Dimensions groups the shorthand dimension counts used throughout the
// core (C, R, D, S, Q, T, L, P = D*S).
type Dimensions struct {
	C, R, D, S, Q, T, L int
}

// Model is the immutable problem instance plus every derived table
// listed in spec §3.1. All fields are read-only after Build returns.
type Model struct {
	Name        string
	Days        int
	SlotsPerDay int

	Courses        []Course
	Rooms          []Room
	Curricula      []Curriculum
	Teachers       []Teacher
	Lectures       []Lecture
	Unavailability []Unavailability

	courseByID     map[string]int
	roomByID       map[string]int
	curriculumByID map[string]int
	teacherByID    map[string]int

	belongs   [][]bool // [q][c]
	teaches   [][]bool // [c][t]
	available [][][]bool // [c][d][s]

	curriculaOfCourse   [][]int // [c] -> []q
	coursesOfCurriculum [][]int // [q] -> []c
	coursesOfTeacher    [][]int // [t] -> []c

	shareCurriculum [][][]bool // [c1][c2][q]
	sameTeacher     [][]bool   // [c1][c2]
}

// Dims returns the shorthand dimension counts.
func (m *Model) Dims() Dimensions {
	return Dimensions{
		C: len(m.Courses), R: len(m.Rooms), D: m.Days, S: m.SlotsPerDay,
		Q: len(m.Curricula), T: len(m.Teachers), L: len(m.Lectures),
	}
}

// Periods returns P = D*S, the number of periods in a week.
func (m *Model) Periods() int { return m.Days * m.SlotsPerDay }

// --- Raw, pre-validation input, as produced by the instance parser ---

type RawCourse struct {
	ID                              string
	TeacherID                       string
	NumLectures, MinWorkingDays     int
	NumStudents                     int
	Line                            int
}

type RawRoom struct {
	ID       string
	Capacity int
	Line     int
}

type RawCurriculum struct {
	ID        string
	CourseIDs []string
	Line      int
}

type RawUnavailability struct {
	CourseID string
	Day, Slot int
	Line     int
}

// Build validates the raw parsed entities and constructs a finalized
// Model with all derived tables populated. source is the instance file
// name, used for error context.
func Build(source, name string, days, slotsPerDay int, rawCourses []RawCourse, rawRooms []RawRoom, rawCurricula []RawCurriculum, rawUnavail []RawUnavailability) (*Model, error) {
	m := &Model{Name: name, Days: days, SlotsPerDay: slotsPerDay}

	m.courseByID = make(map[string]int, len(rawCourses))
	teacherIndexByID := make(map[string]int)

	for i, rc := range rawCourses {
		if _, dup := m.courseByID[rc.ID]; dup {
			return nil, xerrors.NewInputError(source, rc.Line, "duplicate course id %q", rc.ID)
		}
		if rc.NumLectures < 1 {
			return nil, xerrors.NewInputError(source, rc.Line, "course %q: n_lectures must be >= 1", rc.ID)
		}
		if rc.MinWorkingDays < 1 {
			return nil, xerrors.NewInputError(source, rc.Line, "course %q: min_working_days must be >= 1", rc.ID)
		}
		if rc.NumStudents < 0 {
			return nil, xerrors.NewInputError(source, rc.Line, "course %q: n_students must be >= 0", rc.ID)
		}
		teacherIdx, ok := teacherIndexByID[rc.TeacherID]
		if !ok {
			teacherIdx = len(m.Teachers)
			teacherIndexByID[rc.TeacherID] = teacherIdx
			m.Teachers = append(m.Teachers, Teacher{Index: teacherIdx, ID: rc.TeacherID})
		}
		m.courseByID[rc.ID] = i
		m.Courses = append(m.Courses, Course{
			Index:          i,
			ID:             rc.ID,
			TeacherID:      rc.TeacherID,
			TeacherIndex:   teacherIdx,
			NumLectures:    rc.NumLectures,
			MinWorkingDays: rc.MinWorkingDays,
			NumStudents:    rc.NumStudents,
		})
	}
	m.teacherByID = teacherIndexByID

	m.roomByID = make(map[string]int, len(rawRooms))
	for i, rr := range rawRooms {
		if _, dup := m.roomByID[rr.ID]; dup {
			return nil, xerrors.NewInputError(source, rr.Line, "duplicate room id %q", rr.ID)
		}
		if rr.Capacity < 0 {
			return nil, xerrors.NewInputError(source, rr.Line, "room %q: capacity must be >= 0", rr.ID)
		}
		m.roomByID[rr.ID] = i
		m.Rooms = append(m.Rooms, Room{Index: i, ID: rr.ID, Capacity: rr.Capacity})
	}

	m.curriculumByID = make(map[string]int, len(rawCurricula))
	for i, rq := range rawCurricula {
		if _, dup := m.curriculumByID[rq.ID]; dup {
			return nil, xerrors.NewInputError(source, rq.Line, "duplicate curriculum id %q", rq.ID)
		}
		indices := make([]int, 0, len(rq.CourseIDs))
		for _, cid := range rq.CourseIDs {
			ci, ok := m.courseByID[cid]
			if !ok {
				return nil, xerrors.NewInputError(source, rq.Line, "curriculum %q references unknown course %q", rq.ID, cid)
			}
			indices = append(indices, ci)
		}
		m.curriculumByID[rq.ID] = i
		m.Curricula = append(m.Curricula, Curriculum{
			Index: i, ID: rq.ID, CourseIDs: append([]string(nil), rq.CourseIDs...), CourseIndices: indices,
		})
	}

	for _, ru := range rawUnavail {
		ci, ok := m.courseByID[ru.CourseID]
		if !ok {
			return nil, xerrors.NewInputError(source, ru.Line, "unavailability references unknown course %q", ru.CourseID)
		}
		if ru.Day < 0 || ru.Day >= days {
			return nil, xerrors.NewInputError(source, ru.Line, "unavailability day %d out of range [0,%d)", ru.Day, days)
		}
		if ru.Slot < 0 || ru.Slot >= slotsPerDay {
			return nil, xerrors.NewInputError(source, ru.Line, "unavailability slot %d out of range [0,%d)", ru.Slot, slotsPerDay)
		}
		m.Unavailability = append(m.Unavailability, Unavailability{CourseID: ru.CourseID, CourseIndex: ci, Day: ru.Day, Slot: ru.Slot})
	}

	m.finalize()
	return m, nil
}

// finalize computes every derived table from the validated raw entities.
// Mirrors original_source's model_finalize: called once, after which the
// Model never changes again.
func (m *Model) finalize() {
	d := m.Dims()
	C, R, D, S, Q, T := d.C, d.R, d.D, d.S, d.Q, d.T
	_ = R

	// Lectures: one per lecture of each course, in course order.
	for c, course := range m.Courses {
		for i := 0; i < course.NumLectures; i++ {
			m.Lectures = append(m.Lectures, Lecture{Index: len(m.Lectures), CourseIndex: c})
		}
	}

	// available[c][d][s], default true, false where unavailable.
	m.available = make([][][]bool, C)
	for c := range m.available {
		m.available[c] = make([][]bool, D)
		for dIdx := range m.available[c] {
			m.available[c][dIdx] = make([]bool, S)
			for s := range m.available[c][dIdx] {
				m.available[c][dIdx][s] = true
			}
		}
	}
	for _, u := range m.Unavailability {
		m.available[u.CourseIndex][u.Day][u.Slot] = false
	}

	// belongs[q][c]
	m.belongs = make([][]bool, Q)
	for q := range m.belongs {
		m.belongs[q] = make([]bool, C)
		for _, ci := range m.Curricula[q].CourseIndices {
			m.belongs[q][ci] = true
		}
	}

	// teaches[c][t]
	m.teaches = make([][]bool, C)
	for c := range m.teaches {
		m.teaches[c] = make([]bool, T)
		m.teaches[c][m.Courses[c].TeacherIndex] = true
	}

	// curriculaOfCourse / coursesOfCurriculum
	m.curriculaOfCourse = make([][]int, C)
	m.coursesOfCurriculum = make([][]int, Q)
	for q := range m.Curricula {
		for _, ci := range m.Curricula[q].CourseIndices {
			m.curriculaOfCourse[ci] = append(m.curriculaOfCourse[ci], q)
			m.coursesOfCurriculum[q] = append(m.coursesOfCurriculum[q], ci)
		}
	}

	// coursesOfTeacher
	m.coursesOfTeacher = make([][]int, T)
	for c, course := range m.Courses {
		m.coursesOfTeacher[course.TeacherIndex] = append(m.coursesOfTeacher[course.TeacherIndex], c)
	}

	// shareCurriculum[c1][c2][q]
	m.shareCurriculum = make([][][]bool, C)
	for c1 := range m.shareCurriculum {
		m.shareCurriculum[c1] = make([][]bool, C)
		for c2 := range m.shareCurriculum[c1] {
			m.shareCurriculum[c1][c2] = make([]bool, Q)
		}
	}
	for q := range m.Curricula {
		members := m.coursesOfCurriculum[q]
		for _, c1 := range members {
			for _, c2 := range members {
				m.shareCurriculum[c1][c2][q] = true
			}
		}
	}

	// sameTeacher[c1][c2]
	m.sameTeacher = make([][]bool, C)
	for c1 := range m.sameTeacher {
		m.sameTeacher[c1] = make([]bool, C)
	}
	for _, courses := range m.coursesOfTeacher {
		for _, c1 := range courses {
			for _, c2 := range courses {
				m.sameTeacher[c1][c2] = true
			}
		}
	}
}
