package model

// CourseByID resolves a course id to its index. ok is false if the id is
// unknown.
func (m *Model) CourseByID(id string) (int, bool) {
	i, ok := m.courseByID[id]
	return i, ok
}

// RoomByID resolves a room id to its index.
func (m *Model) RoomByID(id string) (int, bool) {
	i, ok := m.roomByID[id]
	return i, ok
}

// CurriculumByID resolves a curriculum id to its index.
func (m *Model) CurriculumByID(id string) (int, bool) {
	i, ok := m.curriculumByID[id]
	return i, ok
}

// TeacherByID resolves a teacher id to its index.
func (m *Model) TeacherByID(id string) (int, bool) {
	i, ok := m.teacherByID[id]
	return i, ok
}

// BelongsToCurriculum reports whether course c is a member of curriculum q.
func (m *Model) BelongsToCurriculum(q, c int) bool { return m.belongs[q][c] }

// TaughtByTeacher reports whether course c is taught by teacher t.
func (m *Model) TaughtByTeacher(c, t int) bool { return m.teaches[c][t] }

// Available reports whether course c may be scheduled at period (d, s).
func (m *Model) Available(c, d, s int) bool { return m.available[c][d][s] }

// CurriculaOfCourse returns the curricula course c belongs to.
func (m *Model) CurriculaOfCourse(c int) []int { return m.curriculaOfCourse[c] }

// CoursesOfCurriculum returns the member courses of curriculum q.
func (m *Model) CoursesOfCurriculum(q int) []int { return m.coursesOfCurriculum[q] }

// CoursesOfTeacher returns the courses taught by teacher t.
func (m *Model) CoursesOfTeacher(t int) []int { return m.coursesOfTeacher[t] }

// ShareCurriculum reports whether courses c1 and c2 are both members of
// curriculum q (always true when c1 == c2 and c1 belongs to q).
func (m *Model) ShareCurriculum(c1, c2, q int) bool { return m.shareCurriculum[c1][c2][q] }

// SameTeacher reports whether courses c1 and c2 are taught by the same
// teacher (always true when c1 == c2).
func (m *Model) SameTeacher(c1, c2 int) bool { return m.sameTeacher[c1][c2] }

// TeacherIndex returns the teacher index for course c.
func (m *Model) TeacherIndex(c int) int { return m.Courses[c].TeacherIndex }
