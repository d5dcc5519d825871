package itcio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"itc2007-cct/internal/model"
	"itc2007-cct/internal/tt"
	"itc2007-cct/internal/xerrors"
)

// ReadSolution parses a solution file (spec §6.2: one line per lecture,
// "<course_id> <room_id> <day> <slot>") against m and builds a
// *tt.Solution. Lectures are allocated to each course in first-seen
// order within that course's group of lines, matching the finder's own
// output convention.
//
// Before returning, the result is validated against m (SPEC_FULL §4.6
// "solution file round-trip validation"): every course must receive
// exactly as many lines as its NumLectures, and every (room, day,
// slot) target must be in range. Mismatches are Input Errors.
func ReadSolution(source string, r io.Reader, m *model.Model) (*tt.Solution, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	sol := tt.New(m)
	nextLectureOfCourse := make(map[int]int, len(m.Courses))

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 4 {
			return nil, xerrors.NewInputError(source, line, "solution line wants 4 fields, got %d", len(fields))
		}

		courseID, roomID := fields[0], fields[1]
		day, err1 := strconv.Atoi(fields[2])
		slot, err2 := strconv.Atoi(fields[3])
		if err1 != nil || err2 != nil {
			return nil, xerrors.NewInputError(source, line, "solution line %q: non-numeric day/slot", text)
		}

		c, ok := m.CourseByID(courseID)
		if !ok {
			return nil, xerrors.NewInputError(source, line, "solution references unknown course %q", courseID)
		}
		rm, ok := m.RoomByID(roomID)
		if !ok {
			return nil, xerrors.NewInputError(source, line, "solution references unknown room %q", roomID)
		}
		d := m.Dims()
		if day < 0 || day >= d.D {
			return nil, xerrors.NewInputError(source, line, "solution day %d out of range [0,%d)", day, d.D)
		}
		if slot < 0 || slot >= d.S {
			return nil, xerrors.NewInputError(source, line, "solution slot %d out of range [0,%d)", slot, d.S)
		}

		idx := nextLectureOfCourse[c]
		if idx >= m.Courses[c].NumLectures {
			return nil, xerrors.NewInputError(source, line, "course %q: more lines than its %d lectures", courseID, m.Courses[c].NumLectures)
		}
		nextLectureOfCourse[c] = idx + 1

		l := lectureIndexOf(m, c, idx)
		if sol.Assignment(l).IsAssigned() {
			return nil, xerrors.NewInvariantViolation("solution reader assigned lecture %d twice", l)
		}
		if sol.LectureAt(rm, day, slot) != tt.Unassigned {
			return nil, xerrors.NewInputError(source, line, "room %q already occupied at day %d slot %d", roomID, day, slot)
		}

		sol.Place(l, rm, day, slot)
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.NewInputError(source, line, "read error: %v", err)
	}

	for c, course := range m.Courses {
		if nextLectureOfCourse[c] != course.NumLectures {
			return nil, xerrors.NewInputError(source, 0, "course %q: got %d lines, expected %d", course.ID, nextLectureOfCourse[c], course.NumLectures)
		}
	}

	return sol, nil
}

// lectureIndexOf returns the global lecture index of the idx-th lecture
// of course c (lectures are laid out contiguously per course, in course
// order, by model.Model.finalize).
func lectureIndexOf(m *model.Model, c, idx int) int {
	base := 0
	for i := 0; i < c; i++ {
		base += m.Courses[i].NumLectures
	}
	return base + idx
}

// WriteSolution writes sol to w in the format ReadSolution accepts: one
// line per lecture, course-major, each course's lectures consecutive
// and in lecture-index order — matching the finder's own output order.
func WriteSolution(w io.Writer, m *model.Model, sol *tt.Solution) error {
	bw := bufio.NewWriter(w)
	for l, lecture := range m.Lectures {
		a := sol.Assignment(l)
		if !a.IsAssigned() {
			continue
		}
		course := m.Courses[lecture.CourseIndex]
		room := m.Rooms[a.Room]
		if _, err := fmt.Fprintf(bw, "%s %s %d %d\n", course.ID, room.ID, a.Day, a.Slot); err != nil {
			return err
		}
	}
	return bw.Flush()
}
