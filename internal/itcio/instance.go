// Package itcio reads and writes the ITC-2007 track-3 text formats
// (spec §6.1/§6.2): the instance file consumed before solving, and the
// solution file produced after. Every malformed line is reported as an
// Input Error carrying the source file name and line number.
package itcio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"itc2007-cct/internal/model"
	"itc2007-cct/internal/xerrors"
)

const (
	sectionNone = iota
	sectionCourses
	sectionRooms
	sectionCurricula
	sectionUnavailability
)

// ReadInstance parses an ITC-2007 CCT instance from r, named source for
// error context, and builds a validated *model.Model.
func ReadInstance(source string, r io.Reader) (*model.Model, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)

	var (
		name                     string
		nCourses, nRooms         int
		nDays, nSlotsPerDay      int
		nCurricula, nConstraints int

		rawCourses []model.RawCourse
		rawRooms   []model.RawRoom
		rawCurric  []model.RawCurriculum
		rawUnavail []model.RawUnavailability
	)

	section := sectionNone
	line := 0

	for scanner.Scan() {
		line++
		raw := scanner.Text()
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}

		if key, val, ok := splitHeader(text); ok {
			switch key {
			case "Name":
				name = val
			case "Courses":
				nCourses, _ = strconv.Atoi(val)
			case "Rooms":
				nRooms, _ = strconv.Atoi(val)
			case "Days":
				nDays, _ = strconv.Atoi(val)
			case "Periods_per_day":
				nSlotsPerDay, _ = strconv.Atoi(val)
			case "Curricula":
				nCurricula, _ = strconv.Atoi(val)
			case "Constraints":
				nConstraints, _ = strconv.Atoi(val)
			}
			continue
		}

		switch text {
		case "COURSES:":
			section = sectionCourses
			continue
		case "ROOMS:":
			section = sectionRooms
			continue
		case "CURRICULA:":
			section = sectionCurricula
			continue
		case "UNAVAILABILITY_CONSTRAINTS:":
			section = sectionUnavailability
			continue
		case "END.":
			section = sectionNone
			continue
		}

		fields := strings.Fields(text)
		switch section {
		case sectionCourses:
			rc, err := parseCourseLine(source, line, fields)
			if err != nil {
				return nil, err
			}
			rawCourses = append(rawCourses, rc)
		case sectionRooms:
			rr, err := parseRoomLine(source, line, fields)
			if err != nil {
				return nil, err
			}
			rawRooms = append(rawRooms, rr)
		case sectionCurricula:
			rq, err := parseCurriculumLine(source, line, fields)
			if err != nil {
				return nil, err
			}
			rawCurric = append(rawCurric, rq)
		case sectionUnavailability:
			ru, err := parseUnavailabilityLine(source, line, fields)
			if err != nil {
				return nil, err
			}
			rawUnavail = append(rawUnavail, ru)
		default:
			return nil, xerrors.NewInputError(source, line, "unexpected line outside any section: %q", text)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, xerrors.NewInputError(source, line, "read error: %v", err)
	}

	if nDays <= 0 {
		return nil, xerrors.NewInputError(source, 0, "missing or invalid Days header")
	}
	if nSlotsPerDay <= 0 {
		return nil, xerrors.NewInputError(source, 0, "missing or invalid Periods_per_day header")
	}
	if len(rawCourses) != nCourses {
		return nil, xerrors.NewInputError(source, 0, "Courses header says %d, found %d", nCourses, len(rawCourses))
	}
	if len(rawRooms) != nRooms {
		return nil, xerrors.NewInputError(source, 0, "Rooms header says %d, found %d", nRooms, len(rawRooms))
	}
	if len(rawCurric) != nCurricula {
		return nil, xerrors.NewInputError(source, 0, "Curricula header says %d, found %d", nCurricula, len(rawCurric))
	}
	if len(rawUnavail) != nConstraints {
		return nil, xerrors.NewInputError(source, 0, "Constraints header says %d, found %d", nConstraints, len(rawUnavail))
	}

	return model.Build(source, name, nDays, nSlotsPerDay, rawCourses, rawRooms, rawCurric, rawUnavail)
}

// splitHeader recognizes a "Key: value" header line.
func splitHeader(text string) (key, val string, ok bool) {
	idx := strings.Index(text, ":")
	if idx < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(text[:idx])
	rest := strings.TrimSpace(text[idx+1:])
	// Section headers ("COURSES:", ...) have no value after the colon
	// and are all-uppercase; header lines always carry a value.
	if rest == "" {
		return "", "", false
	}
	for _, r := range key {
		if r == ' ' {
			return "", "", false
		}
	}
	return key, rest, true
}

func parseCourseLine(source string, line int, fields []string) (model.RawCourse, error) {
	if len(fields) != 5 {
		return model.RawCourse{}, xerrors.NewInputError(source, line, "course line wants 5 fields, got %d", len(fields))
	}
	nLectures, err1 := strconv.Atoi(fields[2])
	minWorkingDays, err2 := strconv.Atoi(fields[3])
	numStudents, err3 := strconv.Atoi(fields[4])
	if err1 != nil || err2 != nil || err3 != nil {
		return model.RawCourse{}, xerrors.NewInputError(source, line, "course line %q: non-numeric field", strings.Join(fields, " "))
	}
	return model.RawCourse{
		ID: fields[0], TeacherID: fields[1],
		NumLectures: nLectures, MinWorkingDays: minWorkingDays, NumStudents: numStudents,
		Line: line,
	}, nil
}

func parseRoomLine(source string, line int, fields []string) (model.RawRoom, error) {
	if len(fields) != 2 {
		return model.RawRoom{}, xerrors.NewInputError(source, line, "room line wants 2 fields, got %d", len(fields))
	}
	capacity, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.RawRoom{}, xerrors.NewInputError(source, line, "room line %q: non-numeric capacity", strings.Join(fields, " "))
	}
	return model.RawRoom{ID: fields[0], Capacity: capacity, Line: line}, nil
}

func parseCurriculumLine(source string, line int, fields []string) (model.RawCurriculum, error) {
	if len(fields) < 2 {
		return model.RawCurriculum{}, xerrors.NewInputError(source, line, "curriculum line wants at least 2 fields, got %d", len(fields))
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.RawCurriculum{}, xerrors.NewInputError(source, line, "curriculum line %q: non-numeric course count", strings.Join(fields, " "))
	}
	if len(fields)-2 != n {
		return model.RawCurriculum{}, xerrors.NewInputError(source, line, "curriculum %q declares %d courses, lists %d", fields[0], n, len(fields)-2)
	}
	return model.RawCurriculum{ID: fields[0], CourseIDs: append([]string(nil), fields[2:]...), Line: line}, nil
}

func parseUnavailabilityLine(source string, line int, fields []string) (model.RawUnavailability, error) {
	if len(fields) != 3 {
		return model.RawUnavailability{}, xerrors.NewInputError(source, line, "unavailability line wants 3 fields, got %d", len(fields))
	}
	day, err1 := strconv.Atoi(fields[1])
	slot, err2 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil {
		return model.RawUnavailability{}, xerrors.NewInputError(source, line, "unavailability line %q: non-numeric day/slot", strings.Join(fields, " "))
	}
	return model.RawUnavailability{CourseID: fields[0], Day: day, Slot: slot, Line: line}, nil
}
