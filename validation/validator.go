// Package validation implements the bulk-admission rules engine: per-row
// field validation against the reference tables, and the batch coordinator
// that tracks interactive edits and partitions rows for commit.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/DurgaPydahSoft/client-sub008/normalize"
	"github.com/DurgaPydahSoft/client-sub008/refdata"
)

// Field names shared by input rows and their error maps.
const (
	FieldName         = "name"
	FieldRollNumber   = "rollNumber"
	FieldGender       = "gender"
	FieldCourse       = "course"
	FieldBranch       = "branch"
	FieldYear         = "year"
	FieldCategory     = "category"
	FieldRoomNumber   = "roomNumber"
	FieldStudentPhone = "studentPhone"
	FieldParentPhone  = "parentPhone"
	FieldEmail        = "email"
	FieldBatch        = "batch"
	FieldAcademicYear = "academicYear"
)

// Row is one bulk-upload record at the boundary: every field an optional
// string exactly as it came off the sheet. Parsing happens inside Validate.
type Row struct {
	Name         string `json:"name"`
	RollNumber   string `json:"rollNumber"`
	Gender       string `json:"gender"`
	Course       string `json:"course"`
	Branch       string `json:"branch"`
	Year         string `json:"year"`
	Category     string `json:"category"`
	RoomNumber   string `json:"roomNumber"`
	StudentPhone string `json:"studentPhone"`
	ParentPhone  string `json:"parentPhone"`
	Email        string `json:"email"`
	Batch        string `json:"batch"`
	AcademicYear string `json:"academicYear"`
}

// ErrorMap maps a field name to a single human-readable message.
// Empty map = fully valid row.
type ErrorMap map[string]string

// Context supplies the reference data a row is validated against.
type Context struct {
	Courses *refdata.CourseRegistry
	Rooms   refdata.RoomDirectory
}

var (
	rePhone = regexp.MustCompile(`^[0-9]{10}$`)
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	reAcadY = regexp.MustCompile(`^([0-9]{4})-([0-9]{4})$`)
)

// Batch duration tolerance when the course cannot be resolved.
const (
	fallbackDurationMin = 3
	fallbackDurationMax = 4
)

// Validate runs every rule against the row and collects one message per
// failing field. Rules never short-circuit: a row with a bad gender still
// gets its phone and batch checked, so the admin sees everything at once.
func Validate(row Row, ctx Context) ErrorMap {
	errs := ErrorMap{}

	trim := strings.TrimSpace
	if trim(row.Name) == "" {
		errs[FieldName] = "Name is required"
	}
	if trim(row.RollNumber) == "" {
		errs[FieldRollNumber] = "Roll number is required"
	}
	if trim(row.Branch) == "" {
		// Presence only; membership in the course's branch list is
		// enforced by the persistence layer.
		errs[FieldBranch] = "Branch is required"
	}

	gender := normalize.Gender(row.Gender)
	if trim(row.Gender) == "" {
		errs[FieldGender] = "Gender is required"
	} else if gender == "" {
		errs[FieldGender] = "Gender must be Male or Female"
	}

	courseDuration := refdata.DefaultCourseDuration
	courseResolved := false
	if trim(row.Course) == "" {
		errs[FieldCourse] = "Course is required"
	} else {
		courseDuration, courseResolved = ctx.Courses.DurationFor(row.Course)
		if !courseResolved {
			errs[FieldCourse] = fmt.Sprintf("Unknown course %q", trim(row.Course))
		}
	}

	if trim(row.Year) != "" {
		y, err := strconv.Atoi(trim(row.Year))
		if err != nil {
			errs[FieldYear] = "Year must be a number"
		} else if y < 1 || y > 10 {
			errs[FieldYear] = "Year must be between 1 and 10"
		}
	}

	category := normalize.Category(row.Category)
	if trim(row.Category) == "" {
		errs[FieldCategory] = "Category is required"
	} else if category == "" || !categoryAllowed(gender, category) {
		errs[FieldCategory] = fmt.Sprintf("Category %q is not available for %s students", trim(row.Category), displayGender(gender))
	}

	if trim(row.RoomNumber) == "" {
		errs[FieldRoomNumber] = "Room number is required"
	} else if gender != "" && category != "" && categoryAllowed(gender, category) {
		if !ctx.Rooms.Contains(gender, category, trim(row.RoomNumber)) {
			errs[FieldRoomNumber] = fmt.Sprintf("Room %s is not a %s/%s room", trim(row.RoomNumber), gender, category)
		}
	}

	if p := trim(row.StudentPhone); p != "" && !rePhone.MatchString(normalize.Phone(p)) {
		errs[FieldStudentPhone] = "Student phone must be exactly 10 digits"
	}
	if p := trim(row.ParentPhone); p == "" {
		errs[FieldParentPhone] = "Parent phone is required"
	} else if !rePhone.MatchString(normalize.Phone(p)) {
		errs[FieldParentPhone] = "Parent phone must be exactly 10 digits"
	}

	if e := trim(row.Email); e != "" && !reEmail.MatchString(e) {
		errs[FieldEmail] = "Email address is not valid"
	}

	validateBatch(row.Batch, courseDuration, courseResolved, errs)
	validateAcademicYear(row.AcademicYear, errs)

	return errs
}

// categoryAllowed checks membership in the gender's tier set plus the
// hostel-policy overrides: Male+C and Female+B+ stay invalid even if a
// replaced room directory were to list rooms under them.
func categoryAllowed(gender, category string) bool {
	if gender == normalize.Male && category == "C" {
		return false
	}
	if gender == normalize.Female && category == "B+" {
		return false
	}
	for _, c := range refdata.CategoriesFor(gender) {
		if c == category {
			return true
		}
	}
	return false
}

func displayGender(gender string) string {
	if gender == "" {
		return "these"
	}
	return gender
}

func validateBatch(raw string, courseDuration int, courseResolved bool, errs ErrorMap) {
	if strings.TrimSpace(raw) == "" {
		errs[FieldBatch] = "Batch is required"
		return
	}
	start, end, ok := normalize.Batch(raw)
	if !ok {
		errs[FieldBatch] = "Batch must be YYYY-YYYY or a 4-digit year"
		return
	}
	if end == 0 {
		// Bare start year: plausibility only, duration is inferred later.
		if start < 2000 || start > 2100 {
			errs[FieldBatch] = "Batch year must be between 2000 and 2100"
		}
		return
	}
	if start >= end {
		errs[FieldBatch] = "Batch start year must be before end year"
		return
	}
	if start < 2000 || start > 2030 {
		errs[FieldBatch] = "Batch start year must be between 2000 and 2030"
		return
	}
	duration := end - start
	if courseResolved {
		if duration != courseDuration {
			errs[FieldBatch] = fmt.Sprintf("Batch duration is %d years but the course runs %d", duration, courseDuration)
		}
		return
	}
	if duration < fallbackDurationMin || duration > fallbackDurationMax {
		errs[FieldBatch] = fmt.Sprintf("Batch duration must be %d-%d years", fallbackDurationMin, fallbackDurationMax)
	}
}

func validateAcademicYear(raw string, errs ErrorMap) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		errs[FieldAcademicYear] = "Academic year is required"
		return
	}
	m := reAcadY.FindStringSubmatch(raw)
	if m == nil {
		errs[FieldAcademicYear] = "Academic year must be YYYY-YYYY"
		return
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	if end != start+1 {
		errs[FieldAcademicYear] = "Academic year must span consecutive years"
	}
}
