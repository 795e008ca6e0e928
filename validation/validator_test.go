package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DurgaPydahSoft/client-sub008/models"
	"github.com/DurgaPydahSoft/client-sub008/refdata"
)

func testContext() Context {
	return Context{
		Courses: refdata.NewCourseRegistry([]models.Course{
			{ID: 1, Name: "B.Tech", DurationYears: 4},
			{ID: 2, Name: "Diploma", DurationYears: 3},
			{ID: 3, Name: "MBA", DurationYears: 2},
		}),
		Rooms: refdata.DefaultRooms(),
	}
}

func validRow() Row {
	return Row{
		Name:         "A",
		RollNumber:   "R1",
		Gender:       "male",
		Course:       "BTECH",
		Branch:       "CSE",
		Category:     "a+",
		RoomNumber:   "309",
		ParentPhone:  "9876543210",
		Batch:        "2022-2026",
		AcademicYear: "2023-2024",
	}
}

// End-to-end scenario: aliases normalize, batch duration matches, empty map.
func TestValidateHappyPath(t *testing.T) {
	errs := Validate(validRow(), testContext())
	assert.Empty(t, errs)
}

func TestValidateRequiredFields(t *testing.T) {
	errs := Validate(Row{}, testContext())
	for _, f := range []string{
		FieldName, FieldRollNumber, FieldGender, FieldCourse, FieldBranch,
		FieldCategory, FieldRoomNumber, FieldParentPhone, FieldBatch, FieldAcademicYear,
	} {
		assert.Contains(t, errs, f)
	}
	// Optional fields stay silent when empty.
	assert.NotContains(t, errs, FieldYear)
	assert.NotContains(t, errs, FieldStudentPhone)
	assert.NotContains(t, errs, FieldEmail)
}

// Checks never short-circuit: one bad field doesn't hide the others.
func TestValidateCollectsAllErrors(t *testing.T) {
	row := validRow()
	row.Gender = "x"
	row.ParentPhone = "12"
	row.AcademicYear = "2023-2025"
	errs := Validate(row, testContext())
	assert.Contains(t, errs, FieldGender)
	assert.Contains(t, errs, FieldParentPhone)
	assert.Contains(t, errs, FieldAcademicYear)
}

func TestValidateCategoryPolicy(t *testing.T) {
	// Male+C and Female+B+ are always rejected.
	row := validRow()
	row.Category = "C"
	errs := Validate(row, testContext())
	assert.Contains(t, errs, FieldCategory)

	row = validRow()
	row.Gender = "female"
	row.Category = "B+"
	errs = Validate(row, testContext())
	assert.Contains(t, errs, FieldCategory)

	// Female+C is fine (given a female C room).
	row = validRow()
	row.Gender = "female"
	row.Category = "c"
	row.RoomNumber = "407"
	errs = Validate(row, testContext())
	assert.NotContains(t, errs, FieldCategory)
	assert.NotContains(t, errs, FieldRoomNumber)
}

func TestValidateRoomMembership(t *testing.T) {
	row := validRow()
	row.RoomNumber = "601" // a female A+ room
	errs := Validate(row, testContext())
	assert.Contains(t, errs, FieldRoomNumber)

	// Room check is skipped while gender/category are unresolved; their
	// own errors already flag the row.
	row = validRow()
	row.Gender = "??"
	row.RoomNumber = "601"
	errs = Validate(row, testContext())
	assert.Contains(t, errs, FieldGender)
	assert.NotContains(t, errs, FieldRoomNumber)
}

func TestValidateYearRange(t *testing.T) {
	row := validRow()
	row.Year = "3"
	assert.NotContains(t, Validate(row, testContext()), FieldYear)

	row.Year = "0"
	assert.Contains(t, Validate(row, testContext()), FieldYear)
	row.Year = "11"
	assert.Contains(t, Validate(row, testContext()), FieldYear)
	row.Year = "two"
	assert.Contains(t, Validate(row, testContext()), FieldYear)
}

func TestValidatePhonesAndEmail(t *testing.T) {
	row := validRow()
	row.StudentPhone = "98765-43210" // digits normalize to 10
	row.Email = "a@example.com"
	errs := Validate(row, testContext())
	assert.NotContains(t, errs, FieldStudentPhone)
	assert.NotContains(t, errs, FieldEmail)

	row.StudentPhone = "12345"
	row.Email = "not-an-email"
	errs = Validate(row, testContext())
	assert.Contains(t, errs, FieldStudentPhone)
	assert.Contains(t, errs, FieldEmail)
}

func TestValidateBatchDurationAgainstCourse(t *testing.T) {
	// Duration must equal the course's; B.Tech runs 4 years.
	row := validRow()
	row.Batch = "2022-2025"
	assert.Contains(t, Validate(row, testContext()), FieldBatch)

	// Round-trip for each configured course duration.
	for course, batch := range map[string]string{
		"BTECH":   "2022-2026",
		"Diploma": "2022-2025",
		"MBA":     "2022-2024",
	} {
		row := validRow()
		row.Course = course
		row.Batch = batch
		errs := Validate(row, testContext())
		assert.NotContains(t, errs, FieldBatch, "course %s batch %s", course, batch)
	}
}

func TestValidateBatchBareYear(t *testing.T) {
	row := validRow()
	row.Batch = "2022" // duration left to be inferred, not validated
	errs := Validate(row, testContext())
	assert.NotContains(t, errs, FieldBatch)

	row.Batch = "1999"
	assert.Contains(t, Validate(row, testContext()), FieldBatch)
	row.Batch = "2101"
	assert.Contains(t, Validate(row, testContext()), FieldBatch)
}

func TestValidateBatchUnresolvedCourseFallback(t *testing.T) {
	// Unknown course: 3-4 year durations tolerated, others rejected.
	row := validRow()
	row.Course = "Astronomy"

	row.Batch = "2022-2026"
	errs := Validate(row, testContext())
	require.Contains(t, errs, FieldCourse)
	assert.NotContains(t, errs, FieldBatch)

	row.Batch = "2022-2025"
	assert.NotContains(t, Validate(row, testContext()), FieldBatch)

	row.Batch = "2022-2027"
	assert.Contains(t, Validate(row, testContext()), FieldBatch)
}

func TestValidateBatchShape(t *testing.T) {
	row := validRow()
	for batch, wantErr := range map[string]bool{
		"2026-2022": true,  // start after end
		"1999-2003": true,  // start too early
		"2031-2035": true,  // start too late
		"2030-2034": false, // boundary
	} {
		row.Batch = batch
		errs := Validate(row, testContext())
		if wantErr {
			assert.Contains(t, errs, FieldBatch, "batch %s", batch)
		} else {
			assert.NotContains(t, errs, FieldBatch, "batch %s", batch)
		}
	}
}

func TestValidateAcademicYear(t *testing.T) {
	row := validRow()
	for ay, wantErr := range map[string]bool{
		"2023-2024": false,
		"2023-2025": true,
		"2023":      true,
		"23-24":     true,
	} {
		row.AcademicYear = ay
		errs := Validate(row, testContext())
		if wantErr {
			assert.Contains(t, errs, FieldAcademicYear, "academic year %s", ay)
		} else {
			assert.NotContains(t, errs, FieldAcademicYear, "academic year %s", ay)
		}
	}
}
