// Package refdata holds the hostel's lookup tables: category tiers per
// gender, the room directory, course durations and academic-year windows.
// The tables are configuration, not logic - the room directory and course
// registry are injectable so deployments can replace them wholesale.
package refdata

import (
	"fmt"
	"strconv"
	"time"

	"github.com/DurgaPydahSoft/client-sub008/models"
	"github.com/DurgaPydahSoft/client-sub008/normalize"
)

var (
	maleCategories   = []string{"A+", "A", "B+", "B"}
	femaleCategories = []string{"A+", "A", "B", "C"}
	// Male-first merge of both sets, used when gender is not yet resolved.
	allCategories = []string{"A+", "A", "B+", "B", "C"}
)

// CategoriesFor returns the category tiers open to a gender, in display
// order. Unknown gender gets the union so forms can render before gender
// is picked.
func CategoriesFor(gender string) []string {
	switch normalize.Gender(gender) {
	case normalize.Male:
		return maleCategories
	case normalize.Female:
		return femaleCategories
	default:
		return allCategories
	}
}

// RoomDirectory maps gender, then category, to room numbers. A room number is
// exclusive to one gender across the whole directory.
type RoomDirectory map[string]map[string][]string

// DefaultRooms is the directory for the current buildings: men in blocks
// 1-3, women in blocks 4-6.
func DefaultRooms() RoomDirectory {
	return RoomDirectory{
		normalize.Male: {
			"A+": {"301", "302", "303", "304", "305", "306", "307", "308", "309", "310"},
			"A":  {"201", "202", "203", "204", "205", "206", "207", "208"},
			"B+": {"101", "102", "103", "104", "105", "106"},
			"B":  {"107", "108", "109", "110", "111", "112"},
		},
		normalize.Female: {
			"A+": {"601", "602", "603", "604", "605", "606"},
			"A":  {"501", "502", "503", "504", "505", "506", "507", "508"},
			"B":  {"401", "402", "403", "404", "405", "406"},
			"C":  {"407", "408", "409", "410"},
		},
	}
}

// RoomsFor returns the room numbers configured for a (gender, category)
// pair, nil when the pair has no rooms.
func (d RoomDirectory) RoomsFor(gender, category string) []string {
	byCat, ok := d[normalize.Gender(gender)]
	if !ok {
		return nil
	}
	return byCat[normalize.Category(category)]
}

// Contains reports whether roomNumber is listed under (gender, category).
func (d RoomDirectory) Contains(gender, category, roomNumber string) bool {
	for _, r := range d.RoomsFor(gender, category) {
		if r == roomNumber {
			return true
		}
	}
	return false
}

// DefaultCourseDuration applies when a course cannot be resolved.
const DefaultCourseDuration = 4

// CourseRegistry resolves course names/ids to their configured duration.
type CourseRegistry struct {
	byName map[string]models.Course
	byID   map[string]models.Course
}

func NewCourseRegistry(courses []models.Course) *CourseRegistry {
	r := &CourseRegistry{
		byName: make(map[string]models.Course, len(courses)),
		byID:   make(map[string]models.Course, len(courses)),
	}
	for _, c := range courses {
		r.byName[normalize.CourseName(c.Name)] = c
		r.byID[strconv.FormatUint(uint64(c.ID), 10)] = c
	}
	return r
}

// Resolve looks a course up by id or (normalized) name.
func (r *CourseRegistry) Resolve(nameOrID string) (models.Course, bool) {
	if r == nil {
		return models.Course{}, false
	}
	if c, ok := r.byID[nameOrID]; ok {
		return c, true
	}
	c, ok := r.byName[normalize.CourseName(nameOrID)]
	return c, ok
}

// DurationFor returns the course duration in years and whether the course
// resolved. Unresolved courses fall back to DefaultCourseDuration.
func (r *CourseRegistry) DurationFor(nameOrID string) (int, bool) {
	c, ok := r.Resolve(nameOrID)
	if !ok {
		return DefaultCourseDuration, false
	}
	if c.DurationYears <= 0 {
		return DefaultCourseDuration, true
	}
	return c.DurationYears, true
}

// AcademicYearWindow lists "YYYY-YYYY" academic years centered on now's
// year: before years back and after years ahead.
func AcademicYearWindow(now time.Time, before, after int) []string {
	base := now.Year()
	out := make([]string, 0, before+after+1)
	for y := base - before; y <= base+after; y++ {
		out = append(out, fmt.Sprintf("%d-%d", y, y+1))
	}
	return out
}
