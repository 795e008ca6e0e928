package refdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DurgaPydahSoft/client-sub008/models"
)

func TestCategoriesFor(t *testing.T) {
	assert.Equal(t, []string{"A+", "A", "B+", "B"}, CategoriesFor("Male"))
	assert.Equal(t, []string{"A+", "A", "B", "C"}, CategoriesFor("female"))
	// Unresolved gender gets the union so forms can render early.
	assert.Equal(t, []string{"A+", "A", "B+", "B", "C"}, CategoriesFor(""))
	assert.Equal(t, []string{"A+", "A", "B+", "B", "C"}, CategoriesFor("unknown"))
}

// A room number must never be listed under both genders.
func TestDefaultRoomsGenderDisjoint(t *testing.T) {
	dir := DefaultRooms()
	seen := map[string]string{}
	for gender, byCat := range dir {
		for _, rooms := range byCat {
			for _, r := range rooms {
				if prev, ok := seen[r]; ok {
					assert.Equal(t, prev, gender, "room %s listed under both genders", r)
				}
				seen[r] = gender
			}
		}
	}
}

func TestRoomsForAndContains(t *testing.T) {
	dir := DefaultRooms()
	assert.Contains(t, dir.RoomsFor("Male", "A+"), "309")
	assert.True(t, dir.Contains("male", "a+", "309"))
	assert.False(t, dir.Contains("Female", "A+", "309"))
	assert.Nil(t, dir.RoomsFor("Male", "C"))
	assert.Nil(t, dir.RoomsFor("", "A+"))
}

func TestCourseRegistry(t *testing.T) {
	reg := NewCourseRegistry([]models.Course{
		{ID: 1, Name: "B.Tech", DurationYears: 4},
		{ID: 2, Name: "Diploma", DurationYears: 3},
	})

	d, ok := reg.DurationFor("BTECH")
	require.True(t, ok)
	assert.Equal(t, 4, d)

	d, ok = reg.DurationFor("2") // by id
	require.True(t, ok)
	assert.Equal(t, 3, d)

	d, ok = reg.DurationFor("Astronomy")
	assert.False(t, ok)
	assert.Equal(t, DefaultCourseDuration, d)
}

func TestAcademicYearWindow(t *testing.T) {
	now := time.Date(2023, time.August, 15, 0, 0, 0, 0, time.UTC)
	years := AcademicYearWindow(now, 3, 3)
	require.Len(t, years, 7)
	assert.Equal(t, "2020-2021", years[0])
	assert.Equal(t, "2023-2024", years[3])
	assert.Equal(t, "2026-2027", years[6])
}
