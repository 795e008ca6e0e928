package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGender(t *testing.T) {
	cases := map[string]string{
		"male":   Male,
		"MALE":   Male,
		" M ":    Male,
		"Boy":    Male,
		"female": Female,
		"f":      Female,
		"Girl":   Female,
		"other":  "",
		"":       "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Gender(in), "input %q", in)
	}
}

func TestCategory(t *testing.T) {
	cases := map[string]string{
		"a+":     "A+",
		"A+":     "A+",
		"A PLUS": "A+",
		"b":      "B",
		"B+":     "B+",
		"c":      "C",
		"z":      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Category(in), "input %q", in)
	}
}

func TestCourseName(t *testing.T) {
	cases := map[string]string{
		"BTECH":       "B.Tech",
		"B TECH":      "B.Tech",
		"b-tech":      "B.Tech",
		"B.Tech":      "B.Tech",
		"mba":         "MBA",
		"polytechnic": "Diploma",
		"BPharm":      "B.Pharmacy",
	}
	for in, want := range cases {
		assert.Equal(t, want, CourseName(in), "input %q", in)
	}
	// Unknown names pass through trimmed, so exact registry matches still work.
	assert.Equal(t, "Fine Arts", CourseName("  Fine Arts "))
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "9876543210", Phone("98765-43210"))
	assert.Equal(t, "9876543210", Phone(" 98765 43210 "))
	assert.Equal(t, "", Phone("abc"))
}

func TestBatch(t *testing.T) {
	start, end, ok := Batch("2022-2026")
	assert.True(t, ok)
	assert.Equal(t, 2022, start)
	assert.Equal(t, 2026, end)

	start, end, ok = Batch(" 2022 ")
	assert.True(t, ok)
	assert.Equal(t, 2022, start)
	assert.Equal(t, 0, end)

	for _, bad := range []string{"", "22-26", "2022-26", "abcd-efgh", "2022/2026"} {
		_, _, ok := Batch(bad)
		assert.False(t, ok, "input %q", bad)
	}
}
