// Package normalize is the single canonicalization boundary for free-text
// input. Spreadsheet rows arrive with arbitrary casing and aliases
// ("MALE"/"m"/"Boy", "BTECH"/"b tech"); every comparison against a canonical
// enum elsewhere in the engine must go through these functions first.
package normalize

import "strings"

// Canonical gender values.
const (
	Male   = "Male"
	Female = "Female"
)

var genderAliases = map[string]string{
	"m": Male, "male": Male, "boy": Male, "boys": Male,
	"f": Female, "female": Female, "girl": Female, "girls": Female,
}

// Gender maps any accepted alias to "Male"/"Female". Unknown input yields "".
func Gender(s string) string {
	return genderAliases[strings.ToLower(strings.TrimSpace(s))]
}

var categoryAliases = map[string]string{
	"a+": "A+", "aplus": "A+", "a plus": "A+",
	"a":  "A",
	"b+": "B+", "bplus": "B+", "b plus": "B+",
	"b": "B",
	"c": "C",
}

// Category maps raw category input to its canonical tier. Unknown input yields "".
func Category(s string) string {
	return categoryAliases[strings.ToLower(strings.TrimSpace(s))]
}

// Course alias table. Keys are lowercase with spaces/dots/hyphens stripped,
// so "B TECH", "B.Tech" and "b-tech" all land on the same entry.
var courseAliases = map[string]string{
	"btech":                "B.Tech",
	"bacheloroftechnology": "B.Tech",
	"mtech":                "M.Tech",
	"bpharm":               "B.Pharmacy",
	"bpharmacy":            "B.Pharmacy",
	"mpharm":               "M.Pharmacy",
	"mpharmacy":            "M.Pharmacy",
	"degree":               "Degree",
	"diploma":              "Diploma",
	"polytechnic":          "Diploma",
	"mba":                  "MBA",
	"mca":                  "MCA",
}

func courseKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, cut := range []string{" ", ".", "-"} {
		s = strings.ReplaceAll(s, cut, "")
	}
	return s
}

// CourseName maps common course aliases to the canonical registry name.
// Unknown input is passed through trimmed, so a course configured under an
// unanticipated name still resolves by exact match.
func CourseName(s string) string {
	if c, ok := courseAliases[courseKey(s)]; ok {
		return c
	}
	return strings.TrimSpace(s)
}

// Phone strips everything but digits ("98765-43210" becomes "9876543210").
func Phone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Batch parses a cohort string: "2022-2026" gives (2022, 2026, true),
// bare "2022" gives (2022, 0, true). Anything else reports ok=false.
func Batch(raw string) (startYear, endYear int, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, 0, false
	}
	parts := strings.SplitN(raw, "-", 2)
	start, ok := parseYear(parts[0])
	if !ok {
		return 0, 0, false
	}
	if len(parts) == 1 {
		return start, 0, true
	}
	end, ok := parseYear(parts[1])
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

func parseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
