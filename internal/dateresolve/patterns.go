package dateresolve

import (
	"regexp"
	"strconv"
	"time"
)

// Years outside this window are treated as pattern noise (phone counters,
// sequence numbers) rather than dates.
const (
	minYear = 1900
	maxYear = 2100
)

// pattern pairs a filename regex with the logic that turns its capture
// groups into a calendar date. Patterns are tried in priority order; a match
// that fails calendar validation is treated as a non-match and the next
// pattern is tried.
type pattern struct {
	re    *regexp.Regexp
	parse func(groups []string) (int, time.Month, int, bool)
}

var filenamePatterns = []pattern{
	// Device-tagged compact timestamps: IMG_20240315, VID-20240315.
	{
		re:    regexp.MustCompile(`(?:IMG|VID)[-_](\d{4})(\d{2})(\d{2})`),
		parse: parseYearMonthDay,
	},
	// Separated dates in either order: 2024-03-15, 15_03_2024. The group
	// holding exactly four digits decides which side is the year; when
	// neither or both qualify the match is ambiguous and skipped.
	{
		re:    regexp.MustCompile(`(\d{2,4})[-_](\d{1,2})[-_](\d{2,4})`),
		parse: parseSeparated,
	},
	// Compact timestamps: 20240315_100000.jpg, DJI_20240315.mp4.
	{
		re:    regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`),
		parse: parseYearMonthDay,
	},
	// Year and month only: 2024-03_holiday.jpg. Day defaults to 1.
	{
		re: regexp.MustCompile(`(\d{4})[-_](\d{2})`),
		parse: func(groups []string) (int, time.Month, int, bool) {
			year := atoi(groups[1])
			month := atoi(groups[2])
			return year, time.Month(month), 1, true
		},
	},
}

func parseYearMonthDay(groups []string) (int, time.Month, int, bool) {
	return atoi(groups[1]), time.Month(atoi(groups[2])), atoi(groups[3]), true
}

func parseSeparated(groups []string) (int, time.Month, int, bool) {
	firstIsYear := len(groups[1]) == 4
	lastIsYear := len(groups[3]) == 4
	switch {
	case firstIsYear && !lastIsYear:
		return atoi(groups[1]), time.Month(atoi(groups[2])), atoi(groups[3]), true
	case lastIsYear && !firstIsYear:
		return atoi(groups[3]), time.Month(atoi(groups[2])), atoi(groups[1]), true
	default:
		return 0, 0, 0, false
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// fromFilename tries every pattern in priority order against the filename
// and returns the first match that survives calendar validation.
func fromFilename(name string) (int, time.Month, int, bool) {
	for _, p := range filenamePatterns {
		groups := p.re.FindStringSubmatch(name)
		if groups == nil {
			continue
		}
		year, month, day, ok := p.parse(groups)
		if !ok {
			continue
		}
		if !validCalendarDate(year, month, day) {
			continue
		}
		return year, month, day, true
	}
	return 0, 0, 0, false
}

// validCalendarDate bounds-checks the fields and rejects dates that do not
// exist (April 31 normalizes under time.Date, which the round-trip detects).
func validCalendarDate(year int, month time.Month, day int) bool {
	if year < minYear || year > maxYear {
		return false
	}
	if month < time.January || month > time.December {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && t.Month() == month && t.Day() == day
}
