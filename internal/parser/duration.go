package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// durationPattern finds month-year pairs separated by a hyphen. Month names
// may be abbreviated and optionally carry a trailing period and comma; the
// end side may instead be the literal "Present".
var durationPattern = regexp.MustCompile(
	`(?i)(` + monthAbbrev + `)[a-z]*\.?,?\s*(\d{4})\s*[-–]\s*(?:(` + monthAbbrev + `)[a-z]*\.?,?\s*(\d{4})|(Present))`)

var monthIndex = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// TotalExperienceYears scans the raw text for date ranges and sums the month
// deltas of every range whose start strictly precedes its end. Inverted or
// malformed pairs contribute nothing. "Present" resolves against now. The
// total is converted to years rounded to one decimal; a document without any
// valid pair yields 0.0.
func TotalExperienceYears(text string, now time.Time) float64 {
	totalMonths := 0

	for _, match := range durationPattern.FindAllStringSubmatch(text, -1) {
		startMonth, startYear, ok := parseMonthYear(match[1], match[2])
		if !ok {
			continue
		}

		var endMonth, endYear int
		if match[5] != "" {
			endMonth, endYear = int(now.Month()), now.Year()
		} else {
			endMonth, endYear, ok = parseMonthYear(match[3], match[4])
			if !ok {
				continue
			}
		}

		delta := (endYear-startYear)*12 + (endMonth - startMonth)
		if delta > 0 {
			totalMonths += delta
		}
	}

	return math.Round(float64(totalMonths)/12*10) / 10
}

func parseMonthYear(month, year string) (int, int, bool) {
	m, ok := monthIndex[strings.ToLower(month)]
	if !ok {
		return 0, 0, false
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return 0, 0, false
	}
	return m, y, true
}
