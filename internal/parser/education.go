package parser

import (
	"regexp"
	"strings"
)

// NoQualificationsFound is returned as the sole element when no degree
// abbreviation matches.
const NoQualificationsFound = "No specific qualifications found"

// degreeVocabulary lists recognized degree abbreviations. Dotted and undotted
// variants normalize to the same canonical form.
var degreeVocabulary = []string{
	"MCA", "BCA", "B.Tech", "BTech", "M.Tech", "MTech",
	"BE", "ME", "B.E", "M.E",
	"B.Sc", "BSc", "M.Sc", "MSc",
	"B.Com", "M.Com", "BBA", "MBA",
	"BA", "MA", "Ph.D", "PhD", "Diploma",
}

type degreePattern struct {
	canonical string
	re        *regexp.Regexp
}

var degreePatterns = buildDegreePatterns()

func buildDegreePatterns() []degreePattern {
	patterns := make([]degreePattern, 0, len(degreeVocabulary))
	for _, degree := range degreeVocabulary {
		// The abbreviation must not be immediately followed by another
		// letter, so "BE" never matches inside "BED".
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(degree) + `(?:[^a-zA-Z]|$)`)
		patterns = append(patterns, degreePattern{
			canonical: strings.ReplaceAll(degree, ".", ""),
			re:        re,
		})
	}
	return patterns
}

// ExtractEducation matches the text against the degree vocabulary and returns
// the normalized set of matched abbreviations. An empty result is replaced by
// the NoQualificationsFound sentinel: a resume without recognizable degrees is
// a valid parse outcome, not a failure.
func ExtractEducation(text string) []string {
	var qualifications []string
	seen := make(map[string]bool)

	for _, pattern := range degreePatterns {
		if !pattern.re.MatchString(text) {
			continue
		}
		if seen[pattern.canonical] {
			continue
		}
		seen[pattern.canonical] = true
		qualifications = append(qualifications, pattern.canonical)
	}

	if len(qualifications) == 0 {
		return []string{NoQualificationsFound}
	}
	return qualifications
}
