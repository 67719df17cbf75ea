package parser

import (
	"regexp"
	"strings"
)

// NoExperienceFound is the placeholder title of the sentinel record emitted
// when no sentence carries any experience signal.
const NoExperienceFound = "No experience details found"

// ExperienceRecord is one unit of work or project experience. Empty Title,
// Company or Dates mean the field was not found in the source text.
type ExperienceRecord struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Dates       string   `json:"dates"`
	Description []string `json:"description"`
}

var experienceKeywords = []string{
	"experience", "worked", "employed", "position", "role", "job",
	"project", "internship", "hackathon", "developed", "built",
}

const monthAbbrev = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec`

var (
	// A month-year or year range, end side optionally the literal Present.
	dateRangePattern = regexp.MustCompile(
		`(?:` + monthAbbrev + `)[a-z]*\.?,?\s+\d{4}\s*[-–]\s*(?:(?:` + monthAbbrev + `)[a-z]*\.?,?\s+\d{4}|Present)` +
			`|\d{4}\s*[-–]\s*(?:\d{4}|Present)`)

	// "at|with|for" followed by a capitalized phrase, non-greedy, terminated
	// by a month name, a year, or the end of the sentence.
	companyPattern = regexp.MustCompile(
		`(?:at|with|for)\s+([A-Z][\w\s&,-]*?)(?:\s*(?:` + monthAbbrev + `|\d{4})|$)`)

	// "Project:" or "Hackathon:" followed by free text, same terminators.
	projectPattern = regexp.MustCompile(
		`(?:Project|Hackathon)\s*:\s*([A-Za-z][A-Za-z\s]*?)(?:\s*(?:` + monthAbbrev + `|\d{4})|$)`)
)

func isExperienceRelevant(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, keyword := range experienceKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return dateRangePattern.MatchString(sentence) ||
		companyPattern.MatchString(sentence) ||
		projectPattern.MatchString(sentence)
}

// ExtractExperience scans sentences in document order and groups them into
// records. Each relevant sentence contributes its full text to the open
// record's description and may fill an empty title, company or date slot.
// The record is closed as soon as it holds any of the three, so one record
// covers one burst of structured signal rather than one sentence.
func ExtractExperience(sentences []Sentence) []ExperienceRecord {
	var records []ExperienceRecord
	current := ExperienceRecord{}

	for _, sentence := range sentences {
		text := sentence.Text
		if !isExperienceRelevant(text) {
			continue
		}

		if current.Title == "" {
			if m := projectPattern.FindStringSubmatch(text); m != nil {
				current.Title = strings.TrimSpace(m[1])
			}
		}
		if current.Company == "" {
			if m := companyPattern.FindStringSubmatch(text); m != nil {
				current.Company = strings.TrimSpace(m[1])
			}
		}
		if current.Dates == "" {
			if m := dateRangePattern.FindString(text); m != "" {
				current.Dates = strings.TrimSpace(m)
			}
		}

		current.Description = append(current.Description, text)

		if current.Title != "" || current.Company != "" || current.Dates != "" {
			records = append(records, current)
			current = ExperienceRecord{}
		}
	}

	if len(records) > 0 {
		return records
	}
	if len(current.Description) > 0 {
		// Relevant sentences accumulated but nothing ever closed a record.
		return []ExperienceRecord{current}
	}
	return []ExperienceRecord{{Title: NoExperienceFound, Description: []string{}}}
}
