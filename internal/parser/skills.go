package parser

import "regexp"

// NoSkillsIdentified is returned as the sole element when no skill matches.
const NoSkillsIdentified = "No skills identified"

var skillVocabulary = []string{
	"python", "java", "javascript", "sql", "html", "css", "react", "node.js",
	"machine learning", "data analysis", "project management", "communication",
	"mongodb", "express.js", "angular", "vue.js", "typescript", "aws", "docker",
}

type skillPattern struct {
	name string
	re   *regexp.Regexp
}

var skillPatterns = buildSkillPatterns()

func buildSkillPatterns() []skillPattern {
	patterns := make([]skillPattern, 0, len(skillVocabulary))
	for _, skill := range skillVocabulary {
		// Whole-word match only: "java" must not match inside "javascript".
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
		patterns = append(patterns, skillPattern{name: skill, re: re})
	}
	return patterns
}

// ExtractSkills matches the text against the skill vocabulary with
// case-insensitive whole-word matching and returns the deduplicated set of
// matched skills. An empty result is replaced by the NoSkillsIdentified
// sentinel.
func ExtractSkills(text string) []string {
	var skills []string
	for _, pattern := range skillPatterns {
		if pattern.re.MatchString(text) {
			skills = append(skills, pattern.name)
		}
	}

	if len(skills) == 0 {
		return []string{NoSkillsIdentified}
	}
	return skills
}
