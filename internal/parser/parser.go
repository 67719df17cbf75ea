package parser

import "time"

// Profile is the structured result of parsing one resume. Single-valued
// fields that were not found are nil; collection fields carry an explicit
// sentinel element instead of being empty.
type Profile struct {
	Name                    *string            `json:"name"`
	Email                   *string            `json:"email"`
	Phone                   *string            `json:"phone"`
	EducationQualifications []string           `json:"education_qualifications"`
	TotalExperienceYears    float64            `json:"total_experience_years"`
	Experience              []ExperienceRecord `json:"experience"`
	Skills                  []string           `json:"skills"`
}

// ResumeParser runs the linguistic pipeline once per document and composes
// the field extractor outputs into a Profile. All extractors are pure
// functions of the document text and the pipeline output, so a parser is safe
// for concurrent use.
type ResumeParser struct {
	pipeline  *Pipeline
	extractor TextExtractor
	now       func() time.Time
}

func NewResumeParser(pipeline *Pipeline, extractor TextExtractor) *ResumeParser {
	return &ResumeParser{
		pipeline:  pipeline,
		extractor: extractor,
		now:       time.Now,
	}
}

// ParseFile extracts the text of the PDF at path and parses it, returning
// the extracted text alongside the profile so callers can tell a text-free
// document apart from a sparse one. Extraction failures surface as
// ErrSourceNotFound or ErrReadFailed; an empty extraction result is not an
// error and produces a profile of sentinels.
func (p *ResumeParser) ParseFile(path string) (*Profile, string, error) {
	text, err := p.extractor.ExtractText(path)
	if err != nil {
		return nil, "", err
	}
	profile, err := p.Parse(text)
	if err != nil {
		return nil, "", err
	}
	return profile, text, nil
}

// Parse builds a Profile from already-extracted resume text.
func (p *ResumeParser) Parse(text string) (*Profile, error) {
	annotation, err := p.pipeline.Process(text)
	if err != nil {
		return nil, err
	}

	return &Profile{
		Name:                    extractName(annotation.Entities),
		Email:                   ExtractEmail(text),
		Phone:                   ExtractPhone(text),
		EducationQualifications: ExtractEducation(text),
		TotalExperienceYears:    TotalExperienceYears(text, p.now()),
		Experience:              ExtractExperience(annotation.Sentences),
		Skills:                  ExtractSkills(text),
	}, nil
}

// extractName returns the first PERSON entity, or nil when none was tagged.
func extractName(entities []Entity) *string {
	for _, entity := range entities {
		if entity.Label == "PERSON" {
			name := entity.Text
			return &name
		}
	}
	return nil
}
