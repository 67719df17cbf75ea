package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"resumeworks/ats-parser/internal/parser"
)

type CandidateStatus string

const (
	StatusApplied            CandidateStatus = "applied"
	StatusShortlisted        CandidateStatus = "shortlisted"
	StatusInterviewScheduled CandidateStatus = "interview_scheduled"
	StatusHired              CandidateStatus = "hired"
	StatusRejected           CandidateStatus = "rejected"
)

func (s CandidateStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusShortlisted, StatusInterviewScheduled, StatusHired, StatusRejected:
		return true
	}
	return false
}

type Candidate struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name                    string          `gorm:"type:text" json:"name"`
	Email                   string          `gorm:"type:text;uniqueIndex" json:"email"`
	Phone                   string          `gorm:"type:text" json:"phone"`
	EducationQualifications string          `gorm:"type:text" json:"education_qualifications"`
	TotalExperienceYears    float64         `gorm:"type:decimal(5,1)" json:"total_experience_years"`
	Skills                  string          `gorm:"type:text" json:"skills"`
	ExperienceSummary       string          `gorm:"type:text" json:"experience_summary"`
	Status                  CandidateStatus `gorm:"type:text;not null;default:'applied'" json:"status"`
	AptitudeScore           *int            `gorm:"type:integer" json:"aptitude_score,omitempty"`
	AptitudeResult          *string         `gorm:"type:text" json:"aptitude_result,omitempty"`
	CreatedAt               time.Time       `gorm:"type:timestamp;default:now()" json:"created_at"`
	UpdatedAt               time.Time       `gorm:"type:timestamp;default:now()" json:"updated_at"`

	// Relations
	Interviews []Interview `gorm:"foreignKey:CandidateID" json:"interviews,omitempty"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// CandidateFromProfile flattens a parsed profile into the candidate columns.
func CandidateFromProfile(profile *parser.Profile) Candidate {
	candidate := Candidate{
		EducationQualifications: strings.Join(profile.EducationQualifications, "; "),
		TotalExperienceYears:    profile.TotalExperienceYears,
		Skills:                  strings.Join(profile.Skills, ", "),
		ExperienceSummary:       summarizeExperience(profile.Experience),
		Status:                  StatusApplied,
	}
	if profile.Name != nil {
		candidate.Name = *profile.Name
	}
	if profile.Email != nil {
		candidate.Email = *profile.Email
	}
	if profile.Phone != nil {
		candidate.Phone = *profile.Phone
	}
	return candidate
}

func summarizeExperience(records []parser.ExperienceRecord) string {
	lines := make([]string, 0, len(records))
	for _, record := range records {
		var parts []string
		if record.Title != "" {
			parts = append(parts, record.Title)
		}
		if record.Company != "" {
			parts = append(parts, record.Company)
		}
		if record.Dates != "" {
			parts = append(parts, record.Dates)
		}
		line := strings.Join(parts, " | ")
		if len(record.Description) > 0 {
			description := strings.Join(record.Description, " ")
			if line != "" {
				line += ": " + description
			} else {
				line = description
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
