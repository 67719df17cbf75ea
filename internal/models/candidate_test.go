package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resumeworks/ats-parser/internal/parser"
)

func strPtr(s string) *string { return &s }

func TestCandidateFromProfile(t *testing.T) {
	profile := &parser.Profile{
		Name:                    strPtr("Jane Doe"),
		Email:                   strPtr("jane.doe@example.com"),
		Phone:                   strPtr("555-123-4567"),
		EducationQualifications: []string{"BTech", "MCA"},
		TotalExperienceYears:    4.2,
		Experience: []parser.ExperienceRecord{
			{
				Company:     "Acme Corp",
				Dates:       "Jan 2020 - Dec 2021",
				Description: []string{"Worked with Acme Corp", "Built the billing stack"},
			},
		},
		Skills: []string{"python", "docker"},
	}

	candidate := CandidateFromProfile(profile)

	assert.Equal(t, "Jane Doe", candidate.Name)
	assert.Equal(t, "jane.doe@example.com", candidate.Email)
	assert.Equal(t, "555-123-4567", candidate.Phone)
	assert.Equal(t, "BTech; MCA", candidate.EducationQualifications)
	assert.Equal(t, 4.2, candidate.TotalExperienceYears)
	assert.Equal(t, "python, docker", candidate.Skills)
	assert.Equal(t, "Acme Corp | Jan 2020 - Dec 2021: Worked with Acme Corp Built the billing stack", candidate.ExperienceSummary)
	assert.Equal(t, StatusApplied, candidate.Status)
}

func TestCandidateFromProfileMissingFields(t *testing.T) {
	profile := &parser.Profile{
		EducationQualifications: []string{parser.NoQualificationsFound},
		Experience:              []parser.ExperienceRecord{{Title: parser.NoExperienceFound, Description: []string{}}},
		Skills:                  []string{parser.NoSkillsIdentified},
	}

	candidate := CandidateFromProfile(profile)

	assert.Empty(t, candidate.Name)
	assert.Empty(t, candidate.Email)
	assert.Empty(t, candidate.Phone)
	assert.Equal(t, parser.NoQualificationsFound, candidate.EducationQualifications)
	assert.Equal(t, parser.NoExperienceFound, candidate.ExperienceSummary)
	assert.Equal(t, 0.0, candidate.TotalExperienceYears)
}

func TestCandidateStatusValid(t *testing.T) {
	tests := []struct {
		name   string
		status CandidateStatus
		valid  bool
	}{
		{"Applied", StatusApplied, true},
		{"Shortlisted", StatusShortlisted, true},
		{"Interview scheduled", StatusInterviewScheduled, true},
		{"Hired", StatusHired, true},
		{"Rejected", StatusRejected, true},
		{"Unknown", CandidateStatus("archived"), false},
		{"Empty", CandidateStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.Valid())
		})
	}
}
