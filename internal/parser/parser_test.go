package parser

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResumeText = `Jane Doe is a backend engineer based in Austin.
Contact: jane.doe@example.com or 555-123-4567.
B.Tech in Computer Science.
Worked with Acme Corp from Jan 2020 - Dec 2021.
Developed services in Python and Docker.`

func newTestParser(t *testing.T) *ResumeParser {
	t.Helper()

	pipeline, err := NewPipeline("")
	require.NoError(t, err)

	rp := NewResumeParser(pipeline, NewPDFTextExtractor())
	rp.now = func() time.Time {
		return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	}
	return rp
}

func TestParseProfileShape(t *testing.T) {
	rp := newTestParser(t)

	profile, err := rp.Parse(sampleResumeText)
	require.NoError(t, err)

	require.NotNil(t, profile.Email)
	assert.Equal(t, "jane.doe@example.com", *profile.Email)
	require.NotNil(t, profile.Phone)
	assert.Equal(t, "555-123-4567", *profile.Phone)

	assert.Equal(t, []string{"BTech"}, profile.EducationQualifications)
	assert.Contains(t, profile.Skills, "python")
	assert.Contains(t, profile.Skills, "docker")
	assert.GreaterOrEqual(t, profile.TotalExperienceYears, 0.0)
	assert.InDelta(t, 1.9, profile.TotalExperienceYears, 0.0001)
	assert.NotEmpty(t, profile.Experience)
}

func TestParseIsIdempotent(t *testing.T) {
	rp := newTestParser(t)

	first, err := rp.Parse(sampleResumeText)
	require.NoError(t, err)
	second, err := rp.Parse(sampleResumeText)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseSparseTextYieldsSentinels(t *testing.T) {
	rp := newTestParser(t)

	profile, err := rp.Parse("Gardening notes for the spring season.")
	require.NoError(t, err)

	assert.Nil(t, profile.Email)
	assert.Nil(t, profile.Phone)
	assert.Equal(t, []string{NoQualificationsFound}, profile.EducationQualifications)
	assert.Equal(t, []string{NoSkillsIdentified}, profile.Skills)
	assert.Equal(t, 0.0, profile.TotalExperienceYears)
	require.Len(t, profile.Experience, 1)
	assert.Equal(t, NoExperienceFound, profile.Experience[0].Title)
}

func TestExtractName(t *testing.T) {
	tests := []struct {
		name     string
		entities []Entity
		expected string
		found    bool
	}{
		{
			name: "First person entity wins",
			entities: []Entity{
				{Text: "Austin", Label: "GPE"},
				{Text: "Jane Doe", Label: "PERSON"},
				{Text: "John Smith", Label: "PERSON"},
			},
			expected: "Jane Doe",
			found:    true,
		},
		{
			name:     "No person entity",
			entities: []Entity{{Text: "Acme Corp", Label: "ORG"}},
			found:    false,
		},
		{
			name:     "No entities",
			entities: nil,
			found:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractName(tt.entities)
			if !tt.found {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.expected, *result)
		})
	}
}

type fixedTextExtractor struct {
	text string
}

func (f fixedTextExtractor) ExtractText(string) (string, error) {
	return f.text, nil
}

func (f fixedTextExtractor) ExtractTextFromReader(io.ReaderAt, int64) (string, error) {
	return f.text, nil
}

func TestParseFileReturnsExtractedText(t *testing.T) {
	pipeline, err := NewPipeline("")
	require.NoError(t, err)

	rp := NewResumeParser(pipeline, fixedTextExtractor{text: sampleResumeText})
	profile, text, err := rp.ParseFile("resume.pdf")
	require.NoError(t, err)

	assert.Equal(t, sampleResumeText, text)
	require.NotNil(t, profile.Email)
	assert.Equal(t, "jane.doe@example.com", *profile.Email)
}

func TestParseFileTextFreeDocument(t *testing.T) {
	pipeline, err := NewPipeline("")
	require.NoError(t, err)

	rp := NewResumeParser(pipeline, fixedTextExtractor{text: ""})
	profile, text, err := rp.ParseFile("resume.pdf")
	require.NoError(t, err)

	assert.Empty(t, text)
	assert.Nil(t, profile.Email)
	assert.Equal(t, []string{NoQualificationsFound}, profile.EducationQualifications)
}
