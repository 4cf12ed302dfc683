package extraction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/types"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567
linkedin.com/in/janedoe | github.com/janedoe

SUMMARY
Software engineer with 6 years of experience in distributed systems.

SKILLS
Python, Golang, PostgreSQL, Kubernetes, AWS

EDUCATION
Master of Science in Computer Science

CERTIFICATIONS
AWS Certified Solutions Architect
`

func TestExtract_FullResume(t *testing.T) {
	extractor := NewExtractor(nil, Options{})

	record := extractor.Extract(context.Background(), sampleResume)
	require.NotNil(t, record)

	assert.NotEqual(t, "", record.ID.String())
	assert.Equal(t, "Jane Doe", record.Name)
	assert.Equal(t, "jane.doe@example.com", record.Email)
	assert.Equal(t, "(555) 123-4567", record.Phone)
	assert.Equal(t, "linkedin.com/in/janedoe", record.LinkedIn)
	assert.Equal(t, "github.com/janedoe", record.GitHub)

	// golang canonicalizes to go; the github profile link also matches the
	// github vocabulary entry. All names lowercase and sorted.
	assert.Equal(t, []string{"aws", "github", "go", "kubernetes", "postgresql", "python"}, record.Skills)

	assert.InDelta(t, 6, record.ExperienceYears, 1e-9)
	assert.Equal(t, types.EducationMaster, record.EducationLevel)
	assert.NotEmpty(t, record.Certifications)

	assert.False(t, record.NeedsReview)
	assert.Empty(t, record.ReviewReason)
	assert.Equal(t, types.ExtractorPatterns, record.Extractor)
	assert.False(t, record.ExtractedAt.IsZero())
}

func TestExtract_EmptyText(t *testing.T) {
	extractor := NewExtractor(nil, Options{})

	for _, text := range []string{"", "   \n\t\n  "} {
		record := extractor.Extract(context.Background(), text)
		require.NotNil(t, record)
		assert.True(t, record.NeedsReview)
		assert.Equal(t, ReviewReasonNoText, record.ReviewReason)
		assert.Equal(t, types.EducationUnknown, record.EducationLevel)
		assert.Empty(t, record.Skills)
	}
}

func TestExtract_NoFields(t *testing.T) {
	extractor := NewExtractor(nil, Options{})

	record := extractor.Extract(context.Background(), "@@@@\n####\n....")
	require.NotNil(t, record)
	assert.True(t, record.NeedsReview)
	assert.Equal(t, ReviewReasonNoFields, record.ReviewReason)
	assert.Equal(t, types.ExtractorPatterns, record.Extractor)
}

func TestExtract_MaxTextLength(t *testing.T) {
	extractor := NewExtractor(nil, Options{MaxTextLength: 30})

	text := strings.Repeat("x", 30) + " python and kubernetes"
	record := extractor.Extract(context.Background(), text)
	assert.Empty(t, record.Skills)

	unbounded := NewExtractor(nil, Options{MaxTextLength: -1})
	record = unbounded.Extract(context.Background(), text)
	assert.Equal(t, []string{"kubernetes", "python"}, record.Skills)
}

func TestExtractFromDocument_StampsSource(t *testing.T) {
	extractor := NewExtractor(nil, Options{})
	doc := &ingestion.Document{Path: "resumes/jane.pdf", Text: sampleResume}

	record := extractor.ExtractFromDocument(context.Background(), doc)
	assert.Equal(t, "resumes/jane.pdf", record.SourceFile)
	assert.Equal(t, "Jane Doe", record.Name)
}

// fakeEntityExtractor drives the advanced path in tests.
type fakeEntityExtractor struct {
	entities *llm.Entities
	err      error
	calls    int
}

func (f *fakeEntityExtractor) ExtractEntities(context.Context, string) (*llm.Entities, error) {
	f.calls++
	return f.entities, f.err
}

func TestExtract_AdvancedPath(t *testing.T) {
	fake := &fakeEntityExtractor{
		entities: &llm.Entities{
			Name:            "Jane Doe",
			Email:           "jane@example.com",
			Skills:          []string{"Python", "golang", "python"},
			ExperienceYears: 120,
			EducationLevel:  "Master",
			Certifications:  []string{"CKA"},
		},
	}
	extractor := NewExtractor(nil, Options{Advanced: fake})

	record := extractor.Extract(context.Background(), sampleResume)
	require.Equal(t, 1, fake.calls)

	assert.Equal(t, types.ExtractorLLM, record.Extractor)
	assert.Equal(t, "Jane Doe", record.Name)
	assert.Equal(t, []string{"go", "python"}, record.Skills)
	assert.InDelta(t, 50, record.ExperienceYears, 1e-9, "implausible years clamp to the maximum")
	assert.Equal(t, types.EducationMaster, record.EducationLevel)
	assert.Equal(t, []string{"CKA"}, record.Certifications)
	assert.False(t, record.NeedsReview)
}

func TestExtract_AdvancedErrorFallsBack(t *testing.T) {
	fake := &fakeEntityExtractor{err: errors.New("model unavailable")}
	extractor := NewExtractor(nil, Options{Advanced: fake})

	record := extractor.Extract(context.Background(), sampleResume)
	require.Equal(t, 1, fake.calls)

	assert.Equal(t, types.ExtractorPatterns, record.Extractor)
	assert.Equal(t, "Jane Doe", record.Name)
	assert.Contains(t, record.Skills, "python")
}

func TestExtract_AdvancedEmptyFallsBack(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeEntityExtractor
	}{
		{name: "nil entities", fake: &fakeEntityExtractor{}},
		{name: "empty entities", fake: &fakeEntityExtractor{entities: &llm.Entities{}}},
		{name: "unknown education only", fake: &fakeEntityExtractor{entities: &llm.Entities{EducationLevel: "unknown"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := NewExtractor(nil, Options{Advanced: tt.fake})
			record := extractor.Extract(context.Background(), sampleResume)
			assert.Equal(t, types.ExtractorPatterns, record.Extractor)
			assert.Equal(t, "Jane Doe", record.Name)
		})
	}
}

func TestExtract_AdvancedBadEducationDegradesToUnknown(t *testing.T) {
	fake := &fakeEntityExtractor{
		entities: &llm.Entities{Name: "Jane Doe", EducationLevel: "wizardry"},
	}
	extractor := NewExtractor(nil, Options{Advanced: fake})

	record := extractor.Extract(context.Background(), sampleResume)
	assert.Equal(t, types.ExtractorLLM, record.Extractor)
	assert.Equal(t, types.EducationUnknown, record.EducationLevel)
}
