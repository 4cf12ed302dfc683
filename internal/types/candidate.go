// Package types provides type definitions for structured data used throughout the resume-screener system.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Extractor path markers recorded on each CandidateRecord.
const (
	ExtractorPatterns = "patterns"
	ExtractorLLM      = "llm"
)

// CandidateRecord holds the structured fields extracted from one resume document.
// A record is immutable after creation and owned by the pipeline run that
// produced it. Every field other than ID and ExtractedAt may legitimately be
// empty: extraction never fails, it defaults.
type CandidateRecord struct {
	ID         uuid.UUID `json:"id"`
	SourceFile string    `json:"source_file,omitempty"`
	// RawText is the decoded document text the fields were extracted from.
	// It is kept for re-scoring and review but excluded from serialization.
	RawText string `json:"-"`

	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`

	// Skills holds canonical skill names, deduplicated and sorted.
	Skills          []string       `json:"skills"`
	ExperienceYears float64        `json:"experience_years"`
	EducationLevel  EducationLevel `json:"education_level"`
	Certifications  []string       `json:"certifications,omitempty"`

	// NeedsReview marks records that produced no usable fields (empty or
	// undecodable documents). The batch continues; a reviewer follows up.
	NeedsReview  bool   `json:"needs_review,omitempty"`
	ReviewReason string `json:"review_reason,omitempty"`

	ExtractedAt time.Time `json:"extracted_at"`
	// Extractor records which path produced the fields: "patterns" or "llm".
	Extractor string `json:"extractor,omitempty"`
}

// HasSkill reports whether the record lists the given canonical skill name.
func (c *CandidateRecord) HasSkill(canonical string) bool {
	for _, s := range c.Skills {
		if s == canonical {
			return true
		}
	}
	return false
}

// DisplayName returns the extracted name, or the source file name when no
// name was found, so reports always have something to show per candidate.
func (c *CandidateRecord) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	if c.SourceFile != "" {
		return c.SourceFile
	}
	return "(unnamed candidate)"
}
