// Package extraction turns decoded resume text into structured candidate
// records using regex and keyword rules over normalized text. Extraction
// never fails: every field independently defaults to unset/zero/unknown, and
// a document that yields nothing still produces a valid record flagged for
// manual review.
package extraction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// DefaultMaxTextLength bounds how many runes of a document are pattern
// matched. Pathological inputs stay cheap; real resumes are far smaller.
const DefaultMaxTextLength = 50000

// Review reasons attached to flagged records.
const (
	ReviewReasonNoText   = "document produced no text; extraction failed"
	ReviewReasonNoFields = "no fields could be extracted; manual review recommended"
)

// Options configures an Extractor. The zero value is usable: default text
// bound, no advanced extractor.
type Options struct {
	// MaxTextLength caps the runes examined per document. Zero means
	// DefaultMaxTextLength; negative disables the bound.
	MaxTextLength int
	// Advanced, when set, is tried before the pattern rules. Any failure
	// falls back to patterns deterministically; the record shape is the
	// same on both paths.
	Advanced llm.EntityExtractor
}

// Extractor applies the field extraction rules. Safe for concurrent use.
type Extractor struct {
	vocab         *skills.Vocabulary
	maxTextLength int
	advanced      llm.EntityExtractor
}

// NewExtractor builds an Extractor over the given vocabulary. A nil
// vocabulary falls back to the built-in default.
func NewExtractor(vocab *skills.Vocabulary, opts Options) *Extractor {
	if vocab == nil {
		vocab = skills.Default()
	}
	maxLen := opts.MaxTextLength
	if maxLen == 0 {
		maxLen = DefaultMaxTextLength
	}
	return &Extractor{
		vocab:         vocab,
		maxTextLength: maxLen,
		advanced:      opts.Advanced,
	}
}

// Extract produces a CandidateRecord from raw document text. The advanced
// path is attempted first when configured; the pattern path is the fallback
// and the default.
func (e *Extractor) Extract(ctx context.Context, rawText string) *types.CandidateRecord {
	record := &types.CandidateRecord{
		ID:          uuid.New(),
		RawText:     rawText,
		Skills:      []string{},
		ExtractedAt: time.Now().UTC(),
		Extractor:   types.ExtractorPatterns,
	}

	bounded := ingestion.Truncate(rawText, e.maxTextLength)
	clean := ingestion.CleanText(bounded)
	if clean == "" {
		record.EducationLevel = types.EducationUnknown
		record.NeedsReview = true
		record.ReviewReason = ReviewReasonNoText
		return record
	}

	if e.advanced != nil {
		if ok := e.extractAdvanced(ctx, clean, record); ok {
			return record
		}
	}

	e.extractPatterns(clean, record)
	return record
}

// ExtractFromDocument extracts from a decoded document and stamps the record
// with its source file.
func (e *Extractor) ExtractFromDocument(ctx context.Context, doc *ingestion.Document) *types.CandidateRecord {
	record := e.Extract(ctx, doc.Text)
	record.SourceFile = doc.Path
	return record
}

// extractPatterns fills the record from the regex/keyword rules.
func (e *Extractor) extractPatterns(clean string, record *types.CandidateRecord) {
	normalized := ingestion.NormalizeForMatching(clean)

	record.Name = extractName(clean)
	record.Email = extractEmail(clean)
	record.Phone = extractPhone(clean)
	record.LinkedIn = extractLinkedIn(normalized)
	record.GitHub = extractGitHub(normalized)
	record.Skills = e.vocab.Find(normalized)
	record.ExperienceYears = extractExperienceYears(normalized)
	record.EducationLevel = extractEducationLevel(normalized)
	record.Certifications = extractCertifications(clean)
	record.Extractor = types.ExtractorPatterns

	flagIfEmpty(record)
}

// extractAdvanced asks the configured entity extractor and sanitizes its
// answer into the record. It reports false when the pattern path should run
// instead: transport errors, malformed output, or an answer with no fields.
func (e *Extractor) extractAdvanced(ctx context.Context, clean string, record *types.CandidateRecord) bool {
	entities, err := e.advanced.ExtractEntities(ctx, clean)
	if err != nil || entities == nil || entities.Empty() {
		return false
	}

	record.Name = entities.Name
	record.Email = entities.Email
	record.Phone = entities.Phone
	record.LinkedIn = entities.LinkedIn
	record.GitHub = entities.GitHub
	record.Skills = e.vocab.CanonicalizeSet(entities.Skills)
	record.ExperienceYears = clampYears(entities.ExperienceYears)
	record.Certifications = entities.Certifications
	record.Extractor = types.ExtractorLLM

	level, err := types.ParseEducationLevel(entities.EducationLevel)
	if err != nil {
		level = types.EducationUnknown
	}
	record.EducationLevel = level

	flagIfEmpty(record)
	return true
}

// flagIfEmpty marks records where every field defaulted.
func flagIfEmpty(record *types.CandidateRecord) {
	if record.Name == "" && record.Email == "" && record.Phone == "" &&
		len(record.Skills) == 0 && record.ExperienceYears == 0 &&
		record.EducationLevel == types.EducationUnknown {
		record.NeedsReview = true
		record.ReviewReason = ReviewReasonNoFields
	}
}
