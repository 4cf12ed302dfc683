// Package llm - entities.go provides LLM-backed entity extraction for the
// advanced extraction capability.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/prompts"
)

// promptTextLimit bounds how much resume text is sent to the model.
const promptTextLimit = 12000

// Entities is the structured answer the model returns for one resume. The
// fields mirror what the pattern rules extract so both paths produce the
// same record shape.
type Entities struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	LinkedIn        string   `json:"linkedin"`
	GitHub          string   `json:"github"`
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience_years"`
	EducationLevel  string   `json:"education_level"`
	Certifications  []string `json:"certifications"`
}

// Empty reports whether the model produced no usable fields at all, in
// which case callers fall back to the pattern path.
func (e *Entities) Empty() bool {
	return e.Name == "" && e.Email == "" && e.Phone == "" &&
		len(e.Skills) == 0 && e.ExperienceYears == 0 &&
		(e.EducationLevel == "" || strings.EqualFold(e.EducationLevel, "unknown"))
}

// EntityExtractor extracts structured entities from resume text.
type EntityExtractor interface {
	ExtractEntities(ctx context.Context, text string) (*Entities, error)
}

// GeminiExtractor implements EntityExtractor over a Client.
type GeminiExtractor struct {
	client Client
}

// NewGeminiExtractor wraps a client as an entity extractor.
func NewGeminiExtractor(client Client) *GeminiExtractor {
	return &GeminiExtractor{client: client}
}

// ExtractEntities asks the model for the structured fields of one resume.
// Any transport or parse failure is returned to the caller, which is
// expected to fall back to pattern extraction.
func (g *GeminiExtractor) ExtractEntities(ctx context.Context, text string) (*Entities, error) {
	if g.client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}

	template, err := prompts.Get("extraction.json", "extract-candidate-entities")
	if err != nil {
		return nil, err
	}

	bounded := text
	if len(bounded) > promptTextLimit {
		bounded = bounded[:promptTextLimit]
	}
	prompt := prompts.Format(template, map[string]string{
		"ResumeText": bounded,
	})

	raw, err := g.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &ExtractionError{Message: "entity extraction call failed", Cause: err}
	}

	var entities Entities
	if err := json.Unmarshal([]byte(CleanJSONBlock(raw)), &entities); err != nil {
		return nil, &ExtractionError{Message: "entity extraction returned malformed JSON", Cause: err}
	}

	entities.trimSpace()
	return &entities, nil
}

// trimSpace normalizes surrounding whitespace on every string field.
func (e *Entities) trimSpace() {
	e.Name = strings.TrimSpace(e.Name)
	e.Email = strings.TrimSpace(e.Email)
	e.Phone = strings.TrimSpace(e.Phone)
	e.LinkedIn = strings.TrimSpace(e.LinkedIn)
	e.GitHub = strings.TrimSpace(e.GitHub)
	e.EducationLevel = strings.TrimSpace(e.EducationLevel)
	for i, s := range e.Skills {
		e.Skills[i] = strings.TrimSpace(s)
	}
	for i, c := range e.Certifications {
		e.Certifications[i] = strings.TrimSpace(c)
	}
}

// ExtractionError reports a failed advanced extraction attempt.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
