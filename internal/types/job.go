// Package types provides type definitions for structured data used throughout the resume-screener system.
package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// JobRequirement is the target profile candidates are scored against.
// One requirement is active per screening session; it is immutable once
// scoring begins, and replacing it invalidates all prior scores.
type JobRequirement struct {
	Title              string         `json:"title" validate:"required,min=1"`
	RequiredSkills     []string       `json:"required_skills" validate:"omitempty,dive,min=1"`
	MinExperienceYears float64        `json:"min_experience_years" validate:"gte=0"`
	MinEducationLevel  EducationLevel `json:"min_education_level"`
}

// Validate checks the requirement and returns an error naming the offending
// field. A nil return means the requirement is safe to score against.
func (r *JobRequirement) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return requirementFieldError(fieldErrs[0])
		}
		return fmt.Errorf("job requirement error: %w", err)
	}
	if !r.MinEducationLevel.IsValid() {
		return fmt.Errorf("job requirement error: 'min_education_level' must be one of %s, got %q",
			strings.Join(EducationLevelNames(), ", "), r.MinEducationLevel)
	}
	return nil
}

// requirementFieldError translates a validator failure into a message that
// names the JSON field, per the configuration error contract.
func requirementFieldError(fe validator.FieldError) error {
	switch fe.StructField() {
	case "Title":
		return errors.New("job requirement error: 'title' must not be empty")
	case "MinExperienceYears":
		return errors.New("job requirement error: 'min_experience_years' must be >= 0")
	case "RequiredSkills":
		return errors.New("job requirement error: 'required_skills' must not contain empty entries")
	default:
		return fmt.Errorf("job requirement error: '%s' failed '%s' validation", fe.StructField(), fe.Tag())
	}
}

// Clone returns a deep copy so a validated requirement cannot be mutated
// underneath a running session.
func (r *JobRequirement) Clone() *JobRequirement {
	if r == nil {
		return nil
	}
	clone := *r
	clone.RequiredSkills = append([]string(nil), r.RequiredSkills...)
	return &clone
}
