package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// requirementFile is the on-disk JSON shape for a job requirement. The
// education level is kept as a raw string so aliases like "Bachelors" or
// "PhD" can be normalized before validation.
type requirementFile struct {
	Title              string   `json:"title"`
	RequiredSkills     []string `json:"required_skills"`
	MinExperienceYears float64  `json:"min_experience_years"`
	MinEducationLevel  string   `json:"min_education_level"`
}

// LoadRequirement loads and validates a job requirement from a JSON file.
// An absent education level means no education requirement.
func LoadRequirement(path string) (*types.JobRequirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read requirement file %s: %w", path, err)
	}

	var file requirementFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse requirement JSON: %w", err)
	}

	level, err := types.ParseEducationLevel(file.MinEducationLevel)
	if err != nil {
		return nil, fmt.Errorf("requirement file %s: %w", path, err)
	}

	req := &types.JobRequirement{
		Title:              strings.TrimSpace(file.Title),
		RequiredSkills:     trimSkills(file.RequiredSkills),
		MinExperienceYears: file.MinExperienceYears,
		MinEducationLevel:  level,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// trimSkills trims whitespace around each entry. Entries that become empty
// are kept so validation can reject them with a clear message.
func trimSkills(skills []string) []string {
	if skills == nil {
		return nil
	}
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
