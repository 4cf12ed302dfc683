package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"requirement": "job.json",
		"vocabulary": "skills.json",
		"max_text_length": 20000,
		"workers": 4,
		"use_llm": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "job.json", cfg.Requirement)
	assert.Equal(t, "skills.json", cfg.Vocabulary)
	assert.Equal(t, 20000, cfg.MaxTextLength)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.UseLLM)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeWorkers(t *testing.T) {
	cfg := &Config{
		Workers: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}

func TestValidate_MissingRequirementFile(t *testing.T) {
	cfg := &Config{
		Requirement: "/nonexistent/job.json",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requirement file not found")
}

func TestValidate_MissingVocabularyFile(t *testing.T) {
	cfg := &Config{
		Vocabulary: "/nonexistent/skills.json",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "vocabulary file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	reqPath := filepath.Join(dir, "job.json")
	require.NoError(t, os.WriteFile(reqPath, []byte(`{}`), 0644))

	cfg := &Config{
		Requirement: reqPath,
		Workers:     8,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Requirement:   "default-job.json",
		Vocabulary:    "default-skills.json",
		Model:         "gemini-2.5-flash-lite",
		MaxTextLength: 50000,
		Workers:       4,
	}

	partial := Config{
		Requirement: "custom-job.json",
		APIKey:      "custom-key",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom-job.json", merged.Requirement)
	assert.Equal(t, "custom-key", merged.APIKey)

	// Default values should fill in empty fields
	assert.Equal(t, "default-skills.json", merged.Vocabulary)
	assert.Equal(t, "gemini-2.5-flash-lite", merged.Model)
	assert.Equal(t, 50000, merged.MaxTextLength)
	assert.Equal(t, 4, merged.Workers)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Requirement: "job.json",
		Workers:     2,
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "job.json", merged.Requirement)
	assert.Equal(t, 2, merged.Workers)
}

func writeRequirement(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRequirement_Valid(t *testing.T) {
	path := writeRequirement(t, `{
		"title": "Backend Engineer",
		"required_skills": [" Go ", "python"],
		"min_experience_years": 3,
		"min_education_level": "Bachelors"
	}`)

	req, err := LoadRequirement(path)
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", req.Title)
	assert.Equal(t, []string{"Go", "python"}, req.RequiredSkills)
	assert.InDelta(t, 3, req.MinExperienceYears, 0.001)
	assert.Equal(t, types.EducationBachelor, req.MinEducationLevel)
}

func TestLoadRequirement_AbsentEducationMeansUnknown(t *testing.T) {
	path := writeRequirement(t, `{"title": "Analyst"}`)

	req, err := LoadRequirement(path)
	require.NoError(t, err)

	assert.Equal(t, types.EducationUnknown, req.MinEducationLevel)
	assert.Empty(t, req.RequiredSkills)
}

func TestLoadRequirement_UnknownEducationLevel(t *testing.T) {
	path := writeRequirement(t, `{"title": "Analyst", "min_education_level": "wizardry"}`)

	req, err := LoadRequirement(path)
	assert.Error(t, err)
	assert.Nil(t, req)
	assert.Contains(t, err.Error(), "unknown education level")
}

func TestLoadRequirement_EmptyTitle(t *testing.T) {
	path := writeRequirement(t, `{"title": "  "}`)

	req, err := LoadRequirement(path)
	assert.Error(t, err)
	assert.Nil(t, req)
	assert.Contains(t, err.Error(), "'title'")
}

func TestLoadRequirement_FileNotFound(t *testing.T) {
	req, err := LoadRequirement("/nonexistent/job.json")
	assert.Error(t, err)
	assert.Nil(t, req)
	assert.Contains(t, err.Error(), "failed to read requirement file")
}

func TestLoadRequirement_MalformedJSON(t *testing.T) {
	path := writeRequirement(t, `{"title":`)

	req, err := LoadRequirement(path)
	assert.Error(t, err)
	assert.Nil(t, req)
	assert.Contains(t, err.Error(), "failed to parse requirement JSON")
}
