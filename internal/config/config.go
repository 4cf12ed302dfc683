// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Requirement string `json:"requirement,omitempty"` // Path to the job requirement JSON file
	Vocabulary  string `json:"vocabulary,omitempty"`  // Path to a custom skill vocabulary JSON file

	// Limits
	MaxTextLength int `json:"max_text_length,omitempty"` // Runes of document text examined per resume
	Workers       int `json:"workers,omitempty"`         // Concurrent files processed in batch mode

	// Behavior
	APIKey  string `json:"api_key,omitempty"` // Gemini API key for advanced extraction
	Model   string `json:"model,omitempty"`   // Gemini model name
	UseLLM  bool   `json:"use_llm,omitempty"` // Try LLM entity extraction before pattern rules
	Verbose bool   `json:"verbose,omitempty"` // Print detailed progress information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate numeric ranges
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Requirement != "" {
		if _, err := os.Stat(c.Requirement); os.IsNotExist(err) {
			return fmt.Errorf("config error: requirement file not found: %s", c.Requirement)
		}
	}
	if c.Vocabulary != "" {
		if _, err := os.Stat(c.Vocabulary); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.Vocabulary)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Requirement == "" {
		result.Requirement = defaults.Requirement
	}
	if result.Vocabulary == "" {
		result.Vocabulary = defaults.Vocabulary
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}

	// Int fields: use default if zero
	if result.MaxTextLength == 0 {
		result.MaxTextLength = defaults.MaxTextLength
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
