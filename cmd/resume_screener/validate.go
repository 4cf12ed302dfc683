package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/skills"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate job requirement, vocabulary, and config files",
	Long:  "Checks the given files against their JSON Schemas and semantic rules, reporting every problem with the offending field named. Exits non-zero when any file fails.",
	RunE:  runValidate,
}

var (
	validateJob        string
	validateVocabulary string
	validateConfig     string
)

func init() {
	validateCmd.Flags().StringVarP(&validateJob, "job", "j", "", "Path to a job requirement JSON file")
	validateCmd.Flags().StringVar(&validateVocabulary, "vocabulary", "", "Path to a skill vocabulary JSON file")
	validateCmd.Flags().StringVar(&validateConfig, "config", "", "Path to a config JSON file")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	checks := []struct {
		kind string
		path string
		run  func(path string) error
	}{
		{schemas.KindRequirement, validateJob, validateRequirementFile},
		{schemas.KindVocabulary, validateVocabulary, validateVocabularyFile},
		{schemas.KindConfig, validateConfig, validateConfigFile},
	}

	ran := 0
	failed := 0
	for _, check := range checks {
		if check.path == "" {
			continue
		}
		ran++
		if err := check.run(check.path); err != nil {
			failed++
			_, _ = fmt.Fprintf(os.Stdout, "✗ %s %s\n  %v\n", check.kind, check.path, err)
			continue
		}
		_, _ = fmt.Fprintf(os.Stdout, "✓ %s %s\n", check.kind, check.path)
	}

	if ran == 0 {
		return fmt.Errorf("nothing to validate; provide --job, --vocabulary, or --config")
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, ran)
	}
	return nil
}

// validateRequirementFile runs the schema check, then the semantic rules
// (education level parse, field constraints) via the loader.
func validateRequirementFile(path string) error {
	if err := schemas.ValidateFile(schemas.KindRequirement, path); err != nil {
		return err
	}
	_, err := config.LoadRequirement(path)
	return err
}

// validateVocabularyFile runs the schema check, then compiles the vocabulary
// to surface synonym collisions and empty names.
func validateVocabularyFile(path string) error {
	if err := schemas.ValidateFile(schemas.KindVocabulary, path); err != nil {
		return err
	}
	_, err := skills.Load(path)
	return err
}

func validateConfigFile(path string) error {
	if err := schemas.ValidateFile(schemas.KindConfig, path); err != nil {
		return err
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}
	return cfg.Validate()
}
