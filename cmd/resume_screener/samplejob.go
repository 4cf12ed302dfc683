package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/types"
)

var sampleJobCmd = &cobra.Command{
	Use:   "sample-job",
	Short: "Write a sample job requirement file",
	Long:  "Prints a ready-to-edit Software Engineer job requirement. Use it as a starting point for your own requirement files.",
	RunE:  runSampleJob,
}

var sampleJobOut string

func init() {
	sampleJobCmd.Flags().StringVarP(&sampleJobOut, "out", "o", "", "Path to write the requirement JSON to (default: stdout)")

	rootCmd.AddCommand(sampleJobCmd)
}

// sampleRequirement is the demonstration profile: a mid-level Software
// Engineer with a broad full-stack skill list.
func sampleRequirement() *types.JobRequirement {
	return &types.JobRequirement{
		Title: "Software Engineer",
		RequiredSkills: []string{
			"python", "javascript", "sql", "git", "react", "django", "flask",
			"html", "css", "rest", "json", "agile", "problem solving",
			"communication", "teamwork", "linux", "aws", "docker",
		},
		MinExperienceYears: 3,
		MinEducationLevel:  types.EducationBachelor,
	}
}

func runSampleJob(_ *cobra.Command, _ []string) error {
	req := sampleRequirement()

	if sampleJobOut != "" {
		if err := writeJSONFile(sampleJobOut, req); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote sample job requirement to %s\n", sampleJobOut)
		return nil
	}

	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal job requirement: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(data))
	return nil
}
