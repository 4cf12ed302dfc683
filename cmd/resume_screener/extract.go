package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/pipeline"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract candidate fields from a resume without scoring",
	Long:  "Decodes one resume document and prints the extracted candidate record as JSON. Useful for checking what the field extraction rules (or the LLM path) see before scoring.",
	RunE:  runExtract,
}

var (
	extractResume     string
	extractVocabulary string
	extractUseLLM     bool
	extractAPIKey     string
	extractModel      string
	extractOut        string
)

func init() {
	extractCmd.Flags().StringVarP(&extractResume, "resume", "r", "", "Path to the resume document (required)")
	extractCmd.Flags().StringVar(&extractVocabulary, "vocabulary", "", "Path to a custom skill vocabulary JSON file")
	extractCmd.Flags().BoolVar(&extractUseLLM, "use-llm", false, "Try LLM entity extraction before pattern rules")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "Gemini model name")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Path to write the candidate record JSON to (optional)")

	if err := extractCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	vocab, err := loadVocabulary(extractVocabulary)
	if err != nil {
		return err
	}

	advanced, closeLLM, err := newAdvancedExtractor(ctx, extractUseLLM, extractAPIKey, extractModel)
	if err != nil {
		return err
	}
	defer closeLLM()

	p := pipeline.New(pipeline.Options{
		Vocabulary: vocab,
		Extraction: extraction.Options{Advanced: advanced},
	})

	record, err := p.ExtractFile(ctx, extractResume)
	if err != nil {
		return err
	}

	if extractOut != "" {
		if err := writeJSONFile(extractOut, record); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote candidate record to %s\n", extractOut)
		return nil
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal candidate record: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(data))
	return nil
}
