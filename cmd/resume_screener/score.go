package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/pipeline"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single resume against a job requirement",
	Long:  "Decodes one resume document, extracts candidate fields, and scores them against the job requirement, printing the component scores, recommendation, and skill gaps.",
	RunE:  runScore,
}

var (
	scoreResume     string
	scoreJob        string
	scoreVocabulary string
	scoreUseLLM     bool
	scoreAPIKey     string
	scoreModel      string
	scoreOut        string
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to the resume document (required)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to the job requirement JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreVocabulary, "vocabulary", "", "Path to a custom skill vocabulary JSON file")
	scoreCmd.Flags().BoolVar(&scoreUseLLM, "use-llm", false, "Try LLM entity extraction before pattern rules")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	scoreCmd.Flags().StringVar(&scoreModel, "model", "", "Gemini model name")
	scoreCmd.Flags().StringVarP(&scoreOut, "out", "o", "", "Path to write the score result JSON to (optional)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print the extracted candidate record")

	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	// 1. Load the job requirement
	req, err := config.LoadRequirement(scoreJob)
	if err != nil {
		return err
	}

	// 2. Load the skill vocabulary
	vocab, err := loadVocabulary(scoreVocabulary)
	if err != nil {
		return err
	}

	// 3. Set up the optional LLM path
	advanced, closeLLM, err := newAdvancedExtractor(ctx, scoreUseLLM, scoreAPIKey, scoreModel)
	if err != nil {
		return err
	}
	defer closeLLM()

	// 4. Screen the file
	printer := observability.NewPrinter(os.Stdout)
	p := pipeline.New(pipeline.Options{
		Vocabulary: vocab,
		Extraction: extraction.Options{Advanced: advanced},
		Printer:    printer,
		Verbose:    scoreVerbose,
	})

	result, err := p.ScreenFile(ctx, req, scoreResume)
	if err != nil {
		return err
	}

	printer.PrintScoreResult(result)

	// 5. Write the result JSON if requested
	if scoreOut != "" {
		if err := writeJSONFile(scoreOut, result); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully wrote score result to %s\n", scoreOut)
	}

	return nil
}
