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
	"github.com/jonathan/resume-screener/internal/results"
	"github.com/jonathan/resume-screener/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Screen a directory or glob of resumes against a job requirement",
	Long: `Screens every resume in a directory (or matching a glob) against the job requirement, ranks the candidates, and prints a batch summary. Results can be filtered and exported as CSV or JSON.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runBatch,
}

var (
	batchConfigPath    string
	batchDir           string
	batchGlob          string
	batchJob           string
	batchVocabulary    string
	batchWorkers       int
	batchMaxTextLength int
	batchUseLLM        bool
	batchAPIKey        string
	batchModel         string
	batchMinScore      int
	batchMaxScore      int
	batchMinExperience float64
	batchSkill         string
	batchTop           int
	batchExport        string
	batchOut           string
	batchVerbose       bool
)

func init() {
	// Config file flag (processed first)
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory of resume files (mutually exclusive with --glob)")
	batchCmd.Flags().StringVar(&batchGlob, "glob", "", "Glob pattern of resume files (mutually exclusive with --dir)")
	batchCmd.Flags().StringVarP(&batchJob, "job", "j", "", "Path to the job requirement JSON file")
	batchCmd.Flags().StringVar(&batchVocabulary, "vocabulary", "", "Path to a custom skill vocabulary JSON file")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Concurrent files processed (0 selects the CPU count)")
	batchCmd.Flags().IntVar(&batchMaxTextLength, "max-text-length", 0, "Runes of document text examined per resume (negative disables the bound)")
	batchCmd.Flags().BoolVar(&batchUseLLM, "use-llm", false, "Try LLM entity extraction before pattern rules")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	batchCmd.Flags().StringVar(&batchModel, "model", "", "Gemini model name")

	// Result filters
	batchCmd.Flags().IntVar(&batchMinScore, "min-score", 0, "Keep only candidates with at least this total score")
	batchCmd.Flags().IntVar(&batchMaxScore, "max-score", 100, "Keep only candidates with at most this total score")
	batchCmd.Flags().Float64Var(&batchMinExperience, "min-experience", 0, "Keep only candidates with at least this many years of experience")
	batchCmd.Flags().StringVar(&batchSkill, "skill", "", "Keep only candidates listing this skill (synonyms accepted)")
	batchCmd.Flags().IntVar(&batchTop, "top", 0, "Keep only the N highest-ranked candidates (0 keeps all)")

	// Export
	batchCmd.Flags().StringVar(&batchExport, "export", "", "Export format: csv or json (requires --out)")
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "Path to write the export to")

	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed progress information")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if batchConfigPath != "" {
		loadedCfg, err := config.LoadConfig(batchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if batchVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", batchConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("job") {
		cfg.Requirement = batchJob
	}
	if cmd.Flags().Changed("vocabulary") {
		cfg.Vocabulary = batchVocabulary
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = batchWorkers
	}
	if cmd.Flags().Changed("max-text-length") {
		cfg.MaxTextLength = batchMaxTextLength
	}
	if cmd.Flags().Changed("use-llm") {
		cfg.UseLLM = batchUseLLM
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = batchAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = batchModel
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = batchVerbose
	}

	// Step 3: Validate required fields
	if cfg.Requirement == "" {
		return fmt.Errorf("--job must be provided (via flag or config)")
	}
	if batchExport != "" {
		if batchExport != "csv" && batchExport != "json" {
			return fmt.Errorf("unsupported export format %q (expected csv or json)", batchExport)
		}
		if batchOut == "" {
			return fmt.Errorf("--export requires --out")
		}
	}

	// Step 4: Collect resume files
	paths, err := collectResumePaths(batchDir, batchGlob)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no resume files found")
	}

	// Step 5: Load the requirement and vocabulary
	req, err := config.LoadRequirement(cfg.Requirement)
	if err != nil {
		return err
	}
	vocab, err := loadVocabulary(cfg.Vocabulary)
	if err != nil {
		return err
	}

	// Step 6: Build and run the pipeline
	advanced, closeLLM, err := newAdvancedExtractor(ctx, cfg.UseLLM, cfg.APIKey, cfg.Model)
	if err != nil {
		return err
	}
	defer closeLLM()

	printer := observability.NewPrinter(os.Stdout)
	p := pipeline.New(pipeline.Options{
		Vocabulary: vocab,
		Extraction: extraction.Options{
			MaxTextLength: cfg.MaxTextLength,
			Advanced:      advanced,
		},
		Workers: cfg.Workers,
		Printer: printer,
		Verbose: cfg.Verbose,
	})

	session, warnings, err := p.ScreenBatch(ctx, req, paths)
	if err != nil {
		return err
	}

	// Step 7: Rank and filter
	var filters []results.Filter
	if batchMinScore > 0 || batchMaxScore < 100 {
		filters = append(filters, results.ByScoreRange(batchMinScore, batchMaxScore))
	}
	if batchMinExperience > 0 {
		filters = append(filters, results.ByMinExperience(batchMinExperience))
	}
	if batchSkill != "" {
		filters = append(filters, results.BySkill(vocab.Canonicalize(batchSkill)))
	}
	ranked := results.Apply(session.Ranked(), filters...)
	if batchTop > 0 && len(ranked) > batchTop {
		ranked = ranked[:batchTop]
	}

	// Step 8: Report. The summary covers the whole batch; filters only
	// select which candidates are listed and exported.
	printer.PrintRankedResults(ranked)
	printer.PrintSummary(results.Summarize(session.Results()))
	if len(warnings) > 0 {
		lines := make([]string, len(warnings))
		for i, w := range warnings {
			lines[i] = w.String()
		}
		printer.PrintWarnings(lines)
	}

	// Step 9: Export if requested
	if batchExport != "" {
		if err := exportResults(batchExport, batchOut, ranked); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Successfully exported %d results to %s\n", len(ranked), batchOut)
	}

	return nil
}

// exportResults writes the ranked results to path in the given format.
func exportResults(format, path string, ranked []*types.ScoreResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case "csv":
		return results.ExportCSV(f, ranked)
	case "json":
		return results.ExportJSON(f, ranked)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}
