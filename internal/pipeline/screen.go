// Package pipeline provides the high-level orchestration for screening runs:
// decode, extract, score, aggregate.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/results"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// Warning records a non-fatal problem with one input file. Warnings surface
// to the user alongside results; they never abort a batch.
type Warning struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// String formats the warning for display.
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Path, w.Message)
}

// Options holds configuration for building a Pipeline.
type Options struct {
	// Vocabulary is the skill vocabulary for extraction and scoring.
	// Nil selects the built-in default.
	Vocabulary *skills.Vocabulary
	// Extraction configures the field extractor, including the optional
	// advanced (LLM) path.
	Extraction extraction.Options
	// Workers caps concurrent file processing. Zero or negative selects
	// runtime.NumCPU().
	Workers int
	// Printer receives progress and verbose output. Nil discards it.
	Printer *observability.Printer
	Verbose bool
}

// Pipeline runs the screening stages over resume files. Safe for concurrent
// use; each batch gets its own session.
type Pipeline struct {
	extractor *extraction.Extractor
	engine    *scoring.Engine
	printer   *observability.Printer
	workers   int
	verbose   bool
}

// New builds a Pipeline from options.
func New(opts Options) *Pipeline {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	printer := opts.Printer
	if printer == nil {
		printer = observability.NewPrinter(io.Discard)
	}
	return &Pipeline{
		extractor: extraction.NewExtractor(opts.Vocabulary, opts.Extraction),
		engine:    scoring.NewEngine(opts.Vocabulary),
		printer:   printer,
		workers:   workers,
		verbose:   opts.Verbose,
	}
}

// ScreenFile decodes, extracts, and scores a single resume file. Unlike
// batch mode, a decode failure here is an error: with one file there is no
// batch to keep going.
func (p *Pipeline) ScreenFile(ctx context.Context, req *types.JobRequirement, path string) (*types.ScoreResult, error) {
	if req == nil {
		return nil, fmt.Errorf("job requirement is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doc, err := ingestion.DecodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("decoding %s failed: %w", path, err)
	}

	record := p.extractor.ExtractFromDocument(ctx, doc)
	if p.verbose {
		p.printer.PrintCandidate(record)
	}

	return p.engine.Score(record, req), nil
}

// ExtractFile decodes one resume file and returns the extracted record
// without scoring it.
func (p *Pipeline) ExtractFile(ctx context.Context, path string) (*types.CandidateRecord, error) {
	doc, err := ingestion.DecodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("decoding %s failed: %w", path, err)
	}
	return p.extractor.ExtractFromDocument(ctx, doc), nil
}

// ScreenBatch screens every file against the requirement and returns the
// populated session plus per-file warnings sorted by path. Files are
// processed concurrently but results keep submission order; aggregation is a
// collect-and-sort step after all workers finish. The only errors are an
// invalid requirement and context cancellation.
func (p *Pipeline) ScreenBatch(ctx context.Context, req *types.JobRequirement, paths []string) (*results.Session, []Warning, error) {
	session := results.NewSession()
	if err := session.SetRequirement(req); err != nil {
		return nil, nil, err
	}

	p.printer.Stepf("Step 1/3: Validated job requirement: %s", req.Title)
	if p.verbose {
		p.printer.PrintRequirement(req)
	}

	p.printer.Stepf("Step 2/3: Screening %d resumes with %d workers...", len(paths), p.workers)

	// Indexed slots keep submission order regardless of completion order.
	slots := make([]*types.ScoreResult, len(paths))
	var (
		mu       sync.Mutex
		warnings []Warning
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			record, warning := p.screenOne(gCtx, path)
			if warning != nil {
				mu.Lock()
				warnings = append(warnings, *warning)
				mu.Unlock()
			}
			slots[i] = p.engine.Score(record, req)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	p.printer.Stepf("Step 3/3: Aggregating %d results...", len(slots))
	for _, result := range slots {
		session.Add(result)
	}

	// Workers append as they finish; sort so output is deterministic.
	sort.Slice(warnings, func(i, j int) bool {
		return warnings[i].Path < warnings[j].Path
	})

	return session, warnings, nil
}

// screenOne decodes and extracts a single file for batch mode. Decode
// failures and empty documents degrade to a flagged record plus a warning so
// the file still appears in the results.
func (p *Pipeline) screenOne(ctx context.Context, path string) (*types.CandidateRecord, *Warning) {
	doc, err := ingestion.DecodeFile(path)
	if err != nil {
		record := p.extractor.Extract(ctx, "")
		record.SourceFile = path
		return record, &Warning{Path: path, Message: err.Error()}
	}

	record := p.extractor.ExtractFromDocument(ctx, doc)
	if p.verbose {
		p.printer.PrintCandidate(record)
	}
	if record.NeedsReview && record.ReviewReason == extraction.ReviewReasonNoText {
		return record, &Warning{Path: path, Message: record.ReviewReason}
	}
	return record, nil
}
