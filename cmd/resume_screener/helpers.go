package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/skills"
)

// loadVocabulary returns the vocabulary at path, or the built-in default
// when no path is given.
func loadVocabulary(path string) (*skills.Vocabulary, error) {
	if path == "" {
		return skills.Default(), nil
	}
	return skills.Load(path)
}

// newAdvancedExtractor builds the optional LLM entity extractor. When useLLM
// is false it returns a nil extractor, which selects the pattern path. The
// returned cleanup function is safe to call unconditionally.
func newAdvancedExtractor(ctx context.Context, useLLM bool, apiKey, model string) (llm.EntityExtractor, func(), error) {
	if !useLLM {
		return nil, func() {}, nil
	}

	if apiKey == "" {
		apiKey = os.Getenv(llm.APIKeyEnv)
	}
	if apiKey == "" {
		return nil, nil, fmt.Errorf("--use-llm requires an API key via --api-key, config, or the %s environment variable", llm.APIKeyEnv)
	}

	client, err := llm.NewGeminiClient(ctx, apiKey, model)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return llm.NewGeminiExtractor(client), func() { _ = client.Close() }, nil
}

// collectResumePaths expands --dir or --glob into a sorted list of resume
// files. Directory mode keeps only supported formats; glob mode keeps every
// match, so unsupported files surface as per-file warnings.
func collectResumePaths(dir, glob string) ([]string, error) {
	switch {
	case dir != "" && glob != "":
		return nil, fmt.Errorf("--dir and --glob are mutually exclusive; provide only one")
	case dir != "":
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume directory %s: %w", dir, err)
		}
		var paths []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if _, err := ingestion.DetectFormat(path); err != nil {
				continue
			}
			paths = append(paths, path)
		}
		sort.Strings(paths)
		return paths, nil
	case glob != "":
		paths, err := filepath.Glob(glob)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", glob, err)
		}
		sort.Strings(paths)
		return paths, nil
	default:
		return nil, fmt.Errorf("either --dir or --glob must be provided")
	}
}

// writeJSONFile marshals v with indentation and writes it to path, creating
// parent directories as needed.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
