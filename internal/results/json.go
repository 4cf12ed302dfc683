// Package results - json.go exports score results as JSON.
package results

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jonathan/resume-screener/internal/types"
)

// ExportJSON writes the results to w as an indented JSON array in the given
// order. An empty result set exports as [] rather than null.
func ExportJSON(w io.Writer, results []*types.ScoreResult) error {
	if results == nil {
		results = []*types.ScoreResult{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results JSON: %w", err)
	}
	return nil
}
