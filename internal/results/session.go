// Package results aggregates score results for a screening session: ordered
// collection, ranking, filtering, summarizing, and export.
package results

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/types"
)

// Session collects the score results of one screening run against one job
// requirement. Results keep their submission order; ranking is computed on
// demand and never reorders the stored results. A Session is not safe for
// concurrent use; the batch pipeline serializes access to it.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	requirement *types.JobRequirement
	results     []*types.ScoreResult
}

// NewSession creates an empty session with no requirement set.
func NewSession() *Session {
	return &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
}

// SetRequirement validates and installs a new job requirement. On success
// all previously collected results are dropped, since they were scored
// against the old requirement. On validation failure the session keeps its
// prior requirement and results untouched.
func (s *Session) SetRequirement(req *types.JobRequirement) error {
	if err := req.Validate(); err != nil {
		return err
	}
	s.requirement = req.Clone()
	s.results = nil
	return nil
}

// Requirement returns a copy of the current requirement, or nil when none
// has been set.
func (s *Session) Requirement() *types.JobRequirement {
	if s.requirement == nil {
		return nil
	}
	return s.requirement.Clone()
}

// Add appends a score result. Submission order is preserved and used to
// break ranking ties.
func (s *Session) Add(result *types.ScoreResult) {
	s.results = append(s.results, result)
}

// Results returns the collected results in submission order. The slice is a
// copy; the results themselves are shared.
func (s *Session) Results() []*types.ScoreResult {
	out := make([]*types.ScoreResult, len(s.results))
	copy(out, s.results)
	return out
}

// Ranked returns the results sorted by total score descending. Equal totals
// keep their submission order.
func (s *Session) Ranked() []*types.ScoreResult {
	ranked := s.Results()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})
	return ranked
}

// Count returns the number of collected results.
func (s *Session) Count() int {
	return len(s.results)
}

// Clear drops all collected results but keeps the requirement.
func (s *Session) Clear() {
	s.results = nil
}
