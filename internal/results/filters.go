// Package results - filters.go provides composable result filters.
package results

import "github.com/jonathan/resume-screener/internal/types"

// Filter reports whether a result should be kept.
type Filter func(*types.ScoreResult) bool

// ByScoreRange keeps results whose total score lies in [min, max], inclusive.
func ByScoreRange(min, max int) Filter {
	return func(r *types.ScoreResult) bool {
		return r.TotalScore >= min && r.TotalScore <= max
	}
}

// ByMinExperience keeps results whose candidate has at least the given years.
func ByMinExperience(years float64) Filter {
	return func(r *types.ScoreResult) bool {
		return r.Candidate != nil && r.Candidate.ExperienceYears >= years
	}
}

// BySkill keeps results whose candidate lists the given skill. The skill
// must already be in canonical form; callers canonicalize user input through
// their vocabulary first.
func BySkill(canonical string) Filter {
	return func(r *types.ScoreResult) bool {
		return r.Candidate != nil && r.Candidate.HasSkill(canonical)
	}
}

// Apply returns the results that pass every filter, preserving order.
func Apply(results []*types.ScoreResult, filters ...Filter) []*types.ScoreResult {
	if len(filters) == 0 {
		return results
	}

	kept := make([]*types.ScoreResult, 0, len(results))
	for _, result := range results {
		pass := true
		for _, filter := range filters {
			if !filter(result) {
				pass = false
				break
			}
		}
		if pass {
			kept = append(kept, result)
		}
	}
	return kept
}
