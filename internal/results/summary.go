// Package results - summary.go aggregates a batch of results for reporting.
package results

import (
	"math"
	"sort"

	"github.com/jonathan/resume-screener/internal/types"
)

// maxTopMissingSkills caps the most-often-missing skill list in summaries.
const maxTopMissingSkills = 5

// Summarize aggregates the given results into a batch summary. The top
// candidate is the ranking winner: highest total, earliest submission on ties.
func Summarize(results []*types.ScoreResult) *types.BatchSummary {
	summary := &types.BatchSummary{
		TotalCandidates: len(results),
		BandCounts:      make(map[types.Recommendation]int),
	}
	if len(results) == 0 {
		return summary
	}

	totalSum := 0
	missingCounts := make(map[string]int)
	var top *types.ScoreResult

	for _, result := range results {
		totalSum += result.TotalScore
		summary.BandCounts[result.Recommendation]++

		for _, skill := range result.MissingSkills {
			missingCounts[skill]++
		}
		if result.Candidate != nil && result.Candidate.NeedsReview {
			summary.NeedsReview++
		}
		if top == nil || result.TotalScore > top.TotalScore {
			top = result
		}
	}

	summary.AverageScore = math.Round(float64(totalSum)/float64(len(results))*100) / 100
	summary.TopScore = top.TotalScore
	if top.Candidate != nil {
		summary.TopCandidate = top.Candidate.DisplayName()
	}
	summary.TopMissingSkills = topMissingSkills(missingCounts)
	return summary
}

// topMissingSkills returns the most frequently missing skills, most common
// first, ties alphabetical, capped at maxTopMissingSkills.
func topMissingSkills(counts map[string]int) []string {
	if len(counts) == 0 {
		return nil
	}

	skills := make([]string, 0, len(counts))
	for skill := range counts {
		skills = append(skills, skill)
	}
	sort.Slice(skills, func(i, j int) bool {
		if counts[skills[i]] != counts[skills[j]] {
			return counts[skills[i]] > counts[skills[j]]
		}
		return skills[i] < skills[j]
	})

	if len(skills) > maxTopMissingSkills {
		skills = skills[:maxTopMissingSkills]
	}
	return skills
}
