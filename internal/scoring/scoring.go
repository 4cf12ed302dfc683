// Package scoring evaluates candidate records against a job requirement and
// produces weighted fit scores with skill-gap breakdowns.
package scoring

import (
	"math"

	"github.com/jonathan/resume-screener/internal/types"
)

// Weights for the scoring components. They sum to 1 so component scores in
// [0,100] always combine into a total in [0,100].
const (
	skillsWeight     = 0.5
	experienceWeight = 0.3
	educationWeight  = 0.2
)

// computeSkillsScore calculates the required-skill coverage score and the
// matched/missing partition of the required set. Both inputs must already be
// canonical and sorted; the outputs preserve that order. With no required
// skills there is nothing to fail, so coverage is full.
func computeSkillsScore(candidateSkills, requiredSkills []string) (float64, []string, []string) {
	matched := make([]string, 0, len(requiredSkills))
	missing := make([]string, 0, len(requiredSkills))

	if len(requiredSkills) == 0 {
		return 100, matched, missing
	}

	candidateSet := make(map[string]struct{}, len(candidateSkills))
	for _, skill := range candidateSkills {
		candidateSet[skill] = struct{}{}
	}

	for _, skill := range requiredSkills {
		if _, ok := candidateSet[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	score := 100 * float64(len(matched)) / float64(len(requiredSkills))
	return score, matched, missing
}

// computeExtraSkills returns the candidate skills the requirement never
// asked for. Inputs are canonical and sorted; output preserves that order.
func computeExtraSkills(candidateSkills, requiredSkills []string) []string {
	requiredSet := make(map[string]struct{}, len(requiredSkills))
	for _, skill := range requiredSkills {
		requiredSet[skill] = struct{}{}
	}

	extra := make([]string, 0, len(candidateSkills))
	for _, skill := range candidateSkills {
		if _, ok := requiredSet[skill]; !ok {
			extra = append(extra, skill)
		}
	}
	return extra
}

// computeExperienceScore scores years of experience against the minimum.
// No minimum means nothing to fail; below the minimum scores proportionally.
func computeExperienceScore(years, minYears float64) float64 {
	if minYears <= 0 {
		return 100
	}
	if years >= minYears {
		return 100
	}
	score := 100 * years / minYears
	return clampScore(score)
}

// computeEducationScore scores the candidate's education level against the
// required one using the fixed level ranking. Meeting or exceeding the
// requirement is full credit; below it scores proportionally by rank. An
// unknown required level ranks lowest and is satisfied by any candidate.
func computeEducationScore(level, required types.EducationLevel) float64 {
	candRank := level.Rank()
	reqRank := required.Rank()
	if candRank >= reqRank {
		return 100
	}
	// reqRank > candRank >= 0 here, so reqRank is never zero.
	score := 100 * float64(candRank) / float64(reqRank)
	return clampScore(score)
}

// computeTotalScore combines rounded component scores into the final integer
// total. The inputs must be the stored (two-decimal) component values so the
// total is always recomputable from a persisted result.
func computeTotalScore(skillsScore, experienceScore, educationScore float64) int {
	total := skillsWeight*skillsScore + experienceWeight*experienceScore + educationWeight*educationScore
	rounded := int(math.Round(total))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// round2 rounds to two decimal places, the stored precision for component scores.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
