// Package scoring - engine.go orchestrates scoring one candidate against a
// job requirement and maps totals to recommendation bands.
package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// Band thresholds: a total at or above the threshold earns the band.
const (
	strongThreshold = 85
	goodThreshold   = 70
	fairThreshold   = 55
	poorThreshold   = 40
)

// Engine scores candidates against a job requirement. Safe for concurrent
// use; the vocabulary is read-only after construction.
type Engine struct {
	vocab *skills.Vocabulary
}

// NewEngine builds an Engine over the given vocabulary. A nil vocabulary
// falls back to the built-in default.
func NewEngine(vocab *skills.Vocabulary) *Engine {
	if vocab == nil {
		vocab = skills.Default()
	}
	return &Engine{vocab: vocab}
}

// Score evaluates one candidate against the requirement. Skill sets are
// canonicalized before comparison, so callers may pass raw or canonical
// names. Scoring is total: every candidate gets a result.
func (e *Engine) Score(candidate *types.CandidateRecord, req *types.JobRequirement) *types.ScoreResult {
	candidateSkills := e.vocab.CanonicalizeSet(candidate.Skills)
	requiredSkills := e.vocab.CanonicalizeSet(req.RequiredSkills)

	skillsScore, matched, missing := computeSkillsScore(candidateSkills, requiredSkills)
	experienceScore := computeExperienceScore(candidate.ExperienceYears, req.MinExperienceYears)
	educationScore := computeEducationScore(candidate.EducationLevel, req.MinEducationLevel)

	// Components are stored at two decimals; the total is derived from the
	// stored values, never from unrounded intermediates.
	result := &types.ScoreResult{
		Candidate:       candidate,
		SkillsScore:     round2(skillsScore),
		ExperienceScore: round2(experienceScore),
		EducationScore:  round2(educationScore),
		MatchedSkills:   matched,
		MissingSkills:   missing,
		ExtraSkills:     computeExtraSkills(candidateSkills, requiredSkills),
	}
	result.TotalScore = computeTotalScore(result.SkillsScore, result.ExperienceScore, result.EducationScore)
	result.Recommendation = RecommendationFor(result.TotalScore)
	result.Notes = generateNotes(result, req)
	return result
}

// RecommendationFor maps a total score to its recommendation band.
func RecommendationFor(total int) types.Recommendation {
	switch {
	case total >= strongThreshold:
		return types.RecommendationStrong
	case total >= goodThreshold:
		return types.RecommendationGood
	case total >= fairThreshold:
		return types.RecommendationFair
	case total >= poorThreshold:
		return types.RecommendationPoor
	default:
		return types.RecommendationReject
	}
}

// generateNotes creates a brief explanation of the score.
func generateNotes(result *types.ScoreResult, req *types.JobRequirement) string {
	var parts []string

	// Skill coverage description
	switch {
	case len(result.MatchedSkills)+len(result.MissingSkills) == 0:
		parts = append(parts, "No required skills specified")
	case len(result.MissingSkills) == 0:
		parts = append(parts, fmt.Sprintf("Matched all %d required skills", len(result.MatchedSkills)))
	case len(result.MatchedSkills) == 0:
		parts = append(parts, "No required skill matches")
	default:
		parts = append(parts, fmt.Sprintf("Matched %d of %d required skills",
			len(result.MatchedSkills), len(result.MatchedSkills)+len(result.MissingSkills)))
	}

	// Experience description
	if req.MinExperienceYears > 0 {
		if result.Candidate.ExperienceYears >= req.MinExperienceYears {
			parts = append(parts, "Meets the experience requirement")
		} else {
			parts = append(parts, fmt.Sprintf("Has %g of %g required years of experience",
				result.Candidate.ExperienceYears, req.MinExperienceYears))
		}
	}

	// Education description
	if req.MinEducationLevel.Rank() > 0 {
		if result.Candidate.EducationLevel.AtLeast(req.MinEducationLevel) {
			parts = append(parts, "Education meets the requirement")
		} else {
			parts = append(parts, fmt.Sprintf("Education below the required level (%s vs %s)",
				result.Candidate.EducationLevel, req.MinEducationLevel))
		}
	}

	return strings.Join(parts, ". ")
}
