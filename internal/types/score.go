// Package types provides type definitions for structured data used throughout the resume-screener system.
package types

// Recommendation is the discrete hire-likelihood band derived from a total score.
type Recommendation string

// Recommendation bands, strongest to weakest.
const (
	RecommendationStrong Recommendation = "STRONG"
	RecommendationGood   Recommendation = "GOOD"
	RecommendationFair   Recommendation = "FAIR"
	RecommendationPoor   Recommendation = "POOR"
	RecommendationReject Recommendation = "REJECT"
)

// IsValid reports whether the value is a known recommendation band.
func (r Recommendation) IsValid() bool {
	switch r {
	case RecommendationStrong, RecommendationGood, RecommendationFair, RecommendationPoor, RecommendationReject:
		return true
	}
	return false
}

// ScoreResult holds the outcome of scoring one candidate against one job
// requirement. Results are never mutated after creation; when the requirement
// changes, results are recomputed, not patched.
type ScoreResult struct {
	Candidate *CandidateRecord `json:"candidate"`

	// Component scores in [0,100], rounded to two decimals. The stored
	// total is always reproducible from these via the fixed weights.
	SkillsScore     float64 `json:"skills_score"`
	ExperienceScore float64 `json:"experience_score"`
	EducationScore  float64 `json:"education_score"`
	TotalScore      int     `json:"total_score"`

	// Skill-gap sets in canonical form, sorted. MatchedSkills and
	// MissingSkills partition the requirement's skills; ExtraSkills are
	// candidate skills the requirement never asked for.
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	ExtraSkills   []string `json:"extra_skills"`

	Recommendation Recommendation `json:"recommendation"`
	// Notes is a brief human-readable explanation of the score.
	Notes string `json:"notes,omitempty"`
}

// BatchSummary aggregates one screening batch for reporting.
type BatchSummary struct {
	TotalCandidates int                    `json:"total_candidates"`
	AverageScore    float64                `json:"average_score"`
	TopCandidate    string                 `json:"top_candidate,omitempty"`
	TopScore        int                    `json:"top_score"`
	BandCounts      map[Recommendation]int `json:"band_counts"`
	// TopMissingSkills lists the requirement skills most often missing
	// across the batch, most common first.
	TopMissingSkills []string `json:"top_missing_skills,omitempty"`
	NeedsReview      int      `json:"needs_review"`
}
