package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func filterFixtures() []*types.ScoreResult {
	return []*types.ScoreResult{
		{
			Candidate:  &types.CandidateRecord{Name: "junior", ExperienceYears: 1, Skills: []string{"python"}},
			TotalScore: 45,
		},
		{
			Candidate:  &types.CandidateRecord{Name: "mid", ExperienceYears: 4, Skills: []string{"go", "python"}},
			TotalScore: 70,
		},
		{
			Candidate:  &types.CandidateRecord{Name: "senior", ExperienceYears: 9, Skills: []string{"go", "kubernetes"}},
			TotalScore: 92,
		},
	}
}

func names(results []*types.ScoreResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Candidate.Name)
	}
	return out
}

func TestByScoreRange(t *testing.T) {
	kept := Apply(filterFixtures(), ByScoreRange(50, 90))
	assert.Equal(t, []string{"mid"}, names(kept))

	// Bounds are inclusive.
	kept = Apply(filterFixtures(), ByScoreRange(45, 92))
	assert.Len(t, kept, 3)
}

func TestByMinExperience(t *testing.T) {
	kept := Apply(filterFixtures(), ByMinExperience(4))
	assert.Equal(t, []string{"mid", "senior"}, names(kept))

	kept = Apply(filterFixtures(), ByMinExperience(100))
	assert.Empty(t, kept)
}

func TestBySkill(t *testing.T) {
	kept := Apply(filterFixtures(), BySkill("go"))
	assert.Equal(t, []string{"mid", "senior"}, names(kept))

	kept = Apply(filterFixtures(), BySkill("cobol"))
	assert.Empty(t, kept)
}

func TestApply_ComposesAndPreservesOrder(t *testing.T) {
	kept := Apply(filterFixtures(), ByScoreRange(0, 100), ByMinExperience(2), BySkill("go"))
	assert.Equal(t, []string{"mid", "senior"}, names(kept))
}

func TestApply_NoFilters(t *testing.T) {
	fixtures := filterFixtures()
	kept := Apply(fixtures)
	require.Len(t, kept, len(fixtures))
}

func TestFilters_NilCandidate(t *testing.T) {
	broken := []*types.ScoreResult{{TotalScore: 50}}
	assert.Empty(t, Apply(broken, ByMinExperience(0)))
	assert.Empty(t, Apply(broken, BySkill("go")))
	assert.Len(t, Apply(broken, ByScoreRange(0, 100)), 1)
}
