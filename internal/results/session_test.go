package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func validRequirement() *types.JobRequirement {
	return &types.JobRequirement{
		Title:              "Software Engineer",
		RequiredSkills:     []string{"python", "sql"},
		MinExperienceYears: 3,
		MinEducationLevel:  types.EducationBachelor,
	}
}

func scored(name string, total int) *types.ScoreResult {
	return &types.ScoreResult{
		Candidate:      &types.CandidateRecord{Name: name},
		TotalScore:     total,
		Recommendation: types.RecommendationFair,
	}
}

func TestSession_SetRequirementWipesResults(t *testing.T) {
	session := NewSession()
	require.NoError(t, session.SetRequirement(validRequirement()))

	session.Add(scored("A", 80))
	session.Add(scored("B", 60))
	require.Equal(t, 2, session.Count())

	require.NoError(t, session.SetRequirement(validRequirement()))
	assert.Zero(t, session.Count())
	assert.Empty(t, session.Results())
}

func TestSession_InvalidRequirementKeepsPriorState(t *testing.T) {
	session := NewSession()
	require.NoError(t, session.SetRequirement(validRequirement()))
	session.Add(scored("A", 80))

	err := session.SetRequirement(&types.JobRequirement{Title: ""})
	require.Error(t, err)

	require.NotNil(t, session.Requirement())
	assert.Equal(t, "Software Engineer", session.Requirement().Title)
	assert.Equal(t, 1, session.Count())
}

func TestSession_RequirementIsIsolated(t *testing.T) {
	session := NewSession()
	req := validRequirement()
	require.NoError(t, session.SetRequirement(req))

	// Mutating the caller's copy must not leak into the session.
	req.Title = "Changed"
	req.RequiredSkills[0] = "changed"
	assert.Equal(t, "Software Engineer", session.Requirement().Title)
	assert.Equal(t, "python", session.Requirement().RequiredSkills[0])

	// Mutating a returned copy must not leak either.
	got := session.Requirement()
	got.Title = "Changed Again"
	assert.Equal(t, "Software Engineer", session.Requirement().Title)
}

func TestSession_NoRequirement(t *testing.T) {
	session := NewSession()
	assert.Nil(t, session.Requirement())
	assert.NotEqual(t, "", session.ID.String())
	assert.False(t, session.CreatedAt.IsZero())
}

func TestSession_ResultsKeepSubmissionOrder(t *testing.T) {
	session := NewSession()
	require.NoError(t, session.SetRequirement(validRequirement()))

	session.Add(scored("first", 50))
	session.Add(scored("second", 90))
	session.Add(scored("third", 50))

	got := session.Results()
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Candidate.Name)
	assert.Equal(t, "second", got[1].Candidate.Name)
	assert.Equal(t, "third", got[2].Candidate.Name)
}

func TestSession_RankedIsStable(t *testing.T) {
	session := NewSession()
	require.NoError(t, session.SetRequirement(validRequirement()))

	session.Add(scored("tie-early", 75))
	session.Add(scored("winner", 90))
	session.Add(scored("tie-late", 75))
	session.Add(scored("loser", 10))

	ranked := session.Ranked()
	require.Len(t, ranked, 4)
	assert.Equal(t, "winner", ranked[0].Candidate.Name)
	assert.Equal(t, "tie-early", ranked[1].Candidate.Name)
	assert.Equal(t, "tie-late", ranked[2].Candidate.Name)
	assert.Equal(t, "loser", ranked[3].Candidate.Name)

	// Ranking must not reorder the stored results.
	assert.Equal(t, "tie-early", session.Results()[0].Candidate.Name)
}

func TestSession_Clear(t *testing.T) {
	session := NewSession()
	require.NoError(t, session.SetRequirement(validRequirement()))
	session.Add(scored("A", 80))

	session.Clear()
	assert.Zero(t, session.Count())
	assert.NotNil(t, session.Requirement())
}
