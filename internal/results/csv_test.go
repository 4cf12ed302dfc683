package results

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestExportCSV_ColumnOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t,
		"name,email,phone,experience_years,education_level,"+
			"skills_score,experience_score,education_score,total_score,"+
			"recommendation,matched_skills,missing_skills,extra_skills",
		lines[0])
}

func TestExportCSV_Rows(t *testing.T) {
	results := []*types.ScoreResult{
		{
			Candidate: &types.CandidateRecord{
				Name:            "Jane Doe",
				Email:           "jane@example.com",
				Phone:           "(555) 123-4567",
				ExperienceYears: 6.5,
				EducationLevel:  types.EducationMaster,
			},
			SkillsScore:     66.67,
			ExperienceScore: 100,
			EducationScore:  100,
			TotalScore:      73,
			Recommendation:  types.RecommendationGood,
			MatchedSkills:   []string{"go", "python"},
			MissingSkills:   []string{"aws"},
			ExtraSkills:     []string{"kubernetes"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, results))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, "Jane Doe", row[0])
	assert.Equal(t, "jane@example.com", row[1])
	assert.Equal(t, "(555) 123-4567", row[2])
	assert.Equal(t, "6.5", row[3])
	assert.Equal(t, "master", row[4])
	assert.Equal(t, "66.67", row[5])
	assert.Equal(t, "100", row[6])
	assert.Equal(t, "100", row[7])
	assert.Equal(t, "73", row[8])
	assert.Equal(t, "GOOD", row[9])
	assert.Equal(t, "go, python", row[10])
	assert.Equal(t, "aws", row[11])
	assert.Equal(t, "kubernetes", row[12])
}

func TestExportCSV_EmptySetsAndWholeYears(t *testing.T) {
	results := []*types.ScoreResult{
		{
			Candidate: &types.CandidateRecord{
				Name:            "Min Imal",
				ExperienceYears: 3,
				EducationLevel:  types.EducationUnknown,
			},
			TotalScore:     40,
			Recommendation: types.RecommendationPoor,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, results))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	row := records[1]

	assert.Equal(t, "3", row[3], "whole years print without a decimal point")
	assert.Equal(t, "unknown", row[4])
	assert.Equal(t, "0", row[5])
	assert.Equal(t, "", row[10])
	assert.Equal(t, "", row[11])
	assert.Equal(t, "", row[12])
}

func TestExportCSV_CommaInNameIsQuoted(t *testing.T) {
	results := []*types.ScoreResult{
		{
			Candidate:      &types.CandidateRecord{Name: "Doe, Jane", EducationLevel: types.EducationUnknown},
			Recommendation: types.RecommendationReject,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, results))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Doe, Jane", records[1][0])
}
