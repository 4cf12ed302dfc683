// Package results - csv.go exports score results as CSV.
package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// csvHeader is the fixed export column order. Consumers depend on it; append
// new columns at the end only.
var csvHeader = []string{
	"name",
	"email",
	"phone",
	"experience_years",
	"education_level",
	"skills_score",
	"experience_score",
	"education_score",
	"total_score",
	"recommendation",
	"matched_skills",
	"missing_skills",
	"extra_skills",
}

// ExportCSV writes the results to w as CSV in the given order, one row per
// candidate, with the fixed header row first. Skill sets are joined with
// ", " inside a single cell.
func ExportCSV(w io.Writer, results []*types.ScoreResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := cw.Write(csvRow(result)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func csvRow(result *types.ScoreResult) []string {
	candidate := result.Candidate
	if candidate == nil {
		candidate = &types.CandidateRecord{}
	}

	return []string{
		candidate.Name,
		candidate.Email,
		candidate.Phone,
		formatFloat(candidate.ExperienceYears),
		string(candidate.EducationLevel),
		formatFloat(result.SkillsScore),
		formatFloat(result.ExperienceScore),
		formatFloat(result.EducationScore),
		strconv.Itoa(result.TotalScore),
		string(result.Recommendation),
		strings.Join(result.MatchedSkills, ", "),
		strings.Join(result.MissingSkills, ", "),
		strings.Join(result.ExtraSkills, ", "),
	}
}

// formatFloat renders a float with no trailing zeros, e.g. 3 not 3.00 and
// 33.33 not 33.330000.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
