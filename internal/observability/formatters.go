// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Stepf prints a single progress line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Stepf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirement outputs a human-readable summary of the job requirement.
func (p *Printer) PrintRequirement(req *types.JobRequirement) {
	if req == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", req.Title))
	if req.MinExperienceYears > 0 {
		sb.WriteString(fmt.Sprintf("Years:    %g minimum\n", req.MinExperienceYears))
	}
	if req.MinEducationLevel.Rank() > 0 {
		sb.WriteString(fmt.Sprintf("Degree:   %s minimum\n", req.MinEducationLevel))
	}

	if len(req.RequiredSkills) > 0 {
		sb.WriteString("\nRequired Skills:\n")
		count := min(len(req.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", req.RequiredSkills[i]))
		}
		if len(req.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(req.RequiredSkills)-maxItemsToShow))
		}
	}

	p.printBox("JOB REQUIREMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCandidate outputs the extracted fields of one candidate record.
func (p *Printer) PrintCandidate(record *types.CandidateRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", record.DisplayName()))
	if record.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", record.Email))
	}
	if record.Phone != "" {
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", record.Phone))
	}
	if record.LinkedIn != "" {
		sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", record.LinkedIn))
	}
	if record.GitHub != "" {
		sb.WriteString(fmt.Sprintf("GitHub:   %s\n", record.GitHub))
	}
	sb.WriteString(fmt.Sprintf("Years:    %g\n", record.ExperienceYears))
	sb.WriteString(fmt.Sprintf("Degree:   %s\n", record.EducationLevel))

	if len(record.Skills) > 0 {
		skills := strings.Join(record.Skills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", skills))
	}
	if len(record.Certifications) > 0 {
		sb.WriteString("Certifications:\n")
		count := min(len(record.Certifications), 3)
		for i := 0; i < count; i++ {
			cert := record.Certifications[i]
			if len(cert) > 50 {
				cert = cert[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", cert))
		}
		if len(record.Certifications) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.Certifications)-3))
		}
	}
	if record.NeedsReview {
		sb.WriteString(fmt.Sprintf("\n⚠ Needs review: %s\n", record.ReviewReason))
	}

	p.printBox("EXTRACTED CANDIDATE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScoreResult outputs the score breakdown for one candidate.
func (p *Printer) PrintScoreResult(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	name := "(unknown)"
	if result.Candidate != nil {
		name = result.Candidate.DisplayName()
	}
	sb.WriteString(fmt.Sprintf("Candidate:  %s\n", name))
	sb.WriteString(fmt.Sprintf("Total:      %d  →  %s\n", result.TotalScore, result.Recommendation))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:     %.2f\n", result.SkillsScore))
	sb.WriteString(fmt.Sprintf("Experience: %.2f\n", result.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Education:  %.2f\n", result.EducationScore))

	writeSkillLine := func(label string, skills []string) {
		if len(skills) == 0 {
			return
		}
		joined := strings.Join(skills, ", ")
		if len(joined) > 40 {
			joined = joined[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", label, joined))
	}
	sb.WriteString("\n")
	writeSkillLine("Matched: ", result.MatchedSkills)
	writeSkillLine("Missing: ", result.MissingSkills)
	writeSkillLine("Extra:   ", result.ExtraSkills)

	if result.Notes != "" {
		notes := result.Notes
		if len(notes) > 50 {
			notes = notes[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("\n%s\n", notes))
	}

	p.printBox("SCORE RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedResults outputs the top ranked candidates of a batch.
func (p *Printer) PrintRankedResults(ranked []*types.ScoreResult) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates scored: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := ranked[i]
		name := "(unknown)"
		if result.Candidate != nil {
			name = result.Candidate.DisplayName()
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Total: %d (%s)\n", result.TotalScore, result.Recommendation))
		if len(result.MatchedSkills) > 0 {
			skills := strings.Join(result.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(ranked)-maxItemsToShow))
	}

	p.printBox("TOP CANDIDATES", sb.String())
}

// PrintSummary outputs the aggregate view of a screening batch.
func (p *Printer) PrintSummary(summary *types.BatchSummary) {
	if summary == nil || summary.TotalCandidates == 0 {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Candidates:  %d\n", summary.TotalCandidates))
	sb.WriteString(fmt.Sprintf("Average:     %.2f\n", summary.AverageScore))
	if summary.TopCandidate != "" {
		sb.WriteString(fmt.Sprintf("Top:         %s (%d)\n", summary.TopCandidate, summary.TopScore))
	}
	if summary.NeedsReview > 0 {
		sb.WriteString(fmt.Sprintf("Needs review: %d\n", summary.NeedsReview))
	}

	bands := []types.Recommendation{
		types.RecommendationStrong,
		types.RecommendationGood,
		types.RecommendationFair,
		types.RecommendationPoor,
		types.RecommendationReject,
	}
	sb.WriteString("\nBands:\n")
	for _, band := range bands {
		if n := summary.BandCounts[band]; n > 0 {
			sb.WriteString(fmt.Sprintf("  %-7s %d\n", band, n))
		}
	}

	if len(summary.TopMissingSkills) > 0 {
		missing := strings.Join(summary.TopMissingSkills, ", ")
		if len(missing) > 40 {
			missing = missing[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nOften missing: %s\n", missing))
	}

	p.printBox("BATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWarnings outputs per-file warnings collected during a batch.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d warnings:\n\n", len(warnings)))

	for i, w := range warnings {
		if len(w) > 50 {
			w = w[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s", w))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PER-FILE WARNINGS", sb.String())
}
