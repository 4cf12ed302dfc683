package extraction

import (
	"regexp"

	"github.com/jonathan/resume-screener/internal/types"
)

// educationKeywords maps degree keywords to levels. Matching is
// word-boundary based: bare "be" is deliberately absent (it is a common
// verb), and abbreviations like "ms" only match as standalone tokens.
var educationKeywords = map[string]types.EducationLevel{
	"phd":       types.EducationDoctorate,
	"ph.d":      types.EducationDoctorate,
	"doctorate": types.EducationDoctorate,
	"doctoral":  types.EducationDoctorate,

	"master":  types.EducationMaster,
	"masters": types.EducationMaster,
	"mba":     types.EducationMaster,
	"m.s":     types.EducationMaster,
	"m.a":     types.EducationMaster,
	"ms":      types.EducationMaster,
	"ma":      types.EducationMaster,
	"msc":     types.EducationMaster,

	"bachelor":  types.EducationBachelor,
	"bachelors": types.EducationBachelor,
	"b.s":       types.EducationBachelor,
	"b.a":       types.EducationBachelor,
	"b.e":       types.EducationBachelor,
	"bs":        types.EducationBachelor,
	"ba":        types.EducationBachelor,
	"bsc":       types.EducationBachelor,

	"associate":   types.EducationAssociate,
	"associates":  types.EducationAssociate,
	"diploma":     types.EducationAssociate,
	"certificate": types.EducationAssociate,

	"high school": types.EducationHighSchool,
	"secondary":   types.EducationHighSchool,
}

// educationMatchers holds one compiled matcher per keyword, built once.
var educationMatchers = compileEducationMatchers()

type educationMatcher struct {
	level types.EducationLevel
	re    *regexp.Regexp
}

func compileEducationMatchers() []educationMatcher {
	matchers := make([]educationMatcher, 0, len(educationKeywords))
	for keyword, level := range educationKeywords {
		pattern := `(?:^|[^a-z0-9])` + regexp.QuoteMeta(keyword) + `(?:[^a-z0-9]|$)`
		matchers = append(matchers, educationMatcher{
			level: level,
			re:    regexp.MustCompile(pattern),
		})
	}
	return matchers
}

// extractEducationLevel returns the highest-ranked education keyword found
// in the normalized text, or Unknown when none matches.
func extractEducationLevel(normalized string) types.EducationLevel {
	highest := types.EducationUnknown
	for _, m := range educationMatchers {
		if m.level.Rank() <= highest.Rank() {
			continue
		}
		if m.re.MatchString(normalized) {
			highest = m.level
		}
	}
	return highest
}
