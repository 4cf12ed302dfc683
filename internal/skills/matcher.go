// Package skills provides the configurable skill vocabulary and synonym table
// used to extract skills from resume text and to canonicalize skill names.
package skills

import (
	"fmt"
	"regexp"
	"sort"
)

// maxMatchedSkills caps how many distinct skills one document can yield.
const maxMatchedSkills = 50

// termMatcher pairs one vocabulary variant's compiled pattern with the
// canonical skill it resolves to.
type termMatcher struct {
	canonical string
	re        *regexp.Regexp
}

// compileMatchers builds a word-boundary pattern for every variant. Go's
// regexp \b does not treat '+', '#', or '.' as word characters the way skill
// names need ("c++", "node.js"), so boundaries are expressed as
// start/end-of-text or a non-alphanumeric character.
func compileMatchers(variants map[string]string) ([]termMatcher, error) {
	keys := make([]string, 0, len(variants))
	for variant := range variants {
		keys = append(keys, variant)
	}
	sort.Strings(keys)

	matchers := make([]termMatcher, 0, len(keys))
	for _, variant := range keys {
		pattern := `(?:^|[^a-z0-9])` + regexp.QuoteMeta(variant) + `(?:[^a-z0-9]|$)`
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("vocabulary error: cannot compile matcher for %q: %w", variant, err)
		}
		matchers = append(matchers, termMatcher{canonical: variants[variant], re: re})
	}
	return matchers, nil
}

// Find returns the canonical names of every vocabulary skill mentioned in
// the text, sorted and deduplicated. The text must already be normalized
// (lowercased, whitespace collapsed); punctuation is expected and handled
// by the boundary patterns.
func (v *Vocabulary) Find(normalizedText string) []string {
	if normalizedText == "" {
		return nil
	}

	found := make(map[string]struct{})
	for _, m := range v.matchers {
		if _, dup := found[m.canonical]; dup {
			continue
		}
		if m.re.MatchString(normalizedText) {
			found[m.canonical] = struct{}{}
		}
	}

	out := make([]string, 0, len(found))
	for canon := range found {
		out = append(out, canon)
	}
	sort.Strings(out)

	if len(out) > maxMatchedSkills {
		out = out[:maxMatchedSkills]
	}
	return out
}
