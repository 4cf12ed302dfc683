// Package skills provides the configurable skill vocabulary and synonym table
// used to extract skills from resume text and to canonicalize skill names for
// matching. The vocabulary is external configuration data; DefaultSkills is
// the built-in seed used when no vocabulary file is supplied.
package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

// DefaultSkills maps each canonical skill name to its accepted synonyms.
// Canonical names are lowercase; matching is case-insensitive either way.
var DefaultSkills = map[string][]string{
	// Programming languages
	"python":     {"py"},
	"java":       {},
	"javascript": {"js", "ecmascript"},
	"typescript": {"ts"},
	"c++":        {"cpp"},
	"c#":         {"csharp"},
	"php":        {},
	"ruby":       {},
	"go":         {"golang"},
	"rust":       {},
	"swift":      {},
	"kotlin":     {},
	"scala":      {},
	"r":          {},
	"matlab":     {},
	"perl":       {},
	"shell":      {},
	"bash":       {},
	"powershell": {},

	// Web technologies
	"html":      {},
	"css":       {},
	"react":     {"reactjs", "react.js"},
	"angular":   {"angularjs"},
	"vue":       {"vuejs", "vue.js"},
	"node.js":   {"nodejs", "node js"},
	"express":   {"expressjs", "express.js"},
	"django":    {},
	"flask":     {},
	"spring":    {"spring boot"},
	"laravel":   {},
	"rails":     {"ruby on rails"},
	"asp.net":   {"aspnet"},
	"jquery":    {},
	"bootstrap": {},
	"sass":      {},
	"less":      {},

	// Databases
	"sql":           {},
	"mysql":         {},
	"postgresql":    {"postgres"},
	"oracle":        {},
	"mongodb":       {"mongo"},
	"redis":         {},
	"elasticsearch": {"elastic search"},
	"cassandra":     {},
	"dynamodb":      {},
	"sqlite":        {},
	"mariadb":       {},

	// Cloud and devops
	"aws":        {"amazon web services"},
	"azure":      {},
	"gcp":        {"google cloud platform", "google cloud"},
	"docker":     {},
	"kubernetes": {"k8s"},
	"jenkins":    {},
	"git":        {},
	"gitlab":     {},
	"github":     {},
	"terraform":  {},
	"ansible":    {},
	"chef":       {},
	"puppet":     {},
	"ci/cd":      {"cicd", "ci cd"},
	"devops":     {},

	// Data science and ML
	"machine learning":        {"ml"},
	"deep learning":           {},
	"artificial intelligence": {"ai"},
	"data science":            {},
	"pandas":                  {},
	"numpy":                   {},
	"scikit-learn":            {"sklearn", "scikit learn"},
	"tensorflow":              {},
	"pytorch":                 {},
	"keras":                   {},
	"opencv":                  {},
	"nlp":                     {"natural language processing"},
	"computer vision":         {},
	"statistics":              {},
	"data analysis":           {},
	"big data":                {},
	"hadoop":                  {},
	"spark":                   {"apache spark"},

	// Mobile
	"android":      {},
	"ios":          {},
	"react native": {},
	"flutter":      {},
	"xamarin":      {},
	"cordova":      {},
	"ionic":        {},

	// Other technologies
	"microservices": {"micro services"},
	"api":           {"apis"},
	"rest":          {"rest api", "restful"},
	"graphql":       {},
	"soap":          {},
	"json":          {},
	"xml":           {},
	"agile":         {},
	"scrum":         {},
	"kanban":        {},
	"jira":          {},
	"confluence":    {},
	"linux":         {},
	"windows":       {},
	"macos":         {},

	// Soft skills
	"communication":       {},
	"leadership":          {},
	"teamwork":            {},
	"problem solving":     {"problem-solving"},
	"analytical thinking": {},
	"project management":  {},
	"time management":     {},
	"adaptability":        {},
	"creativity":          {},
	"innovation":          {},
}

// Vocabulary is a compiled skill vocabulary plus synonym table. Build one
// with New, Load, or Default; a compiled Vocabulary is safe for concurrent use.
type Vocabulary struct {
	variants  map[string]string // lowercase variant -> canonical name
	canonical []string          // sorted canonical names
	matchers  []termMatcher
}

// vocabularyFile is the on-disk JSON shape for Load.
type vocabularyFile struct {
	Skills map[string][]string `json:"skills"`
}

var (
	defaultOnce  sync.Once
	defaultVocab *Vocabulary
)

// Default returns the built-in vocabulary compiled from DefaultSkills.
// The result is shared; callers must not mutate it.
func Default() *Vocabulary {
	defaultOnce.Do(func() {
		v, err := New(DefaultSkills)
		if err != nil {
			panic(fmt.Sprintf("default skill vocabulary failed to compile: %v", err))
		}
		defaultVocab = v
	})
	return defaultVocab
}

// New compiles a vocabulary from a canonical-name -> synonyms map.
// Synonym collisions across different canonical names are configuration
// errors and are reported with the colliding variant named.
func New(skills map[string][]string) (*Vocabulary, error) {
	if len(skills) == 0 {
		return nil, fmt.Errorf("vocabulary error: 'skills' must not be empty")
	}

	variants := make(map[string]string, len(skills)*2)
	canonical := make([]string, 0, len(skills))

	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		canon := strings.ToLower(strings.TrimSpace(name))
		if canon == "" {
			return nil, fmt.Errorf("vocabulary error: 'skills' contains an empty canonical name")
		}
		if _, dup := variants[canon]; dup {
			return nil, fmt.Errorf("vocabulary error: %q appears under more than one canonical skill", canon)
		}
		variants[canon] = canon
		canonical = append(canonical, canon)

		for _, syn := range skills[name] {
			variant := strings.ToLower(strings.TrimSpace(syn))
			if variant == "" {
				continue
			}
			if existing, dup := variants[variant]; dup && existing != canon {
				return nil, fmt.Errorf("vocabulary error: synonym %q maps to both %q and %q", variant, existing, canon)
			}
			variants[variant] = canon
		}
	}

	matchers, err := compileMatchers(variants)
	if err != nil {
		return nil, err
	}

	return &Vocabulary{
		variants:  variants,
		canonical: canonical,
		matchers:  matchers,
	}, nil
}

// Load reads and compiles a vocabulary JSON file of the form
// {"skills": {"canonical": ["synonym", ...], ...}}.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	var file vocabularyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}

	vocab, err := New(file.Skills)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vocab, nil
}

// Canonicalize maps a skill term to its canonical name via the synonym
// table. Unknown terms fold to lowercase trimmed form so set comparisons
// stay case-insensitive even off-vocabulary.
func (v *Vocabulary) Canonicalize(term string) string {
	folded := strings.ToLower(strings.TrimSpace(term))
	if canon, ok := v.variants[folded]; ok {
		return canon
	}
	return folded
}

// CanonicalizeSet canonicalizes every term, drops empties, deduplicates,
// and returns the result sorted.
func (v *Vocabulary) CanonicalizeSet(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		canon := v.Canonicalize(term)
		if canon == "" {
			continue
		}
		if _, dup := seen[canon]; dup {
			continue
		}
		seen[canon] = struct{}{}
		out = append(out, canon)
	}
	sort.Strings(out)
	return out
}

// Canonical returns a copy of the canonical skill names, sorted.
func (v *Vocabulary) Canonical() []string {
	return append([]string(nil), v.canonical...)
}

// Len returns the number of canonical skills in the vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.canonical)
}
