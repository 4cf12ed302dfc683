package extraction

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	urlRe   = regexp.MustCompile(`(?i)(?:https?://|www\.)\S+`)

	// Phone shapes, most specific first. A candidate match still has to
	// pass the 7-15 digit count gate before it is accepted.
	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\(\d{3}\)[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{1,4}[-.\s]?\d{2,4}[-.\s]?\d{2,4}[-.\s]?\d{0,4}`),
		regexp.MustCompile(`\d{7,15}`),
	}

	linkedinRe = regexp.MustCompile(`linkedin\.com/in/[A-Za-z0-9_-]+`)
	githubRe   = regexp.MustCompile(`github\.com/[A-Za-z0-9_-]+`)
)

// Digit count bounds for an accepted phone number.
const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
)

// extractEmail returns the first email address in the text, or "".
func extractEmail(text string) string {
	return emailRe.FindString(text)
}

// extractPhone returns the first plausible phone number: the first regex
// match containing 7 to 15 digits. The match is returned in its original
// spacing, trimmed.
func extractPhone(text string) string {
	for _, re := range phoneRes {
		for _, match := range re.FindAllString(text, -1) {
			digits := countDigits(match)
			if digits >= minPhoneDigits && digits <= maxPhoneDigits {
				return strings.TrimSpace(match)
			}
		}
	}
	return ""
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// extractLinkedIn returns the first LinkedIn profile path, or "".
func extractLinkedIn(normalized string) string {
	return linkedinRe.FindString(normalized)
}

// extractGitHub returns the first GitHub profile path, or "".
func extractGitHub(normalized string) string {
	return githubRe.FindString(normalized)
}

// Name extraction scans only the top of the document.
const (
	nameLineLimit  = 5
	nameMaxLineLen = 60
	nameMinTokens  = 2
	nameMaxTokens  = 4
)

// nameDenylist rejects header lines that look like names but never are.
var nameDenylist = []string{"resume", "curriculum vitae", "cover letter"}

// extractName applies the first-match heuristic: among the first five
// non-empty lines, the first line of 2-4 capitalized alphabetic tokens that
// does not look like contact info or a document header. Ambiguity is
// resolved silently by taking the first qualifying line.
func extractName(clean string) string {
	seen := 0
	for _, line := range strings.Split(clean, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		seen++
		if seen > nameLineLimit {
			break
		}
		if isNameLine(line) {
			return line
		}
	}
	return ""
}

func isNameLine(line string) bool {
	if len(line) >= nameMaxLineLen {
		return false
	}
	if emailRe.MatchString(line) || urlRe.MatchString(line) || extractPhone(line) != "" {
		return false
	}
	lower := strings.ToLower(line)
	for _, banned := range nameDenylist {
		if strings.Contains(lower, banned) {
			return false
		}
	}

	tokens := strings.Fields(line)
	if len(tokens) < nameMinTokens || len(tokens) > nameMaxTokens {
		return false
	}
	for _, token := range tokens {
		if !isCapitalizedWord(token) {
			return false
		}
	}
	return true
}

// isCapitalizedWord accepts tokens like "Jane", "O'Neill", "Smith-Jones",
// and trailing-dot initials like "J.".
func isCapitalizedWord(token string) bool {
	token = strings.TrimRight(token, ".,")
	if token == "" {
		return false
	}
	runes := []rune(token)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !unicode.IsLetter(r) && r != '\'' && r != '-' {
			return false
		}
	}
	return true
}
