package extraction

import (
	"regexp"
	"sort"
	"strings"
)

// Certification phrasings. These run on clean (case-preserved) text because
// the acronym pattern needs uppercase, e.g. "AWS Certified".
var certificationRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)certified\s+in\s+([^.\n,;]+)`),
	regexp.MustCompile(`(?i)certification\s*:?\s+([^.\n,;]+)`),
	regexp.MustCompile(`[A-Z]{2,}\s+[Cc]ertified(?:\s+[A-Za-z][A-Za-z ]{2,40})?`),
}

const (
	maxCertifications = 10
	maxCertLength     = 80
)

// extractCertifications returns a deduplicated, sorted list of
// certification mentions, capped to keep noisy documents bounded.
func extractCertifications(clean string) []string {
	seen := make(map[string]struct{})
	var certs []string

	for _, re := range certificationRes {
		for _, match := range re.FindAllStringSubmatch(clean, -1) {
			cert := match[0]
			if len(match) > 1 && match[1] != "" {
				cert = match[1]
			}
			cert = strings.TrimSpace(cert)
			if cert == "" || len(cert) > maxCertLength {
				continue
			}
			key := strings.ToLower(cert)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			certs = append(certs, cert)
		}
	}

	sort.Strings(certs)
	if len(certs) > maxCertifications {
		certs = certs[:maxCertifications]
	}
	return certs
}
