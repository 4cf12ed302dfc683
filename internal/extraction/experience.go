package extraction

import (
	"regexp"
	"strconv"
)

// Experience phrasing patterns. Each captures the year count; the highest
// value across all matches wins. Values outside [0,50] are discarded as
// noise (street numbers, dates).
var experienceRes = []*regexp.Regexp{
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:professional\s+)?(?:work\s+)?experience`),
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)\s+(?:in|with|of)\b`),
	regexp.MustCompile(`experience\s*:?\s*(\d+(?:\.\d+)?)\s*\+?\s*(?:years?|yrs?)`),
	regexp.MustCompile(`over\s+(\d+(?:\.\d+)?)\s*(?:years?|yrs?)`),
}

const maxPlausibleYears = 50

// extractExperienceYears scans normalized text for experience phrases and
// returns the maximum plausible year count, or 0 when nothing matches.
func extractExperienceYears(normalized string) float64 {
	best := 0.0
	found := false

	for _, re := range experienceRes {
		for _, match := range re.FindAllStringSubmatch(normalized, -1) {
			years, err := strconv.ParseFloat(match[1], 64)
			if err != nil {
				continue
			}
			if years < 0 || years > maxPlausibleYears {
				continue
			}
			if !found || years > best {
				best = years
				found = true
			}
		}
	}

	return best
}

// clampYears bounds an externally supplied year count to the plausible range.
func clampYears(years float64) float64 {
	if years < 0 {
		return 0
	}
	if years > maxPlausibleYears {
		return maxPlausibleYears
	}
	return years
}
