// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// EducationLevel represents an attained or required education level.
// Levels are ordered: Unknown < HighSchool < Associate < Bachelor < Master < Doctorate.
type EducationLevel string

// EducationLevel values, lowest to highest.
const (
	EducationUnknown    EducationLevel = "unknown"
	EducationHighSchool EducationLevel = "high_school"
	EducationAssociate  EducationLevel = "associate"
	EducationBachelor   EducationLevel = "bachelor"
	EducationMaster     EducationLevel = "master"
	EducationDoctorate  EducationLevel = "doctorate"
)

// educationRanks orders levels for comparison. Unknown is the lowest rank.
var educationRanks = map[EducationLevel]int{
	EducationUnknown:    0,
	EducationHighSchool: 1,
	EducationAssociate:  2,
	EducationBachelor:   3,
	EducationMaster:     4,
	EducationDoctorate:  5,
}

// educationOrder lists levels in ascending rank order for stable iteration.
var educationOrder = []EducationLevel{
	EducationUnknown,
	EducationHighSchool,
	EducationAssociate,
	EducationBachelor,
	EducationMaster,
	EducationDoctorate,
}

// Rank returns the ordinal rank of the level. Unrecognized values rank as Unknown.
func (e EducationLevel) Rank() int {
	if rank, ok := educationRanks[e]; ok {
		return rank
	}
	return educationRanks[EducationUnknown]
}

// AtLeast reports whether the level meets or exceeds the given minimum.
func (e EducationLevel) AtLeast(min EducationLevel) bool {
	return e.Rank() >= min.Rank()
}

// IsValid reports whether the value is a known education level.
func (e EducationLevel) IsValid() bool {
	_, ok := educationRanks[e]
	return ok
}

// String returns the canonical string form of the level.
func (e EducationLevel) String() string {
	return string(e)
}

// ParseEducationLevel converts a string into an EducationLevel.
// Matching is case-insensitive and tolerates surrounding whitespace.
// The empty string parses as EducationUnknown.
func ParseEducationLevel(s string) (EducationLevel, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return EducationUnknown, nil
	}
	// Accept common aliases alongside the canonical forms.
	switch normalized {
	case "high school", "highschool", "secondary":
		return EducationHighSchool, nil
	case "bachelors", "bachelor's":
		return EducationBachelor, nil
	case "masters", "master's":
		return EducationMaster, nil
	case "phd", "ph.d", "ph.d.", "doctor", "doctoral":
		return EducationDoctorate, nil
	}
	level := EducationLevel(normalized)
	if !level.IsValid() {
		return EducationUnknown, fmt.Errorf("unknown education level %q (expected one of %s)", s, strings.Join(EducationLevelNames(), ", "))
	}
	return level, nil
}

// EducationLevelNames returns all valid level names in ascending rank order.
func EducationLevelNames() []string {
	names := make([]string, 0, len(educationOrder))
	for _, level := range educationOrder {
		names = append(names, string(level))
	}
	return names
}
