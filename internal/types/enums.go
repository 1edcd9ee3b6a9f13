// Package types provides type definitions for the matchmaking domain:
// user profiles, projects, teams, and the closed enums they are built from.
package types

import "fmt"

// Role is the closed set of roles a user can hold.
type Role string

// Role constants define the supported roles.
const (
	RoleSWE      Role = "swe"
	RolePM       Role = "pm"
	RoleDesigner Role = "designer"
)

// ExperienceLevel is a three-level ordinal: junior < mid < senior.
type ExperienceLevel string

// ExperienceLevel constants define the canonical labels.
const (
	ExperienceJunior ExperienceLevel = "junior"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
)

// Industry is the closed set of industries a project or user can claim.
type Industry string

// Industry constants define the supported industries.
const (
	IndustryFintech        Industry = "fintech"
	IndustryHealthtech     Industry = "healthtech"
	IndustryEdtech         Industry = "edtech"
	IndustryEcommerce      Industry = "ecommerce"
	IndustrySocial         Industry = "social"
	IndustryAIML           Industry = "ai-ml"
	IndustryGaming         Industry = "gaming"
	IndustrySustainability Industry = "sustainability"
)

// WorkEthic is the closed set of working-style preferences.
type WorkEthic string

// WorkEthic constants define the supported working styles.
const (
	WorkEthicAsync         WorkEthic = "async"
	WorkEthicCollaborative WorkEthic = "collaborative"
	WorkEthicStructured    WorkEthic = "structured"
	WorkEthicFlexible      WorkEthic = "flexible"
)

// experienceAliases maps the alternate label set used by older profile
// records onto the canonical three-level ordinal.
var experienceAliases = map[string]ExperienceLevel{
	"junior":       ExperienceJunior,
	"beginner":     ExperienceJunior,
	"mid":          ExperienceMid,
	"intermediate": ExperienceMid,
	"senior":       ExperienceSenior,
	"advanced":     ExperienceSenior,
}

// ParseRole validates a raw role string against the closed enum.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSWE, RolePM, RoleDesigner:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

// ParseExperienceLevel normalizes a raw experience label to the canonical
// ordinal, accepting both label sets found in stored profiles.
func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	if level, ok := experienceAliases[s]; ok {
		return level, nil
	}
	return "", fmt.Errorf("unknown experience level: %q", s)
}

// ParseIndustry validates a raw industry string against the closed enum.
func ParseIndustry(s string) (Industry, error) {
	switch Industry(s) {
	case IndustryFintech, IndustryHealthtech, IndustryEdtech, IndustryEcommerce,
		IndustrySocial, IndustryAIML, IndustryGaming, IndustrySustainability:
		return Industry(s), nil
	}
	return "", fmt.Errorf("unknown industry: %q", s)
}

// ParseWorkEthic validates a raw work-ethic string against the closed enum.
func ParseWorkEthic(s string) (WorkEthic, error) {
	switch WorkEthic(s) {
	case WorkEthicAsync, WorkEthicCollaborative, WorkEthicStructured, WorkEthicFlexible:
		return WorkEthic(s), nil
	}
	return "", fmt.Errorf("unknown work ethic: %q", s)
}

// ParseIndustries validates a list of raw industry strings. The list must
// be non-empty; unknown values are rejected rather than silently dropped.
func ParseIndustries(raw []string) ([]Industry, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("at least one industry is required")
	}
	industries := make([]Industry, 0, len(raw))
	for _, s := range raw {
		industry, err := ParseIndustry(s)
		if err != nil {
			return nil, err
		}
		industries = append(industries, industry)
	}
	return industries, nil
}
