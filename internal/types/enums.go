// Package types provides the canonical resume data model shared across the resume-builder system.
package types

import "strings"

// EmploymentType categorizes an experience entry by employment arrangement.
type EmploymentType string

// EmploymentType values
const (
	EmploymentFullTime       EmploymentType = "FULL_TIME"
	EmploymentPartTime       EmploymentType = "PART_TIME"
	EmploymentContract       EmploymentType = "CONTRACT"
	EmploymentInternship     EmploymentType = "INTERNSHIP"
	EmploymentFreelance      EmploymentType = "FREELANCE"
	EmploymentSelfEmployed   EmploymentType = "SELF_EMPLOYED"
	EmploymentSeasonal       EmploymentType = "SEASONAL"
	EmploymentApprenticeship EmploymentType = "APPRENTICESHIP"
)

// LocationType categorizes where work is performed.
type LocationType string

// LocationType values
const (
	LocationOnSite LocationType = "ON_SITE"
	LocationRemote LocationType = "REMOTE"
	LocationHybrid LocationType = "HYBRID"
)

// SkillCategory groups skills for presentation.
type SkillCategory string

// SkillCategory values
const (
	SkillTechnical SkillCategory = "TECHNICAL"
	SkillSoft      SkillCategory = "SOFT"
	SkillLanguage  SkillCategory = "LANGUAGE"
)

// SkillProficiency describes self-assessed skill level.
type SkillProficiency string

// SkillProficiency values
const (
	ProficiencyBeginner     SkillProficiency = "BEGINNER"
	ProficiencyIntermediate SkillProficiency = "INTERMEDIATE"
	ProficiencyAdvanced     SkillProficiency = "ADVANCED"
	ProficiencyExpert       SkillProficiency = "EXPERT"
)

// normalizeEnum uppercases a value and folds hyphens and spaces to
// underscores so that inputs like "on-site" or "Full Time" match their
// canonical constants.
func normalizeEnum(value string) string {
	v := strings.ToUpper(strings.TrimSpace(value))
	v = strings.ReplaceAll(v, "-", "_")
	v = strings.ReplaceAll(v, " ", "_")
	return v
}

// MapToEmploymentType coerces an externally supplied value to a valid
// EmploymentType. Unrecognized values fall back to FULL_TIME; the ok
// result reports whether the input matched a declared value.
func MapToEmploymentType(value string) (EmploymentType, bool) {
	switch EmploymentType(normalizeEnum(value)) {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract,
		EmploymentInternship, EmploymentFreelance, EmploymentSelfEmployed,
		EmploymentSeasonal, EmploymentApprenticeship:
		return EmploymentType(normalizeEnum(value)), true
	}
	return EmploymentFullTime, false
}

// MapToLocationType coerces an externally supplied value to a valid
// LocationType, defaulting to ON_SITE.
func MapToLocationType(value string) (LocationType, bool) {
	switch LocationType(normalizeEnum(value)) {
	case LocationOnSite, LocationRemote, LocationHybrid:
		return LocationType(normalizeEnum(value)), true
	}
	return LocationOnSite, false
}

// MapToSkillCategory coerces an externally supplied value to a valid
// SkillCategory, defaulting to TECHNICAL.
func MapToSkillCategory(value string) (SkillCategory, bool) {
	switch SkillCategory(normalizeEnum(value)) {
	case SkillTechnical, SkillSoft, SkillLanguage:
		return SkillCategory(normalizeEnum(value)), true
	}
	return SkillTechnical, false
}

// MapToSkillProficiency coerces an externally supplied value to a valid
// SkillProficiency, defaulting to INTERMEDIATE.
func MapToSkillProficiency(value string) (SkillProficiency, bool) {
	switch SkillProficiency(normalizeEnum(value)) {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return SkillProficiency(normalizeEnum(value)), true
	}
	return ProficiencyIntermediate, false
}
