// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Priority tiers for an AdvisorReport, from most to least urgent.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// SectionFlags records which structural signals were detected in a resume.
// Each flag is derived independently; none short-circuits another.
type SectionFlags struct {
	HasContactInfo           bool `json:"has_contact_info"`
	HasSkillsSection         bool `json:"has_skills_section"`
	HasProjectsOrExperience  bool `json:"has_projects_or_experience"`
	HasEducation             bool `json:"has_education"`
	HasQuantifiedAchievement bool `json:"has_quantified_achievements"`
	HasActionVerbs           bool `json:"has_action_verbs"`
	HasBulletFormatting      bool `json:"has_bullet_formatting"`
}

// AdvisorReport represents the quality assessment of a resume independent of any job.
// Suggestions are ordered by descending deduction weight, highest-impact fix first.
type AdvisorReport struct {
	Score       int          `json:"score"`
	Priority    string       `json:"priority"`
	Summary     string       `json:"summary"`
	Suggestions []string     `json:"suggestions"`
	Sections    SectionFlags `json:"sections"`
}
