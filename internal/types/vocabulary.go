// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Vocabulary represents the curated skill vocabulary: canonical skill names
// mapped to accepted surface-form aliases. It is configuration data, loaded
// once and shared read-only across concurrent scoring.
type Vocabulary struct {
	Skills []VocabularySkill `json:"skills" validate:"required,min=1,dive"`
}

// VocabularySkill represents one canonical skill and its surface forms.
// The canonical name itself always counts as an alias.
type VocabularySkill struct {
	Name    string   `json:"name" validate:"required"`
	Aliases []string `json:"aliases,omitempty"`
}
