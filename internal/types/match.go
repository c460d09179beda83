// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobDescription represents a job posting prepared for matching.
// It is built once per posting and read-only afterwards.
type JobDescription struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	RawText        string    `json:"raw_text"`
	Embedding      []float64 `json:"embedding,omitempty"`
	RequiredSkills []string  `json:"required_skills"`
}

// ResumeRecord represents one candidate resume after text extraction.
// RawText is the already-extracted plain text; document decoding happens upstream.
type ResumeRecord struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name,omitempty"`
	RawText     string    `json:"raw_text"`
	Embedding   []float64 `json:"embedding,omitempty"`
	FoundSkills []string  `json:"found_skills,omitempty"`
}

// MatchResult represents the scored outcome of comparing one resume against one job.
// Rank order is a property of the full result slice for a job, not of a single result.
type MatchResult struct {
	ResumeID        string   `json:"resume_id"`
	FileName        string   `json:"file_name,omitempty"`
	SimilarityScore float64  `json:"similarity_score"`
	MatchedSkills   []string `json:"matched_skills"`
	SkillMatchRatio float64  `json:"skill_match_ratio"`
	MatchPercentage int      `json:"match_percentage"`
	// Failed marks a sentinel result for a resume whose comparison aborted
	// (embedding dimension mismatch); the rest of the batch is unaffected.
	Failed      bool   `json:"failed,omitempty"`
	FailureNote string `json:"failure_note,omitempty"`
}

// RankedMatches represents the ordered result set for one job description.
type RankedMatches struct {
	JobID   string        `json:"job_id"`
	Results []MatchResult `json:"results"`
}
