package advisor

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Deduction weights per missing signal. The weights are the tuning surface of
// the scorer; control flow never depends on their specific values.
const (
	deductContactInfo   = 15
	deductSkillsSection = 15
	deductExperience    = 15
	deductQuantified    = 15
	deductEducation     = 10
	deductActionVerbs   = 10
	deductBullets       = 10
	deductSkillGap      = 10

	// skillGapThreshold is the number of missing job-required skills at which
	// the skill-gap deduction applies.
	skillGapThreshold = 3
)

// Priority tier thresholds over the final score.
const (
	tierLowMin    = 85
	tierMediumMin = 70
	tierHighMin   = 50
)

// Input bundles everything the scorer consumes. JobSkills is optional; when
// empty, the skill-gap rule is skipped entirely.
type Input struct {
	Flags       types.SectionFlags
	FoundSkills []string
	JobSkills   []string
	// TextLength is the length of the normalized resume text. Zero means the
	// resume had no extractable content, which floors the score to 0.
	TextLength int
}

// deductionRule is one row of the scoring table. Rules are ordered by weight
// descending so the suggestion list comes out highest-impact first.
type deductionRule struct {
	weight  int
	applies func(Input) bool
	suggest func(Input) string
}

var deductionRules = []deductionRule{
	{
		weight:  deductContactInfo,
		applies: func(in Input) bool { return !in.Flags.HasContactInfo },
		suggest: func(Input) string {
			return "Add contact information near the top: an email address and a phone number (e.g. jane.doe@example.com, +1 555 123 4567)."
		},
	},
	{
		weight:  deductSkillsSection,
		applies: func(in Input) bool { return !in.Flags.HasSkillsSection },
		suggest: func(Input) string {
			return `Add a dedicated "Skills:" section listing your technical skills so screeners can find them at a glance.`
		},
	},
	{
		weight:  deductExperience,
		applies: func(in Input) bool { return !in.Flags.HasProjectsOrExperience },
		suggest: func(Input) string {
			return `Add an "Experience" or "Projects" section describing what you built and shipped.`
		},
	},
	{
		weight:  deductQuantified,
		applies: func(in Input) bool { return !in.Flags.HasQuantifiedAchievement },
		suggest: func(Input) string {
			return `Quantify achievements with concrete numbers (e.g. "reduced load time by 40%", "served 10,000 users").`
		},
	},
	{
		weight:  deductEducation,
		applies: func(in Input) bool { return !in.Flags.HasEducation },
		suggest: func(Input) string {
			return `Add an "Education" section with your degree or certifications (e.g. "B.S. Computer Science").`
		},
	},
	{
		weight:  deductActionVerbs,
		applies: func(in Input) bool { return !in.Flags.HasActionVerbs },
		suggest: func(Input) string {
			return `Open bullet points with strong action verbs such as "developed", "implemented", or "optimized".`
		},
	},
	{
		weight:  deductBullets,
		applies: func(in Input) bool { return !in.Flags.HasBulletFormatting },
		suggest: func(Input) string {
			return `Format accomplishments as bullet points ("-" or "•") rather than paragraphs.`
		},
	},
	{
		weight: deductSkillGap,
		applies: func(in Input) bool {
			return len(in.JobSkills) > 0 && len(missingSkills(in)) >= skillGapThreshold
		},
		suggest: func(in Input) string {
			missing := missingSkills(in)
			return fmt.Sprintf("Cover the job-required skills missing from the resume: %s.", strings.Join(missing, ", "))
		},
	},
}

// Score converts section flags and keyword-gap analysis into a 0-100 quality
// score, a priority tier, and an ordered suggestion list. It never fails: a
// resume with zero extractable structure yields the maximal suggestion list
// and score 0.
func Score(in Input) types.AdvisorReport {
	score := 100
	var suggestions []string

	for _, rule := range deductionRules {
		if !rule.applies(in) {
			continue
		}
		score -= rule.weight
		suggestions = append(suggestions, rule.suggest(in))
	}

	if score < 0 {
		score = 0
	}
	// Absence of content is the worst possible outcome, not an error.
	if in.TextLength == 0 {
		score = 0
	}

	priority := priorityFor(score)
	return types.AdvisorReport{
		Score:       score,
		Priority:    priority,
		Summary:     summarize(score, priority, len(suggestions)),
		Suggestions: suggestions,
		Sections:    in.Flags,
	}
}

// missingSkills returns job-required skills absent from the found set,
// compared case-insensitively, in job order.
func missingSkills(in Input) []string {
	found := make(map[string]bool, len(in.FoundSkills))
	for _, name := range in.FoundSkills {
		found[strings.ToLower(name)] = true
	}

	var missing []string
	for _, name := range in.JobSkills {
		if !found[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	return missing
}

func priorityFor(score int) string {
	switch {
	case score >= tierLowMin:
		return types.PriorityLow
	case score >= tierMediumMin:
		return types.PriorityMedium
	case score >= tierHighMin:
		return types.PriorityHigh
	default:
		return types.PriorityCritical
	}
}

func summarize(score int, priority string, suggestionCount int) string {
	if suggestionCount == 0 {
		return fmt.Sprintf("Resume scored %d/100 (%s priority). No structural improvements needed.", score, priority)
	}
	return fmt.Sprintf("Resume scored %d/100 (%s priority). %d improvement(s) suggested, highest impact first.", score, priority, suggestionCount)
}
