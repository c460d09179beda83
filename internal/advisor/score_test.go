package advisor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

func allFlags() types.SectionFlags {
	return types.SectionFlags{
		HasContactInfo:           true,
		HasSkillsSection:         true,
		HasProjectsOrExperience:  true,
		HasEducation:             true,
		HasQuantifiedAchievement: true,
		HasActionVerbs:           true,
		HasBulletFormatting:      true,
	}
}

func TestScore_PerfectResume(t *testing.T) {
	report := Score(Input{Flags: allFlags(), TextLength: 500})

	assert.Equal(t, 100, report.Score)
	assert.Equal(t, types.PriorityLow, report.Priority)
	assert.Empty(t, report.Suggestions)
	assert.Contains(t, report.Summary, "100/100")
	assert.Contains(t, report.Summary, "No structural improvements needed")
}

func TestScore_SingleDeductions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.SectionFlags)
		want   int
	}{
		{"missing contact", func(f *types.SectionFlags) { f.HasContactInfo = false }, 85},
		{"missing skills section", func(f *types.SectionFlags) { f.HasSkillsSection = false }, 85},
		{"missing experience", func(f *types.SectionFlags) { f.HasProjectsOrExperience = false }, 85},
		{"missing quantified", func(f *types.SectionFlags) { f.HasQuantifiedAchievement = false }, 85},
		{"missing education", func(f *types.SectionFlags) { f.HasEducation = false }, 90},
		{"missing action verbs", func(f *types.SectionFlags) { f.HasActionVerbs = false }, 90},
		{"missing bullets", func(f *types.SectionFlags) { f.HasBulletFormatting = false }, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := allFlags()
			tt.mutate(&flags)

			report := Score(Input{Flags: flags, TextLength: 500})
			assert.Equal(t, tt.want, report.Score)
			assert.Len(t, report.Suggestions, 1)
		})
	}
}

func TestScore_DeductionsAccumulate(t *testing.T) {
	flags := allFlags()
	flags.HasContactInfo = false       // -15
	flags.HasEducation = false         // -10
	flags.HasBulletFormatting = false  // -10

	report := Score(Input{Flags: flags, TextLength: 500})
	assert.Equal(t, 65, report.Score)
	assert.Equal(t, types.PriorityHigh, report.Priority)
	assert.Len(t, report.Suggestions, 3)
}

func TestScore_SkillGapDeduction(t *testing.T) {
	jobSkills := []string{"Go", "React", "AWS", "Kubernetes"}

	// Three or more missing job skills triggers the deduction.
	report := Score(Input{
		Flags:       allFlags(),
		FoundSkills: []string{"Go"},
		JobSkills:   jobSkills,
		TextLength:  500,
	})
	assert.Equal(t, 90, report.Score)
	assert.Len(t, report.Suggestions, 1)
	assert.Contains(t, report.Suggestions[0], "React, AWS, Kubernetes")

	// Two missing skills does not.
	report = Score(Input{
		Flags:       allFlags(),
		FoundSkills: []string{"Go", "React"},
		JobSkills:   jobSkills,
		TextLength:  500,
	})
	assert.Equal(t, 100, report.Score)
	assert.Empty(t, report.Suggestions)
}

func TestScore_SkillGapSkippedWithoutJobSkills(t *testing.T) {
	report := Score(Input{Flags: allFlags(), TextLength: 500})
	assert.Equal(t, 100, report.Score)
}

func TestScore_SkillGapCaseInsensitive(t *testing.T) {
	report := Score(Input{
		Flags:       allFlags(),
		FoundSkills: []string{"go", "react", "aws"},
		JobSkills:   []string{"Go", "React", "AWS"},
		TextLength:  500,
	})
	assert.Equal(t, 100, report.Score)
}

func TestScore_EmptyResume(t *testing.T) {
	report := Score(Input{
		Flags:      types.SectionFlags{},
		JobSkills:  []string{"Go", "React", "AWS"},
		TextLength: 0,
	})

	assert.Equal(t, 0, report.Score)
	assert.Equal(t, types.PriorityCritical, report.Priority)
	// Every rule fires: seven structural deductions plus the skill gap.
	assert.Len(t, report.Suggestions, 8)
}

func TestScore_FloorAtZero(t *testing.T) {
	report := Score(Input{
		Flags:      types.SectionFlags{},
		JobSkills:  []string{"Go", "React", "AWS"},
		TextLength: 10,
	})
	assert.Equal(t, 0, report.Score)
}

func TestScore_PriorityTiers(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, types.PriorityLow},
		{85, types.PriorityLow},
		{84, types.PriorityMedium},
		{70, types.PriorityMedium},
		{69, types.PriorityHigh},
		{50, types.PriorityHigh},
		{49, types.PriorityCritical},
		{0, types.PriorityCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, priorityFor(tt.score), "score %d", tt.score)
	}
}

func TestScore_SuggestionsOrderedByWeight(t *testing.T) {
	report := Score(Input{
		Flags: types.SectionFlags{
			HasContactInfo:           true,
			HasSkillsSection:         true,
			HasProjectsOrExperience:  true,
			HasQuantifiedAchievement: true,
			// education (10) and bullets (10) missing, verbs present
			HasActionVerbs: true,
		},
		JobSkills:   []string{"Go", "React", "AWS"},
		FoundSkills: nil,
		TextLength:  500,
	})

	// 100 - 10 (education) - 10 (bullets) - 10 (skill gap) = 70.
	assert.Equal(t, 70, report.Score)
	assert.Len(t, report.Suggestions, 3)
	assert.Contains(t, report.Suggestions[0], "Education")
	assert.Contains(t, report.Suggestions[1], "bullet points")
	assert.True(t, strings.Contains(report.Suggestions[2], "Go, React, AWS"))
}

func TestScore_ConcreteExamplesInSuggestions(t *testing.T) {
	report := Score(Input{Flags: types.SectionFlags{}, TextLength: 100})

	joined := strings.Join(report.Suggestions, "\n")
	// Each fixed suggestion carries a concrete example a candidate can copy.
	assert.Contains(t, joined, "jane.doe@example.com")
	assert.Contains(t, joined, "reduced load time by 40%")
	assert.Contains(t, joined, "B.S. Computer Science")
	assert.Contains(t, joined, "developed")
}
