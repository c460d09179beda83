// Package advisor provides resume structure detection and quality scoring.
package advisor

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Ruleset holds the curated keyword lists the section detector runs against.
// It is injected configuration: callers can supply their own lists without
// touching detection logic. A Ruleset is read-only after construction.
type Ruleset struct {
	SkillsHeadings     []string
	ExperienceHeadings []string
	EducationKeywords  []string
	ActionVerbs        []string
	UnitWords          []string
}

// DefaultRuleset returns the built-in detection vocabulary.
func DefaultRuleset() *Ruleset {
	return &Ruleset{
		SkillsHeadings:     []string{"skills", "technical skills", "core competencies"},
		ExperienceHeadings: []string{"experience", "projects", "work history"},
		EducationKeywords:  []string{"education", "certification", "degree", "b.s.", "m.s.", "bachelor", "master"},
		ActionVerbs: []string{
			"developed", "implemented", "optimized", "led", "reduced", "increased",
			"built", "designed", "launched", "automated", "migrated", "delivered",
			"improved", "created", "managed", "architected",
		},
		UnitWords: []string{"x", "hours", "users", "requests", "customers", "percent", "ms", "days"},
	}
}

var (
	reEmail      = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	rePhone      = regexp.MustCompile(`\+?\d[\d\t ().-]{6,}\d`)
	reYearRange  = regexp.MustCompile(`^\d{4}\s*-\s*\d{4}$`)
	rePercentage = regexp.MustCompile(`\d\s*%|%\s*\d`)
	reBullet     = regexp.MustCompile(`^\s*[-•*]\s+`)
)

// Detector scans raw resume text for structural signals. Detection runs on
// the text before normalization because line breaks and punctuation are the
// signals; every heuristic is independent and order does not matter. All
// patterns are compiled at construction, so a Detector is safe for
// concurrent use.
type Detector struct {
	rules        *Ruleset
	verbs        map[string]bool
	eduPatterns  []*regexp.Regexp
	eduLiterals  []string
	unitPatterns []*regexp.Regexp
}

// NewDetector creates a Detector. A nil ruleset uses DefaultRuleset.
func NewDetector(rules *Ruleset) *Detector {
	if rules == nil {
		rules = DefaultRuleset()
	}

	d := &Detector{
		rules: rules,
		verbs: make(map[string]bool, len(rules.ActionVerbs)),
	}
	for _, v := range rules.ActionVerbs {
		d.verbs[strings.ToLower(v)] = true
	}
	for _, keyword := range rules.EducationKeywords {
		// Keywords with embedded punctuation ("b.s.") match as plain
		// substrings; word boundaries do not apply to them.
		if strings.ContainsAny(keyword, ".-/") {
			d.eduLiterals = append(d.eduLiterals, strings.ToLower(keyword))
			continue
		}
		d.eduPatterns = append(d.eduPatterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(strings.ToLower(keyword))+`\b`))
	}
	for _, unit := range rules.UnitWords {
		d.unitPatterns = append(d.unitPatterns, regexp.MustCompile(`\d+\s*`+regexp.QuoteMeta(strings.ToLower(unit))+`\b`))
	}
	return d
}

// Detect returns the section flags for a resume. Empty text yields all-false
// flags, never an error.
func (d *Detector) Detect(rawText string) types.SectionFlags {
	lines := strings.Split(rawText, "\n")

	return types.SectionFlags{
		HasContactInfo:           hasContactInfo(rawText),
		HasSkillsSection:         hasHeading(lines, d.rules.SkillsHeadings),
		HasProjectsOrExperience:  hasHeading(lines, d.rules.ExperienceHeadings),
		HasEducation:             d.hasEducation(rawText),
		HasQuantifiedAchievement: d.hasQuantifiedAchievement(lines),
		HasActionVerbs:           d.hasActionVerbs(lines),
		HasBulletFormatting:      hasBulletFormatting(lines),
	}
}

func hasContactInfo(text string) bool {
	if reEmail.MatchString(text) {
		return true
	}
	// Date ranges in experience entries ("2019 - 2023") satisfy the phone
	// shape; a candidate match of that exact form does not count.
	for _, candidate := range rePhone.FindAllString(text, -1) {
		if !reYearRange.MatchString(candidate) {
			return true
		}
	}
	return false
}

// hasHeading reports whether any line is one of the given headings, either on
// its own or immediately followed by a colon.
func hasHeading(lines []string, headings []string) bool {
	for _, line := range lines {
		trimmed := strings.ToLower(strings.TrimSpace(line))
		if trimmed == "" {
			continue
		}
		for _, heading := range headings {
			if trimmed == heading || strings.HasPrefix(trimmed, heading+":") {
				return true
			}
		}
	}
	return false
}

func (d *Detector) hasEducation(text string) bool {
	lower := strings.ToLower(text)
	for _, literal := range d.eduLiterals {
		if strings.Contains(lower, literal) {
			return true
		}
	}
	for _, re := range d.eduPatterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// hasQuantifiedAchievement looks for a digit adjacent to a percent sign, or a
// digit followed by a unit word, on a bullet-like line.
func (d *Detector) hasQuantifiedAchievement(lines []string) bool {
	for _, line := range lines {
		if !bulletLike(line) {
			continue
		}
		if rePercentage.MatchString(line) {
			return true
		}
		lower := strings.ToLower(line)
		for _, re := range d.unitPatterns {
			if re.MatchString(lower) {
				return true
			}
		}
	}
	return false
}

// hasActionVerbs reports whether any line opens with a strong verb.
// "Near the start" means within the first three words, which tolerates
// leading bullet markers and dates.
func (d *Detector) hasActionVerbs(lines []string) bool {
	for _, line := range lines {
		trimmed := strings.TrimLeft(strings.TrimSpace(line), "-•* \t")
		words := strings.Fields(strings.ToLower(trimmed))
		limit := min(len(words), 3)
		for i := 0; i < limit; i++ {
			if d.verbs[strings.Trim(words[i], ".,;:")] {
				return true
			}
		}
	}
	return false
}

func hasBulletFormatting(lines []string) bool {
	count := 0
	for _, line := range lines {
		if reBullet.MatchString(line) {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

// bulletLike treats marker-prefixed lines and short free-standing statements
// as bullet candidates for the quantified-achievement check.
func bulletLike(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	return reBullet.MatchString(line) || len(trimmed) <= 160
}
