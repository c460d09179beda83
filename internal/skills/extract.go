package skills

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/types"
)

// Extractor matches a vocabulary against normalized text. It is built once
// per vocabulary and safe for concurrent use; all state is read-only after
// construction.
type Extractor struct {
	// canonical skill names in vocabulary order, for deterministic output
	names []string
	// canonical name -> normalized alias forms (the name itself included)
	aliases map[string][]string
}

// NewExtractor builds an Extractor from a vocabulary. Aliases are normalized
// with the same pipeline as resume text, so matching stays case-insensitive
// by construction. A nil vocabulary falls back to DefaultVocabulary.
func NewExtractor(vocab *types.Vocabulary) *Extractor {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}

	ex := &Extractor{aliases: make(map[string][]string, len(vocab.Skills))}
	for _, skill := range vocab.Skills {
		if skill.Name == "" {
			continue
		}
		forms := make([]string, 0, len(skill.Aliases)+1)
		if n := matchableForm(skill.Name); n != "" {
			forms = append(forms, n)
		}
		for _, alias := range skill.Aliases {
			if n := matchableForm(alias); n != "" {
				forms = append(forms, n)
			}
		}
		if len(forms) == 0 {
			continue
		}
		ex.names = append(ex.names, skill.Name)
		ex.aliases[skill.Name] = forms
	}
	return ex
}

// matchableForm normalizes an alias surface form. A form that normalization
// collapses to a single character is dropped when the original was longer:
// "C++" and "C#" both reduce to "c", which would match every bare "c" token
// in the text. Such skills list word aliases ("cpp", "csharp") instead.
func matchableForm(form string) string {
	n := parsing.Normalize(form)
	if len([]rune(n)) == 1 && len([]rune(form)) > 1 {
		return ""
	}
	return n
}

// Extract returns the canonical names of every vocabulary skill whose alias
// appears in the text as a whole-word (or whole-phrase) match, in vocabulary
// order. Exact alias match only; "java" does not match inside "javascript".
// Raw text is accepted and normalized first.
func (ex *Extractor) Extract(text string) []string {
	normalized := parsing.Normalize(text)
	if normalized == "" {
		return nil
	}

	// Padding with spaces turns whole-word matching into plain substring
	// search, since normalization already reduced all separators to single
	// spaces. Multi-word aliases need no special casing.
	padded := " " + normalized + " "

	var found []string
	for _, name := range ex.names {
		for _, form := range ex.aliases[name] {
			if strings.Contains(padded, " "+form+" ") {
				found = append(found, name)
				break
			}
		}
	}
	return found
}

// Intersect returns the members of found that also appear in required,
// comparing canonical names case-insensitively. Order follows required.
func Intersect(found, required []string) []string {
	if len(found) == 0 || len(required) == 0 {
		return nil
	}

	foundSet := make(map[string]bool, len(found))
	for _, name := range found {
		foundSet[strings.ToLower(name)] = true
	}

	var matched []string
	seen := make(map[string]bool, len(required))
	for _, name := range required {
		key := strings.ToLower(name)
		if foundSet[key] && !seen[key] {
			matched = append(matched, name)
			seen[key] = true
		}
	}
	return matched
}
