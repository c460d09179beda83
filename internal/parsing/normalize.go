// Package parsing provides text normalization and tokenization for the scoring pipeline.
package parsing

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reNonWord    = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Normalize converts raw text into the canonical form every downstream component
// consumes: lowercase, non-printable characters stripped, punctuation replaced by
// spaces, runs of whitespace collapsed. Normalizing already-normalized text
// returns the same value. Empty input yields an empty string, never an error.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// Drop control and other non-printable runes first so they cannot
	// survive as token separators.
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	normalized := strings.ToLower(b.String())
	normalized = reNonWord.ReplaceAllString(normalized, " ")
	normalized = reWhitespace.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// Tokenize splits text into its ordered sequence of normalized tokens.
// Raw text is accepted; it is normalized first. Empty input yields nil.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}
