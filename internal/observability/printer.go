// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResults outputs a human-readable ranking table for one job.
func (p *Printer) PrintMatchResults(job *types.JobDescription, results []types.MatchResult) {
	if job == nil || len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job: %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Required skills: %d\n\n", len(job.RequiredSkills)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		if r.Failed {
			sb.WriteString(fmt.Sprintf("%d. %s — failed (%s)\n", i+1, r.ResumeID, r.FailureNote))
			continue
		}
		sb.WriteString(fmt.Sprintf("%d. %s — %d%%\n", i+1, r.ResumeID, r.MatchPercentage))
		sb.WriteString(fmt.Sprintf("   similarity %.2f, skills %d matched\n", r.SimilarityScore, len(r.MatchedSkills)))
	}
	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(results)-maxItemsToShow))
	}

	p.printBox("Match Ranking", sb.String())
}

// PrintAdvisorReport outputs a human-readable summary of a quality report.
func (p *Printer) PrintAdvisorReport(report *types.AdvisorReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", report.Score))
	sb.WriteString(fmt.Sprintf("Priority: %s\n", report.Priority))
	sb.WriteString("\n")

	if len(report.Suggestions) > 0 {
		sb.WriteString("Suggestions:\n")
		count := min(len(report.Suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.Suggestions[i]))
		}
		if len(report.Suggestions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.Suggestions)-maxItemsToShow))
		}
	} else {
		sb.WriteString("No suggestions.\n")
	}

	p.printBox("Advisor Report", sb.String())
}

// PrintVocabulary outputs a short summary of a loaded skill vocabulary.
func (p *Printer) PrintVocabulary(vocab *types.Vocabulary) {
	if vocab == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills: %d\n", len(vocab.Skills)))
	count := min(len(vocab.Skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := vocab.Skills[i]
		sb.WriteString(fmt.Sprintf("  • %s (%d aliases)\n", s.Name, len(s.Aliases)))
	}
	if len(vocab.Skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(vocab.Skills)-maxItemsToShow))
	}

	p.printBox("Skill Vocabulary", sb.String())
}
