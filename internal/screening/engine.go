// Package screening wires the scoring components into the two public engine
// entry points: ranking resumes against a job and advising on resume quality.
package screening

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/advisor"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/embedding"
	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// Engine aggregates the scoring components behind a stable surface. All
// components are pure functions over immutable inputs, so one Engine is safe
// for concurrent use across goroutines.
type Engine struct {
	generator *embedding.Generator
	extractor *skills.Extractor
	detector  *advisor.Detector
	ranker    *matching.Ranker
}

// Options configures engine construction. Zero values select the defaults:
// built-in vocabulary, default ruleset, embedding.DefaultDimension, one
// worker per CPU.
type Options struct {
	Vocabulary *types.Vocabulary
	Ruleset    *advisor.Ruleset
	Dimension  int
	Workers    int
}

// NewEngine constructs an Engine from options.
func NewEngine(opts Options) *Engine {
	generator := embedding.NewGenerator(opts.Dimension)
	extractor := skills.NewExtractor(opts.Vocabulary)
	return &Engine{
		generator: generator,
		extractor: extractor,
		detector:  advisor.NewDetector(opts.Ruleset),
		ranker:    matching.NewRanker(generator, extractor, opts.Workers),
	}
}

// NewEngineFromConfig builds an Engine from a loaded CLI configuration,
// loading the vocabulary file when one is configured.
func NewEngineFromConfig(cfg *config.Config) (*Engine, error) {
	opts := Options{}
	if cfg != nil {
		opts.Dimension = cfg.EmbeddingDimension
		opts.Workers = cfg.Workers
		if cfg.VocabularyPath != "" {
			vocab, err := skills.LoadVocabulary(cfg.VocabularyPath)
			if err != nil {
				return nil, err
			}
			opts.Vocabulary = vocab
		}
	}
	return NewEngine(opts), nil
}

// RankResumes scores every resume against the job and returns results ordered
// by descending match percentage, ties broken by resume ID. The job's
// embedding and required-skill set are derived from its raw text when absent,
// and resumes without IDs are assigned one, so callers can pass bare text
// records. Deterministic given identical inputs and a fixed vocabulary.
func (e *Engine) RankResumes(ctx context.Context, job types.JobDescription, resumes []types.ResumeRecord) ([]types.MatchResult, error) {
	if job.Embedding == nil {
		job.Embedding = e.generator.EmbedText(job.RawText)
	}
	if job.RequiredSkills == nil {
		job.RequiredSkills = e.extractor.Extract(job.RawText)
	}

	prepared := make([]types.ResumeRecord, len(resumes))
	copy(prepared, resumes)
	for i := range prepared {
		if prepared[i].ID == "" {
			prepared[i].ID = uuid.NewString()
		}
	}

	return e.ranker.Rank(ctx, &job, prepared)
}

// AnalyzeQuality produces the job-independent quality report for one resume.
// jobSkills is optional; when provided it enables the keyword-gap rule.
// The call never fails: empty text yields score 0 with the full suggestion
// list.
func (e *Engine) AnalyzeQuality(resumeText string, jobSkills []string) types.AdvisorReport {
	flags := e.detector.Detect(resumeText)
	found := e.extractor.Extract(resumeText)

	return advisor.Score(advisor.Input{
		Flags:       flags,
		FoundSkills: found,
		JobSkills:   jobSkills,
		TextLength:  len(parsing.Normalize(resumeText)),
	})
}

// Generator exposes the engine's embedding generator, mainly for callers that
// want to precompute and cache vectors.
func (e *Engine) Generator() *embedding.Generator {
	return e.generator
}

// Extractor exposes the engine's skill extractor.
func (e *Engine) Extractor() *skills.Extractor {
	return e.extractor
}
