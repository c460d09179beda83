// Package matching ranks resumes against a job description with a blended score.
package matching

import (
	"context"
	"errors"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/embedding"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// Blend weights for the match percentage. Similarity to the full job text is
// the primary signal; explicit skill overlap corroborates it.
const (
	SimilarityWeight = 0.6
	SkillWeight      = 0.4
)

// Ranker scores a batch of resumes against one job description. Per-resume
// work is independent, so the batch runs as a bounded parallel map; the final
// sort is the only step that needs the whole collection.
type Ranker struct {
	generator *embedding.Generator
	extractor *skills.Extractor
	workers   int
}

// NewRanker creates a Ranker. Non-positive worker counts default to the
// number of CPUs.
func NewRanker(generator *embedding.Generator, extractor *skills.Extractor, workers int) *Ranker {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Ranker{
		generator: generator,
		extractor: extractor,
		workers:   workers,
	}
}

// Rank scores every resume against the job and returns results ordered by
// descending match percentage, ties broken by resume ID ascending. A resume
// with an embedding dimension mismatch produces a sentinel failed result and
// never aborts the rest of the batch. The only error Rank itself returns is
// context cancellation.
func (r *Ranker) Rank(ctx context.Context, job *types.JobDescription, resumes []types.ResumeRecord) ([]types.MatchResult, error) {
	jobEmbedding := job.Embedding
	if jobEmbedding == nil {
		jobEmbedding = r.generator.EmbedText(job.RawText)
	}

	results := make([]types.MatchResult, len(resumes))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := range resumes {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = r.scoreOne(job, jobEmbedding, &resumes[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].MatchPercentage != results[j].MatchPercentage {
			return results[i].MatchPercentage > results[j].MatchPercentage
		}
		return results[i].ResumeID < results[j].ResumeID
	})
	return results, nil
}

// scoreOne produces the MatchResult for a single resume.
func (r *Ranker) scoreOne(job *types.JobDescription, jobEmbedding []float64, resume *types.ResumeRecord) types.MatchResult {
	result := types.MatchResult{
		ResumeID: resume.ID,
		FileName: resume.FileName,
	}

	resumeEmbedding := resume.Embedding
	if resumeEmbedding == nil {
		resumeEmbedding = r.generator.Embed(parsing.Tokenize(resume.RawText))
	}

	similarity, err := embedding.CosineSimilarity(resumeEmbedding, jobEmbedding)
	if err != nil {
		var dimErr *embedding.DimensionError
		if errors.As(err, &dimErr) {
			result.Failed = true
			result.FailureNote = dimErr.Error()
			return result
		}
		// CosineSimilarity only fails on dimension mismatch today; treat
		// anything else the same way rather than dropping the resume.
		result.Failed = true
		result.FailureNote = err.Error()
		return result
	}

	found := resume.FoundSkills
	if found == nil {
		found = r.extractor.Extract(resume.RawText)
	}
	matched := skills.Intersect(found, job.RequiredSkills)

	ratio := float64(len(matched)) / math.Max(1, float64(len(job.RequiredSkills)))

	result.SimilarityScore = similarity
	result.MatchedSkills = matched
	result.SkillMatchRatio = ratio
	result.MatchPercentage = blendPercentage(similarity, ratio)
	return result
}

// blendPercentage combines the two signals into the 0-100 match percentage.
func blendPercentage(similarity, skillRatio float64) int {
	pct := int(math.Round(100 * (SimilarityWeight*similarity + SkillWeight*skillRatio)))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
