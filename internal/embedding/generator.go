// Package embedding provides deterministic text vectorization and cosine similarity.
package embedding

import (
	"hash/fnv"
	"math"

	"github.com/jonathan/resume-screener/internal/parsing"
)

// DefaultDimension is the vector dimension used when none is configured.
const DefaultDimension = 128

// Generator produces fixed-dimension vectors from token sequences using a
// hashed bag-of-tokens scheme: each token is hashed into one of Dimension
// buckets, bucket values accumulate token frequency, and the result is
// L2-normalized. The same text always produces a bit-identical vector, which
// the caching and test fixtures rely on. Vectors from generators with
// different dimensions are not comparable.
type Generator struct {
	dimension int
}

// NewGenerator creates a Generator with the given dimension.
// Non-positive dimensions fall back to DefaultDimension.
func NewGenerator(dimension int) *Generator {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &Generator{dimension: dimension}
}

// Dimension returns the fixed output dimension of this generator.
func (g *Generator) Dimension() int {
	return g.dimension
}

// Embed vectorizes an already-tokenized text. An empty token sequence yields
// the zero vector; CosineSimilarity treats that as similarity 0 rather than
// dividing by zero.
func (g *Generator) Embed(tokens []string) []float64 {
	vec := make([]float64, g.dimension)
	if len(tokens) == 0 {
		return vec
	}

	for _, token := range tokens {
		if token == "" {
			continue
		}
		vec[g.bucket(token)]++
	}

	return l2Normalize(vec)
}

// EmbedText normalizes, tokenizes, and vectorizes raw text in one step.
func (g *Generator) EmbedText(text string) []float64 {
	return g.Embed(parsing.Tokenize(text))
}

// bucket maps a token to its accumulator index via FNV-1a.
func (g *Generator) bucket(token string) int {
	h := fnv.New64a()
	_, _ = h.Write([]byte(token))
	return int(h.Sum64() % uint64(g.dimension))
}

// l2Normalize scales vec to unit length in place and returns it.
// The zero vector is returned unchanged.
func l2Normalize(vec []float64) []float64 {
	var sumSquares float64
	for _, v := range vec {
		sumSquares += v * v
	}
	if sumSquares == 0 {
		return vec
	}

	norm := math.Sqrt(sumSquares)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}
