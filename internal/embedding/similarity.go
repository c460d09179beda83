package embedding

import "math"

// CosineSimilarity computes the cosine similarity between two vectors of equal
// dimension, clamped to [0,1]. Negative cosine values are floored to 0:
// anti-similarity has no meaningful interpretation for job matching. A zero
// vector on either side yields 0. Mismatched lengths return a *DimensionError.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &DimensionError{LenA: len(a), LenB: len(b)}
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	// Both inputs are L2-normalized by the generator, so the denominators are
	// 1 in practice; keeping them guards against externally supplied vectors.
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0, nil
	}
	if sim > 1 {
		return 1, nil
	}
	return sim, nil
}
