package embedding

import "fmt"

// DimensionError represents a cosine similarity request over vectors of
// mismatched length. It signals a generator-configuration bug upstream and
// should never occur when a single Generator produces both vectors.
type DimensionError struct {
	LenA int
	LenB int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("embedding dimension mismatch: %d vs %d", e.LenA, e.LenB)
}
