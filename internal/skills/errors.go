package skills

import "fmt"

// VocabularyLoadError represents a failure to load or validate a vocabulary file.
type VocabularyLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *VocabularyLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vocabulary %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("vocabulary %s: %s", e.Path, e.Message)
}

func (e *VocabularyLoadError) Unwrap() error {
	return e.Cause
}
