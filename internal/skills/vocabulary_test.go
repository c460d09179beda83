package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempVocab(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadVocabulary_Valid(t *testing.T) {
	path := writeTempVocab(t, `{
		"skills": [
			{"name": "Go", "aliases": ["golang"]},
			{"name": "Python"}
		]
	}`)

	vocab, err := LoadVocabulary(path)
	require.NoError(t, err)
	require.Len(t, vocab.Skills, 2)
	assert.Equal(t, "Go", vocab.Skills[0].Name)
	assert.Equal(t, []string{"golang"}, vocab.Skills[0].Aliases)
}

func TestLoadVocabulary_EmptyPath(t *testing.T) {
	_, err := LoadVocabulary("")
	assert.Error(t, err)
}

func TestLoadVocabulary_MissingFile(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)

	var loadErr *VocabularyLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadVocabulary_InvalidJSON(t *testing.T) {
	path := writeTempVocab(t, `{"skills": [`)

	_, err := LoadVocabulary(path)
	require.Error(t, err)

	var loadErr *VocabularyLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, path, loadErr.Path)
}

func TestLoadVocabulary_EmptySkillListRejected(t *testing.T) {
	path := writeTempVocab(t, `{"skills": []}`)

	_, err := LoadVocabulary(path)
	assert.Error(t, err)
}

func TestLoadVocabulary_MissingNameRejected(t *testing.T) {
	path := writeTempVocab(t, `{"skills": [{"aliases": ["golang"]}]}`)

	_, err := LoadVocabulary(path)
	assert.Error(t, err)
}

func TestDefaultVocabulary_NonEmptyAndWellFormed(t *testing.T) {
	vocab := DefaultVocabulary()
	require.NotEmpty(t, vocab.Skills)

	seen := make(map[string]bool)
	for _, skill := range vocab.Skills {
		assert.NotEmpty(t, skill.Name)
		assert.False(t, seen[skill.Name], "duplicate canonical skill %q", skill.Name)
		seen[skill.Name] = true
	}
}
