package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeTempConfig(t, `{
		"vocabulary_path": "vocab.json",
		"embedding_dimension": 256,
		"workers": 4,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "vocab.json", cfg.VocabularyPath)
	assert.Equal(t, 256, cfg.EmbeddingDimension)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyObject(t *testing.T) {
	path := writeTempConfig(t, `{}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.ErrorContains(t, err, "config path is empty")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{not json`)

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	vocabPath := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(vocabPath, []byte(`{"skills":[{"name":"Go"}]}`), 0o644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"zero config", Config{}, ""},
		{"valid", Config{VocabularyPath: vocabPath, EmbeddingDimension: 128, Workers: 2}, ""},
		{"negative dimension", Config{EmbeddingDimension: -1}, "embedding_dimension"},
		{"negative workers", Config{Workers: -1}, "workers"},
		{"missing vocabulary file", Config{VocabularyPath: "/does/not/exist.json"}, "vocabulary file not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		VocabularyPath:     "default.json",
		EmbeddingDimension: 128,
		Workers:            4,
	}

	cfg := Config{EmbeddingDimension: 256}
	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "default.json", merged.VocabularyPath)
	assert.Equal(t, 256, merged.EmbeddingDimension)
	assert.Equal(t, 4, merged.Workers)
}

func TestMergeWithDefaults_SetValuesWin(t *testing.T) {
	cfg := Config{VocabularyPath: "mine.json", Workers: 1}
	merged := cfg.MergeWithDefaults(Config{VocabularyPath: "default.json", Workers: 8})

	assert.Equal(t, "mine.json", merged.VocabularyPath)
	assert.Equal(t, 1, merged.Workers)
}
