// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// VocabularyPath points at a skill vocabulary JSON file. Empty means the
	// built-in default vocabulary.
	VocabularyPath string `json:"vocabulary_path,omitempty"`

	// EmbeddingDimension is the fixed vector dimension. Vectors are only
	// comparable when produced with the same dimension, so changing this
	// invalidates any cached embeddings.
	EmbeddingDimension int `json:"embedding_dimension,omitempty"`

	// Workers bounds the parallel per-resume scoring. Zero means one worker
	// per CPU.
	Workers int `json:"workers,omitempty"`

	// Verbose prints detailed progress and formatted result boxes.
	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.EmbeddingDimension < 0 {
		return fmt.Errorf("config error: 'embedding_dimension' must be non-negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}

	if c.VocabularyPath != "" {
		if _, err := os.Stat(c.VocabularyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.VocabularyPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-value fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.VocabularyPath == "" {
		result.VocabularyPath = defaults.VocabularyPath
	}
	if result.EmbeddingDimension == 0 {
		result.EmbeddingDimension = defaults.EmbeddingDimension
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
