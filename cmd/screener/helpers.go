package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/types"
)

// buildEngine loads the optional config file and constructs the engine from it.
func buildEngine(configPath string) (*screening.Engine, *config.Config, error) {
	var cfg *config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	engine, err := screening.NewEngineFromConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build engine: %w", err)
	}
	return engine, cfg, nil
}

// loadJobDescription reads a JobDescription JSON file.
func loadJobDescription(path string) (*types.JobDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	var job types.JobDescription
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job JSON: %w", err)
	}
	return &job, nil
}

// loadResumes reads resume records from a path: either a JSON file holding an
// array of ResumeRecord, or a directory of already-extracted .txt files where
// each file becomes one record keyed by its base name.
func loadResumes(path string) ([]types.ResumeRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat resumes path %s: %w", path, err)
	}

	if !info.IsDir() {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read resumes file %s: %w", path, err)
		}
		var resumes []types.ResumeRecord
		if err := json.Unmarshal(data, &resumes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resumes JSON: %w", err)
		}
		return resumes, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resumes directory %s: %w", path, err)
	}

	var resumes []types.ResumeRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		filePath := filepath.Join(path, entry.Name())
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume %s: %w", filePath, err)
		}
		resumes = append(resumes, types.ResumeRecord{
			ID:       strings.TrimSuffix(entry.Name(), ".txt"),
			FileName: entry.Name(),
			RawText:  string(data),
		})
	}

	// ReadDir sorts by name already; keep the guarantee explicit since the
	// ranking tie-break depends on stable IDs, not input order.
	sort.Slice(resumes, func(i, j int) bool { return resumes[i].ID < resumes[j].ID })
	return resumes, nil
}

// writeJSON marshals v with indentation and writes it to outPath, creating
// parent directories as needed. An empty outPath writes to stdout.
func writeJSON(outPath string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	if outPath == "" {
		fmt.Println(string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(outPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(outPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}
	return nil
}
