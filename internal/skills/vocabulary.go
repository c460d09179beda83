// Package skills provides the skill vocabulary and keyword-based skill extraction.
package skills

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-screener/internal/types"
)

var validate = validator.New()

// LoadVocabulary loads a skill vocabulary from a JSON file. The vocabulary is
// tunable configuration, not part of the algorithmic contract, so shipping an
// updated file changes matching behavior without a code change.
func LoadVocabulary(path string) (*types.Vocabulary, error) {
	if path == "" {
		return nil, fmt.Errorf("vocabulary path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &VocabularyLoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	var vocab types.Vocabulary
	if err := json.Unmarshal(data, &vocab); err != nil {
		return nil, &VocabularyLoadError{Path: path, Message: "failed to parse JSON", Cause: err}
	}

	if err := validate.Struct(&vocab); err != nil {
		return nil, &VocabularyLoadError{Path: path, Message: "invalid vocabulary", Cause: err}
	}

	return &vocab, nil
}

// DefaultVocabulary returns the built-in curated vocabulary used when no
// vocabulary file is configured.
func DefaultVocabulary() *types.Vocabulary {
	return &types.Vocabulary{
		Skills: []types.VocabularySkill{
			{Name: "Go", Aliases: []string{"golang", "go lang"}},
			{Name: "Python"},
			{Name: "Java"},
			{Name: "JavaScript", Aliases: []string{"js", "ecmascript"}},
			{Name: "TypeScript", Aliases: []string{"ts"}},
			{Name: "React", Aliases: []string{"react.js", "reactjs"}},
			{Name: "Vue", Aliases: []string{"vue.js", "vuejs"}},
			{Name: "Angular", Aliases: []string{"angularjs"}},
			{Name: "Node.js", Aliases: []string{"nodejs", "node"}},
			{Name: "SQL"},
			{Name: "PostgreSQL", Aliases: []string{"postgres"}},
			{Name: "MySQL"},
			{Name: "MongoDB", Aliases: []string{"mongo"}},
			{Name: "Redis"},
			{Name: "AWS", Aliases: []string{"amazon web services"}},
			{Name: "GCP", Aliases: []string{"google cloud", "google cloud platform"}},
			{Name: "Azure"},
			{Name: "Docker"},
			{Name: "Kubernetes", Aliases: []string{"k8s"}},
			{Name: "Terraform"},
			{Name: "CI/CD", Aliases: []string{"ci cd", "continuous integration", "continuous delivery"}},
			{Name: "Git"},
			{Name: "Linux"},
			{Name: "REST", Aliases: []string{"rest api", "restful"}},
			{Name: "GraphQL"},
			{Name: "gRPC"},
			{Name: "Kafka"},
			{Name: "RabbitMQ"},
			{Name: "Machine Learning", Aliases: []string{"ml"}},
			{Name: "C++", Aliases: []string{"cpp"}},
			{Name: "C#", Aliases: []string{"csharp"}},
			{Name: "Rust"},
			{Name: "Ruby", Aliases: []string{"ruby on rails", "rails"}},
			{Name: "PHP"},
			{Name: "Swift"},
			{Name: "Kotlin"},
			{Name: "HTML"},
			{Name: "CSS"},
			{Name: "Agile", Aliases: []string{"scrum"}},
		},
	}
}
