package quiz

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"union-portal/internal/domain"
)

// LoadDefinition reads the quiz content from YAML. The file is authored by
// the union's activities team; scoring lives in the option-to-trait
// mapping, not in code.
func LoadDefinition(path string) (*domain.QuizDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read quiz definition: %w", err)
	}

	var def domain.QuizDefinition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse quiz definition: %w", err)
	}

	if len(def.Traits) == 0 {
		return nil, fmt.Errorf("quiz definition has no traits")
	}
	if len(def.Questions) == 0 {
		return nil, fmt.Errorf("quiz definition has no questions")
	}

	traits := make(map[string]bool, len(def.Traits))
	for _, t := range def.Traits {
		traits[t.Key] = true
	}
	for _, q := range def.Questions {
		for _, opt := range q.Options {
			if !traits[opt.Trait] {
				return nil, fmt.Errorf("question %d references unknown trait %q", q.ID, opt.Trait)
			}
		}
	}

	return &def, nil
}
