package concepts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// conceptFile is the on-disk project format.
type conceptFile struct {
	Project  string        `yaml:"project"`
	Concepts []conceptSpec `yaml:"concepts"`
}

type conceptSpec struct {
	ID            string         `yaml:"id"`
	Name          string         `yaml:"name"`
	Definition    string         `yaml:"definition"`
	Tier          int            `yaml:"tier"`
	Prerequisites []string       `yaml:"prerequisites"`
	Questions     []questionSpec `yaml:"questions"`
}

type questionSpec struct {
	ID      string   `yaml:"id"`
	Text    string   `yaml:"text"`
	Format  string   `yaml:"format"`
	Answer  string   `yaml:"answer"`
	Choices []string `yaml:"choices"`
}

// LoadFile reads a project concept file and validates it as a graph
// (unique IDs, known prerequisite edges, no cycles).
func LoadFile(path string) ([]Concept, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read concept file: %w", err)
	}

	var file conceptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse concept file: %w", err)
	}

	list := make([]Concept, 0, len(file.Concepts))
	for _, spec := range file.Concepts {
		if spec.ID == "" {
			return nil, fmt.Errorf("concept with empty id in %s", path)
		}
		tier := Tier(spec.Tier)
		if tier < TierCore || tier > TierEnrichment {
			return nil, fmt.Errorf("concept %q: tier %d out of range", spec.ID, spec.Tier)
		}

		c := Concept{
			ID:            spec.ID,
			Name:          spec.Name,
			Definition:    spec.Definition,
			Tier:          tier,
			Prerequisites: spec.Prerequisites,
		}
		for _, q := range spec.Questions {
			format := QuestionFormat(q.Format)
			switch format {
			case FormatMultipleChoice, FormatTrueFalse, FormatOpenText:
			default:
				return nil, fmt.Errorf("question %q: unknown format %q", q.ID, q.Format)
			}
			c.Questions = append(c.Questions, Question{
				ID:      q.ID,
				Text:    q.Text,
				Format:  format,
				Answer:  q.Answer,
				Choices: q.Choices,
			})
		}
		list = append(list, c)
	}

	if _, err := NewGraph(list); err != nil {
		return nil, fmt.Errorf("validate concept graph: %w", err)
	}
	return list, nil
}
