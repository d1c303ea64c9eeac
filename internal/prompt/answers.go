package prompt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Answers is the immutable result of a prompt session.
type Answers struct {
	Name        string
	Version     string
	Description string
}

// FromValues builds Answers from a key/value record.
func FromValues(values map[string]string) Answers {
	return Answers{
		Name:        values[KeyName],
		Version:     values[KeyVersion],
		Description: values[KeyDescription],
	}
}

// Values returns the answers as a fresh key/value record.
func (a Answers) Values() map[string]string {
	return map[string]string{
		KeyName:        a.Name,
		KeyVersion:     a.Version,
		KeyDescription: a.Description,
	}
}

type answersFile struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// LoadAnswersFile reads preset answers from a YAML document. Missing keys
// are left out of the returned record.
func LoadAnswersFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}

	var f answersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing answers file %s: %w", path, err)
	}

	presets := make(map[string]string)
	for k, v := range map[string]string{
		KeyName:        f.Name,
		KeyVersion:     f.Version,
		KeyDescription: f.Description,
	} {
		if v != "" {
			presets[k] = v
		}
	}
	return presets, nil
}
