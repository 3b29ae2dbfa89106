// Package projects holds the past-work records used to ground behavioral
// answers, and picks the record that best fits a question.
package projects

import (
	"log"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

// Record is one past project. Loaded once at startup, immutable afterwards.
type Record struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Role          string   `yaml:"role"`
	Company       string   `yaml:"company"`
	ShortSummary  string   `yaml:"short_summary"`
	ImpactSummary string   `yaml:"impact_summary"`
	Tags          []string `yaml:"tags"`
}

// Load reads the project list from a YAML file. A missing or unparseable
// file degrades to an empty list; the second return reports the degradation
// so the caller can log it once at startup.
func Load(fs afero.Fs, path string) ([]Record, bool) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		log.Printf("no project list at %s, behavioral picking disabled", path)

		return nil, true
	}

	var records []Record

	if err := yaml.Unmarshal(data, &records); err != nil {
		log.Printf("could not parse project list %s: %v", path, err)

		return nil, true
	}

	return records, false
}
