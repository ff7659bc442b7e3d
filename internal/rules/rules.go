// Package rules maps free-text merchant and operation descriptions to a
// cleaned label and a category using ordered substring rule tables.
package rules

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rule is one substring rule. An empty Label means "keep the input text".
type Rule struct {
	Match       string `yaml:"match"`
	Label       string `yaml:"label,omitempty"`
	Category    string `yaml:"category,omitempty"`
	SubCategory string `yaml:"sub_category,omitempty"`
}

// Table is an ordered rule table. Rules are evaluated top to bottom and
// the first containment match wins, so table order is part of the
// configuration's meaning. Prefixes are stripped before matching.
type Table struct {
	Prefixes []string `yaml:"prefixes,omitempty"`
	Rules    []Rule   `yaml:"rules"`
}

// Tables bundles the two rule tables used by the pipelines.
type Tables struct {
	Merchants  Table `yaml:"merchants"`
	Operations Table `yaml:"operations"`
}

// Categorize cleans text and assigns its category and sub-category.
// Empty input yields empty results; unmatched input passes through with
// an empty category.
func (t *Table) Categorize(text string) (label, category, subCategory string) {
	if text == "" {
		return "", "", ""
	}
	for _, p := range t.Prefixes {
		text = strings.ReplaceAll(text, p, "")
	}
	for _, r := range t.Rules {
		if strings.Contains(text, r.Match) {
			label = r.Label
			if label == "" {
				label = text
			}
			return label, r.Category, r.SubCategory
		}
	}
	return text, "", ""
}

// Load reads rule tables from a YAML file.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}
	return &t, nil
}

// Save writes rule tables to a YAML file.
func Save(path string, t *Tables) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshaling rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}
	return nil
}
