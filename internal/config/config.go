// Package config loads the releve.yaml configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level releve.yaml configuration.
type Config struct {
	Workbook        string        `yaml:"workbook"`
	DuplicatesSheet string        `yaml:"duplicates_sheet"`
	Account         AccountConfig `yaml:"account"`
	Card            CardConfig    `yaml:"card"`
	Bank            BankConfig    `yaml:"bank"`
	RulesFile       string        `yaml:"rules_file,omitempty"`
}

// AccountConfig describes the account-statement CSV pipeline inputs.
type AccountConfig struct {
	Glob  string `yaml:"glob"`
	Sheet string `yaml:"sheet"`
}

// CardConfig describes the credit-card CSV pipeline inputs.
type CardConfig struct {
	File  string `yaml:"file"`
	Sheet string `yaml:"sheet"`
}

// BankConfig describes the bank spreadsheet pipeline inputs.
type BankConfig struct {
	Glob           string `yaml:"glob"`
	Sheet          string `yaml:"sheet"`
	ReferenceSheet string `yaml:"reference_sheet"`
	HeaderRow      int    `yaml:"header_row"` // 1-based row holding the column titles
}

// Load reads a releve.yaml file from disk. Fields left empty in the file
// fall back to their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration matching the workbook and export
// names the tool was built around.
func Default() *Config {
	return &Config{
		Workbook:        "LISTE DES OPÉRATIONS-2025.xlsm",
		DuplicatesSheet: "Duplicates",
		Account: AccountConfig{
			Glob:  "account-statement_*.csv",
			Sheet: "Revolut",
		},
		Card: CardConfig{
			File:  "transactions.csv",
			Sheet: "Carte Cred",
		},
		Bank: BankConfig{
			Glob:           "LISTE DES OPÉRATIONS *.xlsx",
			Sheet:          "BCV",
			ReferenceSheet: "2025",
			HeaderRow:      9,
		},
	}
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Workbook == "" {
		c.Workbook = d.Workbook
	}
	if c.DuplicatesSheet == "" {
		c.DuplicatesSheet = d.DuplicatesSheet
	}
	if c.Account.Glob == "" {
		c.Account.Glob = d.Account.Glob
	}
	if c.Account.Sheet == "" {
		c.Account.Sheet = d.Account.Sheet
	}
	if c.Card.File == "" {
		c.Card.File = d.Card.File
	}
	if c.Card.Sheet == "" {
		c.Card.Sheet = d.Card.Sheet
	}
	if c.Bank.Glob == "" {
		c.Bank.Glob = d.Bank.Glob
	}
	if c.Bank.Sheet == "" {
		c.Bank.Sheet = d.Bank.Sheet
	}
	if c.Bank.ReferenceSheet == "" {
		c.Bank.ReferenceSheet = d.Bank.ReferenceSheet
	}
	if c.Bank.HeaderRow == 0 {
		c.Bank.HeaderRow = d.Bank.HeaderRow
	}
}
