package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "releve.yaml")
	content := "workbook: my-ledger.xlsm\nbank:\n  sheet: Banque\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "my-ledger.xlsm", cfg.Workbook)
	assert.Equal(t, "Banque", cfg.Bank.Sheet)
	// Unset fields fall back to defaults.
	assert.Equal(t, "Duplicates", cfg.DuplicatesSheet)
	assert.Equal(t, "transactions.csv", cfg.Card.File)
	assert.Equal(t, 9, cfg.Bank.HeaderRow)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "releve.yaml")

	cfg := Default()
	cfg.RulesFile = "rules.yaml"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "releve.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workbook: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
