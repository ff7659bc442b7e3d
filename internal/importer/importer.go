// Package importer reads the three statement export formats and turns
// their rows into normalized ledger entries. Rows that cannot be parsed
// are reported as RowErrors and skipped; they never fail the batch.
package importer

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// RowError records a row that was skipped and why.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// FindAccountFiles returns the account-statement CSVs under dir matching
// pattern, sorted by name. No matches is not an error.
func FindAccountFiles(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("matching %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// FindBankFile returns the first spreadsheet under dir matching pattern
// whose name carries a bracketed export date, or "" when none does.
func FindBankFile(dir, pattern string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", fmt.Errorf("matching %q: %w", pattern, err)
	}
	sort.Strings(matches)
	for _, m := range matches {
		name := filepath.Base(m)
		if strings.Contains(name, "[") && strings.Contains(name, "]") {
			return m, nil
		}
	}
	return "", nil
}

// headerIndex maps required column titles to their positions in a CSV
// header row.
func headerIndex(header []string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return idx, nil
}

// field returns the trimmed cell at position i, or "" when the row is
// too short.
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
