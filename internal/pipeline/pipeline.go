// Package pipeline wires the importers, rule tables, deduplicator and
// workbook writer into the three statement pipelines.
package pipeline

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/releve-dev/releve/internal/config"
	"github.com/releve-dev/releve/internal/importer"
	"github.com/releve-dev/releve/internal/ledger"
	"github.com/releve-dev/releve/internal/reconcile"
	"github.com/releve-dev/releve/internal/rules"
	"github.com/releve-dev/releve/internal/workbook"
)

// Fixed duplicate reason strings, one per pipeline.
const (
	reasonBank    = "Duplicate bank operation"
	reasonCard    = "Duplicate entry"
	reasonAccount = "Duplicate from account statement"
)

// Runner executes the statement pipelines against one working directory.
type Runner struct {
	root   string
	cfg    *config.Config
	tables *rules.Tables
	log    zerolog.Logger
}

// New creates a Runner. Paths and globs in cfg are resolved under root.
func New(root string, cfg *config.Config, tables *rules.Tables, log zerolog.Logger) *Runner {
	return &Runner{root: root, cfg: cfg, tables: tables, log: log}
}

// Run executes the three pipelines in fixed order: bank statement,
// credit-card statement, account statements. A failing pipeline is
// logged and does not stop the ones after it.
func (r *Runner) Run() {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"bank", r.RunBank},
		{"card", r.RunCard},
		{"account", r.RunAccount},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			r.log.Error().Err(err).Str("pipeline", s.name).Msg("pipeline failed")
		}
	}
}

// workbookPath returns the destination path, or "" with a log line when
// the workbook is missing and the pipeline should no-op.
func (r *Runner) workbookPath(pipeline string) string {
	path := filepath.Join(r.root, r.cfg.Workbook)
	if _, err := os.Stat(path); err != nil {
		r.log.Info().Str("pipeline", pipeline).Str("workbook", path).
			Msg("workbook not found, skipping")
		return ""
	}
	return path
}

func (r *Runner) logRowErrors(pipeline, file string, errs []importer.RowError) {
	for _, re := range errs {
		r.log.Warn().Str("pipeline", pipeline).Str("file", file).
			Int("row", re.Row).Err(re.Err).Msg("row skipped")
	}
}

// categorize rewrites each entry's label and category through a rule
// table. Entries are categorized exactly once, before deduplication, so
// the ledger and the dedup keys see the same cleaned labels.
func categorize(entries []ledger.Entry, table *rules.Table) {
	for i := range entries {
		label, category, subCategory := table.Categorize(entries[i].Label)
		entries[i].Label = label
		entries[i].Category = category
		entries[i].SubCategory = subCategory
	}
}

// reconcileAndWrite runs the shared tail of every pipeline: newest-first
// sort, dedup against the destination sheet, append, save.
func (r *Runner) reconcileAndWrite(pipeline string, wb *workbook.Workbook,
	sheet string, header []string, entries []ledger.Entry, split bool, reason string) error {

	reconcile.SortNewestFirst(entries)

	existing, err := wb.ExistingKeys(sheet, split)
	if err != nil {
		return err
	}
	res := reconcile.Dedupe(existing, entries)

	if err := wb.EnsureSheet(sheet, header); err != nil {
		return err
	}
	if err := wb.AppendLedger(sheet, res.Added); err != nil {
		return err
	}
	if len(res.Duplicates) > 0 {
		if err := wb.EnsureSheet(r.cfg.DuplicatesSheet, workbook.HeaderDuplicates); err != nil {
			return err
		}
		if err := wb.AppendDuplicates(r.cfg.DuplicatesSheet, res.Duplicates, reason); err != nil {
			return err
		}
	}
	if err := wb.Save(); err != nil {
		return err
	}

	r.log.Info().Str("pipeline", pipeline).Str("sheet", sheet).
		Int("added", len(res.Added)).Int("duplicates", len(res.Duplicates)).
		Msg("workbook updated")
	return nil
}
