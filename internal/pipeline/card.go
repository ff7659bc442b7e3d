package pipeline

import (
	"os"
	"path/filepath"

	"github.com/releve-dev/releve/internal/importer"
	"github.com/releve-dev/releve/internal/workbook"
)

// RunCard processes the credit-card CSV into the card ledger sheet.
func (r *Runner) RunCard() error {
	input := filepath.Join(r.root, r.cfg.Card.File)
	if _, err := os.Stat(input); err != nil {
		r.log.Info().Str("pipeline", "card").Str("file", input).
			Msg("no card statement found, skipping")
		return nil
	}
	path := r.workbookPath("card")
	if path == "" {
		return nil
	}

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	entries, rowErrs, err := importer.ParseCardCSV(f)
	f.Close()
	if err != nil {
		return err
	}
	r.logRowErrors("card", input, rowErrs)
	r.log.Info().Str("pipeline", "card").Str("file", input).
		Int("rows", len(entries)).Msg("card statement read")

	if len(entries) == 0 {
		r.log.Info().Str("pipeline", "card").Msg("no card transactions to process")
		return nil
	}

	categorize(entries, &r.tables.Merchants)

	wb, err := workbook.Open(path)
	if err != nil {
		return err
	}
	defer wb.Close()

	return r.reconcileAndWrite("card", wb, r.cfg.Card.Sheet, workbook.HeaderSingle,
		entries, false, reasonCard)
}
