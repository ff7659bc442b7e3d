package pipeline

import (
	"os"

	"github.com/releve-dev/releve/internal/importer"
	"github.com/releve-dev/releve/internal/ledger"
	"github.com/releve-dev/releve/internal/workbook"
)

// RunAccount processes every account-statement CSV into the
// card-payment ledger sheet. A file that cannot be read is logged and
// the remaining files still contribute.
func (r *Runner) RunAccount() error {
	files, err := importer.FindAccountFiles(r.root, r.cfg.Account.Glob)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		r.log.Info().Str("pipeline", "account").Str("glob", r.cfg.Account.Glob).
			Msg("no account statements found, skipping")
		return nil
	}
	path := r.workbookPath("account")
	if path == "" {
		return nil
	}

	var entries []ledger.Entry
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			r.log.Error().Str("pipeline", "account").Str("file", file).Err(err).
				Msg("cannot open statement, skipping file")
			continue
		}
		batch, rowErrs, err := importer.ParseAccountCSV(f)
		f.Close()
		if err != nil {
			r.log.Error().Str("pipeline", "account").Str("file", file).Err(err).
				Msg("cannot read statement, skipping file")
			continue
		}
		r.logRowErrors("account", file, rowErrs)
		r.log.Info().Str("pipeline", "account").Str("file", file).
			Int("rows", len(batch)).Msg("account statement read")
		entries = append(entries, batch...)
	}

	if len(entries) == 0 {
		r.log.Info().Str("pipeline", "account").Msg("no card payments to process")
		return nil
	}

	categorize(entries, &r.tables.Merchants)

	wb, err := workbook.Open(path)
	if err != nil {
		return err
	}
	defer wb.Close()

	return r.reconcileAndWrite("account", wb, r.cfg.Account.Sheet, workbook.HeaderSingle,
		entries, false, reasonAccount)
}
