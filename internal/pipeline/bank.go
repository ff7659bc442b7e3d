package pipeline

import (
	"github.com/releve-dev/releve/internal/importer"
	"github.com/releve-dev/releve/internal/workbook"
)

// RunBank processes the bank's spreadsheet export into the bank ledger
// sheet. Candidates at or before the reference sheet's newest date are
// discarded before categorization.
func (r *Runner) RunBank() error {
	input, err := importer.FindBankFile(r.root, r.cfg.Bank.Glob)
	if err != nil {
		return err
	}
	if input == "" {
		r.log.Info().Str("pipeline", "bank").Str("glob", r.cfg.Bank.Glob).
			Msg("no bank statement found, skipping")
		return nil
	}
	path := r.workbookPath("bank")
	if path == "" {
		return nil
	}

	entries, rowErrs, err := importer.ParseBankStatement(input, r.cfg.Bank.HeaderRow)
	if err != nil {
		return err
	}
	r.logRowErrors("bank", input, rowErrs)
	r.log.Info().Str("pipeline", "bank").Str("file", input).
		Int("rows", len(entries)).Msg("bank statement read")

	wb, err := workbook.Open(path)
	if err != nil {
		return err
	}
	defer wb.Close()

	if watermark, ok := wb.MaxDate(r.cfg.Bank.ReferenceSheet); ok {
		kept := entries[:0]
		for _, e := range entries {
			if e.Date.After(watermark) {
				kept = append(kept, e)
				continue
			}
			r.log.Info().Str("pipeline", "bank").
				Str("date", e.Date.Format("02.01.2006")).
				Msg("at or before reference watermark, skipping")
		}
		entries = kept
		r.log.Info().Str("pipeline", "bank").
			Str("watermark", watermark.Format("02.01.2006")).
			Int("remaining", len(entries)).Msg("watermark applied")
	} else {
		r.log.Info().Str("pipeline", "bank").
			Str("sheet", r.cfg.Bank.ReferenceSheet).
			Msg("no reference dates found, processing all rows")
	}

	if len(entries) == 0 {
		r.log.Info().Str("pipeline", "bank").Msg("no bank transactions to process")
		return nil
	}

	categorize(entries, &r.tables.Operations)

	return r.reconcileAndWrite("bank", wb, r.cfg.Bank.Sheet, workbook.HeaderSplit,
		entries, true, reasonBank)
}
