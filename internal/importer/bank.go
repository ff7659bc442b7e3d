package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/releve-dev/releve/internal/dateparse"
	"github.com/releve-dev/releve/internal/ledger"
)

// Bank statement column positions (first sheet, after the header row).
const (
	bankColDate      = 0
	bankColOperation = 1
	bankColDebit     = 2
	bankColCredit    = 3
)

// ParseBankStatement reads the bank's spreadsheet export. headerRow is
// the 1-based row holding the column titles; data follows it. Debit and
// credit stay separate; rows where both are zero are dropped. Labels are
// the raw operation texts; categorization happens later.
func ParseBankStatement(path string, headerRow int) ([]ledger.Entry, []RowError, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening bank statement: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	// Raw values: the export's execution-date column is usually
	// date-typed, which a formatted read would render in an arbitrary
	// display layout.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) <= headerRow {
		return nil, nil, nil
	}

	var entries []ledger.Entry
	var skipped []RowError
	for i, row := range rows[headerRow:] {
		rowNum := headerRow + 1 + i

		if blankRow(row) {
			continue
		}

		rawDate := field(row, bankColDate)
		if rawDate == "" {
			continue
		}
		date, err := dateparse.ParseCell(rawDate)
		if err != nil {
			skipped = append(skipped, RowError{rowNum, fmt.Errorf("parsing execution date: %w", err)})
			continue
		}

		operation := field(row, bankColOperation)
		if operation == "" {
			skipped = append(skipped, RowError{rowNum, fmt.Errorf("missing operation")})
			continue
		}

		debit, err := parseCell(field(row, bankColDebit))
		if err != nil {
			skipped = append(skipped, RowError{rowNum, fmt.Errorf("parsing debit: %w", err)})
			continue
		}
		credit, err := parseCell(field(row, bankColCredit))
		if err != nil {
			skipped = append(skipped, RowError{rowNum, fmt.Errorf("parsing credit: %w", err)})
			continue
		}
		if debit.IsZero() && credit.IsZero() {
			continue
		}

		entries = append(entries, ledger.Entry{
			Date:   date,
			Label:  operation,
			Amount: debit,
			Credit: credit,
			Split:  true,
		})
	}
	return entries, skipped, nil
}

// parseCell parses a spreadsheet amount cell. Blank means zero. The
// apostrophe thousands separator of the bank's locale is tolerated.
func parseCell(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, " ", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q: %w", s, err)
	}
	return d, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
