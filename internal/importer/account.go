package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/releve-dev/releve/internal/dateparse"
	"github.com/releve-dev/releve/internal/ledger"
)

// Account-statement CSV columns and the completed-timestamp layout.
const (
	accountColType      = "Type"
	accountColCompleted = "Completed Date"
	accountColDesc      = "Description"
	accountColAmount    = "Amount"

	accountTypeCardPayment = "Card Payment"
	accountDateLayout      = "2006-01-02 15:04:05"
)

// ParseAccountCSV reads an account-statement CSV and returns one entry
// per Card Payment row. Amounts are recorded as absolute values. Labels
// are the raw descriptions; categorization happens later.
func ParseAccountCSV(r io.Reader) ([]ledger.Entry, []RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading account CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	idx, err := headerIndex(records[0],
		accountColType, accountColCompleted, accountColDesc, accountColAmount)
	if err != nil {
		return nil, nil, fmt.Errorf("account CSV header: %w", err)
	}

	var entries []ledger.Entry
	var skipped []RowError
	for i, rec := range records[1:] {
		rowNum := i + 2

		if field(rec, idx[accountColType]) != accountTypeCardPayment {
			continue
		}

		completed := field(rec, idx[accountColCompleted])
		if completed == "" {
			skipped = append(skipped, RowError{rowNum, fmt.Errorf("missing completed date")})
			continue
		}
		ts, err := time.Parse(accountDateLayout, completed)
		if err != nil {
			skipped = append(skipped, RowError{rowNum, fmt.Errorf("parsing completed date %q: %w", completed, err)})
			continue
		}

		desc := field(rec, idx[accountColDesc])
		if desc == "" {
			skipped = append(skipped, RowError{rowNum, fmt.Errorf("missing description")})
			continue
		}

		raw := field(rec, idx[accountColAmount])
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			skipped = append(skipped, RowError{rowNum, fmt.Errorf("parsing amount %q: %w", raw, err)})
			continue
		}

		entries = append(entries, ledger.Entry{
			Date:   dateparse.Truncate(ts),
			Label:  desc,
			Amount: amount.Abs(),
		})
	}
	return entries, skipped, nil
}
