package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/releve-dev/releve/internal/dateparse"
	"github.com/releve-dev/releve/internal/ledger"
)

// Credit-card CSV columns.
const (
	cardColDate     = "Booking date"
	cardColMerchant = "Merchant"
	cardColType     = "Type"
	cardColAmount   = "Amount (CHF)"
)

// ParseCardCSV reads the credit-card export. Amounts keep the export's
// sign except that rows whose type contains "Credit" are negated.
func ParseCardCSV(r io.Reader) ([]ledger.Entry, []RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading card CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	idx, err := headerIndex(records[0],
		cardColDate, cardColMerchant, cardColType, cardColAmount)
	if err != nil {
		return nil, nil, fmt.Errorf("card CSV header: %w", err)
	}

	var entries []ledger.Entry
	var skipped []RowError
	for i, rec := range records[1:] {
		rowNum := i + 2

		raw := field(rec, idx[cardColDate])
		date, err := dateparse.Parse(raw)
		if err != nil {
			skipped = append(skipped, RowError{rowNum, fmt.Errorf("parsing booking date: %w", err)})
			continue
		}

		merchant := field(rec, idx[cardColMerchant])
		if merchant == "" {
			skipped = append(skipped, RowError{rowNum, fmt.Errorf("missing merchant")})
			continue
		}

		rawAmount := field(rec, idx[cardColAmount])
		amount, err := decimal.NewFromString(rawAmount)
		if err != nil {
			skipped = append(skipped, RowError{rowNum, fmt.Errorf("parsing amount %q: %w", rawAmount, err)})
			continue
		}
		if strings.Contains(field(rec, idx[cardColType]), "Credit") {
			amount = amount.Neg()
		}

		entries = append(entries, ledger.Entry{
			Date:   date,
			Label:  merchant,
			Amount: amount,
		})
	}
	return entries, skipped, nil
}
