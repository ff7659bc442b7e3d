// Package ledger defines the normalized transaction record shared by all
// three statement pipelines.
package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one normalized, categorized transaction. Entries are built by
// the importers, enriched by the rule tables, and consumed once by the
// workbook writer; they are never mutated after that.
type Entry struct {
	Date        time.Time
	Label       string
	Amount      decimal.Decimal // signed amount; debit side when Split
	Credit      decimal.Decimal // credit side, Split entries only
	Split       bool            // debit/credit pair (bank statement rows)
	Category    string
	SubCategory string
}

// keySep cannot occur in cell text read back from the workbook.
const keySep = "\x1f"

// Key is the deduplication identity: ISO date, label and the fixed-width
// amount(s). Category and sub-category never participate, so a
// recategorized duplicate is still a duplicate. Fixed-width amounts make
// 42.5 and 42.50 the same transaction.
func (e Entry) Key() string {
	parts := []string{
		e.Date.Format("2006-01-02"),
		e.Label,
		e.Amount.StringFixed(2),
	}
	if e.Split {
		parts = append(parts, e.Credit.StringFixed(2))
	}
	return strings.Join(parts, keySep)
}
