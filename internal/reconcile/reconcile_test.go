package reconcile

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/releve-dev/releve/internal/ledger"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(y int, m time.Month, d int, label, amount string) ledger.Entry {
	return ledger.Entry{Date: date(y, m, d), Label: label, Amount: decimal.RequireFromString(amount)}
}

func TestSortNewestFirst_Stable(t *testing.T) {
	batch := []ledger.Entry{
		entry(2025, 1, 5, "a", "1.00"),
		entry(2025, 1, 10, "b", "2.00"),
		entry(2025, 1, 5, "c", "3.00"),
	}

	SortNewestFirst(batch)

	assert.Equal(t, "b", batch[0].Label)
	// Equal dates keep their source order.
	assert.Equal(t, "a", batch[1].Label)
	assert.Equal(t, "c", batch[2].Label)
}

func TestDedupe_AgainstExisting(t *testing.T) {
	known := entry(2025, 1, 5, "Migros", "42.50")
	existing := map[string]struct{}{known.Key(): {}}

	batch := []ledger.Entry{
		entry(2025, 1, 6, "Coop", "10.00"),
		entry(2025, 1, 5, "Migros", "42.50"),
	}
	res := Dedupe(existing, batch)

	require.Len(t, res.Added, 1)
	assert.Equal(t, "Coop", res.Added[0].Label)
	require.Len(t, res.Duplicates, 1)
	assert.Equal(t, "Migros", res.Duplicates[0].Label)
}

func TestDedupe_WithinBatchFirstOccurrenceWins(t *testing.T) {
	batch := []ledger.Entry{
		entry(2025, 1, 10, "Migros", "42.50"),
		entry(2025, 1, 5, "Coop", "10.00"),
		entry(2025, 1, 10, "Migros", "42.50"),
	}
	res := Dedupe(map[string]struct{}{}, batch)

	require.Len(t, res.Added, 2)
	assert.Equal(t, "Migros", res.Added[0].Label)
	assert.Equal(t, "Coop", res.Added[1].Label)
	require.Len(t, res.Duplicates, 1)
	assert.Equal(t, "Migros", res.Duplicates[0].Label)
}

func TestDedupe_OrderDecidesLedgerSlot(t *testing.T) {
	// Two identical-key entries: whichever the sort puts first claims the
	// ledger slot, so the newest-first sort is part of the policy.
	first := entry(2025, 1, 10, "Migros", "42.50")
	first.Category = "Food"
	second := entry(2025, 1, 10, "Migros", "42.50")
	second.Category = "Groceries"

	res := Dedupe(map[string]struct{}{}, []ledger.Entry{first, second})

	require.Len(t, res.Added, 1)
	assert.Equal(t, "Food", res.Added[0].Category)
	require.Len(t, res.Duplicates, 1)
	assert.Equal(t, "Groceries", res.Duplicates[0].Category)
}

func TestDedupe_MutatesExistingSet(t *testing.T) {
	existing := map[string]struct{}{}
	batch := []ledger.Entry{entry(2025, 1, 5, "Coop", "10.00")}

	Dedupe(existing, batch)

	_, ok := existing[batch[0].Key()]
	assert.True(t, ok)
}

func TestDedupe_EmptyBatch(t *testing.T) {
	res := Dedupe(map[string]struct{}{}, nil)
	assert.Empty(t, res.Added)
	assert.Empty(t, res.Duplicates)
}
