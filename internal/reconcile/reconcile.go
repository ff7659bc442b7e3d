// Package reconcile decides which entries of a batch are new and which
// repeat transactions the workbook already holds.
package reconcile

import (
	"sort"

	"github.com/releve-dev/releve/internal/ledger"
)

// Result partitions a batch into entries to append and detected
// duplicates, both in batch order.
type Result struct {
	Added      []ledger.Entry
	Duplicates []ledger.Entry
}

// SortNewestFirst stable-sorts a batch by date, newest first. The sort is
// stable so equal-dated entries keep their source order, and the dedup
// outcome is reproducible run to run.
func SortNewestFirst(batch []ledger.Entry) {
	sort.SliceStable(batch, func(i, j int) bool {
		return batch[i].Date.After(batch[j].Date)
	})
}

// Dedupe walks the batch in order, checking each entry's key against
// existing. Known keys go to Duplicates; unknown keys go to Added and
// join the set, so the first occurrence in batch order claims the ledger
// slot and later identical entries are flagged. The existing set is
// mutated in place.
func Dedupe(existing map[string]struct{}, batch []ledger.Entry) Result {
	var res Result
	for _, e := range batch {
		key := e.Key()
		if _, ok := existing[key]; ok {
			res.Duplicates = append(res.Duplicates, e)
			continue
		}
		existing[key] = struct{}{}
		res.Added = append(res.Added, e)
	}
	return res
}
