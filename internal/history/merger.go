package history

import (
	"sort"
	"strings"

	"flyerhub/internal/model"
)

// Key is the uniqueness key rows are deduplicated on. Duplicate keys in the
// saved history are a defect, not a valid state.
func Key(p model.PricePoint) string {
	return strings.Join([]string{p.Store, p.Identity(), p.PriceText, p.ValidUntil}, "\x1f")
}

// Merge folds a fresh batch into the history. Both inputs survive by key;
// when a key collides, the row kept is decided by the documented preference
// order (most recently classified, then newest scrape date, then presence
// of a sub-category). Sorting by those keys before deduplicating keeps
// "first wins" deterministic regardless of input order.
func Merge(hist, batch []model.PricePoint) []model.PricePoint {
	merged := make([]model.PricePoint, 0, len(hist)+len(batch))
	merged = append(merged, hist...)
	merged = append(merged, batch...)

	sort.SliceStable(merged, func(i, j int) bool {
		return preferred(merged[i], merged[j])
	})

	seen := make(map[string]bool, len(merged))
	out := make([]model.PricePoint, 0, len(merged))
	for _, p := range merged {
		k := Key(p)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}

	return out
}

func preferred(a, b model.PricePoint) bool {
	if a.ClassifiedAt != b.ClassifiedAt {
		return a.ClassifiedAt > b.ClassifiedAt
	}
	if a.Date != b.Date {
		return a.Date > b.Date
	}
	aSub, bSub := a.SubCategory != "", b.SubCategory != ""
	if aSub != bSub {
		return aSub
	}
	// full tiebreak so colliding rows resolve the same way in any order
	if a.Category != b.Category {
		return a.Category < b.Category
	}
	return a.Item < b.Item
}
