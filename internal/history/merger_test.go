package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flyerhub/internal/model"
)

func row(store, item, priceText, validUntil string) model.PricePoint {
	return model.PricePoint{
		Date:         "2026-08-29",
		Store:        store,
		Item:         item,
		OriginalName: item,
		PriceText:    priceText,
		PriceValue:   1,
		ValidUntil:   validUntil,
	}
}

func keySet(rows []model.PricePoint) map[string]bool {
	set := map[string]bool{}
	for _, p := range rows {
		set[Key(p)] = true
	}
	return set
}

func TestMergeIsIdempotent(t *testing.T) {
	hist := []model.PricePoint{
		row("Sobeys", "Butter 454g", "$4.99", "2026-09-03"),
	}
	batch := []model.PricePoint{
		row("Sobeys", "Eggs Large", "$3.49", "2026-09-03"),
		row("Safeway", "Butter 454g", "$5.49", "2026-09-03"),
	}

	once := Merge(hist, batch)
	twice := Merge(once, batch)

	assert.Equal(t, once, twice)
	assert.Len(t, once, 3)
}

func TestMergeKeySetIsOrderIndependent(t *testing.T) {
	rows := []model.PricePoint{
		row("Sobeys", "Butter 454g", "$4.99", "2026-09-03"),
		row("Sobeys", "Eggs Large", "$3.49", "2026-09-03"),
		row("Sobeys", "Butter 454g", "$4.99", "2026-09-03"),
		row("Safeway", "Butter 454g", "$5.49", "2026-09-10"),
	}
	reversed := make([]model.PricePoint, len(rows))
	for i, p := range rows {
		reversed[len(rows)-1-i] = p
	}

	a := Merge(nil, rows)
	b := Merge(nil, reversed)

	assert.Equal(t, keySet(a), keySet(b))
	assert.Len(t, a, 3)
}

func TestMergeSupersetOfBothInputs(t *testing.T) {
	hist := []model.PricePoint{
		row("Sobeys", "Butter 454g", "$4.99", "2026-09-03"),
	}
	batch := []model.PricePoint{
		row("Safeway", "Milk 4L", "$6.29", "2026-09-03"),
	}

	merged := Merge(hist, batch)
	set := keySet(merged)
	for _, p := range append(hist, batch...) {
		assert.True(t, set[Key(p)])
	}
}

func TestMergePrefersNewerClassifiedRow(t *testing.T) {
	old := row("Sobeys", "Bacon Maple 500G", "$5.00", "2026-09-03")
	old.Item = "Bacon Maple 500G"
	old.Category = model.Uncategorized

	fresh := old
	fresh.Item = "Maple Bacon"
	fresh.Category = "Meat & Seafood"
	fresh.ClassifiedAt = "2026-08-30"
	fresh.Date = "2026-08-30"

	for _, ordered := range [][]model.PricePoint{{old, fresh}, {fresh, old}} {
		merged := Merge(nil, ordered)
		require.Len(t, merged, 1)
		assert.Equal(t, "Maple Bacon", merged[0].Item)
		assert.Equal(t, "Meat & Seafood", merged[0].Category)
	}
}

func TestMergePrefersSubCategoryOnTie(t *testing.T) {
	plain := row("Sobeys", "Cheddar", "$7.99", "2026-09-03")
	tagged := plain
	tagged.SubCategory = "Cheese"

	merged := Merge([]model.PricePoint{plain}, []model.PricePoint{tagged})
	require.Len(t, merged, 1)
	assert.Equal(t, "Cheese", merged[0].SubCategory)
}

// Same store, same price text, same validity, scraped on two different
// dates: after two runs the history holds exactly one row.
func TestMergeTwoScrapesOneRow(t *testing.T) {
	first := row("Sobeys", "Ground Beef Lean 1kg", "$9.99", "2026-09-03")
	first.Date = "2026-08-22"

	second := row("Sobeys", "Ground Beef Lean 1kg", "$9.99", "2026-09-03")
	second.Date = "2026-08-29"

	hist := Merge(nil, []model.PricePoint{first})
	hist = Merge(hist, []model.PricePoint{second})

	require.Len(t, hist, 1)
	assert.Equal(t, "2026-08-29", hist[0].Date) // newest scrape survives
}

func TestMergeRenamedItemIsNotADuplicate(t *testing.T) {
	scraped := row("Sobeys", "Apples Gala 3lb bag", "$4.99", "2026-09-03")

	renamed := scraped
	renamed.Item = "Gala Apples" // classification swapped the display name

	merged := Merge([]model.PricePoint{scraped}, []model.PricePoint{renamed})
	assert.Len(t, merged, 1)
}
