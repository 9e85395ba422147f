package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flyerhub/internal/model"
)

func TestLoadMissingFileIsEmptyHistory(t *testing.T) {
	s := &Store{Path: filepath.Join(t.TempDir(), "nope.csv")}
	rows, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := &Store{Path: filepath.Join(t.TempDir(), "history.csv")}

	rows := []model.PricePoint{
		{
			Date: "2026-08-29", Store: "Sobeys", Item: "Maple Bacon",
			OriginalName: "Bacon Maple 500G", PriceText: "$5.00",
			PriceValue: 5, ValidUntil: "2026-09-03", Category: "Meat & Seafood",
			SubCategory: "Pork", IsDeal: true, ClassifiedAt: "2026-08-29",
		},
		{
			Date: "2026-08-29", Store: "Safeway", Item: "Check Store Item",
			OriginalName: "Check Store Item", PriceText: "Check Store",
			PriceValue: 0, ValidUntil: "2026-09-03", Category: model.Uncategorized,
		},
	}

	require.NoError(t, s.Save(rows))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// saved ordering is (Category, Store, Item)
	assert.Equal(t, "Maple Bacon", loaded[0].Item)
	assert.Equal(t, 5.0, loaded[0].PriceValue)
	assert.True(t, loaded[0].IsDeal)
	assert.Equal(t, "Bacon Maple 500G", loaded[0].OriginalName)
	assert.Equal(t, "Check Store", loaded[1].PriceText)
	assert.Zero(t, loaded[1].PriceValue)
}

func TestLoadBackfillsMissingCategoryColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.csv")
	legacy := "Date,Store,Item,Price_Text,Price_Value,Valid_Until\n" +
		"2026-08-01,Sobeys,Butter,$4.99,4.99,2026-08-07\n"
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	s := &Store{Path: path}
	rows, err := s.Load()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, model.Uncategorized, rows[0].Category)
	assert.False(t, rows[0].IsDeal)
	assert.Equal(t, "Butter", rows[0].Identity()) // no Original_Name column
	assert.Equal(t, 4.99, rows[0].PriceValue)
}

func TestClean(t *testing.T) {
	rows := []model.PricePoint{
		{Item: "gala apples", PriceText: "4.99", PriceValue: 4.99, ValidUntil: "2026-09-03T00:00:00-06:00"},
		{Item: "mystery", PriceText: "Check Store", PriceValue: 0, ValidUntil: "2026-09-03"},
		{Item: "bad", PriceText: "-1", PriceValue: -1},
	}

	cleaned := Clean(rows)
	require.Len(t, cleaned, 2)

	assert.Equal(t, "Gala Apples", cleaned[0].Item)
	assert.Equal(t, "$4.99", cleaned[0].PriceText)
	assert.Equal(t, "2026-09-03", cleaned[0].ValidUntil)

	// zero-price sentinel rows survive untouched
	assert.Equal(t, "Check Store", cleaned[1].PriceText)
	assert.Zero(t, cleaned[1].PriceValue)
}
