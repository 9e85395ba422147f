package history

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"flyerhub/internal/model"
	"flyerhub/internal/price"
)

var columns = []string{
	"Date", "Store", "Item", "Original_Name", "Price_Text", "Price_Value",
	"Valid_Until", "Category", "Sub_Category", "Is_Deal", "Classified_At",
}

var titleCaser = cases.Title(language.English)

// Store is the durable history file. Each run reads the whole file and
// rewrites it in full; there is no in-place row update.
type Store struct {
	Path string
}

// Load reads the entire history. A missing file is a valid empty history,
// not an error. Legacy files missing newer columns get defaults backfilled.
func (s *Store) Load() ([]model.PricePoint, error) {
	f, err := os.Open(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}

	idx := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		idx[strings.TrimSpace(name)] = i
	}
	field := func(rec []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}
	_, hasCategory := idx["Category"]

	rows := make([]model.PricePoint, 0, len(records)-1)
	for _, rec := range records[1:] {
		v, _ := strconv.ParseFloat(field(rec, "Price_Value"), 64)
		p := model.PricePoint{
			Date:         field(rec, "Date"),
			Store:        field(rec, "Store"),
			Item:         field(rec, "Item"),
			OriginalName: field(rec, "Original_Name"),
			PriceText:    field(rec, "Price_Text"),
			PriceValue:   v,
			ValidUntil:   field(rec, "Valid_Until"),
			Category:     field(rec, "Category"),
			SubCategory:  field(rec, "Sub_Category"),
			IsDeal:       parseBool(field(rec, "Is_Deal")),
			ClassifiedAt: field(rec, "Classified_At"),
		}
		if !hasCategory {
			p.Category = model.Uncategorized
		}
		rows = append(rows, p)
	}

	return rows, nil
}

// Save rewrites the whole history atomically (tmp file + rename).
func (s *Store) Save(rows []model.PricePoint) error {
	sorted := append([]model.PricePoint(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Store != b.Store {
			return a.Store < b.Store
		}
		return a.Item < b.Item
	})

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), ".history-*")
	if err != nil {
		return err
	}

	w := csv.NewWriter(tmp)
	if err := w.Write(columns); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	for _, p := range sorted {
		rec := []string{
			p.Date, p.Store, p.Item, p.OriginalName, p.PriceText,
			strconv.FormatFloat(p.PriceValue, 'f', -1, 64),
			p.ValidUntil, p.Category, p.SubCategory,
			strconv.FormatBool(p.IsDeal), p.ClassifiedAt,
		}
		if err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.Path)
}

// Clean tidies a batch before it is merged: display casing, date-only
// validity, "$x.xx" for bare numeric price text. Rows with a negative
// price are dropped; zero-price "Check Store" rows are kept (they carry
// no authoritative price but are still worth showing).
func Clean(rows []model.PricePoint) []model.PricePoint {
	out := make([]model.PricePoint, 0, len(rows))
	for _, p := range rows {
		if p.PriceValue < 0 {
			continue
		}
		p.Item = titleCaser.String(p.Item)
		if i := strings.Index(p.ValidUntil, "T"); i >= 0 {
			p.ValidUntil = p.ValidUntil[:i]
		}
		if p.PriceValue > 0 {
			p.PriceText = price.FormatText(p.PriceText, p.PriceValue)
		}
		out = append(out, p)
	}
	return out
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "t", "yes":
		return true
	}
	return false
}
