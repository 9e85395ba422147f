package model

import "time"

// FlyerItem is one raw record as it came from the flyer source.
// Immutable once scraped.
type FlyerItem struct {
	OriginalName string
	RawPrice     any // string or number, whatever the source sent
	ValidFrom    string
	ValidTo      string
	Store        string
	ScrapeDate   time.Time
}

// PricePoint is one normalized row of the persisted history.
// Dates are kept as YYYY-MM-DD strings so the CSV round-trips exactly.
type PricePoint struct {
	Date         string
	Store        string
	Item         string // clean display name
	OriginalName string
	PriceText    string
	PriceValue   float64
	ValidUntil   string
	Category     string
	SubCategory  string
	IsDeal       bool
	ClassifiedAt string // empty for legacy rows that predate classification
}

// Identity is the stable per-item key used for dedup: the original flyer
// name where we still have it, otherwise the cleaned display name. Renaming
// an item via classification must not create a duplicate.
func (p PricePoint) Identity() string {
	if p.OriginalName != "" {
		return p.OriginalName
	}
	return p.Item
}
