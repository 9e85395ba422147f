package flipp

import "strings"

// SelectWeekly picks at most one flyer per wanted store: liquor flyers are
// skipped, a "weekly" flyer wins, otherwise the first match for the store.
func SelectWeekly(flyers []Flyer, stores []string) []Flyer {
	var selected []Flyer

	for _, store := range stores {
		want := strings.ToLower(store)

		var best *Flyer
		for i := range flyers {
			f := flyers[i]
			merchant := strings.ToLower(f.Merchant)
			if !strings.Contains(merchant, want) {
				continue
			}
			name := strings.ToLower(f.Name)
			if strings.Contains(name, "liquor") || strings.Contains(merchant, "liquor") {
				continue
			}
			if strings.Contains(name, "weekly") {
				best = &f
				break
			}
			if best == nil {
				best = &f
			}
		}

		if best != nil {
			selected = append(selected, *best)
		}
	}

	return selected
}
