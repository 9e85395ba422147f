package price

import "strings"

// LbPerKg converts a per-pound price to a per-kilogram price.
const LbPerKg = 2.2046

// Policy describes how one product family's shelf prices are projected
// onto the family's benchmark unit basis. Zero values disable each knob.
type Policy struct {
	// PerPoundThreshold assumes per-pound pricing for weighed goods below
	// this magnitude when the text gives no explicit unit. Best-effort
	// heuristic, known to misclassify atypically priced items.
	PerPoundThreshold float64
	// PerPoundExemptAbove vetoes the heuristic above this price
	// (e.g. ribs over 8 are package-priced, not per-pound).
	PerPoundExemptAbove float64
	// FactorDivisor divides the price for known family anomalies
	// (mandarin box 1.81, ribs 600g basis 0.6).
	FactorDivisor float64
	// FactorKeyword limits FactorDivisor to item names containing it.
	FactorKeyword string
}

// Basis is the multiplicative factor that took a shelf price to its
// normalized form. Keeping it lets callers project benchmarks back to
// shelf units without re-deriving the decision.
type Basis struct {
	Factor float64
}

// Denormalize is the exact inverse of the Normalize that produced b.
func (b Basis) Denormalize(v float64) float64 {
	return v / b.Factor
}

// Normalize projects a shelf price onto the family benchmark basis and
// returns the basis used, so the two directions stay symmetric.
func (p Policy) Normalize(value float64, priceText, itemName string) (float64, Basis) {
	b := p.basis(value, priceText, itemName)
	return value * b.Factor, b
}

func (p Policy) basis(value float64, priceText, itemName string) Basis {
	f := 1.0
	text := strings.ToLower(priceText)
	name := strings.ToLower(itemName)

	switch {
	case strings.Contains(text, "100g") || strings.Contains(text, "100 g"):
		f *= 10 // per-100g to per-kg
	case strings.Contains(text, "lb"):
		f *= LbPerKg
	case p.perPoundLikely(value, text):
		f *= LbPerKg
	}

	if p.FactorDivisor > 0 {
		if p.FactorKeyword == "" || strings.Contains(name, p.FactorKeyword) {
			f /= p.FactorDivisor
		}
	}

	return Basis{Factor: f}
}

func (p Policy) perPoundLikely(value float64, text string) bool {
	if p.PerPoundThreshold <= 0 || value >= p.PerPoundThreshold {
		return false
	}
	if strings.Contains(text, "each") || strings.Contains(text, "ea") {
		return false
	}
	if p.PerPoundExemptAbove > 0 && value > p.PerPoundExemptAbove {
		return false
	}
	return true
}
