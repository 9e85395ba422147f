package price

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePer100g(t *testing.T) {
	var p Policy
	v, _ := p.Normalize(0.99, "99¢/100g", "Deli Ham")
	assert.InDelta(t, 9.9, v, 1e-9)
}

func TestNormalizeExplicitPerPound(t *testing.T) {
	var p Policy
	v, _ := p.Normalize(2.99, "$2.99/lb", "Gala Apples")
	assert.InDelta(t, 2.99*LbPerKg, v, 1e-9)
}

func TestNormalizeHeuristicPerPound(t *testing.T) {
	p := Policy{PerPoundThreshold: 15}

	// cheap weighed item with no unit marker is assumed per-pound
	v, _ := p.Normalize(5.00, "$5.00", "Bacon Maple 500G")
	assert.InDelta(t, 5.00*LbPerKg, v, 1e-9)

	// "each" marker vetoes the heuristic
	v, _ = p.Normalize(5.00, "$5.00 each", "Bacon Maple 500G")
	assert.InDelta(t, 5.00, v, 1e-9)

	// expensive items are assumed package-priced
	v, _ = p.Normalize(18.00, "$18.00", "Prime Rib Roast")
	assert.InDelta(t, 18.00, v, 1e-9)
}

func TestNormalizeRibsExemption(t *testing.T) {
	p := Policy{PerPoundThreshold: 15, PerPoundExemptAbove: 8}

	// ribs above 8 are package-priced despite being under the threshold
	v, _ := p.Normalize(9.99, "$9.99", "Pork Back Ribs")
	assert.InDelta(t, 9.99, v, 1e-9)

	v, _ = p.Normalize(6.99, "$6.99", "Pork Back Ribs")
	assert.InDelta(t, 6.99*LbPerKg, v, 1e-9)
}

func TestNormalizeFamilyFactors(t *testing.T) {
	mandarin := Policy{FactorDivisor: 1.81}
	v, _ := mandarin.Normalize(7.99, "$7.99 each", "Mandarin Oranges Box")
	assert.InDelta(t, 7.99/1.81, v, 1e-9)

	ribs := Policy{PerPoundThreshold: 15, PerPoundExemptAbove: 8, FactorDivisor: 0.6, FactorKeyword: "swiss"}
	v, _ = ribs.Normalize(11.99, "$11.99", "Swiss Chalet Style Ribs")
	assert.InDelta(t, 11.99/0.6, v, 1e-9)

	// keyword-gated factor leaves other ribs alone
	v, _ = ribs.Normalize(11.99, "$11.99", "Pork Side Ribs")
	assert.InDelta(t, 11.99, v, 1e-9)
}

func TestNormalizeDenormalizeRoundTrip(t *testing.T) {
	cases := []struct {
		name     string
		policy   Policy
		value    float64
		text     string
		itemName string
	}{
		{"per-100g", Policy{}, 0.99, "99¢/100g", "Deli Ham"},
		{"per-lb", Policy{}, 2.99, "$2.99/lb", "Gala Apples"},
		{"heuristic-lb", Policy{PerPoundThreshold: 15}, 5.00, "$5.00", "Bacon"},
		{"mandarin-box", Policy{FactorDivisor: 1.81}, 7.99, "$7.99 each", "Mandarin Oranges"},
		{"ribs-swiss", Policy{PerPoundThreshold: 15, PerPoundExemptAbove: 8, FactorDivisor: 0.6, FactorKeyword: "swiss"}, 11.99, "$11.99", "Swiss Style Ribs"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			normalized, basis := tt.policy.Normalize(tt.value, tt.text, tt.itemName)
			back := basis.Denormalize(normalized)
			assert.InEpsilon(t, tt.value, back, 1e-6)

			// and the reverse pairing
			again, _ := tt.policy.Normalize(back, tt.text, tt.itemName)
			assert.InEpsilon(t, normalized, again, 1e-6)
		})
	}
}
