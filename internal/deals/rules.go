package deals

import "flyerhub/internal/price"

// Default configuration for the Calgary flyer set. Benchmarks are national
// statistical averages in the family's normalized basis (per kg unless the
// unit says otherwise); the local historical average overrides them when
// one exists.

func weighed() price.Policy {
	return price.Policy{PerPoundThreshold: 15}
}

func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "chicken breast", BenchmarkKey: "chicken_breast", Category: "Meat & Seafood", Policy: weighed(), Unit: "kg"},
		{Keyword: "ground beef", BenchmarkKey: "ground_beef", Category: "Meat & Seafood", Policy: weighed(), Unit: "kg"},
		{Keyword: "bacon", BenchmarkKey: "bacon", Category: "Meat & Seafood", Policy: weighed(), Unit: "kg"},
		// ribs over 8 are package-priced; "swiss" style is sold on a 600g basis
		{Keyword: "ribs", BenchmarkKey: "ribs", Category: "Meat & Seafood",
			Policy: price.Policy{PerPoundThreshold: 15, PerPoundExemptAbove: 8, FactorDivisor: 0.6, FactorKeyword: "swiss"}, Unit: "kg"},
		{Keyword: "salmon", BenchmarkKey: "salmon", Category: "Meat & Seafood", Policy: weighed(), Unit: "kg"},
		// mandarin boxes convert to per-kg and are always worth surfacing in season
		{Keyword: "mandarin", BenchmarkKey: "mandarin", Category: "Produce",
			Policy: price.Policy{FactorDivisor: 1.81}, AlwaysFlag: true, Unit: "kg"},
		{Keyword: "apple", BenchmarkKey: "apples", Category: "Produce", Policy: weighed(), Unit: "kg"},
		{Keyword: "banana", BenchmarkKey: "bananas", Category: "Produce", Policy: weighed(), Unit: "kg"},
		{Keyword: "potato", BenchmarkKey: "potatoes", Category: "Produce", Policy: weighed(), Unit: "kg"},
		{Keyword: "tomato", BenchmarkKey: "tomatoes", Category: "Produce", Policy: weighed(), Unit: "kg"},
		{Keyword: "butter", BenchmarkKey: "butter", Category: "Dairy & Eggs", Policy: price.Policy{}, Unit: "454g"},
		{Keyword: "eggs", BenchmarkKey: "eggs", Category: "Dairy & Eggs", Policy: price.Policy{}, Unit: "dozen"},
		{Keyword: "milk", BenchmarkKey: "milk", Category: "Dairy & Eggs", Policy: price.Policy{}, Unit: "4L"},
		{Keyword: "cheese", BenchmarkKey: "cheese", Category: "Dairy & Eggs", Policy: weighed(), Unit: "kg"},
		{Keyword: "bread", BenchmarkKey: "bread", Category: "Bakery", Policy: price.Policy{}, Unit: "loaf"},
	}
}

func DefaultBenchmarks() map[string]Benchmark {
	return map[string]Benchmark{
		"chicken_breast": {National: 14.73},
		"ground_beef":    {National: 11.51},
		"bacon":          {National: 15.78},
		"ribs":           {National: 8.82},
		"salmon":         {National: 27.22},
		"mandarin":       {National: 4.34},
		"apples":         {National: 5.23},
		"bananas":        {National: 1.72},
		"potatoes":       {National: 2.31},
		"tomatoes":       {National: 5.47},
		"butter":         {National: 6.02},
		"eggs":           {National: 4.89},
		"milk":           {National: 6.18},
		"cheese":         {National: 23.86},
		"bread":          {National: 3.55},
	}
}

// Families that don't compare meaningfully against a fixed benchmark.
func DefaultExclusions() []string {
	return []string{"water", "foil", "pan"}
}

func DefaultExclusionCombos() [][2]string {
	return [][2]string{{"coffee", "roast"}}
}

func NewDefaultEvaluator() *Evaluator {
	return &Evaluator{
		Rules:         DefaultRules(),
		Benchmarks:    DefaultBenchmarks(),
		Exclude:       DefaultExclusions(),
		ExcludeCombos: DefaultExclusionCombos(),
	}
}
