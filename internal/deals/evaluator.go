package deals

import (
	"strings"

	"flyerhub/internal/model"
	"flyerhub/internal/price"
)

// Rule binds a product family to its benchmark and normalization policy.
// Rules are evaluated in order; the first keyword match wins, so keep the
// more specific keywords first.
type Rule struct {
	Keyword      string
	BenchmarkKey string
	Category     string
	Policy       price.Policy
	AlwaysFlag   bool   // surfaced regardless of the savings threshold
	Unit         string // display label for the benchmark basis
}

// Benchmark is the reference price in the family's normalized basis.
// Local, when positive, overrides National.
type Benchmark struct {
	National float64
	Local    float64
}

type Evaluator struct {
	Rules         []Rule
	Benchmarks    map[string]Benchmark
	Exclude       []string
	ExcludeCombos [][2]string
	Threshold     float64 // strict: savings must exceed this; 0 means the 10% default
}

// Result carries both sides of the comparison in both bases. The
// normalized pair is for math, the display pair is for rendering; the two
// must never be conflated.
type Result struct {
	Row              model.PricePoint
	Rule             Rule
	NormalizedPrice  float64
	Benchmark        float64 // normalized basis
	DisplayPrice     string  // original shelf price text
	DisplayBenchmark float64 // benchmark projected back to shelf units
	Savings          float64 // fraction of benchmark
	LocalBenchmark   bool
	IsDeal           bool
}

// Evaluate scores each current-week row against its family benchmark.
// Rows without an authoritative price, without a matching rule, or in an
// excluded family are skipped.
func (e *Evaluator) Evaluate(current, hist []model.PricePoint) []Result {
	var out []Result

	for _, p := range current {
		if p.PriceValue <= 0 {
			continue // "Check Store" rows carry no authoritative price
		}
		name := strings.ToLower(p.Item + " " + p.OriginalName)
		if e.excluded(name) {
			continue
		}
		rule, ok := e.match(name)
		if !ok {
			continue
		}

		normalized, basis := rule.Policy.Normalize(p.PriceValue, p.PriceText, p.Item)
		bench, local := e.benchmark(rule, hist)
		if bench <= 0 {
			continue
		}

		savings := (bench - normalized) / bench
		out = append(out, Result{
			Row:              p,
			Rule:             rule,
			NormalizedPrice:  normalized,
			Benchmark:        bench,
			DisplayPrice:     p.PriceText,
			DisplayBenchmark: basis.Denormalize(bench),
			Savings:          savings,
			LocalBenchmark:   local,
			IsDeal:           savings > e.threshold() || rule.AlwaysFlag,
		})
	}

	return out
}

func (e *Evaluator) threshold() float64 {
	if e.Threshold != 0 {
		return e.Threshold
	}
	return 0.10
}

func (e *Evaluator) excluded(name string) bool {
	for _, sub := range e.Exclude {
		if strings.Contains(name, sub) {
			return true
		}
	}
	for _, combo := range e.ExcludeCombos {
		if strings.Contains(name, combo[0]) && strings.Contains(name, combo[1]) {
			return true
		}
	}
	return false
}

func (e *Evaluator) match(name string) (Rule, bool) {
	for _, r := range e.Rules {
		if strings.Contains(name, r.Keyword) {
			return r, true
		}
	}
	return Rule{}, false
}

// benchmark prefers a positive local average over the national figure.
func (e *Evaluator) benchmark(rule Rule, hist []model.PricePoint) (float64, bool) {
	b := e.Benchmarks[rule.BenchmarkKey]
	local := b.Local
	if local <= 0 {
		local = e.localAverage(rule, hist)
	}
	if local > 0 {
		return local, true
	}
	return b.National, false
}

func (e *Evaluator) localAverage(rule Rule, hist []model.PricePoint) float64 {
	var sum float64
	n := 0
	for _, p := range hist {
		if p.PriceValue <= 0 {
			continue
		}
		name := strings.ToLower(p.Item + " " + p.OriginalName)
		if !strings.Contains(name, rule.Keyword) {
			continue
		}
		v, _ := rule.Policy.Normalize(p.PriceValue, p.PriceText, p.Item)
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
