// Package clamp implements the threshold-and-cap transform. Each value has the
// threshold subtracted (floored at zero), then is cut down so the running
// total never passes the limit. All arithmetic is exact decimal.
package clamp

import "github.com/shopspring/decimal"

// Accumulator applies the transform one value at a time.
type Accumulator struct {
	threshold decimal.Decimal
	limit     decimal.Decimal
	sum       decimal.Decimal
}

// NewAccumulator returns an Accumulator with a zero running total.
func NewAccumulator(threshold, limit decimal.Decimal) *Accumulator {
	return &Accumulator{
		threshold: threshold,
		limit:     limit,
		sum:       decimal.Zero,
	}
}

// Add transforms n, adds the result to the running total and returns it.
func (a *Accumulator) Add(n decimal.Decimal) decimal.Decimal {
	transformed := decimal.Max(decimal.Zero, n.Sub(a.threshold))
	if a.sum.Add(transformed).GreaterThan(a.limit) {
		transformed = decimal.Max(decimal.Zero, a.limit.Sub(a.sum))
	}
	a.sum = a.sum.Add(transformed)
	return transformed
}

// Sum returns the running total.
func (a *Accumulator) Sum() decimal.Decimal {
	return a.sum
}

// Apply transforms numbers in order and returns the transformed values
// followed by their total, so the result is one longer than numbers.
func Apply(threshold, limit decimal.Decimal, numbers []decimal.Decimal) []decimal.Decimal {
	acc := NewAccumulator(threshold, limit)

	out := make([]decimal.Decimal, 0, len(numbers)+1)
	for _, n := range numbers {
		out = append(out, acc.Add(n))
	}
	return append(out, acc.Sum())
}
