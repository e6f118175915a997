// Package earnings is the single source of truth for converting validated
// view counts into money. Every aggregation, display and wallet path must
// call Amount instead of re-deriving the formula.
package earnings

import "math"

// Amount returns the payout in EUR for a view count at a per-1000-views
// rate, rounded to cents. Negative inputs are treated as zero; the function
// never returns NaN or a negative amount.
func Amount(views int, ratePer1K float64) float64 {
	if views <= 0 || ratePer1K <= 0 || math.IsNaN(ratePer1K) || math.IsInf(ratePer1K, 0) {
		return 0
	}
	return Round2(float64(views) / 1000.0 * ratePer1K)
}

// Round2 rounds a monetary amount to two decimal places.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
