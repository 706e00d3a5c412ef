// Package pricing implements the cost/price/profit arithmetic shared by all
// work categories (tiling, paint, plumbing, electrical, demolition,
// construction). Every function here is pure: no I/O, no clock, no state.
//
// Input coercion follows the live-editing form policy of the quote builder:
// bad numeric input never raises an error — it degrades to a zero-cost
// result. Tests pin that behavior; do not "harden" it into errors, totals
// shown to existing users would change.
package pricing

import "math"

// Num coerces a form-style numeric input to a usable float.
// NaN, ±Inf and negative values all collapse to 0.
func Num(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return 0
	}
	return x
}

// Quantity coerces a quantity input. Anything below 1 (including NaN/Inf,
// zero and negatives) becomes 1 — a line always covers at least one unit.
func Quantity(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 1 {
		return 1
	}
	return x
}

// Round is the half-away-from-zero rounding used everywhere client-facing
// amounts are produced.
func Round(x float64) float64 {
	return math.Round(x)
}

// firstPositive returns the first argument greater than zero, or fallback
// when none is. Implements the item → category default → constant fallback
// chain used by every calculator.
func firstPositive(fallback float64, vals ...float64) float64 {
	for _, v := range vals {
		if v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v
		}
	}
	return fallback
}
