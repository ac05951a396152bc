package domain

import "math"

// Quote is the ephemeral result of a conversion request. It is recomputed on
// every request and never persisted.
type Quote struct {
	ToAmount float64 `json:"to_amount"`
	Rate     float64 `json:"rate"`
	Fee      float64 `json:"fee"`
}

// ComputeQuote converts fromAmount of one asset into another, carving a flat
// fee out of the gross conversion. On any unresolvable pair or invalid
// amount it returns the zero Quote; it never returns negative amounts or
// NaN.
//
// Invariant: ToAmount + Fee == fromAmount * Rate (within float epsilon).
func ComputeQuote(s Snapshot, from, to string, fromAmount, feeRate float64) Quote {
	rate := s.Rate(from, to)
	if rate == 0 || isNonFinite(fromAmount) || fromAmount <= 0 {
		return Quote{}
	}
	gross := fromAmount * rate
	if isNonFinite(gross) {
		return Quote{}
	}
	fee := gross * feeRate
	return Quote{
		ToAmount: math.Max(gross-fee, 0),
		Rate:     rate,
		Fee:      fee,
	}
}
