package domain

import "math"

// Snapshot is an immutable view of the market feed used to resolve exchange
// rates. It is a value built per refresh and passed explicitly into every
// computation; nothing here mutates shared state, so concurrent use from any
// number of callers is safe.
type Snapshot struct {
	prices map[Pair]float64
	base   string
}

// NewSnapshot indexes a quote list for rate resolution. base is the
// exchange's primary fiat, the one symbol expected to have a direct pair
// with every tradable crypto; it anchors the single-hop cross rate.
// Malformed pairs and non-positive prices are skipped.
func NewSnapshot(quotes []MarketQuote, base string) Snapshot {
	prices := make(map[Pair]float64, len(quotes))
	for _, q := range quotes {
		b, qt, ok := SplitPair(q.Pair)
		if !ok {
			continue
		}
		if p := q.PriceValue(); p > 0 {
			prices[MakePair(b, qt)] = p
		}
	}
	return Snapshot{prices: prices, base: base}
}

// Base returns the cross-rate anchor currency.
func (s Snapshot) Base() string { return s.base }

// Len returns the number of usable pairs in the snapshot.
func (s Snapshot) Len() int { return len(s.prices) }

// Rate resolves the exchange rate between two symbols. Resolution order:
// identity, direct pair, reverse pair, single-hop cross through the base
// currency. Returns 0 when no rate is available; never NaN, Inf or negative.
//
// The cross step is deliberately bounded to one intermediate hop: a path
// that would need more than one hop through the base reports "unavailable"
// instead of attempting graph search.
func (s Snapshot) Rate(from, to string) float64 {
	if from == to {
		return 1
	}
	if p, ok := s.prices[MakePair(from, to)]; ok && p > 0 {
		return p
	}
	if p, ok := s.prices[MakePair(to, from)]; ok && p > 0 {
		return 1 / p
	}
	if s.base != "" && from != s.base && to != s.base {
		// Both legs hit the direct/reverse cases above or fail; neither
		// can recurse into another cross step, so depth is bounded.
		fromBase := s.Rate(from, s.base)
		toBase := s.Rate(to, s.base)
		if fromBase > 0 && toBase > 0 {
			return fromBase / toBase
		}
	}
	return 0
}

// PairAvailable reports whether a conversion between the two symbols can be
// quoted. It shares Rate's resolution logic so the UI's availability checks
// can never disagree with the computed quote.
func (s Snapshot) PairAvailable(from, to string) bool {
	return s.Rate(from, to) > 0
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
