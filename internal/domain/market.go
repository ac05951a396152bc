package domain

import (
	"strconv"
	"time"
)

// MarketQuote is one record of the market feed. Price, Change24h and
// Volume24h are decimal strings as served by the upstream API; the engine
// parses them on demand and treats anything unparsable as "no market".
type MarketQuote struct {
	Pair      string    `json:"pair"`
	Price     string    `json:"price"`
	Change24h string    `json:"change_24h"`
	Volume24h string    `json:"volume_24h"`
	Timestamp time.Time `json:"timestamp"`
}

// PriceValue returns the parsed price, or 0 when the field is absent,
// unparsable, negative or non-finite. A zero price means "no market for
// this pair".
func (q MarketQuote) PriceValue() float64 {
	return parseDecimal(q.Price)
}

func parseDecimal(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || isNonFinite(v) {
		return 0
	}
	return v
}
