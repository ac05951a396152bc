package domain

import "time"

// MarketHistory is one append-only row of the price history ledger.
type MarketHistory struct {
	ID         int64
	Pair       Pair
	Price      string
	Change24h  string
	Volume24h  string
	QuotedAt   time.Time
	Source     string
	RefreshID  *string
	InsertedAt time.Time
}
