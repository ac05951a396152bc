package domain

import "time"

// MarketRefresh is an on-demand snapshot refresh job. Pair narrows the
// refresh to one market; empty means the whole feed.
type MarketRefresh struct {
	ID        string
	Pair      Pair
	Status    RefreshStatus
	Error     *string
	UpdatedAt time.Time
}
