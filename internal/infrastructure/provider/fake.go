package provider

import (
	"context"
	"time"

	"cryptorates-service/internal/application"
	"cryptorates-service/internal/domain"
)

// Ensure Fake implements application.MarketProvider.
var _ application.MarketProvider = (*Fake)(nil)

// Fake serves a deterministic market for dev and tests.
type Fake struct{}

func NewFake() *Fake { return &Fake{} }

func (f *Fake) Fetch(_ context.Context) ([]domain.MarketQuote, error) {
	now := time.Now().UTC()
	quotes := []domain.MarketQuote{
		{Pair: "BTC/ZAR", Price: "1200000", Change24h: "1.25", Volume24h: "350000"},
		{Pair: "ETH/ZAR", Price: "65000", Change24h: "-0.40", Volume24h: "120000"},
		{Pair: "USDT/ZAR", Price: "18.50", Change24h: "0.02", Volume24h: "900000"},
		{Pair: "BTC/USD", Price: "65000", Change24h: "1.10", Volume24h: "420000"},
		{Pair: "ETH/USD", Price: "3500", Change24h: "-0.55", Volume24h: "210000"},
	}
	for i := range quotes {
		quotes[i].Timestamp = now
	}
	return quotes, nil
}

func (f *Fake) FetchPair(ctx context.Context, pair string) (domain.MarketQuote, error) {
	quotes, _ := f.Fetch(ctx)
	for _, q := range quotes {
		if q.Pair == pair {
			return q, nil
		}
	}
	return domain.MarketQuote{}, domain.ErrNotFound
}
