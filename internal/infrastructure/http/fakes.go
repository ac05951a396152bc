package httpserver

import (
	"context"
	"time"

	"cryptorates-service/internal/application"
	"cryptorates-service/internal/domain"
)

var _ application.MarketRepo = (*fakeMarketRepo)(nil)
var _ application.RefreshJobRepo = (*fakeRefreshJobRepo)(nil)

type fakeMarketRepo struct {
	store   map[string]domain.MarketQuote
	order   []string
	history []domain.MarketHistory
}

func (f *fakeMarketRepo) Latest(context.Context) ([]domain.MarketQuote, error) {
	out := make([]domain.MarketQuote, 0, len(f.order))
	for _, pair := range f.order {
		out = append(out, f.store[pair])
	}
	return out, nil
}

func (f *fakeMarketRepo) GetPair(_ context.Context, pair string) (domain.MarketQuote, error) {
	q, ok := f.store[pair]
	if !ok {
		return domain.MarketQuote{}, application.ErrNotFound
	}
	return q, nil
}

func (f *fakeMarketRepo) UpsertBatch(_ context.Context, quotes []domain.MarketQuote) error {
	if f.store == nil {
		f.store = map[string]domain.MarketQuote{}
	}
	for _, q := range quotes {
		if _, ok := f.store[q.Pair]; !ok {
			f.order = append(f.order, q.Pair)
		}
		f.store[q.Pair] = q
	}
	return nil
}

func (f *fakeMarketRepo) AppendHistory(_ context.Context, h domain.MarketHistory) error {
	f.history = append(f.history, h)
	return nil
}

type fakeRefreshJobRepo struct {
	jobs map[string]domain.MarketRefresh
}

func (f *fakeRefreshJobRepo) CreateQueued(_ context.Context, pair string, _ *string) (string, error) {
	if f.jobs == nil {
		f.jobs = map[string]domain.MarketRefresh{}
	}
	id := "refresh-1"
	f.jobs[id] = domain.MarketRefresh{ID: id, Pair: domain.Pair(pair), Status: domain.RefreshStatusQueued, UpdatedAt: time.Now()}
	return id, nil
}

func (f *fakeRefreshJobRepo) GetByID(_ context.Context, id string) (domain.MarketRefresh, error) {
	j, ok := f.jobs[id]
	if !ok {
		return domain.MarketRefresh{}, application.ErrNotFound
	}
	return j, nil
}

func (f *fakeRefreshJobRepo) UpdateStatus(_ context.Context, id string, st domain.RefreshStatus, errMsg *string) error {
	j, ok := f.jobs[id]
	if !ok {
		return application.ErrNotFound
	}
	j.Status = st
	j.Error = errMsg
	j.UpdatedAt = time.Now()
	f.jobs[id] = j
	return nil
}

func (f *fakeRefreshJobRepo) ClaimQueued(_ context.Context, limit int) ([]application.QueuedRefresh, error) {
	var out []application.QueuedRefresh
	for id, j := range f.jobs {
		if len(out) == limit {
			break
		}
		if j.Status == domain.RefreshStatusQueued {
			j.Status = domain.RefreshStatusProcessing
			f.jobs[id] = j
			out = append(out, application.QueuedRefresh{ID: id, Pair: string(j.Pair)})
		}
	}
	return out, nil
}

// NewInMemoryService wires a QuoteService over in-memory repositories,
// seeded with a small market. Used by handler tests and the dev server.
func NewInMemoryService() (*application.QuoteService, *fakeMarketRepo, *fakeRefreshJobRepo) {
	mr := &fakeMarketRepo{store: map[string]domain.MarketQuote{}}
	jr := &fakeRefreshJobRepo{jobs: map[string]domain.MarketRefresh{}}
	_ = mr.UpsertBatch(context.Background(), seedMarket())
	svc := application.NewQuoteService(mr, jr, application.Params{
		FeeRate:      0.01,
		BaseCurrency: "ZAR",
	})
	return svc, mr, jr
}

func seedMarket() []domain.MarketQuote {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []domain.MarketQuote{
		{Pair: "BTC/ZAR", Price: "1200000", Change24h: "1.2", Volume24h: "350000", Timestamp: ts},
		{Pair: "ETH/ZAR", Price: "65000", Change24h: "-0.4", Volume24h: "120000", Timestamp: ts},
		{Pair: "USDT/ZAR", Price: "18.50", Change24h: "0.0", Volume24h: "900000", Timestamp: ts},
	}
}
