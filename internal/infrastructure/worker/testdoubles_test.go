package worker

import (
	"context"
	"errors"
	"time"

	"cryptorates-service/internal/application"
	"cryptorates-service/internal/domain"
)

var errFeedDown = errors.New("feed down")

type memMarketRepo struct {
	quotes  []domain.MarketQuote
	history []domain.MarketHistory
	err     error
}

func (m *memMarketRepo) Latest(context.Context) ([]domain.MarketQuote, error) {
	return m.quotes, m.err
}

func (m *memMarketRepo) GetPair(_ context.Context, pair string) (domain.MarketQuote, error) {
	for _, q := range m.quotes {
		if q.Pair == pair {
			return q, nil
		}
	}
	return domain.MarketQuote{}, application.ErrNotFound
}

func (m *memMarketRepo) UpsertBatch(_ context.Context, quotes []domain.MarketQuote) error {
	if m.err != nil {
		return m.err
	}
	m.quotes = quotes
	return nil
}

func (m *memMarketRepo) AppendHistory(_ context.Context, h domain.MarketHistory) error {
	m.history = append(m.history, h)
	return nil
}

type memJobRepo struct {
	jobs map[string]domain.MarketRefresh
}

func (m *memJobRepo) CreateQueued(_ context.Context, pair string, _ *string) (string, error) {
	if m.jobs == nil {
		m.jobs = map[string]domain.MarketRefresh{}
	}
	id := "job-1"
	m.jobs[id] = domain.MarketRefresh{ID: id, Pair: domain.Pair(pair), Status: domain.RefreshStatusQueued}
	return id, nil
}

func (m *memJobRepo) GetByID(_ context.Context, id string) (domain.MarketRefresh, error) {
	j, ok := m.jobs[id]
	if !ok {
		return domain.MarketRefresh{}, application.ErrNotFound
	}
	return j, nil
}

func (m *memJobRepo) UpdateStatus(_ context.Context, id string, st domain.RefreshStatus, errMsg *string) error {
	j, ok := m.jobs[id]
	if !ok {
		return application.ErrNotFound
	}
	j.Status, j.Error = st, errMsg
	m.jobs[id] = j
	return nil
}

func (m *memJobRepo) ClaimQueued(_ context.Context, limit int) ([]application.QueuedRefresh, error) {
	var out []application.QueuedRefresh
	for id, j := range m.jobs {
		if len(out) == limit {
			break
		}
		if j.Status == domain.RefreshStatusQueued {
			j.Status = domain.RefreshStatusProcessing
			m.jobs[id] = j
			out = append(out, application.QueuedRefresh{ID: id, Pair: string(j.Pair)})
		}
	}
	return out, nil
}

type memCache struct {
	quotes []domain.MarketQuote
	loaded bool
	sets   int
}

func (m *memCache) Get(context.Context) ([]domain.MarketQuote, bool, error) {
	return m.quotes, m.loaded, nil
}

func (m *memCache) Set(_ context.Context, quotes []domain.MarketQuote) error {
	m.quotes, m.loaded = quotes, true
	m.sets++
	return nil
}

type scriptedProvider struct {
	quotes []domain.MarketQuote
	err    error
	calls  int
}

func (p *scriptedProvider) Fetch(context.Context) ([]domain.MarketQuote, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.quotes, nil
}

func (p *scriptedProvider) FetchPair(_ context.Context, pair string) (domain.MarketQuote, error) {
	p.calls++
	if p.err != nil {
		return domain.MarketQuote{}, p.err
	}
	for _, q := range p.quotes {
		if q.Pair == pair {
			return q, nil
		}
	}
	return domain.MarketQuote{}, application.ErrNotFound
}

func feedFixture() []domain.MarketQuote {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []domain.MarketQuote{
		{Pair: "BTC/ZAR", Price: "1200000", Change24h: "1.2", Volume24h: "350000", Timestamp: ts},
		{Pair: "ETH/ZAR", Price: "65000", Change24h: "-0.4", Volume24h: "120000", Timestamp: ts},
	}
}
