package application

import (
	"context"
	"errors"
	"time"

	"cryptorates-service/internal/domain"
)

var ErrRepo = errors.New("repo error")

type fakeMarketRepo struct {
	quotes  []domain.MarketQuote
	history []domain.MarketHistory
	err     error
}

func (f *fakeMarketRepo) Latest(context.Context) ([]domain.MarketQuote, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.quotes, nil
}

func (f *fakeMarketRepo) GetPair(_ context.Context, pair string) (domain.MarketQuote, error) {
	if f.err != nil {
		return domain.MarketQuote{}, f.err
	}
	for _, q := range f.quotes {
		if q.Pair == pair {
			return q, nil
		}
	}
	return domain.MarketQuote{}, ErrNotFound
}

func (f *fakeMarketRepo) UpsertBatch(_ context.Context, quotes []domain.MarketQuote) error {
	if f.err != nil {
		return f.err
	}
	f.quotes = quotes
	return nil
}

func (f *fakeMarketRepo) AppendHistory(_ context.Context, h domain.MarketHistory) error {
	if f.err != nil {
		return f.err
	}
	f.history = append(f.history, h)
	return nil
}

type fakeRefreshJobRepo struct {
	jobs map[string]domain.MarketRefresh
	seq  int
	err  error
}

func (f *fakeRefreshJobRepo) CreateQueued(_ context.Context, pair string, _ *string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.jobs == nil {
		f.jobs = map[string]domain.MarketRefresh{}
	}
	f.seq++
	id := "refresh-1"
	f.jobs[id] = domain.MarketRefresh{ID: id, Pair: domain.Pair(pair), Status: domain.RefreshStatusQueued}
	return id, nil
}

func (f *fakeRefreshJobRepo) GetByID(_ context.Context, id string) (domain.MarketRefresh, error) {
	j, ok := f.jobs[id]
	if !ok {
		return domain.MarketRefresh{}, ErrNotFound
	}
	return j, nil
}

func (f *fakeRefreshJobRepo) UpdateStatus(_ context.Context, id string, st domain.RefreshStatus, errMsg *string) error {
	j, ok := f.jobs[id]
	if !ok {
		return ErrNotFound
	}
	j.Status, j.Error = st, errMsg
	f.jobs[id] = j
	return nil
}

func (f *fakeRefreshJobRepo) ClaimQueued(_ context.Context, limit int) ([]QueuedRefresh, error) {
	var out []QueuedRefresh
	for id, j := range f.jobs {
		if len(out) == limit {
			break
		}
		if j.Status == domain.RefreshStatusQueued {
			j.Status = domain.RefreshStatusProcessing
			f.jobs[id] = j
			out = append(out, QueuedRefresh{ID: id, Pair: string(j.Pair)})
		}
	}
	return out, nil
}

type fakeCache struct {
	quotes []domain.MarketQuote
	loaded bool
	sets   int
}

func (f *fakeCache) Get(context.Context) ([]domain.MarketQuote, bool, error) {
	return f.quotes, f.loaded, nil
}

func (f *fakeCache) Set(_ context.Context, quotes []domain.MarketQuote) error {
	f.quotes, f.loaded = quotes, true
	f.sets++
	return nil
}

type fakeIdem struct{ seen map[string]bool }

func (f *fakeIdem) TryReserve(_ context.Context, k string) (bool, error) {
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	if f.seen[k] {
		return false, nil
	}
	f.seen[k] = true
	return true, nil
}

type fakeClock struct{ t time.Time }

func (f fakeClock) Now() time.Time { return f.t }

func strPtr(s string) *string { return &s }
