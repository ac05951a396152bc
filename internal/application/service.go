package application

import (
	"context"

	"cryptorates-service/internal/domain"
)

// Params carries the tunables of the quote engine. Fee rate and precision
// are configuration, not algorithm: they can change without touching the
// computation in internal/domain.
type Params struct {
	FeeRate      float64
	BaseCurrency string
	Precision    domain.PrecisionTable
}

type QuoteService struct {
	markets MarketRepo
	jobs    RefreshJobRepo
	params  Params
	cache   SnapshotCache
	idem    IdempotencyStore
	uow     UnitOfWork
	clock   Clock
}

type Option func(*QuoteService)

func WithClock(c Clock) Option { return func(s *QuoteService) { s.clock = c } }

func WithCache(c SnapshotCache) Option { return func(s *QuoteService) { s.cache = c } }

func WithUnitOfWork(u UnitOfWork) Option { return func(s *QuoteService) { s.uow = u } }

func WithIdempotency(i IdempotencyStore) Option {
	return func(s *QuoteService) { s.idem = i }
}

func NewQuoteService(markets MarketRepo, jobs RefreshJobRepo, params Params, opts ...Option) *QuoteService {
	s := &QuoteService{
		markets: markets,
		jobs:    jobs,
		params:  params,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	if s.idem == nil {
		s.idem = NoopIdempotency{}
	}
	if s.uow == nil {
		s.uow = NoopUoW{}
	}
	return s
}

// Params exposes the engine configuration to presentation code (display
// formatting, fee disclosure).
func (s *QuoteService) Params() Params { return s.params }

// Market returns the current quote list, cache-first.
func (s *QuoteService) Market(ctx context.Context) ([]domain.MarketQuote, error) {
	return s.loadQuotes(ctx)
}

// MarketPair returns the record for a single pair.
func (s *QuoteService) MarketPair(ctx context.Context, pair string) (domain.MarketQuote, error) {
	if !domain.ValidatePair(pair) {
		return domain.MarketQuote{}, ErrBadRequest
	}
	return s.markets.GetPair(ctx, pair)
}

// Assets derives the tradable asset catalog from the current snapshot. It
// never fails and never returns an empty catalog: an unreadable or empty
// feed yields the fixed fallback so the UI always has selectable assets.
func (s *QuoteService) Assets(ctx context.Context) domain.AssetCatalog {
	quotes, err := s.loadQuotes(ctx)
	if err != nil {
		return domain.FallbackCatalog()
	}
	return domain.ExtractCatalog(quotes)
}

// RateResult is the answer to a rate lookup. Rate 0 with Available false is
// the no-rate condition, not an error.
type RateResult struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Rate      float64 `json:"rate"`
	Available bool    `json:"available"`
}

// Rate resolves the conversion rate between two symbols against the current
// snapshot.
func (s *QuoteService) Rate(ctx context.Context, from, to string) (RateResult, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return RateResult{}, err
	}
	r := snap.Rate(from, to)
	return RateResult{From: from, To: to, Rate: r, Available: r > 0}, nil
}

// QuoteResult pairs the computed quote with its request for rendering.
type QuoteResult struct {
	From       string
	To         string
	FromAmount float64
	domain.Quote
}

// Quote prices a conversion of fromAmount against the current snapshot,
// applying the configured flat fee. Unresolvable pairs and invalid amounts
// yield the zero quote, mirroring the engine's never-throw contract.
func (s *QuoteService) Quote(ctx context.Context, from, to string, fromAmount float64) (QuoteResult, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return QuoteResult{}, err
	}
	q := domain.ComputeQuote(snap, from, to, fromAmount, s.params.FeeRate)
	return QuoteResult{From: from, To: to, FromAmount: fromAmount, Quote: q}, nil
}

// RequestRefresh queues an on-demand snapshot refresh. pair narrows the
// refresh to one market; empty refreshes the whole feed.
func (s *QuoteService) RequestRefresh(ctx context.Context, pair string, idem *string) (string, error) {
	if pair != "" && !domain.ValidatePair(pair) {
		return "", ErrBadRequest
	}
	if idem != nil && *idem != "" {
		ok, err := s.idem.TryReserve(ctx, "refresh:"+*idem)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrConflict
		}
	}
	return s.jobs.CreateQueued(ctx, pair, idem)
}

// RefreshStatus returns the state of a queued refresh.
func (s *QuoteService) RefreshStatus(ctx context.Context, id string) (domain.MarketRefresh, error) {
	return s.jobs.GetByID(ctx, id)
}

// ProcessRefresh runs one claimed refresh job: fetch, persist, record
// history, mark done. Fetch failures mark the job failed; the error message
// is kept on the job for the status endpoint.
func (s *QuoteService) ProcessRefresh(ctx context.Context, id string, fetch func(ctx context.Context) ([]domain.MarketQuote, error), source string) error {
	_ = s.jobs.UpdateStatus(ctx, id, domain.RefreshStatusProcessing, nil)

	quotes, err := fetch(ctx)
	if err != nil {
		msg := err.Error()
		_ = s.jobs.UpdateStatus(ctx, id, domain.RefreshStatusFailed, &msg)
		return err
	}

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		if err := s.markets.UpsertBatch(ctx, quotes); err != nil {
			return err
		}
		now := s.clock.Now()
		for _, q := range quotes {
			h := domain.MarketHistory{
				Pair:      domain.Pair(q.Pair),
				Price:     q.Price,
				Change24h: q.Change24h,
				Volume24h: q.Volume24h,
				QuotedAt:  q.Timestamp,
				Source:    source,
				RefreshID: &id,
			}
			if h.QuotedAt.IsZero() {
				h.QuotedAt = now
			}
			if err := s.markets.AppendHistory(ctx, h); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		msg := err.Error()
		_ = s.jobs.UpdateStatus(ctx, id, domain.RefreshStatusFailed, &msg)
		return err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, quotes)
	}
	return s.jobs.UpdateStatus(ctx, id, domain.RefreshStatusDone, nil)
}

func (s *QuoteService) snapshot(ctx context.Context) (domain.Snapshot, error) {
	quotes, err := s.loadQuotes(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return domain.NewSnapshot(quotes, s.params.BaseCurrency), nil
}

func (s *QuoteService) loadQuotes(ctx context.Context) ([]domain.MarketQuote, error) {
	if s.cache != nil {
		if quotes, ok, err := s.cache.Get(ctx); err == nil && ok {
			return quotes, nil
		}
	}
	return s.markets.Latest(ctx)
}
