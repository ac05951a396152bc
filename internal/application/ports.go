package application

import (
	"context"
	"time"

	"cryptorates-service/internal/domain"
)

type MarketRepo interface {
	Latest(ctx context.Context) ([]domain.MarketQuote, error)
	GetPair(ctx context.Context, pair string) (domain.MarketQuote, error)
	UpsertBatch(ctx context.Context, quotes []domain.MarketQuote) error
	AppendHistory(ctx context.Context, h domain.MarketHistory) error
}

type RefreshJobRepo interface {
	CreateQueued(ctx context.Context, pair string, idem *string) (string, error)
	GetByID(ctx context.Context, id string) (domain.MarketRefresh, error)
	UpdateStatus(ctx context.Context, id string, status domain.RefreshStatus, errMsg *string) error
	ClaimQueued(ctx context.Context, limit int) ([]QueuedRefresh, error)
}

// QueuedRefresh is a claimed job handed to a worker. Pair is empty for a
// full-feed refresh.
type QueuedRefresh struct {
	ID   string
	Pair string
}

type MarketProvider interface {
	Fetch(ctx context.Context) ([]domain.MarketQuote, error)
	FetchPair(ctx context.Context, pair string) (domain.MarketQuote, error)
}

// SnapshotCache is the hot-path cache of the latest quote list. A miss is
// not an error; callers fall through to the repository.
type SnapshotCache interface {
	Get(ctx context.Context) ([]domain.MarketQuote, bool, error)
	Set(ctx context.Context, quotes []domain.MarketQuote) error
}

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }
