package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cryptorates-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

const snapshotKey = "market:snapshot"

// SnapshotStore caches the latest market quote list as JSON with a TTL.
// A stale or missing key is a cache miss, never an error for the read path.
type SnapshotStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewSnapshotStore(client *redis.Client, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{Client: client, TTL: ttl}
}

func (s *SnapshotStore) Get(ctx context.Context) ([]domain.MarketQuote, bool, error) {
	data, err := s.Client.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var quotes []domain.MarketQuote
	if err := json.Unmarshal(data, &quotes); err != nil {
		// Corrupt cache entry; treat as a miss so the repo stays the
		// source of truth.
		return nil, false, nil
	}
	return quotes, true, nil
}

func (s *SnapshotStore) Set(ctx context.Context, quotes []domain.MarketQuote) error {
	data, err := json.Marshal(quotes)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, snapshotKey, data, s.TTL).Err()
}
