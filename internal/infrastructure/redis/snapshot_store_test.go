package redisstore_test

import (
	"context"
	"testing"
	"time"

	"cryptorates-service/internal/domain"
	redisstore "cryptorates-service/internal/infrastructure/redis"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	client := newTestClient(t)
	store := redisstore.NewSnapshotStore(client, time.Minute)
	ctx := context.Background()

	_, ok, err := store.Get(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	quotes := []domain.MarketQuote{
		{Pair: "BTC/ZAR", Price: "1200000", Change24h: "1.2", Volume24h: "350000"},
	}
	require.NoError(t, store.Set(ctx, quotes))

	got, ok, err := store.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, quotes, got)
}

func TestSnapshotStore_CorruptEntryIsMiss(t *testing.T) {
	client := newTestClient(t)
	store := redisstore.NewSnapshotStore(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "market:snapshot", "{not json", 0).Err())

	_, ok, err := store.Get(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTryReserve(t *testing.T) {
	client := newTestClient(t)
	store := redisstore.New(client, time.Hour)
	ctx := context.Background()

	ok, err := store.TryReserve(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = store.TryReserve(ctx, "k1")
	require.NoError(t, err)
	require.False(t, ok)
}
