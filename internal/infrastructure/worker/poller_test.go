package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPoller_TickRefreshesSnapshot(t *testing.T) {
	repo := &memMarketRepo{}
	cache := &memCache{}
	prov := &scriptedProvider{quotes: feedFixture()}
	w := &Poller{Markets: repo, Provider: prov, Cache: cache}

	w.tick(context.Background(), zap.NewNop())

	require.Equal(t, feedFixture(), repo.quotes)
	require.Len(t, repo.history, 2)
	require.Equal(t, "poll", repo.history[0].Source)
	require.Equal(t, 1, cache.sets)
}

func TestPoller_FetchFailureKeepsSnapshot(t *testing.T) {
	repo := &memMarketRepo{quotes: feedFixture()}
	cache := &memCache{}
	prov := &scriptedProvider{err: errFeedDown}
	w := &Poller{Markets: repo, Provider: prov, Cache: cache}

	w.tick(context.Background(), zap.NewNop())

	require.Equal(t, feedFixture(), repo.quotes)
	require.Zero(t, cache.sets)
}

func TestPoller_StartStopsOnCancel(t *testing.T) {
	prov := &scriptedProvider{quotes: feedFixture()}
	w := &Poller{Markets: &memMarketRepo{}, Provider: prov, PollEvery: 5 * time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on context cancel")
	}
	require.GreaterOrEqual(t, prov.calls, 2)
}
