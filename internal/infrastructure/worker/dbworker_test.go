package worker

import (
	"context"
	"testing"

	"cryptorates-service/internal/application"
	"cryptorates-service/internal/domain"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRefreshService(repo *memMarketRepo, jobs *memJobRepo) *application.QuoteService {
	return application.NewQuoteService(repo, jobs, application.Params{
		FeeRate:      0.01,
		BaseCurrency: "ZAR",
	})
}

func TestDbWorker_ProcessesFullRefresh(t *testing.T) {
	repo := &memMarketRepo{}
	jobs := &memJobRepo{}
	svc := newRefreshService(repo, jobs)
	prov := &scriptedProvider{quotes: feedFixture()}
	w := &DbWorker{Jobs: jobs, Svc: svc, Provider: prov, BatchLimit: 10}

	ctx := context.Background()
	id, err := jobs.CreateQueued(ctx, "", nil)
	require.NoError(t, err)

	w.tick(ctx, zap.NewNop())

	require.Equal(t, domain.RefreshStatusDone, jobs.jobs[id].Status)
	require.Equal(t, feedFixture(), repo.quotes)
}

func TestDbWorker_SinglePairRefresh(t *testing.T) {
	repo := &memMarketRepo{}
	jobs := &memJobRepo{}
	svc := newRefreshService(repo, jobs)
	prov := &scriptedProvider{quotes: feedFixture()}
	w := &DbWorker{Jobs: jobs, Svc: svc, Provider: prov, BatchLimit: 10}

	ctx := context.Background()
	id, err := jobs.CreateQueued(ctx, "BTC/ZAR", nil)
	require.NoError(t, err)

	w.tick(ctx, zap.NewNop())

	require.Equal(t, domain.RefreshStatusDone, jobs.jobs[id].Status)
	require.Len(t, repo.quotes, 1)
	require.Equal(t, "BTC/ZAR", repo.quotes[0].Pair)
}

func TestDbWorker_ProviderFailureMarksJobFailed(t *testing.T) {
	repo := &memMarketRepo{}
	jobs := &memJobRepo{}
	svc := newRefreshService(repo, jobs)
	prov := &scriptedProvider{err: errFeedDown}
	w := &DbWorker{Jobs: jobs, Svc: svc, Provider: prov, BatchLimit: 10}

	ctx := context.Background()
	id, err := jobs.CreateQueued(ctx, "", nil)
	require.NoError(t, err)

	w.tick(ctx, zap.NewNop())

	j := jobs.jobs[id]
	require.Equal(t, domain.RefreshStatusFailed, j.Status)
	require.NotNil(t, j.Error)
}
