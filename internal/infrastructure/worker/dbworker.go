package worker

import (
	"context"
	"time"

	"cryptorates-service/internal/application"
	"cryptorates-service/internal/domain"
	infraconfig "cryptorates-service/internal/infrastructure/config"
	"cryptorates-service/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

var _ application.Worker = (*DbWorker)(nil)

// DbWorker drains queued refresh jobs from postgres in batches. Jobs are
// claimed with SKIP LOCKED, so multiple workers can run side by side.
type DbWorker struct {
	Jobs     application.RefreshJobRepo
	Svc      *application.QuoteService
	Provider application.MarketProvider

	PollEvery  time.Duration
	BatchLimit int
	Log        *zap.Logger
}

func (w *DbWorker) Start(ctx context.Context) {
	log := w.Log
	if log == nil {
		log = zap.NewNop()
	}
	if w.PollEvery <= 0 {
		w.PollEvery = 250 * time.Millisecond
	}
	if w.BatchLimit <= 0 {
		w.BatchLimit = infraconfig.DefaultWorkerBatch
	}

	t := time.NewTicker(w.PollEvery)
	defer t.Stop()

	log.Info("db_worker_started", zap.Duration("poll_every", w.PollEvery))
	for {
		select {
		case <-ctx.Done():
			log.Info("db_worker_stopped")
			return
		case <-t.C:
			w.tick(ctx, log)
		}
	}
}

func (w *DbWorker) tick(ctx context.Context, log *zap.Logger) {
	jobs, err := w.Jobs.ClaimQueued(ctx, w.BatchLimit)
	if err != nil {
		log.Warn("claim_failed", zap.Error(err))
		return
	}
	for _, j := range jobs {
		w.processOne(ctx, log, j)
	}
}

func (w *DbWorker) processOne(ctx context.Context, log *zap.Logger, j application.QueuedRefresh) {
	fetch := w.fetchFunc(j.Pair)
	if err := w.Svc.ProcessRefresh(ctx, j.ID, fetch, "db"); err != nil {
		metrics.RefreshRuns.WithLabelValues("db", "error").Inc()
		log.Warn("refresh_failed", zap.String("id", j.ID), zap.String("pair", j.Pair), zap.Error(err))
		return
	}
	metrics.RefreshRuns.WithLabelValues("db", "ok").Inc()
	log.Info("refresh_done", zap.String("id", j.ID), zap.String("pair", j.Pair))
}

// fetchFunc narrows the refresh to one pair when the job names one.
func (w *DbWorker) fetchFunc(pair string) func(ctx context.Context) ([]domain.MarketQuote, error) {
	if pair == "" {
		return w.Provider.Fetch
	}
	return func(ctx context.Context) ([]domain.MarketQuote, error) {
		q, err := w.Provider.FetchPair(ctx, pair)
		if err != nil {
			return nil, err
		}
		return []domain.MarketQuote{q}, nil
	}
}
