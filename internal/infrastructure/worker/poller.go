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

var _ application.Worker = (*Poller)(nil)

// Poller refreshes the whole market snapshot on a fixed interval. Each tick
// replaces the stored quote list and re-primes the cache; a failed fetch
// leaves the previous snapshot in place.
type Poller struct {
	Markets  application.MarketRepo
	Provider application.MarketProvider
	Cache    application.SnapshotCache

	PollEvery time.Duration
	Log       *zap.Logger
}

func (w *Poller) Start(ctx context.Context) {
	log := w.Log
	if log == nil {
		log = zap.NewNop()
	}
	if w.PollEvery <= 0 {
		w.PollEvery = infraconfig.DefaultWorkerPoll
	}

	t := time.NewTicker(w.PollEvery)
	defer t.Stop()

	log.Info("poller_started", zap.Duration("poll_every", w.PollEvery))
	// Prime the snapshot immediately rather than waiting a full interval.
	w.tick(ctx, log)
	for {
		select {
		case <-ctx.Done():
			log.Info("poller_stopped")
			return
		case <-t.C:
			w.tick(ctx, log)
		}
	}
}

func (w *Poller) tick(ctx context.Context, log *zap.Logger) {
	quotes, err := w.Provider.Fetch(ctx)
	if err != nil {
		metrics.RefreshRuns.WithLabelValues("poll", "error").Inc()
		log.Warn("poll_fetch_failed", zap.Error(err))
		return
	}

	if err := w.Markets.UpsertBatch(ctx, quotes); err != nil {
		metrics.RefreshRuns.WithLabelValues("poll", "error").Inc()
		log.Warn("poll_upsert_failed", zap.Error(err))
		return
	}
	for _, q := range quotes {
		if q.Timestamp.IsZero() {
			continue
		}
		_ = w.Markets.AppendHistory(ctx, domain.MarketHistory{
			Pair:      domain.Pair(q.Pair),
			Price:     q.Price,
			Change24h: q.Change24h,
			Volume24h: q.Volume24h,
			QuotedAt:  q.Timestamp,
			Source:    "poll",
		})
	}
	if w.Cache != nil {
		_ = w.Cache.Set(ctx, quotes)
	}

	metrics.RefreshRuns.WithLabelValues("poll", "ok").Inc()
	metrics.SnapshotPairs.Set(float64(len(quotes)))
	log.Info("poll_refresh_done", zap.Int("pairs", len(quotes)))
}
