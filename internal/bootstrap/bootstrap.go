package bootstrap

import (
	"context"
	"errors"
	"net/http"

	"cryptorates-service/internal/application"
	"cryptorates-service/internal/config"
	"cryptorates-service/internal/domain"
	"cryptorates-service/internal/infrastructure/httpx"
	"cryptorates-service/internal/infrastructure/logx"
	"cryptorates-service/internal/infrastructure/pg"
	"cryptorates-service/internal/infrastructure/provider"
	redisstore "cryptorates-service/internal/infrastructure/redis"
	"cryptorates-service/internal/infrastructure/worker"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrMissingDBURL = errors.New("DATABASE_URL is required for STORAGE=pg")

type Repos struct {
	MarketRepo application.MarketRepo
	JobRepo    application.RefreshJobRepo
}

type Services struct {
	Idem  application.IdempotencyStore
	Cache application.SnapshotCache
}

func ProvideLogger() *zap.Logger { return logx.L() }

func ProvideConfig() config.Config { return config.Load() }

func ProvideDB(ctx context.Context, log *zap.Logger, cfg config.Config) (*pg.DB, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, func() {}, ErrMissingDBURL
	}
	db, err := pg.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, func() {}, err
	}
	if err := pg.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, func() {}, err
	}
	cleanup := func() {
		if log != nil {
			log.Info("closing pg")
		}
		db.Close()
	}
	return db, cleanup, nil
}

func ProvideRepos(db *pg.DB) Repos {
	return Repos{
		MarketRepo: pg.NewMarketRepo(db),
		JobRepo:    pg.NewRefreshJobRepo(db),
	}
}

func ProvideRedisClient(cfg config.Config) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	return client, func() { _ = client.Close() }, nil
}

func ProvideStores(client *redis.Client, cfg config.Config) Services {
	return Services{
		Idem:  redisstore.New(client, cfg.RedisTTL),
		Cache: redisstore.NewSnapshotStore(client, cfg.SnapshotTTL),
	}
}

func ProvideMarketProvider(cfg config.Config) application.MarketProvider {
	switch cfg.Provider {
	case "http":
		return &provider.MarketFeed{
			BaseURL: cfg.MarketAPIBase,
			APIKey:  cfg.MarketAPIKey,
			Client:  newFeedClient(cfg),
		}
	default:
		return provider.NewFake()
	}
}

func ProvideQuoteService(db *pg.DB, r Repos, s Services, cfg config.Config) *application.QuoteService {
	params := application.Params{
		FeeRate:      cfg.FeeRate,
		BaseCurrency: cfg.BaseCurrency,
		Precision:    domain.NewPrecisionTable(cfg.PrecisionOverrides),
	}
	return application.NewQuoteService(r.MarketRepo, r.JobRepo, params,
		application.WithCache(s.Cache),
		application.WithIdempotency(s.Idem),
		application.WithUnitOfWork(&pg.UnitOfWork{Pool: db.Pool}),
	)
}

// ProvideWorker constructs an application.Worker based on WORKER_TYPE.
// "poll" refreshes the whole feed on a timer; "db" drains queued refresh jobs.
func ProvideWorker(r Repos, svc *application.QuoteService, s Services, log *zap.Logger, cfg config.Config) application.Worker {
	mp := ProvideMarketProvider(cfg)
	switch cfg.WorkerType {
	case "poll":
		return &worker.Poller{
			Markets:   r.MarketRepo,
			Provider:  mp,
			Cache:     s.Cache,
			PollEvery: cfg.WorkerPoll,
			Log:       log,
		}
	case "db":
		return &worker.DbWorker{
			Jobs:       r.JobRepo,
			Svc:        svc,
			Provider:   mp,
			PollEvery:  cfg.WorkerPoll,
			BatchLimit: cfg.WorkerBatchSize,
			Log:        log,
		}
	default:
		if log != nil {
			log.Error("unknown WORKER_TYPE; no worker launched", zap.String("worker_type", cfg.WorkerType))
		}
		return nil
	}
}

func newFeedClient(cfg config.Config) *httpx.Client {
	return &httpx.Client{HTTP: &http.Client{Timeout: cfg.RequestTimeout}, Token: cfg.MarketAPIKey}
}
