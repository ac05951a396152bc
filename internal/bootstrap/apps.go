package bootstrap

import (
	"context"
	"fmt"

	httpserver "cryptorates-service/internal/infrastructure/http"
)

// InitAPI assembles the HTTP server and its dependencies. The returned
// cleanup closes redis and the pg pool in reverse construction order.
func InitAPI(ctx context.Context) (*httpserver.Server, func(), error) {
	log := ProvideLogger()
	cfg := ProvideConfig()

	db, closeDB, err := ProvideDB(ctx, log, cfg)
	if err != nil {
		return nil, func() {}, fmt.Errorf("init pg: %w", err)
	}
	rdb, closeRedis, err := ProvideRedisClient(cfg)
	if err != nil {
		closeDB()
		return nil, func() {}, fmt.Errorf("init redis: %w", err)
	}

	repos := ProvideRepos(db)
	services := ProvideStores(rdb, cfg)
	svc := ProvideQuoteService(db, repos, services, cfg)

	srv := httpserver.NewServer(svc)
	srv.SetReadyCheck(db.Ping)
	srv.SetStreamInterval(cfg.StreamInterval)

	cleanup := func() {
		closeRedis()
		closeDB()
	}
	return srv, cleanup, nil
}

type WorkerApp func(ctx context.Context) error

// InitWorkerApp assembles the background worker selected by WORKER_TYPE.
func InitWorkerApp(ctx context.Context) (WorkerApp, func(), error) {
	log := ProvideLogger()
	cfg := ProvideConfig()

	db, closeDB, err := ProvideDB(ctx, log, cfg)
	if err != nil {
		return nil, func() {}, fmt.Errorf("init pg: %w", err)
	}
	rdb, closeRedis, err := ProvideRedisClient(cfg)
	if err != nil {
		closeDB()
		return nil, func() {}, fmt.Errorf("init redis: %w", err)
	}

	repos := ProvideRepos(db)
	services := ProvideStores(rdb, cfg)
	svc := ProvideQuoteService(db, repos, services, cfg)

	w := ProvideWorker(repos, svc, services, log, cfg)
	cleanup := func() {
		closeRedis()
		closeDB()
	}
	if w == nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("no worker configured for WORKER_TYPE=%q", cfg.WorkerType)
	}

	runner := func(ctx context.Context) error {
		w.Start(ctx)
		return nil
	}
	return runner, cleanup, nil
}
