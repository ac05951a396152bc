package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"cryptorates-service/internal/bootstrap"
	"cryptorates-service/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	log := logx.L()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	run, cleanup, err := bootstrap.InitWorkerApp(ctx)
	if err != nil {
		log.Fatal("init worker", zap.Error(err))
	}
	defer cleanup()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		cancel()
	}()

	if err := run(ctx); err != nil {
		log.Fatal("worker exited", zap.Error(err))
	}
	log.Info("worker stopped")
}
