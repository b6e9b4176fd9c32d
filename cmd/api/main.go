package main

import (
	"context"
	"os/signal"
	"syscall"

	"cryptostats-service/internal/bootstrap"
	"cryptostats-service/internal/infrastructure/logx"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	logger := logx.L()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api, cleanup, err := bootstrap.InitAPI(ctx)
	if err != nil {
		logger.Fatal("bootstrap api", zap.Error(err))
	}
	defer cleanup()

	if err := api.Run(ctx); err != nil {
		logger.Error("listen", zap.Error(err))
	}
}
