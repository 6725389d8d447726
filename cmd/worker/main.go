package main

import (
	"context"
	"os/signal"
	"syscall"

	"hotelbook/config"
	"hotelbook/di"
	"hotelbook/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	worker := di.InitializeWorker()
	worker.Run(ctx)
}
