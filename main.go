package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/emergentai/gridhero/internal/config"
	"github.com/emergentai/gridhero/internal/logger"
	"github.com/emergentai/gridhero/internal/server"
	"github.com/emergentai/gridhero/static"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, log, server.NewRouter(log, static.FS))
	if err := srv.Run(ctx); err != nil {
		log.Error("server failed", logger.Error(err))
		os.Exit(1)
	}
}
