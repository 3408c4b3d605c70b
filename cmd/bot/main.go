package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/koaskas/life-counter-bot/internal/app"
	"github.com/koaskas/life-counter-bot/internal/config"
	"github.com/koaskas/life-counter-bot/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config problems are fatal before a logger exists.
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	application, err := app.New(cfg, log)
	if err != nil {
		log.Fatal("init failed", zap.Error(err))
	}
	if err := application.Run(context.Background()); err != nil {
		log.Fatal("run failed", zap.Error(err))
	}
}
