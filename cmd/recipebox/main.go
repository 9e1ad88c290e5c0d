package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/matt-dz/recipebox/internal/api"
	"github.com/matt-dz/recipebox/internal/config"
	"github.com/matt-dz/recipebox/internal/env"
	"github.com/matt-dz/recipebox/internal/log"
	"github.com/matt-dz/recipebox/internal/metrics"
	"github.com/matt-dz/recipebox/internal/render"
	"github.com/matt-dz/recipebox/internal/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	const setupTime = 30 * time.Second
	setupCtx, cancel := context.WithTimeout(ctx, setupTime)
	defer cancel()

	logger := log.New(nil, nil)

	conf, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", slog.String("level", conf.LogLevel))
	}
	logger = log.New(nil, &slog.HandlerOptions{Level: level})

	images, err := setup.Images(setupCtx, conf)
	if err != nil {
		logger.Error("failed to setup image store", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := setup.Database(setupCtx, conf)
	if err != nil {
		logger.Error("failed to setup database", slog.Any("error", err))
		os.Exit(1)
	}

	logger.DebugContext(ctx, "setting up categories")
	if err := setup.Categories(setupCtx, db, logger); err != nil {
		logger.Error("failed to setup categories", slog.Any("error", err))
		os.Exit(1)
	}

	renderer, err := render.New(images)
	if err != nil {
		logger.Error("failed to parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	env := env.New(logger, db, images, metrics.New(registry), renderer, conf)

	if err := api.Start(ctx, env, registry); err != nil {
		env.Logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
