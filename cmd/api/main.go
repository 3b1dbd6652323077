package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/worklog/report-dashboard/internal/api"
	"github.com/worklog/report-dashboard/internal/app"
	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/infrastructure/config"
	"github.com/worklog/report-dashboard/internal/infrastructure/http/handlers"
	"github.com/worklog/report-dashboard/internal/infrastructure/queue"
	"github.com/worklog/report-dashboard/pkg/logger"
)

// @title       Report Dashboard API
// @version     1.0
// @description Timesheet, user, client, project and task reports.
// @BasePath    /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
		File:   cfg.LogFile,
	})

	a, err := app.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("closing store")
		}
	}()

	if cfg.WarmOnStart {
		w := queue.NewWarmer(0, a.Repo, log)
		w.Start(ctx)
		if err := w.Warm(ctx, domain.Categories); err != nil {
			log.Warn().Err(err).Msg("store warm-up incomplete")
		}
	}

	e := api.NewRouter(api.Deps{
		Service:    a.Service,
		Ready:      map[string]handlers.Pinger{"store": a.Store},
		JWTSecret:  cfg.JWTSecret,
		Logger:     log,
		Registerer: prometheus.DefaultRegisterer,
		Gatherer:   prometheus.DefaultGatherer,
	})

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("starting server")
		serverErrors <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown initiated")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
			return e.Close()
		}
	}
	return nil
}
