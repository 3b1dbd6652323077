// Package app wires configuration into a running report service. Both the
// HTTP server and reportctl start through Open.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/worklog/report-dashboard/internal/core/domain"
	"github.com/worklog/report-dashboard/internal/core/ports"
	"github.com/worklog/report-dashboard/internal/core/seed"
	"github.com/worklog/report-dashboard/internal/core/service"
	"github.com/worklog/report-dashboard/internal/infrastructure/config"
	"github.com/worklog/report-dashboard/internal/infrastructure/db/memory"
	"github.com/worklog/report-dashboard/internal/infrastructure/db/mongo"
	"github.com/worklog/report-dashboard/internal/infrastructure/db/redis"
	"github.com/worklog/report-dashboard/internal/infrastructure/export"
	"github.com/worklog/report-dashboard/internal/infrastructure/storage"
)

// App is an opened store plus the service built on it.
type App struct {
	Store   ports.BlobStore
	Repo    ports.ReportRepository
	Service *service.ReportService

	closeStore func(context.Context) error
}

// Open connects the configured store and builds the report service.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info().Str("driver", cfg.StoreDriver).Msg("report store ready")

	clock := func() time.Time { return time.Now().In(loc) }
	seedValue := cfg.Seed
	if seedValue == 0 {
		seedValue = uint64(time.Now().UnixNano())
	}

	repo := storage.NewReportRepository(store, seed.Generate(clock(), seedValue), log)
	svc := service.NewReportService(repo, service.Options{
		ExportBaseURL:   cfg.Export.BaseURL,
		ExportLatency:   cfg.Export.ExportLatency,
		ScheduleLatency: cfg.Export.ScheduleLatency,
		Clock:           clock,
		Renderers: map[domain.ExportFormat]ports.Renderer{
			domain.FormatCSV:   export.CSV{},
			domain.FormatExcel: export.Spreadsheet{},
		},
	}, log)

	return &App{Store: store, Repo: repo, Service: svc, closeStore: closeStore}, nil
}

// Close releases the store connection.
func (a *App) Close(ctx context.Context) error {
	return a.closeStore(ctx)
}

func openStore(ctx context.Context, cfg *config.Config) (ports.BlobStore, func(context.Context) error, error) {
	switch cfg.StoreDriver {
	case config.DriverRedis:
		s, err := redis.Open(ctx, redis.Config{
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			KeyPrefix: cfg.Redis.KeyPrefix,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, func(context.Context) error { return s.Close() }, nil
	case config.DriverMongo:
		s, err := mongo.Open(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.DriverMemory, "":
		return memory.NewBlobStore(), func(context.Context) error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
