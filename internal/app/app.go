package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Temutjin2k/taxi-analytics-system/config"
	"github.com/Temutjin2k/taxi-analytics-system/internal/adapter/http/handler"
	"github.com/Temutjin2k/taxi-analytics-system/internal/adapter/http/server"
	"github.com/Temutjin2k/taxi-analytics-system/internal/adapter/memory"
	pgrepo "github.com/Temutjin2k/taxi-analytics-system/internal/adapter/postgres"
	rabbitAdapter "github.com/Temutjin2k/taxi-analytics-system/internal/adapter/rabbit"
	"github.com/Temutjin2k/taxi-analytics-system/internal/service/analytics"
	"github.com/Temutjin2k/taxi-analytics-system/internal/service/ingest"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/postgres"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/rabbit"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/trm"
	ws "github.com/Temutjin2k/taxi-analytics-system/pkg/wsHub"
)

const (
	StorageModeMemory   = "memory"
	StorageModePostgres = "postgres"
)

// tripStore объединяет read и write контракты хранилища
type tripStore interface {
	ingest.TripStore
	analytics.TripStore
}

type App struct {
	api    *server.API
	db     *postgres.PostgreDB
	rabbit *rabbit.RabbitMQ
	hub    *ws.ConnectionHub

	cfg config.Config
	log logger.Logger
}

// NewApplication wires the record store, the ingestion and analytics services
// and the HTTP API according to the configuration.
func NewApplication(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	app := &App{
		cfg: cfg,
		log: log,
	}

	// Record store: in-memory by default, postgres when configured
	var store tripStore
	switch cfg.Storage.Mode {
	case StorageModeMemory, "":
		store = memory.NewTripStore()
	case StorageModePostgres:
		db, err := postgres.New(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		app.db = db
		store = pgrepo.NewTripRepo(db.Pool, trm.New(db.Pool))
	default:
		return nil, fmt.Errorf("invalid storage mode: %s", cfg.Storage.Mode)
	}

	// Ingestion events are optional: the service runs standalone without a broker
	var publisher ingest.EventPublisher
	if cfg.RabbitMQ.Enabled {
		client, err := rabbit.New(ctx, cfg.RabbitMQ.GetDSN(), log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to rabbitMQ: %w", err)
		}
		app.rabbit = client

		producer, err := rabbitAdapter.NewDatasetProducer(client)
		if err != nil {
			return nil, fmt.Errorf("failed to create dataset producer: %w", err)
		}
		publisher = producer
	}

	app.hub = ws.NewConnHub(log)
	dashboard := handler.NewDashboard(cfg.Server.ServiceName, app.hub, log)

	fetcher := ingest.NewFetcher(cfg.Ingest.SourceTimeout)
	ingestService := ingest.NewService(store, fetcher, publisher, dashboard, ingest.Config{
		TripCount: cfg.Ingest.TripCount,
		Seed:      cfg.Ingest.Seed,
	}, log)

	analyticsService := analytics.NewService(store, log)

	api, err := server.New(cfg, ingestService, analyticsService, dashboard, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create http server: %w", err)
	}
	app.api = api

	return app, nil
}

// Run starts the HTTP server and blocks until shutdown signal or server error.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	a.api.Run(ctx, errCh)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-shutdownCh:
		a.log.Info(ctx, "received shutdown signal", "signal", sig.String())
	}

	return a.stop(ctx)
}

func (a *App) stop(ctx context.Context) error {
	a.hub.CloseAll()

	if err := a.api.Stop(ctx); err != nil {
		a.log.Error(ctx, "failed to stop http server", err)
	}

	if a.rabbit != nil {
		if err := a.rabbit.Close(ctx); err != nil {
			a.log.Error(ctx, "failed to close rabbitMQ connection", err)
		}
	}

	if a.db != nil {
		a.db.Close()
	}

	a.log.Info(ctx, "application stopped")

	return nil
}
