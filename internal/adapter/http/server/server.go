package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Temutjin2k/taxi-analytics-system/config"
	"github.com/Temutjin2k/taxi-analytics-system/internal/adapter/http/handler"
	"github.com/Temutjin2k/taxi-analytics-system/internal/adapter/http/middleware"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
)

const serverIPAddress = "%s:%s"

type API struct {
	mux    *http.ServeMux
	server *http.Server
	routes *handlers // routes/handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	ingest    *handler.Ingest
	analytics *handler.Analytics
	dashboard *handler.Dashboard
	health    *handler.Health
}

func New(
	cfg config.Config,
	ingestService handler.IngestService,
	analyticsService handler.AnalyticsService,
	dashboard *handler.Dashboard,
	logger logger.Logger,
) (*API, error) {
	if ingestService == nil {
		return nil, errors.New("ingest service is required")
	}
	if analyticsService == nil {
		return nil, errors.New("analytics service is required")
	}

	addr := fmt.Sprintf(serverIPAddress, "0.0.0.0", cfg.Server.Port)

	routes := &handlers{
		ingest:    handler.NewIngest(ingestService, logger),
		analytics: handler.NewAnalytics(cfg.Server.ServiceName, analyticsService, logger),
		dashboard: dashboard,
		health:    handler.NewHealth(cfg.Server.ServiceName, cfg.Storage.Mode, logger),
	}

	mid := middleware.NewMiddleware(logger)

	api := &API{
		mux:    http.NewServeMux(),
		routes: routes,
		m:      mid,
		addr:   addr,
		cfg:    cfg,
		log:    logger,
	}

	api.server = &http.Server{
		Addr:    api.addr,
		Handler: api.withMiddleware(),
	}

	api.setupRoutes()

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	return a.m.Recover(a.m.RequestID(a.m.Logging(a.m.Metrics(a.cfg.Server.ServiceName)(a.mux))))
}
