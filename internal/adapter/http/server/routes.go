package server

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// setupRoutes - setups http routes
func (a *API) setupRoutes() {
	// System Health
	a.mux.HandleFunc("GET /health", a.routes.health.HealthCheck)

	a.setupSwaggerRoutes()
	a.setupMetricsRoute()

	// Ingestion
	a.mux.HandleFunc("POST /api/ingest", a.routes.ingest.IngestData) // Replace the dataset (synthetic or external source)

	// Analytics
	a.mux.HandleFunc("GET /api/analytics/overview", a.routes.analytics.GetOverview) // Dataset-wide KPI snapshot
	a.mux.HandleFunc("GET /api/analytics/hourly", a.routes.analytics.GetHourly)     // Hourly wait/delay breakdown
	a.mux.HandleFunc("GET /api/analytics/zones", a.routes.analytics.GetZones)       // Per-zone breakdown, busiest first

	// Dashboard live feed
	a.mux.HandleFunc("GET /ws/dashboard", a.routes.dashboard.HandleWS)
}

// setupSwaggerRoutes configures the Swagger UI endpoint
func (a *API) setupSwaggerRoutes() {
	swaggerURL := httpSwagger.InstanceName("analytics")
	a.mux.HandleFunc("/swagger/", httpSwagger.Handler(swaggerURL))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func (a *API) setupMetricsRoute() {
	a.mux.Handle("/metrics", promhttp.Handler())
}
