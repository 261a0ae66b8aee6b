package handler

import (
	"net/http"
	"time"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/metrics"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/uuid"
	ws "github.com/Temutjin2k/taxi-analytics-system/pkg/wsHub"
	"github.com/gorilla/websocket"
)

// Dashboard manages the live-refresh feed: connected dashboard clients get a
// dataset_refreshed push after every successful ingestion, so the UI can
// re-fetch the analytics views without polling.
type Dashboard struct {
	serviceName string
	hub         *ws.ConnectionHub
	upgrader    websocket.Upgrader
	l           logger.Logger
}

func NewDashboard(serviceName string, hub *ws.ConnectionHub, l logger.Logger) *Dashboard {
	return &Dashboard{
		serviceName: serviceName,
		hub:         hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Dashboard is served from a different origin in development
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		l: l,
	}
}

// HandleWS godoc
// @Summary      Dashboard live feed
// @Description  WebSocket endpoint. The server pushes dataset_refreshed messages after each ingestion.
// @Tags         Dashboard
// @Router       /ws/dashboard [get]
func (h *Dashboard) HandleWS(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "dashboard_ws_connect")

	clientID, err := uuid.New()
	if err != nil {
		h.l.Error(ctx, "failed to generate client id", err)
		internalErrorResponse(w, "internal error")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.l.Error(ctx, "failed to upgrade connection", err)
		return
	}

	client := ws.NewConn(r.Context(), clientID, conn)
	if err := h.hub.Add(client); err != nil {
		h.l.Error(ctx, "failed to register connection", err)
		_ = conn.Close()
		return
	}

	metrics.DashboardConnectionsGauge.WithLabelValues(h.serviceName).Set(float64(h.hub.Count()))
	h.l.Info(ctx, "dashboard client connected", "client_id", clientID.String())

	// Reader goroutine only drains control frames; the feed is one-way.
	go func() {
		defer func() {
			_ = h.hub.Delete(clientID)
			metrics.DashboardConnectionsGauge.WithLabelValues(h.serviceName).Set(float64(h.hub.Count()))
		}()
		_ = client.Listen(func(msg any) error { return nil })
	}()
}

// DatasetRefreshed broadcasts the fresh overview to every connected client.
// Implements the ingest notifier contract.
func (h *Dashboard) DatasetRefreshed(overview models.Overview, result models.IngestResult) {
	h.hub.Broadcast(map[string]any{
		"type":         "dataset_refreshed",
		"batch_id":     result.BatchID.String(),
		"source":       result.Source,
		"trips_loaded": result.TripsLoaded,
		"overview":     overview,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}
