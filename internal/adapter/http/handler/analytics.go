package handler

import (
	"context"
	"net/http"
	"sort"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/metrics"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/validator"
)

const defaultZoneLimit = 20

type AnalyticsService interface {
	Overview(ctx context.Context) (models.Overview, error)
	Hourly(ctx context.Context) ([]models.HourlyBucket, error)
	Zones(ctx context.Context) ([]models.ZoneBucket, error)
}

type Analytics struct {
	serviceName string
	s           AnalyticsService
	l           logger.Logger
}

func NewAnalytics(serviceName string, s AnalyticsService, l logger.Logger) *Analytics {
	return &Analytics{
		serviceName: serviceName,
		s:           s,
		l:           l,
	}
}

// GetOverview godoc
// @Summary      Trip analytics overview
// @Description  Returns dataset-wide KPIs: totals, averages and delay rates. All fields are zero before the first ingestion.
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  models.Overview
// @Router       /api/analytics/overview [get]
func (h *Analytics) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "analytics_get_overview")
	metrics.AnalyticsQueriesTotal.WithLabelValues(h.serviceName, "overview").Inc()

	overview, err := h.s.Overview(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to get overview", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	h.l.Debug(ctx, "fetched overview", "total_trips", overview.TotalTrips)

	if err := writeJSON(w, http.StatusOK, envelope{"overview": overview}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// GetHourly godoc
// @Summary      Hourly wait time and delay patterns
// @Description  Returns one bucket per hour present in the data, ascending by hour.
// @Tags         Analytics
// @Produce      json
// @Success      200  {array}  models.HourlyBucket
// @Router       /api/analytics/hourly [get]
func (h *Analytics) GetHourly(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "analytics_get_hourly")
	metrics.AnalyticsQueriesTotal.WithLabelValues(h.serviceName, "hourly").Inc()

	buckets, err := h.s.Hourly(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to get hourly analytics", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	if err := writeJSON(w, http.StatusOK, envelope{"hourly": buckets}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// GetZones godoc
// @Summary      Zone-wise performance analytics
// @Description  Returns the busiest zones, sorted by trip count descending.
// @Tags         Analytics
// @Produce      json
// @Param        limit  query  int  false  "maximum number of zones (1-100, default 20)"
// @Success      200  {array}  models.ZoneBucket
// @Router       /api/analytics/zones [get]
func (h *Analytics) GetZones(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "analytics_get_zones")
	metrics.AnalyticsQueriesTotal.WithLabelValues(h.serviceName, "zones").Inc()

	v := validator.New()
	limit := readInt(r.URL.Query(), "limit", defaultZoneLimit, v)
	v.Check(limit > 0, "limit", "must be greater than zero")
	v.Check(limit <= 100, "limit", "must be a maximum of 100")
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	buckets, err := h.s.Zones(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to get zone analytics", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	// Ranking is a presentation concern: busiest zones first, limited to
	// the requested count. Stable sort keeps ties deterministic.
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].TripCount > buckets[j].TripCount
	})
	if len(buckets) > limit {
		buckets = buckets[:limit]
	}

	if err := writeJSON(w, http.StatusOK, envelope{"zones": buckets}, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
