package ingest

import (
	"context"
	"time"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/types"
	"github.com/Temutjin2k/taxi-analytics-system/internal/service/analytics"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/metrics"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/uuid"
)

const (
	SourceSynthetic = "synthetic"
	SourceExternal  = "external"

	serviceName = "analytics-service"
)

type Config struct {
	TripCount int
	Seed      int64
}

// Service owns the write side of the record set: it builds or fetches a trip
// batch, validates it as a whole and atomically replaces the store contents.
// Readers never observe a partial dataset.
type Service struct {
	store     TripStore
	fetcher   *Fetcher
	publisher EventPublisher
	notifier  Notifier
	cfg       Config

	l logger.Logger
}

func NewService(store TripStore, fetcher *Fetcher, publisher EventPublisher, notifier Notifier, cfg Config, l logger.Logger) *Service {
	return &Service{
		store:     store,
		fetcher:   fetcher,
		publisher: publisher,
		notifier:  notifier,
		cfg:       cfg,
		l:         l,
	}
}

// IngestSample regenerates the synthetic dataset and replaces the record set.
// Repeated calls replace, never append.
func (s *Service) IngestSample(ctx context.Context) (models.IngestResult, error) {
	ctx = wrap.WithAction(ctx, types.ActionIngestSample)

	trips, err := generateTrips(s.cfg.TripCount, s.cfg.Seed)
	if err != nil {
		return models.IngestResult{}, wrap.Error(ctx, err)
	}

	return s.ingest(ctx, SourceSynthetic, trips)
}

// IngestFromSource fetches trip records from an external URL and replaces the
// record set with them. An unreachable or malformed source fails with
// ErrDataSource and leaves the previous dataset untouched.
func (s *Service) IngestFromSource(ctx context.Context, url string) (models.IngestResult, error) {
	ctx = wrap.WithAction(ctx, types.ActionIngestSource)

	trips, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return models.IngestResult{}, wrap.Error(ctx, err)
	}

	return s.ingest(ctx, SourceExternal, trips)
}

func (s *Service) ingest(ctx context.Context, source string, trips []models.TripRecord) (result models.IngestResult, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordIngestion(serviceName, source, err, time.Since(start))
	}()

	if err = validateBatch(trips); err != nil {
		return models.IngestResult{}, wrap.Error(ctx, err)
	}

	batchID, err := uuid.New()
	if err != nil {
		return models.IngestResult{}, wrap.Error(ctx, err)
	}
	ctx = wrap.WithBatchID(ctx, batchID.String())

	if err = s.store.ReplaceAll(ctx, trips); err != nil {
		return models.IngestResult{}, wrap.Error(ctx, err)
	}

	result = models.IngestResult{
		BatchID:     batchID,
		Source:      source,
		TripsLoaded: len(trips),
	}

	metrics.TripsLoadedGauge.WithLabelValues(serviceName).Set(float64(len(trips)))

	s.l.Info(ctx, "dataset ingestion completed",
		"source", source,
		"trips_loaded", result.TripsLoaded,
	)

	// Уведомления не должны ронять уже успешный ingest.
	if s.publisher != nil {
		if pubErr := s.publisher.DatasetIngested(ctx, result); pubErr != nil {
			s.l.Warn(ctx, "failed to publish ingestion event", "err", pubErr.Error())
		}
	}

	if s.notifier != nil {
		s.notifier.DatasetRefreshed(analytics.ComputeOverview(trips), result)
	}

	return result, nil
}
