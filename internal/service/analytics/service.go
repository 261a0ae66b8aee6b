package analytics

import (
	"context"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	wrap "github.com/Temutjin2k/taxi-analytics-system/pkg/logger/wrapper"
)

// Service reads the current record set and delegates to the pure aggregation
// functions. An empty store is a valid state: callers get zeroed summaries
// and distinguish "no data yet" by checking total_trips, not by error.
type Service struct {
	store TripStore
	l     logger.Logger
}

func NewService(store TripStore, l logger.Logger) *Service {
	return &Service{
		store: store,
		l:     l,
	}
}

func (s *Service) Overview(ctx context.Context) (models.Overview, error) {
	trips, err := s.store.List(ctx)
	if err != nil {
		return models.Overview{}, wrap.Error(ctx, err)
	}

	return ComputeOverview(trips), nil
}

func (s *Service) Hourly(ctx context.Context) ([]models.HourlyBucket, error) {
	trips, err := s.store.List(ctx)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	return ComputeHourly(trips), nil
}

func (s *Service) Zones(ctx context.Context) ([]models.ZoneBucket, error) {
	trips, err := s.store.List(ctx)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	return ComputeZones(trips), nil
}
