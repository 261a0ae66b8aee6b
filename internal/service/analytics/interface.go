package analytics

import (
	"context"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
)

type TripStore interface {
	List(ctx context.Context) ([]models.TripRecord, error)
	Count(ctx context.Context) (int, error)
}
