package ingest

import (
	"context"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
)

type (
	TripStore interface {
		ReplaceAll(ctx context.Context, trips []models.TripRecord) error
		Count(ctx context.Context) (int, error)
	}

	// EventPublisher announces completed ingestions to downstream consumers.
	EventPublisher interface {
		DatasetIngested(ctx context.Context, result models.IngestResult) error
	}

	// Notifier pushes a refresh signal to connected dashboard clients.
	Notifier interface {
		DatasetRefreshed(overview models.Overview, result models.IngestResult)
	}
)
