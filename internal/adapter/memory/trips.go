package memory

import (
	"context"
	"sync"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
)

// TripStore keeps the session-scoped record set in memory. The slice is
// swapped as a whole under the write lock, so readers see either the old or
// the new complete set, never a partial one.
type TripStore struct {
	mu    sync.RWMutex
	trips []models.TripRecord
}

func NewTripStore() *TripStore {
	return &TripStore{
		trips: []models.TripRecord{},
	}
}

// ReplaceAll swaps the dataset. Records are copied so the caller cannot
// mutate the stored set afterwards.
func (s *TripStore) ReplaceAll(ctx context.Context, trips []models.TripRecord) error {
	next := make([]models.TripRecord, len(trips))
	copy(next, trips)

	s.mu.Lock()
	s.trips = next
	s.mu.Unlock()

	return nil
}

// List returns a snapshot of the current record set. Never nil: an empty
// slice before the first ingestion is a valid, if degenerate, state.
func (s *TripStore) List(ctx context.Context) ([]models.TripRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TripRecord, len(s.trips))
	copy(out, s.trips)
	return out, nil
}

func (s *TripStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.trips), nil
}
