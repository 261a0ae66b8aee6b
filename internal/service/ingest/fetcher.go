package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/types"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/uuid"
)

const maxSourceBody = 32 << 20 // 32MB

// Fetcher loads trip records from an external HTTP source.
// The source must return a JSON array of trip records.
type Fetcher struct {
	client *http.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads and decodes the source. Any transport or decode failure is
// reported as ErrDataSource; it is surfaced to the caller and never retried
// automatically.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]models.TripRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrDataSource, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrDataSource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: source returned status %d", types.ErrDataSource, resp.StatusCode)
	}

	var trips []models.TripRecord
	dec := json.NewDecoder(http.MaxBytesReader(nil, resp.Body, maxSourceBody))
	if err := dec.Decode(&trips); err != nil {
		return nil, fmt.Errorf("%w: malformed body: %v", types.ErrDataSource, err)
	}

	// Fill in what the source may omit: record ids and hour buckets.
	for i := range trips {
		if trips[i].ID == (uuid.UUID{}) {
			id, err := uuid.New()
			if err != nil {
				return nil, err
			}
			trips[i].ID = id
		}
		if trips[i].PickupHour == 0 && !trips[i].PickupDatetime.IsZero() {
			trips[i].PickupHour = trips[i].PickupDatetime.UTC().Hour()
		}
	}

	return trips, nil
}
