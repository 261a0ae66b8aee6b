package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/types"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/logger"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/uuid"
)

type fakeStore struct {
	trips    []models.TripRecord
	replaces int
}

func (s *fakeStore) ReplaceAll(_ context.Context, trips []models.TripRecord) error {
	s.trips = trips
	s.replaces++
	return nil
}

func (s *fakeStore) Count(_ context.Context) (int, error) {
	return len(s.trips), nil
}

func newTestService(store TripStore, fetcher *Fetcher, cfg Config) *Service {
	return NewService(store, fetcher, nil, nil, cfg, logger.InitLogger("test", "ERROR"))
}

func TestIngestSample_ReplacesNotAppends(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, nil, Config{TripCount: 50, Seed: 42})

	for range 3 {
		res, err := svc.IngestSample(context.Background())
		if err != nil {
			t.Fatalf("IngestSample: %v", err)
		}
		if res.TripsLoaded != 50 {
			t.Fatalf("trips loaded: got %d want 50", res.TripsLoaded)
		}
		if res.Source != SourceSynthetic {
			t.Fatalf("source: got %q want %q", res.Source, SourceSynthetic)
		}
		if res.BatchID == (uuid.UUID{}) {
			t.Fatal("batch id must be set")
		}
	}

	if len(store.trips) != 50 {
		t.Fatalf("store size after repeat ingests: got %d want 50", len(store.trips))
	}
	if store.replaces != 3 {
		t.Fatalf("expected 3 full replacements, got %d", store.replaces)
	}
}

func TestIngestFromSource_OK(t *testing.T) {
	src, err := generateTrips(20, 1)
	if err != nil {
		t.Fatalf("generateTrips: %v", err)
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(src)
	}))
	defer ts.Close()

	store := &fakeStore{}
	svc := newTestService(store, NewFetcher(5*time.Second), Config{})

	res, err := svc.IngestFromSource(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("IngestFromSource: %v", err)
	}
	if res.TripsLoaded != 20 {
		t.Fatalf("trips loaded: got %d want 20", res.TripsLoaded)
	}
	if res.Source != SourceExternal {
		t.Fatalf("source: got %q want %q", res.Source, SourceExternal)
	}
	if len(store.trips) != 20 {
		t.Fatalf("store size: got %d want 20", len(store.trips))
	}
}

func TestIngestFromSource_UnreachableKeepsDataset(t *testing.T) {
	store := &fakeStore{trips: mustGenerate(t, 10)}
	svc := newTestService(store, NewFetcher(time.Second), Config{})

	_, err := svc.IngestFromSource(context.Background(), "http://127.0.0.1:1/trips")
	if !errors.Is(err, types.ErrDataSource) {
		t.Fatalf("expected ErrDataSource, got %v", err)
	}
	if len(store.trips) != 10 || store.replaces != 0 {
		t.Fatal("failed fetch must leave the previous dataset untouched")
	}
}

func TestIngestFromSource_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	store := &fakeStore{}
	svc := newTestService(store, NewFetcher(time.Second), Config{})

	_, err := svc.IngestFromSource(context.Background(), ts.URL)
	if !errors.Is(err, types.ErrDataSource) {
		t.Fatalf("expected ErrDataSource, got %v", err)
	}
}

func TestIngestFromSource_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"`))
	}))
	defer ts.Close()

	store := &fakeStore{trips: mustGenerate(t, 5)}
	svc := newTestService(store, NewFetcher(time.Second), Config{})

	_, err := svc.IngestFromSource(context.Background(), ts.URL)
	if !errors.Is(err, types.ErrDataSource) {
		t.Fatalf("expected ErrDataSource, got %v", err)
	}
	if store.replaces != 0 {
		t.Fatal("malformed source must not touch the store")
	}
}

func TestIngestFromSource_InvalidRecordRejectsBatch(t *testing.T) {
	bad := mustGenerate(t, 5)
	bad[2].PickupHour = 99

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(bad)
	}))
	defer ts.Close()

	store := &fakeStore{trips: mustGenerate(t, 5)}
	svc := newTestService(store, NewFetcher(time.Second), Config{})

	_, err := svc.IngestFromSource(context.Background(), ts.URL)
	if !errors.Is(err, types.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if store.replaces != 0 {
		t.Fatal("invalid batch must leave the previous dataset live")
	}
}

func TestIngestSample_EmptyBatch(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, nil, Config{TripCount: 0, Seed: 42})

	_, err := svc.IngestSample(context.Background())
	if !errors.Is(err, types.ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
}

func mustGenerate(t *testing.T, n int) []models.TripRecord {
	t.Helper()
	trips, err := generateTrips(n, 7)
	if err != nil {
		t.Fatalf("generateTrips: %v", err)
	}
	return trips
}
