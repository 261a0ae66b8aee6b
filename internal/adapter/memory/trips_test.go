package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
)

func batch(n int, zone string) []models.TripRecord {
	trips := make([]models.TripRecord, n)
	for i := range trips {
		trips[i] = models.TripRecord{
			PickupHour:       i % 24,
			PickupLocationID: 1,
			ZoneName:         zone,
			PassengerCount:   1,
		}
	}
	return trips
}

func TestTripStore_EmptyBeforeFirstIngest(t *testing.T) {
	s := NewTripStore()
	ctx := context.Background()

	trips, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if trips == nil {
		t.Fatal("List must return an empty slice, not nil")
	}
	if len(trips) != 0 {
		t.Fatalf("expected empty store, got %d records", len(trips))
	}

	n, err := s.Count(ctx)
	if err != nil || n != 0 {
		t.Fatalf("Count: got %d, %v", n, err)
	}
}

func TestTripStore_ReplaceAll(t *testing.T) {
	s := NewTripStore()
	ctx := context.Background()

	if err := s.ReplaceAll(ctx, batch(10, "JFK Airport")); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if err := s.ReplaceAll(ctx, batch(4, "Midtown Center")); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	trips, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(trips) != 4 {
		t.Fatalf("replace must not append: got %d want 4", len(trips))
	}
	for _, tr := range trips {
		if tr.ZoneName != "Midtown Center" {
			t.Fatalf("stale record survived replacement: %+v", tr)
		}
	}
}

func TestTripStore_SnapshotIsolation(t *testing.T) {
	s := NewTripStore()
	ctx := context.Background()

	src := batch(3, "East Village")
	if err := s.ReplaceAll(ctx, src); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	// Mutating the caller's slice must not leak into the store
	src[0].ZoneName = "mutated"

	snap, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if snap[0].ZoneName != "East Village" {
		t.Fatal("store must copy on write")
	}

	// Mutating a snapshot must not leak either
	snap[1].ZoneName = "mutated"
	again, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if again[1].ZoneName != "East Village" {
		t.Fatal("store must copy on read")
	}
}

func TestTripStore_ConcurrentReadersSeeWholeSets(t *testing.T) {
	s := NewTripStore()
	ctx := context.Background()

	if err := s.ReplaceAll(ctx, batch(100, "A")); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			if err := s.ReplaceAll(ctx, batch(50, "B")); err != nil {
				return
			}
			if err := s.ReplaceAll(ctx, batch(100, "A")); err != nil {
				return
			}
		}
	}()

	for range 200 {
		trips, err := s.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		// Readers observe the old or the new set, never a mix.
		if len(trips) != 50 && len(trips) != 100 {
			t.Fatalf("torn read: %d records", len(trips))
		}
		want := "A"
		if len(trips) == 50 {
			want = "B"
		}
		for _, tr := range trips {
			if tr.ZoneName != want {
				t.Fatalf("mixed dataset observed: len=%d zone=%q", len(trips), tr.ZoneName)
			}
		}
	}

	close(stop)
	wg.Wait()
}
