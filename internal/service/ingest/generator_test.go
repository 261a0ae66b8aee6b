package ingest

import (
	"testing"

	"github.com/Temutjin2k/taxi-analytics-system/pkg/uuid"
)

func TestGenerateTrips_Deterministic(t *testing.T) {
	first, err := generateTrips(200, 42)
	if err != nil {
		t.Fatalf("generateTrips: %v", err)
	}
	second, err := generateTrips(200, 42)
	if err != nil {
		t.Fatalf("generateTrips: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i], second[i]
		// Идентификаторы случайные, всё остальное должно совпасть.
		a.ID, b.ID = uuid.UUID{}, uuid.UUID{}
		if a != b {
			t.Fatalf("record %d differs between runs with the same seed:\n%+v\n%+v", i, a, b)
		}
	}
}

func TestGenerateTrips_Bounds(t *testing.T) {
	trips, err := generateTrips(1000, 42)
	if err != nil {
		t.Fatalf("generateTrips: %v", err)
	}
	if len(trips) != 1000 {
		t.Fatalf("expected 1000 trips, got %d", len(trips))
	}

	for i, tr := range trips {
		if tr.PickupHour < 0 || tr.PickupHour > 23 {
			t.Fatalf("record %d: pickup hour out of range: %d", i, tr.PickupHour)
		}
		if tr.PickupWaitTimeMinutes < 0 || tr.PickupWaitTimeMinutes > maxWaitMinutes {
			t.Fatalf("record %d: wait time out of range: %v", i, tr.PickupWaitTimeMinutes)
		}
		if tr.TripDurationMinutes < minTripDuration {
			t.Fatalf("record %d: duration below floor: %v", i, tr.TripDurationMinutes)
		}
		if tr.TripDistance < minTripDistance {
			t.Fatalf("record %d: distance below floor: %v", i, tr.TripDistance)
		}
		if tr.FareAmount <= 0 || tr.TotalAmount < tr.FareAmount {
			t.Fatalf("record %d: implausible money: fare %v total %v", i, tr.FareAmount, tr.TotalAmount)
		}
		if tr.PassengerCount < 1 || tr.PassengerCount > 5 {
			t.Fatalf("record %d: passenger count out of range: %d", i, tr.PassengerCount)
		}
		if !tr.DropoffDatetime.After(tr.PickupDatetime) {
			t.Fatalf("record %d: dropoff not after pickup", i)
		}
	}
}

func TestGenerateTrips_NotDegenerate(t *testing.T) {
	trips, err := generateTrips(1000, 42)
	if err != nil {
		t.Fatalf("generateTrips: %v", err)
	}

	hours := map[int]struct{}{}
	zones := map[int]struct{}{}
	for _, tr := range trips {
		hours[tr.PickupHour] = struct{}{}
		zones[tr.PickupLocationID] = struct{}{}
	}

	if len(hours) < 2 {
		t.Fatalf("dataset must span multiple hours, got %d", len(hours))
	}
	if len(zones) < 2 {
		t.Fatalf("dataset must span multiple zones, got %d", len(zones))
	}
}

func TestGenerateTrips_PassesValidation(t *testing.T) {
	trips, err := generateTrips(1000, 42)
	if err != nil {
		t.Fatalf("generateTrips: %v", err)
	}
	if err := validateBatch(trips); err != nil {
		t.Fatalf("generated dataset failed validation: %v", err)
	}
}
