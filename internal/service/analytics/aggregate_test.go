package analytics

import (
	"math"
	"reflect"
	"testing"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
)

func trip(hour int, wait, fare, duration float64) models.TripRecord {
	return models.TripRecord{
		PickupHour:            hour,
		PickupLocationID:      1,
		ZoneName:              "Zone 1",
		PickupWaitTimeMinutes: wait,
		FareAmount:            fare,
		TotalAmount:           fare,
		TripDurationMinutes:   duration,
	}
}

func TestComputeOverview_Empty(t *testing.T) {
	got := ComputeOverview(nil)

	if got.TotalTrips != 0 {
		t.Fatalf("expected 0 trips, got %d", got.TotalTrips)
	}
	if got.AvgTripDuration != 0 || got.AvgFare != 0 || got.AvgWaitTime != 0 {
		t.Fatalf("averages must be zero on empty input: %+v", got)
	}
	if got.DelayPercentage != 0 || got.TotalRevenue != 0 || got.DelayedTripsCount != 0 {
		t.Fatalf("rates and sums must be zero on empty input: %+v", got)
	}
}

func TestComputeOverview_Scenario(t *testing.T) {
	trips := []models.TripRecord{
		trip(8, 15, 20, 10),
		trip(8, 5, 10, 5),
		trip(9, 20, 30, 15),
	}

	got := ComputeOverview(trips)

	if got.TotalTrips != 3 {
		t.Fatalf("total trips: got %d want 3", got.TotalTrips)
	}
	if got.AvgFare != 20.0 {
		t.Fatalf("avg fare: got %v want 20.0", got.AvgFare)
	}
	if got.DelayedTripsCount != 2 {
		t.Fatalf("delayed count: got %d want 2 (waits 15 and 20 exceed threshold)", got.DelayedTripsCount)
	}
	if got.DelayPercentage != 66.7 {
		t.Fatalf("delay percentage: got %v want 66.7", got.DelayPercentage)
	}
	if got.AvgTripDuration != 10.0 {
		t.Fatalf("avg duration: got %v want 10.0", got.AvgTripDuration)
	}
	if got.TotalRevenue != 60.0 {
		t.Fatalf("total revenue: got %v want 60.0", got.TotalRevenue)
	}
}

func TestComputeOverview_ExactRevenue(t *testing.T) {
	// Sum must be exact over the raw amounts, no mean-of-means drift
	trips := []models.TripRecord{}
	var want float64
	for i := range 100 {
		f := 10.0 + float64(i)*0.01
		trips = append(trips, trip(i%24, 5, f, 10))
		want += f
	}

	got := ComputeOverview(trips).TotalRevenue
	if got != math.Round(want*100)/100 {
		t.Fatalf("revenue: got %v want %v", got, math.Round(want*100)/100)
	}
}

func TestComputeOverview_Idempotent(t *testing.T) {
	trips := []models.TripRecord{
		trip(3, 12, 14.5, 22),
		trip(17, 2, 8.25, 9),
	}

	first := ComputeOverview(trips)
	second := ComputeOverview(trips)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("pure function must be idempotent: %+v vs %+v", first, second)
	}
}

func TestComputeOverview_DelayMonotonic(t *testing.T) {
	trips := []models.TripRecord{
		trip(8, 15, 20, 10),
		trip(8, 5, 10, 5),
	}

	before := ComputeOverview(trips).DelayPercentage
	trips = append(trips, trip(9, 25, 30, 15)) // delayed
	after := ComputeOverview(trips).DelayPercentage

	if after < before {
		t.Fatalf("adding a delayed record decreased delay percentage: %v -> %v", before, after)
	}
}

func TestComputeHourly_Scenario(t *testing.T) {
	trips := []models.TripRecord{
		trip(8, 15, 20, 10),
		trip(8, 5, 10, 5),
		trip(9, 20, 30, 15),
	}

	got := ComputeHourly(trips)

	if len(got) != 2 {
		t.Fatalf("expected 2 buckets (sparse hours), got %d", len(got))
	}

	h8, h9 := got[0], got[1]
	if h8.Hour != 8 || h9.Hour != 9 {
		t.Fatalf("buckets must be ascending by hour: %+v", got)
	}
	if h8.TripCount != 2 || h8.AvgWaitTime != 10.0 || h8.DelayPercentage != 50.0 {
		t.Fatalf("hour 8 bucket wrong: %+v", h8)
	}
	if h9.TripCount != 1 || h9.AvgWaitTime != 20.0 || h9.DelayPercentage != 100.0 {
		t.Fatalf("hour 9 bucket wrong: %+v", h9)
	}
}

func TestComputeHourly_Conservation(t *testing.T) {
	trips := make([]models.TripRecord, 0, 500)
	for i := range 500 {
		trips = append(trips, trip(i%24, float64(i%30), 10, 15))
	}

	total := 0
	for _, b := range ComputeHourly(trips) {
		total += b.TripCount
	}

	if total != len(trips) {
		t.Fatalf("every record must be counted exactly once: got %d want %d", total, len(trips))
	}
}

func TestComputeHourly_Empty(t *testing.T) {
	if got := ComputeHourly(nil); len(got) != 0 {
		t.Fatalf("expected no buckets on empty input, got %d", len(got))
	}
}

func TestComputeZones_Conservation(t *testing.T) {
	trips := make([]models.TripRecord, 0, 300)
	for i := range 300 {
		tr := trip(i%24, float64(i%20), 10, 15)
		tr.PickupLocationID = 1 + i%7
		trips = append(trips, tr)
	}

	total := 0
	for _, b := range ComputeZones(trips) {
		total += b.TripCount
	}

	if total != len(trips) {
		t.Fatalf("every record must be counted exactly once: got %d want %d", total, len(trips))
	}
}

func TestComputeZones_FirstNameWins(t *testing.T) {
	a := trip(8, 5, 10, 10)
	a.PickupLocationID = 42
	a.ZoneName = "Midtown Center"

	b := trip(9, 5, 10, 10)
	b.PickupLocationID = 42
	b.ZoneName = "Midtown"

	got := ComputeZones([]models.TripRecord{a, b})

	if len(got) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(got))
	}
	if got[0].ZoneName != "Midtown Center" {
		t.Fatalf("first seen name must win: got %q", got[0].ZoneName)
	}
	if got[0].TripCount != 2 {
		t.Fatalf("trip count: got %d want 2", got[0].TripCount)
	}
}

func TestComputeZones_FirstSeenOrder(t *testing.T) {
	trips := []models.TripRecord{}
	for _, id := range []int{5, 3, 9, 3, 5} {
		tr := trip(8, 5, 10, 10)
		tr.PickupLocationID = id
		trips = append(trips, tr)
	}

	got := ComputeZones(trips)

	wantOrder := []int{5, 3, 9}
	if len(got) != len(wantOrder) {
		t.Fatalf("expected %d zones, got %d", len(wantOrder), len(got))
	}
	for i, id := range wantOrder {
		if got[i].LocationID != id {
			t.Fatalf("zone order must follow first-seen order: got %v", got)
		}
	}
}

func TestRounding_HalfAwayFromZero(t *testing.T) {
	// 1 trip of 2, wait 10.25 -> avg 10.25 rounds to 10.3
	trips := []models.TripRecord{
		trip(8, 10.3, 10, 10),
		trip(8, 10.2, 10, 10),
	}

	got := ComputeHourly(trips)[0].AvgWaitTime
	if got != 10.3 {
		t.Fatalf("avg wait: got %v want 10.3", got)
	}
}

func BenchmarkComputeOverview(b *testing.B) {
	trips := make([]models.TripRecord, 0, 1000)
	for i := range 1000 {
		trips = append(trips, trip(i%24, float64(i%30), 12.5, 20))
	}

	for b.Loop() {
		_ = ComputeOverview(trips)
	}
}
