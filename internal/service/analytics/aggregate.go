package analytics

import (
	"math"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
)

// Aggregation is pure: given the same record slice the output is identical,
// there is no hidden state and no I/O. Averages are computed from
// full-precision sums divided by counts; rounding happens once, for display.
// Never average per-bucket averages to get an overall average.

// ComputeOverview returns the dataset-wide KPI snapshot.
// An empty slice yields an all-zero Overview, not an error.
func ComputeOverview(trips []models.TripRecord) models.Overview {
	total := len(trips)
	if total == 0 {
		return models.Overview{}
	}

	var (
		sumDuration float64
		sumFare     float64
		sumRevenue  float64
		sumWait     float64
		delayed     int
	)

	for _, t := range trips {
		sumDuration += t.TripDurationMinutes
		sumFare += t.FareAmount
		sumRevenue += t.TotalAmount
		sumWait += t.PickupWaitTimeMinutes
		if t.IsDelayed() {
			delayed++
		}
	}

	n := float64(total)
	return models.Overview{
		TotalTrips:        total,
		AvgTripDuration:   round1(sumDuration / n),
		AvgFare:           round2(sumFare / n),
		TotalRevenue:      round2(sumRevenue),
		DelayedTripsCount: delayed,
		DelayPercentage:   round1(float64(delayed) / n * 100),
		AvgWaitTime:       round1(sumWait / n),
	}
}

// ComputeHourly groups trips by pickup hour. Only hours present in the data
// are emitted (sparse), ascending 0..23. Consumers needing "top N" hours
// sort on their side.
func ComputeHourly(trips []models.TripRecord) []models.HourlyBucket {
	var (
		counts  [24]int
		waits   [24]float64
		delays  [24]int
		present int
	)

	for _, t := range trips {
		h := t.PickupHour
		if counts[h] == 0 {
			present++
		}
		counts[h]++
		waits[h] += t.PickupWaitTimeMinutes
		if t.IsDelayed() {
			delays[h]++
		}
	}

	buckets := make([]models.HourlyBucket, 0, present)
	for h := range 24 {
		if counts[h] == 0 {
			continue
		}
		n := float64(counts[h])
		buckets = append(buckets, models.HourlyBucket{
			Hour:            h,
			TripCount:       counts[h],
			AvgWaitTime:     round1(waits[h] / n),
			DelayPercentage: round1(float64(delays[h]) / n * 100),
		})
	}

	return buckets
}

// ComputeZones groups trips by pickup location id. The zone name attached to
// the first record seen for an id wins; later conflicting names are ignored.
// Output follows first-seen order, which is deterministic for a given input.
func ComputeZones(trips []models.TripRecord) []models.ZoneBucket {
	type zoneAcc struct {
		name    string
		count   int
		wait    float64
		delayed int
	}

	accs := make(map[int]*zoneAcc)
	order := make([]int, 0)

	for _, t := range trips {
		acc, ok := accs[t.PickupLocationID]
		if !ok {
			acc = &zoneAcc{name: t.ZoneName}
			accs[t.PickupLocationID] = acc
			order = append(order, t.PickupLocationID)
		}
		acc.count++
		acc.wait += t.PickupWaitTimeMinutes
		if t.IsDelayed() {
			acc.delayed++
		}
	}

	buckets := make([]models.ZoneBucket, 0, len(order))
	for _, id := range order {
		acc := accs[id]
		n := float64(acc.count)
		buckets = append(buckets, models.ZoneBucket{
			LocationID:      id,
			ZoneName:        acc.name,
			TripCount:       acc.count,
			AvgWaitTime:     round1(acc.wait / n),
			DelayPercentage: round1(float64(acc.delayed) / n * 100),
		})
	}

	return buckets
}

// round1/round2 round half away from zero, which is what math.Round does.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
