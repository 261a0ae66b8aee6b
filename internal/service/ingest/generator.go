package ingest

import (
	"math"
	"math/rand"
	"time"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/uuid"
)

// zone palette: реальные зоны NYC TLC, чтобы зональная разбивка
// выглядела осмысленно и имела ненулевую дисперсию.
var zonePalette = []struct {
	id   int
	name string
}{
	{132, "JFK Airport"},
	{138, "LaGuardia Airport"},
	{161, "Midtown Center"},
	{186, "Penn Station/Madison Sq West"},
	{230, "Times Sq/Theatre District"},
	{79, "East Village"},
	{48, "Clinton East"},
	{236, "Upper East Side North"},
	{237, "Upper East Side South"},
	{142, "Lincoln Square East"},
	{170, "Murray Hill"},
	{68, "East Chelsea"},
}

// fare model: rough NYC taxi rates
const (
	baseFare        = 3.00
	farePerMile     = 2.50
	farePerMinute   = 0.50
	maxWaitMinutes  = 30.0
	minTripDuration = 5.0
	minTripDistance = 0.1
)

// generateTrips builds a synthetic dataset with plausible, bounded values.
// A fixed seed makes the dataset reproducible between runs.
func generateTrips(count int, seed int64) ([]models.TripRecord, error) {
	r := rand.New(rand.NewSource(seed))
	base := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	trips := make([]models.TripRecord, 0, count)
	for range count {
		id, err := uuid.New()
		if err != nil {
			return nil, err
		}

		day := r.Intn(31)
		hour := r.Intn(24)
		minute := r.Intn(60)
		second := r.Intn(60)

		pickup := base.AddDate(0, 0, day).
			Add(time.Duration(hour)*time.Hour +
				time.Duration(minute)*time.Minute +
				time.Duration(second)*time.Second)

		// Trip duration 5-120 minutes, normal around 25
		duration := r.NormFloat64()*15 + 25
		if duration < minTripDuration {
			duration = minTripDuration
		}

		dropoff := pickup.Add(time.Duration(duration * float64(time.Minute)))

		// Pickup wait 0-30 minutes, most under 10
		wait := r.ExpFloat64() * 5
		if wait > maxWaitMinutes {
			wait = maxWaitMinutes
		}

		distance := r.ExpFloat64() * 3
		if distance < minTripDistance {
			distance = minTripDistance
		}

		fare := baseFare + distance*farePerMile + duration*farePerMinute
		total := fare * (1.1 + r.Float64()*0.2) // tips and taxes

		pickupZone := zonePalette[r.Intn(len(zonePalette))]
		dropoffZone := zonePalette[r.Intn(len(zonePalette))]

		paymentType := 1 // credit
		if r.Float64() < 0.3 {
			paymentType = 2 // cash
		}

		trips = append(trips, models.TripRecord{
			ID:                id,
			PickupDatetime:    pickup,
			DropoffDatetime:   dropoff,
			PickupLocationID:  pickupZone.id,
			DropoffLocationID: dropoffZone.id,
			ZoneName:          pickupZone.name,
			PickupHour:        hour,
			PassengerCount:    pickPassengerCount(r),
			TripDistance:      round2(distance),
			FareAmount:        round2(fare),
			TotalAmount:       round2(total),
			PaymentType:       paymentType,

			TripDurationMinutes:   round1(duration),
			PickupWaitTimeMinutes: round1(wait),
		})
	}

	return trips, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// pickPassengerCount mirrors the observed distribution: half of the rides are
// solo, large groups are rare.
func pickPassengerCount(r *rand.Rand) int {
	p := r.Float64()
	switch {
	case p < 0.50:
		return 1
	case p < 0.75:
		return 2
	case p < 0.90:
		return 3
	case p < 0.98:
		return 4
	default:
		return 5
	}
}
