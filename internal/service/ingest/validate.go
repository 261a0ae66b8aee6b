package ingest

import (
	"fmt"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/types"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/validator"
)

// validateBatch checks every record against the field invariants.
// Policy: the whole batch is rejected on the first invalid record, so a bad
// source can never silently skew the aggregates. The previous dataset stays
// live in that case.
func validateBatch(trips []models.TripRecord) error {
	if len(trips) == 0 {
		return types.ErrEmptyBatch
	}

	for i, t := range trips {
		v := validator.New()
		validateTrip(v, t)
		if !v.Valid() {
			for field, msg := range v.Errors {
				return fmt.Errorf("%w: record %d: %s %s", types.ErrValidation, i, field, msg)
			}
		}
	}

	return nil
}

func validateTrip(v *validator.Validator, t models.TripRecord) {
	v.Check(t.PickupHour >= 0 && t.PickupHour <= 23, "pickup_hour", "must be between 0 and 23")
	v.Check(t.PickupLocationID >= 1, "pickup_location_id", "must be a positive zone id")
	v.Check(t.ZoneName != "", "zone_name", "must be provided")
	v.Check(t.PickupWaitTimeMinutes >= 0, "pickup_wait_time_minutes", "must not be negative")
	v.Check(t.TripDurationMinutes >= 0, "trip_duration_minutes", "must not be negative")
	v.Check(t.TripDistance >= 0, "trip_distance", "must not be negative")
	v.Check(t.FareAmount >= 0, "fare_amount", "must not be negative")
	v.Check(t.TotalAmount >= 0, "total_amount", "must not be negative")
	v.Check(t.PassengerCount >= 1, "passenger_count", "must be at least 1")
}
