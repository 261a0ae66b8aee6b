package ingest

import (
	"errors"
	"testing"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/types"
)

func validTrip() models.TripRecord {
	return models.TripRecord{
		PickupHour:            8,
		PickupLocationID:      132,
		ZoneName:              "JFK Airport",
		PassengerCount:        1,
		TripDistance:          2.5,
		FareAmount:            12.75,
		TotalAmount:           15.30,
		TripDurationMinutes:   18.0,
		PickupWaitTimeMinutes: 4.5,
	}
}

func TestValidateBatch_Empty(t *testing.T) {
	if err := validateBatch(nil); !errors.Is(err, types.ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
}

func TestValidateBatch_Valid(t *testing.T) {
	if err := validateBatch([]models.TripRecord{validTrip(), validTrip()}); err != nil {
		t.Fatalf("expected valid batch, got %v", err)
	}
}

func TestValidateBatch_RejectsWholeBatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.TripRecord)
	}{
		{"hour too large", func(tr *models.TripRecord) { tr.PickupHour = 24 }},
		{"hour negative", func(tr *models.TripRecord) { tr.PickupHour = -1 }},
		{"zero location id", func(tr *models.TripRecord) { tr.PickupLocationID = 0 }},
		{"empty zone name", func(tr *models.TripRecord) { tr.ZoneName = "" }},
		{"negative wait", func(tr *models.TripRecord) { tr.PickupWaitTimeMinutes = -0.5 }},
		{"negative duration", func(tr *models.TripRecord) { tr.TripDurationMinutes = -1 }},
		{"negative distance", func(tr *models.TripRecord) { tr.TripDistance = -2 }},
		{"negative fare", func(tr *models.TripRecord) { tr.FareAmount = -10 }},
		{"negative total", func(tr *models.TripRecord) { tr.TotalAmount = -1 }},
		{"zero passengers", func(tr *models.TripRecord) { tr.PassengerCount = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := validTrip()
			tt.mutate(&bad)

			// One bad record anywhere rejects the whole batch
			batch := []models.TripRecord{validTrip(), bad, validTrip()}
			err := validateBatch(batch)
			if !errors.Is(err, types.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}
