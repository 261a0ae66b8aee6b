package models

import (
	"time"

	"github.com/Temutjin2k/taxi-analytics-system/pkg/uuid"
)

// DelayThresholdMinutes - поездка считается задержанной,
// если ожидание подачи превышает этот порог.
const DelayThresholdMinutes = 10.0

// TripRecord is a single ride event. Records are immutable once ingested;
// the dataset is only ever replaced as a whole.
type TripRecord struct {
	ID                uuid.UUID `json:"id"`
	PickupDatetime    time.Time `json:"pickup_datetime"`
	DropoffDatetime   time.Time `json:"dropoff_datetime"`
	PickupLocationID  int       `json:"pickup_location_id"`
	DropoffLocationID int       `json:"dropoff_location_id"`
	ZoneName          string    `json:"zone_name"`
	PickupHour        int       `json:"pickup_hour"`
	PassengerCount    int       `json:"passenger_count"`
	TripDistance      float64   `json:"trip_distance"`
	FareAmount        float64   `json:"fare_amount"`
	TotalAmount       float64   `json:"total_amount"`
	PaymentType       int       `json:"payment_type"`

	TripDurationMinutes   float64 `json:"trip_duration_minutes"`
	PickupWaitTimeMinutes float64 `json:"pickup_wait_time_minutes"`
}

// IsDelayed reports whether the pickup wait exceeded the delay threshold.
func (t TripRecord) IsDelayed() bool {
	return t.PickupWaitTimeMinutes > DelayThresholdMinutes
}

// TripBatch is one ingestion unit: either a synthetic dataset or records
// fetched from an external source. Validation accepts or rejects the batch
// as a whole.
type TripBatch struct {
	ID        uuid.UUID    `json:"id"`
	Source    string       `json:"source"`
	Trips     []TripRecord `json:"trips"`
	CreatedAt time.Time    `json:"created_at"`
}

// IngestResult is returned to the caller after a successful ingestion.
type IngestResult struct {
	BatchID     uuid.UUID `json:"batch_id"`
	Source      string    `json:"source"`
	TripsLoaded int       `json:"trips_loaded"`
}
