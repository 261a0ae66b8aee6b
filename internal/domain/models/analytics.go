package models

// Overview is the dataset-wide KPI snapshot shown on the main dashboard view.
// All figures are recomputed from the current record set on every query.
type Overview struct {
	TotalTrips        int     `json:"total_trips"`
	AvgTripDuration   float64 `json:"avg_trip_duration"`
	AvgFare           float64 `json:"avg_fare"`
	TotalRevenue      float64 `json:"total_revenue"`
	DelayedTripsCount int     `json:"delayed_trips_count"`
	DelayPercentage   float64 `json:"delay_percentage"`
	AvgWaitTime       float64 `json:"avg_wait_time"`
}

// HourlyBucket aggregates the trips of one pickup hour (0-23).
type HourlyBucket struct {
	Hour            int     `json:"hour"`
	TripCount       int     `json:"trip_count"`
	AvgWaitTime     float64 `json:"avg_wait_time"`
	DelayPercentage float64 `json:"delay_percentage"`
}

// ZoneBucket aggregates the trips of one pickup zone.
type ZoneBucket struct {
	LocationID      int     `json:"location_id"`
	ZoneName        string  `json:"zone_name"`
	TripCount       int     `json:"trip_count"`
	AvgWaitTime     float64 `json:"avg_wait_time"`
	DelayPercentage float64 `json:"delay_percentage"`
}
