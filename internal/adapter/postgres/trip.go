package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/models"
	"github.com/Temutjin2k/taxi-analytics-system/internal/domain/types"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/metrics"
	pgdb "github.com/Temutjin2k/taxi-analytics-system/pkg/postgres"
	"github.com/Temutjin2k/taxi-analytics-system/pkg/trm"
)

const serviceName = "analytics-service"

// TripRepo persists the record set in PostgreSQL. The replace runs in a
// single transaction, so readers see либо старый, либо новый полный набор.
type TripRepo struct {
	db  *pgxpool.Pool
	txm trm.TxManager
}

func NewTripRepo(db *pgxpool.Pool, txm trm.TxManager) *TripRepo {
	return &TripRepo{
		db:  db,
		txm: txm,
	}
}

func (r *TripRepo) ReplaceAll(ctx context.Context, trips []models.TripRecord) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDatabaseQuery(serviceName, "replace_all_trips", err, time.Since(start))
	}()

	err = r.txm.Do(ctx, func(ctx context.Context) error {
		q := TxorDB(ctx, r.db)

		if _, err := q.Exec(ctx, `TRUNCATE taxi_trips;`); err != nil {
			return fmt.Errorf("trip repo: ReplaceAll (truncate): %w", err)
		}

		query := `INSERT INTO taxi_trips (
                      id, pickup_datetime, dropoff_datetime,
                      pickup_location_id, dropoff_location_id, zone_name, pickup_hour,
                      passenger_count, trip_distance, fare_amount, total_amount, payment_type,
                      trip_duration_minutes, pickup_wait_time_minutes)
                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`

		for _, t := range trips {
			if _, err := q.Exec(ctx, query,
				t.ID, t.PickupDatetime, t.DropoffDatetime,
				t.PickupLocationID, t.DropoffLocationID, t.ZoneName, t.PickupHour,
				t.PassengerCount, t.TripDistance, t.FareAmount, t.TotalAmount, t.PaymentType,
				t.TripDurationMinutes, t.PickupWaitTimeMinutes,
			); err != nil {
				if pgdb.IsUniqueViolation(err) {
					return fmt.Errorf("%w: duplicate record id %s", types.ErrValidation, t.ID)
				}
				return fmt.Errorf("trip repo: ReplaceAll (insert): %w", err)
			}
		}

		return nil
	})

	return err
}

func (r *TripRepo) List(ctx context.Context) (trips []models.TripRecord, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDatabaseQuery(serviceName, "list_trips", err, time.Since(start))
	}()

	q := TxorDB(ctx, r.db)

	// position сохраняет порядок вставки: политика "первое имя зоны побеждает"
	// зависит от стабильного порядка записей.
	query := `
        SELECT
            id, pickup_datetime, dropoff_datetime,
            pickup_location_id, dropoff_location_id, zone_name, pickup_hour,
            passenger_count, trip_distance, fare_amount, total_amount, payment_type,
            trip_duration_minutes, pickup_wait_time_minutes
        FROM taxi_trips
        ORDER BY position;`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("trip repo: List: %w", err)
	}
	defer rows.Close()

	trips = make([]models.TripRecord, 0)
	for rows.Next() {
		var t models.TripRecord
		if err := rows.Scan(
			&t.ID, &t.PickupDatetime, &t.DropoffDatetime,
			&t.PickupLocationID, &t.DropoffLocationID, &t.ZoneName, &t.PickupHour,
			&t.PassengerCount, &t.TripDistance, &t.FareAmount, &t.TotalAmount, &t.PaymentType,
			&t.TripDurationMinutes, &t.PickupWaitTimeMinutes,
		); err != nil {
			return nil, fmt.Errorf("trip repo: List (scan): %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("trip repo: List (rows): %w", err)
	}

	return trips, nil
}

func (r *TripRepo) Count(ctx context.Context) (int, error) {
	q := TxorDB(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM taxi_trips;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("trip repo: Count: %w", err)
	}
	return count, nil
}
