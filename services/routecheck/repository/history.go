package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/phantomdigital/truckcheck-sub001/internal/pkg/models"
)

// calculationRow maps one calculations row. Stops are stored as a JSONB
// array; rows written before multi-stop support carry a single destination
// in the legacy columns instead.
type calculationRow struct {
	ID                    uuid.UUID       `db:"id"`
	UserID                uuid.UUID       `db:"user_id"`
	BaseName              string          `db:"base_name"`
	BaseLat               float64         `db:"base_lat"`
	BaseLng               float64         `db:"base_lng"`
	DistanceKm            float64         `db:"distance_km"`
	DrivingDistanceKm     sql.NullFloat64 `db:"driving_distance_km"`
	MaxDistanceKm         sql.NullFloat64 `db:"max_distance_km"`
	LogbookRequired       bool            `db:"logbook_required"`
	Stops                 []byte          `db:"stops"`
	DestinationName       sql.NullString  `db:"destination_name"`
	DestinationLat        sql.NullFloat64 `db:"destination_lat"`
	DestinationLng        sql.NullFloat64 `db:"destination_lng"`
	CreatedAt             sql.NullTime    `db:"created_at"`
}

// SaveCalculation inserts one calculation into the user's history
func (r *RouteCheckRepo) SaveCalculation(ctx context.Context, record *models.CalculationRecord) error {
	stopsJSON, err := json.Marshal(record.Stops)
	if err != nil {
		return fmt.Errorf("failed to marshal stops: %w", err)
	}

	query := `
		INSERT INTO calculations (
			id, user_id, base_name, base_lat, base_lng,
			distance_km, driving_distance_km, max_distance_km,
			logbook_required, stops, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.db.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.BaseName,
		record.BaseLat,
		record.BaseLng,
		record.DistanceKm,
		record.DrivingDistanceKm,
		record.MaxDistanceFromBaseKm,
		record.LogbookRequired,
		stopsJSON,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save calculation: %w", err)
	}

	return nil
}

// ListCalculations returns the user's calculation history, newest first
func (r *RouteCheckRepo) ListCalculations(ctx context.Context, userID uuid.UUID, limit int) ([]models.CalculationRecord, error) {
	query := `
		SELECT id, user_id, base_name, base_lat, base_lng,
			distance_km, driving_distance_km, max_distance_km,
			logbook_required, stops,
			destination_name, destination_lat, destination_lng,
			created_at
		FROM calculations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var rows []calculationRow
	if err := r.db.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list calculations: %w", err)
	}

	records := make([]models.CalculationRecord, 0, len(rows))
	for _, row := range rows {
		record, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// DeleteCalculation removes one history entry owned by the user
func (r *RouteCheckRepo) DeleteCalculation(ctx context.Context, userID, recordID uuid.UUID) error {
	query := `DELETE FROM calculations WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, recordID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete calculation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deletion result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("calculation not found")
	}

	return nil
}

// toRecord normalizes a persisted row to the current record shape. Rows
// written before multi-stop support have no stops JSON; their single
// destination columns become a one-element stop list.
func (row calculationRow) toRecord() (models.CalculationRecord, error) {
	record := models.CalculationRecord{
		ID:              row.ID,
		UserID:          row.UserID,
		BaseName:        row.BaseName,
		BaseLat:         row.BaseLat,
		BaseLng:         row.BaseLng,
		DistanceKm:      row.DistanceKm,
		LogbookRequired: row.LogbookRequired,
	}

	if row.DrivingDistanceKm.Valid {
		v := row.DrivingDistanceKm.Float64
		record.DrivingDistanceKm = &v
	}
	if row.MaxDistanceKm.Valid {
		v := row.MaxDistanceKm.Float64
		record.MaxDistanceFromBaseKm = &v
	}
	if row.CreatedAt.Valid {
		record.CreatedAt = row.CreatedAt.Time
	}

	if len(row.Stops) > 0 && string(row.Stops) != "null" {
		if err := json.Unmarshal(row.Stops, &record.Stops); err != nil {
			return models.CalculationRecord{}, fmt.Errorf("failed to unmarshal stops for %s: %w", row.ID, err)
		}
	}

	if len(record.Stops) == 0 && row.DestinationName.Valid {
		record.Stops = []models.RecordStop{{
			Name: row.DestinationName.String,
			Lat:  row.DestinationLat.Float64,
			Lng:  row.DestinationLng.Float64,
		}}
	}

	return record, nil
}
