package models

import (
	"time"

	"github.com/google/uuid"
)

// RecordStop is the persisted form of a stop inside a calculation record.
type RecordStop struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// CalculationRecord is one row of a user's calculation history.
type CalculationRecord struct {
	ID                    uuid.UUID    `json:"id" db:"id"`
	UserID                uuid.UUID    `json:"user_id" db:"user_id"`
	BaseName              string       `json:"base_name" db:"base_name"`
	BaseLat               float64      `json:"base_lat" db:"base_lat"`
	BaseLng               float64      `json:"base_lng" db:"base_lng"`
	DistanceKm            float64      `json:"distance_km" db:"distance_km"`
	DrivingDistanceKm     *float64     `json:"driving_distance_km" db:"driving_distance_km"`
	MaxDistanceFromBaseKm *float64     `json:"max_distance_from_base_km" db:"max_distance_km"`
	LogbookRequired       bool         `json:"logbook_required" db:"logbook_required"`
	Stops                 []RecordStop `json:"stops"`
	CreatedAt             time.Time    `json:"created_at" db:"created_at"`
}

// Depot is a saved base location.
type Depot struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Address   string    `json:"address" db:"address"`
	Lat       float64   `json:"lat" db:"lat"`
	Lng       float64   `json:"lng" db:"lng"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RecentSearch is a capped-list entry kept in redis per user.
type RecentSearch struct {
	Address    string    `json:"address"`
	PlaceName  string    `json:"place_name"`
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	Geohash    string    `json:"geohash"`
	SearchedAt time.Time `json:"searched_at"`
}

// CalculationEvent is published to NATS when a calculation completes. The
// export/email pipeline consumes it; failures to publish never block the
// result from being returned.
type CalculationEvent struct {
	UserID          uuid.UUID    `json:"user_id"`
	BaseName        string       `json:"base_name"`
	DistanceKm      float64      `json:"distance_km"`
	LogbookRequired bool         `json:"logbook_required"`
	StopCount       int          `json:"stop_count"`
	Stops           []RecordStop `json:"stops"`
	CalculatedAt    time.Time    `json:"calculated_at"`
}
