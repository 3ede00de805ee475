package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"meridian-air/flightdeck/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// WeatherRepository is the time-series store for weather observations,
// keyed by (location_id, ts). Save is a pure upsert; range scans lean on
// the primary key's ordering.
type WeatherRepository struct {
	db *sqlx.DB
}

// NewWeatherRepository creates a new weather repository
func NewWeatherRepository(db *sqlx.DB) *WeatherRepository {
	return &WeatherRepository{db: db}
}

const createWeatherTable = `
	CREATE TABLE IF NOT EXISTS weather_observations (
		location_id VARCHAR(16) NOT NULL,
		ts          BIGINT NOT NULL,
		temperature DOUBLE PRECISION NOT NULL DEFAULT 0,
		humidity    DOUBLE PRECISION NOT NULL DEFAULT 0,
		wind_speed  DOUBLE PRECISION NOT NULL DEFAULT 0,
		conditions  TEXT NOT NULL DEFAULT '',
		coordinates TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (location_id, ts)
	);
`

// EnsureSchema provisions the backing table. Safe to run repeatedly; a
// second run against an existing table is a no-op.
func (r *WeatherRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createWeatherTable); err != nil {
		return fmt.Errorf("failed to ensure weather schema: %w", err)
	}
	return nil
}

// Get looks up the observation at an exact (location, timestamp) key.
// Returns (nil, nil) when absent.
func (r *WeatherRepository) Get(ctx context.Context, locationID string, ts int64) (*entities.WeatherObservation, error) {
	query := r.db.Rebind(`
		SELECT location_id, ts, temperature, humidity, wind_speed, conditions, coordinates
		FROM weather_observations
		WHERE location_id = ? AND ts = ?;
	`)

	var obs entities.WeatherObservation
	err := r.db.GetContext(ctx, &obs, query, locationID, ts)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch observation: %w", err)
	}

	return &obs, nil
}

// QueryRange retrieves all observations for a location with ts in
// [start, end], ordered by timestamp ascending. The ascending order is
// part of the contract, not a side effect.
func (r *WeatherRepository) QueryRange(ctx context.Context, locationID string, start, end int64) ([]entities.WeatherObservation, error) {
	query := r.db.Rebind(`
		SELECT location_id, ts, temperature, humidity, wind_speed, conditions, coordinates
		FROM weather_observations
		WHERE location_id = ? AND ts >= ? AND ts <= ?
		ORDER BY ts ASC;
	`)

	var obs []entities.WeatherObservation
	if err := r.db.SelectContext(ctx, &obs, query, locationID, start, end); err != nil {
		return nil, fmt.Errorf("failed to query observation range: %w", err)
	}

	return obs, nil
}

// Save upserts the observation by composite key; a colliding key
// overwrites the prior value in a single atomic statement.
func (r *WeatherRepository) Save(ctx context.Context, obs *entities.WeatherObservation) error {
	query := r.db.Rebind(`
		INSERT INTO weather_observations
			(location_id, ts, temperature, humidity, wind_speed, conditions, coordinates)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (location_id, ts) DO UPDATE SET
			temperature = excluded.temperature,
			humidity    = excluded.humidity,
			wind_speed  = excluded.wind_speed,
			conditions  = excluded.conditions,
			coordinates = excluded.coordinates;
	`)

	_, err := r.db.ExecContext(ctx, query,
		obs.LocationID,
		obs.Timestamp,
		obs.Temperature,
		obs.Humidity,
		obs.WindSpeed,
		obs.Conditions,
		obs.Coordinates,
	)
	if err != nil {
		return fmt.Errorf("failed to save observation: %w", err)
	}
	return nil
}
