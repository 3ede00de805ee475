package repositories

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"meridian-air/flightdeck/internal/models/entities"
)

func setupWeatherRepo(t *testing.T) *WeatherRepository {
	db, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := NewWeatherRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("Failed to ensure schema: %v", err)
	}
	return repo
}

func TestWeatherRepository_EnsureSchemaIdempotent(t *testing.T) {
	repo := setupWeatherRepo(t)
	ctx := context.Background()

	obs := &entities.WeatherObservation{LocationID: "JFK", Timestamp: 1000, Temperature: 70}
	if err := repo.Save(ctx, obs); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// A second provisioning run against the existing table is a no-op
	// and keeps the data.
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("Expected no error on repeated ensure, got %v", err)
	}

	got, err := repo.Get(ctx, "JFK", 1000)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got == nil || got.Temperature != 70 {
		t.Errorf("Expected stored observation to survive re-provisioning, got %+v", got)
	}
}

func TestWeatherRepository_GetAbsentKey(t *testing.T) {
	repo := setupWeatherRepo(t)

	got, err := repo.Get(context.Background(), "JFK", 42)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for absent key, got %+v", got)
	}
}

func TestWeatherRepository_SaveUpsertsAllFields(t *testing.T) {
	repo := setupWeatherRepo(t)
	ctx := context.Background()

	first := &entities.WeatherObservation{
		LocationID: "JFK", Timestamp: 1000,
		Temperature: 70, Humidity: 50, WindSpeed: 10,
		Conditions: "Clear", Coordinates: "40.6413 N, 73.7781 W",
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	second := &entities.WeatherObservation{
		LocationID: "JFK", Timestamp: 1000,
		Temperature: 72, Humidity: 61, WindSpeed: 18,
		Conditions: "Overcast", Coordinates: "40.6413 N, 73.7781 W",
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, err := repo.Get(ctx, "JFK", 1000)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Temperature != 72 || got.Humidity != 61 || got.WindSpeed != 18 || got.Conditions != "Overcast" {
		t.Errorf("Expected all fields overwritten, got %+v", got)
	}
}
