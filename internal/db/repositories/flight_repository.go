package repositories

import (
	"context"
	"fmt"
	"time"

	"meridian-air/flightdeck/internal/models/entities"

	"gorm.io/gorm"
)

// FlightRepository handles flights table operations. Reference validation
// lives in the flight service, not here.
type FlightRepository struct {
	db *gorm.DB
}

// NewFlightRepository creates a new flight repository
func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// List retrieves all flights in store-native order.
func (r *FlightRepository) List(ctx context.Context) ([]entities.Flight, error) {
	var flights []entities.Flight

	err := r.db.WithContext(ctx).Find(&flights).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}

	return flights, nil
}

// GetByID finds a flight by id. Returns (nil, nil) when absent.
func (r *FlightRepository) GetByID(ctx context.Context, id int) (*entities.Flight, error) {
	var flight entities.Flight

	err := r.db.WithContext(ctx).
		Where("flight_id = ?", id).
		First(&flight).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch flight: %w", err)
	}

	return &flight, nil
}

// ListByDepartureAirport retrieves flights departing from the given
// airport code (exact match).
func (r *FlightRepository) ListByDepartureAirport(ctx context.Context, code string) ([]entities.Flight, error) {
	var flights []entities.Flight

	err := r.db.WithContext(ctx).
		Where("departure_airport = ?", code).
		Find(&flights).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list flights by departure airport: %w", err)
	}

	return flights, nil
}

// ListByArrivalAirport retrieves flights arriving at the given airport
// code (exact match).
func (r *FlightRepository) ListByArrivalAirport(ctx context.Context, code string) ([]entities.Flight, error) {
	var flights []entities.Flight

	err := r.db.WithContext(ctx).
		Where("arrival_airport = ?", code).
		Find(&flights).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list flights by arrival airport: %w", err)
	}

	return flights, nil
}

// ListByDateRange retrieves flights whose scheduled departure falls in
// [start, end]. Both bounds are inclusive.
func (r *FlightRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]entities.Flight, error) {
	var flights []entities.Flight

	err := r.db.WithContext(ctx).
		Where("scheduled_departure >= ? AND scheduled_departure <= ?", start, end).
		Find(&flights).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list flights by date range: %w", err)
	}

	return flights, nil
}

// ListByStatus retrieves flights with exactly the given status string
// (case-sensitive).
func (r *FlightRepository) ListByStatus(ctx context.Context, status string) ([]entities.Flight, error) {
	var flights []entities.Flight

	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Find(&flights).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list flights by status: %w", err)
	}

	return flights, nil
}

// Create inserts the flight and fills in the store-assigned id.
func (r *FlightRepository) Create(ctx context.Context, flight *entities.Flight) error {
	if err := r.db.WithContext(ctx).Create(flight).Error; err != nil {
		return fmt.Errorf("failed to create flight: %w", err)
	}
	return nil
}

// Update replaces the stored record in full.
func (r *FlightRepository) Update(ctx context.Context, flight *entities.Flight) error {
	if err := r.db.WithContext(ctx).Save(flight).Error; err != nil {
		return fmt.Errorf("failed to update flight: %w", err)
	}
	return nil
}

// Delete removes a flight by id. Returns gorm.ErrRecordNotFound when no
// row matched.
func (r *FlightRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).
		Where("flight_id = ?", id).
		Delete(&entities.Flight{})

	if res.Error != nil {
		return fmt.Errorf("failed to delete flight: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
