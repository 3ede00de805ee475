package repositories

import (
	"context"
	"fmt"

	"meridian-air/flightdeck/internal/models/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AirportRepository handles airports table operations
type AirportRepository struct {
	db *gorm.DB
}

// NewAirportRepository creates a new airport repository
func NewAirportRepository(db *gorm.DB) *AirportRepository {
	return &AirportRepository{db: db}
}

// GetByCode finds an airport by its code. Returns (nil, nil) when absent.
func (r *AirportRepository) GetByCode(ctx context.Context, code string) (*entities.Airport, error) {
	var airport entities.Airport

	err := r.db.WithContext(ctx).
		Where("airport_code = ?", code).
		First(&airport).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch airport: %w", err)
	}

	return &airport, nil
}

// List retrieves all airports
func (r *AirportRepository) List(ctx context.Context) ([]entities.Airport, error) {
	var airports []entities.Airport

	err := r.db.WithContext(ctx).
		Order("airport_code").
		Find(&airports).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list airports: %w", err)
	}

	return airports, nil
}

// Put creates the airport or replaces the record with the same code.
func (r *AirportRepository) Put(ctx context.Context, airport *entities.Airport) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "airport_code"}},
			UpdateAll: true,
		}).
		Create(airport).Error

	if err != nil {
		return fmt.Errorf("failed to save airport: %w", err)
	}
	return nil
}

// Delete removes an airport by code. Returns gorm.ErrRecordNotFound when
// no row matched.
func (r *AirportRepository) Delete(ctx context.Context, code string) error {
	res := r.db.WithContext(ctx).
		Where("airport_code = ?", code).
		Delete(&entities.Airport{})

	if res.Error != nil {
		return fmt.Errorf("failed to delete airport: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
