package repositories

import (
	"context"
	"fmt"

	"meridian-air/flightdeck/internal/models/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AircraftRepository handles aircrafts table operations
type AircraftRepository struct {
	db *gorm.DB
}

// NewAircraftRepository creates a new aircraft repository
func NewAircraftRepository(db *gorm.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

// GetByCode finds an aircraft by its code. Returns (nil, nil) when absent.
func (r *AircraftRepository) GetByCode(ctx context.Context, code string) (*entities.Aircraft, error) {
	var aircraft entities.Aircraft

	err := r.db.WithContext(ctx).
		Where("aircraft_code = ?", code).
		First(&aircraft).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch aircraft: %w", err)
	}

	return &aircraft, nil
}

// List retrieves all aircraft
func (r *AircraftRepository) List(ctx context.Context) ([]entities.Aircraft, error) {
	var aircraft []entities.Aircraft

	err := r.db.WithContext(ctx).
		Order("aircraft_code").
		Find(&aircraft).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list aircraft: %w", err)
	}

	return aircraft, nil
}

// Put creates the aircraft or replaces the record with the same code.
func (r *AircraftRepository) Put(ctx context.Context, aircraft *entities.Aircraft) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "aircraft_code"}},
			UpdateAll: true,
		}).
		Create(aircraft).Error

	if err != nil {
		return fmt.Errorf("failed to save aircraft: %w", err)
	}
	return nil
}

// Delete removes an aircraft by code. Returns gorm.ErrRecordNotFound when
// no row matched.
func (r *AircraftRepository) Delete(ctx context.Context, code string) error {
	res := r.db.WithContext(ctx).
		Where("aircraft_code = ?", code).
		Delete(&entities.Aircraft{})

	if res.Error != nil {
		return fmt.Errorf("failed to delete aircraft: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
