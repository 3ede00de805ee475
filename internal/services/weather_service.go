package services

import (
	"context"
	"time"

	"meridian-air/flightdeck/internal/constants"
	"meridian-air/flightdeck/internal/db/repositories"
	"meridian-air/flightdeck/internal/metrics"
	"meridian-air/flightdeck/internal/models/entities"
)

// WeatherService translates query windows for the weather time-series
// store. The store's save stays a pure upsert; default timestamps are
// assigned here.
type WeatherService struct {
	repo    *repositories.WeatherRepository
	metrics *metrics.MetricsRegistry
	now     func() int64
}

func NewWeatherService(repo *repositories.WeatherRepository, reg *metrics.MetricsRegistry) *WeatherService {
	return &WeatherService{
		repo:    repo,
		metrics: reg,
		now:     func() int64 { return time.Now().Unix() },
	}
}

// Get returns the observation at the exact key or ErrNotFound.
func (s *WeatherService) Get(ctx context.Context, locationID string, ts int64) (*entities.WeatherObservation, error) {
	obs, err := s.repo.Get(ctx, locationID, ts)
	if err != nil {
		return nil, err
	}
	if obs == nil {
		return nil, ErrNotFound
	}
	return obs, nil
}

// QueryRange returns observations with start <= ts <= end, ascending.
func (s *WeatherService) QueryRange(ctx context.Context, locationID string, start, end int64) ([]entities.WeatherObservation, error) {
	if start > end {
		return nil, newValidationError("time_range", "start must not be after end")
	}
	return s.repo.QueryRange(ctx, locationID, start, end)
}

// Recent returns the last 24 hours of observations; "now" is evaluated
// at call time.
func (s *WeatherService) Recent(ctx context.Context, locationID string) ([]entities.WeatherObservation, error) {
	end := s.now()
	return s.repo.QueryRange(ctx, locationID, end-constants.RecentWindowSeconds, end)
}

// Save upserts the observation, stamping it with now when the caller
// left the timestamp unset.
func (s *WeatherService) Save(ctx context.Context, obs *entities.WeatherObservation) (*entities.WeatherObservation, error) {
	if obs.LocationID == "" {
		return nil, newValidationError("location_id", "location id is required")
	}
	if obs.Timestamp == 0 {
		obs.Timestamp = s.now()
	}

	if err := s.repo.Save(ctx, obs); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.WeatherObservationsSaved.Inc()
	}
	return obs, nil
}
