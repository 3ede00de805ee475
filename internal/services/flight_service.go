package services

import (
	"context"
	"errors"
	"time"

	"meridian-air/flightdeck/internal/common"
	"meridian-air/flightdeck/internal/constants"
	"meridian-air/flightdeck/internal/db/repositories"
	"meridian-air/flightdeck/internal/metrics"
	"meridian-air/flightdeck/internal/models/entities"

	"gorm.io/gorm"
)

const referenceCacheTTL = 5 * time.Minute

// FlightService owns the flight lifecycle. Every create or update first
// resolves the departure airport, arrival airport and aircraft codes
// against the reference store, inside the same transaction as the write,
// so a validated write and its checks commit together.
type FlightService struct {
	db      *gorm.DB
	flights *repositories.FlightRepository
	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
}

func NewFlightService(db *gorm.DB, cache common.CacheInterface, reg *metrics.MetricsRegistry) *FlightService {
	return &FlightService{
		db:      db,
		flights: repositories.NewFlightRepository(db),
		cache:   cache,
		metrics: reg,
	}
}

// List returns all flights in store-native order.
func (s *FlightService) List(ctx context.Context) ([]entities.Flight, error) {
	return s.flights.List(ctx)
}

// GetByID returns the flight or ErrNotFound.
func (s *FlightService) GetByID(ctx context.Context, id int) (*entities.Flight, error) {
	flight, err := s.flights.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, ErrNotFound
	}
	return flight, nil
}

func (s *FlightService) ListByDepartureAirport(ctx context.Context, code string) ([]entities.Flight, error) {
	return s.flights.ListByDepartureAirport(ctx, code)
}

func (s *FlightService) ListByArrivalAirport(ctx context.Context, code string) ([]entities.Flight, error) {
	return s.flights.ListByArrivalAirport(ctx, code)
}

// ListByDateRange returns flights with start <= scheduled departure <= end.
// A start after end is the caller's error, never silently swapped.
func (s *FlightService) ListByDateRange(ctx context.Context, start, end time.Time) ([]entities.Flight, error) {
	if start.After(end) {
		return nil, newValidationError("date_range", "start must not be after end")
	}
	return s.flights.ListByDateRange(ctx, start, end)
}

// ListByStatus matches the status string exactly, case-sensitive.
func (s *FlightService) ListByStatus(ctx context.Context, status string) ([]entities.Flight, error) {
	return s.flights.ListByStatus(ctx, status)
}

// Create persists a new flight. Ids are store-assigned only; a caller
// supplying a nonzero id is rejected. All three reference codes must
// resolve or the store is left untouched.
func (s *FlightService) Create(ctx context.Context, flight *entities.Flight) (*entities.Flight, error) {
	if flight.FlightID != 0 {
		return nil, s.countValidation(newValidationError("flight_id", "flight ids are store-assigned; got %d", flight.FlightID))
	}
	if !constants.KnownStatus(flight.Status) {
		return nil, s.countValidation(newValidationError("status", "unknown status %q", flight.Status))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.resolveReferences(ctx, tx, flight); err != nil {
			return err
		}
		return repositories.NewFlightRepository(tx).Create(ctx, flight)
	})
	if err != nil {
		return nil, s.countValidation(err)
	}

	if s.metrics != nil {
		s.metrics.FlightsCreatedTotal.Inc()
	}
	return flight, nil
}

// Update replaces the stored record in full after the same reference
// validation as Create, plus a status-transition check against the
// currently stored status.
func (s *FlightService) Update(ctx context.Context, flight *entities.Flight) (*entities.Flight, error) {
	if !constants.KnownStatus(flight.Status) {
		return nil, s.countValidation(newValidationError("status", "unknown status %q", flight.Status))
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txFlights := repositories.NewFlightRepository(tx)

		current, err := txFlights.GetByID(ctx, flight.FlightID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrNotFound
		}
		if !constants.CanTransition(current.Status, flight.Status) {
			return newValidationError("status", "illegal transition %s -> %s", current.Status, flight.Status)
		}
		if err := s.resolveReferences(ctx, tx, flight); err != nil {
			return err
		}
		return txFlights.Update(ctx, flight)
	})
	if err != nil {
		return nil, s.countValidation(err)
	}

	return flight, nil
}

// UpdateStatus loads the flight, validates the transition, and persists
// the full record with only the status changed.
func (s *FlightService) UpdateStatus(ctx context.Context, id int, status string) (*entities.Flight, error) {
	if !constants.KnownStatus(status) {
		return nil, s.countValidation(newValidationError("status", "unknown status %q", status))
	}

	flight, err := s.flights.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, ErrNotFound
	}
	if !constants.CanTransition(flight.Status, status) {
		return nil, s.countValidation(newValidationError("status", "illegal transition %s -> %s", flight.Status, status))
	}

	flight.Status = status
	if err := s.flights.Update(ctx, flight); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.FlightStatusUpdatesTotal.WithLabelValues(status).Inc()
	}
	return flight, nil
}

// Delete removes the flight unconditionally; no dependent-record checks.
func (s *FlightService) Delete(ctx context.Context, id int) error {
	err := s.flights.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// resolveReferences checks the three reference codes against the
// reference store through tx. Positive lookups are cached; misses always
// hit the store so a just-created reference is seen immediately.
func (s *FlightService) resolveReferences(ctx context.Context, tx *gorm.DB, flight *entities.Flight) error {
	airports := repositories.NewAirportRepository(tx)
	aircraft := repositories.NewAircraftRepository(tx)

	if err := s.ensureAirport(ctx, airports, flight.DepartureAirport, "departure_airport"); err != nil {
		return err
	}
	if err := s.ensureAirport(ctx, airports, flight.ArrivalAirport, "arrival_airport"); err != nil {
		return err
	}
	return s.ensureAircraft(ctx, aircraft, flight.AircraftCode, "aircraft_code")
}

func (s *FlightService) ensureAirport(ctx context.Context, repo *repositories.AirportRepository, code, reference string) error {
	key := string(constants.CachePrefixAirport) + code
	_, err := s.cache.GetOrSet(key, referenceCacheTTL, func() (any, error) {
		airport, err := repo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if airport == nil {
			return nil, newValidationError(reference, "airport %q not found", code)
		}
		return true, nil
	})
	return err
}

func (s *FlightService) ensureAircraft(ctx context.Context, repo *repositories.AircraftRepository, code, reference string) error {
	key := string(constants.CachePrefixAircraft) + code
	_, err := s.cache.GetOrSet(key, referenceCacheTTL, func() (any, error) {
		ac, err := repo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if ac == nil {
			return nil, newValidationError(reference, "aircraft %q not found", code)
		}
		return true, nil
	})
	return err
}

func (s *FlightService) countValidation(err error) error {
	if err == nil || s.metrics == nil {
		return err
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		s.metrics.ValidationFailuresTotal.WithLabelValues(ve.Reference).Inc()
	}
	return err
}
