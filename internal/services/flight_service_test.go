package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"meridian-air/flightdeck/internal/common"
	"meridian-air/flightdeck/internal/constants"
	"meridian-air/flightdeck/internal/models/entities"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&entities.Airport{}, &entities.Aircraft{}, &entities.Flight{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	seed := []interface{}{
		&entities.Airport{AirportCode: "JFK", AirportName: "John F. Kennedy International", City: "New York", Coordinates: "40.6413 N, 73.7781 W", Timezone: "America/New_York"},
		&entities.Airport{AirportCode: "LAX", AirportName: "Los Angeles International", City: "Los Angeles", Coordinates: "33.9416 N, 118.4085 W", Timezone: "America/Los_Angeles"},
		&entities.Aircraft{AircraftCode: "773", Model: "Boeing 777-300", Range: 11100, SeatsTotal: 402},
	}
	for _, rec := range seed {
		if err := db.Create(rec).Error; err != nil {
			t.Fatalf("Failed to seed: %v", err)
		}
	}

	return db
}

func newTestFlightService(t *testing.T) (*FlightService, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewFlightService(db, common.NewCacheService(60, 120), nil)
	return svc, db
}

func sampleFlight() *entities.Flight {
	return &entities.Flight{
		FlightNo:           "MA0101",
		ScheduledDeparture: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		ScheduledArrival:   time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC),
		DepartureAirport:   "JFK",
		ArrivalAirport:     "LAX",
		AircraftCode:       "773",
		Status:             constants.StatusScheduled,
	}
}

func flightCount(t *testing.T, db *gorm.DB) int64 {
	var count int64
	if err := db.Model(&entities.Flight{}).Count(&count).Error; err != nil {
		t.Fatalf("Failed to count flights: %v", err)
	}
	return count
}

func TestFlightService_Create_Success(t *testing.T) {
	svc, _ := newTestFlightService(t)

	created, err := svc.Create(context.Background(), sampleFlight())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if created.FlightID == 0 {
		t.Error("Expected a store-assigned id")
	}
	if created.Status != constants.StatusScheduled {
		t.Errorf("Expected status Scheduled, got %s", created.Status)
	}
}

func TestFlightService_Create_AssignsMonotonicIds(t *testing.T) {
	svc, _ := newTestFlightService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, sampleFlight())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := svc.Create(ctx, sampleFlight())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if second.FlightID <= first.FlightID {
		t.Errorf("Expected id %d > %d", second.FlightID, first.FlightID)
	}
}

func TestFlightService_Create_RejectsCallerSuppliedID(t *testing.T) {
	svc, db := newTestFlightService(t)

	flight := sampleFlight()
	flight.FlightID = 42

	_, err := svc.Create(context.Background(), flight)
	if !IsValidation(err) {
		t.Fatalf("Expected a validation error, got %v", err)
	}
	if got := flightCount(t, db); got != 0 {
		t.Errorf("Expected no flights persisted, got %d", got)
	}
}

func TestFlightService_Create_MissingAircraft(t *testing.T) {
	svc, db := newTestFlightService(t)

	flight := sampleFlight()
	flight.AircraftCode = "999"

	_, err := svc.Create(context.Background(), flight)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Expected a validation error, got %v", err)
	}
	if ve.Reference != "aircraft_code" {
		t.Errorf("Expected offending reference aircraft_code, got %s", ve.Reference)
	}
	if got := flightCount(t, db); got != 0 {
		t.Errorf("Expected no flights persisted, got %d", got)
	}
}

func TestFlightService_Create_MissingArrivalAirport(t *testing.T) {
	svc, db := newTestFlightService(t)

	flight := sampleFlight()
	flight.ArrivalAirport = "ZZZ"

	_, err := svc.Create(context.Background(), flight)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Expected a validation error, got %v", err)
	}
	if ve.Reference != "arrival_airport" {
		t.Errorf("Expected offending reference arrival_airport, got %s", ve.Reference)
	}
	if got := flightCount(t, db); got != 0 {
		t.Errorf("Expected no flights persisted, got %d", got)
	}
}

func TestFlightService_Create_UnknownStatus(t *testing.T) {
	svc, db := newTestFlightService(t)

	flight := sampleFlight()
	flight.Status = "Boarding"

	if _, err := svc.Create(context.Background(), flight); !IsValidation(err) {
		t.Fatalf("Expected a validation error, got %v", err)
	}
	if got := flightCount(t, db); got != 0 {
		t.Errorf("Expected no flights persisted, got %d", got)
	}
}

func TestFlightService_GetByID_NotFound(t *testing.T) {
	svc, _ := newTestFlightService(t)

	if _, err := svc.GetByID(context.Background(), 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestFlightService_UpdateStatus(t *testing.T) {
	svc, _ := newTestFlightService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleFlight())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, created.FlightID, constants.StatusDeparted)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Status != constants.StatusDeparted {
		t.Errorf("Expected status Departed, got %s", updated.Status)
	}
	if !updated.ScheduledDeparture.Equal(created.ScheduledDeparture) {
		t.Error("Expected schedule fields unchanged by status update")
	}
}

func TestFlightService_UpdateStatus_NotFound(t *testing.T) {
	svc, db := newTestFlightService(t)

	_, err := svc.UpdateStatus(context.Background(), 9999, constants.StatusDeparted)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if got := flightCount(t, db); got != 0 {
		t.Errorf("Expected no flight created by status update, got %d", got)
	}
}

func TestFlightService_UpdateStatus_IllegalTransition(t *testing.T) {
	svc, _ := newTestFlightService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleFlight())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Arrived is only reachable from Departed
	if _, err := svc.UpdateStatus(ctx, created.FlightID, constants.StatusArrived); !IsValidation(err) {
		t.Fatalf("Expected a validation error for Scheduled -> Arrived, got %v", err)
	}

	if _, err := svc.UpdateStatus(ctx, created.FlightID, constants.StatusCancelled); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Cancelled is terminal
	if _, err := svc.UpdateStatus(ctx, created.FlightID, constants.StatusDeparted); !IsValidation(err) {
		t.Fatalf("Expected a validation error for Cancelled -> Departed, got %v", err)
	}
}

func TestFlightService_Update_ReplacesRecord(t *testing.T) {
	svc, _ := newTestFlightService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleFlight())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	replacement := sampleFlight()
	replacement.FlightID = created.FlightID
	replacement.FlightNo = "MA0999"
	replacement.DepartureAirport = "LAX"
	replacement.ArrivalAirport = "JFK"
	replacement.Status = constants.StatusDelayed

	updated, err := svc.Update(ctx, replacement)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, err := svc.GetByID(ctx, updated.FlightID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.FlightNo != "MA0999" || got.DepartureAirport != "LAX" || got.Status != constants.StatusDelayed {
		t.Errorf("Expected full replacement, got %+v", got)
	}
}

func TestFlightService_Update_MissingReferenceLeavesRecord(t *testing.T) {
	svc, _ := newTestFlightService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleFlight())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	replacement := sampleFlight()
	replacement.FlightID = created.FlightID
	replacement.AircraftCode = "999"

	if _, err := svc.Update(ctx, replacement); !IsValidation(err) {
		t.Fatalf("Expected a validation error, got %v", err)
	}

	got, err := svc.GetByID(ctx, created.FlightID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.AircraftCode != "773" {
		t.Errorf("Expected stored record untouched, got aircraft %s", got.AircraftCode)
	}
}

func TestFlightService_Update_NotFound(t *testing.T) {
	svc, _ := newTestFlightService(t)

	missing := sampleFlight()
	missing.FlightID = 9999

	if _, err := svc.Update(context.Background(), missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestFlightService_ListByDateRange_InclusiveBounds(t *testing.T) {
	svc, _ := newTestFlightService(t)
	ctx := context.Background()

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	departures := []time.Time{
		start,                      // exactly at start: included
		start.Add(12 * time.Hour),  // inside
		end,                        // exactly at end: included
		end.Add(time.Second),       // outside
		start.Add(-time.Second),    // outside
	}
	for _, dep := range departures {
		f := sampleFlight()
		f.ScheduledDeparture = dep
		f.ScheduledArrival = dep.Add(6 * time.Hour)
		if _, err := svc.Create(ctx, f); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	flights, err := svc.ListByDateRange(ctx, start, end)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(flights) != 3 {
		t.Fatalf("Expected 3 flights in range, got %d", len(flights))
	}
	for _, f := range flights {
		if f.ScheduledDeparture.Before(start) || f.ScheduledDeparture.After(end) {
			t.Errorf("Flight %d outside range: %v", f.FlightID, f.ScheduledDeparture)
		}
	}
}

func TestFlightService_ListByDateRange_StartAfterEnd(t *testing.T) {
	svc, _ := newTestFlightService(t)

	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	if _, err := svc.ListByDateRange(context.Background(), start, end); !IsValidation(err) {
		t.Fatalf("Expected a validation error, got %v", err)
	}
}

func TestFlightService_ListByEndpointAndStatus(t *testing.T) {
	svc, _ := newTestFlightService(t)
	ctx := context.Background()

	outbound := sampleFlight()
	if _, err := svc.Create(ctx, outbound); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	inbound := sampleFlight()
	inbound.DepartureAirport = "LAX"
	inbound.ArrivalAirport = "JFK"
	inbound.Status = constants.StatusDeparted
	if _, err := svc.Create(ctx, inbound); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	byDep, err := svc.ListByDepartureAirport(ctx, "JFK")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(byDep) != 1 || byDep[0].DepartureAirport != "JFK" {
		t.Errorf("Expected one JFK departure, got %+v", byDep)
	}

	byArr, err := svc.ListByArrivalAirport(ctx, "JFK")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(byArr) != 1 || byArr[0].ArrivalAirport != "JFK" {
		t.Errorf("Expected one JFK arrival, got %+v", byArr)
	}

	byStatus, err := svc.ListByStatus(ctx, constants.StatusDeparted)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(byStatus) != 1 || byStatus[0].Status != constants.StatusDeparted {
		t.Errorf("Expected one departed flight, got %+v", byStatus)
	}

	// exact case-sensitive match only
	byLower, err := svc.ListByStatus(ctx, "departed")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(byLower) != 0 {
		t.Errorf("Expected no match for lowercased status, got %d", len(byLower))
	}
}

func TestFlightService_Delete(t *testing.T) {
	svc, _ := newTestFlightService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, sampleFlight())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := svc.Delete(ctx, created.FlightID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := svc.GetByID(ctx, created.FlightID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, created.FlightID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on second delete, got %v", err)
	}
}
