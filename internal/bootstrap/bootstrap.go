package bootstrap

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"meridian-air/flightdeck/internal/constants"
	"meridian-air/flightdeck/internal/db/repositories"
	"meridian-air/flightdeck/internal/logging"
	"meridian-air/flightdeck/internal/models/entities"
)

// AutoMigrate provisions the relational tables. Safe to run repeatedly.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Airport{},
		&entities.Aircraft{},
		&entities.Flight{},
	)
}

var sampleAirports = []entities.Airport{
	{AirportCode: "JFK", AirportName: "John F. Kennedy International", City: "New York", Coordinates: "40.6413 N, 73.7781 W", Timezone: "America/New_York"},
	{AirportCode: "LAX", AirportName: "Los Angeles International", City: "Los Angeles", Coordinates: "33.9416 N, 118.4085 W", Timezone: "America/Los_Angeles"},
	{AirportCode: "ORD", AirportName: "O'Hare International", City: "Chicago", Coordinates: "41.9742 N, 87.9073 W", Timezone: "America/Chicago"},
	{AirportCode: "MIA", AirportName: "Miami International", City: "Miami", Coordinates: "25.7959 N, 80.2870 W", Timezone: "America/New_York"},
	{AirportCode: "SFO", AirportName: "San Francisco International", City: "San Francisco", Coordinates: "37.6213 N, 122.3790 W", Timezone: "America/Los_Angeles"},
}

var sampleAircraft = []entities.Aircraft{
	{AircraftCode: "773", Model: "Boeing 777-300", Range: 11100, SeatsTotal: 402},
	{AircraftCode: "763", Model: "Boeing 767-300", Range: 7900, SeatsTotal: 222},
	{AircraftCode: "320", Model: "Airbus A320", Range: 5700, SeatsTotal: 180},
}

// SeedSampleData loads a small demo dataset: the reference records, a
// couple of scheduled flights, and one current observation per airport.
// Reference records and observations are upserts, so reruns are harmless;
// flights are only seeded into an empty table.
func SeedSampleData(ctx context.Context, db *gorm.DB, weather *repositories.WeatherRepository) error {
	airports := repositories.NewAirportRepository(db)
	aircraft := repositories.NewAircraftRepository(db)

	for i := range sampleAirports {
		if err := airports.Put(ctx, &sampleAirports[i]); err != nil {
			return fmt.Errorf("seed airports: %w", err)
		}
	}
	for i := range sampleAircraft {
		if err := aircraft.Put(ctx, &sampleAircraft[i]); err != nil {
			return fmt.Errorf("seed aircraft: %w", err)
		}
	}

	flights := repositories.NewFlightRepository(db)
	existing, err := flights.List(ctx)
	if err != nil {
		return fmt.Errorf("seed flights: %w", err)
	}
	if len(existing) == 0 {
		now := time.Now().Truncate(time.Hour)
		seedFlights := []entities.Flight{
			{FlightNo: "MA0101", ScheduledDeparture: now.Add(6 * time.Hour), ScheduledArrival: now.Add(12 * time.Hour), DepartureAirport: "JFK", ArrivalAirport: "LAX", AircraftCode: "773", Status: constants.StatusScheduled},
			{FlightNo: "MA0202", ScheduledDeparture: now.Add(8 * time.Hour), ScheduledArrival: now.Add(11 * time.Hour), DepartureAirport: "ORD", ArrivalAirport: "MIA", AircraftCode: "320", Status: constants.StatusScheduled},
			{FlightNo: "MA0303", ScheduledDeparture: now.Add(-4 * time.Hour), ScheduledArrival: now.Add(2 * time.Hour), DepartureAirport: "SFO", ArrivalAirport: "JFK", AircraftCode: "763", Status: constants.StatusDeparted},
		}
		for i := range seedFlights {
			if err := flights.Create(ctx, &seedFlights[i]); err != nil {
				return fmt.Errorf("seed flights: %w", err)
			}
		}
	}

	nowTS := time.Now().Unix()
	for _, ap := range sampleAirports {
		obs := &entities.WeatherObservation{
			LocationID:  ap.AirportCode,
			Timestamp:   nowTS,
			Temperature: float64(60 + rand.Intn(30)),
			Humidity:    float64(50 + rand.Intn(40)),
			WindSpeed:   float64(5 + rand.Intn(20)),
			Conditions:  "Partly Cloudy",
			Coordinates: ap.Coordinates,
		}
		if err := weather.Save(ctx, obs); err != nil {
			return fmt.Errorf("seed weather: %w", err)
		}
		logging.Info("Seeded weather observation", "location", ap.AirportCode)
	}

	return nil
}
