package requests

import "time"

// FlightRequest is the transport shape for flight create and full-update
// calls. FlightID must be zero on create; on update it has to match the
// path id.
type FlightRequest struct {
	FlightID           int        `json:"flight_id,omitempty"`
	FlightNo           string     `json:"flight_no"`
	ScheduledDeparture time.Time  `json:"scheduled_departure"`
	ScheduledArrival   time.Time  `json:"scheduled_arrival"`
	DepartureAirport   string     `json:"departure_airport"`
	ArrivalAirport     string     `json:"arrival_airport"`
	AircraftCode       string     `json:"aircraft_code"`
	Status             string     `json:"status"`
	ActualDeparture    *time.Time `json:"actual_departure,omitempty"`
	ActualArrival      *time.Time `json:"actual_arrival,omitempty"`
}

// StatusUpdateRequest carries the new status for a status-only update.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
