package entities

import "time"

// Flight references airports and aircraft by code. The id is assigned by
// the store on create and never reused. Scheduled times are wall-clock
// with no timezone; the caller owns interpretation.
type Flight struct {
	FlightID           int        `gorm:"column:flight_id;primaryKey;autoIncrement" json:"flight_id"`
	FlightNo           string     `gorm:"column:flight_no;type:char(6);not null" json:"flight_no"`
	ScheduledDeparture time.Time  `gorm:"column:scheduled_departure;not null" json:"scheduled_departure"`
	ScheduledArrival   time.Time  `gorm:"column:scheduled_arrival;not null" json:"scheduled_arrival"`
	DepartureAirport   string     `gorm:"column:departure_airport;type:char(3);not null" json:"departure_airport"`
	ArrivalAirport     string     `gorm:"column:arrival_airport;type:char(3);not null" json:"arrival_airport"`
	Status             string     `gorm:"column:status;type:varchar(20);not null" json:"status"`
	AircraftCode       string     `gorm:"column:aircraft_code;type:char(3);not null" json:"aircraft_code"`
	ActualDeparture    *time.Time `gorm:"column:actual_departure" json:"actual_departure,omitempty"`
	ActualArrival      *time.Time `gorm:"column:actual_arrival" json:"actual_arrival,omitempty"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}
