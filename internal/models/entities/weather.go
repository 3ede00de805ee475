package entities

// WeatherObservation is a time-series record keyed by
// (location_id, ts). Writes with a colliding key overwrite the prior
// value; there is at most one observation per key.
type WeatherObservation struct {
	LocationID  string  `db:"location_id" json:"location_id"`
	Timestamp   int64   `db:"ts" json:"timestamp"`
	Temperature float64 `db:"temperature" json:"temperature"`
	Humidity    float64 `db:"humidity" json:"humidity"`
	WindSpeed   float64 `db:"wind_speed" json:"wind_speed"`
	Conditions  string  `db:"conditions" json:"conditions"`
	Coordinates string  `db:"coordinates" json:"coordinates"`
}
