package requests

// WeatherSubmitRequest is the transport shape for a weather upsert. A nil
// Timestamp means "stamp it with now" at the service layer.
type WeatherSubmitRequest struct {
	LocationID  string  `json:"location_id"`
	Timestamp   *int64  `json:"timestamp,omitempty"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Conditions  string  `json:"conditions"`
	Coordinates string  `json:"coordinates"`
}
