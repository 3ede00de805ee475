package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"meridian-air/flightdeck/internal/models/dtos/requests"
	"meridian-air/flightdeck/internal/models/entities"
	"meridian-air/flightdeck/internal/services"
)

// WeatherHandlers exposes the weather time-series surface.
type WeatherHandlers struct {
	svc *services.WeatherService
}

func NewWeatherHandlers(svc *services.WeatherService) *WeatherHandlers {
	return &WeatherHandlers{svc: svc}
}

// Recent handles GET /api/v1/weather/{locationId}/current — the last 24
// hours of observations.
func (h *WeatherHandlers) Recent(w http.ResponseWriter, r *http.Request) {
	obs, err := h.svc.Recent(r.Context(), chi.URLParam(r, "locationId"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, &obs)
}

// Range handles GET /api/v1/weather/{locationId}?start=...&end=...
// Bounds are inclusive epoch seconds or datetimes.
func (h *WeatherHandlers) Range(w http.ResponseWriter, r *http.Request) {
	start, err := parseEpoch(r.URL.Query().Get("start"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid or missing start parameter")
		return
	}
	end, err := parseEpoch(r.URL.Query().Get("end"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid or missing end parameter")
		return
	}

	obs, err := h.svc.QueryRange(r.Context(), chi.URLParam(r, "locationId"), start, end)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, &obs)
}

// Get handles GET /api/v1/weather/{locationId}/{timestamp} — exact-key
// lookup.
func (h *WeatherHandlers) Get(w http.ResponseWriter, r *http.Request) {
	ts, err := strconv.ParseInt(chi.URLParam(r, "timestamp"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid timestamp")
		return
	}

	obs, err := h.svc.Get(r.Context(), chi.URLParam(r, "locationId"), ts)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, obs)
}

// Save handles POST /api/v1/weather. An omitted timestamp gets stamped
// with now at the service layer.
func (h *WeatherHandlers) Save(w http.ResponseWriter, r *http.Request) {
	var req requests.WeatherSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	obs := &entities.WeatherObservation{
		LocationID:  req.LocationID,
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		WindSpeed:   req.WindSpeed,
		Conditions:  req.Conditions,
		Coordinates: req.Coordinates,
	}
	if req.Timestamp != nil {
		obs.Timestamp = *req.Timestamp
	}

	saved, err := h.svc.Save(r.Context(), obs)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithSuccess(w, http.StatusOK, saved)
}

// parseEpoch accepts raw epoch seconds or an RFC3339 datetime.
func parseEpoch(value string) (int64, error) {
	if ts, err := strconv.ParseInt(value, 10, 64); err == nil {
		return ts, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}
